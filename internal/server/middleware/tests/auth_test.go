package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	crypt "github.com/IvanChernomyrdin/go-contact-keeper/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/middleware"
)

const key = "supersecretkeysupersecretkey123456"

func newVerifier() (*middleware.JWTVerifier, *crypt.TokenCodec) {
	codec := crypt.NewTokenCodec(crypt.JWTConfig{SigningKey: key, TTL: time.Hour})
	return middleware.NewJWTVerifier(codec), codec
}

// Вспомогательная функция для JWT с произвольным сроком
func makeToken(t *testing.T, userID string, exp time.Time) string {
	t.Helper()

	claims := crypt.Claims{
		User: crypt.UserClaim{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// обработчик, который запоминает id из контекста
func capture(t *testing.T, got *uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			t.Fatal("user id not found in context")
		}
		*got = uid
		w.WriteHeader(http.StatusOK)
	})
}

func assertUnauthorized(t *testing.T, rr *httptest.ResponseRecorder, wantMsg string) {
	t.Helper()

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["msg"] != wantMsg {
		t.Fatalf("expected msg %q, got %q", wantMsg, body["msg"])
	}
}

// Успех через x-auth-token
func TestAuthMiddleware_XAuthToken_OK(t *testing.T) {
	v, codec := newVerifier()
	userID := uuid.New()

	token, err := codec.Issue(userID.String())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var got uuid.UUID
	handler := v.AuthMiddleware()(capture(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("x-auth-token", token)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got != userID {
		t.Fatalf("unexpected user id: %v", got)
	}
}

// Успех через Authorization: Bearer
func TestAuthMiddleware_Bearer_OK(t *testing.T) {
	v, codec := newVerifier()
	userID := uuid.New()

	token, _ := codec.Issue(userID.String())

	var got uuid.UUID
	handler := v.AuthMiddleware()(capture(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+token)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || got != userID {
		t.Fatalf("expected 200 with %v, got %d with %v", userID, rr.Code, got)
	}
}

// x-auth-token важнее Authorization
func TestAuthMiddleware_XAuthTokenWins(t *testing.T) {
	v, codec := newVerifier()
	first, second := uuid.New(), uuid.New()

	t1, _ := codec.Issue(first.String())
	t2, _ := codec.Issue(second.String())

	var got uuid.UUID
	handler := v.AuthMiddleware()(capture(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("x-auth-token", t1)
	req.Header.Set("Authorization", "Bearer "+t2)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got != first {
		t.Fatalf("expected %v, got %v", first, got)
	}
}

// Нет токена
func TestAuthMiddleware_NoToken(t *testing.T) {
	v, _ := newVerifier()

	handler := v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	for _, h := range []map[string]string{
		{},
		{"Authorization": "Basic abc"},
		{"Authorization": "Bearer"},
		{"x-auth-token": "   "},
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for k, val := range h {
			req.Header.Set(k, val)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assertUnauthorized(t, rr, "No token, authorization denied")
	}
}

// Невалидный токен: мусор, истёкший, чужая подпись, не-UUID в claims
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	v, _ := newVerifier()

	other := crypt.NewTokenCodec(crypt.JWTConfig{SigningKey: "another-key-another-key-another-key", TTL: time.Hour})
	foreign, _ := other.Issue(uuid.NewString())

	cases := map[string]string{
		"garbage":  "abc.def.ghi",
		"expired":  makeToken(t, uuid.NewString(), time.Now().Add(-time.Minute)),
		"foreign":  foreign,
		"not uuid": makeToken(t, "user-123", time.Now().Add(time.Minute)),
	}

	handler := v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("x-auth-token", token)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assertUnauthorized(t, rr, "Token is not valid")
		})
	}
}

func TestExtractBearer(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"Bearer abc":      "abc",
		"bearer  abc  ":   "abc",
		"Token abc":       "",
		"Bearerabc":       "",
		"  Bearer x.y.z ": "x.y.z",
	}
	for in, want := range tests {
		if got := middleware.ExtractBearer(in); got != want {
			t.Fatalf("ExtractBearer(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUserIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := middleware.UserIDFromContext(req.Context()); ok {
		t.Fatal("expected no user id")
	}

	id := uuid.New()
	got, ok := middleware.UserIDFromContext(middleware.WithUserID(req.Context(), id))
	if !ok || got != id {
		t.Fatalf("expected %v, got %v", id, got)
	}
}
