// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userIDKey — ключ контекста, под которым хранится ID аутентифицированного пользователя.
const userIDKey ctxKey = "user_id"

// Заголовки, из которых читается токен. x-auth-token проверяется первым.
const (
	HeaderAuthToken     = "x-auth-token"
	HeaderAuthorization = "Authorization"
)

// Тексты ответов 401.
const (
	MsgNoToken      = "No token, authorization denied"
	MsgInvalidToken = "Token is not valid"
)

// TokenParser проверяет токен и возвращает id пользователя из claims.
type TokenParser interface {
	Parse(token string) (string, error)
}

// JWTVerifier — middleware проверки сессионного токена.
//
// Используется для защищённых маршрутов:
//   - достаёт токен из x-auth-token или Authorization: Bearer
//   - проверяет подпись и срок через TokenParser
//   - кладёт id пользователя в context.Context
type JWTVerifier struct {
	tokens TokenParser
}

// NewJWTVerifier создаёт новый JWTVerifier.
func NewJWTVerifier(tokens TokenParser) *JWTVerifier {
	return &JWTVerifier{tokens: tokens}
}

// UserIDFromContext извлекает userID аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - userID
//   - false, если пользователь не аутентифицирован
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// WithUserID кладёт userID в контекст так же, как это делает AuthMiddleware.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// AuthMiddleware возвращает HTTP middleware для проверки токена.
//
// Ответы:
//   - 401 {"msg":"No token, authorization denied"} — токена нет
//   - 401 {"msg":"Token is not valid"} — подпись, срок или id пользователя неверны
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := TokenFromRequest(r)
			if tokenStr == "" {
				unauthorized(w, MsgNoToken)
				return
			}

			sub, err := v.tokens.Parse(tokenStr)
			if err != nil {
				unauthorized(w, MsgInvalidToken)
				return
			}

			userID, err := uuid.Parse(sub)
			if err != nil {
				unauthorized(w, MsgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// TokenFromRequest достаёт токен из x-auth-token, иначе из Authorization: Bearer.
func TokenFromRequest(r *http.Request) string {
	if t := strings.TrimSpace(r.Header.Get(HeaderAuthToken)); t != "" {
		return t
	}
	return ExtractBearer(r.Header.Get(HeaderAuthorization))
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
