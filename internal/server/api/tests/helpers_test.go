package tests

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/api"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-contact-keeper/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/logger"
)

type testDeps struct {
	users    *svcmocks.MockUsersRepo
	contacts *svcmocks.MockContactsRepo
	health   *svcmocks.MockHealthRepo
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			TokenTTL: time.Hour,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456", // >= 32
			},
		},
		Password: config.PasswordConfig{
			Hasher: config.HasherBcrypt,
			Bcrypt: config.BcryptConfig{Cost: bcrypt.MinCost},
		},
	}
}

// NewTestHandler создаёт Handler с моками репозиториев через dependency injection
func NewTestHandler(t *testing.T, cfg *config.Config) (*api.Handler, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	deps := testDeps{
		users:    svcmocks.NewMockUsersRepo(ctrl),
		contacts: svcmocks.NewMockContactsRepo(ctrl),
		health:   svcmocks.NewMockHealthRepo(ctrl),
	}

	svc, err := service.NewServices(service.Repositories{
		Users:    deps.users,
		Contacts: deps.contacts,
		Health:   deps.health,
	}, cfg)
	if err != nil {
		t.Fatalf("NewServices: %v", err)
	}

	verifier := middleware.NewJWTVerifier(svc.Auth.Tokens())
	log := &logger.HTTPLogger{Logger: zap.NewNop()}

	return api.NewHandler(svc, log, verifier), deps
}

func jsonRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser кладёт id пользователя в контекст, как это делает AuthMiddleware
func asUser(req *http.Request, id uuid.UUID) *http.Request {
	return req.WithContext(middleware.WithUserID(context.Background(), id))
}
