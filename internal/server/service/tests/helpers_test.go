package tests

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/service"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/service/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			TokenTTL: 100 * time.Hour,
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

// создаём сервис
func newAuthService(t *testing.T, cfg *config.Config) (*service.AuthService, *mocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepo(ctrl)

	svc, err := service.NewAuthService(users, cfg)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return svc, users
}

func newContactsService(t *testing.T) (*service.ContactsService, *mocks.MockContactsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContactsRepo(ctrl)
	return service.NewContactsService(repo), repo
}
