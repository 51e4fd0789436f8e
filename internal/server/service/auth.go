package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/errors"
)

// AuthService реализует регистрацию, логин и получение текущего пользователя.
//
// Ответственность:
//   - регистрация пользователей
//   - аутентификация (логин) и выпуск сессионного токена
//   - выдача профиля по id из токена
type AuthService struct {
	users  UsersRepo
	hasher crypto.PasswordHasher
	tokens *crypto.TokenCodec

	// hideLoginReason — не различать "нет email" и "неверный пароль".
	hideLoginReason bool
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) (*AuthService, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.Password)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: crypto.NewTokenCodec(crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			TTL:        cfg.Auth.TokenTTL,
		}),
		hideLoginReason: cfg.Security.HideLoginReason,
	}, nil
}

// Tokens возвращает кодек токенов; им же проверяет токены middleware.
func (s *AuthService) Tokens() *crypto.TokenCodec {
	return s.tokens
}

// Register создаёт пользователя и сразу выдаёт токен.
//
// Формат полей проверяет api слой, здесь только нормализация
// (email в нижнем регистре) и защита от пустых значений.
//
// Ошибки:
//   - ErrInvalidInput — пустое имя, email или пароль из одних пробелов
//   - ErrPasswordTooLong — пароль длиннее лимита bcrypt (72 байта)
//   - ErrAlreadyExists — email уже зарегистрирован
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || strings.TrimSpace(password) == "" {
		return "", serr.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return "", serr.ErrPasswordTooLong
		}
		return "", fmt.Errorf("%w: hash password: %v", serr.ErrInternal, err)
	}

	u, err := s.users.Create(ctx, models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		return "", err
	}
	return s.issue(u.ID)
}

// Login проверяет email и пароль и выдаёт токен.
//
// Ошибки:
//   - ErrInvalidInput — пустой email или пароль
//   - ErrInvalidEmail — пользователя с таким email нет
//   - ErrInvalidPassword — пароль не подошёл
//   - ErrInvalidCredentials — вместо двух предыдущих, если включён security.hide_login_reason
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", serr.ErrInvalidInput
	}

	// получаем юзера по email
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return "", s.loginErr(serr.ErrInvalidEmail)
		}
		return "", err
	}

	// проверяем пароль
	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("%w: verify password: %v", serr.ErrInternal, err)
	}
	if !ok {
		return "", s.loginErr(serr.ErrInvalidPassword)
	}

	return s.issue(u.ID)
}

// WhoAmI возвращает пользователя по id из токена.
// Пользователь, пропавший после выдачи токена, даёт ErrNotFound.
func (s *AuthService) WhoAmI(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *AuthService) issue(userID uuid.UUID) (string, error) {
	token, err := s.tokens.Issue(userID.String())
	if err != nil {
		return "", fmt.Errorf("%w: issue token: %v", serr.ErrInternal, err)
	}
	return token, nil
}

func (s *AuthService) loginErr(err error) error {
	if s.hideLoginReason {
		return serr.ErrInvalidCredentials
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
