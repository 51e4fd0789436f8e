// Package crypto содержит криптографические примитивы сервера:
//   - выпуск и проверку JWT сессионных токенов;
//   - хэширование и проверку паролей (bcrypt, argon2id).
package crypto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken — подпись, формат или claims токена некорректны.
var ErrInvalidToken = errors.New("invalid token")

// UserClaim — вложенный объект user в payload токена.
type UserClaim struct {
	ID string `json:"id"`
}

// Claims — payload сессионного токена: {"user":{"id":"..."}} плюс exp/iat.
type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

// JWTConfig описывает параметры генерации и проверки токена.
type JWTConfig struct {
	// Issuer — значение поля iss; пустое значение не пишется и не проверяется.
	Issuer string
	// Audience — значение поля aud; пустое значение не пишется и не проверяется.
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	SigningKey string
	// TTL — срок жизни токена.
	TTL time.Duration
}

// TokenCodec подписывает и проверяет сессионные токены.
// Состояния не хранит: валидность токена определяется только подписью и сроком.
type TokenCodec struct {
	cfg JWTConfig
}

// NewTokenCodec создаёт TokenCodec.
func NewTokenCodec(cfg JWTConfig) *TokenCodec {
	return &TokenCodec{cfg: cfg}
}

// Issue создаёт и подписывает токен для пользователя.
//
// Используется алгоритм подписи HS256.
func (c *TokenCodec) Issue(userID string) (string, error) {
	now := time.Now()

	claims := Claims{
		User: UserClaim{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.TTL)),
		},
	}
	if c.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{c.cfg.Audience}
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(c.cfg.SigningKey))
}

// Parse проверяет подпись и срок действия токена и возвращает id пользователя.
//
// Ошибки оборачивают jwt.ErrTokenExpired для просроченного токена
// и ErrInvalidToken во всех остальных случаях.
func (c *TokenCodec) Parse(tokenStr string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	}
	if c.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.cfg.Issuer))
	}
	if c.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(c.cfg.Audience))
	}

	claims := &Claims{}
	_, err := jwt.NewParser(opts...).ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(c.cfg.SigningKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %w", ErrInvalidToken, jwt.ErrTokenExpired)
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID := strings.TrimSpace(claims.User.ID)
	if userID == "" {
		return "", fmt.Errorf("%w: empty user id", ErrInvalidToken)
	}
	return userID, nil
}
