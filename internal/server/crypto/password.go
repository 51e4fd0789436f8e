// Хэширование паролей
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/config"
)

// BcryptMaxPasswordBytes — bcrypt не принимает пароли длиннее.
const BcryptMaxPasswordBytes = 72

const (
	bcryptPrefix = "$2"
	argon2Prefix = "argon2id$"
)

var (
	ErrEmptyPassword = errors.New("empty password")
	// ErrPasswordTooLong — пароль длиннее BcryptMaxPasswordBytes байт.
	ErrPasswordTooLong = fmt.Errorf("password exceeds %d bytes", BcryptMaxPasswordBytes)
)

// PasswordHasher — односторонний хэш пароля и его проверка.
//
// Verify определяет алгоритм по префиксу сохранённого хэша, поэтому
// смена password.hasher не ломает вход пользователям со старыми хэшами.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// BcryptHasher хэширует пароли bcrypt с заданной стоимостью.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > BcryptMaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

// Verify возвращает false без ошибки, если пароль не подошёл.
func (h BcryptHasher) Verify(password, encoded string) (bool, error) {
	if strings.HasPrefix(encoded, argon2Prefix) {
		return Argon2Hasher{}.Verify(password, encoded)
	}
	// такой пароль не мог быть захэширован
	if len(password) > BcryptMaxPasswordBytes {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("bcrypt: %w", err)
}

type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
	SaltLen   uint32
}

// Argon2Hasher хэширует пароли argon2id.
type Argon2Hasher struct {
	Params Argon2Params
}

// Hash возвращает строку формата:
// argon2id$v=19$m=65536,t=3,p=2$<salt_b64>$<hash_b64>
func (h Argon2Hasher) Hash(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	p := h.Params

	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)

	encoded := fmt.Sprintf(
		"argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.MemoryKiB, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
	return encoded, nil
}

// Verify берёт параметры из самой строки хэша, поэтому старые хэши
// проверяются и после смены настроек.
func (h Argon2Hasher) Verify(password, encoded string) (bool, error) {
	if strings.HasPrefix(encoded, bcryptPrefix) {
		return BcryptHasher{}.Verify(password, encoded)
	}
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "argon2id" {
		return false, errors.New("invalid hash format")
	}

	// parts[1] = v=19
	// parts[2] = m=...,t=...,p=...
	// parts[3] = salt
	// parts[4] = hash
	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, errors.New("invalid params format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, errors.New("invalid salt")
	}

	wantHash, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, errors.New("invalid hash")
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(wantHash)))
	return subtle.ConstantTimeCompare(got, wantHash) == 1, nil
}

// NewPasswordHasher выбирает реализацию по password.hasher из конфига.
func NewPasswordHasher(cfg config.PasswordConfig) (PasswordHasher, error) {
	switch strings.ToLower(cfg.Hasher) {
	case config.HasherBcrypt, "":
		return BcryptHasher{Cost: cfg.Bcrypt.Cost}, nil
	case config.HasherArgon2id:
		a := cfg.Argon2
		return Argon2Hasher{Params: Argon2Params{
			Time:      a.Time,
			MemoryKiB: a.MemoryKiB,
			Threads:   a.Threads,
			KeyLen:    a.KeyLen,
			SaltLen:   a.SaltLen,
		}}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", cfg.Hasher)
	}
}
