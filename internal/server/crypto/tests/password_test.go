package tests

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/config"
	crypt "github.com/IvanChernomyrdin/go-contact-keeper/internal/server/crypto"
)

func defaultParams() crypt.Argon2Params {
	return crypt.Argon2Params{
		Time:      1,
		MemoryKiB: 32 * 1024,
		Threads:   1,
		KeyLen:    32,
		SaltLen:   16,
	}
}

func hashers() map[string]crypt.PasswordHasher {
	return map[string]crypt.PasswordHasher{
		"bcrypt":   crypt.BcryptHasher{Cost: bcrypt.MinCost},
		"argon2id": crypt.Argon2Hasher{Params: defaultParams()},
	}
}

// Хэширование и успешная проверка
func TestHashAndVerify_OK(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			hash, err := h.Hash("correct horse battery staple")
			if err != nil {
				t.Fatalf("Hash error: %v", err)
			}
			if strings.Contains(hash, "correct horse") {
				t.Fatal("hash contains plaintext")
			}

			ok, err := h.Verify("correct horse battery staple", hash)
			if err != nil {
				t.Fatalf("Verify error: %v", err)
			}
			if !ok {
				t.Fatal("expected password to match")
			}
		})
	}
}

// Неверный пароль: false без ошибки
func TestVerify_WrongPassword(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			hash, err := h.Hash("password123")
			if err != nil {
				t.Fatalf("Hash error: %v", err)
			}

			ok, err := h.Verify("password124", hash)
			if err != nil {
				t.Fatalf("Verify error: %v", err)
			}
			if ok {
				t.Fatal("expected mismatch")
			}
		})
	}
}

func TestHash_EmptyPassword(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			if _, err := h.Hash("   "); !errors.Is(err, crypt.ErrEmptyPassword) {
				t.Fatalf("expected ErrEmptyPassword, got %v", err)
			}
		})
	}
}

// Одинаковый пароль даёт разные хэши (соль)
func TestHash_Salted(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			a, _ := h.Hash("password123")
			b, _ := h.Hash("password123")
			if a == b {
				t.Fatal("expected different hashes")
			}
		})
	}
}

func TestArgon2Verify_InvalidFormat(t *testing.T) {
	h := crypt.Argon2Hasher{Params: defaultParams()}

	cases := []string{
		"",
		"argon2id$v=19$m=1,t=1,p=1$salt",
		"bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA",
		"argon2id$v=19$m=1,t=1,p=1$c2FsdA$!!!",
	}
	for _, enc := range cases {
		if _, err := h.Verify("x", enc); err == nil {
			t.Fatalf("expected error for %q", enc)
		}
	}
}

func TestBcryptVerify_InvalidHash(t *testing.T) {
	if _, err := (crypt.BcryptHasher{Cost: bcrypt.MinCost}).Verify("x", "not-a-bcrypt-hash"); err == nil {
		t.Fatal("expected error for malformed bcrypt hash")
	}
}

func TestNewPasswordHasher(t *testing.T) {
	h, err := crypt.NewPasswordHasher(config.PasswordConfig{Hasher: config.HasherBcrypt, Bcrypt: config.BcryptConfig{Cost: 4}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := h.(crypt.BcryptHasher); !ok {
		t.Fatalf("expected BcryptHasher, got %T", h)
	}

	h, err = crypt.NewPasswordHasher(config.PasswordConfig{
		Hasher: config.HasherArgon2id,
		Argon2: config.Argon2Config{Time: 1, MemoryKiB: 1024, Threads: 1, KeyLen: 16, SaltLen: 8},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := h.(crypt.Argon2Hasher); !ok {
		t.Fatalf("expected Argon2Hasher, got %T", h)
	}

	if _, err := crypt.NewPasswordHasher(config.PasswordConfig{Hasher: "md5"}); err == nil {
		t.Fatal("expected error for unknown hasher")
	}
}

// bcrypt режет пароль на 72 байтах, поэтому длиннее не хэшируем
func TestBcryptHash_TooLong(t *testing.T) {
	h := crypt.BcryptHasher{Cost: bcrypt.MinCost}

	if _, err := h.Hash(strings.Repeat("a", crypt.BcryptMaxPasswordBytes)); err != nil {
		t.Fatalf("72 bytes must be accepted: %v", err)
	}

	_, err := h.Hash(strings.Repeat("a", crypt.BcryptMaxPasswordBytes+1))
	if !errors.Is(err, crypt.ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}

// длинный пароль при входе: false без ошибки, а не 500
func TestBcryptVerify_TooLong(t *testing.T) {
	h := crypt.BcryptHasher{Cost: bcrypt.MinCost}
	pw := strings.Repeat("a", crypt.BcryptMaxPasswordBytes)
	hash, err := h.Hash(pw)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify(pw+"tail", hash)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatal("expected mismatch for password longer than 72 bytes")
	}
}

// хэш, созданный одним алгоритмом, проверяется и другим
func TestVerify_CrossAlgorithm(t *testing.T) {
	bc := crypt.BcryptHasher{Cost: bcrypt.MinCost}
	ar := crypt.Argon2Hasher{Params: defaultParams()}

	cases := []struct {
		name   string
		hash   crypt.PasswordHasher
		verify crypt.PasswordHasher
	}{
		{name: "bcrypt hash, argon2id verifier", hash: bc, verify: ar},
		{name: "argon2id hash, bcrypt verifier", hash: ar, verify: bc},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hash, err := tc.hash.Hash("password123")
			if err != nil {
				t.Fatalf("Hash error: %v", err)
			}

			ok, err := tc.verify.Verify("password123", hash)
			if err != nil {
				t.Fatalf("Verify error: %v", err)
			}
			if !ok {
				t.Fatal("expected password to match")
			}

			ok, err = tc.verify.Verify("password124", hash)
			if err != nil {
				t.Fatalf("Verify error: %v", err)
			}
			if ok {
				t.Fatal("expected mismatch")
			}
		})
	}
}
