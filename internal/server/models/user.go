// Серверные модели пользователя и контакта
package models

import (
	"time"

	"github.com/google/uuid"

	shared "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/models"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Public возвращает пользователя без хэша пароля.
func (u User) Public() shared.User {
	return shared.User{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Date:  u.CreatedAt,
	}
}
