// Package service содержит бизнес-логику приложения (contact keeper).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
//
// Идентификатор вызывающего пользователя передаётся в методы явно,
// сервисы не читают его из context.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users    UsersRepo
	Contacts ContactsRepo
	Health   HealthRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth     *AuthService
	Contacts *ContactsService
	Health   *HealthService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (хэшер пароля, параметры токена).
func NewServices(repos Repositories, cfg *config.Config) (*Services, error) {
	auth, err := NewAuthService(repos.Users, cfg)
	if err != nil {
		return nil, err
	}
	return &Services{
		Auth:     auth,
		Contacts: NewContactsService(repos.Contacts),
		Health:   NewHealthService(repos.Health),
	}, nil
}

// HealthRepo — минимально нужное для health-check.
type HealthRepo interface {
	Ping(ctx context.Context) error
}

// UsersRepo — репозиторий пользователей (нужен для register/login/whoami).
type UsersRepo interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// ContactsRepo — репозиторий контактов.
// Проверку владельца репозиторий не делает, это задача ContactsService.
type ContactsRepo interface {
	Create(ctx context.Context, c models.Contact) (models.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Contact, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Contact, error)
	Update(ctx context.Context, id uuid.UUID, p models.ContactPatch) (models.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
