package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/errors"
)

// ContactsService — CRUD контактов в пределах одного пользователя.
type ContactsService struct {
	repo ContactsRepo
}

func NewContactsService(repo ContactsRepo) *ContactsService {
	return &ContactsService{repo: repo}
}

// ContactInput — поля нового контакта.
type ContactInput struct {
	Name  string
	Email string
	Phone string
	Type  string
}

// List возвращает контакты пользователя, новые первыми.
func (s *ContactsService) List(ctx context.Context, userID uuid.UUID) ([]models.Contact, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create сохраняет контакт с владельцем userID.
// Пустой тип заменяется на DefaultContactType.
//
// Ошибки:
//   - ErrInvalidInput — пустое имя
func (s *ContactsService) Create(ctx context.Context, userID uuid.UUID, in ContactInput) (models.Contact, error) {
	c := models.Contact{
		UserID: userID,
		Name:   strings.TrimSpace(in.Name),
		Email:  strings.TrimSpace(in.Email),
		Phone:  strings.TrimSpace(in.Phone),
		Type:   strings.TrimSpace(in.Type),
	}
	if c.Name == "" {
		return models.Contact{}, serr.ErrInvalidInput
	}
	if c.Type == "" {
		c.Type = models.DefaultContactType
	}
	return s.repo.Create(ctx, c)
}

// Update применяет патч к контакту пользователя.
//
// Ошибки:
//   - ErrNotFound — контакта нет
//   - ErrForbidden — контакт принадлежит другому пользователю, ничего не меняется
func (s *ContactsService) Update(ctx context.Context, userID, id uuid.UUID, p models.ContactPatch) (models.Contact, error) {
	c, err := s.owned(ctx, userID, id)
	if err != nil {
		return models.Contact{}, err
	}
	if p.Empty() {
		return c, nil
	}
	return s.repo.Update(ctx, id, p)
}

// Delete удаляет контакт пользователя. Ошибки как у Update.
func (s *ContactsService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// owned загружает контакт и проверяет владельца.
func (s *ContactsService) owned(ctx context.Context, userID, id uuid.UUID) (models.Contact, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Contact{}, err
	}
	if c.UserID != userID {
		return models.Contact{}, serr.ErrForbidden
	}
	return c, nil
}
