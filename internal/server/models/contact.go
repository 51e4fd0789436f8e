package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	shared "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/models"
)

// DefaultContactType проставляется, если тип контакта не передан.
const DefaultContactType = "personal"

// Contact — контакт, принадлежащий ровно одному пользователю.
// UserID задаётся при создании и дальше не меняется.
type Contact struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Email     string
	Phone     string
	Type      string
	CreatedAt time.Time
}

// Public переводит контакт в модель API.
func (c Contact) Public() shared.Contact {
	return shared.Contact{
		ID:    c.ID.String(),
		User:  c.UserID.String(),
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
		Type:  c.Type,
		Date:  c.CreatedAt,
	}
}

// PublicContacts переводит список контактов в модели API.
// Для пустого списка возвращает пустой (не nil) слайс, чтобы в JSON был [].
func PublicContacts(list []Contact) []shared.Contact {
	out := make([]shared.Contact, 0, len(list))
	for _, c := range list {
		out = append(out, c.Public())
	}
	return out
}

// ContactPatch — набор полей для частичного обновления контакта.
// nil означает "поле не передано, оставить как есть".
type ContactPatch struct {
	Name  *string
	Email *string
	Phone *string
	Type  *string
}

// NewContactPatch строит патч из тела запроса.
// Пустые (после TrimSpace) строки считаются непереданными.
func NewContactPatch(req shared.UpdateContactRequest) ContactPatch {
	return ContactPatch{
		Name:  present(req.Name),
		Email: present(req.Email),
		Phone: present(req.Phone),
		Type:  present(req.Type),
	}
}

// Empty сообщает, что в патче нет ни одного поля.
func (p ContactPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Type == nil
}

// Apply возвращает копию контакта с применённым патчем.
// ID, UserID и CreatedAt не меняются никогда.
func (p ContactPatch) Apply(c Contact) Contact {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	return c
}

func present(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
