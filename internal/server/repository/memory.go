package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/errors"
)

// MemoryStore — потокобезопасное in-memory хранилище пользователей и контактов.
//
// Используется при db.driver: memory (локальная разработка, тесты).
// Данные живут до остановки процесса.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]models.User
	emails   map[string]uuid.UUID
	contacts map[uuid.UUID]models.Contact

	// now задаёт время создания записей. Подменяется в тестах.
	now func() time.Time
}

// NewMemoryStore создаёт пустое хранилище.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uuid.UUID]models.User),
		emails:   make(map[string]uuid.UUID),
		contacts: make(map[uuid.UUID]models.Contact),
		now:      time.Now,
	}
}

// SetClock подменяет источник времени.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Users возвращает репозиторий пользователей поверх хранилища.
func (s *MemoryStore) Users() *MemoryUsers { return &MemoryUsers{s: s} }

// Contacts возвращает репозиторий контактов поверх хранилища.
func (s *MemoryStore) Contacts() *MemoryContacts { return &MemoryContacts{s: s} }

// Ping всегда успешен.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// MemoryUsers — пользователи в MemoryStore.
type MemoryUsers struct {
	s *MemoryStore
}

// Create сохраняет пользователя. ErrAlreadyExists, если email занят.
func (r *MemoryUsers) Create(_ context.Context, u models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.emails[u.Email]; ok {
		return models.User{}, serr.ErrAlreadyExists
	}

	u.ID = uuid.New()
	u.CreatedAt = r.s.now().UTC()
	r.s.users[u.ID] = u
	r.s.emails[u.Email] = u.ID
	return u, nil
}

func (r *MemoryUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[email]
	if !ok {
		return models.User{}, serr.ErrNotFound
	}
	return r.s.users[id], nil
}

func (r *MemoryUsers) GetByID(_ context.Context, id uuid.UUID) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return models.User{}, serr.ErrNotFound
	}
	return u, nil
}

// MemoryContacts — контакты в MemoryStore.
type MemoryContacts struct {
	s *MemoryStore
}

// Create сохраняет контакт. Владелец должен существовать, как и с внешним ключом в PostgreSQL.
func (r *MemoryContacts) Create(_ context.Context, c models.Contact) (models.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[c.UserID]; !ok {
		return models.Contact{}, serr.ErrInvalidInput
	}

	c.ID = uuid.New()
	c.CreatedAt = r.s.now().UTC()
	r.s.contacts[c.ID] = c
	return c, nil
}

func (r *MemoryContacts) GetByID(_ context.Context, id uuid.UUID) (models.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.contacts[id]
	if !ok {
		return models.Contact{}, serr.ErrNotFound
	}
	return c, nil
}

// ListByUser возвращает контакты пользователя, новые первыми.
// При равном времени порядок стабилен по ID.
func (r *MemoryContacts) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Contact, 0)
	for _, c := range r.s.contacts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *MemoryContacts) Update(_ context.Context, id uuid.UUID, p models.ContactPatch) (models.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.contacts[id]
	if !ok {
		return models.Contact{}, serr.ErrNotFound
	}
	c = p.Apply(c)
	r.s.contacts[id] = c
	return c, nil
}

func (r *MemoryContacts) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.contacts[id]; !ok {
		return serr.ErrNotFound
	}
	delete(r.s.contacts, id)
	return nil
}
