package tests

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/models"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/utils"
)

// часы, которые идут на секунду при каждом вызове
func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func newUser(t *testing.T, s *repository.MemoryStore, email string) models.User {
	t.Helper()
	u, err := s.Users().Create(context.Background(), models.User{Name: "N", Email: email, PasswordHash: "h"})
	require.NoError(t, err)
	return u
}

func TestMemoryUsers_CreateAndGet(t *testing.T) {
	s := repository.NewMemoryStore()
	ctx := context.Background()

	u := newUser(t, s, "a@mail.com")
	require.NotEqual(t, uuid.Nil, u.ID)
	require.False(t, u.CreatedAt.IsZero())

	byEmail, err := s.Users().GetByEmail(ctx, "a@mail.com")
	require.NoError(t, err)
	require.Equal(t, u, byEmail)

	byID, err := s.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u, byID)

	_, err = s.Users().Create(ctx, models.User{Email: "a@mail.com"})
	require.ErrorIs(t, err, serr.ErrAlreadyExists)

	_, err = s.Users().GetByEmail(ctx, "nobody@mail.com")
	require.ErrorIs(t, err, serr.ErrNotFound)

	_, err = s.Users().GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestMemoryContacts_ListNewestFirstAndScoped(t *testing.T) {
	s := repository.NewMemoryStore()
	s.SetClock(tickingClock())
	ctx := context.Background()

	alice := newUser(t, s, "alice@mail.com")
	bob := newUser(t, s, "bob@mail.com")

	first, err := s.Contacts().Create(ctx, models.Contact{UserID: alice.ID, Name: "First"})
	require.NoError(t, err)
	second, err := s.Contacts().Create(ctx, models.Contact{UserID: alice.ID, Name: "Second"})
	require.NoError(t, err)
	_, err = s.Contacts().Create(ctx, models.Contact{UserID: bob.ID, Name: "Bob's"})
	require.NoError(t, err)

	list, err := s.Contacts().ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)

	empty, err := s.Contacts().ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestMemoryContacts_CreateUnknownOwner(t *testing.T) {
	s := repository.NewMemoryStore()

	_, err := s.Contacts().Create(context.Background(), models.Contact{UserID: uuid.New(), Name: "X"})
	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

func TestMemoryContacts_UpdateMergesAndKeepsOwner(t *testing.T) {
	s := repository.NewMemoryStore()
	ctx := context.Background()

	u := newUser(t, s, "a@mail.com")
	c, err := s.Contacts().Create(ctx, models.Contact{UserID: u.ID, Name: "Bob", Email: "bob@mail.com", Type: "personal"})
	require.NoError(t, err)

	got, err := s.Contacts().Update(ctx, c.ID, models.ContactPatch{Phone: utils.Ptr("555")})
	require.NoError(t, err)
	require.Equal(t, "Bob", got.Name)
	require.Equal(t, "bob@mail.com", got.Email)
	require.Equal(t, "555", got.Phone)
	require.Equal(t, u.ID, got.UserID)
	require.Equal(t, c.CreatedAt, got.CreatedAt)

	stored, err := s.Contacts().GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, got, stored)

	_, err = s.Contacts().Update(ctx, uuid.New(), models.ContactPatch{})
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestMemoryContacts_Delete(t *testing.T) {
	s := repository.NewMemoryStore()
	ctx := context.Background()

	u := newUser(t, s, "a@mail.com")
	c, err := s.Contacts().Create(ctx, models.Contact{UserID: u.ID, Name: "Bob"})
	require.NoError(t, err)

	require.NoError(t, s.Contacts().Delete(ctx, c.ID))
	require.ErrorIs(t, s.Contacts().Delete(ctx, c.ID), serr.ErrNotFound)

	_, err = s.Contacts().GetByID(ctx, c.ID)
	require.True(t, errors.Is(err, serr.ErrNotFound))
}

func TestMemoryStore_Ping(t *testing.T) {
	s := repository.NewMemoryStore()
	require.NoError(t, s.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, s.Ping(ctx))
}

// параллельные записи не теряются
func TestMemoryContacts_ConcurrentCreate(t *testing.T) {
	s := repository.NewMemoryStore()
	ctx := context.Background()
	u := newUser(t, s, "a@mail.com")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Contacts().Create(ctx, models.Contact{UserID: u.ID, Name: "C"}); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	list, err := s.Contacts().ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 50)
}
