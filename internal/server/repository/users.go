package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/models"
)

// UsersRepository хранит пользователей в PostgreSQL.
type UsersRepository struct {
	base
}

func NewUsersRepository(db *sql.DB, opts ...Option) *UsersRepository {
	return &UsersRepository{base: newBase(db, opts)}
}

// Create сохраняет пользователя. ID и CreatedAt назначает база.
//
// Ошибки:
//   - ErrAlreadyExists — email уже занят
//   - ErrInternal — ошибка базы данных
func (r *UsersRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1,$2,$3)
		 RETURNING id, created_at`,
		u.Name, u.Email, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return models.User{}, mapErr("insert user", err)
	}
	return u, nil
}

// GetByEmail ищет пользователя по email (email хранится в нижнем регистре).
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email=$1`,
		email,
	), "select user by email")
}

func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE id=$1`,
		id,
	), "select user by id")
}

func (r *UsersRepository) scanOne(row *sql.Row, op string) (models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return models.User{}, mapErr(op, err)
	}
	return u, nil
}
