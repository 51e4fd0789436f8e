// Package repository реализует хранилища пользователей и контактов:
// PostgreSQL (database/sql + pgx) и in-memory.
//
// Репозитории не содержат бизнес-логики. Ошибки драйвера переводятся
// в общие ошибки из internal/shared/errors.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"

	serr "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/errors"
)

// pgUniqueViolation — SQLSTATE нарушения уникального индекса.
const pgUniqueViolation = "23505"

// Option настраивает Postgres-репозиторий.
type Option func(*base)

// WithQueryTimeout ограничивает время каждого запроса к базе.
// Ноль означает "без ограничения, только ctx запроса".
func WithQueryTimeout(d time.Duration) Option {
	return func(b *base) { b.timeout = d }
}

// base — общее для Postgres-репозиториев: пул и таймаут запроса.
type base struct {
	db      *sql.DB
	timeout time.Duration
}

func newBase(db *sql.DB, opts []Option) base {
	b := base{db: db}
	for _, o := range opts {
		o(&b)
	}
	return b
}

func (b base) ctx(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, b.timeout)
}

// mapErr переводит ошибку драйвера в доменную.
func mapErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return serr.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return serr.ErrAlreadyExists
	}
	return fmt.Errorf("%w: %s: %v", serr.ErrInternal, op, err)
}
