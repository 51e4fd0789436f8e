package repository

import (
	"context"
	"database/sql"
)

// HealthRepository проверяет доступность PostgreSQL.
type HealthRepository struct {
	base
}

func NewHealthRepository(db *sql.DB, opts ...Option) *HealthRepository {
	return &HealthRepository{base: newBase(db, opts)}
}

func (r *HealthRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	if err := r.db.PingContext(ctx); err != nil {
		return mapErr("ping", err)
	}
	return nil
}
