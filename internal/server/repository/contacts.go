package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/errors"
)

const contactColumns = `id, user_id, name, email, phone, type, created_at`

// ContactsRepository хранит контакты в PostgreSQL.
type ContactsRepository struct {
	base
}

func NewContactsRepository(db *sql.DB, opts ...Option) *ContactsRepository {
	return &ContactsRepository{base: newBase(db, opts)}
}

// Create сохраняет контакт. ID и CreatedAt назначает база.
func (r *ContactsRepository) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO contacts (user_id, name, email, phone, type)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING id, created_at`,
		c.UserID, c.Name, c.Email, c.Phone, c.Type,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return models.Contact{}, mapErr("insert contact", err)
	}
	return c, nil
}

// GetByID возвращает контакт без проверки владельца.
//
// Ошибки:
//   - ErrNotFound — контакта нет
//   - ErrInternal — ошибка базы данных
func (r *ContactsRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Contact, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	var c models.Contact
	err := r.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id=$1`,
		id,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Type, &c.CreatedAt)
	if err != nil {
		return models.Contact{}, mapErr("select contact", err)
	}
	return c, nil
}

// ListByUser возвращает контакты пользователя, новые первыми.
// Для пользователя без контактов возвращает пустой слайс.
func (r *ContactsRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Contact, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+contactColumns+` FROM contacts
		 WHERE user_id=$1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, mapErr("list contacts", err)
	}
	defer rows.Close()

	out := make([]models.Contact, 0)
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Type, &c.CreatedAt); err != nil {
			return nil, mapErr("scan contact", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("iterate contacts", err)
	}
	return out, nil
}

// Update применяет патч к контакту одним запросом.
// NULL в COALESCE оставляет колонку как есть.
func (r *ContactsRepository) Update(ctx context.Context, id uuid.UUID, p models.ContactPatch) (models.Contact, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	var c models.Contact
	err := r.db.QueryRowContext(ctx,
		`UPDATE contacts SET
		   name  = COALESCE($2, name),
		   email = COALESCE($3, email),
		   phone = COALESCE($4, phone),
		   type  = COALESCE($5, type)
		 WHERE id=$1
		 RETURNING `+contactColumns,
		id, nullString(p.Name), nullString(p.Email), nullString(p.Phone), nullString(p.Type),
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Type, &c.CreatedAt)
	if err != nil {
		return models.Contact{}, mapErr("update contact", err)
	}
	return c, nil
}

// Delete удаляет контакт. ErrNotFound, если удалять нечего.
func (r *ContactsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id=$1`, id)
	if err != nil {
		return mapErr("delete contact", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapErr("delete contact", err)
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}
