// Package guestbook provides the PostgreSQL-backed repository for guestbook
// entries.
package guestbook

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/galeri/internal/common"
	"github.com/dmitrijs2005/galeri/internal/dbx"
	"github.com/dmitrijs2005/galeri/internal/server/models"
)

const columns = `id, name, message, created_at`

// PostgresRepository implements guestbook storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns one page of entries, newest first, and the total count.
func (r *PostgresRepository) List(ctx context.Context, page, limit int, search string) ([]*models.GuestbookEntry, int64, error) {
	where := ""
	args := []any{}
	if p := dbx.SearchPattern(search); p != "" {
		where = ` WHERE name ILIKE $1 OR message ILIKE $1`
		args = append(args, p)
	}

	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM guestbook_entries`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, &common.StoreError{Op: "guestbook.count", Err: err}
	}

	query := fmt.Sprintf(`SELECT %s FROM guestbook_entries%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		columns, where, len(args)+1, len(args)+2)
	args = append(args, limit, dbx.Offset(page, limit))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, &common.StoreError{Op: "guestbook.list", Err: err}
	}
	defer rows.Close()

	result := []*models.GuestbookEntry{}
	for rows.Next() {
		var e models.GuestbookEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Message, &e.CreatedAt); err != nil {
			return nil, 0, &common.StoreError{Op: "guestbook.list", Err: err}
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, &common.StoreError{Op: "guestbook.list", Err: err}
	}
	return result, total, nil
}

// GetByID returns one entry or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.GuestbookEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM guestbook_entries WHERE id = $1`, columns)

	var e models.GuestbookEntry
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Message, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, &common.StoreError{Op: "guestbook.get", Err: err}
	}
	return &e, nil
}

// Create inserts a new entry; the store assigns id and created_at.
func (r *PostgresRepository) Create(ctx context.Context, e *models.GuestbookEntry) (*models.GuestbookEntry, error) {
	query := `
		INSERT INTO guestbook_entries (name, message)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, e.Name, e.Message).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return nil, &common.StoreError{Op: "guestbook.create", Err: err}
	}
	return e, nil
}

// Update applies a partial update, or returns common.ErrorNotFound.
func (r *PostgresRepository) Update(ctx context.Context, id string, upd *models.GuestbookEntryUpdate) (*models.GuestbookEntry, error) {
	query := fmt.Sprintf(`
		UPDATE guestbook_entries SET
			name = COALESCE($2, name),
			message = COALESCE($3, message)
		WHERE id = $1
		RETURNING %s
	`, columns)

	var e models.GuestbookEntry
	err := r.db.QueryRowContext(ctx, query, id, upd.Name, upd.Message).
		Scan(&e.ID, &e.Name, &e.Message, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, &common.StoreError{Op: "guestbook.update", Err: err}
	}
	return &e, nil
}

// Delete removes an entry, or returns common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM guestbook_entries WHERE id = $1`, id)
	if err != nil {
		return &common.StoreError{Op: "guestbook.delete", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &common.StoreError{Op: "guestbook.delete", Err: err}
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
