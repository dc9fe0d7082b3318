// Package manuscripts provides the PostgreSQL-backed repository for
// manuscript records.
package manuscripts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/galeri/internal/common"
	"github.com/dmitrijs2005/galeri/internal/dbx"
	"github.com/dmitrijs2005/galeri/internal/server/models"
)

const columns = `id, title, author, inventory_code, digital_code, status, copyist, copy_year,
		page_count, ink, category, language, script, size, description, condition,
		readability, colophon, cover_image_url, external_folder_url, created_at`

// PostgresRepository implements manuscript storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scan(row interface{ Scan(dest ...any) error }, m *models.Manuscript) error {
	return row.Scan(
		&m.ID, &m.Title, &m.Author, &m.InventoryCode, &m.DigitalCode, &m.Status,
		&m.Copyist, &m.CopyYear, &m.PageCount, &m.Ink, &m.Category, &m.Language,
		&m.Script, &m.Size, &m.Description, &m.Condition, &m.Readability,
		&m.Colophon, &m.CoverImageURL, &m.ExternalFolderURL, &m.CreatedAt,
	)
}

// List returns one page of manuscripts, newest first, together with the
// total number of rows matching the search term.
func (r *PostgresRepository) List(ctx context.Context, page, limit int, search string) ([]*models.Manuscript, int64, error) {
	where := ""
	args := []any{}
	if p := dbx.SearchPattern(search); p != "" {
		where = ` WHERE title ILIKE $1 OR description ILIKE $1 OR author ILIKE $1`
		args = append(args, p)
	}

	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM manuscripts`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, &common.StoreError{Op: "manuscripts.count", Err: err}
	}

	query := fmt.Sprintf(`SELECT %s FROM manuscripts%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		columns, where, len(args)+1, len(args)+2)
	args = append(args, limit, dbx.Offset(page, limit))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, &common.StoreError{Op: "manuscripts.list", Err: err}
	}
	defer rows.Close()

	result := []*models.Manuscript{}
	for rows.Next() {
		var m models.Manuscript
		if err := scan(rows, &m); err != nil {
			return nil, 0, &common.StoreError{Op: "manuscripts.list", Err: err}
		}
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, &common.StoreError{Op: "manuscripts.list", Err: err}
	}
	return result, total, nil
}

// GetByID returns one manuscript or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Manuscript, error) {
	query := fmt.Sprintf(`SELECT %s FROM manuscripts WHERE id = $1`, columns)

	var m models.Manuscript
	err := scan(r.db.QueryRowContext(ctx, query, id), &m)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, &common.StoreError{Op: "manuscripts.get", Err: err}
	}
	return &m, nil
}

// Create inserts a new manuscript. The store assigns id and created_at;
// any client-supplied identity is ignored.
func (r *PostgresRepository) Create(ctx context.Context, m *models.Manuscript) (*models.Manuscript, error) {
	query := `
		INSERT INTO manuscripts (title, author, inventory_code, digital_code, status, copyist,
			copy_year, page_count, ink, category, language, script, size, description,
			condition, readability, colophon, cover_image_url, external_folder_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		m.Title, m.Author, m.InventoryCode, m.DigitalCode, m.Status, m.Copyist,
		m.CopyYear, m.PageCount, m.Ink, m.Category, m.Language, m.Script, m.Size,
		m.Description, m.Condition, m.Readability, m.Colophon, m.CoverImageURL,
		m.ExternalFolderURL,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, &common.StoreError{Op: "manuscripts.create", Err: err}
	}
	return m, nil
}

// Update applies a partial update; nil fields keep their stored values.
// Returns the updated row, or common.ErrorNotFound for an unknown id.
func (r *PostgresRepository) Update(ctx context.Context, id string, upd *models.ManuscriptUpdate) (*models.Manuscript, error) {
	query := fmt.Sprintf(`
		UPDATE manuscripts SET
			title = COALESCE($2, title),
			author = COALESCE($3, author),
			inventory_code = COALESCE($4, inventory_code),
			digital_code = COALESCE($5, digital_code),
			status = COALESCE($6, status),
			copyist = COALESCE($7, copyist),
			copy_year = COALESCE($8, copy_year),
			page_count = COALESCE($9, page_count),
			ink = COALESCE($10, ink),
			category = COALESCE($11, category),
			language = COALESCE($12, language),
			script = COALESCE($13, script),
			size = COALESCE($14, size),
			description = COALESCE($15, description),
			condition = COALESCE($16, condition),
			readability = COALESCE($17, readability),
			colophon = COALESCE($18, colophon),
			cover_image_url = COALESCE($19, cover_image_url),
			external_folder_url = COALESCE($20, external_folder_url)
		WHERE id = $1
		RETURNING %s
	`, columns)

	var m models.Manuscript
	err := scan(r.db.QueryRowContext(ctx, query, id,
		upd.Title, upd.Author, upd.InventoryCode, upd.DigitalCode, upd.Status,
		upd.Copyist, upd.CopyYear, upd.PageCount, upd.Ink, upd.Category,
		upd.Language, upd.Script, upd.Size, upd.Description, upd.Condition,
		upd.Readability, upd.Colophon, upd.CoverImageURL, upd.ExternalFolderURL,
	), &m)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, &common.StoreError{Op: "manuscripts.update", Err: err}
	}
	return &m, nil
}

// Delete removes a manuscript. Deleting an unknown id returns
// common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM manuscripts WHERE id = $1`, id)
	if err != nil {
		return &common.StoreError{Op: "manuscripts.delete", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &common.StoreError{Op: "manuscripts.delete", Err: err}
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
