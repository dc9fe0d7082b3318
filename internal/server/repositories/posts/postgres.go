// Package posts provides the PostgreSQL-backed repository for journal posts
// and their comments.
package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/galeri/internal/common"
	"github.com/dmitrijs2005/galeri/internal/dbx"
	"github.com/dmitrijs2005/galeri/internal/server/models"
)

const postColumns = `id, title, author, summary, content, image_url, created_at`

const commentColumns = `id, post_id, author, text, created_at`

// PostgresRepository implements post storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanPost(row interface{ Scan(dest ...any) error }, p *models.Post) error {
	return row.Scan(&p.ID, &p.Title, &p.Author, &p.Summary, &p.Content, &p.ImageURL, &p.CreatedAt)
}

// commentsForPost loads a post's comments oldest-first, so the collection
// reads chronologically.
func (r *PostgresRepository) commentsForPost(ctx context.Context, postID string) ([]models.Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM comments WHERE post_id = $1 ORDER BY created_at ASC`, commentColumns)

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Author, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// List returns one page of posts, newest first, with comments inlined, and
// the total number of posts matching the search term.
func (r *PostgresRepository) List(ctx context.Context, page, limit int, search string) ([]*models.Post, int64, error) {
	where := ""
	args := []any{}
	if p := dbx.SearchPattern(search); p != "" {
		where = ` WHERE title ILIKE $1 OR summary ILIKE $1 OR author ILIKE $1`
		args = append(args, p)
	}

	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM blog_posts`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, &common.StoreError{Op: "posts.count", Err: err}
	}

	query := fmt.Sprintf(`SELECT %s FROM blog_posts%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		postColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, dbx.Offset(page, limit))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, &common.StoreError{Op: "posts.list", Err: err}
	}
	defer rows.Close()

	result := []*models.Post{}
	for rows.Next() {
		var p models.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, 0, &common.StoreError{Op: "posts.list", Err: err}
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, &common.StoreError{Op: "posts.list", Err: err}
	}

	for _, p := range result {
		comments, err := r.commentsForPost(ctx, p.ID)
		if err != nil {
			return nil, 0, &common.StoreError{Op: "posts.comments", Err: err}
		}
		p.Comments = comments
	}
	return result, total, nil
}

// GetByID returns one post with its comments, or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM blog_posts WHERE id = $1`, postColumns)

	var p models.Post
	err := scanPost(r.db.QueryRowContext(ctx, query, id), &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, &common.StoreError{Op: "posts.get", Err: err}
	}

	comments, err := r.commentsForPost(ctx, p.ID)
	if err != nil {
		return nil, &common.StoreError{Op: "posts.comments", Err: err}
	}
	p.Comments = comments
	return &p, nil
}

// Create inserts a new post. The store assigns id and created_at; the
// comments collection always starts empty.
func (r *PostgresRepository) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	query := `
		INSERT INTO blog_posts (title, author, summary, content, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, p.Title, p.Author, p.Summary, p.Content, p.ImageURL).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, &common.StoreError{Op: "posts.create", Err: err}
	}
	p.Comments = []models.Comment{}
	return p, nil
}

// Update applies a partial update of the post's own fields and returns the
// row with comments inlined, or common.ErrorNotFound for an unknown id.
func (r *PostgresRepository) Update(ctx context.Context, id string, upd *models.PostUpdate) (*models.Post, error) {
	query := fmt.Sprintf(`
		UPDATE blog_posts SET
			title = COALESCE($2, title),
			author = COALESCE($3, author),
			summary = COALESCE($4, summary),
			content = COALESCE($5, content),
			image_url = COALESCE($6, image_url)
		WHERE id = $1
		RETURNING %s
	`, postColumns)

	var p models.Post
	err := scanPost(r.db.QueryRowContext(ctx, query, id,
		upd.Title, upd.Author, upd.Summary, upd.Content, upd.ImageURL), &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, &common.StoreError{Op: "posts.update", Err: err}
	}

	comments, err := r.commentsForPost(ctx, p.ID)
	if err != nil {
		return nil, &common.StoreError{Op: "posts.comments", Err: err}
	}
	p.Comments = comments
	return &p, nil
}

// Delete removes a post; its comments go with it (ON DELETE CASCADE).
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return &common.StoreError{Op: "posts.delete", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &common.StoreError{Op: "posts.delete", Err: err}
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// AddComment appends a comment to a post and returns the stored record with
// its assigned id and timestamp. A missing parent post surfaces as
// common.ErrorNotFound (foreign key violation).
func (r *PostgresRepository) AddComment(ctx context.Context, postID string, c *models.Comment) (*models.Comment, error) {
	query := `
		INSERT INTO comments (post_id, author, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, postID, c.Author, c.Text).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, common.ErrorNotFound
		}
		return nil, &common.StoreError{Op: "posts.addcomment", Err: err}
	}
	c.PostID = postID
	return c, nil
}
