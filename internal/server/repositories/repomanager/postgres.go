// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/galeri/internal/dbx"
	"github.com/dmitrijs2005/galeri/internal/server/migrations"
	"github.com/dmitrijs2005/galeri/internal/server/repositories/guestbook"
	"github.com/dmitrijs2005/galeri/internal/server/repositories/manuscripts"
	"github.com/dmitrijs2005/galeri/internal/server/repositories/posts"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed
// RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}

// Manuscripts returns a manuscripts.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Manuscripts(db dbx.DBTX) manuscripts.Repository {
	return manuscripts.NewPostgresRepository(db)
}

// Posts returns a posts.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Posts(db dbx.DBTX) posts.Repository {
	return posts.NewPostgresRepository(db)
}

// Guestbook returns a guestbook.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Guestbook(db dbx.DBTX) guestbook.Repository {
	return guestbook.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
