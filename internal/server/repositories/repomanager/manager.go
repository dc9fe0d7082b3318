package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/galeri/internal/dbx"
	"github.com/dmitrijs2005/galeri/internal/server/repositories/guestbook"
	"github.com/dmitrijs2005/galeri/internal/server/repositories/manuscripts"
	"github.com/dmitrijs2005/galeri/internal/server/repositories/posts"
)

// RepositoryManager vends the entity repositories backing the gallery and
// exposes the schema migration hook.
type RepositoryManager interface {
	Manuscripts(db dbx.DBTX) manuscripts.Repository
	Posts(db dbx.DBTX) posts.Repository
	Guestbook(db dbx.DBTX) guestbook.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
