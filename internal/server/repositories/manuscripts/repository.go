package manuscripts

import (
	"context"

	"github.com/dmitrijs2005/galeri/internal/server/models"
)

// Repository is the persistence contract for manuscript records.
//
// List is offset-paginated (1-based page), ordered by creation time
// descending, and returns the total count of matching rows so callers can
// compute page counts. A non-blank search term filters case-insensitively
// on title, description and author.
type Repository interface {
	List(ctx context.Context, page, limit int, search string) ([]*models.Manuscript, int64, error)
	GetByID(ctx context.Context, id string) (*models.Manuscript, error)
	Create(ctx context.Context, m *models.Manuscript) (*models.Manuscript, error)
	Update(ctx context.Context, id string, upd *models.ManuscriptUpdate) (*models.Manuscript, error)
	Delete(ctx context.Context, id string) error
}
