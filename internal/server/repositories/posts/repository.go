package posts

import (
	"context"

	"github.com/dmitrijs2005/galeri/internal/server/models"
)

// Repository is the persistence contract for journal posts and their
// comments. List and GetByID inline each post's comments ordered by creation
// time ascending. Comments are append-only: they are created only through
// AddComment, and post create/update payloads never carry them.
type Repository interface {
	List(ctx context.Context, page, limit int, search string) ([]*models.Post, int64, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
	Update(ctx context.Context, id string, upd *models.PostUpdate) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, postID string, c *models.Comment) (*models.Comment, error)
}
