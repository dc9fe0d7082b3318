package guestbook

import (
	"context"

	"github.com/dmitrijs2005/galeri/internal/server/models"
)

// Repository is the persistence contract for guestbook entries. Same
// pagination and search conventions as the other repositories; the search
// term matches name and message.
type Repository interface {
	List(ctx context.Context, page, limit int, search string) ([]*models.GuestbookEntry, int64, error)
	GetByID(ctx context.Context, id string) (*models.GuestbookEntry, error)
	Create(ctx context.Context, e *models.GuestbookEntry) (*models.GuestbookEntry, error)
	Update(ctx context.Context, id string, upd *models.GuestbookEntryUpdate) (*models.GuestbookEntry, error)
	Delete(ctx context.Context, id string) error
}
