package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/galeri/internal/common"
	"github.com/dmitrijs2005/galeri/internal/logging"
	"github.com/dmitrijs2005/galeri/internal/server/models"
	"github.com/dmitrijs2005/galeri/internal/server/repositories/guestbook"
)

// GuestbookService exposes guestbook CRUD.
type GuestbookService struct {
	repo   guestbook.Repository
	logger logging.Logger
}

func NewGuestbookService(repo guestbook.Repository, logger logging.Logger) *GuestbookService {
	return &GuestbookService{repo: repo, logger: logger}
}

func (s *GuestbookService) List(ctx context.Context, page, limit int, search string) ([]*models.GuestbookEntry, int64, error) {
	page, limit = normalizePage(page, limit)
	data, total, err := s.repo.List(ctx, page, limit, search)
	if err != nil {
		s.logger.Error(ctx, "listing guestbook entries failed", "page", page, "limit", limit, "error", err)
		return nil, 0, err
	}
	return data, total, nil
}

func (s *GuestbookService) GetByID(ctx context.Context, id string) (*models.GuestbookEntry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "fetching guestbook entry failed", "id", id, "error", err)
		}
		return nil, err
	}
	return e, nil
}

func (s *GuestbookService) Create(ctx context.Context, e *models.GuestbookEntry) (*models.GuestbookEntry, error) {
	if strings.TrimSpace(e.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if strings.TrimSpace(e.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", common.ErrorValidation)
	}
	e.ID = ""

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		s.logger.Error(ctx, "creating guestbook entry failed", "name", e.Name, "error", err)
		return nil, err
	}
	s.logger.Info(ctx, "guestbook entry created", "id", created.ID)
	return created, nil
}

func (s *GuestbookService) Update(ctx context.Context, id string, upd *models.GuestbookEntryUpdate) (*models.GuestbookEntry, error) {
	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "updating guestbook entry failed", "id", id, "error", err)
		}
		return nil, err
	}
	s.logger.Info(ctx, "guestbook entry updated", "id", id)
	return updated, nil
}

func (s *GuestbookService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "deleting guestbook entry failed", "id", id, "error", err)
		}
		return err
	}
	s.logger.Info(ctx, "guestbook entry deleted", "id", id)
	return nil
}
