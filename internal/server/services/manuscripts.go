// Package services contains the thin business layer between the HTTP API and
// the repositories: input validation, diagnostic logging and error
// pass-through. No operation spans more than one store round trip.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/galeri/internal/common"
	"github.com/dmitrijs2005/galeri/internal/logging"
	"github.com/dmitrijs2005/galeri/internal/server/models"
	"github.com/dmitrijs2005/galeri/internal/server/repositories/manuscripts"
)

// DefaultPageSize is used when a caller does not supply a page size.
const DefaultPageSize = 20

// ManuscriptService exposes manuscript CRUD with validation on top of the
// repository.
type ManuscriptService struct {
	repo   manuscripts.Repository
	logger logging.Logger
}

func NewManuscriptService(repo manuscripts.Repository, logger logging.Logger) *ManuscriptService {
	return &ManuscriptService{repo: repo, logger: logger}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	return page, limit
}

func (s *ManuscriptService) List(ctx context.Context, page, limit int, search string) ([]*models.Manuscript, int64, error) {
	page, limit = normalizePage(page, limit)
	data, total, err := s.repo.List(ctx, page, limit, search)
	if err != nil {
		s.logger.Error(ctx, "listing manuscripts failed", "page", page, "limit", limit, "error", err)
		return nil, 0, err
	}
	return data, total, nil
}

func (s *ManuscriptService) GetByID(ctx context.Context, id string) (*models.Manuscript, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "fetching manuscript failed", "id", id, "error", err)
		}
		return nil, err
	}
	return m, nil
}

func (s *ManuscriptService) Create(ctx context.Context, m *models.Manuscript) (*models.Manuscript, error) {
	if m.Status == "" {
		m.Status = models.StatusAvailable
	}
	if !m.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrorValidation, m.Status)
	}
	if m.PageCount < 0 {
		return nil, fmt.Errorf("%w: page count must not be negative", common.ErrorValidation)
	}
	// The store assigns identity; a client-supplied id is dropped.
	m.ID = ""

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		s.logger.Error(ctx, "creating manuscript failed", "title", m.Title, "error", err)
		return nil, err
	}
	s.logger.Info(ctx, "manuscript created", "id", created.ID, "title", created.Title)
	return created, nil
}

func (s *ManuscriptService) Update(ctx context.Context, id string, upd *models.ManuscriptUpdate) (*models.Manuscript, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrorValidation, *upd.Status)
	}
	if upd.PageCount != nil && *upd.PageCount < 0 {
		return nil, fmt.Errorf("%w: page count must not be negative", common.ErrorValidation)
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "updating manuscript failed", "id", id, "error", err)
		}
		return nil, err
	}
	s.logger.Info(ctx, "manuscript updated", "id", id)
	return updated, nil
}

func (s *ManuscriptService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "deleting manuscript failed", "id", id, "error", err)
		}
		return err
	}
	s.logger.Info(ctx, "manuscript deleted", "id", id)
	return nil
}
