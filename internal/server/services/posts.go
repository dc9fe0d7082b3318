package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/galeri/internal/common"
	"github.com/dmitrijs2005/galeri/internal/logging"
	"github.com/dmitrijs2005/galeri/internal/server/models"
	"github.com/dmitrijs2005/galeri/internal/server/repositories/posts"
)

// PostService exposes journal post CRUD and comment appending.
type PostService struct {
	repo   posts.Repository
	logger logging.Logger
}

func NewPostService(repo posts.Repository, logger logging.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

func (s *PostService) List(ctx context.Context, page, limit int, search string) ([]*models.Post, int64, error) {
	page, limit = normalizePage(page, limit)
	data, total, err := s.repo.List(ctx, page, limit, search)
	if err != nil {
		s.logger.Error(ctx, "listing posts failed", "page", page, "limit", limit, "error", err)
		return nil, 0, err
	}
	return data, total, nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "fetching post failed", "id", id, "error", err)
		}
		return nil, err
	}
	return p, nil
}

func (s *PostService) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	p.ID = ""
	// Comments are append-only and never accepted through the post payload.
	p.Comments = nil

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		s.logger.Error(ctx, "creating post failed", "title", p.Title, "error", err)
		return nil, err
	}
	s.logger.Info(ctx, "post created", "id", created.ID, "title", created.Title)
	return created, nil
}

func (s *PostService) Update(ctx context.Context, id string, upd *models.PostUpdate) (*models.Post, error) {
	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "updating post failed", "id", id, "error", err)
		}
		return nil, err
	}
	s.logger.Info(ctx, "post updated", "id", id)
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "deleting post failed", "id", id, "error", err)
		}
		return err
	}
	s.logger.Info(ctx, "post deleted", "id", id)
	return nil
}

// AddComment appends a comment to a post and returns the stored record so
// the caller can render it optimistically.
func (s *PostService) AddComment(ctx context.Context, postID, author, text string) (*models.Comment, error) {
	if strings.TrimSpace(author) == "" {
		return nil, fmt.Errorf("%w: comment author is required", common.ErrorValidation)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", common.ErrorValidation)
	}

	c, err := s.repo.AddComment(ctx, postID, &models.Comment{Author: author, Text: text})
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "adding comment failed", "post_id", postID, "error", err)
		}
		return nil, err
	}
	s.logger.Info(ctx, "comment added", "post_id", postID, "comment_id", c.ID)
	return c, nil
}
