// Package httpapi exposes the gallery operations as a JSON HTTP API for the
// web frontend.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/galeri/internal/augment"
	"github.com/dmitrijs2005/galeri/internal/logging"
	"github.com/dmitrijs2005/galeri/internal/server/models"
)

// ManuscriptService is the slice of the manuscript service the API consumes.
type ManuscriptService interface {
	List(ctx context.Context, page, limit int, search string) ([]*models.Manuscript, int64, error)
	GetByID(ctx context.Context, id string) (*models.Manuscript, error)
	Create(ctx context.Context, m *models.Manuscript) (*models.Manuscript, error)
	Update(ctx context.Context, id string, upd *models.ManuscriptUpdate) (*models.Manuscript, error)
	Delete(ctx context.Context, id string) error
}

// PostService is the slice of the blog post service the API consumes.
type PostService interface {
	List(ctx context.Context, page, limit int, search string) ([]*models.Post, int64, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
	Update(ctx context.Context, id string, upd *models.PostUpdate) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, postID, author, text string) (*models.Comment, error)
}

// GuestbookService is the slice of the guestbook service the API consumes.
type GuestbookService interface {
	List(ctx context.Context, page, limit int, search string) ([]*models.GuestbookEntry, int64, error)
	GetByID(ctx context.Context, id string) (*models.GuestbookEntry, error)
	Create(ctx context.Context, e *models.GuestbookEntry) (*models.GuestbookEntry, error)
	Update(ctx context.Context, id string, upd *models.GuestbookEntryUpdate) (*models.GuestbookEntry, error)
	Delete(ctx context.Context, id string) error
}

// Augmenter is the slice of the augmentation client the API consumes.
type Augmenter interface {
	Available() bool
	AutofillManuscript(ctx context.Context, title string) (*augment.ManuscriptDraft, error)
	GenerateDescription(ctx context.Context, title, keywords string) (string, error)
	GeneratePostIdeas(ctx context.Context, topic string) ([]string, error)
	Summarize(ctx context.Context, text string) (string, error)
	SearchGrounded(ctx context.Context, query string) (*augment.GroundedAnswer, error)
}

// Server routes HTTP requests to the gallery services.
type Server struct {
	manuscripts ManuscriptService
	posts       PostService
	guestbook   GuestbookService
	ai          Augmenter
	logger      logging.Logger
}

func NewServer(manuscripts ManuscriptService, posts PostService, guestbook GuestbookService, ai Augmenter, logger logging.Logger) *Server {
	return &Server{
		manuscripts: manuscripts,
		posts:       posts,
		guestbook:   guestbook,
		ai:          ai,
		logger:      logger,
	}
}

// Handler returns the full route table wrapped in the shared middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/manuscripts", s.listManuscripts)
	mux.HandleFunc("POST /api/manuscripts", s.createManuscript)
	mux.HandleFunc("GET /api/manuscripts/{id}", s.getManuscript)
	mux.HandleFunc("PUT /api/manuscripts/{id}", s.updateManuscript)
	mux.HandleFunc("DELETE /api/manuscripts/{id}", s.deleteManuscript)

	mux.HandleFunc("GET /api/posts", s.listPosts)
	mux.HandleFunc("POST /api/posts", s.createPost)
	mux.HandleFunc("GET /api/posts/{id}", s.getPost)
	mux.HandleFunc("PUT /api/posts/{id}", s.updatePost)
	mux.HandleFunc("DELETE /api/posts/{id}", s.deletePost)
	mux.HandleFunc("POST /api/posts/{id}/comments", s.addComment)

	mux.HandleFunc("GET /api/guestbook", s.listGuestbook)
	mux.HandleFunc("POST /api/guestbook", s.createGuestbookEntry)
	mux.HandleFunc("GET /api/guestbook/{id}", s.getGuestbookEntry)
	mux.HandleFunc("PUT /api/guestbook/{id}", s.updateGuestbookEntry)
	mux.HandleFunc("DELETE /api/guestbook/{id}", s.deleteGuestbookEntry)

	mux.HandleFunc("GET /api/ai/status", s.aiStatus)
	mux.HandleFunc("POST /api/ai/autofill", s.aiAutofill)
	mux.HandleFunc("POST /api/ai/description", s.aiDescription)
	mux.HandleFunc("POST /api/ai/ideas", s.aiIdeas)
	mux.HandleFunc("POST /api/ai/summarize", s.aiSummarize)
	mux.HandleFunc("POST /api/ai/search", s.aiSearch)

	return s.withRequestID(s.withCORS(mux))
}

// Run serves the API on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
