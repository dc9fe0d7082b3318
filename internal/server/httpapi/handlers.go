package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/galeri/internal/augment"
	"github.com/dmitrijs2005/galeri/internal/common"
	"github.com/dmitrijs2005/galeri/internal/server/models"
	"github.com/dmitrijs2005/galeri/internal/server/services"
)

// pagedResponse is the envelope for every list endpoint.
type pagedResponse struct {
	Data  any   `json:"data"`
	Total int64 `json:"total"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, augment.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, augment.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// pageParams extracts page, limit and search from the query string. Absent
// or unparseable values fall back to page 1 and the default page size.
func pageParams(r *http.Request) (page, limit int, search string) {
	q := r.URL.Query()
	page, _ = strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = services.DefaultPageSize
	}
	return page, limit, q.Get("search")
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("invalid request body")
	}
	return nil
}

// --- manuscripts ---

func (s *Server) listManuscripts(w http.ResponseWriter, r *http.Request) {
	page, limit, search := pageParams(r)
	items, total, err := s.manuscripts.List(r.Context(), page, limit, search)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, pagedResponse{Data: items, Total: total})
}

func (s *Server) getManuscript(w http.ResponseWriter, r *http.Request) {
	m, err := s.manuscripts.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, m)
}

func (s *Server) createManuscript(w http.ResponseWriter, r *http.Request) {
	var m models.Manuscript
	if err := decodeBody(r, &m); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	created, err := s.manuscripts.Create(r.Context(), &m)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateManuscript(w http.ResponseWriter, r *http.Request) {
	var upd models.ManuscriptUpdate
	if err := decodeBody(r, &upd); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	m, err := s.manuscripts.Update(r.Context(), r.PathValue("id"), &upd)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, m)
}

func (s *Server) deleteManuscript(w http.ResponseWriter, r *http.Request) {
	if err := s.manuscripts.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- blog posts ---

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	page, limit, search := pageParams(r)
	items, total, err := s.posts.List(r.Context(), page, limit, search)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, pagedResponse{Data: items, Total: total})
}

func (s *Server) getPost(w http.ResponseWriter, r *http.Request) {
	p, err := s.posts.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	var p models.Post
	if err := decodeBody(r, &p); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	created, err := s.posts.Create(r.Context(), &p)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updatePost(w http.ResponseWriter, r *http.Request) {
	var upd models.PostUpdate
	if err := decodeBody(r, &upd); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	p, err := s.posts.Update(r.Context(), r.PathValue("id"), &upd)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) deletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.posts.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Author string `json:"author"`
		Text   string `json:"text"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	c, err := s.posts.AddComment(r.Context(), r.PathValue("id"), req.Author, req.Text)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, c)
}

// --- guestbook ---

func (s *Server) listGuestbook(w http.ResponseWriter, r *http.Request) {
	page, limit, search := pageParams(r)
	items, total, err := s.guestbook.List(r.Context(), page, limit, search)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, pagedResponse{Data: items, Total: total})
}

func (s *Server) getGuestbookEntry(w http.ResponseWriter, r *http.Request) {
	e, err := s.guestbook.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, e)
}

func (s *Server) createGuestbookEntry(w http.ResponseWriter, r *http.Request) {
	var e models.GuestbookEntry
	if err := decodeBody(r, &e); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	created, err := s.guestbook.Create(r.Context(), &e)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateGuestbookEntry(w http.ResponseWriter, r *http.Request) {
	var upd models.GuestbookEntryUpdate
	if err := decodeBody(r, &upd); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	e, err := s.guestbook.Update(r.Context(), r.PathValue("id"), &upd)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, e)
}

func (s *Server) deleteGuestbookEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.guestbook.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- ai ---

func (s *Server) aiStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]bool{"available": s.ai.Available()})
}

func (s *Server) aiAutofill(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	draft, err := s.ai.AutofillManuscript(r.Context(), req.Title)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, draft)
}

func (s *Server) aiDescription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string `json:"title"`
		Keywords string `json:"keywords"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	text, err := s.ai.GenerateDescription(r.Context(), req.Title, req.Keywords)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (s *Server) aiIdeas(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic string `json:"topic"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	ideas, err := s.ai.GeneratePostIdeas(r.Context(), req.Topic)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"ideas": ideas})
}

func (s *Server) aiSummarize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	summary, err := s.ai.Summarize(r.Context(), req.Text)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"text": summary})
}

func (s *Server) aiSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	answer, err := s.ai.SearchGrounded(r.Context(), req.Query)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, answer)
}
