// Package augment wraps the Gemini generative service behind typed,
// best-effort authoring helpers: structured autofill for manuscript records,
// free-text generation, title ideas, summaries and grounded search. Every
// helper is optional for the gallery to function; when no credential is
// configured the client degrades to an explicit unavailable outcome without
// ever touching the network.
package augment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/dmitrijs2005/galeri/internal/logging"
)

// DefaultModel is the generative model used when none is configured.
const DefaultModel = "gemini-2.5-flash-preview-04-17"

// Config controls the augmentation client. Availability is decided once, at
// construction, from the presence of APIKey; there is no runtime toggle.
type Config struct {
	APIKey string
	Model  string
}

// generator is the slice of the genai SDK the client uses. *genai.Models
// satisfies it; tests substitute a fake.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client issues augmentation calls against the generative service.
type Client struct {
	gen    generator
	model  string
	logger logging.Logger
}

// New builds the augmentation client. With an empty API key, or when the SDK
// cannot be initialized, the client is constructed in unavailable mode:
// Available reports false and no operation ever reaches the network.
func New(ctx context.Context, cfg Config, logger logging.Logger) *Client {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	c := &Client{model: model, logger: logger}

	if cfg.APIKey == "" {
		logger.Warn(ctx, "no generative service credential configured, augmentation disabled")
		return c
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Error(ctx, "generative client init failed, augmentation disabled", "error", err)
		return c
	}
	c.gen = gc.Models
	return c
}

// Available reports whether augmentation calls can be attempted.
func (c *Client) Available() bool { return c.gen != nil }

// ManuscriptDraft is the structured autofill proposal for a manuscript
// record. Every field is a best guess meant to be reviewed before persisting.
type ManuscriptDraft struct {
	Author      string `json:"author"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Language    string `json:"language"`
	Script      string `json:"script"`
	Condition   string `json:"condition"`
	Readability string `json:"readability"`
}

// AutofillManuscript asks the model to propose field values for a manuscript
// with the given title. The response must be a JSON object; anything else is
// discarded with ErrMalformedResponse.
func (c *Client) AutofillManuscript(ctx context.Context, title string) (*ManuscriptDraft, error) {
	if !c.Available() {
		return nil, ErrUnavailable
	}

	resp, err := c.gen.GenerateContent(ctx, c.model, genai.Text(autofillPrompt(title)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.5),
	})
	if err != nil {
		c.logger.Error(ctx, "manuscript autofill call failed", "title", title, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	raw := StripFence(resp.Text())

	var probe any
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		c.logger.Error(ctx, "manuscript autofill returned invalid JSON", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformedResponse)
	}

	var draft ManuscriptDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &draft, nil
}

// GenerateDescription produces one short descriptive paragraph (roughly
// 50-100 words) for a manuscript title, optionally steered by keywords.
func (c *Client) GenerateDescription(ctx context.Context, title, keywords string) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}

	resp, err := c.gen.GenerateContent(ctx, c.model, genai.Text(descriptionPrompt(title, keywords)), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	})
	if err != nil {
		c.logger.Error(ctx, "description generation call failed", "title", title, "error", err)
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

// GeneratePostIdeas returns candidate blog post titles, optionally focused on
// a topic. The model must answer with a JSON array of strings; any other
// shape is rejected whole.
func (c *Client) GeneratePostIdeas(ctx context.Context, topic string) ([]string, error) {
	if !c.Available() {
		return nil, ErrUnavailable
	}

	resp, err := c.gen.GenerateContent(ctx, c.model, genai.Text(postIdeasPrompt(topic)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.8),
	})
	if err != nil {
		c.logger.Error(ctx, "post idea generation call failed", "topic", topic, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	raw := StripFence(resp.Text())

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		c.logger.Error(ctx, "post idea generation returned invalid JSON", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	items, ok := parsed.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected response shape", ErrMalformedResponse)
	}
	ideas := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected response shape", ErrMalformedResponse)
		}
		ideas = append(ideas, s)
	}
	return ideas, nil
}

// Summarize condenses the given text into two or three sentences.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}

	resp, err := c.gen.GenerateContent(ctx, c.model, genai.Text(summarizePrompt(text)), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.5),
	})
	if err != nil {
		c.logger.Error(ctx, "summarize call failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

// SourceRef points at one cited document.
type SourceRef struct {
	URI   string `json:"uri,omitempty"`
	Title string `json:"title,omitempty"`
}

// Source is one citation attached to a grounded answer: a web result, a
// retrieved-context document, or both.
type Source struct {
	Web              *SourceRef `json:"web,omitempty"`
	RetrievedContext *SourceRef `json:"retrievedContext,omitempty"`
}

// GroundedAnswer is the outcome of a grounded search: the answer text plus
// zero or more citations.
type GroundedAnswer struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// SearchGrounded answers a free-text query with the external-search tool
// enabled for this call only. When the client is unavailable it returns an
// explanatory answer with no sources instead of failing.
func (c *Client) SearchGrounded(ctx context.Context, query string) (*GroundedAnswer, error) {
	if !c.Available() {
		return &GroundedAnswer{
			Text:    "Layanan AI tidak tersedia (kredensial belum diatur). Pencarian tidak dapat dilakukan.",
			Sources: []Source{},
		}, nil
	}

	resp, err := c.gen.GenerateContent(ctx, c.model, genai.Text(searchPrompt(query)), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		c.logger.Error(ctx, "grounded search call failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	answer := &GroundedAnswer{Text: strings.TrimSpace(resp.Text()), Sources: []Source{}}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk == nil {
				continue
			}
			var src Source
			if chunk.Web != nil {
				src.Web = &SourceRef{URI: chunk.Web.URI, Title: chunk.Web.Title}
			}
			if chunk.RetrievedContext != nil {
				src.RetrievedContext = &SourceRef{URI: chunk.RetrievedContext.URI, Title: chunk.RetrievedContext.Title}
			}
			if src.Web != nil || src.RetrievedContext != nil {
				answer.Sources = append(answer.Sources, src)
			}
		}
	}
	return answer, nil
}
