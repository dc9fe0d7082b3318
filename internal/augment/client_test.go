package augment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/dmitrijs2005/galeri/internal/logging"
)

type fakeGenerator struct {
	calls      int
	lastModel  string
	lastPrompt string
	lastConfig *genai.GenerateContentConfig
	resp       *genai.GenerateContentResponse
	err        error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.lastModel = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.lastPrompt = contents[0].Parts[0].Text
	}
	f.lastConfig = config
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(f *fakeGenerator) *Client {
	return &Client{gen: f, model: DefaultModel, logger: testLogger()}
}

func textResponse(s string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: s}}}},
		},
	}
}

func TestNew_WithoutCredentialIsUnavailable(t *testing.T) {
	c := New(context.Background(), Config{}, testLogger())
	assert.False(t, c.Available())
}

func TestUnavailable_NoNetworkAndTypedOutcome(t *testing.T) {
	// gen stays nil: any attempted call would panic, proving nothing is
	// invoked when the guard reports unavailable.
	c := &Client{model: DefaultModel, logger: testLogger()}
	ctx := context.Background()

	_, err := c.AutofillManuscript(ctx, "Babad Tanah Jawi")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.GenerateDescription(ctx, "Babad Tanah Jawi", "")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.GeneratePostIdeas(ctx, "")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.Summarize(ctx, "teks panjang")
	assert.ErrorIs(t, err, ErrUnavailable)

	answer, err := c.SearchGrounded(ctx, "siapa penulis Babad Tanah Jawi?")
	require.NoError(t, err)
	assert.NotEmpty(t, answer.Text)
	assert.Empty(t, answer.Sources)
}

func TestAutofillManuscript_ParsesPlainJSON(t *testing.T) {
	f := &fakeGenerator{resp: textResponse(`{"author":"Carik Braja","description":"Sejarah raja-raja Jawa.","category":"Babad","language":"Jawa","script":"Hanacaraka","condition":"Baik","readability":"Jelas"}`)}
	c := newTestClient(f)

	draft, err := c.AutofillManuscript(context.Background(), "Babad Tanah Jawi")
	require.NoError(t, err)
	assert.Equal(t, "Carik Braja", draft.Author)
	assert.Equal(t, "Babad", draft.Category)

	require.NotNil(t, f.lastConfig)
	assert.Equal(t, "application/json", f.lastConfig.ResponseMIMEType)
	require.NotNil(t, f.lastConfig.Temperature)
	assert.InDelta(t, 0.5, float64(*f.lastConfig.Temperature), 1e-6)
	assert.Contains(t, f.lastPrompt, "Babad Tanah Jawi")
}

func TestAutofillManuscript_FencedAndPlainParseIdentically(t *testing.T) {
	payload := `{"author":"Carik Braja","description":"d","category":"Babad","language":"Jawa","script":"Kawi","condition":"Rapuh","readability":"Memudar"}`

	plain := newTestClient(&fakeGenerator{resp: textResponse(payload)})
	fenced := newTestClient(&fakeGenerator{resp: textResponse("```json\n" + payload + "\n```")})

	a, err := plain.AutofillManuscript(context.Background(), "t")
	require.NoError(t, err)
	b, err := fenced.AutofillManuscript(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAutofillManuscript_NonObjectJSONIsMalformed(t *testing.T) {
	c := newTestClient(&fakeGenerator{resp: textResponse(`42`)})

	_, err := c.AutofillManuscript(context.Background(), "t")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestAutofillManuscript_InvalidJSONIsMalformed(t *testing.T) {
	c := newTestClient(&fakeGenerator{resp: textResponse(`{"author": "Carik`)})

	_, err := c.AutofillManuscript(context.Background(), "t")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestAutofillManuscript_TransportFailure(t *testing.T) {
	c := newTestClient(&fakeGenerator{err: errors.New("connection reset")})

	_, err := c.AutofillManuscript(context.Background(), "t")
	assert.ErrorIs(t, err, ErrTransport)
}

func TestGenerateDescription_ReturnsTrimmedText(t *testing.T) {
	f := &fakeGenerator{resp: textResponse("\nNaskah langka dari abad ke-18.\n")}
	c := newTestClient(f)

	got, err := c.GenerateDescription(context.Background(), "Serat Centhini", "ensiklopedia jawa")
	require.NoError(t, err)
	assert.Equal(t, "Naskah langka dari abad ke-18.", got)

	require.NotNil(t, f.lastConfig.Temperature)
	assert.InDelta(t, 0.7, float64(*f.lastConfig.Temperature), 1e-6)
	assert.Empty(t, f.lastConfig.ResponseMIMEType)
	assert.Contains(t, f.lastPrompt, "ensiklopedia jawa")
}

func TestGeneratePostIdeas_ValidArray(t *testing.T) {
	c := newTestClient(&fakeGenerator{resp: textResponse("```json\n[\"Ide 1\", \"Ide 2\", \"Ide 3\"]\n```")})

	ideas, err := c.GeneratePostIdeas(context.Background(), "konservasi")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ide 1", "Ide 2", "Ide 3"}, ideas)
}

func TestGeneratePostIdeas_RejectsNonStringElements(t *testing.T) {
	c := newTestClient(&fakeGenerator{resp: textResponse(`["Ide 1", 2, "Ide 3"]`)})

	_, err := c.GeneratePostIdeas(context.Background(), "")
	require.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "unexpected response shape")
}

func TestGeneratePostIdeas_RejectsObject(t *testing.T) {
	c := newTestClient(&fakeGenerator{resp: textResponse(`{"ideas": ["Ide 1"]}`)})

	_, err := c.GeneratePostIdeas(context.Background(), "")
	require.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "unexpected response shape")
}

func TestSummarize_PassesTextThrough(t *testing.T) {
	f := &fakeGenerator{resp: textResponse("Ringkasan singkat.")}
	c := newTestClient(f)

	got, err := c.Summarize(context.Background(), "teks yang sangat panjang")
	require.NoError(t, err)
	assert.Equal(t, "Ringkasan singkat.", got)
	assert.Contains(t, f.lastPrompt, "teks yang sangat panjang")
}

func TestSearchGrounded_ExtractsCitations(t *testing.T) {
	resp := textResponse("Babad Tanah Jawi ditulis di lingkungan keraton Mataram.")
	resp.Candidates[0].GroundingMetadata = &genai.GroundingMetadata{
		GroundingChunks: []*genai.GroundingChunk{
			{Web: &genai.GroundingChunkWeb{URI: "https://example.org/babad", Title: "Babad Tanah Jawi"}},
			{RetrievedContext: &genai.GroundingChunkRetrievedContext{URI: "doc://arsip/1", Title: "Arsip"}},
			nil,
		},
	}
	f := &fakeGenerator{resp: resp}
	c := newTestClient(f)

	answer, err := c.SearchGrounded(context.Background(), "asal Babad Tanah Jawi")
	require.NoError(t, err)
	require.Len(t, answer.Sources, 2)
	require.NotNil(t, answer.Sources[0].Web)
	assert.Equal(t, "https://example.org/babad", answer.Sources[0].Web.URI)
	require.NotNil(t, answer.Sources[1].RetrievedContext)
	assert.Equal(t, "Arsip", answer.Sources[1].RetrievedContext.Title)

	require.NotNil(t, f.lastConfig)
	require.Len(t, f.lastConfig.Tools, 1)
	assert.NotNil(t, f.lastConfig.Tools[0].GoogleSearch)
}

func TestSearchGrounded_NoMetadataMeansNoSources(t *testing.T) {
	c := newTestClient(&fakeGenerator{resp: textResponse("Tidak ada sumber.")})

	answer, err := c.SearchGrounded(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "Tidak ada sumber.", answer.Text)
	assert.Empty(t, answer.Sources)
}

func TestSearchGrounded_TransportFailure(t *testing.T) {
	c := newTestClient(&fakeGenerator{err: errors.New("timeout")})

	_, err := c.SearchGrounded(context.Background(), "q")
	assert.ErrorIs(t, err, ErrTransport)
}
