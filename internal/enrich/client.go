// Package enrich generates the AI derived structures of a note: summary,
// key concepts and mind map. Every call to the generative endpoint is best
// effort; failures degrade the note, they never fail it.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/studymind/studymind/internal/pkg/logger"
)

// Config holds the generative endpoint settings, injected at construction.
// Endpoint and APIKey follow the Gemini REST convention: the key is a query
// parameter, the prompt travels as a single content part.
type Config struct {
	Endpoint string
	APIKey   string
	Model    string
}

// Client sends one prompt and returns the generated text. A nil result means
// the enrichment is unavailable — transport error, non-2xx status or an
// unexpected payload — and callers must tolerate it.
type Client interface {
	Generate(ctx context.Context, prompt string) *string
}

type contentPart struct {
	Text string `json:"text"`
}

type promptContent struct {
	Parts []contentPart `json:"parts"`
}

type generateRequest struct {
	Contents []promptContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content promptContent `json:"content"`
	} `json:"candidates"`
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewClient creates the HTTP enrichment client. The http.Client is injected
// so transport defaults (and tests) stay in the caller's hands.
func NewClient(cfg Config, hc *http.Client) Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &httpClient{cfg: cfg, http: hc}
}

// Generate performs a single generateContent call. Each call is attempted
// exactly once: no retry, no backoff, no rate limiting.
func (c *httpClient) Generate(ctx context.Context, prompt string) *string {
	reqBody := generateRequest{
		Contents: []promptContent{{Parts: []contentPart{{Text: prompt}}}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to encode generation request")
		return nil
	}

	url := fmt.Sprintf("%s?key=%s", c.cfg.Endpoint, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build generation request")
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("Generative API request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error().Int("status", resp.StatusCode).Msg("Generative API returned non-2xx status")
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read generation response")
		return nil
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		logger.Error().Err(err).Msg("Failed to decode generation response")
		return nil
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		logger.Error().Msg("Generation response has no candidates")
		return nil
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	return &text
}

// disabledClient is used when no endpoint or API key is configured
type disabledClient struct{}

func (disabledClient) Generate(ctx context.Context, prompt string) *string { return nil }

// NewDisabledClient returns a client whose calls always report the
// enrichment as unavailable.
func NewDisabledClient() Client { return disabledClient{} }
