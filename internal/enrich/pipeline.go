package enrich

import (
	"context"
	"encoding/json"
	"time"

	"github.com/studymind/studymind/internal/app/models"
	"github.com/studymind/studymind/internal/pkg/logger"
)

const (
	defaultModel      = "gemini-1.5-pro"
	defaultConfidence = 0.95
)

// Result carries the outcome of an enrichment run. Each field is optional:
// a stage that fails, or whose response cannot be decoded, leaves its field
// unset. Metadata is always populated.
type Result struct {
	Summary     *string
	KeyConcepts []models.KeyConcept
	MindMap     *models.MindMap
	Metadata    models.AIMetadata
}

// Pipeline runs the three enrichment stages against extracted content.
type Pipeline struct {
	client Client
	model  string
}

// NewPipeline builds the enrichment pipeline. The model name only labels
// the resulting metadata; routing to a model is the endpoint's concern.
func NewPipeline(client Client, model string) *Pipeline {
	if model == "" {
		model = defaultModel
	}
	return &Pipeline{client: client, model: model}
}

// Run executes summary, key concepts and mind map generation sequentially
// against the same content. startedAt anchors the processing-time metadata
// so it covers the whole note processing, not just the AI calls.
func (p *Pipeline) Run(ctx context.Context, content string, startedAt time.Time) Result {
	res := Result{}

	res.Summary = p.client.Generate(ctx, summaryPrompt(content))
	if res.Summary == nil {
		logger.Warn().Msg("Summary generation unavailable, note keeps empty summary")
	}

	if raw := p.client.Generate(ctx, conceptsPrompt(content)); raw != nil {
		res.KeyConcepts = decodeConcepts(*raw)
	} else {
		logger.Warn().Msg("Key concept generation unavailable")
	}

	if raw := p.client.Generate(ctx, mindMapPrompt(content)); raw != nil {
		res.MindMap = decodeMindMap(*raw)
	} else {
		logger.Warn().Msg("Mind map generation unavailable")
	}

	res.Metadata = models.AIMetadata{
		Model:          p.model,
		Confidence:     defaultConfidence,
		ProcessingTime: time.Since(startedAt).Milliseconds(),
	}
	return res
}

// decodeConcepts parses the concepts stage response. A response that is not
// the requested JSON array is logged and dropped.
func decodeConcepts(raw string) []models.KeyConcept {
	var concepts []models.KeyConcept
	if err := json.Unmarshal([]byte(unfence(raw)), &concepts); err != nil {
		logger.Warn().Err(err).Msg("Key concept response is not valid JSON, skipping")
		return nil
	}
	if len(concepts) == 0 {
		return nil
	}
	return concepts
}

// decodeMindMap parses the mind-map stage response and attaches the fixed
// styles and layout hints. Anything undecodable or without nodes is dropped.
func decodeMindMap(raw string) *models.MindMap {
	var m models.MindMap
	if err := json.Unmarshal([]byte(unfence(raw)), &m); err != nil {
		logger.Warn().Err(err).Msg("Mind map response is not valid JSON, skipping")
		return nil
	}
	if len(m.Nodes) == 0 {
		logger.Warn().Msg("Mind map response has no nodes, skipping")
		return nil
	}
	applyVisualDefaults(&m)
	return &m
}
