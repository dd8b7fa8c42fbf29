package enrich

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient returns canned responses keyed by the order of calls
type scriptedClient struct {
	responses []*string
	calls     int
}

func (c *scriptedClient) Generate(ctx context.Context, prompt string) *string {
	if c.calls >= len(c.responses) {
		return nil
	}
	resp := c.responses[c.calls]
	c.calls++
	return resp
}

func str(s string) *string { return &s }

func TestRunAllStagesUnavailable(t *testing.T) {
	client := &scriptedClient{responses: []*string{nil, nil, nil}}
	p := NewPipeline(client, "")

	started := time.Now().Add(-50 * time.Millisecond)
	res := p.Run(context.Background(), "some content", started)

	assert.Nil(t, res.Summary)
	assert.Nil(t, res.KeyConcepts)
	assert.Nil(t, res.MindMap)
	assert.Equal(t, 3, client.calls)

	assert.Equal(t, "gemini-1.5-pro", res.Metadata.Model)
	assert.Equal(t, 0.95, res.Metadata.Confidence)
	assert.GreaterOrEqual(t, res.Metadata.ProcessingTime, int64(50))
}

func TestRunKeepsRawSummary(t *testing.T) {
	client := &scriptedClient{responses: []*string{str("# Title\n\nbody"), nil, nil}}
	p := NewPipeline(client, "custom-model")

	res := p.Run(context.Background(), "content", time.Now())

	require.NotNil(t, res.Summary)
	assert.Equal(t, "# Title\n\nbody", *res.Summary)
	assert.Equal(t, "custom-model", res.Metadata.Model)
}

func TestRunSkipsUnparseableConcepts(t *testing.T) {
	client := &scriptedClient{responses: []*string{nil, str("I cannot answer that"), nil}}
	p := NewPipeline(client, "")

	res := p.Run(context.Background(), "content", time.Now())
	assert.Nil(t, res.KeyConcepts)
}

func TestRunDecodesConcepts(t *testing.T) {
	concepts := `[{"concept":"Photosynthesis","importance":5,"description":"Light to sugar","examples":["leaves"]}]`
	client := &scriptedClient{responses: []*string{nil, str(concepts), nil}}
	p := NewPipeline(client, "")

	res := p.Run(context.Background(), "content", time.Now())

	require.Len(t, res.KeyConcepts, 1)
	assert.Equal(t, "Photosynthesis", res.KeyConcepts[0].Concept)
	assert.Equal(t, 5, res.KeyConcepts[0].Importance)
}

func TestRunDecodesFencedMindMapAndAttachesStyles(t *testing.T) {
	mindMap := "```json\n" + `{
  "nodes": [
    {"id": "root", "label": "Biology", "level": "central", "importance": 5},
    {"id": "cells", "label": "Cells", "level": "main", "importance": 4}
  ],
  "edges": [
    {"source": "root", "target": "cells", "relationship": "contains"}
  ],
  "layout": {"central": ["root"], "main_branches": ["cells"]}
}` + "\n```"
	client := &scriptedClient{responses: []*string{nil, nil, str(mindMap)}}
	p := NewPipeline(client, "")

	res := p.Run(context.Background(), "content", time.Now())

	require.NotNil(t, res.MindMap)
	require.Len(t, res.MindMap.Nodes, 2)
	assert.Equal(t, "root", res.MindMap.Nodes[0].ID)
	require.Len(t, res.MindMap.Edges, 1)

	assert.Equal(t, "#3a8dff", res.MindMap.Styles["central"].BackgroundColor)
	assert.Equal(t, "#cbd5e1", res.MindMap.Styles["leaf"].BorderColor)
	assert.Equal(t, "vertical", res.MindMap.Layout["direction"])
	assert.Equal(t, []interface{}{"root"}, res.MindMap.Layout["central"])
}

func TestRunDropsMindMapWithoutNodes(t *testing.T) {
	client := &scriptedClient{responses: []*string{nil, nil, str(`{"nodes":[],"edges":[]}`)}}
	p := NewPipeline(client, "")

	res := p.Run(context.Background(), "content", time.Now())
	assert.Nil(t, res.MindMap)
}

func TestUnfence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, unfence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, unfence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, unfence(`{"a":1}`))
	assert.Equal(t, `plain`, unfence("  plain  "))
}
