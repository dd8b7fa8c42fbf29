package enrich

import (
	"strings"

	"github.com/studymind/studymind/internal/app/models"
)

// Fixed visual presentation attached to every generated mind map. The
// model only produces structure; colors and spacing are ours.
var nodeStyles = map[string]models.NodeStyle{
	"central": {
		BackgroundColor: "#3a8dff",
		TextColor:       "#ffffff",
		BorderColor:     "#2970ff",
		FontSize:        "20px",
	},
	"main": {
		BackgroundColor: "#a182ff",
		TextColor:       "#ffffff",
		BorderColor:     "#8b5cf6",
		FontSize:        "18px",
	},
	"sub": {
		BackgroundColor: "#f8fafc",
		TextColor:       "#1e293b",
		BorderColor:     "#e2e8f0",
		FontSize:        "16px",
	},
	"leaf": {
		BackgroundColor: "#ffffff",
		TextColor:       "#475569",
		BorderColor:     "#cbd5e1",
		FontSize:        "14px",
	},
}

// applyVisualDefaults merges the fixed style table and layout hints into a
// freshly decoded mind map, keeping whatever layout keys the model produced.
func applyVisualDefaults(m *models.MindMap) {
	styles := make(map[string]models.NodeStyle, len(nodeStyles))
	for level, style := range nodeStyles {
		styles[level] = style
	}
	m.Styles = styles

	if m.Layout == nil {
		m.Layout = make(map[string]interface{})
	}
	m.Layout["direction"] = "vertical"
	m.Layout["spacing"] = map[string]interface{}{
		"vertical":   40,
		"horizontal": 60,
	}
}

// unfence strips a Markdown code fence around a model response. The
// generative API routinely wraps JSON answers in ```json fences.
func unfence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	} else {
		return strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
