package models

import "time"

// Note is the persisted unit combining the original upload, its extracted
// text and the AI derived enrichments.
type Note struct {
	ID              int64            `db:"id" json:"id"`
	UserID          int64            `db:"user_id" json:"userId"`
	Title           string           `db:"title" json:"title"`
	OriginalContent string           `db:"original_content" json:"originalContent"`
	Summary         string           `db:"summary" json:"summary"`
	Transcription   string           `db:"transcription" json:"transcription"`
	KeyConcepts     []KeyConcept     `db:"key_concepts" json:"keyConcepts,omitempty"`
	MindMap         *MindMap         `db:"mind_map" json:"mindMap,omitempty"`
	FileType        FileType         `db:"file_type" json:"fileType"`
	FileURL         string           `db:"file_url" json:"fileUrl"`
	Category        Category         `db:"category" json:"category"`
	Tags            []string         `db:"tags" json:"tags"`
	IsPublic        bool             `db:"is_public" json:"isPublic"`
	IsProcessed     bool             `db:"is_processed" json:"isProcessed"`
	Status          ProcessingStatus `db:"processing_status" json:"processingStatus"`
	Collaborators   []Collaborator   `db:"collaborators" json:"collaborators"`
	AIMetadata      *AIMetadata      `db:"ai_metadata" json:"aiMetadata,omitempty"`
	CreatedAt       time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time        `db:"updated_at" json:"updatedAt"`
}

// KeyConcept is one entry of the AI extracted concept list
type KeyConcept struct {
	Concept         string   `json:"concept"`
	Importance      int      `json:"importance"`
	Description     string   `json:"description"`
	Examples        []string `json:"examples,omitempty"`
	Prerequisites   []string `json:"prerequisites,omitempty"`
	RelatedConcepts []string `json:"relatedConcepts,omitempty"`
}

// MindMap is a graph of labeled nodes and relationship typed edges
// describing the concept structure of a note.
type MindMap struct {
	Nodes  []MindMapNode          `json:"nodes"`
	Edges  []MindMapEdge          `json:"edges"`
	Layout map[string]interface{} `json:"layout,omitempty"`
	Styles map[string]NodeStyle   `json:"styles,omitempty"`
}

// MindMapNode levels are central, main, sub and leaf; categories are
// concept, example, application and definition.
type MindMapNode struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Level       string `json:"level"`
	Importance  int    `json:"importance,omitempty"`
}

// MindMapEdge connects two nodes with a relationship label from a fixed
// vocabulary (defines, contains, leads_to, example_of, related_to).
type MindMapEdge struct {
	Source       string `json:"source"`
	Target       string `json:"target"`
	Relationship string `json:"relationship"`
	Description  string `json:"description,omitempty"`
}

// NodeStyle is the fixed visual styling attached per node level
type NodeStyle struct {
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	BorderColor     string `json:"borderColor"`
	FontSize        string `json:"fontSize"`
}

// Collaborator is one shared-access entry on a note. Email is the
// de-duplication key; ID is assigned on insert and used for removal.
type Collaborator struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Permissions Permission `json:"permissions"`
	AddedAt     time.Time  `json:"addedAt"`
}

// AIMetadata records the provenance of a note's enrichments
type AIMetadata struct {
	Model          string  `json:"model"`
	Confidence     float64 `json:"confidence"`
	ProcessingTime int64   `json:"processingTime"` // milliseconds
}
