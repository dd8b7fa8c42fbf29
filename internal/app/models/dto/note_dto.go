package dto

import (
	"strings"
	"time"

	"github.com/studymind/studymind/internal/app/models"
)

// --- Request DTOs ---

// UploadNoteRequest carries the multipart form fields accompanying an
// uploaded file. The file itself is read from the multipart part "file".
type UploadNoteRequest struct {
	Title    string `form:"title" example:"Photosynthesis lecture"`     // Optional; defaults to the uploaded filename
	Category string `form:"category" example:"lecture"`                 // One of lecture, assignment, study, research, other
	Tags     string `form:"tags" example:"biology,plants"`              // Comma separated labels
}

// NoteFilterRequest holds the optional list filters
type NoteFilterRequest struct {
	Category string `form:"category"` // Exact category match
	Tags     string `form:"tags"`     // Comma separated; matches notes sharing at least one tag
	Search   string `form:"search"`   // Full text search across title, content, summary, transcription and concept names
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

// UpdateNoteRequest is the allow-listed set of updatable fields. Pointer
// fields distinguish "absent" from "set to zero"; anything else sent by the
// client is silently dropped.
type UpdateNoteRequest struct {
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
	Tags     *string `json:"tags,omitempty"` // Comma separated
	IsPublic *bool   `json:"isPublic,omitempty"`
}

// CollaboratorRequest upserts a collaborator by email
type CollaboratorRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Permissions string `json:"permissions"` // read (default), write or admin
}

// --- Response DTOs ---

// NoteResponse is the public projection of a note. OriginalContent is only
// populated on single-note endpoints, never in lists.
type NoteResponse struct {
	ID              int64                   `json:"id"`
	Title           string                  `json:"title"`
	OriginalContent string                  `json:"originalContent,omitempty"`
	Summary         string                  `json:"summary"`
	KeyConcepts     []models.KeyConcept     `json:"keyConcepts,omitempty"`
	MindMap         *models.MindMap         `json:"mindMap,omitempty"`
	FileType        models.FileType         `json:"fileType"`
	FileURL         string                  `json:"fileUrl"`
	Transcription   string                  `json:"transcription"`
	IsProcessed     bool                    `json:"isProcessed"`
	Status          models.ProcessingStatus `json:"processingStatus"`
	Tags            []string                `json:"tags"`
	Category        models.Category         `json:"category"`
	IsPublic        bool                    `json:"isPublic"`
	Collaborators   []models.Collaborator   `json:"collaborators"`
	AIMetadata      *models.AIMetadata      `json:"aiMetadata,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// FromNote converts a model to its public projection. includeContent
// controls whether the extracted text is exposed.
func FromNote(note *models.Note, includeContent bool) *NoteResponse {
	if note == nil {
		return nil
	}
	resp := &NoteResponse{
		ID:            note.ID,
		Title:         note.Title,
		Summary:       note.Summary,
		KeyConcepts:   note.KeyConcepts,
		MindMap:       note.MindMap,
		FileType:      note.FileType,
		FileURL:       note.FileURL,
		Transcription: note.Transcription,
		IsProcessed:   note.IsProcessed,
		Status:        note.Status,
		Tags:          note.Tags,
		Category:      note.Category,
		IsPublic:      note.IsPublic,
		Collaborators: note.Collaborators,
		AIMetadata:    note.AIMetadata,
		CreatedAt:     note.CreatedAt,
		UpdatedAt:     note.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if resp.Collaborators == nil {
		resp.Collaborators = []models.Collaborator{}
	}
	if includeContent {
		resp.OriginalContent = note.OriginalContent
	}
	return resp
}

// SplitTags turns a comma separated tag string into trimmed, non-empty labels
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
