package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/studymind/studymind/internal/app/models"
	"github.com/studymind/studymind/internal/app/models/dto"
	"github.com/studymind/studymind/internal/app/repositories"
	"github.com/studymind/studymind/internal/enrich"
	"github.com/studymind/studymind/internal/pkg/apperrors"
	"github.com/studymind/studymind/internal/pkg/filestorage"
	"github.com/studymind/studymind/internal/pkg/helpers"
	"github.com/studymind/studymind/internal/pkg/logger"
)

// fallbackContent is stored when extraction yields no text at all
const fallbackContent = "No content could be extracted"

// NoteStore is the persistence surface the service needs. NoteRepository
// implements it; tests substitute fakes.
type NoteStore interface {
	Create(ctx context.Context, note *models.Note) (int64, error)
	GetByID(ctx context.Context, id, userID int64) (*models.Note, error)
	List(ctx context.Context, userID int64, params repositories.ListNotesParams) ([]*models.Note, int64, error)
	UpdateFields(ctx context.Context, id, userID int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id, userID int64) error
	UpdateProcessingStatus(ctx context.Context, id int64, status models.ProcessingStatus) error
	CompleteProcessing(ctx context.Context, id int64, summary string, concepts []models.KeyConcept, mindMap *models.MindMap, meta *models.AIMetadata) error
	UpdateCollaborators(ctx context.Context, id, userID int64, collaborators []models.Collaborator) error
}

// Extractor turns a stored upload into plain text
type Extractor interface {
	Extract(ctx context.Context, filePath string, fileType models.FileType) (string, error)
}

// Enricher runs the AI stages over extracted content
type Enricher interface {
	Run(ctx context.Context, content string, startedAt time.Time) enrich.Result
}

// NoteService defines the interface for note operations
type NoteService interface {
	ProcessUpload(ctx context.Context, userID int64, req *dto.UploadNoteRequest, file *multipart.FileHeader) (*dto.NoteResponse, error)
	GetNotes(ctx context.Context, userID int64, filter *dto.NoteFilterRequest) ([]dto.NoteResponse, dto.PaginationInfo, error)
	GetNoteByID(ctx context.Context, id, userID int64) (*dto.NoteResponse, error)
	UpdateNote(ctx context.Context, id, userID int64, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	DeleteNote(ctx context.Context, id, userID int64) error
	UpsertCollaborator(ctx context.Context, noteID, userID int64, req *dto.CollaboratorRequest) (*dto.NoteResponse, error)
	RemoveCollaborator(ctx context.Context, noteID, userID int64, collaboratorID string) (*dto.NoteResponse, error)
}

// noteServiceImpl implements NoteService
type noteServiceImpl struct {
	notes     NoteStore
	storage   filestorage.Storage
	extractor Extractor
	enricher  Enricher
}

// NewNoteService creates a new NoteService
func NewNoteService(notes NoteStore, storage filestorage.Storage, extractor Extractor, enricher Enricher) NoteService {
	return &noteServiceImpl{
		notes:     notes,
		storage:   storage,
		extractor: extractor,
		enricher:  enricher,
	}
}

// ProcessUpload runs the whole upload pipeline synchronously: store the
// file, extract its text, create the note in processing state, enrich it
// and mark it completed. Enrichment failures after the note exists mark it
// failed instead of leaving it stuck in processing.
func (s *noteServiceImpl) ProcessUpload(ctx context.Context, userID int64, req *dto.UploadNoteRequest, file *multipart.FileHeader) (*dto.NoteResponse, error) {
	startedAt := time.Now()

	ext := filepath.Ext(file.Filename)
	fileType, ok := models.ParseFileType(ext)
	if !ok {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrUnsupportedFileType,
			Message: fmt.Sprintf("file type %q is not supported", ext),
		}
	}

	fileURL, err := s.storage.SaveUpload(file)
	if err != nil {
		logger.Error().Err(err).Str("filename", file.Filename).Msg("Failed to store upload")
		return nil, fmt.Errorf("error storing upload: %w", err)
	}

	text, err := s.extractor.Extract(ctx, s.storage.FullPath(fileURL), fileType)
	if err != nil {
		logger.Error().Err(err).Str("fileType", string(fileType)).Msg("Content extraction failed")
		return nil, apperrors.NewProcessingError("could not extract content from the uploaded file")
	}
	if strings.TrimSpace(text) == "" {
		text = fallbackContent
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = file.Filename
	}
	category, _ := models.ParseCategory(req.Category)

	note := &models.Note{
		UserID:          userID,
		Title:           title,
		OriginalContent: text,
		FileType:        fileType,
		FileURL:         fileURL,
		Category:        category,
		Tags:            dto.SplitTags(req.Tags),
		Status:          models.StatusProcessing,
		Collaborators:   []models.Collaborator{},
	}
	if fileType.IsMedia() {
		note.Transcription = text
	}

	if _, err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	if err := s.enrichNote(ctx, note.ID, text, startedAt); err != nil {
		logger.Error().Err(err).Int64("noteId", note.ID).Msg("Note processing failed")
		if statusErr := s.notes.UpdateProcessingStatus(ctx, note.ID, models.StatusFailed); statusErr != nil {
			logger.Error().Err(statusErr).Int64("noteId", note.ID).Msg("Failed to mark note as failed")
		}
		return nil, apperrors.NewProcessingError("note processing failed")
	}

	stored, err := s.notes.GetByID(ctx, note.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("error reloading processed note: %w", err)
	}
	return dto.FromNote(stored, true), nil
}

// enrichNote runs the AI stages and persists their results. A panic inside
// a stage is converted into an error so the caller can mark the note failed.
func (s *noteServiceImpl) enrichNote(ctx context.Context, noteID int64, content string, startedAt time.Time) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("enrichment panicked: %v", rec)
		}
	}()

	result := s.enricher.Run(ctx, content, startedAt)

	summary := ""
	if result.Summary != nil {
		summary = *result.Summary
	}
	return s.notes.CompleteProcessing(ctx, noteID, summary, result.KeyConcepts, result.MindMap, &result.Metadata)
}

// GetNotes lists the user's notes with filters and pagination. List rows
// never include the extracted content.
func (s *noteServiceImpl) GetNotes(ctx context.Context, userID int64, filter *dto.NoteFilterRequest) ([]dto.NoteResponse, dto.PaginationInfo, error) {
	params := repositories.ListNotesParams{
		Category: strings.TrimSpace(filter.Category),
		Tags:     dto.SplitTags(filter.Tags),
		Search:   strings.TrimSpace(filter.Search),
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	if params.Category != "" {
		category, ok := models.ParseCategory(params.Category)
		if !ok {
			return nil, dto.PaginationInfo{}, apperrors.NewBadRequestError(fmt.Sprintf("unknown category %q", params.Category))
		}
		params.Category = string(category)
	}

	notes, total, err := s.notes.List(ctx, userID, params)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing notes: %w", err)
	}

	responses := make([]dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, *dto.FromNote(note, false))
	}
	return responses, helpers.NewPaginationInfo(total, filter.Page, filter.PageSize), nil
}

// GetNoteByID returns one note including its extracted content
func (s *noteServiceImpl) GetNoteByID(ctx context.Context, id, userID int64) (*dto.NoteResponse, error) {
	note, err := s.notes.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromNote(note, true), nil
}

// UpdateNote applies the allow-listed fields: title, category, tags and
// isPublic. Anything else a client sends never reaches the store.
func (s *noteServiceImpl) UpdateNote(ctx context.Context, id, userID int64, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	fields := make(map[string]interface{})
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewBadRequestError("title cannot be empty")
		}
		fields["title"] = title
	}
	if req.Category != nil {
		category, ok := models.ParseCategory(*req.Category)
		if !ok {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown category %q", *req.Category))
		}
		fields["category"] = category
	}
	if req.Tags != nil {
		fields["tags"] = dto.SplitTags(*req.Tags)
	}
	if req.IsPublic != nil {
		fields["is_public"] = *req.IsPublic
	}

	if len(fields) > 0 {
		if err := s.notes.UpdateFields(ctx, id, userID, fields); err != nil {
			return nil, err
		}
	}
	return s.GetNoteByID(ctx, id, userID)
}

// DeleteNote removes the backing file first, then the row. A missing file
// does not block the delete.
func (s *noteServiceImpl) DeleteNote(ctx context.Context, id, userID int64) error {
	note, err := s.notes.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if note.FileURL != "" {
		if err := s.storage.Delete(note.FileURL); err != nil {
			logger.Warn().Err(err).Str("fileUrl", note.FileURL).Msg("Failed to delete stored file")
		}
	}
	return s.notes.Delete(ctx, id, userID)
}

// UpsertCollaborator adds a collaborator by email or updates the
// permissions of an existing one. Emails are the de-duplication key.
func (s *noteServiceImpl) UpsertCollaborator(ctx context.Context, noteID, userID int64, req *dto.CollaboratorRequest) (*dto.NoteResponse, error) {
	note, err := s.notes.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	permission, ok := models.ParsePermission(req.Permissions)
	if !ok {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown permission %q", req.Permissions))
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	updated := false
	for i := range note.Collaborators {
		if strings.EqualFold(note.Collaborators[i].Email, email) {
			note.Collaborators[i].Permissions = permission
			updated = true
			break
		}
	}
	if !updated {
		note.Collaborators = append(note.Collaborators, models.Collaborator{
			ID:          uuid.NewString(),
			Email:       email,
			Permissions: permission,
			AddedAt:     time.Now().UTC(),
		})
	}

	if err := s.notes.UpdateCollaborators(ctx, noteID, userID, note.Collaborators); err != nil {
		return nil, err
	}
	return s.GetNoteByID(ctx, noteID, userID)
}

// RemoveCollaborator removes a collaborator by its assigned ID
func (s *noteServiceImpl) RemoveCollaborator(ctx context.Context, noteID, userID int64, collaboratorID string) (*dto.NoteResponse, error) {
	note, err := s.notes.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	remaining := make([]models.Collaborator, 0, len(note.Collaborators))
	found := false
	for _, c := range note.Collaborators {
		if c.ID == collaboratorID {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return nil, apperrors.ErrCollaboratorNotFound
	}

	if err := s.notes.UpdateCollaborators(ctx, noteID, userID, remaining); err != nil {
		return nil, err
	}
	return s.GetNoteByID(ctx, noteID, userID)
}
