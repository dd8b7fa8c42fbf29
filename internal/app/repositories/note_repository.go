package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studymind/studymind/internal/app/models"
	"github.com/studymind/studymind/internal/pkg/apperrors"
	"github.com/studymind/studymind/internal/pkg/helpers"
	"github.com/studymind/studymind/internal/pkg/logger"
)

// noteColumns are the scannable columns of a full note row, in scan order
var noteColumns = []string{
	"id", "user_id", "title", "original_content", "summary", "transcription",
	"key_concepts", "mind_map", "file_type", "file_url", "category", "tags",
	"is_public", "is_processed", "processing_status", "collaborators",
	"ai_metadata", "created_at", "updated_at",
}

// ListNotesParams holds the list filters and pagination
type ListNotesParams struct {
	Category string
	Tags     []string
	Search   string
	Page     int
	PageSize int
}

// NoteRepository handles database operations for notes. Every read and
// write is scoped to the owning user.
type NoteRepository struct {
	DB *pgxpool.Pool
}

// NewNoteRepository creates a new instance of NoteRepository
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) selectNoteQuery() squirrel.SelectBuilder {
	return squirrel.Select(noteColumns...).
		From("notes").
		PlaceholderFormat(squirrel.Dollar)
}

func scanNote(row pgx.Row) (*models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID, &note.UserID, &note.Title, &note.OriginalContent, &note.Summary,
		&note.Transcription, &note.KeyConcepts, &note.MindMap, &note.FileType,
		&note.FileURL, &note.Category, &note.Tags, &note.IsPublic, &note.IsProcessed,
		&note.Status, &note.Collaborators, &note.AIMetadata,
		&note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Msg("Error scanning note row")
		return nil, err
	}
	return &note, nil
}

// Create inserts a new note and returns its assigned ID. The file type is
// written once here and never touched by any update path.
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) (int64, error) {
	sql, args, err := squirrel.Insert("notes").
		Columns("user_id", "title", "original_content", "summary", "transcription",
			"file_type", "file_url", "category", "tags", "is_public",
			"is_processed", "processing_status", "collaborators").
		Values(note.UserID, note.Title, note.OriginalContent, note.Summary,
			note.Transcription, note.FileType, note.FileURL, note.Category,
			note.Tags, note.IsPublic, note.IsProcessed, note.Status,
			note.Collaborators).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create note SQL")
		return 0, err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create note query")
		return 0, err
	}
	return note.ID, nil
}

// GetByID returns a note owned by userID
func (r *NoteRepository) GetByID(ctx context.Context, id, userID int64) (*models.Note, error) {
	sql, args, err := r.selectNoteQuery().
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get note SQL")
		return nil, err
	}
	return scanNote(r.DB.QueryRow(ctx, sql, args...))
}

// List returns the user's notes matching the filters, newest first, with
// the total count for pagination. original_content is not selected; list
// rows carry an empty content field.
func (r *NoteRepository) List(ctx context.Context, userID int64, params ListNotesParams) ([]*models.Note, int64, error) {
	filters := squirrel.And{squirrel.Eq{"user_id": userID}}
	if params.Category != "" {
		filters = append(filters, squirrel.Eq{"category": params.Category})
	}
	if len(params.Tags) > 0 {
		filters = append(filters, squirrel.Expr("tags && ?", params.Tags))
	}
	if params.Search != "" {
		filters = append(filters, squirrel.Expr("search_vector @@ plainto_tsquery('english', ?)", params.Search))
	}

	countSQL, countArgs, err := squirrel.Select("COUNT(*)").
		From("notes").
		Where(filters).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count notes SQL")
		return nil, 0, err
	}
	var total int64
	if err := r.DB.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count notes query")
		return nil, 0, err
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.PageSize)

	listColumns := []string{
		"id", "user_id", "title", "''::text AS original_content", "summary",
		"transcription", "key_concepts", "mind_map", "file_type", "file_url",
		"category", "tags", "is_public", "is_processed", "processing_status",
		"collaborators", "ai_metadata", "created_at", "updated_at",
	}
	query := squirrel.Select(listColumns...).
		From("notes").
		Where(filters).
		PlaceholderFormat(squirrel.Dollar)
	if params.Search != "" {
		query = query.OrderByClause("ts_rank(search_vector, plainto_tsquery('english', ?)) DESC, created_at DESC", params.Search)
	} else {
		query = query.OrderBy("created_at DESC")
	}
	sql, args, err := query.Offset(offset).Limit(uint64(limit)).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list notes SQL")
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list notes query")
		return nil, 0, err
	}
	defer rows.Close()

	notes := make([]*models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, 0, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating note rows")
		return nil, 0, err
	}
	return notes, total, nil
}

// UpdateFields applies the already allow-listed field set to a note. The
// service layer decides which fields a client may touch; this method only
// executes the update.
func (r *NoteRepository) UpdateFields(ctx context.Context, id, userID int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	sql, args, err := squirrel.Update("notes").
		SetMap(fields).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update note SQL")
		return err
	}

	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update note query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

// Delete removes a note owned by userID
func (r *NoteRepository) Delete(ctx context.Context, id, userID int64) error {
	sql, args, err := squirrel.Delete("notes").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete note SQL")
		return err
	}

	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete note query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

// statusSources lists the states a note may be in when moving to the key
// state. Encoding the lifecycle in the WHERE clause keeps transitions
// forward-only even under concurrent writers.
var statusSources = map[models.ProcessingStatus][]string{
	models.StatusProcessing: {string(models.StatusPending)},
	models.StatusCompleted:  {string(models.StatusPending), string(models.StatusProcessing)},
	models.StatusFailed:     {string(models.StatusPending), string(models.StatusProcessing)},
}

// UpdateProcessingStatus advances the lifecycle state of a note. Moving
// backwards or out of a terminal state is refused silently when the note
// exists, and reported as not found when it does not.
func (r *NoteRepository) UpdateProcessingStatus(ctx context.Context, id int64, status models.ProcessingStatus) error {
	sources, ok := statusSources[status]
	if !ok {
		return fmt.Errorf("status %q is not a valid transition target", status)
	}

	sql, args, err := squirrel.Update("notes").
		Set("processing_status", status).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"processing_status": sources}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building status update SQL")
		return err
	}

	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing status update query")
		return err
	}
	if tag.RowsAffected() == 0 {
		logger.Warn().Int64("noteId", id).Str("status", string(status)).
			Msg("Status transition refused or note missing")
	}
	return nil
}

// CompleteProcessing stores the enrichment results and marks the note
// completed in one statement. Guarded the same way as status updates: a
// note already in a terminal state is left untouched.
func (r *NoteRepository) CompleteProcessing(ctx context.Context, id int64, summary string, concepts []models.KeyConcept, mindMap *models.MindMap, meta *models.AIMetadata) error {
	sql, args, err := squirrel.Update("notes").
		Set("summary", summary).
		Set("key_concepts", concepts).
		Set("mind_map", mindMap).
		Set("ai_metadata", meta).
		Set("is_processed", true).
		Set("processing_status", models.StatusCompleted).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"processing_status": statusSources[models.StatusCompleted]}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building complete processing SQL")
		return err
	}

	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing complete processing query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

// UpdateCollaborators rewrites the collaborator list of a note. The list
// is small and owner-modified only, so replacing the whole JSONB array
// keeps the email de-duplication logic in one place (the service).
func (r *NoteRepository) UpdateCollaborators(ctx context.Context, id, userID int64, collaborators []models.Collaborator) error {
	if collaborators == nil {
		collaborators = []models.Collaborator{}
	}
	sql, args, err := squirrel.Update("notes").
		Set("collaborators", collaborators).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update collaborators SQL")
		return err
	}

	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update collaborators query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}
