package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studymind/studymind/internal/app/models/dto"
	"github.com/studymind/studymind/internal/app/services"
	"github.com/studymind/studymind/internal/middleware"
)

// parseIDParam parses a numeric ID parameter from the request path
func parseIDParam(ctx *gin.Context, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(paramName), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// currentUserID reads the authenticated user from the context. The auth
// middleware guarantees it on protected routes.
func currentUserID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
	}
	return userID, ok
}

// NoteController handles the notes API
type NoteController struct {
	noteService services.NoteService
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService services.NoteService) *NoteController {
	return &NoteController{noteService: noteService}
}

// UploadNote godoc
// @Summary Upload study material
// @Description Upload a file, extract its text and enrich it into a note
// @Tags notes
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Study material (txt, pdf, docx, ppt, pptx, jpg, jpeg, png, mp3, mp4, wav)"
// @Param title formData string false "Note title (defaults to the filename)"
// @Param category formData string false "lecture, assignment, study, research or other"
// @Param tags formData string false "Comma separated tags"
// @Success 201 {object} dto.APIResponse{note=dto.NoteResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/upload [post]
func (c *NoteController) UploadNote(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.UploadNoteRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid form fields")))
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "No file uploaded")))
		return
	}

	note, err := c.noteService.ProcessUpload(ctx, userID, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NoteSuccess(note))
}

// GetNotes godoc
// @Summary List notes
// @Description List the user's notes with optional filtering and search
// @Tags notes
// @Produce json
// @Security ApiKeyAuth
// @Param category query string false "Exact category match"
// @Param tags query string false "Comma separated; notes sharing at least one tag match"
// @Param search query string false "Full text search"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} dto.APIResponse{notes=[]dto.NoteResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes [get]
func (c *NoteController) GetNotes(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var filter dto.NoteFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid filter parameters")))
		return
	}

	notes, pagination, err := c.noteService.GetNotes(ctx, userID, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NotesSuccess(notes, pagination))
}

// GetNoteByID godoc
// @Summary Get a note
// @Description Get one note including its extracted content
// @Tags notes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{note=dto.NoteResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id} [get]
func (c *NoteController) GetNoteByID(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid note ID")))
		return
	}

	note, err := c.noteService.GetNoteByID(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NoteSuccess(note))
}

// UpdateNote godoc
// @Summary Update a note
// @Description Update title, category, tags or visibility of a note
// @Tags notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Note ID"
// @Param request body dto.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{note=dto.NoteResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid note ID")))
		return
	}

	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body")))
		return
	}

	note, err := c.noteService.UpdateNote(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NoteSuccess(note))
}

// DeleteNote godoc
// @Summary Delete a note
// @Description Delete a note and its stored file
// @Tags notes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{message=string}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid note ID")))
		return
	}

	if err := c.noteService.DeleteNote(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageSuccess("Note deleted"))
}

// AddCollaborator godoc
// @Summary Add or update a collaborator
// @Description Upsert a collaborator by email on a note
// @Tags notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Note ID"
// @Param request body dto.CollaboratorRequest true "Collaborator email and permissions"
// @Success 200 {object} dto.APIResponse{note=dto.NoteResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id}/collaborators [post]
func (c *NoteController) AddCollaborator(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid note ID")))
		return
	}

	var req dto.CollaboratorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A valid email is required")))
		return
	}

	note, err := c.noteService.UpsertCollaborator(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NoteSuccess(note))
}

// RemoveCollaborator godoc
// @Summary Remove a collaborator
// @Description Remove a collaborator from a note by its ID
// @Tags notes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Note ID"
// @Param collaboratorId path string true "Collaborator ID"
// @Success 200 {object} dto.APIResponse{note=dto.NoteResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id}/collaborators/{collaboratorId} [delete]
func (c *NoteController) RemoveCollaborator(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid note ID")))
		return
	}
	collaboratorID := ctx.Param("collaboratorId")
	if collaboratorID == "" {
		ctx.JSON(http.StatusBadRequest, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid collaborator ID")))
		return
	}

	note, err := c.noteService.RemoveCollaborator(ctx, id, userID, collaboratorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NoteSuccess(note))
}
