package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studymind/studymind/internal/app/models/dto"
	"github.com/studymind/studymind/internal/app/services"
	"github.com/studymind/studymind/internal/middleware"
)

// QuizController handles quiz generation
type QuizController struct {
	quizService services.QuizService
}

// NewQuizController creates a new QuizController
func NewQuizController(quizService services.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generate quiz questions of a chosen type from note content
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Note content, quiz type (mcq, fill, truefalse, flashcard), difficulty and subject"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /generate-quiz [post]
func (c *QuizController) GenerateQuiz(ctx *gin.Context) {
	var req dto.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body")))
		return
	}

	quiz, err := c.quizService.GenerateQuiz(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}
