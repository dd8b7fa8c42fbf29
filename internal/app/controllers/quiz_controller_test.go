package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studymind/studymind/internal/app/models"
	"github.com/studymind/studymind/internal/app/models/dto"
	"github.com/studymind/studymind/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeQuizService struct {
	resp *dto.QuizResponse
	err  error
}

func (f *fakeQuizService) GenerateQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	return f.resp, f.err
}

func quizTestRouter(svc *fakeQuizService) *gin.Engine {
	router := gin.New()
	router.POST("/api/generate-quiz", NewQuizController(svc).GenerateQuiz)
	return router
}

func TestGenerateQuizEndpointSuccess(t *testing.T) {
	router := quizTestRouter(&fakeQuizService{resp: &dto.QuizResponse{
		Success:    true,
		Questions:  []models.QuizQuestion{{Question: "Q?", Options: []string{"a", "b"}, Correct: "a", Explanation: "e"}},
		Type:       models.QuizTypeMCQ,
		Difficulty: "easy",
		Subject:    "Math",
	}})

	body := `{"notes":"content","quizType":"mcq","difficulty":"easy","subject":"Math"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/generate-quiz", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"type":"mcq"`)
}

func TestGenerateQuizEndpointRejectsInvalidBody(t *testing.T) {
	router := quizTestRouter(&fakeQuizService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/generate-quiz", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateQuizEndpointMapsServiceErrors(t *testing.T) {
	router := quizTestRouter(&fakeQuizService{
		err: apperrors.NewBadRequestError("Missing required fields: notes, quizType, difficulty, subject"),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/generate-quiz", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}
