package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studymind/studymind/internal/app/models"
	"github.com/studymind/studymind/internal/app/models/dto"
	"github.com/studymind/studymind/internal/enrich"
	"github.com/studymind/studymind/internal/pkg/apperrors"
)

type fakeQuizGenerator struct {
	spec      enrich.QuizSpec
	questions []models.QuizQuestion
	err       error
	calls     int
}

func (f *fakeQuizGenerator) GenerateQuiz(ctx context.Context, spec enrich.QuizSpec) ([]models.QuizQuestion, error) {
	f.calls++
	f.spec = spec
	return f.questions, f.err
}

func TestGenerateQuizRequiresAllFields(t *testing.T) {
	base := dto.QuizRequest{Notes: "content", QuizType: "mcq", Difficulty: "easy", Subject: "Math"}
	for name, mutate := range map[string]func(*dto.QuizRequest){
		"notes":      func(r *dto.QuizRequest) { r.Notes = "  " },
		"quizType":   func(r *dto.QuizRequest) { r.QuizType = "" },
		"difficulty": func(r *dto.QuizRequest) { r.Difficulty = "" },
		"subject":    func(r *dto.QuizRequest) { r.Subject = "" },
	} {
		t.Run(name, func(t *testing.T) {
			generator := &fakeQuizGenerator{}
			svc := NewQuizService(generator)

			req := base
			mutate(&req)
			_, err := svc.GenerateQuiz(context.Background(), &req)

			assert.ErrorIs(t, err, apperrors.ErrBadRequest)
			assert.Zero(t, generator.calls)
		})
	}
}

func TestGenerateQuizRejectsUnknownType(t *testing.T) {
	generator := &fakeQuizGenerator{}
	svc := NewQuizService(generator)

	_, err := svc.GenerateQuiz(context.Background(), &dto.QuizRequest{
		Notes: "content", QuizType: "essay", Difficulty: "easy", Subject: "Math",
	})

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Zero(t, generator.calls)
}

func TestGenerateQuizDefaultsQuestionCount(t *testing.T) {
	generator := &fakeQuizGenerator{questions: []models.QuizQuestion{{Front: "a", Back: "b"}}}
	svc := NewQuizService(generator)

	resp, err := svc.GenerateQuiz(context.Background(), &dto.QuizRequest{
		Notes: "content", QuizType: "FLASHCARD", Difficulty: "easy", Subject: "Math",
	})

	require.NoError(t, err)
	assert.Equal(t, enrich.DefaultQuizQuestions, generator.spec.NumQuestions)
	assert.Equal(t, models.QuizTypeFlashcard, generator.spec.Type)
	assert.True(t, resp.Success)
	assert.Equal(t, models.QuizTypeFlashcard, resp.Type)
	assert.Equal(t, "easy", resp.Difficulty)
	assert.Equal(t, "Math", resp.Subject)
	assert.Len(t, resp.Questions, 1)
}

func TestGenerateQuizPropagatesGeneratorFailure(t *testing.T) {
	generator := &fakeQuizGenerator{err: apperrors.NewProcessingError("failed to parse quiz questions")}
	svc := NewQuizService(generator)

	_, err := svc.GenerateQuiz(context.Background(), &dto.QuizRequest{
		Notes: "content", QuizType: "mcq", Difficulty: "easy", Subject: "Math", NumQuestions: 2,
	})

	assert.ErrorIs(t, err, apperrors.ErrProcessingFailed)
	assert.Equal(t, 2, generator.spec.NumQuestions)
	assert.False(t, errors.Is(err, apperrors.ErrBadRequest))
}
