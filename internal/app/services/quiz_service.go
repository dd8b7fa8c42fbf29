package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/studymind/studymind/internal/app/models"
	"github.com/studymind/studymind/internal/app/models/dto"
	"github.com/studymind/studymind/internal/enrich"
	"github.com/studymind/studymind/internal/pkg/apperrors"
)

// QuizGenerator produces a validated question set. enrich.Pipeline
// implements it; tests substitute fakes.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, spec enrich.QuizSpec) ([]models.QuizQuestion, error)
}

// QuizService defines the interface for quiz generation
type QuizService interface {
	GenerateQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

// quizServiceImpl implements QuizService
type quizServiceImpl struct {
	generator QuizGenerator
}

// NewQuizService creates a new QuizService
func NewQuizService(generator QuizGenerator) QuizService {
	return &quizServiceImpl{generator: generator}
}

// GenerateQuiz validates the request and asks the generator for questions.
// Quizzes are generated from content the client already holds, so nothing
// is persisted here.
func (s *quizServiceImpl) GenerateQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	notes := strings.TrimSpace(req.Notes)
	difficulty := strings.TrimSpace(req.Difficulty)
	subject := strings.TrimSpace(req.Subject)
	if notes == "" || req.QuizType == "" || difficulty == "" || subject == "" {
		return nil, apperrors.NewBadRequestError("Missing required fields: notes, quizType, difficulty, subject")
	}

	quizType, ok := models.ParseQuizType(req.QuizType)
	if !ok {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Invalid quiz type %q", req.QuizType))
	}

	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = enrich.DefaultQuizQuestions
	}

	questions, err := s.generator.GenerateQuiz(ctx, enrich.QuizSpec{
		Notes:        notes,
		Type:         quizType,
		Difficulty:   difficulty,
		Subject:      subject,
		NumQuestions: numQuestions,
	})
	if err != nil {
		return nil, err
	}

	return &dto.QuizResponse{
		Success:    true,
		Questions:  questions,
		Type:       quizType,
		Difficulty: difficulty,
		Subject:    subject,
	}, nil
}
