package enrich

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studymind/studymind/internal/app/models"
	"github.com/studymind/studymind/internal/pkg/apperrors"
)

func TestQuizPromptCarriesRequestFields(t *testing.T) {
	prompt := quizPrompt(QuizSpec{
		Notes:        "mitochondria are the powerhouse of the cell",
		Type:         models.QuizTypeMCQ,
		Difficulty:   "hard",
		Subject:      "Biology",
		NumQuestions: 3,
	})

	assert.Contains(t, prompt, "Create hard level questions for Biology")
	assert.Contains(t, prompt, "Generate 3 mcq questions")
	assert.Contains(t, prompt, "mitochondria are the powerhouse of the cell")
	assert.Contains(t, prompt, `"correct": "exact_correct_option_text"`)
}

func TestGenerateQuizDecodesFencedArrayAndTrims(t *testing.T) {
	response := "Here are your questions:\n```json\n" + `[
  {"question": "Q1?", "options": ["a", "b", "c", "d"], "correct": "a", "explanation": "because"},
  {"question": "Q2?", "options": ["a", "b", "c", "d"], "correct": "b", "explanation": "because"},
  {"question": "Q3?", "options": ["a", "b", "c", "d"], "correct": "c", "explanation": "because"}
]` + "\n```\nGood luck!"
	client := &scriptedClient{responses: []*string{str(response)}}
	p := NewPipeline(client, "")

	questions, err := p.GenerateQuiz(context.Background(), QuizSpec{
		Notes: "content", Type: models.QuizTypeMCQ, Difficulty: "easy", Subject: "Math", NumQuestions: 2,
	})

	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "Q1?", questions[0].Question)
	assert.Equal(t, "b", questions[1].Correct)
}

func TestGenerateQuizBackendUnavailable(t *testing.T) {
	p := NewPipeline(&scriptedClient{responses: []*string{nil}}, "")

	_, err := p.GenerateQuiz(context.Background(), QuizSpec{
		Notes: "content", Type: models.QuizTypeFill, Difficulty: "easy", Subject: "Math", NumQuestions: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrProcessingFailed)
}

func TestGenerateQuizRejectsUndecodableResponse(t *testing.T) {
	p := NewPipeline(&scriptedClient{responses: []*string{str("I cannot answer that")}}, "")

	_, err := p.GenerateQuiz(context.Background(), QuizSpec{
		Notes: "content", Type: models.QuizTypeMCQ, Difficulty: "easy", Subject: "Math", NumQuestions: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrProcessingFailed)
}

func TestGenerateQuizRejectsMissingFields(t *testing.T) {
	// mcq without the correct answer text
	response := `[{"question": "Q1?", "options": ["a", "b"], "explanation": "because"}]`
	p := NewPipeline(&scriptedClient{responses: []*string{str(response)}}, "")

	_, err := p.GenerateQuiz(context.Background(), QuizSpec{
		Notes: "content", Type: models.QuizTypeMCQ, Difficulty: "easy", Subject: "Math", NumQuestions: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrProcessingFailed)
}

func TestGenerateQuizRejectsShortfall(t *testing.T) {
	response := `[{"front": "term", "back": "definition", "hint": "starts with t"}]`
	p := NewPipeline(&scriptedClient{responses: []*string{str(response)}}, "")

	_, err := p.GenerateQuiz(context.Background(), QuizSpec{
		Notes: "content", Type: models.QuizTypeFlashcard, Difficulty: "easy", Subject: "Math", NumQuestions: 3,
	})
	assert.ErrorIs(t, err, apperrors.ErrProcessingFailed)
}

func TestGenerateQuizTrueFalseKeepsFalseAnswers(t *testing.T) {
	response := `[{"statement": "The sun is cold", "isTrue": false, "explanation": "It is hot"}]`
	p := NewPipeline(&scriptedClient{responses: []*string{str(response)}}, "")

	questions, err := p.GenerateQuiz(context.Background(), QuizSpec{
		Notes: "content", Type: models.QuizTypeTrueFalse, Difficulty: "easy", Subject: "Physics", NumQuestions: 1,
	})

	require.NoError(t, err)
	require.Len(t, questions, 1)
	require.NotNil(t, questions[0].IsTrue)
	assert.False(t, *questions[0].IsTrue)
}
