package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studymind/studymind/internal/app/models"
	"github.com/studymind/studymind/internal/pkg/apperrors"
	"github.com/studymind/studymind/internal/pkg/logger"
)

// DefaultQuizQuestions is used when the caller does not ask for a count
const DefaultQuizQuestions = 5

// QuizSpec describes one quiz generation request. All fields are already
// validated by the caller; NumQuestions is at least 1.
type QuizSpec struct {
	Notes        string
	Type         models.QuizType
	Difficulty   string
	Subject      string
	NumQuestions int
}

// quizFormats holds the per-type format instruction appended to the prompt
var quizFormats = map[models.QuizType]string{
	models.QuizTypeMCQ:       `Format each question as: {"question": "...", "options": ["option1", "option2", "option3", "option4"], "correct": "exact_correct_option_text", "explanation": "..."}. Make sure the "correct" field contains the exact text of the correct option, not just a letter.`,
	models.QuizTypeFill:      `Format each question as: {"question": "... ___ ...", "answer": "correct word", "explanation": "..."}`,
	models.QuizTypeTrueFalse: `Format each question as: {"statement": "...", "isTrue": boolean, "explanation": "..."}`,
	models.QuizTypeFlashcard: `Format each card as: {"front": "...", "back": "...", "hint": "..."}`,
}

func quizPrompt(spec QuizSpec) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert educational quiz generator. Create %s level questions for %s based on the given content. Format the response as a JSON array.\n\n",
		spec.Difficulty, spec.Subject)
	fmt.Fprintf(&sb, "Generate %d %s questions from this content:\n\n%s\n\n",
		spec.NumQuestions, spec.Type, spec.Notes)
	sb.WriteString(quizFormats[spec.Type])
	return sb.String()
}

// GenerateQuiz asks the generative endpoint for a question set and validates
// it. Unlike note enrichment this is not best effort: the quiz is the whole
// result, so an unavailable backend or an undecodable answer is an error.
func (p *Pipeline) GenerateQuiz(ctx context.Context, spec QuizSpec) ([]models.QuizQuestion, error) {
	raw := p.client.Generate(ctx, quizPrompt(spec))
	if raw == nil {
		return nil, apperrors.NewProcessingError("quiz generation unavailable")
	}

	questions, err := decodeQuizQuestions(*raw, spec.Type)
	if err != nil {
		logger.Warn().Err(err).Str("quizType", string(spec.Type)).Msg("Quiz response rejected")
		return nil, apperrors.NewProcessingError("failed to parse quiz questions")
	}
	if len(questions) < spec.NumQuestions {
		return nil, apperrors.NewProcessingError(
			fmt.Sprintf("could only generate %d questions instead of the requested %d", len(questions), spec.NumQuestions))
	}
	return questions[:spec.NumQuestions], nil
}

// decodeQuizQuestions extracts the JSON array from a model response and
// checks every question carries the fields its quiz type requires.
func decodeQuizQuestions(raw string, quizType models.QuizType) ([]models.QuizQuestion, error) {
	payload := extractJSONArray(unfence(raw))

	var questions []models.QuizQuestion
	if err := json.Unmarshal([]byte(payload), &questions); err != nil {
		return nil, fmt.Errorf("decode question array: %w", err)
	}

	for i, q := range questions {
		if err := validateQuizQuestion(q, quizType); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return questions, nil
}

// extractJSONArray cuts the response down to its outermost JSON array. The
// model sometimes surrounds the array with prose.
func extractJSONArray(s string) string {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

func validateQuizQuestion(q models.QuizQuestion, quizType models.QuizType) error {
	switch quizType {
	case models.QuizTypeMCQ:
		if q.Question == "" || len(q.Options) == 0 || q.Correct == "" || q.Explanation == "" {
			return fmt.Errorf("invalid mcq format")
		}
	case models.QuizTypeFill:
		if q.Question == "" || q.Answer == "" || q.Explanation == "" {
			return fmt.Errorf("invalid fill-in-the-blank format")
		}
	case models.QuizTypeTrueFalse:
		if q.Statement == "" || q.IsTrue == nil || q.Explanation == "" {
			return fmt.Errorf("invalid true/false format")
		}
	case models.QuizTypeFlashcard:
		if q.Front == "" || q.Back == "" {
			return fmt.Errorf("invalid flashcard format")
		}
	}
	return nil
}
