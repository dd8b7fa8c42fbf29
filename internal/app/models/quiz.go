package models

import "strings"

// QuizType selects the question format of a generated quiz
type QuizType string

const (
	QuizTypeMCQ       QuizType = "mcq"
	QuizTypeFill      QuizType = "fill"
	QuizTypeTrueFalse QuizType = "truefalse"
	QuizTypeFlashcard QuizType = "flashcard"
)

// ParseQuizType validates a raw quiz type value
func ParseQuizType(raw string) (QuizType, bool) {
	switch q := QuizType(strings.ToLower(raw)); q {
	case QuizTypeMCQ, QuizTypeFill, QuizTypeTrueFalse, QuizTypeFlashcard:
		return q, true
	}
	return "", false
}

// QuizQuestion is one generated question. Which fields are set depends on
// the quiz type: mcq uses question/options/correct, fill uses
// question/answer, truefalse uses statement/isTrue and flashcard uses
// front/back/hint.
type QuizQuestion struct {
	Question    string   `json:"question,omitempty"`
	Options     []string `json:"options,omitempty"`
	Correct     string   `json:"correct,omitempty"`
	Answer      string   `json:"answer,omitempty"`
	Statement   string   `json:"statement,omitempty"`
	IsTrue      *bool    `json:"isTrue,omitempty"`
	Front       string   `json:"front,omitempty"`
	Back        string   `json:"back,omitempty"`
	Hint        string   `json:"hint,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}
