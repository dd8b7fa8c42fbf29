package dto

import "github.com/studymind/studymind/internal/app/models"

// QuizRequest is the body of the quiz generation endpoint
type QuizRequest struct {
	Notes        string `json:"notes"`
	QuizType     string `json:"quizType"`
	Difficulty   string `json:"difficulty"`
	Subject      string `json:"subject"`
	NumQuestions int    `json:"numQuestions"`
}

// QuizResponse carries a generated question set back to the client
type QuizResponse struct {
	Success    bool                  `json:"success"`
	Questions  []models.QuizQuestion `json:"questions"`
	Type       models.QuizType       `json:"type"`
	Difficulty string                `json:"difficulty"`
	Subject    string                `json:"subject"`
}
