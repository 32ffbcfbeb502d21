package attempt

import "github.com/google/uuid"

type SubmitAnswerDTO struct {
	QuestionID uuid.UUID `json:"question_id"`
	UserAnswer string    `json:"user_answer"`
}

type QuizStatsDTO struct {
	QuizID            uuid.UUID `json:"quiz_id"`
	TotalAttempts     int64     `json:"total_attempts"`
	CompletedAttempts int64     `json:"completed_attempts"`
	AverageScore      *float64  `json:"average_score,omitempty"`
}

type UserStatsDTO struct {
	UserID         uuid.UUID `json:"user_id"`
	TotalAttempts  int64     `json:"total_attempts"`
	CorrectAnswers int64     `json:"correct_answers"`
}

type HintDTO struct {
	Hint string `json:"hint"`
}
