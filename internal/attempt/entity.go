package attempt

import (
	"time"

	"github.com/google/uuid"
)

// QuizAttempt is one user's run through a quiz. The partial unique index
// keeps concurrent starts from creating two IN_PROGRESS rows for the same
// (user, quiz) pair even if the start lock is bypassed.
type QuizAttempt struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index;index:idx_attempts_in_progress,unique,where:status = 'IN_PROGRESS'" json:"user_id"`
	QuizID           uuid.UUID  `gorm:"type:uuid;not null;index;index:idx_attempts_in_progress,unique,where:status = 'IN_PROGRESS'" json:"quiz_id"`
	Status           Status     `gorm:"type:text;not null;default:'IN_PROGRESS'" json:"status"`
	StartedAt        time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	Score            *float64   `json:"score,omitempty"`
	TotalQuestions   int        `gorm:"not null;default:0" json:"total_questions"`
	CorrectAnswers   int        `gorm:"not null;default:0" json:"correct_answers"`
	TimeTakenSeconds *int64     `json:"time_taken_seconds,omitempty"`

	Answers []UserAnswer `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

// UserAnswer records the latest submission for one question of one attempt.
// Resubmission overwrites the text and re-derives correctness in place.
type UserAnswer struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	QuestionID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_answers_attempt_question" json:"question_id"`
	AttemptID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_answers_attempt_question" json:"attempt_id"`
	Text         string    `gorm:"column:user_answer;type:text" json:"user_answer"`
	IsCorrect    bool      `gorm:"not null;default:false" json:"is_correct"`
	PointsEarned int       `gorm:"not null;default:0" json:"points_earned"`
	AnsweredAt   time.Time `gorm:"not null" json:"answered_at"`
}
