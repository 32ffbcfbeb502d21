package quiz

import (
	"time"

	"github.com/aiquizzer/aiquizzer-lambda/internal/aiquiz"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	ID             uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Title          string            `gorm:"type:text;not null" json:"title"`
	Description    string            `gorm:"type:text" json:"description"`
	Topic          string            `gorm:"type:text;not null;index" json:"topic"`
	Difficulty     aiquiz.Difficulty `gorm:"type:text;not null" json:"difficulty"`
	TotalQuestions int               `gorm:"not null;default:0" json:"total_questions"`
	IsPublic       bool              `gorm:"not null;default:false" json:"is_public"`
	// GenerationParams snapshots the generation request this quiz was built
	// from. TotalQuestions above is the requested count, not the stored one.
	GenerationParams datatypes.JSON `gorm:"type:jsonb" json:"generation_params,omitempty"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type Question struct {
	ID            uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Content       string              `gorm:"type:text;not null" json:"content"`
	CorrectAnswer string              `gorm:"type:text;not null" json:"correct_answer"`
	Explanation   string              `gorm:"type:text" json:"explanation"`
	Type          aiquiz.QuestionType `gorm:"column:question_type;type:text;not null" json:"question_type"`
	Points        int                 `gorm:"not null;default:1" json:"points"`
	OrderIndex    int                 `gorm:"not null" json:"order_index"`
	CreatedAt     time.Time           `gorm:"autoCreateTime" json:"created_at"`

	Answers []Answer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

// Answer is a multiple-choice option. OrderIndex is unique per question.
type Answer struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index:idx_answers_question_order,unique" json:"question_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`
	OrderIndex int       `gorm:"not null;index:idx_answers_question_order,unique" json:"order_index"`
}
