package quiz

import (
	"errors"

	"github.com/aiquizzer/aiquizzer-lambda/internal/aiquiz"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(q *Quiz) error
	GetByID(id uuid.UUID) (*Quiz, error)
	ListByUser(userID uuid.UUID) ([]*Quiz, error)
	ListPublic() ([]*Quiz, error)
	ListByTopic(topic string) ([]*Quiz, error)
	ListByDifficulty(difficulty aiquiz.Difficulty) ([]*Quiz, error)
	DistinctTopics() ([]string, error)
	Save(q *Quiz) error
	Delete(id uuid.UUID) error

	AddQuestions(questions []*Question) error
	ListQuestionsByQuiz(quizID uuid.UUID) ([]*Question, error)
	GetQuestionByID(id uuid.UUID) (*Question, error)
	GetQuestionInQuiz(quizID, questionID uuid.UUID) (*Question, error)
	CountQuestions(quizID uuid.UUID) (int64, error)
	DeleteQuestion(id uuid.UUID) error
	ListAnswersByQuestion(questionID uuid.UUID) ([]*Answer, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(q *Quiz) error {
	return r.db.Create(q).Error
}

func (r *quizRepository) GetByID(id uuid.UUID) (*Quiz, error) {
	var quiz Quiz
	if err := r.db.First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) ListByUser(userID uuid.UUID) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) ListPublic() ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.
		Where("is_public = ?", true).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) ListByTopic(topic string) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.
		Where("topic = ?", topic).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) ListByDifficulty(difficulty aiquiz.Difficulty) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.
		Where("difficulty = ?", difficulty).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) DistinctTopics() ([]string, error) {
	var topics []string
	if err := r.db.
		Model(&Quiz{}).
		Distinct("topic").
		Order("topic ASC").
		Pluck("topic", &topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *quizRepository) Save(q *Quiz) error {
	return r.db.Save(q).Error
}

func (r *quizRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Quiz{}, "id = ?", id).Error
}

func (r *quizRepository) AddQuestions(questions []*Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(&questions).Error
}

func (r *quizRepository) ListQuestionsByQuiz(quizID uuid.UUID) ([]*Question, error) {
	var questions []*Question
	if err := r.db.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.order_index ASC")
		}).
		Where("quiz_id = ?", quizID).
		Order("order_index ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizRepository) GetQuestionByID(id uuid.UUID) (*Question, error) {
	var question Question
	if err := r.db.First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *quizRepository) GetQuestionInQuiz(quizID, questionID uuid.UUID) (*Question, error) {
	var question Question
	if err := r.db.First(&question, "id = ? AND quiz_id = ?", questionID, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *quizRepository) CountQuestions(quizID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.
		Model(&Question{}).
		Where("quiz_id = ?", quizID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *quizRepository) DeleteQuestion(id uuid.UUID) error {
	return r.db.Delete(&Question{}, "id = ?", id).Error
}

func (r *quizRepository) ListAnswersByQuestion(questionID uuid.UUID) ([]*Answer, error) {
	var answers []*Answer
	if err := r.db.
		Where("question_id = ?", questionID).
		Order("order_index ASC").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
