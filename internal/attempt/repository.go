package attempt

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(a *QuizAttempt) error
	GetByID(id uuid.UUID) (*QuizAttempt, error)
	FindInProgress(userID, quizID uuid.UUID) (*QuizAttempt, error)
	Save(a *QuizAttempt) error
	ListByUser(userID uuid.UUID) ([]*QuizAttempt, error)
	ListByUserAndStatus(userID uuid.UUID, status Status) ([]*QuizAttempt, error)
	ListByQuiz(quizID uuid.UUID) ([]*QuizAttempt, error)
	TopScoresByQuiz(quizID uuid.UUID, limit int) ([]*QuizAttempt, error)
	AverageScoreByQuiz(quizID uuid.UUID) (*float64, error)
	CountByQuiz(quizID uuid.UUID) (int64, error)
	CountCompletedByQuiz(quizID uuid.UUID) (int64, error)
	CountByUser(userID uuid.UUID) (int64, error)
}

type UserAnswerRepository interface {
	GetByID(id uuid.UUID) (*UserAnswer, error)
	FindByAttemptAndQuestion(attemptID, questionID uuid.UUID) (*UserAnswer, error)
	ListByAttempt(attemptID uuid.UUID) ([]*UserAnswer, error)
	Save(a *UserAnswer) error
	CountCorrectByUser(userID uuid.UUID) (int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(a *QuizAttempt) error {
	return r.db.Create(a).Error
}

func (r *attemptRepository) GetByID(id uuid.UUID) (*QuizAttempt, error) {
	var a QuizAttempt
	err := r.db.First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *attemptRepository) FindInProgress(userID, quizID uuid.UUID) (*QuizAttempt, error) {
	var a QuizAttempt
	err := r.db.
		Where("user_id = ? AND quiz_id = ? AND status = ?", userID, quizID, StatusInProgress).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *attemptRepository) Save(a *QuizAttempt) error {
	return r.db.Save(a).Error
}

func (r *attemptRepository) ListByUser(userID uuid.UUID) ([]*QuizAttempt, error) {
	var attempts []*QuizAttempt
	err := r.db.
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) ListByUserAndStatus(userID uuid.UUID, status Status) ([]*QuizAttempt, error) {
	var attempts []*QuizAttempt
	err := r.db.
		Where("user_id = ? AND status = ?", userID, status).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) ListByQuiz(quizID uuid.UUID) ([]*QuizAttempt, error) {
	var attempts []*QuizAttempt
	err := r.db.
		Where("quiz_id = ?", quizID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) TopScoresByQuiz(quizID uuid.UUID, limit int) ([]*QuizAttempt, error) {
	var attempts []*QuizAttempt
	err := r.db.
		Where("quiz_id = ? AND status = ? AND score IS NOT NULL", quizID, StatusCompleted).
		Order("score DESC, completed_at ASC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) AverageScoreByQuiz(quizID uuid.UUID) (*float64, error) {
	var avg *float64
	err := r.db.Model(&QuizAttempt{}).
		Where("quiz_id = ? AND status = ?", quizID, StatusCompleted).
		Select("AVG(score)").
		Scan(&avg).Error
	return avg, err
}

func (r *attemptRepository) CountByQuiz(quizID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&QuizAttempt{}).
		Where("quiz_id = ?", quizID).
		Count(&count).Error
	return count, err
}

func (r *attemptRepository) CountCompletedByQuiz(quizID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&QuizAttempt{}).
		Where("quiz_id = ? AND status = ?", quizID, StatusCompleted).
		Count(&count).Error
	return count, err
}

func (r *attemptRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&QuizAttempt{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

type userAnswerRepository struct {
	db *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) UserAnswerRepository {
	return &userAnswerRepository{db: db}
}

func (r *userAnswerRepository) GetByID(id uuid.UUID) (*UserAnswer, error) {
	var a UserAnswer
	err := r.db.First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *userAnswerRepository) FindByAttemptAndQuestion(attemptID, questionID uuid.UUID) (*UserAnswer, error) {
	var a UserAnswer
	err := r.db.
		Where("attempt_id = ? AND question_id = ?", attemptID, questionID).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *userAnswerRepository) ListByAttempt(attemptID uuid.UUID) ([]*UserAnswer, error) {
	var answers []*UserAnswer
	err := r.db.
		Where("attempt_id = ?", attemptID).
		Order("answered_at ASC").
		Find(&answers).Error
	return answers, err
}

func (r *userAnswerRepository) Save(a *UserAnswer) error {
	return r.db.Save(a).Error
}

func (r *userAnswerRepository) CountCorrectByUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&UserAnswer{}).
		Where("user_id = ? AND is_correct = ?", userID, true).
		Count(&count).Error
	return count, err
}
