package attempt

import (
	"context"
	"time"

	"github.com/aiquizzer/aiquizzer-lambda/internal/aiquiz"
	"github.com/aiquizzer/aiquizzer-lambda/internal/apperror"
	"github.com/aiquizzer/aiquizzer-lambda/internal/config"
	"github.com/aiquizzer/aiquizzer-lambda/internal/quiz"
	"github.com/google/uuid"
)

const leaderboardLimit = 10

type AttemptService interface {
	Start(ctx context.Context, quizID, userID uuid.UUID) (*QuizAttempt, error)
	SubmitAnswer(ctx context.Context, attemptID, userID uuid.UUID, dto SubmitAnswerDTO) (*UserAnswer, error)
	Complete(ctx context.Context, attemptID, userID uuid.UUID) (*QuizAttempt, error)
	Abandon(ctx context.Context, attemptID, userID uuid.UUID) (*QuizAttempt, error)

	GetAttempt(ctx context.Context, attemptID, userID uuid.UUID) (*QuizAttempt, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *Status) ([]*QuizAttempt, error)
	ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]*QuizAttempt, error)
	AnswersForAttempt(ctx context.Context, attemptID, userID uuid.UUID) ([]*UserAnswer, error)

	Leaderboard(ctx context.Context, quizID uuid.UUID) ([]*QuizAttempt, error)
	QuizStats(ctx context.Context, quizID uuid.UUID) (*QuizStatsDTO, error)
	UserStats(ctx context.Context, userID uuid.UUID) (*UserStatsDTO, error)

	HintForAnswer(ctx context.Context, answerID, userID uuid.UUID) (string, error)
}

type attemptService struct {
	attempts AttemptRepository
	answers  UserAnswerRepository
	quizzes  quiz.QuizRepository
	ai       aiquiz.Service
	locker   StartLocker
}

func NewService(attempts AttemptRepository, answers UserAnswerRepository, quizzes quiz.QuizRepository, ai aiquiz.Service, locker StartLocker) AttemptService {
	return &attemptService{
		attempts: attempts,
		answers:  answers,
		quizzes:  quizzes,
		ai:       ai,
		locker:   locker,
	}
}

// Start returns the caller's open attempt for the quiz, creating one if none
// exists. The lock makes concurrent starts converge on a single attempt; the
// partial unique index on quiz_attempts backstops it at the database.
func (s *attemptService) Start(ctx context.Context, quizID, userID uuid.UUID) (*QuizAttempt, error) {
	log := config.WithContext(ctx)

	quizRecord, err := s.quizzes.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if quizRecord == nil {
		return nil, apperror.NotFound("quiz not found")
	}

	release, err := s.locker.Lock(ctx, userID.String()+":"+quizID.String())
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := s.attempts.FindInProgress(userID, quizID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.WithField("attempt_id", existing.ID).Info("resuming in-progress attempt")
		return existing, nil
	}

	count, err := s.quizzes.CountQuestions(quizID)
	if err != nil {
		return nil, err
	}

	attempt := &QuizAttempt{
		ID:             uuid.New(),
		UserID:         userID,
		QuizID:         quizID,
		Status:         StatusInProgress,
		StartedAt:      time.Now().UTC(),
		TotalQuestions: int(count),
	}
	if err := s.attempts.Create(attempt); err != nil {
		return nil, err
	}

	log.WithField("attempt_id", attempt.ID).WithField("quiz_id", quizID).Info("attempt started")
	return attempt, nil
}

// SubmitAnswer grades the submission, upserts it for (attempt, question) and
// recomputes the attempt's running statistics.
func (s *attemptService) SubmitAnswer(ctx context.Context, attemptID, userID uuid.UUID, dto SubmitAnswerDTO) (*UserAnswer, error) {
	attempt, err := s.ownedAttempt(attemptID, userID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != StatusInProgress {
		return nil, apperror.InvalidState("attempt is not in progress")
	}

	question, err := s.quizzes.GetQuestionInQuiz(attempt.QuizID, dto.QuestionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperror.NotFound("question not found in this quiz")
	}

	answer, err := s.answers.FindByAttemptAndQuestion(attempt.ID, dto.QuestionID)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		answer = &UserAnswer{
			ID:         uuid.New(),
			UserID:     userID,
			QuestionID: dto.QuestionID,
			AttemptID:  attempt.ID,
			AnsweredAt: time.Now().UTC(),
		}
	}
	answer.Text = dto.UserAnswer
	Grade(answer, question)

	if err := s.answers.Save(answer); err != nil {
		return nil, err
	}
	if err := s.recomputeStatistics(attempt); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *attemptService) Complete(ctx context.Context, attemptID, userID uuid.UUID) (*QuizAttempt, error) {
	attempt, err := s.ownedAttempt(attemptID, userID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != StatusInProgress {
		return nil, apperror.InvalidState("attempt is not in progress")
	}

	now := time.Now().UTC()
	taken := int64(now.Sub(attempt.StartedAt).Seconds())

	attempt.Status = StatusCompleted
	attempt.CompletedAt = &now
	attempt.TimeTakenSeconds = &taken

	if err := s.recomputeStatistics(attempt); err != nil {
		return nil, err
	}

	config.WithContext(ctx).
		WithField("attempt_id", attempt.ID).
		WithField("correct_answers", attempt.CorrectAnswers).
		Info("attempt completed")
	return attempt, nil
}

// Abandon closes an attempt without scoring. Unlike Complete it accepts any
// current status; abandoning twice just re-stamps the completion time.
func (s *attemptService) Abandon(ctx context.Context, attemptID, userID uuid.UUID) (*QuizAttempt, error) {
	attempt, err := s.ownedAttempt(attemptID, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	attempt.Status = StatusAbandoned
	attempt.CompletedAt = &now

	if err := s.attempts.Save(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *attemptService) GetAttempt(ctx context.Context, attemptID, userID uuid.UUID) (*QuizAttempt, error) {
	return s.ownedAttempt(attemptID, userID)
}

func (s *attemptService) ListByUser(ctx context.Context, userID uuid.UUID, status *Status) ([]*QuizAttempt, error) {
	if status != nil {
		return s.attempts.ListByUserAndStatus(userID, *status)
	}
	return s.attempts.ListByUser(userID)
}

func (s *attemptService) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]*QuizAttempt, error) {
	return s.attempts.ListByQuiz(quizID)
}

func (s *attemptService) AnswersForAttempt(ctx context.Context, attemptID, userID uuid.UUID) ([]*UserAnswer, error) {
	if _, err := s.ownedAttempt(attemptID, userID); err != nil {
		return nil, err
	}
	return s.answers.ListByAttempt(attemptID)
}

func (s *attemptService) Leaderboard(ctx context.Context, quizID uuid.UUID) ([]*QuizAttempt, error) {
	return s.attempts.TopScoresByQuiz(quizID, leaderboardLimit)
}

func (s *attemptService) QuizStats(ctx context.Context, quizID uuid.UUID) (*QuizStatsDTO, error) {
	total, err := s.attempts.CountByQuiz(quizID)
	if err != nil {
		return nil, err
	}
	completed, err := s.attempts.CountCompletedByQuiz(quizID)
	if err != nil {
		return nil, err
	}
	avg, err := s.attempts.AverageScoreByQuiz(quizID)
	if err != nil {
		return nil, err
	}

	return &QuizStatsDTO{
		QuizID:            quizID,
		TotalAttempts:     total,
		CompletedAttempts: completed,
		AverageScore:      avg,
	}, nil
}

func (s *attemptService) UserStats(ctx context.Context, userID uuid.UUID) (*UserStatsDTO, error) {
	total, err := s.attempts.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	correct, err := s.answers.CountCorrectByUser(userID)
	if err != nil {
		return nil, err
	}

	return &UserStatsDTO{
		UserID:         userID,
		TotalAttempts:  total,
		CorrectAnswers: correct,
	}, nil
}

// HintForAnswer asks the model to nudge the user toward the correct answer
// for a question they already answered.
func (s *attemptService) HintForAnswer(ctx context.Context, answerID, userID uuid.UUID) (string, error) {
	answer, err := s.answers.GetByID(answerID)
	if err != nil {
		return "", err
	}
	if answer == nil {
		return "", apperror.NotFound("answer not found")
	}
	if answer.UserID != userID {
		return "", apperror.AccessDenied("you do not have access to this answer")
	}

	question, err := s.quizzes.GetQuestionByID(answer.QuestionID)
	if err != nil {
		return "", err
	}
	if question == nil {
		return "", apperror.NotFound("question not found")
	}

	return s.ai.GenerateHint(ctx, answer.Text, question.CorrectAnswer, question.Content)
}

func (s *attemptService) ownedAttempt(attemptID, userID uuid.UUID) (*QuizAttempt, error) {
	attempt, err := s.attempts.GetByID(attemptID)
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, apperror.NotFound("attempt not found")
	}
	if attempt.UserID != userID {
		return nil, apperror.AccessDenied("you do not have access to this attempt")
	}
	return attempt, nil
}

// recomputeStatistics re-derives correct-answer count and score from every
// stored answer and persists the attempt. The score is left untouched when
// the attempt has no questions.
func (s *attemptService) recomputeStatistics(attempt *QuizAttempt) error {
	answers, err := s.answers.ListByAttempt(attempt.ID)
	if err != nil {
		return err
	}

	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}
	attempt.CorrectAnswers = correct
	if score := PercentScore(correct, attempt.TotalQuestions); score != nil {
		attempt.Score = score
	}

	return s.attempts.Save(attempt)
}
