package attempt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aiquizzer/aiquizzer-lambda/internal/aiquiz"
	"github.com/aiquizzer/aiquizzer-lambda/internal/apperror"
	"github.com/aiquizzer/aiquizzer-lambda/internal/quiz"
	"github.com/google/uuid"
)

type fakeAttemptRepo struct {
	AttemptRepository

	attempts map[uuid.UUID]*QuizAttempt
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{attempts: make(map[uuid.UUID]*QuizAttempt)}
}

func (f *fakeAttemptRepo) Create(a *QuizAttempt) error {
	copied := *a
	f.attempts[a.ID] = &copied
	return nil
}

func (f *fakeAttemptRepo) GetByID(id uuid.UUID) (*QuizAttempt, error) {
	a, ok := f.attempts[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAttemptRepo) FindInProgress(userID, quizID uuid.UUID) (*QuizAttempt, error) {
	for _, a := range f.attempts {
		if a.UserID == userID && a.QuizID == quizID && a.Status == StatusInProgress {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAttemptRepo) Save(a *QuizAttempt) error {
	copied := *a
	f.attempts[a.ID] = &copied
	return nil
}

type fakeAnswerRepo struct {
	UserAnswerRepository

	answers map[uuid.UUID]*UserAnswer
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: make(map[uuid.UUID]*UserAnswer)}
}

func (f *fakeAnswerRepo) GetByID(id uuid.UUID) (*UserAnswer, error) {
	a, ok := f.answers[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAnswerRepo) FindByAttemptAndQuestion(attemptID, questionID uuid.UUID) (*UserAnswer, error) {
	for _, a := range f.answers {
		if a.AttemptID == attemptID && a.QuestionID == questionID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAnswerRepo) ListByAttempt(attemptID uuid.UUID) ([]*UserAnswer, error) {
	var out []*UserAnswer
	for _, a := range f.answers {
		if a.AttemptID == attemptID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeAnswerRepo) Save(a *UserAnswer) error {
	copied := *a
	f.answers[a.ID] = &copied
	return nil
}

type fakeQuizRepo struct {
	quiz.QuizRepository

	quizzes   map[uuid.UUID]*quiz.Quiz
	questions map[uuid.UUID]*quiz.Question
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		quizzes:   make(map[uuid.UUID]*quiz.Quiz),
		questions: make(map[uuid.UUID]*quiz.Question),
	}
}

func (f *fakeQuizRepo) GetByID(id uuid.UUID) (*quiz.Quiz, error) {
	q, ok := f.quizzes[id]
	if !ok {
		return nil, nil
	}
	return q, nil
}

func (f *fakeQuizRepo) GetQuestionByID(id uuid.UUID) (*quiz.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, nil
	}
	return q, nil
}

func (f *fakeQuizRepo) GetQuestionInQuiz(quizID, questionID uuid.UUID) (*quiz.Question, error) {
	q, ok := f.questions[questionID]
	if !ok || q.QuizID != quizID {
		return nil, nil
	}
	return q, nil
}

func (f *fakeQuizRepo) CountQuestions(quizID uuid.UUID) (int64, error) {
	var count int64
	for _, q := range f.questions {
		if q.QuizID == quizID {
			count++
		}
	}
	return count, nil
}

type fakeHintAI struct {
	aiquiz.Service

	hint string
}

func (f *fakeHintAI) GenerateHint(ctx context.Context, userAnswer, correctAnswer, question string) (string, error) {
	return f.hint, nil
}

type fixture struct {
	attempts *fakeAttemptRepo
	answers  *fakeAnswerRepo
	quizzes  *fakeQuizRepo
	service  AttemptService

	quizID      uuid.UUID
	ownerID     uuid.UUID
	questionIDs []uuid.UUID
}

// newFixture seeds one quiz with two short-answer questions worth one point
// each, the correct answers being "Paris" and "4".
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		attempts: newFakeAttemptRepo(),
		answers:  newFakeAnswerRepo(),
		quizzes:  newFakeQuizRepo(),
		ownerID:  uuid.New(),
		quizID:   uuid.New(),
	}
	f.quizzes.quizzes[f.quizID] = &quiz.Quiz{ID: f.quizID, UserID: f.ownerID, Title: "geo"}

	for i, answer := range []string{"Paris", "4"} {
		q := &quiz.Question{
			ID:            uuid.New(),
			QuizID:        f.quizID,
			Content:       "q",
			CorrectAnswer: answer,
			Points:        1,
			OrderIndex:    i,
		}
		f.quizzes.questions[q.ID] = q
		f.questionIDs = append(f.questionIDs, q.ID)
	}

	f.service = NewService(f.attempts, f.answers, f.quizzes, &fakeHintAI{hint: "think capitals"}, NewMemoryLocker())
	return f
}

func TestStartAttempt(t *testing.T) {
	t.Run("SnapshotsQuestionCount", func(t *testing.T) {
		f := newFixture(t)

		attempt, err := f.service.Start(context.Background(), f.quizID, f.ownerID)
		if err != nil {
			t.Fatalf("Start failed: %v", err)
		}
		if attempt.Status != StatusInProgress {
			t.Errorf("status = %s, want %s", attempt.Status, StatusInProgress)
		}
		if attempt.TotalQuestions != 2 {
			t.Errorf("TotalQuestions = %d, want 2", attempt.TotalQuestions)
		}
		if attempt.Score != nil || attempt.CompletedAt != nil {
			t.Error("new attempt must not carry a score or completion time")
		}
	})

	t.Run("IdempotentWhileInProgress", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.service.Start(context.Background(), f.quizID, f.ownerID)
		if err != nil {
			t.Fatalf("first Start failed: %v", err)
		}
		second, err := f.service.Start(context.Background(), f.quizID, f.ownerID)
		if err != nil {
			t.Fatalf("second Start failed: %v", err)
		}
		if first.ID != second.ID {
			t.Errorf("second start created a new attempt: %s vs %s", first.ID, second.ID)
		}
		if len(f.attempts.attempts) != 1 {
			t.Errorf("expected a single stored attempt, got %d", len(f.attempts.attempts))
		}
	})

	t.Run("NewAttemptAfterCompletion", func(t *testing.T) {
		f := newFixture(t)

		first, _ := f.service.Start(context.Background(), f.quizID, f.ownerID)
		if _, err := f.service.Complete(context.Background(), first.ID, f.ownerID); err != nil {
			t.Fatalf("Complete failed: %v", err)
		}

		second, err := f.service.Start(context.Background(), f.quizID, f.ownerID)
		if err != nil {
			t.Fatalf("restart failed: %v", err)
		}
		if second.ID == first.ID {
			t.Error("completed attempt must not be resumed")
		}
	})

	t.Run("UnknownQuiz", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Start(context.Background(), uuid.New(), f.ownerID)
		if !errors.Is(err, apperror.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestSubmitAnswer(t *testing.T) {
	t.Run("GradesAndRecomputes", func(t *testing.T) {
		f := newFixture(t)
		attempt, _ := f.service.Start(context.Background(), f.quizID, f.ownerID)

		answer, err := f.service.SubmitAnswer(context.Background(), attempt.ID, f.ownerID, SubmitAnswerDTO{
			QuestionID: f.questionIDs[0],
			UserAnswer: "  paris  ",
		})
		if err != nil {
			t.Fatalf("SubmitAnswer failed: %v", err)
		}
		if !answer.IsCorrect || answer.PointsEarned != 1 {
			t.Errorf("got correct=%v points=%d, want correct with 1 point", answer.IsCorrect, answer.PointsEarned)
		}

		stored, _ := f.attempts.GetByID(attempt.ID)
		if stored.CorrectAnswers != 1 {
			t.Errorf("CorrectAnswers = %d, want 1", stored.CorrectAnswers)
		}
		if stored.Score == nil || *stored.Score != 50.0 {
			t.Errorf("Score = %v, want 50.0", stored.Score)
		}
	})

	t.Run("ResubmissionOverwrites", func(t *testing.T) {
		f := newFixture(t)
		attempt, _ := f.service.Start(context.Background(), f.quizID, f.ownerID)

		first, err := f.service.SubmitAnswer(context.Background(), attempt.ID, f.ownerID, SubmitAnswerDTO{
			QuestionID: f.questionIDs[0],
			UserAnswer: "London",
		})
		if err != nil {
			t.Fatalf("first submission failed: %v", err)
		}
		second, err := f.service.SubmitAnswer(context.Background(), attempt.ID, f.ownerID, SubmitAnswerDTO{
			QuestionID: f.questionIDs[0],
			UserAnswer: "Paris",
		})
		if err != nil {
			t.Fatalf("resubmission failed: %v", err)
		}

		if second.ID != first.ID {
			t.Error("resubmission must reuse the existing answer row")
		}
		if len(f.answers.answers) != 1 {
			t.Fatalf("expected one stored answer, got %d", len(f.answers.answers))
		}
		if !second.IsCorrect {
			t.Error("overwritten answer not regraded")
		}

		stored, _ := f.attempts.GetByID(attempt.ID)
		if stored.CorrectAnswers != 1 {
			t.Errorf("CorrectAnswers = %d after overwrite, want 1", stored.CorrectAnswers)
		}
	})

	t.Run("RejectsForeignQuestion", func(t *testing.T) {
		f := newFixture(t)
		attempt, _ := f.service.Start(context.Background(), f.quizID, f.ownerID)

		otherQuestion := &quiz.Question{ID: uuid.New(), QuizID: uuid.New(), CorrectAnswer: "x"}
		f.quizzes.questions[otherQuestion.ID] = otherQuestion

		_, err := f.service.SubmitAnswer(context.Background(), attempt.ID, f.ownerID, SubmitAnswerDTO{
			QuestionID: otherQuestion.ID,
			UserAnswer: "x",
		})
		if !errors.Is(err, apperror.ErrNotFound) {
			t.Fatalf("expected not found for question outside the quiz, got %v", err)
		}
	})

	t.Run("RejectsNonOwner", func(t *testing.T) {
		f := newFixture(t)
		attempt, _ := f.service.Start(context.Background(), f.quizID, f.ownerID)

		_, err := f.service.SubmitAnswer(context.Background(), attempt.ID, uuid.New(), SubmitAnswerDTO{
			QuestionID: f.questionIDs[0],
			UserAnswer: "Paris",
		})
		if !errors.Is(err, apperror.ErrAccessDenied) {
			t.Fatalf("expected access denied, got %v", err)
		}
	})

	t.Run("RejectsCompletedAttempt", func(t *testing.T) {
		f := newFixture(t)
		attempt, _ := f.service.Start(context.Background(), f.quizID, f.ownerID)
		if _, err := f.service.Complete(context.Background(), attempt.ID, f.ownerID); err != nil {
			t.Fatalf("Complete failed: %v", err)
		}

		_, err := f.service.SubmitAnswer(context.Background(), attempt.ID, f.ownerID, SubmitAnswerDTO{
			QuestionID: f.questionIDs[0],
			UserAnswer: "Paris",
		})
		if !errors.Is(err, apperror.ErrInvalidState) {
			t.Fatalf("expected invalid state, got %v", err)
		}
	})
}

func TestCompleteAttempt(t *testing.T) {
	t.Run("FinalizesScoreAndTiming", func(t *testing.T) {
		f := newFixture(t)
		attempt, _ := f.service.Start(context.Background(), f.quizID, f.ownerID)

		for _, submission := range []struct {
			question uuid.UUID
			text     string
		}{
			{f.questionIDs[0], "Paris"},
			{f.questionIDs[1], "5"},
		} {
			if _, err := f.service.SubmitAnswer(context.Background(), attempt.ID, f.ownerID, SubmitAnswerDTO{
				QuestionID: submission.question,
				UserAnswer: submission.text,
			}); err != nil {
				t.Fatalf("SubmitAnswer failed: %v", err)
			}
		}

		completed, err := f.service.Complete(context.Background(), attempt.ID, f.ownerID)
		if err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if completed.Status != StatusCompleted {
			t.Errorf("status = %s, want %s", completed.Status, StatusCompleted)
		}
		if completed.CompletedAt == nil || completed.TimeTakenSeconds == nil {
			t.Fatal("completion must stamp CompletedAt and TimeTakenSeconds")
		}
		if completed.CorrectAnswers != 1 {
			t.Errorf("CorrectAnswers = %d, want 1", completed.CorrectAnswers)
		}
		if completed.Score == nil || *completed.Score != 50.0 {
			t.Errorf("Score = %v, want 50.0", completed.Score)
		}
	})

	t.Run("RejectsDoubleCompletion", func(t *testing.T) {
		f := newFixture(t)
		attempt, _ := f.service.Start(context.Background(), f.quizID, f.ownerID)

		if _, err := f.service.Complete(context.Background(), attempt.ID, f.ownerID); err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if _, err := f.service.Complete(context.Background(), attempt.ID, f.ownerID); !errors.Is(err, apperror.ErrInvalidState) {
			t.Fatalf("expected invalid state on second completion, got %v", err)
		}
	})
}

func TestAbandonAttempt(t *testing.T) {
	t.Run("ClosesWithoutScoring", func(t *testing.T) {
		f := newFixture(t)
		attempt, _ := f.service.Start(context.Background(), f.quizID, f.ownerID)

		abandoned, err := f.service.Abandon(context.Background(), attempt.ID, f.ownerID)
		if err != nil {
			t.Fatalf("Abandon failed: %v", err)
		}
		if abandoned.Status != StatusAbandoned {
			t.Errorf("status = %s, want %s", abandoned.Status, StatusAbandoned)
		}
		if abandoned.CompletedAt == nil {
			t.Error("abandon must stamp CompletedAt")
		}
		if abandoned.Score != nil {
			t.Errorf("abandon must not score, got %v", *abandoned.Score)
		}
	})

	t.Run("AllowedOnCompletedAttempt", func(t *testing.T) {
		f := newFixture(t)
		attempt, _ := f.service.Start(context.Background(), f.quizID, f.ownerID)

		completed, err := f.service.Complete(context.Background(), attempt.ID, f.ownerID)
		if err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		firstStamp := *completed.CompletedAt

		time.Sleep(5 * time.Millisecond)
		abandoned, err := f.service.Abandon(context.Background(), attempt.ID, f.ownerID)
		if err != nil {
			t.Fatalf("Abandon after completion failed: %v", err)
		}
		if abandoned.Status != StatusAbandoned {
			t.Errorf("status = %s, want %s", abandoned.Status, StatusAbandoned)
		}
		if !abandoned.CompletedAt.After(firstStamp) {
			t.Error("abandon must re-stamp CompletedAt")
		}
	})
}

func TestHintForAnswer(t *testing.T) {
	f := newFixture(t)
	attempt, _ := f.service.Start(context.Background(), f.quizID, f.ownerID)
	answer, err := f.service.SubmitAnswer(context.Background(), attempt.ID, f.ownerID, SubmitAnswerDTO{
		QuestionID: f.questionIDs[0],
		UserAnswer: "London",
	})
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}

	hint, err := f.service.HintForAnswer(context.Background(), answer.ID, f.ownerID)
	if err != nil {
		t.Fatalf("HintForAnswer failed: %v", err)
	}
	if hint != "think capitals" {
		t.Errorf("hint = %q", hint)
	}

	if _, err := f.service.HintForAnswer(context.Background(), answer.ID, uuid.New()); !errors.Is(err, apperror.ErrAccessDenied) {
		t.Fatalf("expected access denied for foreign answer, got %v", err)
	}
}
