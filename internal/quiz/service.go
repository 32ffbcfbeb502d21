package quiz

import (
	"context"
	"encoding/json"

	"github.com/aiquizzer/aiquizzer-lambda/internal/aiquiz"
	"github.com/aiquizzer/aiquizzer-lambda/internal/apperror"
	"github.com/aiquizzer/aiquizzer-lambda/internal/config"
	"github.com/google/uuid"
)

type QuizService interface {
	CreateQuiz(ctx context.Context, userID uuid.UUID, dto CreateQuizDTO) (*QuizWithQuestionsDTO, error)
	GetQuizWithQuestions(ctx context.Context, quizID, userID uuid.UUID) (*QuizWithQuestionsDTO, error)
	ListQuizzesByUser(ctx context.Context, userID uuid.UUID) ([]*Quiz, error)
	ListPublicQuizzes(ctx context.Context) ([]*Quiz, error)
	ListTopics(ctx context.Context) ([]string, error)
	ListByTopic(ctx context.Context, topic string) ([]*Quiz, error)
	ListByDifficulty(ctx context.Context, difficulty aiquiz.Difficulty) ([]*Quiz, error)
	UpdateQuiz(ctx context.Context, quizID, userID uuid.UUID, dto UpdateQuizDTO) (*Quiz, error)
	DeleteQuiz(ctx context.Context, quizID, userID uuid.UUID) error
	AddQuestion(ctx context.Context, quizID, userID uuid.UUID, dto AddQuestionDTO) (*Question, error)
	RemoveQuestion(ctx context.Context, questionID, userID uuid.UUID) error
}

type quizService struct {
	repo QuizRepository
	ai   aiquiz.Service
}

func NewService(repo QuizRepository, ai aiquiz.Service) QuizService {
	return &quizService{repo: repo, ai: ai}
}

// CreateQuiz assembles a quiz around generated content. The shell is
// persisted first so generated questions attach to a stable identity; a
// generation shortfall still finalizes the quiz, and TotalQuestions keeps the
// requested count either way.
func (s *quizService) CreateQuiz(ctx context.Context, userID uuid.UUID, dto CreateQuizDTO) (*QuizWithQuestionsDTO, error) {
	log := config.WithContext(ctx)
	log.Info("creating quiz")

	req := aiquiz.QuestionRequest{
		Topic:      dto.Topic,
		Difficulty: dto.Difficulty,
		Count:      dto.NumberOfQuestions,
		Type:       dto.QuestionType,
	}
	params, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	quiz := &Quiz{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            dto.Title,
		Description:      dto.Description,
		Topic:            dto.Topic,
		Difficulty:       dto.Difficulty,
		TotalQuestions:   dto.NumberOfQuestions,
		IsPublic:         false,
		GenerationParams: params,
	}
	if err := s.repo.Create(quiz); err != nil {
		log.WithError(err).Error("failed to persist quiz shell")
		return nil, err
	}

	if quiz.Title == "" {
		title, err := s.ai.GenerateTitle(ctx, dto.Topic, dto.Difficulty)
		if err != nil {
			log.WithError(err).Warn("title generation failed")
		}
		quiz.Title = title
	}
	if quiz.Description == "" {
		description, err := s.ai.GenerateDescription(ctx, dto.Topic, dto.Difficulty, dto.NumberOfQuestions)
		if err != nil {
			log.WithError(err).Warn("description generation failed")
		}
		quiz.Description = description
	}

	generated, err := s.ai.GenerateQuestions(ctx, req)
	if err != nil {
		// Recoverable: the quiz is finalized with no questions.
		log.WithError(err).Warn("question generation failed, finalizing quiz without questions")
		generated = nil
	}

	questions := make([]*Question, 0, len(generated))
	for i, gq := range generated {
		question := &Question{
			ID:            uuid.New(),
			QuizID:        quiz.ID,
			Content:       gq.Content,
			CorrectAnswer: gq.CorrectAnswer,
			Explanation:   gq.Explanation,
			Type:          gq.Type,
			Points:        gq.Points,
			OrderIndex:    i,
		}
		for _, opt := range gq.Options {
			question.Answers = append(question.Answers, Answer{
				ID:         uuid.New(),
				QuestionID: question.ID,
				Text:       opt.Text,
				IsCorrect:  opt.IsCorrect,
				OrderIndex: opt.OrderIndex,
			})
		}
		questions = append(questions, question)
	}

	if err := s.repo.AddQuestions(questions); err != nil {
		log.WithError(err).Error("failed to persist generated questions")
		return nil, err
	}
	if err := s.repo.Save(quiz); err != nil {
		return nil, err
	}

	log.Infof("quiz created with %d of %d requested questions", len(questions), dto.NumberOfQuestions)
	return &QuizWithQuestionsDTO{Quiz: quiz, Questions: questions}, nil
}

func (s *quizService) GetQuizWithQuestions(ctx context.Context, quizID, userID uuid.UUID) (*QuizWithQuestionsDTO, error) {
	quiz, err := s.repo.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apperror.NotFound("quiz not found")
	}
	if !quiz.IsPublic && quiz.UserID != userID {
		return nil, apperror.AccessDenied("quiz does not belong to the caller")
	}

	questions, err := s.repo.ListQuestionsByQuiz(quizID)
	if err != nil {
		return nil, err
	}
	return &QuizWithQuestionsDTO{Quiz: quiz, Questions: questions}, nil
}

func (s *quizService) ListQuizzesByUser(ctx context.Context, userID uuid.UUID) ([]*Quiz, error) {
	return s.repo.ListByUser(userID)
}

func (s *quizService) ListPublicQuizzes(ctx context.Context) ([]*Quiz, error) {
	return s.repo.ListPublic()
}

func (s *quizService) ListTopics(ctx context.Context) ([]string, error) {
	return s.repo.DistinctTopics()
}

func (s *quizService) ListByTopic(ctx context.Context, topic string) ([]*Quiz, error) {
	return s.repo.ListByTopic(topic)
}

func (s *quizService) ListByDifficulty(ctx context.Context, difficulty aiquiz.Difficulty) ([]*Quiz, error) {
	return s.repo.ListByDifficulty(difficulty)
}

func (s *quizService) UpdateQuiz(ctx context.Context, quizID, userID uuid.UUID, dto UpdateQuizDTO) (*Quiz, error) {
	quiz, err := s.ownedQuiz(quizID, userID)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		quiz.Title = *dto.Title
	}
	if dto.Description != nil {
		quiz.Description = *dto.Description
	}
	if dto.IsPublic != nil {
		quiz.IsPublic = *dto.IsPublic
	}

	if err := s.repo.Save(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, quizID, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.ownedQuiz(quizID, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(quizID); err != nil {
		log.WithError(err).Error("failed to delete quiz")
		return err
	}
	log.Info("quiz deleted")
	return nil
}

func (s *quizService) AddQuestion(ctx context.Context, quizID, userID uuid.UUID, dto AddQuestionDTO) (*Question, error) {
	if _, err := s.ownedQuiz(quizID, userID); err != nil {
		return nil, err
	}

	count, err := s.repo.CountQuestions(quizID)
	if err != nil {
		return nil, err
	}

	question := &Question{
		ID:            uuid.New(),
		QuizID:        quizID,
		Content:       dto.Content,
		CorrectAnswer: dto.CorrectAnswer,
		Explanation:   dto.Explanation,
		Type:          dto.QuestionType,
		Points:        1,
		OrderIndex:    int(count),
	}
	if err := s.repo.AddQuestions([]*Question{question}); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *quizService) RemoveQuestion(ctx context.Context, questionID, userID uuid.UUID) error {
	question, err := s.repo.GetQuestionByID(questionID)
	if err != nil {
		return err
	}
	if question == nil {
		return apperror.NotFound("question not found")
	}
	if _, err := s.ownedQuiz(question.QuizID, userID); err != nil {
		return err
	}
	return s.repo.DeleteQuestion(questionID)
}

func (s *quizService) ownedQuiz(quizID, userID uuid.UUID) (*Quiz, error) {
	quiz, err := s.repo.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apperror.NotFound("quiz not found")
	}
	if quiz.UserID != userID {
		return nil, apperror.AccessDenied("quiz does not belong to the caller")
	}
	return quiz, nil
}
