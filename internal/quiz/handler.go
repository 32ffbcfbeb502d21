package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aiquizzer/aiquizzer-lambda/internal/aiquiz"
	"github.com/aiquizzer/aiquizzer-lambda/internal/apperror"
	"github.com/aiquizzer/aiquizzer-lambda/internal/auth"
	"github.com/aiquizzer/aiquizzer-lambda/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Topic == "" {
		http.Error(w, "topic required", http.StatusBadRequest)
		return
	}
	if !dto.Difficulty.IsValid() {
		http.Error(w, "invalid difficulty", http.StatusBadRequest)
		return
	}
	if !dto.QuestionType.IsValid() {
		http.Error(w, "invalid question type", http.StatusBadRequest)
		return
	}
	if dto.NumberOfQuestions <= 0 {
		http.Error(w, "number_of_questions must be positive", http.StatusBadRequest)
		return
	}

	result, err := h.service.CreateQuiz(r.Context(), userID, dto)
	if err != nil {
		log.WithError(err).Error("failed to create quiz")
		http.Error(w, "failed to create quiz", apperror.Status(err))
		return
	}

	config.JSON(w, http.StatusCreated, result)
}

func (h *Handler) GetQuizWithQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	quizID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	result, err := h.service.GetQuizWithQuestions(r.Context(), quizID, userID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) && !errors.Is(err, apperror.ErrAccessDenied) {
			log.WithError(err).Error("failed to fetch quiz")
		}
		http.Error(w, "quiz not available", apperror.Status(err))
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) ListQuizzesByUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizzes, err := h.service.ListQuizzesByUser(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("failed to list quizzes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) ListPublicQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var (
		quizzes []*Quiz
		err     error
	)
	switch {
	case r.URL.Query().Get("topic") != "":
		quizzes, err = h.service.ListByTopic(r.Context(), r.URL.Query().Get("topic"))
	case r.URL.Query().Get("difficulty") != "":
		difficulty := aiquiz.Difficulty(r.URL.Query().Get("difficulty"))
		if !difficulty.IsValid() {
			http.Error(w, "invalid difficulty", http.StatusBadRequest)
			return
		}
		quizzes, err = h.service.ListByDifficulty(r.Context(), difficulty)
	default:
		quizzes, err = h.service.ListPublicQuizzes(r.Context())
	}
	if err != nil {
		log.WithError(err).Error("failed to list public quizzes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	topics, err := h.service.ListTopics(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to list topics")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, topics)
}

func (h *Handler) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	quizID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	var dto UpdateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.UpdateQuiz(r.Context(), quizID, userID, dto)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) && !errors.Is(err, apperror.ErrAccessDenied) {
			log.WithError(err).Error("failed to update quiz")
		}
		http.Error(w, "failed to update quiz", apperror.Status(err))
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	quizID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteQuiz(r.Context(), quizID, userID); err != nil {
		if !errors.Is(err, apperror.ErrNotFound) && !errors.Is(err, apperror.ErrAccessDenied) {
			log.WithError(err).Error("failed to delete quiz")
		}
		http.Error(w, "failed to delete quiz", apperror.Status(err))
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz deleted successfully",
	})
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	quizID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	var dto AddQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Content == "" || dto.CorrectAnswer == "" {
		http.Error(w, "content and correct_answer required", http.StatusBadRequest)
		return
	}
	if !dto.QuestionType.IsValid() {
		http.Error(w, "invalid question type", http.StatusBadRequest)
		return
	}

	question, err := h.service.AddQuestion(r.Context(), quizID, userID, dto)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) && !errors.Is(err, apperror.ErrAccessDenied) {
			log.WithError(err).Error("failed to add question")
		}
		http.Error(w, "failed to add question", apperror.Status(err))
		return
	}

	config.JSON(w, http.StatusCreated, question)
}

func (h *Handler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	questionID, err := uuid.Parse(chi.URLParam(r, "questionID"))
	if err != nil {
		http.Error(w, "invalid question id", http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveQuestion(r.Context(), questionID, userID); err != nil {
		if !errors.Is(err, apperror.ErrNotFound) && !errors.Is(err, apperror.ErrAccessDenied) {
			log.WithError(err).Error("failed to remove question")
		}
		http.Error(w, "failed to remove question", apperror.Status(err))
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question removed successfully",
	})
}

func callerID(r *http.Request) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.UserID)
}
