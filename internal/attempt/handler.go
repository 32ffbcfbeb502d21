package attempt

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aiquizzer/aiquizzer-lambda/internal/apperror"
	"github.com/aiquizzer/aiquizzer-lambda/internal/auth"
	"github.com/aiquizzer/aiquizzer-lambda/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service AttemptService
}

func NewHandler(s AttemptService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) StartAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	attempt, err := h.service.Start(r.Context(), quizID, userID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			log.WithError(err).Error("failed to start attempt")
		}
		http.Error(w, "failed to start attempt", apperror.Status(err))
		return
	}

	config.JSON(w, http.StatusCreated, attempt)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	attemptID, err := uuid.Parse(chi.URLParam(r, "attemptID"))
	if err != nil {
		http.Error(w, "invalid attempt id", http.StatusBadRequest)
		return
	}

	var dto SubmitAnswerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.QuestionID == uuid.Nil {
		http.Error(w, "question_id required", http.StatusBadRequest)
		return
	}

	answer, err := h.service.SubmitAnswer(r.Context(), attemptID, userID, dto)
	if err != nil {
		if !isDomainError(err) {
			log.WithError(err).Error("failed to submit answer")
		}
		http.Error(w, "failed to submit answer", apperror.Status(err))
		return
	}

	config.JSON(w, http.StatusOK, answer)
}

func (h *Handler) CompleteAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	attemptID, err := uuid.Parse(chi.URLParam(r, "attemptID"))
	if err != nil {
		http.Error(w, "invalid attempt id", http.StatusBadRequest)
		return
	}

	attempt, err := h.service.Complete(r.Context(), attemptID, userID)
	if err != nil {
		if !isDomainError(err) {
			log.WithError(err).Error("failed to complete attempt")
		}
		http.Error(w, "failed to complete attempt", apperror.Status(err))
		return
	}

	config.JSON(w, http.StatusOK, attempt)
}

func (h *Handler) AbandonAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	attemptID, err := uuid.Parse(chi.URLParam(r, "attemptID"))
	if err != nil {
		http.Error(w, "invalid attempt id", http.StatusBadRequest)
		return
	}

	attempt, err := h.service.Abandon(r.Context(), attemptID, userID)
	if err != nil {
		if !isDomainError(err) {
			log.WithError(err).Error("failed to abandon attempt")
		}
		http.Error(w, "failed to abandon attempt", apperror.Status(err))
		return
	}

	config.JSON(w, http.StatusOK, attempt)
}

func (h *Handler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	attemptID, err := uuid.Parse(chi.URLParam(r, "attemptID"))
	if err != nil {
		http.Error(w, "invalid attempt id", http.StatusBadRequest)
		return
	}

	attempt, err := h.service.GetAttempt(r.Context(), attemptID, userID)
	if err != nil {
		if !isDomainError(err) {
			log.WithError(err).Error("failed to fetch attempt")
		}
		http.Error(w, "attempt not available", apperror.Status(err))
		return
	}

	config.JSON(w, http.StatusOK, attempt)
}

func (h *Handler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var status *Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := Status(raw)
		if !s.IsValid() {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		status = &s
	}

	attempts, err := h.service.ListByUser(r.Context(), userID, status)
	if err != nil {
		log.WithError(err).Error("failed to list attempts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, attempts)
}

func (h *Handler) ListAttemptAnswers(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	attemptID, err := uuid.Parse(chi.URLParam(r, "attemptID"))
	if err != nil {
		http.Error(w, "invalid attempt id", http.StatusBadRequest)
		return
	}

	answers, err := h.service.AnswersForAttempt(r.Context(), attemptID, userID)
	if err != nil {
		if !isDomainError(err) {
			log.WithError(err).Error("failed to list answers")
		}
		http.Error(w, "failed to list answers", apperror.Status(err))
		return
	}

	config.JSON(w, http.StatusOK, answers)
}

func (h *Handler) ListQuizAttempts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	attempts, err := h.service.ListByQuiz(r.Context(), quizID)
	if err != nil {
		log.WithError(err).Error("failed to list quiz attempts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, attempts)
}

func (h *Handler) QuizLeaderboard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	attempts, err := h.service.Leaderboard(r.Context(), quizID)
	if err != nil {
		log.WithError(err).Error("failed to build leaderboard")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, attempts)
}

func (h *Handler) QuizStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	stats, err := h.service.QuizStats(r.Context(), quizID)
	if err != nil {
		log.WithError(err).Error("failed to compute quiz stats")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := h.service.UserStats(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("failed to compute user stats")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

func (h *Handler) AnswerHint(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := callerID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	answerID, err := uuid.Parse(chi.URLParam(r, "answerID"))
	if err != nil {
		http.Error(w, "invalid answer id", http.StatusBadRequest)
		return
	}

	hint, err := h.service.HintForAnswer(r.Context(), answerID, userID)
	if err != nil {
		if !isDomainError(err) {
			log.WithError(err).Error("failed to generate hint")
		}
		http.Error(w, "failed to generate hint", apperror.Status(err))
		return
	}

	config.JSON(w, http.StatusOK, HintDTO{Hint: hint})
}

func isDomainError(err error) bool {
	return errors.Is(err, apperror.ErrNotFound) ||
		errors.Is(err, apperror.ErrAccessDenied) ||
		errors.Is(err, apperror.ErrInvalidState)
}

func callerID(r *http.Request) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.UserID)
}
