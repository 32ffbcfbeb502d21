package aiquiz

import (
	"encoding/json"
	"net/http"

	"github.com/aiquizzer/aiquizzer-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuestions previews generated questions without persisting anything.
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Topic == "" {
		http.Error(w, "topic required", http.StatusBadRequest)
		return
	}
	if !req.Difficulty.IsValid() {
		http.Error(w, "invalid difficulty", http.StatusBadRequest)
		return
	}
	if !req.Type.IsValid() {
		http.Error(w, "invalid question type", http.StatusBadRequest)
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("failed to generate questions")
		http.Error(w, "failed to generate questions", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, questions)
}
