package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateQuiz)
	r.Get("/", h.ListQuizzesByUser)
	r.Get("/public", h.ListPublicQuizzes)
	r.Get("/topics", h.ListTopics)
	r.Get("/{id}", h.GetQuizWithQuestions)
	r.Patch("/{id}", h.UpdateQuiz)
	r.Delete("/{id}", h.DeleteQuiz)
	r.Post("/{id}/questions", h.AddQuestion)
	r.Delete("/questions/{questionID}", h.RemoveQuestion)
	return r
}
