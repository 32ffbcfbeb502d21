package attempt

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/start/{quizID}", h.StartAttempt)
	r.Get("/", h.ListAttempts)
	r.Get("/user/stats", h.UserStats)
	r.Get("/{attemptID}", h.GetAttempt)
	r.Post("/{attemptID}/answers", h.SubmitAnswer)
	r.Get("/{attemptID}/answers", h.ListAttemptAnswers)
	r.Post("/{attemptID}/complete", h.CompleteAttempt)
	r.Post("/{attemptID}/abandon", h.AbandonAttempt)
	r.Get("/quiz/{quizID}", h.ListQuizAttempts)
	r.Get("/quiz/{quizID}/leaderboard", h.QuizLeaderboard)
	r.Get("/quiz/{quizID}/stats", h.QuizStats)
	r.Post("/answers/{answerID}/hint", h.AnswerHint)
	return r
}
