package attempt

import (
	"strings"

	"github.com/aiquizzer/aiquizzer-lambda/internal/quiz"
)

// Normalize prepares an answer for comparison: surrounding whitespace is
// ignored and matching is case-insensitive. Interior whitespace is preserved.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func AnswersMatch(submitted, correct string) bool {
	return Normalize(submitted) == Normalize(correct)
}

// Grade derives correctness and points for a submission against its question.
// Questions persisted without an explicit point value are worth one point.
func Grade(answer *UserAnswer, question *quiz.Question) {
	answer.IsCorrect = AnswersMatch(answer.Text, question.CorrectAnswer)

	points := question.Points
	if points <= 0 {
		points = 1
	}
	if answer.IsCorrect {
		answer.PointsEarned = points
	} else {
		answer.PointsEarned = 0
	}
}

// PercentScore returns correct/total as a percentage, or nil when the
// attempt has no questions to score against.
func PercentScore(correct, total int) *float64 {
	if total <= 0 {
		return nil
	}
	score := float64(correct) / float64(total) * 100
	return &score
}
