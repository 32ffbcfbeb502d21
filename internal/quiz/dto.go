package quiz

import "github.com/aiquizzer/aiquizzer-lambda/internal/aiquiz"

type CreateQuizDTO struct {
	// Title and Description are optional; when empty they are generated.
	Title             string              `json:"title"`
	Description       string              `json:"description"`
	Topic             string              `json:"topic"`
	Difficulty        aiquiz.Difficulty   `json:"difficulty"`
	NumberOfQuestions int                 `json:"number_of_questions"`
	QuestionType      aiquiz.QuestionType `json:"question_type"`
}

type UpdateQuizDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

type AddQuestionDTO struct {
	Content       string              `json:"content"`
	CorrectAnswer string              `json:"correct_answer"`
	Explanation   string              `json:"explanation"`
	QuestionType  aiquiz.QuestionType `json:"question_type"`
}

type QuizWithQuestionsDTO struct {
	Quiz      *Quiz       `json:"quiz"`
	Questions []*Question `json:"questions"`
}
