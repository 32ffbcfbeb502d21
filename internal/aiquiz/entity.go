package aiquiz

// GeneratedQuestion is a validated question extracted from raw generator
// output. It carries no persistence identity; the quiz assembly attaches it
// to a stored quiz.
type GeneratedQuestion struct {
	Content       string            `json:"content"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
	Type          QuestionType      `json:"question_type"`
	Points        int               `json:"points"`
	Options       []GeneratedOption `json:"options,omitempty"`
}

// GeneratedOption is a multiple-choice option in array order.
type GeneratedOption struct {
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct"`
	OrderIndex int    `json:"order_index"`
}

type QuestionRequest struct {
	Topic      string       `json:"topic"`
	Difficulty Difficulty   `json:"difficulty"`
	Count      int          `json:"count"`
	Type       QuestionType `json:"question_type"`
}
