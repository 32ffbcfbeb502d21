package aiquiz

import (
	"encoding/json"
	"strings"
)

var optionLabels = [...]string{"A", "B", "C", "D"}

type rawQuestion struct {
	Question      *string  `json:"question"`
	CorrectAnswer *string  `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Options       []string `json:"options"`
}

// ParseQuestions turns a raw generator response into validated questions. It
// never fails: elements missing required fields are dropped, and a response
// that is not valid JSON goes through the line-oriented fallback. The caller
// must not assume the result has any particular length.
func ParseQuestions(raw string, questionType QuestionType) []GeneratedQuestion {
	candidate := extractJSONArray(stripCodeFences(raw))

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &elements); err != nil {
		return parseQuestionsFromText(raw, questionType)
	}

	questions := make([]GeneratedQuestion, 0, len(elements))
	for _, element := range elements {
		if q, ok := parseQuestionElement(element, questionType); ok {
			questions = append(questions, q)
		}
	}
	return questions
}

// extractJSONArray narrows the response to the span between the first '[' and
// the last ']'. Without such a span the whole response is the candidate.
func extractJSONArray(response string) string {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start != -1 && end > start {
		return response[start : end+1]
	}
	return response
}

func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

func parseQuestionElement(element json.RawMessage, questionType QuestionType) (GeneratedQuestion, bool) {
	var rq rawQuestion
	if err := json.Unmarshal(element, &rq); err != nil {
		return GeneratedQuestion{}, false
	}
	if rq.Question == nil || rq.CorrectAnswer == nil {
		return GeneratedQuestion{}, false
	}

	q := GeneratedQuestion{
		Content:       *rq.Question,
		CorrectAnswer: *rq.CorrectAnswer,
		Explanation:   rq.Explanation,
		Type:          questionType,
		Points:        1,
	}

	if questionType == QuestionTypeMultipleChoice && len(rq.Options) > 0 {
		// At most four options, labeled A-D in array order. A correctAnswer
		// label matching none of them is accepted as-is.
		for i, text := range rq.Options {
			if i >= len(optionLabels) {
				break
			}
			q.Options = append(q.Options, GeneratedOption{
				Text:       text,
				IsCorrect:  optionLabels[i] == *rq.CorrectAnswer,
				OrderIndex: i,
			})
		}
	}

	return q, true
}

// parseQuestionsFromText is the recovery path for generator output that is
// not valid JSON. It scans line by line for "Question:"/"Q:" boundaries and
// never yields multiple-choice options.
func parseQuestionsFromText(response string, questionType QuestionType) []GeneratedQuestion {
	var questions []GeneratedQuestion
	var current *GeneratedQuestion

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "Question:"):
			if current != nil {
				questions = append(questions, *current)
			}
			current = newTextQuestion(strings.TrimPrefix(line, "Question:"), questionType)
		case strings.HasPrefix(line, "Q:"):
			if current != nil {
				questions = append(questions, *current)
			}
			current = newTextQuestion(strings.TrimPrefix(line, "Q:"), questionType)
		case strings.HasPrefix(line, "Correct Answer:"):
			if current != nil {
				current.CorrectAnswer = strings.TrimSpace(strings.TrimPrefix(line, "Correct Answer:"))
			}
		case strings.HasPrefix(line, "Answer:"):
			if current != nil {
				current.CorrectAnswer = strings.TrimSpace(strings.TrimPrefix(line, "Answer:"))
			}
		case strings.HasPrefix(line, "Explanation:"):
			if current != nil {
				current.Explanation = strings.TrimSpace(strings.TrimPrefix(line, "Explanation:"))
			}
		}
	}

	if current != nil {
		questions = append(questions, *current)
	}
	return questions
}

func newTextQuestion(content string, questionType QuestionType) *GeneratedQuestion {
	return &GeneratedQuestion{
		Content: strings.TrimSpace(content),
		Type:    questionType,
		Points:  1,
	}
}
