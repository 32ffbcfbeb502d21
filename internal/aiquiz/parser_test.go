package aiquiz

import "testing"

func TestParseQuestionsJSONArray(t *testing.T) {
	raw := `Here are your questions:
[
  {"question": "What is the capital of France?", "correctAnswer": "Paris", "explanation": "Paris has been the capital since 987."},
  {"question": "What is 2+2?", "correctAnswer": "4"}
]
Enjoy!`

	questions := ParseQuestions(raw, QuestionTypeShortAnswer)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	if questions[0].Content != "What is the capital of France?" {
		t.Errorf("wrong content: %q", questions[0].Content)
	}
	if questions[0].CorrectAnswer != "Paris" {
		t.Errorf("wrong correct answer: %q", questions[0].CorrectAnswer)
	}
	if questions[0].Explanation != "Paris has been the capital since 987." {
		t.Errorf("wrong explanation: %q", questions[0].Explanation)
	}
	if questions[1].Explanation != "" {
		t.Errorf("missing explanation should default to empty, got %q", questions[1].Explanation)
	}
	for i, q := range questions {
		if q.Points != 1 {
			t.Errorf("question %d: expected default 1 point, got %d", i, q.Points)
		}
		if q.Type != QuestionTypeShortAnswer {
			t.Errorf("question %d: wrong type %q", i, q.Type)
		}
	}
}

func TestParseQuestionsDropsIncompleteElements(t *testing.T) {
	raw := `[
  {"question": "Complete question?", "correctAnswer": "yes"},
  {"question": "No answer here?"},
  {"correctAnswer": "orphan"},
  {"question": "Another complete one?", "correctAnswer": "sure"}
]`

	questions := ParseQuestions(raw, QuestionTypeShortAnswer)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions after dropping incomplete elements, got %d", len(questions))
	}
	if questions[0].Content != "Complete question?" || questions[1].Content != "Another complete one?" {
		t.Errorf("wrong surviving questions: %q, %q", questions[0].Content, questions[1].Content)
	}
}

func TestParseQuestionsMultipleChoice(t *testing.T) {
	raw := `[
  {
    "question": "Which planet is known as the Red Planet?",
    "options": ["Venus", "Mars", "Jupiter", "Saturn"],
    "correctAnswer": "B",
    "explanation": "Iron oxide gives Mars its color."
  }
]`

	questions := ParseQuestions(raw, QuestionTypeMultipleChoice)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}

	q := questions[0]
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	for i, opt := range q.Options {
		wantCorrect := i == 1
		if opt.IsCorrect != wantCorrect {
			t.Errorf("option %d: IsCorrect = %v, want %v", i, opt.IsCorrect, wantCorrect)
		}
		if opt.OrderIndex != i {
			t.Errorf("option %d: OrderIndex = %d", i, opt.OrderIndex)
		}
	}
	if q.Options[1].Text != "Mars" {
		t.Errorf("wrong correct option text: %q", q.Options[1].Text)
	}
}

func TestParseQuestionsMultipleChoiceEdgeCases(t *testing.T) {
	t.Run("MoreThanFourOptionsTruncated", func(t *testing.T) {
		raw := `[{"question": "Pick one", "options": ["a", "b", "c", "d", "e", "f"], "correctAnswer": "A"}]`
		questions := ParseQuestions(raw, QuestionTypeMultipleChoice)
		if len(questions) != 1 {
			t.Fatalf("expected 1 question, got %d", len(questions))
		}
		if len(questions[0].Options) != 4 {
			t.Errorf("expected options truncated to 4, got %d", len(questions[0].Options))
		}
	})

	t.Run("LabelMatchingNoOption", func(t *testing.T) {
		raw := `[{"question": "Pick one", "options": ["a", "b"], "correctAnswer": "D"}]`
		questions := ParseQuestions(raw, QuestionTypeMultipleChoice)
		if len(questions) != 1 {
			t.Fatalf("expected 1 question, got %d", len(questions))
		}
		for i, opt := range questions[0].Options {
			if opt.IsCorrect {
				t.Errorf("option %d should not be correct", i)
			}
		}
	})

	t.Run("LabelMatchIsCaseSensitive", func(t *testing.T) {
		raw := `[{"question": "Pick one", "options": ["a", "b"], "correctAnswer": "a"}]`
		questions := ParseQuestions(raw, QuestionTypeMultipleChoice)
		for i, opt := range questions[0].Options {
			if opt.IsCorrect {
				t.Errorf("option %d should not match lowercase label", i)
			}
		}
	})

	t.Run("NonMultipleChoiceIgnoresOptions", func(t *testing.T) {
		raw := `[{"question": "Statement", "options": ["True", "False"], "correctAnswer": "True"}]`
		questions := ParseQuestions(raw, QuestionTypeTrueFalse)
		if len(questions[0].Options) != 0 {
			t.Errorf("true/false questions should carry no options, got %d", len(questions[0].Options))
		}
	})
}

func TestParseQuestionsCodeFences(t *testing.T) {
	raw := "```json\n[{\"question\": \"Fenced?\", \"correctAnswer\": \"yes\"}]\n```"
	questions := ParseQuestions(raw, QuestionTypeShortAnswer)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question from fenced response, got %d", len(questions))
	}
}

func TestParseQuestionsTextFallback(t *testing.T) {
	raw := "Q: What is 2+2?\nAnswer: 4\n\nQ: Capital of France?\nCorrect Answer: Paris"

	questions := ParseQuestions(raw, QuestionTypeShortAnswer)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions from fallback, got %d", len(questions))
	}

	if questions[0].Content != "What is 2+2?" || questions[0].CorrectAnswer != "4" {
		t.Errorf("wrong first question: %+v", questions[0])
	}
	if questions[1].Content != "Capital of France?" || questions[1].CorrectAnswer != "Paris" {
		t.Errorf("wrong second question: %+v", questions[1])
	}
	if len(questions[0].Options) != 0 || len(questions[1].Options) != 0 {
		t.Error("fallback parsing must never produce options")
	}
}

func TestParseQuestionsTextFallbackExplanation(t *testing.T) {
	raw := "Question: Who wrote Hamlet?\nAnswer: Shakespeare\nExplanation: Written around 1600."

	questions := ParseQuestions(raw, QuestionTypeShortAnswer)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].Explanation != "Written around 1600." {
		t.Errorf("wrong explanation: %q", questions[0].Explanation)
	}
}

func TestParseQuestionsUnusableInput(t *testing.T) {
	questions := ParseQuestions("The model refuses to answer.", QuestionTypeShortAnswer)
	if len(questions) != 0 {
		t.Fatalf("expected no questions from unusable input, got %d", len(questions))
	}
}
