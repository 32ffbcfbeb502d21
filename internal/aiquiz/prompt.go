package aiquiz

import (
	"fmt"
	"strings"
)

func BuildQuestionPrompt(req QuestionRequest) string {
	count := req.Count
	if count <= 0 {
		count = 3
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d %s questions about %s at %s difficulty level.\n\n",
		count,
		strings.ToLower(req.Type.DisplayName()),
		req.Topic,
		strings.ToLower(req.Difficulty.DisplayName()),
	)

	switch req.Type {
	case QuestionTypeMultipleChoice:
		b.WriteString("For each question, provide:\n" +
			"1. The question text\n" +
			"2. Four answer options (A, B, C, D)\n" +
			"3. The correct answer (A, B, C, or D)\n" +
			"4. A brief explanation\n\n" +
			"Format each question as JSON:\n" +
			"{\n" +
			"  \"question\": \"Question text here\",\n" +
			"  \"options\": [\"Option A\", \"Option B\", \"Option C\", \"Option D\"],\n" +
			"  \"correctAnswer\": \"A\",\n" +
			"  \"explanation\": \"Explanation here\"\n" +
			"}\n\n")
	case QuestionTypeTrueFalse:
		b.WriteString("For each question, provide:\n" +
			"1. The statement\n" +
			"2. Whether it's True or False\n" +
			"3. A brief explanation\n\n" +
			"Format each question as JSON:\n" +
			"{\n" +
			"  \"question\": \"Statement here\",\n" +
			"  \"correctAnswer\": \"True\" or \"False\",\n" +
			"  \"explanation\": \"Explanation here\"\n" +
			"}\n\n")
	case QuestionTypeFillInBlank:
		b.WriteString("For each question, provide:\n" +
			"1. A sentence with a blank (use _____ for the blank)\n" +
			"2. The correct word/phrase for the blank\n" +
			"3. A brief explanation\n\n" +
			"Format each question as JSON:\n" +
			"{\n" +
			"  \"question\": \"Sentence with _____ here\",\n" +
			"  \"correctAnswer\": \"Correct word/phrase\",\n" +
			"  \"explanation\": \"Explanation here\"\n" +
			"}\n\n")
	default:
		b.WriteString("For each question, provide:\n" +
			"1. The question text\n" +
			"2. The correct answer (short phrase or word)\n" +
			"3. A brief explanation\n\n" +
			"Format each question as JSON:\n" +
			"{\n" +
			"  \"question\": \"Question text here\",\n" +
			"  \"correctAnswer\": \"Correct answer here\",\n" +
			"  \"explanation\": \"Explanation here\"\n" +
			"}\n\n")
	}

	b.WriteString("Return the questions as a JSON array. Make sure the questions are educational, accurate, and appropriate for the difficulty level.")
	return b.String()
}

func BuildTitlePrompt(topic string, difficulty Difficulty) string {
	return fmt.Sprintf(
		"Generate a creative and engaging quiz title for a %s level quiz about %s. "+
			"The title should be concise (max 50 characters) and appealing. "+
			"Return only the title, no additional text.",
		strings.ToLower(difficulty.DisplayName()),
		topic,
	)
}

func BuildDescriptionPrompt(topic string, difficulty Difficulty, count int) string {
	return fmt.Sprintf(
		"Generate a brief description (max 200 characters) for a %s level quiz about %s with %d questions. "+
			"The description should be engaging and informative. "+
			"Return only the description, no additional text.",
		strings.ToLower(difficulty.DisplayName()),
		topic,
		count,
	)
}

func BuildHintPrompt(userAnswer, correctAnswer, question string) string {
	return fmt.Sprintf(
		"Generate a hint for the question %q with answer %q, where the user gave the answer %q. "+
			"Do not reveal the answer itself. Return only the hint, no additional text.",
		question, correctAnswer, userAnswer,
	)
}
