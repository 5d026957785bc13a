package tutor

import "github.com/abhisek/careerpath/internal/llm"

// AnswerSchema defines the JSON schema for tutor answers.
var AnswerSchema = &llm.Schema{
	Name:        "tutor-answer",
	Description: "A tutor answer to a learner's question with follow-up suggestions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The answer in Korean, formatted as Markdown",
			},
			"suggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"maxItems":    3,
				"description": "Up to three short follow-up questions the learner could ask next",
			},
		},
		"required":             []any{"answer", "suggestions"},
		"additionalProperties": false,
	},
}
