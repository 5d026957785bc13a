package llm

// tutorAnswerSchema mirrors the schema the tutor uses for structured replies.
func tutorAnswerSchema() *Schema {
	return &Schema{
		Name:        "test-tutor-answer",
		Description: "A tutor answer with follow-up suggestions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer":      map[string]any{"type": "string", "minLength": 1},
				"suggestions": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"level":       map[string]any{"type": "string", "enum": []any{"beginner", "intermediate", "advanced"}},
			},
			"required":             []any{"answer", "suggestions"},
			"additionalProperties": false,
		},
	}
}
