package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestBuildGeminiSchema(t *testing.T) {
	schema := buildGeminiSchema(tutorAnswerSchema().Definition)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["answer"].Type != genai.TypeString {
		t.Errorf("answer type = %s", schema.Properties["answer"].Type)
	}
	sugg := schema.Properties["suggestions"]
	if sugg.Type != genai.TypeArray || sugg.Items == nil || sugg.Items.Type != genai.TypeString {
		t.Errorf("suggestions = %+v", sugg)
	}
	if len(schema.Properties["level"].Enum) != 3 {
		t.Errorf("level enum = %v", schema.Properties["level"].Enum)
	}
	if len(schema.Required) != 2 {
		t.Errorf("required = %v", schema.Required)
	}
}

func TestGeminiModelMapping(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.0-flash" {
		t.Errorf("gemini-flash -> %q", got)
	}
	if got := resolveModel("gemini-2.5-pro", geminiModels); got != "gemini-2.5-pro" {
		t.Errorf("pass-through -> %q", got)
	}
}

func TestStringList(t *testing.T) {
	if got := stringList([]any{"a", 1, "b"}); len(got) != 2 || got[1] != "b" {
		t.Errorf("stringList([]any) = %v", got)
	}
	if got := stringList([]string{"x"}); len(got) != 1 {
		t.Errorf("stringList([]string) = %v", got)
	}
	if got := stringList(nil); got != nil {
		t.Errorf("stringList(nil) = %v", got)
	}
}
