package content

import (
	"strings"
	"testing"

	"github.com/abhisek/careerpath/internal/model"
	"github.com/abhisek/careerpath/internal/roadmap"
)

func TestSections(t *testing.T) {
	tests := []struct {
		moduleID string
		want     []string
	}{
		{"1", []string{"1-1", "1-2"}},
		{"2", []string{"2-1", "2-2"}},
		{"3", []string{"3-1"}},
		{"4", []string{"4-1"}},
		{"backend-1", []string{"backend-1-1", "backend-1-2"}},
		{"unknown", []string{"1-1", "1-2"}},
	}
	for _, tt := range tests {
		got := Sections(tt.moduleID)
		if len(got) != len(tt.want) {
			t.Errorf("Sections(%q) = %d sections, want %d", tt.moduleID, len(got), len(tt.want))
			continue
		}
		for i, s := range got {
			if s.ID != tt.want[i] || s.Order != i+1 {
				t.Errorf("Sections(%q)[%d] = %s/%d", tt.moduleID, i, s.ID, s.Order)
			}
		}
		if TotalSections(tt.moduleID) != len(tt.want) {
			t.Errorf("TotalSections(%q) = %d", tt.moduleID, TotalSections(tt.moduleID))
		}
	}
}

func TestEveryRoadmapModuleHasMaterial(t *testing.T) {
	r, err := roadmap.Generate(&model.DiagnosisResult{TargetJob: "frontend backend data ai"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Modules) != 8 {
		t.Fatalf("modules = %d, want 8", len(r.Modules))
	}
	for _, m := range r.Modules {
		if !Known(m.ID) {
			t.Errorf("module %s has no material", m.ID)
		}
		if Generate(m.ID, nil).Title != m.Title {
			t.Errorf("module %s title mismatch", m.ID)
		}
	}
}

func TestGenerate_FrontendCustomization(t *testing.T) {
	c := Generate("1", &model.DiagnosisResult{TargetJob: "개발자 (프론트엔드)"})
	if !strings.Contains(c.Sections[0].Content, frontendStackCustomized) {
		t.Errorf("section not customized:\n%s", c.Sections[0].Content)
	}

	// The catalogue itself stays untouched.
	if !strings.Contains(Generate("1", nil).Sections[0].Content, frontendStack) {
		t.Error("catalogue was modified by customization")
	}

	backend := Generate("1", &model.DiagnosisResult{TargetJob: "개발자 (백엔드)"})
	if strings.Contains(backend.Sections[0].Content, frontendStackCustomized) {
		t.Error("backend learner got frontend customization")
	}
}

func TestHasSection(t *testing.T) {
	if !HasSection("2", "2-2") {
		t.Error("2-2 should belong to module 2")
	}
	if HasSection("2", "1-1") {
		t.Error("1-1 should not belong to module 2")
	}
}
