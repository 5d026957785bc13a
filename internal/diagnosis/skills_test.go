package diagnosis

import (
	"slices"
	"testing"

	"github.com/abhisek/careerpath/internal/model"
)

func TestExtractRequiredSkills_Backend(t *testing.T) {
	skills := ExtractRequiredSkills(&model.DiagnosisResult{TargetJob: "백엔드 개발자"})

	for _, want := range []string{"Node.js", "Database"} {
		if !slices.Contains(skills, want) {
			t.Errorf("missing %q in %v", want, skills)
		}
	}
	for _, unwanted := range []string{"CSS", "React", "HTML"} {
		if slices.Contains(skills, unwanted) {
			t.Errorf("unexpected frontend skill %q in %v", unwanted, skills)
		}
	}
}

func TestExtractRequiredSkills_FirstTrackWins(t *testing.T) {
	// Mentions both frontend and backend; the frontend row is checked first.
	skills := ExtractRequiredSkills(&model.DiagnosisResult{TargetJob: "프론트엔드와 백엔드"})
	if !slices.Equal(skills, []string{"React", "JavaScript", "TypeScript", "CSS", "HTML"}) {
		t.Errorf("skills = %v", skills)
	}
}

func TestExtractRequiredSkills_Dedup(t *testing.T) {
	skills := ExtractRequiredSkills(&model.DiagnosisResult{
		TargetJob: "프로덕트 매니저",
		WeakAreas: []string{"커뮤니케이션 능력"},
	})
	want := []string{"Product Strategy", "User Research", "Agile", "Communication", "Analytics",
		"Presentation", "Documentation"}
	if !slices.Equal(skills, want) {
		t.Errorf("skills = %v, want %v", skills, want)
	}
}

func TestExtractRequiredSkills_UnmatchedJob(t *testing.T) {
	skills := ExtractRequiredSkills(&model.DiagnosisResult{
		TargetJob: "마케터",
		WeakAreas: []string{"비즈니스 이해도", "기술적 역량 (프로그래밍, 도구 사용 등)"},
	})
	want := []string{"Programming Fundamentals", "Problem Solving", "Business Analysis", "Domain Knowledge"}
	if !slices.Equal(skills, want) {
		t.Errorf("skills = %v, want %v", skills, want)
	}

	if got := ExtractRequiredSkills(&model.DiagnosisResult{TargetJob: "디자이너"}); len(got) != 0 {
		t.Errorf("unmatched job without weak areas = %v", got)
	}
}
