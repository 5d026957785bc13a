package diagnosis

import (
	"slices"
	"testing"

	"github.com/abhisek/careerpath/internal/model"
)

func TestClassify_Experience(t *testing.T) {
	tests := []struct {
		in   string
		want model.ExperienceTier
	}{
		{"신입 (1년 미만)", model.ExperienceEntry},
		{"주니어 (1-3년)", model.ExperienceJunior},
		{"미들 (3-5년)", model.ExperienceMid},
		{"시니어 (5-10년)", model.ExperienceSenior},
		{"리드 (10년 이상)", model.ExperienceLead},
		{"Senior engineer", model.ExperienceSenior},
		{"", model.ExperienceUnknown},
		{"몰라요", model.ExperienceUnknown},
	}
	for _, tt := range tests {
		got := Classify(&model.DiagnosisResult{Experience: tt.in}).Experience
		if got != tt.want {
			t.Errorf("Classify(experience %q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestClassify_Hours(t *testing.T) {
	tests := []struct {
		in   string
		want model.HoursBucket
	}{
		{"5시간 미만", model.HoursUnder5},
		{"5-10시간", model.Hours5To10},
		{"10-20시간", model.Hours10To20},
		{"20시간 이상", model.HoursOver20},
		{"", model.HoursUnknown},
	}
	for _, tt := range tests {
		got := Classify(&model.DiagnosisResult{LearningHours: tt.in}).Hours
		if got != tt.want {
			t.Errorf("Classify(hours %q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestClassify_TrackAndSpecializations(t *testing.T) {
	tests := []struct {
		job   string
		track model.TargetTrack
		specs []model.Specialization
	}{
		{"개발자 (프론트엔드)", model.TrackFrontend, []model.Specialization{model.SpecFrontend}},
		{"개발자 (풀스택)", model.TrackFullstack, nil},
		{"데이터 분석가", model.TrackData, []model.Specialization{model.SpecData}},
		{"프로덕트 매니저", model.TrackProductManagement, nil},
		{"Backend AI Data Engineer", model.TrackBackend,
			[]model.Specialization{model.SpecBackend, model.SpecData, model.SpecAIML}},
		{"디자이너", model.TrackOther, nil},
		{"", model.TrackOther, nil},
	}
	for _, tt := range tests {
		p := Classify(&model.DiagnosisResult{TargetJob: tt.job})
		if p.Track != tt.track {
			t.Errorf("Classify(%q).Track = %s, want %s", tt.job, p.Track, tt.track)
		}
		if !slices.Equal(p.Specializations, tt.specs) {
			t.Errorf("Classify(%q).Specializations = %v, want %v", tt.job, p.Specializations, tt.specs)
		}
	}
}

func TestClassify_WeakAreasDeduplicated(t *testing.T) {
	p := Classify(&model.DiagnosisResult{WeakAreas: []string{
		"리더십", "커뮤니케이션 능력", "전문 도메인 지식", "communication skills",
	}})
	want := []model.WeakArea{model.WeakOther, model.WeakCommunication}
	if !slices.Equal(p.WeakAreas, want) {
		t.Errorf("WeakAreas = %v, want %v", p.WeakAreas, want)
	}
}

func TestClassify_Nil(t *testing.T) {
	p := Classify(nil)
	if p.Track != model.TrackOther || p.Experience != model.ExperienceUnknown {
		t.Errorf("Classify(nil) = %+v", p)
	}
}

func TestProfileOf_UsesStoredProfile(t *testing.T) {
	stored := model.Profile{Track: model.TrackFrontend}
	r := &model.DiagnosisResult{TargetJob: "개발자 (백엔드)", Profile: &stored}
	if got := ProfileOf(r).Track; got != model.TrackFrontend {
		t.Errorf("ProfileOf ignored the stored profile: %s", got)
	}
}
