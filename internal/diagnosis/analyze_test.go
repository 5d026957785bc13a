package diagnosis

import (
	"encoding/json"
	"slices"
	"testing"
	"time"

	"github.com/abhisek/careerpath/internal/model"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func testAnalyzer() Analyzer {
	return Analyzer{Now: func() time.Time { return fixedNow }}
}

func fullAnswers() []model.DiagnosisAnswer {
	return []model.DiagnosisAnswer{
		{QuestionID: 1, Answer: model.TextAnswer("취준생 (직무 미정)")},
		{QuestionID: 2, Answer: model.TextAnswer("주니어 (1-3년)")},
		{QuestionID: 3, Answer: model.TextAnswer("개발자 (백엔드)")},
		{QuestionID: 4, Answer: model.TextAnswer("커뮤니케이션 능력")},
		{QuestionID: 5, Answer: model.TextAnswer("5-10시간")},
	}
}

func TestAnalyze_AllAnswers(t *testing.T) {
	r := testAnalyzer().Analyze(fullAnswers())

	if r.CurrentJob != "취준생 (직무 미정)" || r.Experience != "주니어 (1-3년)" ||
		r.TargetJob != "개발자 (백엔드)" || r.LearningHours != "5-10시간" {
		t.Errorf("fields = %+v", r)
	}
	if !slices.Equal(r.WeakAreas, []string{"커뮤니케이션 능력"}) {
		t.Errorf("WeakAreas = %v, want one-element list", r.WeakAreas)
	}
	if !r.AnalyzedAt.Equal(fixedNow) {
		t.Errorf("AnalyzedAt = %v", r.AnalyzedAt)
	}
	if len(r.Answers) != 5 {
		t.Errorf("Answers = %d", len(r.Answers))
	}

	if r.Profile == nil {
		t.Fatal("profile not classified")
	}
	want := model.Profile{
		Experience:      model.ExperienceJunior,
		Track:           model.TrackBackend,
		Specializations: []model.Specialization{model.SpecBackend},
		Hours:           model.Hours5To10,
		WeakAreas:       []model.WeakArea{model.WeakCommunication},
	}
	if r.Profile.Experience != want.Experience || r.Profile.Track != want.Track ||
		r.Profile.Hours != want.Hours ||
		!slices.Equal(r.Profile.Specializations, want.Specializations) ||
		!slices.Equal(r.Profile.WeakAreas, want.WeakAreas) {
		t.Errorf("Profile = %+v, want %+v", *r.Profile, want)
	}

	wantSkills := []string{"Node.js", "Python", "Database", "API Design", "Server Architecture",
		"Communication", "Presentation", "Documentation"}
	if !slices.Equal(r.RequiredSkills, wantSkills) {
		t.Errorf("RequiredSkills = %v", r.RequiredSkills)
	}
}

func TestAnalyze_EmptyAnswers(t *testing.T) {
	r := testAnalyzer().Analyze(nil)

	if r.CurrentJob != "" || r.Experience != "" || r.TargetJob != "" || r.LearningHours != "" {
		t.Errorf("expected empty text fields, got %+v", r)
	}
	if r.WeakAreas != nil {
		t.Errorf("WeakAreas = %v, want nil", r.WeakAreas)
	}
	if len(r.RequiredSkills) != 0 {
		t.Errorf("RequiredSkills = %v", r.RequiredSkills)
	}
	if r.Profile.Experience != model.ExperienceUnknown || r.Profile.Hours != model.HoursUnknown ||
		r.Profile.Track != model.TrackOther {
		t.Errorf("Profile = %+v", *r.Profile)
	}

	// Absent fields are omitted from the stored JSON.
	b, _ := json.Marshal(r)
	var raw map[string]any
	json.Unmarshal(b, &raw)
	for _, k := range []string{"currentJob", "targetJob", "experience", "weakAreas", "learningHours"} {
		if _, ok := raw[k]; ok {
			t.Errorf("key %q present in %s", k, b)
		}
	}
}

func TestAnalyze_PartialAndListAnswers(t *testing.T) {
	r := testAnalyzer().Analyze([]model.DiagnosisAnswer{
		{QuestionID: 3, Answer: model.TextAnswer("데이터 분석가")},
		{QuestionID: 4, Answer: model.ListAnswer("기술적 역량 (프로그래밍, 도구 사용 등)", "비즈니스 이해도")},
		{QuestionID: 5, Answer: model.NumberAnswer(12)},
	})

	if r.Experience != "" {
		t.Errorf("Experience = %q, want empty", r.Experience)
	}
	if len(r.WeakAreas) != 2 {
		t.Errorf("list answer should be taken as-is, got %v", r.WeakAreas)
	}
	if r.LearningHours != "12" {
		t.Errorf("numeric answer rendered as %q", r.LearningHours)
	}
	want := []string{"Python", "Data Analysis", "SQL", "Statistics", "Data Visualization",
		"Programming Fundamentals", "Problem Solving", "Business Analysis", "Domain Knowledge"}
	if !slices.Equal(r.RequiredSkills, want) {
		t.Errorf("RequiredSkills = %v", r.RequiredSkills)
	}
}

func TestAnalyze_StoredAnswersRoundTrip(t *testing.T) {
	in := `[{"questionId":2,"answer":"미들 (3-5년)"},{"questionId":4,"answer":["리더십"]},{"questionId":5,"answer":20}]`
	var answers []model.DiagnosisAnswer
	if err := json.Unmarshal([]byte(in), &answers); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	r := testAnalyzer().Analyze(answers)
	if r.Profile.Experience != model.ExperienceMid {
		t.Errorf("Experience tier = %s", r.Profile.Experience)
	}
	if !slices.Equal(r.Profile.WeakAreas, []model.WeakArea{model.WeakOther}) {
		t.Errorf("WeakAreas = %v", r.Profile.WeakAreas)
	}

	out, _ := json.Marshal(r.Answers)
	if string(out) != in {
		t.Errorf("answers re-encoded as %s", out)
	}
}

func TestFromGoal(t *testing.T) {
	msgs := []ChatMessage{
		{Role: "assistant", Content: "어떤 목표가 있나요?"},
		{Role: "user", Content: "AI 서비스를 만들고 싶어요"},
		{Role: "user", Content: "신입이고 경력은 없어요"},
		{Role: "assistant", Content: "주당 학습 시간은요?"},
		{Role: "user", Content: "주말에만 공부해요"},
		{Role: "user", Content: "네번째 메시지"},
	}

	r, err := testAnalyzer().FromGoal("  머신러닝 엔지니어  ", msgs)
	if err != nil {
		t.Fatalf("FromGoal: %v", err)
	}
	if r.TargetJob != "머신러닝 엔지니어" {
		t.Errorf("TargetJob = %q", r.TargetJob)
	}
	if r.Experience != "신입이고 경력은 없어요" {
		t.Errorf("Experience = %q", r.Experience)
	}
	if r.LearningHours != "주당 학습 시간은요?" {
		t.Errorf("LearningHours = %q", r.LearningHours)
	}
	if len(r.WeakAreas) != 3 || r.WeakAreas[2] != "주말에만 공부해요" {
		t.Errorf("WeakAreas = %v", r.WeakAreas)
	}
	if len(r.Answers) != 0 {
		t.Errorf("Answers = %v", r.Answers)
	}
	if !r.Profile.HasSpecialization(model.SpecAIML) || r.Profile.Experience != model.ExperienceEntry {
		t.Errorf("Profile = %+v", *r.Profile)
	}
}

func TestFromGoal_EmptyTopic(t *testing.T) {
	if _, err := FromGoal("   ", nil); err != ErrEmptyTopic {
		t.Fatalf("err = %v, want ErrEmptyTopic", err)
	}
}

func TestQuestions(t *testing.T) {
	qs := Questions()
	if len(qs) != 5 {
		t.Fatalf("got %d questions", len(qs))
	}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Errorf("question %d has id %d", i, q.ID)
		}
		if len(q.Options) == 0 {
			t.Errorf("question %d has no options", q.ID)
		}
	}

	qs[0].Options[0] = "changed"
	if q, _ := QuestionByID(1); q.Options[0] == "changed" {
		t.Error("Questions returned shared option slices")
	}
	if _, ok := QuestionByID(9); ok {
		t.Error("QuestionByID(9) should not exist")
	}
}
