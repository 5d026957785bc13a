package portfolio

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerpath/internal/model"
	"github.com/abhisek/careerpath/internal/roadmap"
	"github.com/abhisek/careerpath/internal/store"
)

var now = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

func newTestAssembler(t *testing.T) (*Assembler, *store.Store) {
	t.Helper()
	s := store.New(store.NewMemoryBlob())
	a := NewAssembler(ReposFrom(s), nil)
	a.Now = func() time.Time { return now }
	n := 0
	a.NewID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return a, s
}

func login(t *testing.T, s *store.Store) {
	t.Helper()
	require.NoError(t, s.SessionRepo().Login(context.Background(), &model.User{ID: "u1", Name: "김하늘", Email: "sky@example.com"}))
}

func TestGenerate_NoUser(t *testing.T) {
	ctx := context.Background()
	a, s := newTestAssembler(t)

	p, err := a.Generate(ctx, "u1")
	assert.ErrorIs(t, err, ErrNoUser)
	assert.Nil(t, p)

	stored, err := s.PortfolioRepo().Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored, "nothing is persisted without a user")
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	a, s := newTestAssembler(t)
	login(t, s)

	rm := roadmap.GenerateDefault("u1")
	rm = roadmap.MarkModuleComplete(rm, "1")
	rm = roadmap.MarkModuleComplete(rm, "2")
	require.NoError(t, s.RoadmapRepo().Save(ctx, rm))

	done := now.Add(-time.Hour)
	require.NoError(t, s.HistoryRepo().SaveAll(ctx, []model.LearningHistory{
		{ID: "h1", UserID: "u1", ModuleID: "1", ModuleTitle: "기초 역량 강화", StartedAt: done, CompletedAt: &done, Progress: 50},
		{ID: "h2", UserID: "u1", ModuleID: "2", ModuleTitle: "실무 프로젝트 경험", StartedAt: done, CompletedAt: &done, Progress: 100},
		{ID: "h3", UserID: "u1", ModuleID: "3", ModuleTitle: "포트폴리오 구축", StartedAt: done},
		{ID: "h4", UserID: "u2", ModuleID: "4", ModuleTitle: "면접 준비 및 네트워킹", StartedAt: done, CompletedAt: &done, Progress: 100},
	}))
	require.NoError(t, s.DiagnosisRepo().SaveResult(ctx, &model.DiagnosisResult{
		TargetJob:      "개발자 (백엔드)",
		RequiredSkills: []string{"Communication", "배포"},
	}))

	p, err := a.Generate(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "김하늘", p.Name)
	assert.Equal(t, "sky@example.com", p.Email)
	assert.Equal(t, "개발자 (백엔드)", p.TargetJob)
	require.NotNil(t, p.DiagnosisResults)
	assert.True(t, p.CreatedAt.Equal(now))

	levels := make(map[string]int)
	for _, sk := range p.Skills {
		levels[sk.Name] = sk.Level
	}
	assert.Equal(t, 55, levels["배포"], "module bonus plus full history bonus")
	assert.Equal(t, 40, levels["알고리즘"], "module bonus plus half history bonus")
	assert.Equal(t, 20, levels["Communication"], "required skill seeded")
	assert.Len(t, p.Skills, 11)

	assert.Equal(t, "프로젝트 관리", p.Skills[0].Name, "equal levels keep first-seen order")
	assert.Equal(t, "Communication", p.Skills[len(p.Skills)-1].Name)
	assert.Equal(t, model.CategorySoft, p.Skills[len(p.Skills)-1].Category)
	for i := 1; i < len(p.Skills); i++ {
		assert.GreaterOrEqual(t, p.Skills[i-1].Level, p.Skills[i].Level)
	}

	require.Len(t, p.Projects, 1)
	assert.Equal(t, "실무 프로젝트 경험 - 실무 프로젝트 경험", p.Projects[0].Title)
	assert.Equal(t, []string{"프로젝트 관리", "협업 도구", "코드 리뷰", "테스팅", "배포"}, p.Projects[0].Technologies)
	assert.Equal(t, model.ProjectCompleted, p.Projects[0].Status)

	require.Len(t, p.Education, 2)
	assert.Equal(t, "기초 역량 강화", p.Education[0].Title)
	assert.Equal(t, `로드맵 모듈 "기초 역량 강화"을 완료했습니다.`, p.Education[0].Description)

	stored, err := a.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, p.ID, stored.ID)

	other, err := a.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Nil(t, other, "portfolio is scoped to its user")
}

func TestGenerate_FallbackProjectsFromRoadmap(t *testing.T) {
	ctx := context.Background()
	a, s := newTestAssembler(t)
	login(t, s)

	rm := roadmap.MarkModuleComplete(roadmap.GenerateDefault("u1"), "1")
	require.NoError(t, s.RoadmapRepo().Save(ctx, rm))

	p, err := a.Generate(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, p.Projects, 1)
	assert.Equal(t, "기초 역량 강화 학습 프로젝트", p.Projects[0].Title)
	assert.Empty(t, p.Education)
	assert.Equal(t, "개발자", p.TargetJob)
}

func TestGenerate_EmptyState(t *testing.T) {
	a, s := newTestAssembler(t)
	login(t, s)

	p, err := a.Generate(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, p.Skills)
	assert.NotNil(t, p.Projects)
	assert.Empty(t, p.Projects)
	assert.NotNil(t, p.Education)
}

func TestBuildSkills_ClampedAt100(t *testing.T) {
	rm := &model.Roadmap{}
	var entries []model.LearningHistory
	for i := range 5 {
		id := fmt.Sprintf("m%d", i)
		rm.Modules = append(rm.Modules, model.RoadmapModule{ID: id, Completed: true, Skills: []string{"Go"}})
		entries = append(entries, model.LearningHistory{ModuleID: id, CompletedAt: &now, Progress: 100})
	}

	skills := buildSkills(rm, entries, []string{"Go"})
	require.Len(t, skills, 1)
	assert.Equal(t, 100, skills[0].Level)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	a, s := newTestAssembler(t)

	p := &model.Portfolio{ID: "p1", UserID: "u1", Name: "old"}
	got, err := a.Update(ctx, p)
	require.NoError(t, err)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.Equal(now))

	stored, err := s.PortfolioRepo().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old", stored.Name)

	_, err = a.Update(ctx, nil)
	assert.Error(t, err)
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		skill string
		want  model.SkillCategory
	}{
		{"React", model.CategoryTechnical},
		{"Programming Fundamentals", model.CategoryTechnical},
		{"API Design", model.CategoryTechnical},
		{"node.js", model.CategoryTechnical},
		{"Problem Solving", model.CategorySoft},
		{"Presentation", model.CategorySoft},
		{"Agile", model.CategorySoft},
		{"Product Strategy", model.CategoryDomain},
		{"데이터 구조", model.CategoryDomain},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.skill), tt.skill)
	}
}

func TestIsProjectModule(t *testing.T) {
	assert.True(t, isProjectModule("실무 프로젝트 경험"))
	assert.True(t, isProjectModule("AI/ML Practical Projects"))
	assert.False(t, isProjectModule("포트폴리오 구축"))
}
