package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerpath/internal/model"
	"github.com/abhisek/careerpath/internal/roadmap"
	"github.com/abhisek/careerpath/internal/store"
)

func newTestCalculator(t *testing.T) (*Calculator, *store.Store) {
	t.Helper()
	s := store.New(store.NewMemoryBlob())
	c := NewCalculator(s.HistoryRepo(), s.ProjectRepo(), s.RoadmapRepo(), seoul)
	c.Now = func() time.Time { return now }
	return c, s
}

func TestCompletedProjects(t *testing.T) {
	ctx := context.Background()
	c, s := newTestCalculator(t)

	n, err := c.CompletedProjects(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, s.ProjectRepo().SaveProjects(ctx, []model.CompanyProject{
		{ID: "p1", Participants: []string{"u1", "u2"}, Status: model.CompanyProjectCompleted},
		{ID: "p2", Participants: []string{"u1"}, Status: model.CompanyProjectInProgress},
		{ID: "p3", Participants: []string{"u2"}, Status: model.CompanyProjectCompleted},
		{ID: "p4", Participants: []string{"u1"}, Status: model.CompanyProjectCompleted},
	}))

	n, err = c.CompletedProjects(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLearningStreak_FiltersByUser(t *testing.T) {
	ctx := context.Background()
	c, s := newTestCalculator(t)
	require.NoError(t, s.HistoryRepo().SaveAll(ctx, []model.LearningHistory{
		{UserID: "u1", StartedAt: now},
		{UserID: "u1", StartedAt: now.AddDate(0, 0, -1)},
		{UserID: "u2", StartedAt: now.AddDate(0, 0, -2)},
	}))

	got, err := c.LearningStreak(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = c.LearningStreak(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	c, s := newTestCalculator(t)

	empty, err := c.Dashboard(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, Dashboard{}, *empty)

	rm := roadmap.GenerateDefault("u1")
	rm = roadmap.MarkModuleComplete(rm, "1")
	require.NoError(t, s.RoadmapRepo().Save(ctx, rm))
	require.NoError(t, s.HistoryRepo().SaveAll(ctx, []model.LearningHistory{
		{UserID: "u1", ModuleID: "1", StartedAt: now, CompletedAt: &now, Progress: 100},
		{UserID: "u1", ModuleID: "2", StartedAt: now},
		{UserID: "u2", ModuleID: "3", StartedAt: now},
	}))
	require.NoError(t, s.ProjectRepo().SaveProjects(ctx, []model.CompanyProject{
		{ID: "p1", Participants: []string{"u1"}, Status: model.CompanyProjectCompleted},
	}))

	d, err := c.Dashboard(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, Dashboard{
		TotalModules:      4,
		CompletedModules:  1,
		InProgressModules: 1,
		SkillsAcquired:    5,
		ProjectsCompleted: 1,
		CurrentStreak:     1,
		RoadmapProgress:   25,
	}, *d)
}
