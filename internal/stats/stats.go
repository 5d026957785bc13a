// Package stats derives progress views from the learning log, the roadmap
// and company projects. Nothing here writes to the store.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/careerpath/internal/history"
	"github.com/abhisek/careerpath/internal/model"
	"github.com/abhisek/careerpath/internal/roadmap"
	"github.com/abhisek/careerpath/internal/store"
)

// Dashboard is the aggregate progress view of one learner.
type Dashboard struct {
	TotalModules      int `json:"totalModules"`
	CompletedModules  int `json:"completedModules"`
	InProgressModules int `json:"inProgressModules"`
	SkillsAcquired    int `json:"skillsAcquired"`
	ProjectsCompleted int `json:"projectsCompleted"`
	CurrentStreak     int `json:"currentStreak"`
	RoadmapProgress   int `json:"roadmapProgress"`
}

// Calculator computes statistics from stored state.
type Calculator struct {
	history  store.HistoryRepo
	projects store.ProjectRepo
	roadmaps store.RoadmapRepo
	loc      *time.Location

	// Now defaults to the wall clock.
	Now func() time.Time
}

// NewCalculator creates a calculator. Calendar days are taken in loc; nil
// means the local zone.
func NewCalculator(h store.HistoryRepo, p store.ProjectRepo, r store.RoadmapRepo, loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.Local
	}
	return &Calculator{history: h, projects: p, roadmaps: r, loc: loc, Now: time.Now}
}

// CompletedProjects counts completed company projects userID takes part in.
func (c *Calculator) CompletedProjects(ctx context.Context, userID string) (int, error) {
	projects, err := c.projects.Projects(ctx)
	if err != nil {
		return 0, fmt.Errorf("completed projects: %w", err)
	}
	n := 0
	for _, p := range projects {
		if p.HasParticipant(userID) && p.Status == model.CompanyProjectCompleted {
			n++
		}
	}
	return n, nil
}

// LearningStreak returns the current learning streak of userID in days.
func (c *Calculator) LearningStreak(ctx context.Context, userID string) (int, error) {
	all, err := c.history.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("learning streak: %w", err)
	}
	return Streak(history.UserEntries(all, userID), c.Now(), c.loc), nil
}

// Dashboard gathers every statistic of userID.
func (c *Calculator) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	rm, err := c.roadmaps.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	all, err := c.history.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	entries := history.UserEntries(all, userID)

	d := &Dashboard{CurrentStreak: Streak(entries, c.Now(), c.loc)}
	if d.ProjectsCompleted, err = c.CompletedProjects(ctx, userID); err != nil {
		return nil, err
	}

	completed := make(map[string]bool)
	skills := make(map[string]bool)
	if rm != nil {
		d.TotalModules = len(rm.Modules)
		d.RoadmapProgress = roadmap.Progress(rm)
		for _, m := range rm.Modules {
			if !m.Completed {
				continue
			}
			completed[m.ID] = true
			for _, s := range m.Skills {
				skills[s] = true
			}
		}
	}
	d.CompletedModules = len(completed)
	d.SkillsAcquired = len(skills)

	inProgress := make(map[string]bool)
	for _, h := range entries {
		if h.IsOpen() && !completed[h.ModuleID] {
			inProgress[h.ModuleID] = true
		}
	}
	d.InProgressModules = len(inProgress)
	return d, nil
}
