// Package portfolio assembles a learner's portfolio from the roadmap, the
// learning log and the diagnosis. A portfolio is a disposable snapshot: it is
// rebuilt on demand and stored as one overwritable record.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/careerpath/internal/diagnosis"
	"github.com/abhisek/careerpath/internal/history"
	"github.com/abhisek/careerpath/internal/logger"
	"github.com/abhisek/careerpath/internal/model"
	"github.com/abhisek/careerpath/internal/store"
)

// ErrNoUser is returned by Generate when no user is logged in.
var ErrNoUser = errors.New("no current user: log in before generating a portfolio")

const (
	defaultTargetJob = "개발자"
	maxTechnologies  = 5
)

// projectMarkers flag module titles that represent project work.
var projectMarkers = []string{"프로젝트", "project"}

// Repos are the stores the assembler reads and writes.
type Repos struct {
	Diagnosis store.DiagnosisRepo
	Roadmap   store.RoadmapRepo
	History   store.HistoryRepo
	Portfolio store.PortfolioRepo
	Session   store.SessionRepo
}

// ReposFrom wires every repo from s.
func ReposFrom(s *store.Store) Repos {
	return Repos{
		Diagnosis: s.DiagnosisRepo(),
		Roadmap:   s.RoadmapRepo(),
		History:   s.HistoryRepo(),
		Portfolio: s.PortfolioRepo(),
		Session:   s.SessionRepo(),
	}
}

// Assembler builds and stores portfolios.
type Assembler struct {
	repos Repos
	log   *logger.Logger

	// Now and NewID default to the wall clock and random UUIDs.
	Now   func() time.Time
	NewID func() string
}

// NewAssembler creates an assembler. A nil log discards output.
func NewAssembler(repos Repos, log *logger.Logger) *Assembler {
	if log == nil {
		log = logger.Nop()
	}
	return &Assembler{repos: repos, log: log, Now: time.Now, NewID: uuid.NewString}
}

// Generate rebuilds the portfolio of userID and stores it. It fails with
// ErrNoUser, persisting nothing, when no session user exists.
func (a *Assembler) Generate(ctx context.Context, userID string) (*model.Portfolio, error) {
	user, err := a.repos.Session.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate portfolio: %w", err)
	}
	if user == nil {
		return nil, ErrNoUser
	}

	result, err := a.repos.Diagnosis.Result(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate portfolio: %w", err)
	}
	rm, err := a.repos.Roadmap.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate portfolio: %w", err)
	}
	all, err := a.repos.History.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate portfolio: %w", err)
	}
	entries := history.UserEntries(all, userID)

	now := a.Now()
	p := &model.Portfolio{
		ID:               a.NewID(),
		UserID:           userID,
		Name:             user.Name,
		Email:            user.Email,
		TargetJob:        defaultTargetJob,
		Skills:           buildSkills(rm, entries, requiredSkills(result)),
		Projects:         a.buildProjects(rm, entries, now),
		Education:        a.buildEducation(entries),
		DiagnosisResults: result,
		CreatedAt:        now,
		UpdatedAt:        &now,
	}
	if result != nil && result.TargetJob != "" {
		p.TargetJob = result.TargetJob
	}

	if err := a.repos.Portfolio.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save portfolio: %w", err)
	}
	a.log.Info("portfolio generated", "user", userID, "skills", len(p.Skills), "projects", len(p.Projects), "education", len(p.Education))
	return p, nil
}

// Get returns the stored portfolio if it belongs to userID, else nil.
func (a *Assembler) Get(ctx context.Context, userID string) (*model.Portfolio, error) {
	p, err := a.repos.Portfolio.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get portfolio: %w", err)
	}
	if p == nil || p.UserID != userID {
		return nil, nil
	}
	return p, nil
}

// Update stamps p as modified now and stores it.
func (a *Assembler) Update(ctx context.Context, p *model.Portfolio) (*model.Portfolio, error) {
	if p == nil {
		return nil, errors.New("update portfolio: nil portfolio")
	}
	now := a.Now()
	p.UpdatedAt = &now
	if err := a.repos.Portfolio.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("update portfolio: %w", err)
	}
	return p, nil
}

func requiredSkills(result *model.DiagnosisResult) []string {
	if result == nil {
		return nil
	}
	if len(result.RequiredSkills) > 0 {
		return result.RequiredSkills
	}
	return diagnosis.ExtractRequiredSkills(result)
}

// buildProjects turns completed project modules into portfolio projects. When
// the log yields none, each completed roadmap module becomes a study
// project instead.
func (a *Assembler) buildProjects(rm *model.Roadmap, entries []model.LearningHistory, now time.Time) []model.Project {
	projects := []model.Project{}
	for _, h := range entries {
		if h.CompletedAt == nil {
			continue
		}
		m, ok := rm.Module(h.ModuleID)
		if !ok || !isProjectModule(m.Title) {
			continue
		}
		done := *h.CompletedAt
		projects = append(projects, model.Project{
			ID:           a.NewID(),
			Title:        fmt.Sprintf("%s - %s", m.Title, h.ModuleTitle),
			Description:  fmt.Sprintf("로드맵 모듈 \"%s\"을 완료하며 학습한 내용을 바탕으로 한 프로젝트입니다.", m.Title),
			Technologies: head(m.Skills, maxTechnologies),
			Status:       model.ProjectCompleted,
			CompletedAt:  &done,
		})
	}
	if len(projects) > 0 || rm == nil {
		return projects
	}

	for _, m := range rm.Modules {
		if !m.Completed {
			continue
		}
		done := now
		if m.CompletedAt != nil {
			done = *m.CompletedAt
		}
		projects = append(projects, model.Project{
			ID:           a.NewID(),
			Title:        m.Title + " 학습 프로젝트",
			Description:  m.Description,
			Technologies: head(m.Skills, maxTechnologies),
			Status:       model.ProjectCompleted,
			CompletedAt:  &done,
		})
	}
	return projects
}

func (a *Assembler) buildEducation(entries []model.LearningHistory) []model.Education {
	education := []model.Education{}
	for _, h := range entries {
		if h.CompletedAt == nil {
			continue
		}
		education = append(education, model.Education{
			ID:          a.NewID(),
			Title:       h.ModuleTitle,
			Description: fmt.Sprintf("로드맵 모듈 \"%s\"을 완료했습니다.", h.ModuleTitle),
			CompletedAt: *h.CompletedAt,
		})
	}
	return education
}

func isProjectModule(title string) bool {
	lower := strings.ToLower(title)
	for _, marker := range projectMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func head(s []string, n int) []string {
	if len(s) < n {
		n = len(s)
	}
	return append([]string{}, s[:n]...)
}
