package store

import (
	"context"
	"time"

	"github.com/abhisek/careerpath/internal/model"
)

type diagnosisRepo struct{ blob Blob }

func (r *diagnosisRepo) Result(ctx context.Context) (*model.DiagnosisResult, error) {
	return GetJSON[*model.DiagnosisResult](ctx, r.blob, keyDiagnosisResults, nil)
}

func (r *diagnosisRepo) SaveResult(ctx context.Context, res *model.DiagnosisResult) error {
	return SetJSON(ctx, r.blob, keyDiagnosisResults, res)
}

func (r *diagnosisRepo) Answers(ctx context.Context) ([]model.DiagnosisAnswer, error) {
	return GetJSON[[]model.DiagnosisAnswer](ctx, r.blob, keyDiagnosisAnswers, nil)
}

func (r *diagnosisRepo) SaveAnswers(ctx context.Context, answers []model.DiagnosisAnswer) error {
	return SetJSON(ctx, r.blob, keyDiagnosisAnswers, answers)
}

type roadmapRepo struct{ blob Blob }

func (r *roadmapRepo) Get(ctx context.Context) (*model.Roadmap, error) {
	return GetJSON[*model.Roadmap](ctx, r.blob, keyRoadmap, nil)
}

func (r *roadmapRepo) Save(ctx context.Context, rm *model.Roadmap) error {
	return SetJSON(ctx, r.blob, keyRoadmap, rm)
}

type historyRepo struct{ blob Blob }

func (r *historyRepo) All(ctx context.Context) ([]model.LearningHistory, error) {
	return GetJSON[[]model.LearningHistory](ctx, r.blob, keyLearningHistory, nil)
}

func (r *historyRepo) SaveAll(ctx context.Context, entries []model.LearningHistory) error {
	if entries == nil {
		entries = []model.LearningHistory{}
	}
	return SetJSON(ctx, r.blob, keyLearningHistory, entries)
}

type portfolioRepo struct{ blob Blob }

func (r *portfolioRepo) Get(ctx context.Context) (*model.Portfolio, error) {
	return GetJSON[*model.Portfolio](ctx, r.blob, keyPortfolio, nil)
}

func (r *portfolioRepo) Save(ctx context.Context, p *model.Portfolio) error {
	return SetJSON(ctx, r.blob, keyPortfolio, p)
}

type projectRepo struct{ blob Blob }

func (r *projectRepo) Projects(ctx context.Context) ([]model.CompanyProject, error) {
	return GetJSON[[]model.CompanyProject](ctx, r.blob, keyCompanyProjects, nil)
}

func (r *projectRepo) SaveProjects(ctx context.Context, projects []model.CompanyProject) error {
	return SetJSON(ctx, r.blob, keyCompanyProjects, projects)
}

func (r *projectRepo) Companies(ctx context.Context) ([]model.Company, error) {
	return GetJSON[[]model.Company](ctx, r.blob, keyCompanies, nil)
}

func (r *projectRepo) SaveCompanies(ctx context.Context, companies []model.Company) error {
	return SetJSON(ctx, r.blob, keyCompanies, companies)
}

type sessionRepo struct{ blob Blob }

func (r *sessionRepo) CurrentUser(ctx context.Context) (*model.User, error) {
	loggedIn, err := GetJSON(ctx, r.blob, keyIsLoggedIn, false)
	if err != nil {
		return nil, err
	}
	if !loggedIn {
		return nil, nil
	}
	return GetJSON[*model.User](ctx, r.blob, keyUser, nil)
}

func (r *sessionRepo) Login(ctx context.Context, u *model.User) error {
	if err := SetJSON(ctx, r.blob, keyUser, u); err != nil {
		return err
	}
	return SetJSON(ctx, r.blob, keyIsLoggedIn, true)
}

func (r *sessionRepo) Logout(ctx context.Context) error {
	if err := r.blob.Remove(ctx, keyUser); err != nil {
		return err
	}
	return SetJSON(ctx, r.blob, keyIsLoggedIn, false)
}

type progressRepo struct{ blob Blob }

func (r *progressRepo) Sections(ctx context.Context, moduleID string) ([]string, error) {
	return GetJSON[[]string](ctx, r.blob, moduleProgressKey(moduleID), nil)
}

func (r *progressRepo) SaveSections(ctx context.Context, moduleID string, sections []string) error {
	return SetJSON(ctx, r.blob, moduleProgressKey(moduleID), sections)
}

func (r *progressRepo) Clear(ctx context.Context, moduleID string) error {
	return r.blob.Remove(ctx, moduleProgressKey(moduleID))
}

// eventRepo keeps the LLM request log as one capped JSON list.
type eventRepo struct {
	blob Blob
	now  func() time.Time
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	events, err := GetJSON[[]LLMRequestEvent](ctx, r.blob, keyLLMEvents, nil)
	if err != nil {
		return err
	}

	var seq int64 = 1
	if n := len(events); n > 0 {
		seq = events[n-1].Sequence + 1
	}

	events = append(events, LLMRequestEvent{
		Sequence:     seq,
		Timestamp:    r.now(),
		Provider:     data.Provider,
		Model:        data.Model,
		Purpose:      data.Purpose,
		InputTokens:  data.InputTokens,
		OutputTokens: data.OutputTokens,
		LatencyMs:    data.LatencyMs,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
	})
	if len(events) > MaxLLMEvents {
		events = events[len(events)-MaxLLMEvents:]
	}

	return SetJSON(ctx, r.blob, keyLLMEvents, events)
}

func (r *eventRepo) LLMEvents(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	events, err := GetJSON[[]LLMRequestEvent](ctx, r.blob, keyLLMEvents, nil)
	if err != nil {
		return nil, err
	}
	out := make([]LLMRequestEvent, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		out = append(out, events[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
