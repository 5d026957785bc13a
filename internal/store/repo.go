package store

import (
	"context"
	"time"

	"github.com/abhisek/careerpath/internal/model"
)

// DiagnosisRepo persists the latest diagnosis.
type DiagnosisRepo interface {
	// Result returns the stored result, or nil if none exists.
	Result(ctx context.Context) (*model.DiagnosisResult, error)
	SaveResult(ctx context.Context, r *model.DiagnosisResult) error

	// Answers returns the raw answers of the last diagnosis.
	Answers(ctx context.Context) ([]model.DiagnosisAnswer, error)
	SaveAnswers(ctx context.Context, answers []model.DiagnosisAnswer) error
}

// RoadmapRepo persists the single current roadmap.
type RoadmapRepo interface {
	// Get returns the stored roadmap, or nil if none exists.
	Get(ctx context.Context) (*model.Roadmap, error)
	Save(ctx context.Context, r *model.Roadmap) error
}

// HistoryRepo persists the learning log of every user as one list.
type HistoryRepo interface {
	All(ctx context.Context) ([]model.LearningHistory, error)
	SaveAll(ctx context.Context, entries []model.LearningHistory) error
}

// PortfolioRepo persists the single current portfolio.
type PortfolioRepo interface {
	// Get returns the stored portfolio, or nil if none exists.
	Get(ctx context.Context) (*model.Portfolio, error)
	Save(ctx context.Context, p *model.Portfolio) error
}

// ProjectRepo reads company projects. Projects are written by an external
// generator; SaveProjects exists for imports and tests.
type ProjectRepo interface {
	Projects(ctx context.Context) ([]model.CompanyProject, error)
	SaveProjects(ctx context.Context, projects []model.CompanyProject) error
	Companies(ctx context.Context) ([]model.Company, error)
	SaveCompanies(ctx context.Context, companies []model.Company) error
}

// SessionRepo holds the current session identity.
type SessionRepo interface {
	// CurrentUser returns the logged in user, or nil.
	CurrentUser(ctx context.Context) (*model.User, error)
	Login(ctx context.Context, u *model.User) error
	Logout(ctx context.Context) error
}

// ProgressRepo tracks completed sections for users without a session.
type ProgressRepo interface {
	Sections(ctx context.Context, moduleID string) ([]string, error)
	SaveSections(ctx context.Context, moduleID string, sections []string) error
	Clear(ctx context.Context, moduleID string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a recorded LLM request.
type LLMRequestEvent struct {
	Sequence     int64     `json:"sequence"`
	Timestamp    time.Time `json:"timestamp"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	Purpose      string    `json:"purpose"`
	InputTokens  int       `json:"inputTokens"`
	OutputTokens int       `json:"outputTokens"`
	LatencyMs    int64     `json:"latencyMs"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
}

// EventRepo provides append access to LLM request events. The log keeps the
// most recent MaxLLMEvents entries.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMEvents returns up to limit most recent events, newest first.
	// A limit of 0 returns all.
	LLMEvents(ctx context.Context, limit int) ([]LLMRequestEvent, error)
}

// MaxLLMEvents caps the stored LLM event log.
const MaxLLMEvents = 500
