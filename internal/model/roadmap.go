package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Level is a module difficulty.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Rank orders levels from beginner (0) to advanced (2).
func (l Level) Rank() int {
	switch l {
	case LevelBeginner:
		return 0
	case LevelIntermediate:
		return 1
	case LevelAdvanced:
		return 2
	default:
		return -1
	}
}

// MaxLevel returns the harder of a and b.
func MaxLevel(a, b Level) Level {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// Label returns the Korean display label for a level.
func (l Level) Label() string {
	switch l {
	case LevelBeginner:
		return "초급"
	case LevelIntermediate:
		return "중급"
	case LevelAdvanced:
		return "고급"
	default:
		return "미정"
	}
}

// Price is a course price in KRW. Zero means free.
type Price int

const freeLabel = "무료"

func (p Price) String() string {
	if p == 0 {
		return freeLabel
	}
	return fmt.Sprintf("%d원", int(p))
}

// MarshalJSON writes a free price as "무료" and any other price as a number.
func (p Price) MarshalJSON() ([]byte, error) {
	if p == 0 {
		return json.Marshal(freeLabel)
	}
	return json.Marshal(int(p))
}

func (p *Price) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*p = 0
	case float64:
		*p = Price(v)
	case string:
		if v == freeLabel || v == "" {
			*p = 0
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSuffix(v, "원"))
		if err != nil {
			return fmt.Errorf("parse price %q: %w", v, err)
		}
		*p = Price(n)
	default:
		return fmt.Errorf("unsupported price type %T", raw)
	}
	return nil
}

// RoadmapModule is one learning unit of a roadmap.
type RoadmapModule struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	EnglishTitle  string     `json:"englishTitle,omitempty"`
	Subtitle      string     `json:"subtitle,omitempty"`
	Description   string     `json:"description"`
	Duration      string     `json:"duration"`
	Level         Level      `json:"level"`
	Order         int        `json:"order"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	Skills        []string   `json:"skills"`
	Prerequisites []string   `json:"prerequisites"`
	Provider      string     `json:"provider,omitempty"`
	Price         Price      `json:"price"`
}

// Roadmap is the ordered module sequence generated for one user.
type Roadmap struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId,omitempty"`
	TargetJob string          `json:"targetJob"`
	Modules   []RoadmapModule `json:"modules"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

// Module returns the module with the given id.
func (r *Roadmap) Module(id string) (RoadmapModule, bool) {
	if r == nil {
		return RoadmapModule{}, false
	}
	for _, m := range r.Modules {
		if m.ID == id {
			return m, true
		}
	}
	return RoadmapModule{}, false
}

// Clone returns a deep copy of r.
func (r *Roadmap) Clone() *Roadmap {
	if r == nil {
		return nil
	}
	out := *r
	if r.UpdatedAt != nil {
		t := *r.UpdatedAt
		out.UpdatedAt = &t
	}
	if r.Modules != nil {
		out.Modules = make([]RoadmapModule, len(r.Modules))
		for i, m := range r.Modules {
			out.Modules[i] = m.Clone()
		}
	}
	return &out
}

// Clone returns a deep copy of m.
func (m RoadmapModule) Clone() RoadmapModule {
	out := m
	if m.CompletedAt != nil {
		t := *m.CompletedAt
		out.CompletedAt = &t
	}
	if m.Skills != nil {
		out.Skills = append([]string{}, m.Skills...)
	}
	if m.Prerequisites != nil {
		out.Prerequisites = append([]string{}, m.Prerequisites...)
	}
	return out
}
