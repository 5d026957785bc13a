package model

import "time"

// SkillCategory groups portfolio skills.
type SkillCategory string

const (
	CategoryTechnical SkillCategory = "technical"
	CategorySoft      SkillCategory = "soft"
	CategoryDomain    SkillCategory = "domain"
)

// Skill is a portfolio skill with a 0..100 level.
type Skill struct {
	Name     string        `json:"name"`
	Level    int           `json:"level"`
	Category SkillCategory `json:"category"`
}

// ProjectStatus is the state of a portfolio project.
type ProjectStatus string

const (
	ProjectCompleted  ProjectStatus = "completed"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectPlanned    ProjectStatus = "planned"
)

// Project is a portfolio project derived from completed learning.
type Project struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Technologies []string      `json:"technologies"`
	Status       ProjectStatus `json:"status"`
	CompletedAt  *time.Time    `json:"completedAt,omitempty"`
}

// Education is a completed module listed on the portfolio.
type Education struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CompletedAt time.Time `json:"completedAt"`
}

// Portfolio is a derived snapshot; it is regenerated rather than edited.
type Portfolio struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	TargetJob        string           `json:"targetJob"`
	Skills           []Skill          `json:"skills"`
	Projects         []Project        `json:"projects"`
	Education        []Education      `json:"education"`
	DiagnosisResults *DiagnosisResult `json:"diagnosisResults,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        *time.Time       `json:"updatedAt,omitempty"`
}
