package model

import "time"

// CompanyProjectStatus is the lifecycle of a company project.
type CompanyProjectStatus string

const (
	CompanyProjectOpen       CompanyProjectStatus = "open"
	CompanyProjectInProgress CompanyProjectStatus = "in-progress"
	CompanyProjectCompleted  CompanyProjectStatus = "completed"
)

// Company is a company whose stack inspires practice projects.
type Company struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Industry    string   `json:"industry"`
	TechStack   []string `json:"techStack"`
	BlogURL     string   `json:"blogUrl,omitempty"`
	Description string   `json:"description,omitempty"`
}

// CompanyProject is a practice project users can join. Projects are created
// by an external generator; this module only reads and counts them.
type CompanyProject struct {
	ID                string               `json:"id"`
	CompanyID         string               `json:"companyId"`
	CompanyName       string               `json:"companyName"`
	Title             string               `json:"title"`
	Description       string               `json:"description"`
	Objectives        []string             `json:"objectives"`
	TechStack         []string             `json:"techStack"`
	Difficulty        Level                `json:"difficulty"`
	EstimatedDuration string               `json:"estimatedDuration"`
	MentorAvailable   bool                 `json:"mentorAvailable"`
	Participants      []string             `json:"participants"`
	Status            CompanyProjectStatus `json:"status"`
	CreatedAt         time.Time            `json:"createdAt"`
}

// HasParticipant reports whether userID joined the project.
func (p CompanyProject) HasParticipant(userID string) bool {
	for _, id := range p.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

// User is the session identity owned by the auth collaborator.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
