package model

import "time"

// LearningHistory is one entry of the append-only per-user learning log.
// An entry without CompletedAt is open.
type LearningHistory struct {
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	ModuleID          string     `json:"moduleId"`
	ModuleTitle       string     `json:"moduleTitle"`
	StartedAt         time.Time  `json:"startedAt"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	Progress          int        `json:"progress"`
	SectionsCompleted []string   `json:"sectionsCompleted"`
}

// IsOpen reports whether the entry has not been completed yet.
func (h LearningHistory) IsOpen() bool { return h.CompletedAt == nil }
