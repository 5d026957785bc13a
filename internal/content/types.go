// Package content holds the study material for roadmap modules, split into
// sections the learner completes one at a time.
package content

import "github.com/abhisek/careerpath/internal/model"

// Section is one unit of study within a module.
type Section struct {
	ID      string
	Title   string
	Content string
	Order   int
}

// ModuleContent is the study material of a roadmap module.
type ModuleContent struct {
	ModuleID      string
	Title         string
	Description   string
	EstimatedTime string
	Level         model.Level
	Sections      []Section
}

func (c ModuleContent) clone() ModuleContent {
	out := c
	out.Sections = append([]Section{}, c.Sections...)
	return out
}
