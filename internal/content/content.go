package content

import (
	"slices"
	"strings"

	"github.com/abhisek/careerpath/internal/diagnosis"
	"github.com/abhisek/careerpath/internal/model"
)

const (
	frontendStack           = "프론트엔드: React, Vue, 또는 Angular"
	frontendStackCustomized = "프론트엔드: React, Vue, Angular (프론트엔드 개발에 집중)"
)

// Generate returns the material for moduleID, customized for the learner's
// target track when result is non-nil. Unknown modules get the foundation
// module's material.
func Generate(moduleID string, result *model.DiagnosisResult) ModuleContent {
	c := lookup(moduleID)
	if result == nil {
		return c
	}
	if diagnosis.ProfileOf(result).Track == model.TrackFrontend {
		for i := range c.Sections {
			c.Sections[i].Content = strings.ReplaceAll(c.Sections[i].Content, frontendStack, frontendStackCustomized)
		}
	}
	return c
}

// Sections returns the sections of moduleID in study order.
func Sections(moduleID string) []Section {
	return lookup(moduleID).Sections
}

// TotalSections returns the number of sections a learner completes for
// moduleID.
func TotalSections(moduleID string) int {
	return len(lookup(moduleID).Sections)
}

// HasSection reports whether sectionID belongs to moduleID.
func HasSection(moduleID, sectionID string) bool {
	return slices.ContainsFunc(Sections(moduleID), func(s Section) bool { return s.ID == sectionID })
}

// Known reports whether moduleID has its own material.
func Known(moduleID string) bool {
	_, ok := catalog[moduleID]
	return ok
}

func lookup(moduleID string) ModuleContent {
	c, ok := catalog[moduleID]
	if !ok {
		c = catalog[fallbackModuleID]
	}
	c = c.clone()
	slices.SortFunc(c.Sections, func(a, b Section) int { return a.Order - b.Order })
	return c
}
