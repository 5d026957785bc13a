package portfolio

import (
	"math"
	"sort"
	"strings"

	"github.com/abhisek/careerpath/internal/model"
)

const (
	maxSkillLevel      = 100
	moduleSkillBonus   = 25
	historySkillBonus  = 30
	requiredSkillLevel = 20
)

var technicalKeywords = []string{
	"React", "JavaScript", "TypeScript", "Node.js", "Python", "Java",
	"Database", "API", "Git", "HTML", "CSS", "SQL", "Programming",
}

var softKeywords = []string{
	"Communication", "Presentation", "Documentation", "Teamwork",
	"Leadership", "Problem Solving", "Agile",
}

// skillLevels accumulates levels in first-seen order.
type skillLevels struct {
	order  []string
	levels map[string]int
}

func newSkillLevels() *skillLevels {
	return &skillLevels{levels: make(map[string]int)}
}

func (s *skillLevels) add(name string, delta int) {
	cur, ok := s.levels[name]
	if !ok {
		s.order = append(s.order, name)
	}
	s.levels[name] = max(0, min(cur+delta, maxSkillLevel))
}

func (s *skillLevels) seed(name string, level int) {
	if _, ok := s.levels[name]; ok {
		return
	}
	s.add(name, level)
}

// skills returns the categorized skills sorted by level, highest first.
// Equal levels keep first-seen order.
func (s *skillLevels) skills() []model.Skill {
	out := make([]model.Skill, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, model.Skill{Name: name, Level: s.levels[name], Category: Categorize(name)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Level > out[j].Level })
	return out
}

// buildSkills derives skill levels from the roadmap, the learner's log and
// the diagnosis. Completed roadmap modules add 25 per skill; completed log
// entries add 30 scaled by their progress to their module's skills. Both
// bonuses apply independently. Required skills not yet present start at 20.
func buildSkills(rm *model.Roadmap, entries []model.LearningHistory, required []string) []model.Skill {
	levels := newSkillLevels()
	if rm != nil {
		for _, m := range rm.Modules {
			if !m.Completed {
				continue
			}
			for _, skill := range m.Skills {
				levels.add(skill, moduleSkillBonus)
			}
		}
	}
	for _, h := range entries {
		if h.CompletedAt == nil {
			continue
		}
		m, ok := rm.Module(h.ModuleID)
		if !ok {
			continue
		}
		bonus := int(math.Round(float64(h.Progress) / 100 * historySkillBonus))
		for _, skill := range m.Skills {
			levels.add(skill, bonus)
		}
	}
	for _, skill := range required {
		levels.seed(skill, requiredSkillLevel)
	}
	return levels.skills()
}

// Categorize classifies a skill name by keyword: technical keywords are
// checked first, then soft skills; anything else is domain knowledge.
func Categorize(name string) model.SkillCategory {
	lower := strings.ToLower(name)
	if containsAny(lower, technicalKeywords) {
		return model.CategoryTechnical
	}
	if containsAny(lower, softKeywords) {
		return model.CategorySoft
	}
	return model.CategoryDomain
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
