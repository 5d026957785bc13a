// Package roadmap turns a diagnosis into an ordered sequence of learning
// modules and tracks module completion on it.
package roadmap

import (
	"fmt"
	"time"

	"github.com/abhisek/careerpath/internal/diagnosis"
	"github.com/abhisek/careerpath/internal/model"
)

const defaultTargetJob = "개발자"

// Generator builds roadmaps. The zero value uses the wall clock.
type Generator struct {
	Now func() time.Time
}

func (g Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// Options controls Regenerate.
type Options struct {
	// PreserveProgress carries Completed and CompletedAt over from the
	// previous roadmap for modules whose id survives regeneration.
	PreserveProgress bool
}

// Generate builds a roadmap for the given diagnosis. A nil result is treated
// as an empty diagnosis. The module graph is validated before returning.
func (g Generator) Generate(result *model.DiagnosisResult, userID string) (*model.Roadmap, error) {
	if result == nil {
		result = &model.DiagnosisResult{}
	}
	profile := diagnosis.ProfileOf(result)
	skills := diagnosis.ExtractRequiredSkills(result)
	base := baseLevel(profile.Experience)

	modules := []model.RoadmapModule{
		foundationModule(base, foundationDuration(profile.Hours), head(skills, 5)),
		projectModule(model.MaxLevel(base, model.LevelIntermediate), head(skills, 8)),
		portfolioModule(),
		interviewModule(),
	}
	for _, sm := range specializedModules {
		if !profile.HasSpecialization(sm.spec) {
			continue
		}
		m := sm.module.Clone()
		m.Level = sm.fixed
		if m.Level == "" {
			m.Level = specializedLevel(base)
		}
		m.Prerequisites = []string{}
		m.Provider = defaultProvider
		modules = append(modules, m)
	}
	renumber(modules)

	if err := Validate(modules); err != nil {
		return nil, fmt.Errorf("generate roadmap: %w", err)
	}

	now := g.now()
	targetJob := result.TargetJob
	if targetJob == "" {
		targetJob = defaultTargetJob
	}
	return &model.Roadmap{
		ID:        fmt.Sprintf("roadmap-%d", now.UnixMilli()),
		UserID:    userID,
		TargetJob: targetJob,
		Modules:   modules,
		CreatedAt: now,
	}, nil
}

// GenerateDefault builds the cold-start roadmap used before any diagnosis
// exists: the four generic modules with generic skill lists.
func (g Generator) GenerateDefault(userID string) *model.Roadmap {
	foundation := foundationModule(model.LevelBeginner, "4주", append([]string{}, defaultFoundationSkills...))
	project := projectModule(model.LevelIntermediate, append([]string{}, defaultProjectSkills...))
	modules := []model.RoadmapModule{foundation, project, portfolioModule(), interviewModule()}
	renumber(modules)

	now := g.now()
	return &model.Roadmap{
		ID:        fmt.Sprintf("roadmap-default-%d", now.UnixMilli()),
		UserID:    userID,
		TargetJob: defaultTargetJob,
		Modules:   modules,
		CreatedAt: now,
	}
}

// Regenerate builds a fresh roadmap for result. With PreserveProgress set,
// completion state of modules sharing an id with prev is carried over;
// otherwise prev is ignored.
func (g Generator) Regenerate(prev *model.Roadmap, result *model.DiagnosisResult, userID string, opts Options) (*model.Roadmap, error) {
	next, err := g.Generate(result, userID)
	if err != nil {
		return nil, err
	}
	if !opts.PreserveProgress || prev == nil {
		return next, nil
	}
	for i := range next.Modules {
		old, ok := prev.Module(next.Modules[i].ID)
		if !ok || !old.Completed {
			continue
		}
		next.Modules[i].Completed = true
		if old.CompletedAt != nil {
			t := *old.CompletedAt
			next.Modules[i].CompletedAt = &t
		}
	}
	return next, nil
}

// MarkModuleComplete returns a copy of r with module id completed and
// stamped. An unknown id returns r unchanged.
func (g Generator) MarkModuleComplete(r *model.Roadmap, id string) *model.Roadmap {
	if _, ok := r.Module(id); !ok {
		return r
	}
	now := g.now()
	out := r.Clone()
	for i := range out.Modules {
		if out.Modules[i].ID != id {
			continue
		}
		out.Modules[i].Completed = true
		stamp := now
		out.Modules[i].CompletedAt = &stamp
	}
	out.UpdatedAt = &now
	return out
}

// Generate uses the wall clock. See Generator.Generate.
func Generate(result *model.DiagnosisResult, userID string) (*model.Roadmap, error) {
	return Generator{}.Generate(result, userID)
}

// GenerateDefault uses the wall clock. See Generator.GenerateDefault.
func GenerateDefault(userID string) *model.Roadmap {
	return Generator{}.GenerateDefault(userID)
}

// MarkModuleComplete uses the wall clock. See Generator.MarkModuleComplete.
func MarkModuleComplete(r *model.Roadmap, id string) *model.Roadmap {
	return Generator{}.MarkModuleComplete(r, id)
}

// baseLevel maps experience to the foundation level. Missing experience is
// treated as senior.
func baseLevel(tier model.ExperienceTier) model.Level {
	switch tier {
	case model.ExperienceEntry, model.ExperienceJunior:
		return model.LevelBeginner
	case model.ExperienceMid:
		return model.LevelIntermediate
	default:
		return model.LevelAdvanced
	}
}

func foundationDuration(hours model.HoursBucket) string {
	switch hours {
	case model.HoursUnder5:
		return "2주"
	case model.Hours5To10:
		return "4주"
	case model.Hours10To20:
		return "6주"
	default:
		return "8주"
	}
}

func specializedLevel(base model.Level) model.Level {
	if base == model.LevelBeginner {
		return model.LevelIntermediate
	}
	return model.LevelAdvanced
}

func head(skills []string, n int) []string {
	if len(skills) < n {
		n = len(skills)
	}
	return append([]string{}, skills[:n]...)
}

func renumber(modules []model.RoadmapModule) {
	for i := range modules {
		modules[i].Order = i + 1
	}
}
