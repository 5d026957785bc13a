package roadmap

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/abhisek/careerpath/internal/model"
)

// Validate checks the prerequisite graph of modules: ids are unique and
// non-empty, every prerequisite names a module in the set and the graph is
// acyclic. All problems found are reported in one error.
func Validate(modules []model.RoadmapModule) error {
	var errs []string

	ids := make(map[string]bool, len(modules))
	for _, m := range modules {
		if m.ID == "" {
			errs = append(errs, fmt.Sprintf("module %q has an empty id", m.Title))
			continue
		}
		if ids[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		ids[m.ID] = true
	}

	for _, m := range modules {
		for _, prereq := range m.Prerequisites {
			if !ids[prereq] {
				errs = append(errs, fmt.Sprintf("module %q references nonexistent prerequisite %q", m.ID, prereq))
			}
		}
	}

	if len(errs) == 0 {
		if _, remaining := kahn(modules); len(remaining) > 0 {
			errs = append(errs, fmt.Sprintf("cycle detected involving modules: %s", strings.Join(remaining, ", ")))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("roadmap validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// TopologicalOrder returns modules ordered so every module follows its
// prerequisites. Ties are broken by Order, then id.
func TopologicalOrder(modules []model.RoadmapModule) ([]model.RoadmapModule, error) {
	if err := Validate(modules); err != nil {
		return nil, err
	}
	order, _ := kahn(modules)
	return order, nil
}

// kahn runs Kahn's algorithm over modules. It returns the sorted modules and
// the ids left unvisited, which are non-empty only when a cycle exists.
// Prerequisites naming unknown modules are ignored.
func kahn(modules []model.RoadmapModule) ([]model.RoadmapModule, []string) {
	byID := make(map[string]model.RoadmapModule, len(modules))
	for _, m := range modules {
		byID[m.ID] = m
	}

	inDegree := make(map[string]int, len(modules))
	dependents := make(map[string][]string)
	for _, m := range modules {
		inDegree[m.ID] = 0
	}
	for _, m := range modules {
		for _, prereq := range m.Prerequisites {
			if _, ok := byID[prereq]; !ok {
				continue
			}
			inDegree[m.ID]++
			dependents[prereq] = append(dependents[prereq], m.ID)
		}
	}

	less := func(a, b string) bool {
		ma, mb := byID[a], byID[b]
		if ma.Order != mb.Order {
			return ma.Order < mb.Order
		}
		return a < b
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Slice(queue, func(i, j int) bool { return less(queue[i], queue[j]) })

	result := make([]model.RoadmapModule, 0, len(modules))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		result = append(result, byID[id])

		deps := dependents[id]
		sort.Slice(deps, func(i, j int) bool { return less(deps[i], deps[j]) })
		for _, dep := range deps {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	var remaining []string
	for id, deg := range inDegree {
		if deg > 0 {
			remaining = append(remaining, id)
		}
	}
	sort.Strings(remaining)
	return result, remaining
}

// Progress returns the percentage of completed modules, rounded. A roadmap
// without modules is at 0.
func Progress(r *model.Roadmap) int {
	if r == nil || len(r.Modules) == 0 {
		return 0
	}
	done := 0
	for _, m := range r.Modules {
		if m.Completed {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(r.Modules))))
}

// ModuleState is a module's state relative to the learner.
type ModuleState int

const (
	StateLocked    ModuleState = iota // A prerequisite is not complete
	StateAvailable                    // All prerequisites complete; module not complete
	StateCompleted
)

// Icon returns the display icon for a module state.
func (s ModuleState) Icon() string {
	switch s {
	case StateLocked:
		return "🔒"
	case StateAvailable:
		return "🔓"
	case StateCompleted:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a module state.
func (s ModuleState) Label() string {
	switch s {
	case StateLocked:
		return "잠김"
	case StateAvailable:
		return "학습 가능"
	case StateCompleted:
		return "완료"
	default:
		return "알 수 없음"
	}
}

// ModuleStatus pairs a module with its state.
type ModuleStatus struct {
	Module model.RoadmapModule
	State  ModuleState
}

// ModuleStates returns every module of r with its state, in roadmap order.
func ModuleStates(r *model.Roadmap) []ModuleStatus {
	if r == nil {
		return nil
	}
	completed := completedSet(r)
	out := make([]ModuleStatus, 0, len(r.Modules))
	for _, m := range r.Modules {
		state := StateLocked
		switch {
		case m.Completed:
			state = StateCompleted
		case isUnlocked(m, completed):
			state = StateAvailable
		}
		out = append(out, ModuleStatus{Module: m, State: state})
	}
	return out
}

// AvailableModules returns the modules whose prerequisites are complete and
// which are not complete themselves, in roadmap order.
func AvailableModules(r *model.Roadmap) []model.RoadmapModule {
	var out []model.RoadmapModule
	for _, st := range ModuleStates(r) {
		if st.State == StateAvailable {
			out = append(out, st.Module)
		}
	}
	return out
}

func completedSet(r *model.Roadmap) map[string]bool {
	done := make(map[string]bool, len(r.Modules))
	for _, m := range r.Modules {
		if m.Completed {
			done[m.ID] = true
		}
	}
	return done
}

func isUnlocked(m model.RoadmapModule, completed map[string]bool) bool {
	for _, prereq := range m.Prerequisites {
		if !completed[prereq] {
			return false
		}
	}
	return true
}
