package diagnosis

import "github.com/abhisek/careerpath/internal/model"

var trackSkills = map[model.TargetTrack][]string{
	model.TrackFrontend:          {"React", "JavaScript", "TypeScript", "CSS", "HTML"},
	model.TrackBackend:           {"Node.js", "Python", "Database", "API Design", "Server Architecture"},
	model.TrackFullstack:         {"React", "Node.js", "Database", "Full-stack Development", "API Integration"},
	model.TrackData:              {"Python", "Data Analysis", "SQL", "Statistics", "Data Visualization"},
	model.TrackProductManagement: {"Product Strategy", "User Research", "Agile", "Communication", "Analytics"},
}

var weakAreaSkills = map[model.WeakArea][]string{
	model.WeakTechnical:     {"Programming Fundamentals", "Problem Solving"},
	model.WeakBusiness:      {"Business Analysis", "Domain Knowledge"},
	model.WeakCommunication: {"Communication", "Presentation", "Documentation"},
}

// ExtractRequiredSkills returns the skills of the target track followed by
// the skills of every reported weak area, de-duplicated in first-seen order.
// An unmatched target job contributes nothing.
func ExtractRequiredSkills(r *model.DiagnosisResult) []string {
	p := ProfileOf(r)

	var skills []string
	seen := make(map[string]bool)
	add := func(names []string) {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				skills = append(skills, n)
			}
		}
	}

	add(trackSkills[p.Track])
	for _, w := range []model.WeakArea{model.WeakTechnical, model.WeakBusiness, model.WeakCommunication} {
		if p.HasWeakArea(w) {
			add(weakAreaSkills[w])
		}
	}
	return skills
}
