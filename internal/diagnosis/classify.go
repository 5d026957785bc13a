package diagnosis

import (
	"github.com/abhisek/careerpath/internal/model"
)

// Experience rules are checked in order; the Korean option prefixes come
// first.
var experienceRules = []keywordRule[model.ExperienceTier]{
	{model.ExperienceEntry, []string{"신입", "entry", "new grad"}},
	{model.ExperienceJunior, []string{"주니어", "junior"}},
	{model.ExperienceMid, []string{"미들", "mid"}},
	{model.ExperienceSenior, []string{"시니어", "senior"}},
	{model.ExperienceLead, []string{"리드", "lead"}},
}

// Track rules share priority with the required-skill table: the first
// match wins.
var trackRules = []keywordRule[model.TargetTrack]{
	{model.TrackFrontend, []string{"프론트엔드", "frontend", "front-end"}},
	{model.TrackBackend, []string{"백엔드", "backend", "back-end"}},
	{model.TrackFullstack, []string{"풀스택", "fullstack", "full-stack"}},
	{model.TrackData, []string{"데이터 분석가", "data analyst"}},
	{model.TrackProductManagement, []string{"프로덕트 매니저", "product manager"}},
}

// Specialization rules are non-exclusive.
var specializationRules = []keywordRule[model.Specialization]{
	{model.SpecFrontend, []string{"프론트엔드", "frontend"}},
	{model.SpecBackend, []string{"백엔드", "backend"}},
	{model.SpecData, []string{"데이터", "data"}},
	{model.SpecAIML, []string{"ai", "ml", "머신러닝"}},
}

var hoursRules = []keywordRule[model.HoursBucket]{
	{model.HoursUnder5, []string{"5시간 미만", "under 5"}},
	{model.Hours5To10, []string{"5-10시간", "5-10h"}},
	{model.Hours10To20, []string{"10-20시간", "10-20h"}},
	{model.HoursOver20, []string{"20시간 이상", "20h+"}},
}

var weakAreaRules = []keywordRule[model.WeakArea]{
	{model.WeakTechnical, []string{"기술적 역량", "technical"}},
	{model.WeakBusiness, []string{"비즈니스 이해도", "business"}},
	{model.WeakCommunication, []string{"커뮤니케이션 능력", "communication"}},
}

// Classify maps the free-text fields of a result onto the closed profile
// enumerations. Absent fields classify as unknown (or other).
func Classify(r *model.DiagnosisResult) model.Profile {
	p := model.Profile{
		Experience: model.ExperienceUnknown,
		Track:      model.TrackOther,
		Hours:      model.HoursUnknown,
	}
	if r == nil {
		return p
	}

	if tier, ok := firstMatch(experienceRules, r.Experience); ok {
		p.Experience = tier
	}
	if track, ok := firstMatch(trackRules, r.TargetJob); ok {
		p.Track = track
	}
	p.Specializations = allMatches(specializationRules, r.TargetJob)
	if hours, ok := firstMatch(hoursRules, r.LearningHours); ok {
		p.Hours = hours
	}

	seen := make(map[model.WeakArea]bool)
	for _, area := range r.WeakAreas {
		matched := allMatches(weakAreaRules, area)
		if len(matched) == 0 {
			matched = []model.WeakArea{model.WeakOther}
		}
		for _, w := range matched {
			if !seen[w] {
				seen[w] = true
				p.WeakAreas = append(p.WeakAreas, w)
			}
		}
	}

	return p
}

// ProfileOf returns the stored profile of r, classifying it when absent.
func ProfileOf(r *model.DiagnosisResult) model.Profile {
	if r != nil && r.Profile != nil {
		return *r.Profile
	}
	return Classify(r)
}
