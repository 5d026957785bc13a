package model

// ExperienceTier is the classified career stage of a learner.
type ExperienceTier string

const (
	ExperienceUnknown ExperienceTier = "unknown"
	ExperienceEntry   ExperienceTier = "entry"
	ExperienceJunior  ExperienceTier = "junior"
	ExperienceMid     ExperienceTier = "mid"
	ExperienceSenior  ExperienceTier = "senior"
	ExperienceLead    ExperienceTier = "lead"
)

// TargetTrack is the job family a learner is aiming for.
type TargetTrack string

const (
	TrackOther             TargetTrack = "other"
	TrackFrontend          TargetTrack = "frontend"
	TrackBackend           TargetTrack = "backend"
	TrackFullstack         TargetTrack = "fullstack"
	TrackData              TargetTrack = "data"
	TrackProductManagement TargetTrack = "product-management"
)

// Specialization selects a job-specific roadmap module. A target job can
// carry several.
type Specialization string

const (
	SpecFrontend Specialization = "frontend"
	SpecBackend  Specialization = "backend"
	SpecData     Specialization = "data"
	SpecAIML     Specialization = "ai-ml"
)

// AllSpecializations returns the specializations in roadmap order.
func AllSpecializations() []Specialization {
	return []Specialization{SpecFrontend, SpecBackend, SpecData, SpecAIML}
}

// HoursBucket is the weekly learning time a learner can commit.
type HoursBucket string

const (
	HoursUnknown HoursBucket = "unknown"
	HoursUnder5  HoursBucket = "under-5"
	Hours5To10   HoursBucket = "5-10"
	Hours10To20  HoursBucket = "10-20"
	HoursOver20  HoursBucket = "over-20"
)

// WeakArea is a self-reported gap.
type WeakArea string

const (
	WeakTechnical     WeakArea = "technical"
	WeakBusiness      WeakArea = "business"
	WeakCommunication WeakArea = "communication"
	WeakOther         WeakArea = "other"
)

// Profile is the closed classification of a diagnosis, computed once when
// the answers are analyzed.
type Profile struct {
	Experience      ExperienceTier   `json:"experience"`
	Track           TargetTrack      `json:"track"`
	Specializations []Specialization `json:"specializations,omitempty"`
	Hours           HoursBucket      `json:"hours"`
	WeakAreas       []WeakArea       `json:"weakAreas,omitempty"`
}

// HasSpecialization reports whether s is among the profile's specializations.
func (p Profile) HasSpecialization(s Specialization) bool {
	for _, have := range p.Specializations {
		if have == s {
			return true
		}
	}
	return false
}

// HasWeakArea reports whether w was reported.
func (p Profile) HasWeakArea(w WeakArea) bool {
	for _, have := range p.WeakAreas {
		if have == w {
			return true
		}
	}
	return false
}
