package stats

import (
	"time"

	"github.com/abhisek/careerpath/internal/model"
)

const dateLayout = "2006-01-02"

// Streak returns the number of consecutive calendar days with learning
// activity, in loc, ending at the anchor day. The anchor is today if there was
// activity today, else yesterday, else the most recent activity day when it
// lies within one day of today (activity stamped tomorrow qualifies, but a
// day further ahead does not, so a skewed clock cannot anchor a streak far in
// the future). Otherwise the streak is broken and 0 is returned.
func Streak(entries []model.LearningHistory, now time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	days := activityDays(entries, loc)
	if len(days) == 0 {
		return 0
	}

	today := civilDay(now, loc)
	yesterday := today.AddDate(0, 0, -1)

	var anchor time.Time
	switch {
	case days[today.Format(dateLayout)]:
		anchor = today
	case days[yesterday.Format(dateLayout)]:
		anchor = yesterday
	default:
		recent := mostRecent(days, loc)
		if gap := daysBetween(recent, today); gap > 1 || gap < -1 {
			return 0
		}
		anchor = recent
	}

	streak := 1
	for d := anchor.AddDate(0, 0, -1); days[d.Format(dateLayout)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// activityDays collects the calendar days, in loc, on which any entry was
// started or completed.
func activityDays(entries []model.LearningHistory, loc *time.Location) map[string]bool {
	days := make(map[string]bool)
	for _, h := range entries {
		if !h.StartedAt.IsZero() {
			days[h.StartedAt.In(loc).Format(dateLayout)] = true
		}
		if h.CompletedAt != nil {
			days[h.CompletedAt.In(loc).Format(dateLayout)] = true
		}
	}
	return days
}

func mostRecent(days map[string]bool, loc *time.Location) time.Time {
	var latest string
	for d := range days {
		if d > latest {
			latest = d
		}
	}
	t, _ := time.ParseInLocation(dateLayout, latest, loc)
	return t
}

// civilDay truncates t to midnight of its calendar day in loc.
func civilDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// daysBetween counts calendar days from a to b; negative when a is later.
// Both must be midnights.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
