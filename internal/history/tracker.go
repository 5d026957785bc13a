// Package history records per-user, per-module learning progress. The log is
// append-only: entries are opened when a module is started, updated as
// sections complete and closed when the module completes.
//
// Every operation is a read-modify-write of the whole log with no locking.
// Concurrent updates to the same store can lose writes; the last write wins.
package history

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/careerpath/internal/logger"
	"github.com/abhisek/careerpath/internal/model"
	"github.com/abhisek/careerpath/internal/store"
)

// Tracker updates the learning log.
type Tracker struct {
	repo store.HistoryRepo
	log  *logger.Logger

	// Now and NewID default to the wall clock and random UUIDs.
	Now   func() time.Time
	NewID func() string
}

// NewTracker creates a tracker over repo. A nil log discards output.
func NewTracker(repo store.HistoryRepo, log *logger.Logger) *Tracker {
	if log == nil {
		log = logger.Nop()
	}
	return &Tracker{
		repo:  repo,
		log:   log,
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// StartModule returns the open entry for (userID, module). If none exists a
// new entry with no progress is appended and returned.
func (t *Tracker) StartModule(ctx context.Context, userID string, module model.RoadmapModule) (*model.LearningHistory, error) {
	all, err := t.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("start module %s: %w", module.ID, err)
	}
	if i := openIndex(all, userID, module.ID); i >= 0 {
		entry := all[i]
		return &entry, nil
	}

	entry := model.LearningHistory{
		ID:                t.NewID(),
		UserID:            userID,
		ModuleID:          module.ID,
		ModuleTitle:       module.Title,
		StartedAt:         t.Now(),
		Progress:          0,
		SectionsCompleted: []string{},
	}
	all = append(all, entry)
	if err := t.repo.SaveAll(ctx, all); err != nil {
		return nil, fmt.Errorf("start module %s: %w", module.ID, err)
	}
	t.log.Debug("module started", "user", userID, "module", module.ID, "entry", entry.ID)
	return &entry, nil
}

// CompleteSection records sectionID on the open entry for (userID,
// moduleID) and recomputes progress against totalSections, clamped to 100.
// It returns nil without error when the module was never started.
func (t *Tracker) CompleteSection(ctx context.Context, userID, moduleID, sectionID string, totalSections int) (*model.LearningHistory, error) {
	if totalSections <= 0 {
		return nil, fmt.Errorf("complete section %s: total sections must be > 0, got %d", sectionID, totalSections)
	}
	all, err := t.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete section %s: %w", sectionID, err)
	}
	i := openIndex(all, userID, moduleID)
	if i < 0 {
		return nil, nil
	}

	entry := &all[i]
	if !slices.Contains(entry.SectionsCompleted, sectionID) {
		entry.SectionsCompleted = append(slices.Clone(entry.SectionsCompleted), sectionID)
	}
	entry.Progress = SectionProgress(len(entry.SectionsCompleted), totalSections)

	if err := t.repo.SaveAll(ctx, all); err != nil {
		return nil, fmt.Errorf("complete section %s: %w", sectionID, err)
	}
	t.log.Debug("section completed", "user", userID, "module", moduleID, "section", sectionID, "progress", entry.Progress)
	out := *entry
	return &out, nil
}

// CompleteModule closes the open entry for (userID, moduleID) at 100%.
// It returns nil without error when the module was never started.
func (t *Tracker) CompleteModule(ctx context.Context, userID, moduleID string) (*model.LearningHistory, error) {
	all, err := t.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete module %s: %w", moduleID, err)
	}
	i := openIndex(all, userID, moduleID)
	if i < 0 {
		return nil, nil
	}

	now := t.Now()
	all[i].Progress = 100
	all[i].CompletedAt = &now
	if err := t.repo.SaveAll(ctx, all); err != nil {
		return nil, fmt.Errorf("complete module %s: %w", moduleID, err)
	}
	t.log.Debug("module completed", "user", userID, "module", moduleID)
	out := all[i]
	return &out, nil
}

// UserHistory returns every entry of userID in log order.
func (t *Tracker) UserHistory(ctx context.Context, userID string) ([]model.LearningHistory, error) {
	all, err := t.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("user history: %w", err)
	}
	return UserEntries(all, userID), nil
}

// ModuleHistory returns the open entry for (userID, moduleID), or nil.
func (t *Tracker) ModuleHistory(ctx context.Context, userID, moduleID string) (*model.LearningHistory, error) {
	all, err := t.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("module history: %w", err)
	}
	i := openIndex(all, userID, moduleID)
	if i < 0 {
		return nil, nil
	}
	entry := all[i]
	return &entry, nil
}

// UserEntries filters entries down to userID.
func UserEntries(entries []model.LearningHistory, userID string) []model.LearningHistory {
	var out []model.LearningHistory
	for _, h := range entries {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out
}

// SectionProgress returns round(100 × done / total) clamped to [0, 100].
func SectionProgress(done, total int) int {
	if total <= 0 || done <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(done) / float64(total)))
	return min(p, 100)
}

func openIndex(entries []model.LearningHistory, userID, moduleID string) int {
	for i, h := range entries {
		if h.UserID == userID && h.ModuleID == moduleID && h.IsOpen() {
			return i
		}
	}
	return -1
}
