package history

import (
	"context"
	"fmt"
	"slices"

	"github.com/abhisek/careerpath/internal/store"
)

// AnonymousProgress tracks completed sections for a learner without a
// session. State is kept per module, not per user.
type AnonymousProgress struct {
	repo store.ProgressRepo
}

// NewAnonymousProgress creates an anonymous tracker over repo.
func NewAnonymousProgress(repo store.ProgressRepo) *AnonymousProgress {
	return &AnonymousProgress{repo: repo}
}

// CompleteSection records sectionID for moduleID and returns the new
// progress against totalSections.
func (a *AnonymousProgress) CompleteSection(ctx context.Context, moduleID, sectionID string, totalSections int) (int, error) {
	if totalSections <= 0 {
		return 0, fmt.Errorf("complete section %s: total sections must be > 0, got %d", sectionID, totalSections)
	}
	done, err := a.repo.Sections(ctx, moduleID)
	if err != nil {
		return 0, fmt.Errorf("complete section %s: %w", sectionID, err)
	}
	if !slices.Contains(done, sectionID) {
		done = append(done, sectionID)
		if err := a.repo.SaveSections(ctx, moduleID, done); err != nil {
			return 0, fmt.Errorf("complete section %s: %w", sectionID, err)
		}
	}
	return SectionProgress(len(done), totalSections), nil
}

// Sections returns the completed sections of moduleID.
func (a *AnonymousProgress) Sections(ctx context.Context, moduleID string) ([]string, error) {
	return a.repo.Sections(ctx, moduleID)
}

// Progress returns the progress of moduleID against totalSections.
func (a *AnonymousProgress) Progress(ctx context.Context, moduleID string, totalSections int) (int, error) {
	done, err := a.repo.Sections(ctx, moduleID)
	if err != nil {
		return 0, err
	}
	return SectionProgress(len(done), totalSections), nil
}

// Reset forgets all completed sections of moduleID.
func (a *AnonymousProgress) Reset(ctx context.Context, moduleID string) error {
	return a.repo.Clear(ctx, moduleID)
}
