package cmd

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerpath/internal/content"
	"github.com/abhisek/careerpath/internal/history"
	"github.com/abhisek/careerpath/internal/model"
	"github.com/abhisek/careerpath/internal/roadmap"
	"github.com/abhisek/careerpath/internal/ui/components"
	"github.com/abhisek/careerpath/internal/ui/theme"
)

var errLoginRequired = errors.New("not logged in: run 'careerpath login' first")

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Study roadmap modules section by section",
}

var learnStartCmd = &cobra.Command{
	Use:   "start <module-id>",
	Short: "Start a module and show its sections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		module, err := e.module(ctx, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		u, err := e.store.SessionRepo().CurrentUser(ctx)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if u == nil {
			fmt.Fprintln(out, theme.Warning.Render("로그인하지 않아 진행 상황은 이 기기에만 저장됩니다."))
		} else {
			entry, err := history.NewTracker(e.store.HistoryRepo(), e.log).StartModule(ctx, u.ID, module)
			if err != nil {
				return err
			}
			printHint(out, "학습 시작 %s", entry.StartedAt.In(e.loc).Format("2006-01-02 15:04"))
		}
		return showContent(cmd, e, module.ID)
	},
}

var learnShowCmd = &cobra.Command{
	Use:   "show <module-id>",
	Short: "Show a module's sections and your progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		return showContent(cmd, e, args[0])
	},
}

var learnSectionCmd = &cobra.Command{
	Use:   "section <module-id> <section-id>",
	Short: "Mark a section of a module complete",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		moduleID, sectionID := args[0], args[1]
		if !content.HasSection(moduleID, sectionID) {
			return fmt.Errorf("module %s has no section %q", moduleID, sectionID)
		}
		total := content.TotalSections(moduleID)

		u, err := e.store.SessionRepo().CurrentUser(ctx)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}

		var progress int
		if u == nil {
			progress, err = history.NewAnonymousProgress(e.store.ProgressRepo()).CompleteSection(ctx, moduleID, sectionID, total)
			if err != nil {
				return err
			}
		} else {
			entry, err := history.NewTracker(e.store.HistoryRepo(), e.log).CompleteSection(ctx, u.ID, moduleID, sectionID, total)
			if err != nil {
				return err
			}
			if entry == nil {
				return fmt.Errorf("module %s is not started: run 'careerpath learn start %s'", moduleID, moduleID)
			}
			progress = entry.Progress
		}

		fmt.Fprintln(cmd.OutOrStdout(), components.NewProgressBar(moduleID, progress, true, barWidth).View())
		return nil
	},
}

var learnCompleteCmd = &cobra.Command{
	Use:   "complete <module-id>",
	Short: "Finish a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		moduleID := args[0]
		u, err := e.store.SessionRepo().CurrentUser(ctx)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if u == nil {
			return errLoginRequired
		}

		entry, err := history.NewTracker(e.store.HistoryRepo(), e.log).CompleteModule(ctx, u.ID, moduleID)
		if err != nil {
			return err
		}
		if entry == nil {
			return fmt.Errorf("module %s is not started: run 'careerpath learn start %s'", moduleID, moduleID)
		}

		repo := e.store.RoadmapRepo()
		rm, err := repo.Get(ctx)
		if err != nil {
			return fmt.Errorf("load roadmap: %w", err)
		}
		if rm != nil {
			if _, ok := rm.Module(moduleID); ok {
				rm = roadmap.MarkModuleComplete(rm, moduleID)
				if err := repo.Save(ctx, rm); err != nil {
					return fmt.Errorf("save roadmap: %w", err)
				}
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Done.Render(fmt.Sprintf("✅ %s 완료", entry.ModuleTitle)))
		if rm != nil {
			fmt.Fprintf(out, "로드맵 진행률 %d%%\n", roadmap.Progress(rm))
		}
		return nil
	},
}

var learnHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List your learning history",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		u, err := e.store.SessionRepo().CurrentUser(ctx)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if u == nil {
			return errLoginRequired
		}
		entries, err := history.NewTracker(e.store.HistoryRepo(), e.log).UserHistory(ctx, u.ID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printTitle(out, "학습 이력")
		if len(entries) == 0 {
			printHint(out, "아직 시작한 모듈이 없습니다.")
		}
		for _, h := range entries {
			printHistory(out, h)
		}
		return nil
	},
}

// module resolves id against the stored roadmap, falling back to the
// content catalogue for users without a roadmap.
func (e *env) module(ctx context.Context, id string) (model.RoadmapModule, error) {
	rm, err := e.store.RoadmapRepo().Get(ctx)
	if err != nil {
		return model.RoadmapModule{}, fmt.Errorf("load roadmap: %w", err)
	}
	if rm != nil {
		if m, ok := rm.Module(id); ok {
			return m, nil
		}
	}
	if !content.Known(id) {
		return model.RoadmapModule{}, fmt.Errorf("unknown module %q", id)
	}
	c := content.Generate(id, nil)
	return model.RoadmapModule{ID: id, Title: c.Title, Description: c.Description, Level: c.Level}, nil
}

func showContent(cmd *cobra.Command, e *env, moduleID string) error {
	ctx := cmd.Context()
	if !content.Known(moduleID) {
		return fmt.Errorf("unknown module %q", moduleID)
	}
	result, err := e.store.DiagnosisRepo().Result(ctx)
	if err != nil {
		return fmt.Errorf("load diagnosis: %w", err)
	}
	c := content.Generate(moduleID, result)

	var done []string
	u, err := e.store.SessionRepo().CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if u == nil {
		done, err = history.NewAnonymousProgress(e.store.ProgressRepo()).Sections(ctx, moduleID)
		if err != nil {
			return err
		}
	} else {
		entry, err := history.NewTracker(e.store.HistoryRepo(), e.log).ModuleHistory(ctx, u.ID, moduleID)
		if err != nil {
			return err
		}
		if entry != nil {
			done = entry.SectionsCompleted
		}
	}

	out := cmd.OutOrStdout()
	printTitle(out, c.Title)
	fmt.Fprintln(out, theme.Subtitle.Render(c.Description))
	printHint(out, "%s · %s", c.Level.Label(), c.EstimatedTime)
	fmt.Fprintln(out)
	for _, s := range c.Sections {
		mark := theme.Locked.Render("○")
		if slices.Contains(done, s.ID) {
			mark = theme.Done.Render("●")
		}
		fmt.Fprintf(out, "%s %s %s\n", mark, theme.Body.Render(s.Title), theme.Hint.Render("["+s.ID+"]"))
		fmt.Fprintln(out, theme.Subtitle.Render(s.Content))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, components.NewProgressBar("진행률", history.SectionProgress(len(done), len(c.Sections)), true, barWidth).View())
	return nil
}

func init() {
	learnCmd.AddCommand(learnStartCmd)
	learnCmd.AddCommand(learnShowCmd)
	learnCmd.AddCommand(learnSectionCmd)
	learnCmd.AddCommand(learnCompleteCmd)
	learnCmd.AddCommand(learnHistoryCmd)
}
