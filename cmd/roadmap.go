package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerpath/internal/history"
	"github.com/abhisek/careerpath/internal/model"
	"github.com/abhisek/careerpath/internal/roadmap"
)

const anonymousUser = "anonymous"

var errNoRoadmap = errors.New("no roadmap yet: run 'careerpath roadmap generate' first")

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate and follow the learning roadmap",
}

var roadmapGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build a roadmap from the saved diagnosis",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		userID, err := e.userID(ctx)
		if err != nil {
			return err
		}
		result, err := e.store.DiagnosisRepo().Result(ctx)
		if err != nil {
			return fmt.Errorf("load diagnosis: %w", err)
		}

		repo := e.store.RoadmapRepo()
		var rm *model.Roadmap
		if result == nil {
			printHint(cmd.OutOrStdout(), "저장된 진단이 없어 기본 로드맵을 생성합니다.")
			rm = roadmap.GenerateDefault(userID)
		} else {
			prev, err := repo.Get(ctx)
			if err != nil {
				return fmt.Errorf("load roadmap: %w", err)
			}
			preserve, _ := cmd.Flags().GetBool("preserve-progress")
			rm, err = roadmap.Generator{}.Regenerate(prev, result, userID, roadmap.Options{PreserveProgress: preserve})
			if err != nil {
				return err
			}
		}

		if err := repo.Save(ctx, rm); err != nil {
			return fmt.Errorf("save roadmap: %w", err)
		}
		e.log.Info("roadmap generated", "id", rm.ID, "modules", len(rm.Modules))
		printRoadmap(cmd.OutOrStdout(), rm)
		return nil
	},
}

var roadmapDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Replace the roadmap with the generic starter roadmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		userID, err := e.userID(ctx)
		if err != nil {
			return err
		}
		rm := roadmap.GenerateDefault(userID)
		if err := e.store.RoadmapRepo().Save(ctx, rm); err != nil {
			return fmt.Errorf("save roadmap: %w", err)
		}
		printRoadmap(cmd.OutOrStdout(), rm)
		return nil
	},
}

var roadmapShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the roadmap with module states",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		rm, err := e.roadmap(cmd)
		if err != nil {
			return err
		}
		printRoadmap(cmd.OutOrStdout(), rm)
		return nil
	},
}

var roadmapCompleteCmd = &cobra.Command{
	Use:   "complete <module-id>",
	Short: "Mark a roadmap module complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		rm, err := e.roadmap(cmd)
		if err != nil {
			return err
		}
		id := args[0]
		if _, ok := rm.Module(id); !ok {
			return fmt.Errorf("roadmap %s has no module %q", rm.ID, id)
		}

		rm = roadmap.MarkModuleComplete(rm, id)
		if err := e.store.RoadmapRepo().Save(ctx, rm); err != nil {
			return fmt.Errorf("save roadmap: %w", err)
		}

		u, err := e.store.SessionRepo().CurrentUser(ctx)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if u != nil {
			if _, err := history.NewTracker(e.store.HistoryRepo(), e.log).CompleteModule(ctx, u.ID, id); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		m, _ := rm.Module(id)
		fmt.Fprintln(out, stateStyle(roadmap.StateCompleted)(fmt.Sprintf("✅ %s 완료", m.Title)))
		fmt.Fprintf(out, "로드맵 진행률 %d%%\n", roadmap.Progress(rm))
		for _, next := range roadmap.AvailableModules(rm) {
			printHint(out, "학습 가능: [%s] %s", next.ID, next.Title)
		}
		return nil
	},
}

var roadmapProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print the roadmap completion percentage",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		rm, err := e.roadmap(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", roadmap.Progress(rm))
		return nil
	},
}

func init() {
	roadmapGenerateCmd.Flags().Bool("preserve-progress", true, "Keep completed modules that exist in the new roadmap")

	roadmapCmd.AddCommand(roadmapGenerateCmd)
	roadmapCmd.AddCommand(roadmapDefaultCmd)
	roadmapCmd.AddCommand(roadmapShowCmd)
	roadmapCmd.AddCommand(roadmapCompleteCmd)
	roadmapCmd.AddCommand(roadmapProgressCmd)
}
