package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerpath/internal/stats"
	"github.com/abhisek/careerpath/internal/ui/components"
	"github.com/abhisek/careerpath/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your learning dashboard",
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

		calc := stats.NewCalculator(e.store.HistoryRepo(), e.store.ProjectRepo(), e.store.RoadmapRepo(), e.loc)
		d, err := calc.Dashboard(ctx, u.ID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printTitle(out, fmt.Sprintf("%s 님의 학습 현황", u.Name))

		var card strings.Builder
		printField(&card, "전체 모듈", fmt.Sprint(d.TotalModules))
		printField(&card, "완료한 모듈", fmt.Sprint(d.CompletedModules))
		printField(&card, "진행 중인 모듈", fmt.Sprint(d.InProgressModules))
		printField(&card, "습득한 역량", fmt.Sprint(d.SkillsAcquired))
		printField(&card, "완료한 프로젝트", fmt.Sprint(d.ProjectsCompleted))
		printField(&card, "연속 학습", fmt.Sprintf("%d일", d.CurrentStreak))
		fmt.Fprintln(out, theme.Card.Render(strings.TrimSuffix(card.String(), "\n")))
		fmt.Fprintln(out)
		fmt.Fprintln(out, components.NewProgressBar("로드맵", d.RoadmapProgress, true, barWidth).View())
		return nil
	},
}
