package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/abhisek/careerpath/internal/portfolio"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Refresh the portfolio on a schedule",
	Long: `Regenerate the current user's portfolio on the cron schedule from
watch.schedule (default every hour) until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		spec, _ := cmd.Flags().GetString("schedule")
		if spec == "" {
			spec = e.cfg.Watch.Schedule
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		assembler := portfolio.NewAssembler(portfolio.ReposFrom(e.store), e.log)
		refresh := func() {
			userID, err := e.userID(ctx)
			if err != nil {
				e.log.Error("portfolio refresh", "error", err)
				return
			}
			if _, err := assembler.Generate(ctx, userID); err != nil {
				e.log.Warn("portfolio refresh skipped", "error", err)
			}
		}

		c := cron.New(cron.WithLocation(e.loc))
		if _, err := c.AddFunc(spec, refresh); err != nil {
			return fmt.Errorf("invalid schedule %q: %w", spec, err)
		}
		refresh()
		c.Start()
		fmt.Fprintf(cmd.OutOrStdout(), "포트폴리오 자동 갱신 중 (%s). Ctrl+C 로 종료합니다.\n", spec)

		<-ctx.Done()
		<-c.Stop().Done()
		e.log.Info("watch stopped")
		return nil
	},
}

func init() {
	watchCmd.Flags().String("schedule", "", "Cron spec overriding watch.schedule")
}
