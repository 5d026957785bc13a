package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerpath/internal/portfolio"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Assemble and view your portfolio",
}

var portfolioGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Rebuild the portfolio from roadmap and learning history",
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
		p, err := portfolio.NewAssembler(portfolio.ReposFrom(e.store), e.log).Generate(ctx, userID)
		if err != nil {
			if errors.Is(err, portfolio.ErrNoUser) {
				return errLoginRequired
			}
			return err
		}
		printPortfolio(cmd.OutOrStdout(), p)
		return nil
	},
}

var portfolioShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored portfolio",
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
		p, err := portfolio.NewAssembler(portfolio.ReposFrom(e.store), e.log).Get(ctx, userID)
		if err != nil {
			return err
		}
		if p == nil {
			printHint(cmd.OutOrStdout(), "포트폴리오가 없습니다. careerpath portfolio generate 로 생성하세요.")
			return nil
		}
		printPortfolio(cmd.OutOrStdout(), p)
		return nil
	},
}

var portfolioEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Change the name, email or target job shown on the portfolio",
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
		a := portfolio.NewAssembler(portfolio.ReposFrom(e.store), e.log)
		p, err := a.Get(ctx, userID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("no portfolio for %s: run 'careerpath portfolio generate' first", userID)
		}

		for flag, dst := range map[string]*string{"name": &p.Name, "email": &p.Email, "target-job": &p.TargetJob} {
			if cmd.Flags().Changed(flag) {
				*dst, _ = cmd.Flags().GetString(flag)
			}
		}
		if p, err = a.Update(ctx, p); err != nil {
			return err
		}
		printPortfolio(cmd.OutOrStdout(), p)
		return nil
	},
}

func init() {
	portfolioEditCmd.Flags().String("name", "", "Display name")
	portfolioEditCmd.Flags().String("email", "", "Contact email")
	portfolioEditCmd.Flags().String("target-job", "", "Target job")

	portfolioCmd.AddCommand(portfolioGenerateCmd)
	portfolioCmd.AddCommand(portfolioShowCmd)
	portfolioCmd.AddCommand(portfolioEditCmd)
}
