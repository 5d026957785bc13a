package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerpath/internal/content"
	"github.com/abhisek/careerpath/internal/llm"
	"github.com/abhisek/careerpath/internal/tutor"
	"github.com/abhisek/careerpath/internal/ui/theme"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Ask the learning assistant",
}

var tutorAskCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question, optionally about a module",
	Long: `Ask a question. With an LLM provider configured (llm.provider or one of
ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY, OPENROUTER_API_KEY) the
answer comes from the model; otherwise a built-in answer is used.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		var provider llm.Provider
		if cfg, ok := e.cfg.LLMProviderConfig(); ok {
			provider, err = llm.NewProvider(ctx, cfg, e.store.EventRepo(), e.log)
			if err != nil {
				return err
			}
			e.log.Debug("tutor using model", "model", provider.ModelID())
		}

		q := tutor.Question{Text: strings.Join(args, " ")}
		q.Context, _ = cmd.Flags().GetString("context")
		if id, _ := cmd.Flags().GetString("module"); id != "" {
			if !content.Known(id) {
				return fmt.Errorf("unknown module %q", id)
			}
			result, err := e.store.DiagnosisRepo().Result(ctx)
			if err != nil {
				return fmt.Errorf("load diagnosis: %w", err)
			}
			c := content.Generate(id, result)
			q.Module = &c
		}

		a, err := tutor.Select(provider, tutor.DefaultConfig(), e.log).Respond(ctx, q)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Body.Render(a.Text))
		if len(a.Suggestions) > 0 {
			fmt.Fprintln(out)
			for _, s := range a.Suggestions {
				printHint(out, "• %s", s)
			}
		}
		e.log.Debug("tutor answered", "source", a.Source)
		return nil
	},
}

func init() {
	tutorAskCmd.Flags().String("module", "", "Module id the question is about")
	tutorAskCmd.Flags().String("context", "", "Extra context such as a code snippet or error message")

	tutorCmd.AddCommand(tutorAskCmd)
}
