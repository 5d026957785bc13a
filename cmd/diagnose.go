package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerpath/internal/diagnosis"
	"github.com/abhisek/careerpath/internal/model"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Answer the career diagnosis",
	Long: `Answer the five diagnosis questions. Answers can be given as flags;
any question without a flag is asked interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		flagFor := map[int]string{
			diagnosis.QuestionCurrentJob:    "current-job",
			diagnosis.QuestionExperience:    "experience",
			diagnosis.QuestionTargetJob:     "target-job",
			diagnosis.QuestionWeakArea:      "weak-area",
			diagnosis.QuestionLearningHours: "hours",
		}
		noInput, _ := cmd.Flags().GetBool("no-input")

		in := bufio.NewScanner(cmd.InOrStdin())
		out := cmd.OutOrStdout()
		var answers []model.DiagnosisAnswer
		for _, q := range diagnosis.Questions() {
			name := flagFor[q.ID]
			var value model.AnswerValue
			if q.ID == diagnosis.QuestionWeakArea {
				if areas, _ := cmd.Flags().GetStringSlice(name); len(areas) > 0 {
					value = model.ListAnswer(areas...)
				}
			} else if v, _ := cmd.Flags().GetString(name); v != "" {
				value = model.TextAnswer(v)
			}
			if value.IsEmpty() && !noInput {
				value = ask(in, out, q)
			}
			if !value.IsEmpty() {
				answers = append(answers, model.DiagnosisAnswer{QuestionID: q.ID, Answer: value})
			}
		}

		ctx := cmd.Context()
		result := diagnosis.Analyze(answers)
		repo := e.store.DiagnosisRepo()
		if err := repo.SaveAnswers(ctx, answers); err != nil {
			return fmt.Errorf("save answers: %w", err)
		}
		if err := repo.SaveResult(ctx, result); err != nil {
			return fmt.Errorf("save diagnosis: %w", err)
		}
		e.log.Info("diagnosis saved", "answers", len(answers), "track", result.Profile.Track)

		fmt.Fprintln(out)
		printDiagnosis(out, result)
		fmt.Fprintln(out)
		printHint(out, "다음 단계: careerpath roadmap generate")
		return nil
	},
}

// ask prompts for one question. A number picks an option; any other text is
// taken verbatim. An empty line skips the question.
func ask(in *bufio.Scanner, out io.Writer, q diagnosis.Question) model.AnswerValue {
	printTitle(out, fmt.Sprintf("Q%d. %s", q.ID, q.Text))
	for i, opt := range q.Options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
	}
	fmt.Fprint(out, "> ")
	if !in.Scan() {
		return model.AnswerValue{}
	}
	line := strings.TrimSpace(in.Text())
	if line == "" {
		return model.AnswerValue{}
	}
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(q.Options) {
		line = q.Options[n-1]
	}
	return model.TextAnswer(line)
}

var goalCmd = &cobra.Command{
	Use:   "goal <topic>",
	Short: "Describe a learning goal instead of answering the diagnosis",
	Long: `Describe what you want to learn. Follow-up replies (--reply, repeatable)
can mention your experience, weekly study hours and gaps.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		replies, _ := cmd.Flags().GetStringArray("reply")
		messages := make([]diagnosis.ChatMessage, 0, len(replies))
		for _, r := range replies {
			messages = append(messages, diagnosis.ChatMessage{Role: "user", Content: r})
		}

		result, err := diagnosis.FromGoal(strings.Join(args, " "), messages)
		if err != nil {
			return err
		}
		if err := e.store.DiagnosisRepo().SaveResult(cmd.Context(), result); err != nil {
			return fmt.Errorf("save diagnosis: %w", err)
		}
		e.log.Info("goal diagnosis saved", "topic", result.TargetJob)

		out := cmd.OutOrStdout()
		printDiagnosis(out, result)
		fmt.Fprintln(out)
		printHint(out, "다음 단계: careerpath roadmap generate")
		return nil
	},
}

func init() {
	diagnoseCmd.Flags().String("current-job", "", "Current job")
	diagnoseCmd.Flags().String("experience", "", "Career length, e.g. \"주니어 (1-3년)\"")
	diagnoseCmd.Flags().String("target-job", "", "Target job")
	diagnoseCmd.Flags().StringSlice("weak-area", nil, "Weakest areas (repeatable)")
	diagnoseCmd.Flags().String("hours", "", "Weekly learning hours, e.g. \"5-10시간\"")
	diagnoseCmd.Flags().Bool("no-input", false, "Do not prompt for unanswered questions")

	goalCmd.Flags().StringArray("reply", nil, "A follow-up reply (repeatable)")
}
