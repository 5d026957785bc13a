package tutor

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a friendly career coach and programming tutor for Korean learners preparing for a developer job. Answer in Korean. Be concrete and encouraging, and keep answers short enough to read in a terminal.`

func buildUserMessage(q Question) string {
	var b strings.Builder

	if m := q.Module; m != nil {
		fmt.Fprintf(&b, "Module: %s\n", m.Title)
		fmt.Fprintf(&b, "Description: %s\n", m.Description)
		fmt.Fprintf(&b, "Level: %s\n", m.Level)
		b.WriteString("Sections:\n")
		for _, s := range m.Sections {
			fmt.Fprintf(&b, "- %s\n", s.Title)
		}
		b.WriteString("\n")
	}
	if q.Context != "" {
		fmt.Fprintf(&b, "Learner context:\n%s\n\n", q.Context)
	}
	fmt.Fprintf(&b, "Question:\n%s\n", q.Text)

	b.WriteString(`
Instructions:
1. Answer the question directly, relating it to the module when one is given.
2. Suggest up to three follow-up questions.`)
	return b.String()
}
