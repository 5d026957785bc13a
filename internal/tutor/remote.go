package tutor

import (
	"context"

	"github.com/abhisek/careerpath/internal/llm"
	"github.com/abhisek/careerpath/internal/logger"
)

// RemoteGenerator answers through a language model. Any provider failure is
// logged and answered from templates instead of being returned.
type RemoteGenerator struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
	fallback TemplateGenerator
}

// NewRemoteGenerator creates a generator over provider. A nil log discards
// output.
func NewRemoteGenerator(provider llm.Provider, cfg Config, log *logger.Logger) *RemoteGenerator {
	if log == nil {
		log = logger.Nop()
	}
	return &RemoteGenerator{provider: provider, cfg: cfg, log: log}
}

type answerOutput struct {
	Answer      string   `json:"answer"`
	Suggestions []string `json:"suggestions"`
}

// Respond asks the model. It only returns an error when ctx is done.
func (g *RemoteGenerator) Respond(ctx context.Context, q Question) (*Answer, error) {
	a, err := g.ask(llm.WithPurpose(ctx, llm.PurposeTutor), q)
	if err == nil {
		return a, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	g.log.Warn("tutor answer fell back to template", "model", g.provider.ModelID(), "error", err)
	return g.fallback.Respond(ctx, q)
}

func (g *RemoteGenerator) ask(ctx context.Context, q Question) (*Answer, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(q)},
		},
		Schema:      AnswerSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var out answerOutput
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &Answer{Text: out.Answer, Suggestions: out.Suggestions, Source: SourceRemote}, nil
}
