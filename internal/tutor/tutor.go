// Package tutor answers learner questions about the module being studied.
// Answers come either from keyword-selected templates or from a language
// model; the generator is chosen once at start-up.
package tutor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/careerpath/internal/content"
	"github.com/abhisek/careerpath/internal/llm"
	"github.com/abhisek/careerpath/internal/logger"
)

// Answer sources.
const (
	SourceTemplate = "template"
	SourceRemote   = "remote"
)

// Question is a learner's question with optional study context.
type Question struct {
	Text string

	// Module is the material being studied, if any.
	Module *content.ModuleContent

	// Context is free text the learner attached, e.g. a code snippet.
	Context string
}

// Answer is a tutor reply.
type Answer struct {
	Text        string
	Suggestions []string
	Source      string
}

// ResponseGenerator produces tutor answers.
type ResponseGenerator interface {
	Respond(ctx context.Context, q Question) (*Answer, error)
}

// Message is one recorded question and answer.
type Message struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
	ModuleID  string    `json:"moduleId,omitempty"`
}

// NewMessage records a question and its answer.
func NewMessage(q Question, a *Answer, now time.Time) Message {
	m := Message{
		ID:        uuid.NewString(),
		Question:  q.Text,
		Response:  a.Text,
		Timestamp: now,
	}
	if q.Module != nil {
		m.ModuleID = q.Module.ModuleID
	}
	return m
}

// Select returns a remote generator when a provider is configured and the
// template generator otherwise.
func Select(provider llm.Provider, cfg Config, log *logger.Logger) ResponseGenerator {
	if provider == nil {
		return TemplateGenerator{}
	}
	return NewRemoteGenerator(provider, cfg, log)
}
