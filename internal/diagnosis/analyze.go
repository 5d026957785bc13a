package diagnosis

import (
	"errors"
	"strings"
	"time"

	"github.com/abhisek/careerpath/internal/model"
)

// ErrEmptyTopic is returned by FromGoal when no learning topic was given.
var ErrEmptyTopic = errors.New("learning topic is required")

// Analyzer builds diagnosis results. The zero value uses the wall clock.
type Analyzer struct {
	Now func() time.Time
}

func (a Analyzer) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Analyze uses the wall clock. See Analyzer.Analyze.
func Analyze(answers []model.DiagnosisAnswer) *model.DiagnosisResult {
	return Analyzer{}.Analyze(answers)
}

// Analyze maps answers to result fields by question id. Missing or empty
// answers leave the field empty; incomplete input is never an error. The
// weak area answer becomes a one-element list unless it already is a list.
func (a Analyzer) Analyze(answers []model.DiagnosisAnswer) *model.DiagnosisResult {
	byID := make(map[int]model.AnswerValue, len(answers))
	for _, ans := range answers {
		if _, dup := byID[ans.QuestionID]; !dup {
			byID[ans.QuestionID] = ans.Answer
		}
	}

	r := &model.DiagnosisResult{
		Answers:       append([]model.DiagnosisAnswer{}, answers...),
		CurrentJob:    byID[QuestionCurrentJob].String(),
		Experience:    byID[QuestionExperience].String(),
		TargetJob:     byID[QuestionTargetJob].String(),
		WeakAreas:     byID[QuestionWeakArea].Strings(),
		LearningHours: byID[QuestionLearningHours].String(),
		AnalyzedAt:    a.now(),
	}
	return finish(r)
}

// ChatMessage is one turn of the learning-goal conversation.
type ChatMessage struct {
	Role    string // "user" or "assistant"
	Content string
}

// FromGoal builds a result from a free-text learning goal instead of the
// question flow. The topic becomes the target job. The first message that
// mentions a career stage becomes the experience, the first that mentions
// time or study becomes the learning hours, and the first three user
// messages become the weak areas.
func (a Analyzer) FromGoal(topic string, messages []ChatMessage) (*model.DiagnosisResult, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	r := &model.DiagnosisResult{
		Answers:    []model.DiagnosisAnswer{},
		TargetJob:  topic,
		AnalyzedAt: a.now(),
	}
	r.Experience = firstContaining(messages, "경력", "신입")
	r.LearningHours = firstContaining(messages, "시간", "학습")

	for _, m := range messages {
		if m.Role != "user" {
			continue
		}
		r.WeakAreas = append(r.WeakAreas, m.Content)
		if len(r.WeakAreas) == 3 {
			break
		}
	}

	return finish(r), nil
}

// FromGoal uses the wall clock. See Analyzer.FromGoal.
func FromGoal(topic string, messages []ChatMessage) (*model.DiagnosisResult, error) {
	return Analyzer{}.FromGoal(topic, messages)
}

func firstContaining(messages []ChatMessage, keywords ...string) string {
	for _, m := range messages {
		for _, k := range keywords {
			if strings.Contains(m.Content, k) {
				return m.Content
			}
		}
	}
	return ""
}

// finish classifies the result once and derives its required skills.
func finish(r *model.DiagnosisResult) *model.DiagnosisResult {
	p := Classify(r)
	r.Profile = &p
	r.RequiredSkills = ExtractRequiredSkills(r)
	return r
}
