// Package model holds the records persisted in the blob store. Field names
// and JSON tags match the stored layout so existing blobs stay readable.
package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AnswerValue is a diagnosis answer: a string, a number or a list of strings.
type AnswerValue struct {
	Text   string
	Number float64
	List   []string
	kind   answerKind
}

type answerKind int

const (
	answerEmpty answerKind = iota
	answerText
	answerNumber
	answerList
)

// TextAnswer wraps a string answer.
func TextAnswer(s string) AnswerValue { return AnswerValue{Text: s, kind: answerText} }

// NumberAnswer wraps a numeric answer.
func NumberAnswer(n float64) AnswerValue { return AnswerValue{Number: n, kind: answerNumber} }

// ListAnswer wraps a multiple-choice answer.
func ListAnswer(items ...string) AnswerValue {
	return AnswerValue{List: append([]string(nil), items...), kind: answerList}
}

// IsEmpty reports whether no answer was given.
func (a AnswerValue) IsEmpty() bool { return a.kind == answerEmpty }

// IsList reports whether the answer holds several choices.
func (a AnswerValue) IsList() bool { return a.kind == answerList }

// String renders the answer as free text. Lists are joined with ", ".
func (a AnswerValue) String() string {
	switch a.kind {
	case answerText:
		return a.Text
	case answerNumber:
		return strconv.FormatFloat(a.Number, 'f', -1, 64)
	case answerList:
		return strings.Join(a.List, ", ")
	default:
		return ""
	}
}

// Strings returns the answer as a list of choices.
func (a AnswerValue) Strings() []string {
	switch a.kind {
	case answerList:
		return append([]string(nil), a.List...)
	case answerEmpty:
		return nil
	default:
		return []string{a.String()}
	}
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case answerText:
		return json.Marshal(a.Text)
	case answerNumber:
		return json.Marshal(a.Number)
	case answerList:
		if a.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.List)
	default:
		return []byte("null"), nil
	}
}

func (a *AnswerValue) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*a = AnswerValue{}
	case string:
		*a = TextAnswer(v)
	case float64:
		*a = NumberAnswer(v)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("answer list item %v is not a string", item)
			}
			items = append(items, s)
		}
		*a = ListAnswer(items...)
	default:
		return fmt.Errorf("unsupported answer type %T", raw)
	}
	return nil
}

// DiagnosisAnswer is one answer of the diagnosis question flow.
type DiagnosisAnswer struct {
	QuestionID int         `json:"questionId"`
	Answer     AnswerValue `json:"answer"`
}

// DiagnosisResult is the normalized output of a diagnosis run. Empty string
// fields mean the question was not answered.
type DiagnosisResult struct {
	Answers        []DiagnosisAnswer `json:"answers"`
	CurrentJob     string            `json:"currentJob,omitempty"`
	TargetJob      string            `json:"targetJob,omitempty"`
	Experience     string            `json:"experience,omitempty"`
	WeakAreas      []string          `json:"weakAreas,omitempty"`
	LearningHours  string            `json:"learningHours,omitempty"`
	RequiredSkills []string          `json:"requiredSkills,omitempty"`
	Profile        *Profile          `json:"profile,omitempty"`
	AnalyzedAt     time.Time         `json:"analyzedAt"`
}
