// Package prompttest provides a scripted prompt.Prompter for tests.
package prompttest

import (
	"context"
	"fmt"

	"github.com/papapumpkin/menukit/internal/prompt"
)

// Answer is one scripted reply. Only the field matching the prompt kind is
// read; Cancel makes the prompt return prompt.ErrCanceled.
type Answer struct {
	Indexes []int
	Index   int
	Yes     bool
	Text    string
	Cancel  bool
}

// Pick answers a MultiSelect.
func Pick(indexes ...int) Answer { return Answer{Indexes: append([]int{}, indexes...)} }

// Choose answers a Select.
func Choose(i int) Answer { return Answer{Index: i} }

// Yes answers a Confirm affirmatively.
func Yes() Answer { return Answer{Yes: true} }

// No answers a Confirm negatively.
func No() Answer { return Answer{} }

// Type answers an Input.
func Type(s string) Answer { return Answer{Text: s} }

// Cancel aborts whichever prompt comes next.
func Cancel() Answer { return Answer{Cancel: true} }

// Asked records one prompt shown to the user.
type Asked struct {
	Kind    string
	Message string
	Choices []string
	Max     int
	Initial bool
}

// Script replays Answers in order and records every prompt in Asked.
// Running out of answers is reported as an error.
type Script struct {
	Answers []Answer
	Asked   []Asked
}

// Verify Script satisfies prompt.Prompter at compile time.
var _ prompt.Prompter = (*Script)(nil)

// New returns a Script that will reply with answers in order.
func New(answers ...Answer) *Script {
	return &Script{Answers: answers}
}

func (s *Script) next(a Asked) (Answer, error) {
	s.Asked = append(s.Asked, a)
	if len(s.Answers) == 0 {
		return Answer{}, fmt.Errorf("prompttest: unexpected %s prompt %q", a.Kind, a.Message)
	}
	ans := s.Answers[0]
	s.Answers = s.Answers[1:]
	if ans.Cancel {
		return Answer{}, prompt.ErrCanceled
	}
	return ans, nil
}

// Messages returns the message of every prompt asked so far.
func (s *Script) Messages() []string {
	out := make([]string, len(s.Asked))
	for i, a := range s.Asked {
		out[i] = a.Message
	}
	return out
}

// MultiSelect implements prompt.Prompter.
func (s *Script) MultiSelect(_ context.Context, req prompt.MultiSelectRequest) ([]int, error) {
	ans, err := s.next(Asked{Kind: "multiselect", Message: req.Message, Choices: req.Choices, Max: req.Max})
	if err != nil {
		return nil, err
	}
	return ans.Indexes, nil
}

// Select implements prompt.Prompter.
func (s *Script) Select(_ context.Context, req prompt.SelectRequest) (int, error) {
	ans, err := s.next(Asked{Kind: "select", Message: req.Message, Choices: req.Choices})
	if err != nil {
		return -1, err
	}
	return ans.Index, nil
}

// Confirm implements prompt.Prompter.
func (s *Script) Confirm(_ context.Context, message string, initial bool) (bool, error) {
	ans, err := s.next(Asked{Kind: "confirm", Message: message, Initial: initial})
	if err != nil {
		return false, err
	}
	return ans.Yes, nil
}

// Input implements prompt.Prompter.
func (s *Script) Input(_ context.Context, message string) (string, error) {
	ans, err := s.next(Asked{Kind: "input", Message: message})
	if err != nil {
		return "", err
	}
	return ans.Text, nil
}
