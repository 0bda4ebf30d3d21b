package bank

import (
	"errors"
	"fmt"
	"slices"
)

// MaxOptions is the maximum number of answer options per question.
const MaxOptions = 4

// MinOptions is the minimum number of answer options per question.
const MinOptions = 2

// DefaultTheme is assigned to imported questions that carry no theme cell.
const DefaultTheme = "General"

var (
	// ErrNotFound is returned when a question id does not exist in the bank.
	ErrNotFound = errors.New("question not found")

	// ErrEmptyPrompt is returned when an edit would leave the prompt blank.
	ErrEmptyPrompt = errors.New("question prompt must not be empty")

	// ErrOptionCount is returned when an edit carries too few or too many options.
	ErrOptionCount = fmt.Errorf("question must have between %d and %d options", MinOptions, MaxOptions)

	// ErrCorrectNotOption is returned when the correct answer is not one of the options.
	ErrCorrectNotOption = errors.New("correct answer must be one of the options")
)

// Question is a single multiple-choice question. The JSON field names match
// the persisted snapshot format, so snapshots written by earlier releases
// keep loading.
type Question struct {
	ID                  string   `json:"id"`
	Theme               string   `json:"theme"`
	Prompt              string   `json:"question"`
	Options             []string `json:"options"`
	CorrectAnswer       string   `json:"correctAnswer"`
	AnsweredCorrectly   int      `json:"answeredCorrectly"`
	AnsweredIncorrectly int      `json:"answeredIncorrectly"`
}

// Validate checks the structural invariants enforced on manual edits.
// Imported rows are deliberately looser (see the importer package).
func (q Question) Validate() error {
	if q.Prompt == "" {
		return ErrEmptyPrompt
	}
	if len(q.Options) < MinOptions || len(q.Options) > MaxOptions {
		return ErrOptionCount
	}
	if !slices.Contains(q.Options, q.CorrectAnswer) {
		return ErrCorrectNotOption
	}
	return nil
}

// Clone returns a deep copy of the question. Session and history snapshots
// must not alias the bank's option slices.
func (q Question) Clone() Question {
	c := q
	c.Options = slices.Clone(q.Options)
	return c
}

// CloneAll deep-copies a slice of questions.
func CloneAll(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}
