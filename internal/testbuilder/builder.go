// Package testbuilder turns the question bank (or a past test) into the
// ordered question list a new session runs over.
package testbuilder

import (
	"errors"
	"math/rand"

	"quizdeck/internal/bank"
	"quizdeck/internal/history"
)

// AllThemes is the sentinel selector meaning "every theme in the bank".
const AllThemes = "*"

// Display labels for built tests.
const (
	RandomLabel         = "Random"
	AllThemesLabel      = "All themes"
	MultipleThemesLabel = "Multiple themes"
)

var (
	// ErrEmptyBank is returned when no questions have been loaded yet.
	ErrEmptyBank = errors.New("no questions loaded")

	// ErrNoThemeSelected is returned when the theme set is empty.
	ErrNoThemeSelected = errors.New("no theme selected")

	// ErrNoMatchingQuestions is returned when the selected themes match no
	// questions.
	ErrNoMatchingQuestions = errors.New("no questions for the selected themes")

	// ErrNoHistory is returned when there is no finished test to retake, or
	// the last record predates question snapshots.
	ErrNoHistory = errors.New("no retakeable test in history")

	// ErrNothingToReview is returned when the last test had no incorrect
	// answers. Callers treat it as "nothing to do", not as a failure.
	ErrNothingToReview = errors.New("no incorrect answers to review")
)

// Test is an ordered, immutable question selection ready to become a
// session.
type Test struct {
	Questions []bank.Question
	Label     string

	// Clamped is set when the requested count exceeded the bank size and
	// the whole bank was used instead.
	Clamped bool
}

// BuildRandom selects count distinct questions uniformly at random. A count
// beyond the bank size is clamped to the whole bank.
func BuildRandom(b *bank.Bank, count int) (Test, error) {
	if b.Size() == 0 {
		return Test{}, ErrEmptyBank
	}
	clamped := false
	if count > b.Size() {
		count = b.Size()
		clamped = true
	}
	qs := shuffled(b.Snapshot())
	return Test{Questions: qs[:count], Label: RandomLabel, Clamped: clamped}, nil
}

// BuildByThemes selects every question whose theme is in the given set,
// preserving bank order. The AllThemes sentinel selects the entire bank.
func BuildByThemes(b *bank.Bank, themes []string) (Test, error) {
	if len(themes) == 0 {
		return Test{}, ErrNoThemeSelected
	}
	set := make(map[string]bool, len(themes))
	all := false
	for _, t := range themes {
		if t == AllThemes {
			all = true
		}
		set[t] = true
	}

	if all {
		if b.Size() == 0 {
			return Test{}, ErrEmptyBank
		}
		return Test{Questions: b.Snapshot(), Label: AllThemesLabel}, nil
	}

	var qs []bank.Question
	for _, q := range b.Questions() {
		if set[q.Theme] {
			qs = append(qs, q.Clone())
		}
	}
	if len(qs) == 0 {
		return Test{}, ErrNoMatchingQuestions
	}

	label := MultipleThemesLabel
	if len(themes) == 1 {
		label = themes[0]
	}
	return Test{Questions: qs, Label: label}, nil
}

// BuildRetestAll reshuffles the exact question snapshot of the last
// finished test.
func BuildRetestAll(last *history.Record) (Test, error) {
	if last == nil || !last.HasQuestions() {
		return Test{}, ErrNoHistory
	}
	return Test{
		Questions: shuffled(bank.CloneAll(last.Questions)),
		Label:     "Retest: " + last.Theme,
	}, nil
}

// BuildRetestIncorrect selects only the questions answered incorrectly in
// the last finished test, shuffled.
func BuildRetestIncorrect(last *history.Record) (Test, error) {
	if last == nil || !last.HasQuestions() {
		return Test{}, ErrNoHistory
	}
	wrong := make(map[string]bool)
	for _, a := range last.Answers {
		if !a.IsCorrect {
			wrong[a.QuestionID] = true
		}
	}
	var qs []bank.Question
	for _, q := range last.Questions {
		if wrong[q.ID] {
			qs = append(qs, q.Clone())
		}
	}
	if len(qs) == 0 {
		return Test{}, ErrNothingToReview
	}
	return Test{
		Questions: shuffled(qs),
		Label:     "Review: " + last.Theme,
	}, nil
}

// shuffled permutes questions in place and returns the slice.
func shuffled(qs []bank.Question) []bank.Question {
	rand.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
	return qs
}
