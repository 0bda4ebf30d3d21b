package bank

import (
	"sort"
	"strings"
)

// Bank owns the full set of importable questions. It is the only mutable
// owner of the per-question answer counters; sessions and history records
// hold value snapshots taken at build time.
type Bank struct {
	questions []Question
}

// New creates a bank over the given questions.
func New(questions []Question) *Bank {
	return &Bank{questions: questions}
}

// Size returns the number of questions in the bank.
func (b *Bank) Size() int {
	return len(b.questions)
}

// Questions returns the bank's questions in stored order.
func (b *Bank) Questions() []Question {
	return b.questions
}

// Snapshot returns a deep copy of the bank's questions, safe to hand to a
// session or persist.
func (b *Bank) Snapshot() []Question {
	return CloneAll(b.questions)
}

// Replace swaps the full question set. Import is a wholesale replacement,
// never a merge.
func (b *Bank) Replace(questions []Question) {
	b.questions = questions
}

// Get returns the question with the given id.
func (b *Bank) Get(id string) (Question, bool) {
	for _, q := range b.questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// RecordResult increments the lifetime counter for the question with the
// given id. Unknown ids are ignored; a session may reference a question
// that was replaced by a later import.
func (b *Bank) RecordResult(id string, correct bool) {
	for i := range b.questions {
		if b.questions[i].ID != id {
			continue
		}
		if correct {
			b.questions[i].AnsweredCorrectly++
		} else {
			b.questions[i].AnsweredIncorrectly++
		}
		return
	}
}

// QuestionUpdate carries the editable fields of a question. Nil fields are
// left unchanged.
type QuestionUpdate struct {
	Theme         *string
	Prompt        *string
	Options       []string
	CorrectAnswer *string
}

// Edit applies an update to the question with the given id after
// validation. The bank is untouched when validation fails.
func (b *Bank) Edit(id string, upd QuestionUpdate) error {
	for i := range b.questions {
		if b.questions[i].ID != id {
			continue
		}
		next := b.questions[i].Clone()
		if upd.Theme != nil {
			next.Theme = *upd.Theme
		}
		if upd.Prompt != nil {
			next.Prompt = *upd.Prompt
		}
		if upd.Options != nil {
			next.Options = upd.Options
		}
		if upd.CorrectAnswer != nil {
			next.CorrectAnswer = *upd.CorrectAnswer
		}
		if next.Theme == "" {
			next.Theme = DefaultTheme
		}
		if err := next.Validate(); err != nil {
			return err
		}
		b.questions[i] = next
		return nil
	}
	return ErrNotFound
}

// ThemeCount pairs a theme name with its question count.
type ThemeCount struct {
	Name  string
	Count int
}

// Themes returns the distinct themes in the bank, sorted by name.
func (b *Bank) Themes() []ThemeCount {
	counts := make(map[string]int)
	for _, q := range b.questions {
		counts[q.Theme]++
	}
	themes := make([]ThemeCount, 0, len(counts))
	for name, n := range counts {
		themes = append(themes, ThemeCount{Name: name, Count: n})
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	return themes
}

// Search returns the questions whose prompt or theme contains term,
// case-insensitively. An empty term matches everything.
func (b *Bank) Search(term string) []Question {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return b.questions
	}
	var out []Question
	for _, q := range b.questions {
		if strings.Contains(strings.ToLower(q.Prompt), term) ||
			strings.Contains(strings.ToLower(q.Theme), term) {
			out = append(out, q)
		}
	}
	return out
}
