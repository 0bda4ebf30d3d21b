package bank

import (
	"errors"
	"testing"
)

func testQuestions() []Question {
	return []Question{
		{ID: "1", Theme: "A", Prompt: "first?", Options: []string{"x", "y"}, CorrectAnswer: "x"},
		{ID: "2", Theme: "B", Prompt: "second?", Options: []string{"p", "q"}, CorrectAnswer: "q"},
		{ID: "3", Theme: "A", Prompt: "third?", Options: []string{"m", "n"}, CorrectAnswer: "n"},
	}
}

func TestRecordResult(t *testing.T) {
	b := New(testQuestions())

	b.RecordResult("1", true)
	b.RecordResult("1", false)
	b.RecordResult("1", false)

	q, ok := b.Get("1")
	if !ok {
		t.Fatal("expected question 1")
	}
	if q.AnsweredCorrectly != 1 {
		t.Errorf("AnsweredCorrectly = %d, want 1", q.AnsweredCorrectly)
	}
	if q.AnsweredIncorrectly != 2 {
		t.Errorf("AnsweredIncorrectly = %d, want 2", q.AnsweredIncorrectly)
	}
}

func TestRecordResult_UnknownIDIgnored(t *testing.T) {
	b := New(testQuestions())
	b.RecordResult("missing", true)

	for _, q := range b.Questions() {
		if q.AnsweredCorrectly != 0 || q.AnsweredIncorrectly != 0 {
			t.Errorf("question %s counters mutated", q.ID)
		}
	}
}

func TestThemes_SortedWithCounts(t *testing.T) {
	b := New(testQuestions())

	themes := b.Themes()
	if len(themes) != 2 {
		t.Fatalf("len(themes) = %d, want 2", len(themes))
	}
	if themes[0].Name != "A" || themes[0].Count != 2 {
		t.Errorf("themes[0] = %+v, want {A 2}", themes[0])
	}
	if themes[1].Name != "B" || themes[1].Count != 1 {
		t.Errorf("themes[1] = %+v, want {B 1}", themes[1])
	}
}

func TestEdit(t *testing.T) {
	prompt := "updated?"
	correct := "y"

	b := New(testQuestions())
	err := b.Edit("1", QuestionUpdate{Prompt: &prompt, CorrectAnswer: &correct})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	q, _ := b.Get("1")
	if q.Prompt != "updated?" {
		t.Errorf("Prompt = %q, want %q", q.Prompt, "updated?")
	}
	if q.CorrectAnswer != "y" {
		t.Errorf("CorrectAnswer = %q, want %q", q.CorrectAnswer, "y")
	}
}

func TestEdit_Validation(t *testing.T) {
	empty := ""
	notAnOption := "zzz"

	tests := []struct {
		name string
		id   string
		upd  QuestionUpdate
		want error
	}{
		{"missing id", "404", QuestionUpdate{}, ErrNotFound},
		{"empty prompt", "1", QuestionUpdate{Prompt: &empty}, ErrEmptyPrompt},
		{"correct not in options", "1", QuestionUpdate{CorrectAnswer: &notAnOption}, ErrCorrectNotOption},
		{"too few options", "1", QuestionUpdate{Options: []string{"x"}}, ErrOptionCount},
		{"too many options", "1", QuestionUpdate{Options: []string{"x", "a", "b", "c", "d"}}, ErrOptionCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(testQuestions())
			err := b.Edit(tt.id, tt.upd)
			if !errors.Is(err, tt.want) {
				t.Errorf("Edit = %v, want %v", err, tt.want)
			}
			// Failed edits must leave the bank untouched.
			if q, ok := b.Get("1"); ok && q.Prompt != "first?" {
				t.Errorf("bank mutated on failed edit: %+v", q)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	b := New(testQuestions())

	if got := len(b.Search("SECOND")); got != 1 {
		t.Errorf("Search(SECOND) = %d matches, want 1", got)
	}
	if got := len(b.Search("a")); got != 2 {
		t.Errorf("Search(a) = %d matches, want 2 (theme match)", got)
	}
	if got := len(b.Search("")); got != 3 {
		t.Errorf("Search(empty) = %d matches, want all 3", got)
	}
}

func TestSnapshot_Independent(t *testing.T) {
	b := New(testQuestions())
	snap := b.Snapshot()

	b.RecordResult("1", true)
	if snap[0].AnsweredCorrectly != 0 {
		t.Error("snapshot shares counter state with the bank")
	}

	snap[0].Options[0] = "mutated"
	q, _ := b.Get("1")
	if q.Options[0] != "x" {
		t.Error("snapshot shares option storage with the bank")
	}
}
