package session

import (
	"errors"
	"testing"

	"quizdeck/internal/bank"
)

func testBank() *bank.Bank {
	return bank.New([]bank.Question{
		{ID: "1", Theme: "A", Prompt: "first?", Options: []string{"x", "y"}, CorrectAnswer: "x"},
		{ID: "2", Theme: "B", Prompt: "second?", Options: []string{"p", "q"}, CorrectAnswer: "q"},
		{ID: "3", Theme: "A", Prompt: "third?", Options: []string{"m", "n"}, CorrectAnswer: "n"},
	})
}

func testSession(b *bank.Bank) *Session {
	return New(b.Snapshot(), "All themes")
}

func TestRecordAnswer_CorrectByText(t *testing.T) {
	b := testBank()
	s := testSession(b)

	ans, recorded, err := s.RecordAnswer(b, 0) // "x" is correct for question 1
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if !recorded {
		t.Error("expected a new answer to be recorded")
	}
	if !ans.IsCorrect {
		t.Error("expected answer to be correct")
	}
	if ans.SelectedOption != "A" {
		t.Errorf("SelectedOption = %q, want A", ans.SelectedOption)
	}
	if ans.SelectedText != "x" {
		t.Errorf("SelectedText = %q, want x", ans.SelectedText)
	}

	q, _ := b.Get("1")
	if q.AnsweredCorrectly != 1 {
		t.Errorf("bank AnsweredCorrectly = %d, want 1", q.AnsweredCorrectly)
	}
}

func TestRecordAnswer_Idempotent(t *testing.T) {
	b := testBank()
	s := testSession(b)

	first, _, _ := s.RecordAnswer(b, 1) // wrong
	second, recorded, err := s.RecordAnswer(b, 0)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if recorded {
		t.Error("second answer for the same question must not be recorded")
	}
	if second != first {
		t.Errorf("second call returned %+v, want original %+v", second, first)
	}
	if len(s.Answers) != 1 {
		t.Errorf("len(Answers) = %d, want 1", len(s.Answers))
	}

	// The counter must reflect only the first answer.
	q, _ := b.Get("1")
	if q.AnsweredIncorrectly != 1 || q.AnsweredCorrectly != 0 {
		t.Errorf("counters = %d/%d, want 0 correct, 1 incorrect",
			q.AnsweredCorrectly, q.AnsweredIncorrectly)
	}
}

func TestRecordAnswer_OptionOutOfRange(t *testing.T) {
	b := testBank()
	s := testSession(b)

	if _, _, err := s.RecordAnswer(b, 5); !errors.Is(err, ErrOptionOutOfRange) {
		t.Errorf("err = %v, want ErrOptionOutOfRange", err)
	}
}

func TestAdvance_RequiresAnswer(t *testing.T) {
	b := testBank()
	s := testSession(b)

	if _, err := s.Advance(); !errors.Is(err, ErrAnswerRequired) {
		t.Fatalf("err = %v, want ErrAnswerRequired", err)
	}

	s.RecordAnswer(b, 0)
	done, err := s.Advance()
	if err != nil {
		t.Fatalf("Advance after answering: %v", err)
	}
	if done {
		t.Error("done = true on a non-final question")
	}
	if s.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", s.CurrentIndex)
	}
}

func TestAdvance_LastQuestionFinishesEvenUnanswered(t *testing.T) {
	b := testBank()
	s := testSession(b)
	s.CurrentIndex = s.Len() - 1

	done, err := s.Advance()
	if err != nil {
		t.Fatalf("Advance on last question: %v", err)
	}
	if !done {
		t.Error("expected done = true on the final question")
	}
}

func TestRetreat_StopsAtZero(t *testing.T) {
	b := testBank()
	s := testSession(b)

	s.Retreat()
	if s.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", s.CurrentIndex)
	}

	s.CurrentIndex = 2
	s.Retreat()
	if s.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", s.CurrentIndex)
	}
}

func TestFinish_SynthesizesAndSorts(t *testing.T) {
	b := testBank()
	s := testSession(b)

	// Answer the last question first so answer order differs from question
	// order, leaving 1 and 2 unanswered.
	s.CurrentIndex = 2
	s.RecordAnswer(b, 1) // "n" is correct for question 3

	s.Finish(b)

	if len(s.Answers) != s.Len() {
		t.Fatalf("len(Answers) = %d, want %d", len(s.Answers), s.Len())
	}
	for i, a := range s.Answers {
		if want := s.Questions[i].ID; a.QuestionID != want {
			t.Errorf("Answers[%d].QuestionID = %s, want %s (question order)", i, a.QuestionID, want)
		}
	}

	// Unanswered questions become incorrect answers with no selection.
	first := s.Answers[0]
	if first.IsCorrect || first.SelectedOption != "" || first.SelectedText != "" {
		t.Errorf("synthesized answer = %+v, want unanswered incorrect", first)
	}
	if s.EndTime == nil {
		t.Error("EndTime not set")
	}

	// Each synthesized answer ticks the incorrect counter.
	q1, _ := b.Get("1")
	if q1.AnsweredIncorrectly != 1 {
		t.Errorf("question 1 AnsweredIncorrectly = %d, want 1", q1.AnsweredIncorrectly)
	}
	q3, _ := b.Get("3")
	if q3.AnsweredCorrectly != 1 {
		t.Errorf("question 3 AnsweredCorrectly = %d, want 1", q3.AnsweredCorrectly)
	}
}

func TestSessionSnapshot_ImmuneToBankEdits(t *testing.T) {
	b := testBank()
	s := testSession(b)

	prompt := "edited after start"
	if err := b.Edit("1", bank.QuestionUpdate{Prompt: &prompt}); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	if s.Questions[0].Prompt != "first?" {
		t.Errorf("session prompt = %q, want snapshot value", s.Questions[0].Prompt)
	}
}

func TestOptionLetter(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "A"}, {1, "B"}, {2, "C"}, {3, "D"}, {4, ""}, {-1, ""},
	}
	for _, tt := range tests {
		if got := OptionLetter(tt.index); got != tt.want {
			t.Errorf("OptionLetter(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}
