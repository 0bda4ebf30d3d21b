package results

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"quizdeck/internal/bank"
	"quizdeck/internal/history"
	"quizdeck/internal/saved"
	"quizdeck/internal/service"
	"quizdeck/internal/session"
)

type memRepo struct {
	questions []bank.Question
	history   []history.Record
}

func (m *memRepo) LoadQuestions() ([]bank.Question, error)    { return m.questions, nil }
func (m *memRepo) SaveQuestions(qs []bank.Question) error     { m.questions = qs; return nil }
func (m *memRepo) LoadHistory() ([]history.Record, error)     { return m.history, nil }
func (m *memRepo) SaveHistory(recs []history.Record) error    { m.history = recs; return nil }
func (m *memRepo) LoadSavedTests() ([]saved.Entry, error)     { return nil, nil }
func (m *memRepo) SaveSavedTests(entries []saved.Entry) error { return nil }
func (m *memRepo) LoadDarkMode() (bool, error)                { return false, nil }
func (m *memRepo) SaveDarkMode(bool) error                    { return nil }

func testRecord() history.Record {
	qs := []bank.Question{
		{ID: "1", Theme: "Hydraulics", Prompt: "q1?", Options: []string{"a", "b"}, CorrectAnswer: "a"},
		{ID: "2", Theme: "Hydraulics", Prompt: "q2?", Options: []string{"c", "d"}, CorrectAnswer: "d"},
	}
	now := time.Now()
	return history.Record{
		Theme:     "Hydraulics",
		Questions: qs,
		Answers: []session.Answer{
			{QuestionID: "1", Theme: "Hydraulics", SelectedOption: "A", SelectedText: "a", IsCorrect: true, Timestamp: now},
			{QuestionID: "2", Theme: "Hydraulics", SelectedOption: "A", SelectedText: "c", IsCorrect: false, Timestamp: now},
		},
		StartTime: now.Add(-time.Minute),
		EndTime:   now,
	}
}

func testService(t *testing.T, rec history.Record) *service.Service {
	t.Helper()
	svc, err := service.Load(&memRepo{history: []history.Record{rec}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return svc
}

func TestResultsScreen_Display(t *testing.T) {
	rec := testRecord()
	s := New(testService(t, rec), rec)

	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty results view")
	}
}

func TestResultsScreen_EnterPops(t *testing.T) {
	rec := testRecord()
	s := New(testService(t, rec), rec)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestResultsScreen_RetestIncorrect(t *testing.T) {
	rec := testRecord()
	svc := testService(t, rec)
	s := New(svc, rec)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'i', Text: "i"})
	if cmd == nil {
		t.Fatal("expected a command starting the review test")
	}
	active := svc.Active()
	if active == nil {
		t.Fatal("expected an active session after review")
	}
	if active.Len() != 1 || active.Questions[0].ID != "2" {
		t.Errorf("review questions = %+v, want only the missed question", active.Questions)
	}
}

func TestResultsScreen_RetestIncorrect_AllCorrect(t *testing.T) {
	rec := testRecord()
	rec.Answers[1].IsCorrect = true
	svc := testService(t, rec)
	s := New(svc, rec)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'i', Text: "i"})
	if cmd != nil {
		t.Error("expected no navigation when there is nothing to review")
	}
	if svc.Active() != nil {
		t.Error("no session should start when there is nothing to review")
	}
}

func TestResultsScreen_RetestAll(t *testing.T) {
	rec := testRecord()
	svc := testService(t, rec)
	s := New(svc, rec)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if cmd == nil {
		t.Fatal("expected a command starting the retest")
	}
	if svc.Active() == nil || svc.Active().Len() != 2 {
		t.Error("expected an active session over the full snapshot")
	}
}
