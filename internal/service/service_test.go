package service

import (
	"errors"
	"testing"

	"quizdeck/internal/bank"
	"quizdeck/internal/history"
	"quizdeck/internal/saved"
	"quizdeck/internal/testbuilder"
)

// memRepo is an in-memory Repository tracking how often each slot was
// written.
type memRepo struct {
	questions []bank.Question
	history   []history.Record
	saved     []saved.Entry
	darkMode  bool

	questionSaves int
	historySaves  int
	savedSaves    int
}

func (m *memRepo) LoadQuestions() ([]bank.Question, error) { return m.questions, nil }
func (m *memRepo) SaveQuestions(qs []bank.Question) error {
	m.questions = bank.CloneAll(qs)
	m.questionSaves++
	return nil
}
func (m *memRepo) LoadHistory() ([]history.Record, error) { return m.history, nil }
func (m *memRepo) SaveHistory(recs []history.Record) error {
	m.history = append([]history.Record(nil), recs...)
	m.historySaves++
	return nil
}
func (m *memRepo) LoadSavedTests() ([]saved.Entry, error) { return m.saved, nil }
func (m *memRepo) SaveSavedTests(entries []saved.Entry) error {
	m.saved = append([]saved.Entry(nil), entries...)
	m.savedSaves++
	return nil
}
func (m *memRepo) LoadDarkMode() (bool, error) { return m.darkMode, nil }
func (m *memRepo) SaveDarkMode(on bool) error  { m.darkMode = on; return nil }

func newService(t *testing.T) (*Service, *memRepo) {
	t.Helper()
	repo := &memRepo{
		questions: []bank.Question{
			{ID: "1", Theme: "A", Prompt: "q1?", Options: []string{"x", "y"}, CorrectAnswer: "x"},
			{ID: "2", Theme: "B", Prompt: "q2?", Options: []string{"p", "q"}, CorrectAnswer: "q"},
		},
	}
	svc, err := Load(repo)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return svc, repo
}

func TestFullThemeTestFlow(t *testing.T) {
	svc, repo := newService(t)

	sess, err := svc.StartByThemes([]string{"A"})
	if err != nil {
		t.Fatalf("StartByThemes: %v", err)
	}
	if sess.Len() != 1 {
		t.Fatalf("session has %d questions, want 1", sess.Len())
	}

	ans, err := svc.Answer(0) // "x" is correct
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !ans.IsCorrect {
		t.Error("expected correct answer")
	}
	if repo.questionSaves != 1 {
		t.Errorf("questionSaves = %d after answering, want 1", repo.questionSaves)
	}

	rec, err := svc.Next() // single question: advancing finishes
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a finished record")
	}
	if len(rec.Answers) != 1 || !rec.Answers[0].IsCorrect || rec.Answers[0].QuestionID != "1" {
		t.Errorf("record answers = %+v", rec.Answers)
	}
	if svc.Active() != nil {
		t.Error("session still active after finish")
	}
	if repo.historySaves != 1 {
		t.Errorf("historySaves = %d, want 1", repo.historySaves)
	}

	// Counter landed in the persisted bank snapshot.
	if repo.questions[0].AnsweredCorrectly != 1 {
		t.Errorf("persisted AnsweredCorrectly = %d, want 1", repo.questions[0].AnsweredCorrectly)
	}
}

func TestPauseResume_RestoresProgress(t *testing.T) {
	svc, repo := newService(t)

	if _, err := svc.StartByThemes([]string{testbuilder.AllThemes}); err != nil {
		t.Fatalf("StartByThemes: %v", err)
	}
	if _, err := svc.Answer(0); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if _, err := svc.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}

	entry, err := svc.Pause()
	if err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if svc.Active() != nil {
		t.Error("session still active after pause")
	}
	if repo.savedSaves != 1 {
		t.Errorf("savedSaves = %d, want 1", repo.savedSaves)
	}

	sess, err := svc.Resume(entry.ID)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if sess.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", sess.CurrentIndex)
	}
	if len(sess.Answers) != 1 {
		t.Errorf("len(Answers) = %d, want the single recorded answer", len(sess.Answers))
	}
	if svc.Saved().Len() != 0 {
		t.Error("saved store still holds the resumed entry")
	}

	if _, err := svc.Resume(entry.ID); !errors.Is(err, saved.ErrNotFound) {
		t.Errorf("second Resume = %v, want ErrNotFound", err)
	}
}

func TestCancel_KeepsRecordedCounters(t *testing.T) {
	svc, repo := newService(t)

	if _, err := svc.StartByThemes([]string{"A"}); err != nil {
		t.Fatalf("StartByThemes: %v", err)
	}
	if _, err := svc.Answer(1); err != nil { // wrong answer
		t.Fatalf("Answer: %v", err)
	}

	if err := svc.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if svc.Active() != nil {
		t.Error("session still active after cancel")
	}
	if svc.History().Len() != 0 {
		t.Error("cancelled session reached history")
	}
	// Counters recorded before cancellation stay applied.
	q, _ := svc.Bank().Get("1")
	if q.AnsweredIncorrectly != 1 {
		t.Errorf("AnsweredIncorrectly = %d, want 1", q.AnsweredIncorrectly)
	}
	if repo.historySaves != 0 {
		t.Errorf("historySaves = %d, want 0", repo.historySaves)
	}
}

func TestRetestIncorrect_NothingToReview(t *testing.T) {
	svc, _ := newService(t)

	if _, err := svc.StartByThemes([]string{"A"}); err != nil {
		t.Fatalf("StartByThemes: %v", err)
	}
	if _, err := svc.Answer(0); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if _, err := svc.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}

	_, err := svc.RetestIncorrect()
	if !errors.Is(err, testbuilder.ErrNothingToReview) {
		t.Fatalf("err = %v, want ErrNothingToReview", err)
	}
	if svc.Active() != nil {
		t.Error("session created despite nothing to review")
	}
}

func TestRetestAll_UsesLastSnapshot(t *testing.T) {
	svc, _ := newService(t)

	if _, err := svc.StartByThemes([]string{"B"}); err != nil {
		t.Fatalf("StartByThemes: %v", err)
	}
	if _, err := svc.Answer(0); err != nil { // "p" is wrong for question 2
		t.Fatalf("Answer: %v", err)
	}
	if _, err := svc.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}

	sess, err := svc.RetestAll()
	if err != nil {
		t.Fatalf("RetestAll: %v", err)
	}
	if sess.Len() != 1 || sess.Questions[0].ID != "2" {
		t.Errorf("retest questions = %+v, want the last test's snapshot", sess.Questions)
	}
}

func TestSessionOps_RequireActiveSession(t *testing.T) {
	svc, _ := newService(t)

	if _, err := svc.Answer(0); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Answer err = %v, want ErrNoActiveSession", err)
	}
	if _, err := svc.Pause(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Pause err = %v, want ErrNoActiveSession", err)
	}
	if err := svc.Cancel(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Cancel err = %v, want ErrNoActiveSession", err)
	}
}

func TestStartRandom_Clamps(t *testing.T) {
	svc, _ := newService(t)

	sess, clamped, err := svc.StartRandom(50)
	if err != nil {
		t.Fatalf("StartRandom: %v", err)
	}
	if !clamped {
		t.Error("expected clamped = true")
	}
	if sess.Len() != svc.Bank().Size() {
		t.Errorf("session len = %d, want full bank", sess.Len())
	}
}

func TestImportReplacesBank(t *testing.T) {
	svc, repo := newService(t)

	err := svc.ImportQuestions([]bank.Question{
		{ID: "9", Theme: "Z", Prompt: "new?", Options: []string{"a", "b"}, CorrectAnswer: "a"},
	})
	if err != nil {
		t.Fatalf("ImportQuestions: %v", err)
	}
	if svc.Bank().Size() != 1 {
		t.Errorf("bank size = %d, want 1", svc.Bank().Size())
	}
	if len(repo.questions) != 1 || repo.questions[0].ID != "9" {
		t.Errorf("persisted bank = %+v", repo.questions)
	}
}

func TestDarkModePersisted(t *testing.T) {
	svc, repo := newService(t)

	if err := svc.SetDarkMode(true); err != nil {
		t.Fatalf("SetDarkMode: %v", err)
	}
	if !repo.darkMode {
		t.Error("dark mode not persisted")
	}
}
