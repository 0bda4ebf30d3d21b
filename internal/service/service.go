// Package service owns the whole application state: the question bank, the
// test history, the saved-session store and the single active session. It
// is the only writer; screens and CLI commands call its methods and render
// what they return. Every mutation persists the affected snapshot before
// returning, so in-memory and durable state never drift further apart than
// one operation.
//
// The app is single-threaded (one Bubble Tea update loop, or one CLI
// invocation), so the service does no locking.
package service

import (
	"errors"
	"fmt"
	"time"

	"quizdeck/internal/bank"
	"quizdeck/internal/history"
	"quizdeck/internal/saved"
	"quizdeck/internal/session"
	"quizdeck/internal/testbuilder"
)

var (
	// ErrNoActiveSession is returned by session operations when no test is
	// in progress.
	ErrNoActiveSession = errors.New("no test in progress")
)

// Repository is the persistence boundary: one load/save pair per logical
// snapshot slot.
type Repository interface {
	LoadQuestions() ([]bank.Question, error)
	SaveQuestions([]bank.Question) error
	LoadHistory() ([]history.Record, error)
	SaveHistory([]history.Record) error
	LoadSavedTests() ([]saved.Entry, error)
	SaveSavedTests([]saved.Entry) error
	LoadDarkMode() (bool, error)
	SaveDarkMode(bool) error
}

// Service coordinates all state transitions of the application.
type Service struct {
	repo Repository

	bank     *bank.Bank
	history  *history.Log
	saved    *saved.Store
	active   *session.Session
	darkMode bool
}

// Load builds a Service from the persisted snapshots.
func Load(repo Repository) (*Service, error) {
	qs, err := repo.LoadQuestions()
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	recs, err := repo.LoadHistory()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	entries, err := repo.LoadSavedTests()
	if err != nil {
		return nil, fmt.Errorf("load saved tests: %w", err)
	}
	dark, err := repo.LoadDarkMode()
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	return &Service{
		repo:     repo,
		bank:     bank.New(qs),
		history:  history.NewLog(recs),
		saved:    saved.NewStore(entries),
		darkMode: dark,
	}, nil
}

// Bank returns the question bank (read-only use by screens).
func (s *Service) Bank() *bank.Bank { return s.bank }

// History returns the test history log.
func (s *Service) History() *history.Log { return s.history }

// Saved returns the saved-session store.
func (s *Service) Saved() *saved.Store { return s.saved }

// Active returns the session in progress, or nil.
func (s *Service) Active() *session.Session { return s.active }

// DarkMode returns the persisted dark mode preference.
func (s *Service) DarkMode() bool { return s.darkMode }

// SetDarkMode persists the dark mode preference.
func (s *Service) SetDarkMode(on bool) error {
	s.darkMode = on
	return s.repo.SaveDarkMode(on)
}

// StartRandom begins a random test of count questions. clamped reports
// that the request exceeded the bank and the whole bank is used. Any
// session already active is discarded; screens confirm with the user
// before calling.
func (s *Service) StartRandom(count int) (sess *session.Session, clamped bool, err error) {
	t, err := testbuilder.BuildRandom(s.bank, count)
	if err != nil {
		return nil, false, err
	}
	return s.start(t), t.Clamped, nil
}

// StartByThemes begins a test over the selected themes.
func (s *Service) StartByThemes(themes []string) (*session.Session, error) {
	t, err := testbuilder.BuildByThemes(s.bank, themes)
	if err != nil {
		return nil, err
	}
	return s.start(t), nil
}

// RetestAll begins a test over the last finished test's exact questions.
func (s *Service) RetestAll() (*session.Session, error) {
	t, err := testbuilder.BuildRetestAll(s.lastRecord())
	if err != nil {
		return nil, err
	}
	return s.start(t), nil
}

// RetestIncorrect begins a test over the questions missed in the last
// finished test. testbuilder.ErrNothingToReview means there is nothing to
// do; no session is created.
func (s *Service) RetestIncorrect() (*session.Session, error) {
	t, err := testbuilder.BuildRetestIncorrect(s.lastRecord())
	if err != nil {
		return nil, err
	}
	return s.start(t), nil
}

func (s *Service) lastRecord() *history.Record {
	last, ok := s.history.Last()
	if !ok {
		return nil
	}
	return &last
}

func (s *Service) start(t testbuilder.Test) *session.Session {
	s.active = session.New(t.Questions, t.Label)
	return s.active
}

// Answer records the option selected for the current question. Recording
// increments the bank's lifetime counters, which are persisted immediately.
// Re-answering an already answered question is a no-op returning the
// original answer.
func (s *Service) Answer(optionIndex int) (session.Answer, error) {
	if s.active == nil {
		return session.Answer{}, ErrNoActiveSession
	}
	ans, recorded, err := s.active.RecordAnswer(s.bank, optionIndex)
	if err != nil {
		return session.Answer{}, err
	}
	if recorded {
		if err := s.repo.SaveQuestions(s.bank.Questions()); err != nil {
			return ans, err
		}
	}
	return ans, nil
}

// Next advances the session. When the current question is the last one it
// finishes the test instead and returns the resulting history record.
func (s *Service) Next() (*history.Record, error) {
	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	done, err := s.active.Advance()
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, nil
	}
	rec, err := s.Finish()
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Prev moves back one question. No-op on the first question.
func (s *Service) Prev() error {
	if s.active == nil {
		return ErrNoActiveSession
	}
	s.active.Retreat()
	return nil
}

// Finish completes the active session: unanswered questions become
// incorrect answers, the record is appended to history, bank counters and
// history are persisted, and no session remains active.
func (s *Service) Finish() (history.Record, error) {
	if s.active == nil {
		return history.Record{}, ErrNoActiveSession
	}
	sess := s.active
	sess.Finish(s.bank)

	rec := history.Record{
		Theme:     sess.Theme,
		Questions: bank.CloneAll(sess.Questions),
		Answers:   append([]session.Answer(nil), sess.Answers...),
		StartTime: sess.StartTime,
		EndTime:   *sess.EndTime,
	}
	s.history.Append(rec)
	s.active = nil

	if err := s.repo.SaveQuestions(s.bank.Questions()); err != nil {
		return rec, err
	}
	if err := s.repo.SaveHistory(s.history.Records()); err != nil {
		return rec, err
	}
	return rec, nil
}

// Pause stores the active session for later resumption and clears it. At
// capacity the stalest saved entry is overwritten.
func (s *Service) Pause() (saved.Entry, error) {
	if s.active == nil {
		return saved.Entry{}, ErrNoActiveSession
	}
	entry := s.saved.Insert(*s.active, time.Now())
	s.active = nil
	return entry, s.repo.SaveSavedTests(s.saved.Entries())
}

// Resume reactivates a saved session, removing it from the store. Any
// session already active is discarded; screens confirm first.
func (s *Service) Resume(id string) (*session.Session, error) {
	sess, err := s.saved.Resume(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveSavedTests(s.saved.Entries()); err != nil {
		return nil, err
	}
	s.active = &sess
	return s.active, nil
}

// DeleteSaved removes a saved session without resuming it.
func (s *Service) DeleteSaved(id string) error {
	if err := s.saved.Remove(id); err != nil {
		return err
	}
	return s.repo.SaveSavedTests(s.saved.Entries())
}

// Cancel discards the active session: no history record is written and
// nothing is persisted. Counter increments already applied by earlier
// answers in this session are kept; cancellation drops only the session
// itself.
func (s *Service) Cancel() error {
	if s.active == nil {
		return ErrNoActiveSession
	}
	s.active = nil
	return nil
}

// EditQuestion updates a bank question after validation and persists the
// bank.
func (s *Service) EditQuestion(id string, upd bank.QuestionUpdate) error {
	if err := s.bank.Edit(id, upd); err != nil {
		return err
	}
	return s.repo.SaveQuestions(s.bank.Questions())
}

// ImportQuestions replaces the bank wholesale and persists it.
func (s *Service) ImportQuestions(qs []bank.Question) error {
	s.bank.Replace(qs)
	return s.repo.SaveQuestions(s.bank.Questions())
}

// Overall returns lifetime statistics across all finished tests.
func (s *Service) Overall() history.Overall {
	return s.history.Overall()
}
