package store

import (
	"encoding/json"
	"fmt"
	"strconv"

	"quizdeck/internal/bank"
	"quizdeck/internal/history"
	"quizdeck/internal/saved"
)

// Snapshot slot keys. Stable names: they are the on-disk contract.
const (
	slotQuestions = "questions"
	slotHistory   = "testsHistory"
	slotSaved     = "savedTests"
	slotDarkMode  = "darkMode"
)

// LoadQuestions returns the persisted question bank, empty when the slot
// has never been written.
func (s *Store) LoadQuestions() ([]bank.Question, error) {
	var qs []bank.Question
	if err := s.loadJSON(slotQuestions, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// SaveQuestions overwrites the question bank snapshot.
func (s *Store) SaveQuestions(qs []bank.Question) error {
	return s.saveJSON(slotQuestions, qs)
}

// LoadHistory returns the persisted test history, oldest first.
func (s *Store) LoadHistory() ([]history.Record, error) {
	var recs []history.Record
	if err := s.loadJSON(slotHistory, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// SaveHistory overwrites the history snapshot.
func (s *Store) SaveHistory(recs []history.Record) error {
	return s.saveJSON(slotHistory, recs)
}

// LoadSavedTests returns the persisted paused sessions.
func (s *Store) LoadSavedTests() ([]saved.Entry, error) {
	var entries []saved.Entry
	if err := s.loadJSON(slotSaved, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SaveSavedTests overwrites the saved-tests snapshot.
func (s *Store) SaveSavedTests(entries []saved.Entry) error {
	return s.saveJSON(slotSaved, entries)
}

// LoadDarkMode returns the persisted dark mode preference, false by default.
func (s *Store) LoadDarkMode() (bool, error) {
	data, ok, err := s.load(slotDarkMode)
	if err != nil || !ok {
		return false, err
	}
	v, err := strconv.ParseBool(data)
	if err != nil {
		return false, fmt.Errorf("parse %q: %w", slotDarkMode, err)
	}
	return v, nil
}

// SaveDarkMode persists the dark mode preference.
func (s *Store) SaveDarkMode(on bool) error {
	return s.save(slotDarkMode, strconv.FormatBool(on))
}

func (s *Store) loadJSON(key string, v any) error {
	data, ok, err := s.load(key)
	if err != nil || !ok {
		return err
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("unmarshal %q: %w", key, err)
	}
	return nil
}

func (s *Store) saveJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	return s.save(key, string(data))
}
