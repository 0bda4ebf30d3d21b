package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quizdeck/internal/bank"
	"quizdeck/internal/history"
	"quizdeck/internal/saved"
	"quizdeck/internal/session"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "quizdeck.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestQuestions_RoundTrip(t *testing.T) {
	s := testStore(t)

	// Unwritten slot loads empty, not an error.
	qs, err := s.LoadQuestions()
	require.NoError(t, err)
	require.Empty(t, qs)

	in := []bank.Question{
		{ID: "1", Theme: "A", Prompt: "q?", Options: []string{"x", "y"}, CorrectAnswer: "x", AnsweredCorrectly: 2},
	}
	require.NoError(t, s.SaveQuestions(in))

	out, err := s.LoadQuestions()
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestQuestions_OverwriteWholesale(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.SaveQuestions([]bank.Question{
		{ID: "1", Theme: "A", Prompt: "old?", Options: []string{"x", "y"}, CorrectAnswer: "x"},
		{ID: "2", Theme: "B", Prompt: "gone?", Options: []string{"p", "q"}, CorrectAnswer: "p"},
	}))
	require.NoError(t, s.SaveQuestions([]bank.Question{
		{ID: "9", Theme: "C", Prompt: "new?", Options: []string{"m", "n"}, CorrectAnswer: "n"},
	}))

	out, err := s.LoadQuestions()
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "9", out[0].ID)
}

func TestHistory_RoundTrip(t *testing.T) {
	s := testStore(t)

	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	in := []history.Record{{
		Theme: "A",
		Questions: []bank.Question{
			{ID: "1", Theme: "A", Prompt: "q?", Options: []string{"x", "y"}, CorrectAnswer: "x"},
		},
		Answers: []session.Answer{
			{QuestionID: "1", Theme: "A", SelectedOption: "A", SelectedText: "x", IsCorrect: true, Timestamp: start},
		},
		StartTime: start,
		EndTime:   start.Add(5 * time.Minute),
	}}
	require.NoError(t, s.SaveHistory(in))

	out, err := s.LoadHistory()
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestSavedTests_RoundTrip(t *testing.T) {
	s := testStore(t)

	sess := session.New([]bank.Question{
		{ID: "1", Theme: "A", Prompt: "q?", Options: []string{"x", "y"}, CorrectAnswer: "x"},
	}, "A")
	st := saved.NewStore(nil)
	st.Insert(*sess, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))

	require.NoError(t, s.SaveSavedTests(st.Entries()))

	out, err := s.LoadSavedTests()
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, sess.ID, out[0].Session.ID)
	require.Equal(t, "A", out[0].Session.Theme)
}

func TestDarkMode(t *testing.T) {
	s := testStore(t)

	on, err := s.LoadDarkMode()
	require.NoError(t, err)
	require.False(t, on)

	require.NoError(t, s.SaveDarkMode(true))
	on, err = s.LoadDarkMode()
	require.NoError(t, err)
	require.True(t, on)
}
