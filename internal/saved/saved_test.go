package saved

import (
	"errors"
	"testing"
	"time"

	"quizdeck/internal/bank"
	"quizdeck/internal/session"
)

func testSession(theme string) session.Session {
	s := session.New([]bank.Question{
		{ID: "1", Theme: "A", Prompt: "q?", Options: []string{"x", "y"}, CorrectAnswer: "x"},
	}, theme)
	return *s
}

func TestInsert_BelowCapacityAppends(t *testing.T) {
	st := NewStore(nil)
	now := time.Now()

	st.Insert(testSession("one"), now)
	st.Insert(testSession("two"), now.Add(time.Minute))

	if st.Len() != 2 {
		t.Errorf("Len = %d, want 2", st.Len())
	}
}

func TestInsert_AtCapacityReplacesOldest(t *testing.T) {
	st := NewStore(nil)
	base := time.Now()

	st.Insert(testSession("first"), base.Add(2*time.Minute))
	oldest := st.Insert(testSession("second"), base) // stalest savedAt
	st.Insert(testSession("third"), base.Add(time.Minute))

	st.Insert(testSession("fourth"), base.Add(3*time.Minute))

	if st.Len() != Capacity {
		t.Fatalf("Len = %d, want %d", st.Len(), Capacity)
	}
	for _, e := range st.Entries() {
		if e.ID == oldest.ID {
			t.Error("entry with the oldest savedAt survived eviction")
		}
	}
	themes := make(map[string]bool)
	for _, e := range st.Entries() {
		themes[e.Session.Theme] = true
	}
	for _, want := range []string{"first", "third", "fourth"} {
		if !themes[want] {
			t.Errorf("expected session %q to remain", want)
		}
	}
}

func TestResume_RemovesEntry(t *testing.T) {
	st := NewStore(nil)
	e := st.Insert(testSession("paused"), time.Now())

	sess, err := st.Resume(e.ID)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if sess.Theme != "paused" {
		t.Errorf("Theme = %q, want paused", sess.Theme)
	}
	if st.Len() != 0 {
		t.Errorf("Len = %d after resume, want 0", st.Len())
	}

	if _, err := st.Resume(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Resume = %v, want ErrNotFound", err)
	}
}

func TestRemove(t *testing.T) {
	st := NewStore(nil)
	e := st.Insert(testSession("doomed"), time.Now())

	if err := st.Remove(e.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := st.Remove(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove again = %v, want ErrNotFound", err)
	}
}
