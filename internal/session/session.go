package session

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"quizdeck/internal/bank"
)

var (
	// ErrAnswerRequired is returned by Advance when the current question has
	// no recorded answer and it is not the final question.
	ErrAnswerRequired = errors.New("answer the current question before continuing")

	// ErrOptionOutOfRange is returned when an option index does not exist on
	// the current question.
	ErrOptionOutOfRange = errors.New("selected option out of range")
)

// optionLetters labels options A through D in display order.
var optionLetters = []string{"A", "B", "C", "D"}

// OptionLetter returns the display letter for an option index, or "" when
// the index is out of the labeled range.
func OptionLetter(i int) string {
	if i < 0 || i >= len(optionLetters) {
		return ""
	}
	return optionLetters[i]
}

// Answer records one response within a session. SelectedOption is the
// display letter; it is empty (with IsCorrect false) for questions that
// were still unanswered when the session finished.
type Answer struct {
	QuestionID     string    `json:"questionId"`
	Theme          string    `json:"theme"`
	SelectedOption string    `json:"selectedOption,omitempty"`
	SelectedText   string    `json:"selectedOptionText,omitempty"`
	IsCorrect      bool      `json:"isCorrect"`
	Timestamp      time.Time `json:"timestamp"`
}

// Session is one in-progress or paused test attempt. Questions is an
// immutable snapshot taken when the test was built; later bank edits do not
// reach it. At most one answer exists per question, and the first answer
// recorded for a question is final.
type Session struct {
	ID           string          `json:"id"`
	Theme        string          `json:"theme"`
	Questions    []bank.Question `json:"questions"`
	CurrentIndex int             `json:"currentIndex"`
	Answers      []Answer        `json:"answers"`
	StartTime    time.Time       `json:"startTime"`
	EndTime      *time.Time      `json:"endTime,omitempty"`
}

// New starts a session over a snapshot of the given questions. The caller
// (test builder) guarantees a non-empty selection.
func New(questions []bank.Question, theme string) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Theme:     theme,
		Questions: bank.CloneAll(questions),
		StartTime: time.Now(),
	}
}

// Len returns the number of questions in the session.
func (s *Session) Len() int {
	return len(s.Questions)
}

// Current returns the question at the current index.
func (s *Session) Current() bank.Question {
	return s.Questions[s.CurrentIndex]
}

// AtLast reports whether the current index is the final question.
func (s *Session) AtLast() bool {
	return s.CurrentIndex == len(s.Questions)-1
}

// AnswerFor returns the recorded answer for a question id, if any.
func (s *Session) AnswerFor(questionID string) (Answer, bool) {
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return Answer{}, false
}

// Answered reports whether the question id already has a recorded answer.
func (s *Session) Answered(questionID string) bool {
	_, ok := s.AnswerFor(questionID)
	return ok
}

// CorrectCount returns the number of correct answers recorded so far.
func (s *Session) CorrectCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}

// RecordAnswer records the selection for the current question and applies
// the result to the bank's lifetime counters. A question that already has
// an answer is left untouched and the existing answer is returned with
// recorded=false: the first answer per question is final for the session.
//
// Correctness is decided by comparing the selected option's text against
// the question's correct answer, never by position, so reordering the
// displayed options cannot flip the result.
func (s *Session) RecordAnswer(b *bank.Bank, optionIndex int) (ans Answer, recorded bool, err error) {
	q := s.Current()
	if existing, ok := s.AnswerFor(q.ID); ok {
		return existing, false, nil
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return Answer{}, false, ErrOptionOutOfRange
	}

	text := q.Options[optionIndex]
	ans = Answer{
		QuestionID:     q.ID,
		Theme:          q.Theme,
		SelectedOption: OptionLetter(optionIndex),
		SelectedText:   text,
		IsCorrect:      text == q.CorrectAnswer,
		Timestamp:      time.Now(),
	}
	s.Answers = append(s.Answers, ans)
	b.RecordResult(q.ID, ans.IsCorrect)
	return ans, true, nil
}

// Advance moves to the next question. On the final question it reports
// done=true instead, leaving the index in place so the caller can finish
// the session. Anywhere else an unanswered current question is an error.
func (s *Session) Advance() (done bool, err error) {
	if s.AtLast() {
		return true, nil
	}
	if !s.Answered(s.Current().ID) {
		return false, ErrAnswerRequired
	}
	s.CurrentIndex++
	return false, nil
}

// Retreat moves to the previous question. No-op at index 0.
func (s *Session) Retreat() {
	if s.CurrentIndex > 0 {
		s.CurrentIndex--
	}
}

// Finish completes the session. Every question still unanswered gets a
// synthetic incorrect answer (and an incorrect tick on the bank counters),
// then the answers are sorted into question order so downstream consumers
// see them in presentation order regardless of how the user navigated.
func (s *Session) Finish(b *bank.Bank) {
	now := time.Now()
	for _, q := range s.Questions {
		if s.Answered(q.ID) {
			continue
		}
		s.Answers = append(s.Answers, Answer{
			QuestionID: q.ID,
			Theme:      q.Theme,
			IsCorrect:  false,
			Timestamp:  now,
		})
		b.RecordResult(q.ID, false)
	}

	pos := make(map[string]int, len(s.Questions))
	for i, q := range s.Questions {
		pos[q.ID] = i
	}
	sort.SliceStable(s.Answers, func(i, j int) bool {
		return pos[s.Answers[i].QuestionID] < pos[s.Answers[j].QuestionID]
	})

	s.EndTime = &now
}
