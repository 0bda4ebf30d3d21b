package history

import (
	"math"
	"time"

	"quizdeck/internal/bank"
	"quizdeck/internal/session"
)

// Record is the immutable trace of one finished test. Questions is the
// session's question snapshot; snapshots written before it was introduced
// lack it, which blocks the retest flows but nothing else.
type Record struct {
	Theme     string           `json:"theme"`
	Questions []bank.Question  `json:"questions,omitempty"`
	Answers   []session.Answer `json:"answers"`
	StartTime time.Time        `json:"startTime"`
	EndTime   time.Time        `json:"endTime"`
}

// HasQuestions reports whether the record carries its question snapshot.
func (r Record) HasQuestions() bool {
	return len(r.Questions) > 0
}

// Log is the append-only sequence of finished tests, oldest first.
type Log struct {
	records []Record
}

// NewLog creates a log over previously persisted records.
func NewLog(records []Record) *Log {
	return &Log{records: records}
}

// Append adds a finished test to the log.
func (l *Log) Append(r Record) {
	l.records = append(l.records, r)
}

// Len returns the number of recorded tests.
func (l *Log) Len() int {
	return len(l.records)
}

// Records returns all records, oldest first.
func (l *Log) Records() []Record {
	return l.records
}

// Last returns the most recently finished test.
func (l *Log) Last() (Record, bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[len(l.records)-1], true
}

// Recent returns up to n records, newest first.
func (l *Log) Recent(n int) []Record {
	if n > len(l.records) {
		n = len(l.records)
	}
	out := make([]Record, 0, n)
	for i := len(l.records) - 1; i >= len(l.records)-n; i-- {
		out = append(out, l.records[i])
	}
	return out
}

// ThemeStat aggregates answers for one theme.
type ThemeStat struct {
	Correct int
	Total   int
	Percent int
}

// Overall aggregates every answer across the whole log.
type Overall struct {
	TestCount           int
	QuestionCount       int
	CorrectCount        int
	AverageScorePercent int
	PerTheme            map[string]ThemeStat
}

// Overall computes lifetime statistics. Answers are bucketed by their own
// theme, not the session label, so a mixed-theme test contributes to each
// constituent theme. Empty denominators yield 0.
func (l *Log) Overall() Overall {
	o := Overall{
		TestCount: len(l.records),
		PerTheme:  make(map[string]ThemeStat),
	}
	for _, r := range l.records {
		for _, a := range r.Answers {
			o.QuestionCount++
			ts := o.PerTheme[a.Theme]
			ts.Total++
			if a.IsCorrect {
				o.CorrectCount++
				ts.Correct++
			}
			o.PerTheme[a.Theme] = ts
		}
	}
	o.AverageScorePercent = Percent(o.CorrectCount, o.QuestionCount)
	for theme, ts := range o.PerTheme {
		ts.Percent = Percent(ts.Correct, ts.Total)
		o.PerTheme[theme] = ts
	}
	return o
}

// Result is the scored outcome of a single record, for the results screen.
type Result struct {
	Correct  int
	Total    int
	Percent  int
	PerTheme map[string]ThemeStat
}

// Score computes the outcome of one record.
func Score(r Record) Result {
	res := Result{
		Total:    len(r.Answers),
		PerTheme: make(map[string]ThemeStat),
	}
	for _, a := range r.Answers {
		ts := res.PerTheme[a.Theme]
		ts.Total++
		if a.IsCorrect {
			res.Correct++
			ts.Correct++
		}
		res.PerTheme[a.Theme] = ts
	}
	res.Percent = Percent(res.Correct, res.Total)
	for theme, ts := range res.PerTheme {
		ts.Percent = Percent(ts.Correct, ts.Total)
		res.PerTheme[theme] = ts
	}
	return res
}

// Percent returns the integer percentage correct/total, rounding half away
// from zero. A zero total is 0, never a division error.
func Percent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
