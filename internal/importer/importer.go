// Package importer turns tabular spreadsheet data into question records.
// Import is a pure transform: its output replaces the bank wholesale, and
// a failed import leaves the bank untouched.
package importer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"quizdeck/internal/bank"
)

// Expected column order, row 0 being a header:
// id, theme, prompt, option1..option4, correctAnswer.
const minColumns = 8

const (
	colID      = 0
	colTheme   = 1
	colPrompt  = 2
	colOption1 = 3
	colCorrect = 7
)

// ErrEmptyWorkbook is returned when the workbook has no sheets or no rows.
var ErrEmptyWorkbook = errors.New("workbook contains no data")

// ParseFile reads the first sheet of an .xlsx workbook.
func ParseFile(path string) ([]bank.Question, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}
	return ParseRows(rows), nil
}

// ParseRows converts header-led rows into questions. Rows missing a prompt
// or a correct answer are skipped silently, matching a hand-maintained
// spreadsheet where trailing notes and blank lines are common.
func ParseRows(rows [][]string) []bank.Question {
	var questions []bank.Question
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < minColumns {
			continue
		}
		prompt := strings.TrimSpace(row[colPrompt])
		correct := strings.TrimSpace(row[colCorrect])
		if prompt == "" || correct == "" {
			continue
		}

		id := strings.TrimSpace(row[colID])
		if id == "" {
			// 1-based row position stands in for a missing id.
			id = strconv.Itoa(i + 1)
		}
		theme := strings.TrimSpace(row[colTheme])
		if theme == "" {
			theme = bank.DefaultTheme
		}

		var options []string
		for c := colOption1; c < colCorrect; c++ {
			if opt := strings.TrimSpace(row[c]); opt != "" {
				options = append(options, opt)
			}
		}

		questions = append(questions, bank.Question{
			ID:            id,
			Theme:         theme,
			Prompt:        prompt,
			Options:       options,
			CorrectAnswer: correct,
		})
	}
	return questions
}
