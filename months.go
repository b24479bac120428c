package board

import (
	"strconv"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MonthSpan is a run of consecutive columns in the same month. EndCol is
// exclusive.
type MonthSpan struct {
	Name     string
	StartCol int
	EndCol   int
}

// Columns returns the number of columns the span covers.
func (m MonthSpan) Columns() int { return m.EndCol - m.StartCol }

// GroupMonths folds dates into spans, starting a new span whenever the
// month name differs from the previous span's.
func GroupMonths(dates []time.Time, monthName func(time.Time) string) []MonthSpan {
	var months []MonthSpan
	for _, d := range dates {
		name := monthName(d)
		if n := len(months); n > 0 && months[n-1].Name == name {
			months[n-1].EndCol++
			continue
		}
		start := 0
		if n := len(months); n > 0 {
			start = months[n-1].EndCol
		}
		months = append(months, MonthSpan{Name: name, StartCol: start, EndCol: start + 1})
	}
	return months
}

// DateFormatter produces the text of the date axis.
type DateFormatter interface {
	MonthName(t time.Time) string
	Day(t time.Time) string
}

// LocalizedDates formats months from a table of names, title-cased by the
// rules of Tag. Months missing from the table use their English name as is.
// Days are plain numerals.
type LocalizedDates struct {
	Names [12]string
	Tag   language.Tag
}

// MonthName implements DateFormatter.
func (f LocalizedDates) MonthName(t time.Time) string {
	name := f.Names[t.Month()-1]
	if name == "" {
		return t.Month().String()
	}
	return cases.Title(f.Tag).String(name)
}

// Day implements DateFormatter.
func (LocalizedDates) Day(t time.Time) string { return strconv.Itoa(t.Day()) }

// EnglishDates returns the default formatter: full English month names
// and day-of-month numerals.
func EnglishDates() LocalizedDates {
	return LocalizedDates{Tag: language.English}
}
