package board

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/runrig-coop/farm-flow-board/resource"
)

func TestGroupMonths(t *testing.T) {
	name := EnglishDates().MonthName
	tests := []struct {
		name  string
		dates []time.Time
		want  []MonthSpan
	}{
		{
			name:  "january into february",
			dates: testValues().X,
			want:  []MonthSpan{{"January", 0, 31}, {"February", 31, 36}},
		},
		{
			name:  "year boundary",
			dates: resource.DateRange(time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
			want:  []MonthSpan{{"December", 0, 2}, {"January", 2, 4}},
		},
		{
			name:  "single day",
			dates: []time.Time{day(40)},
			want:  []MonthSpan{{"February", 0, 1}},
		},
		{
			name:  "empty",
			dates: nil,
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupMonths(tt.dates, name)
			if len(got) != len(tt.want) {
				t.Fatalf("GroupMonths() = %+v, want %+v", got, tt.want)
			}
			total := 0
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span %d = %+v, want %+v", i, got[i], tt.want[i])
				}
				total += got[i].Columns()
			}
			if total != len(tt.dates) {
				t.Errorf("spans cover %d columns, want %d", total, len(tt.dates))
			}
		})
	}
}

func TestLocalizedDates(t *testing.T) {
	french := LocalizedDates{
		Names: [12]string{"janvier", "février", "", "avril"},
		Tag:   language.French,
	}
	tests := []struct {
		date time.Time
		want string
	}{
		{day(0), "Janvier"},
		{day(31), "Février"},
		{day(60), "March"},
	}
	for _, tt := range tests {
		if got := french.MonthName(tt.date); got != tt.want {
			t.Errorf("MonthName(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
	if got := french.Day(day(4)); got != "5" {
		t.Errorf("Day() = %q, want %q", got, "5")
	}
}

func TestEnglishDates(t *testing.T) {
	f := EnglishDates()
	if f.Names != ([12]string{}) {
		t.Errorf("EnglishDates().Names = %q, want an empty table", f.Names)
	}
	for m := time.January; m <= time.December; m++ {
		d := time.Date(2024, m, 15, 0, 0, 0, 0, time.UTC)
		if got := f.MonthName(d); got != m.String() {
			t.Errorf("MonthName(%v) = %q, want %q", m, got, m.String())
		}
	}
	if got := f.Day(day(30)); got != "31" {
		t.Errorf("Day() = %q, want 31", got)
	}
}
