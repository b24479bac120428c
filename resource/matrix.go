package resource

import "time"

// OperationsByDate holds the operations planned for one date, with the logs
// they came from.
type OperationsByDate struct {
	Date       time.Time   `yaml:"date"`
	Operations []Operation `yaml:"operations"`
	Tasks      []Log       `yaml:"tasks,omitempty"`
}

// DatesByLocation is one row of a TaskMatrix.
type DatesByLocation struct {
	ID    string             `yaml:"id"`
	Name  string             `yaml:"name"`
	Crop  *Crop              `yaml:"crop,omitempty"`
	Dates []OperationsByDate `yaml:"dates"`
}

// TaskMatrix maps locations to their dated operations. It is sparse: a
// missing location or date means no tasks.
type TaskMatrix []DatesByLocation

// Row returns the entry for a location id.
func (m TaskMatrix) Row(locationID string) (DatesByLocation, bool) {
	for _, row := range m {
		if row.ID == locationID {
			return row, true
		}
	}
	return DatesByLocation{}, false
}

// Lookup returns the operations for a location on a date, or nil.
func (m TaskMatrix) Lookup(locationID string, date time.Time) []Operation {
	row, ok := m.Row(locationID)
	if !ok {
		return nil
	}
	return row.On(date)
}

// On returns the operations of the first entry falling on date.
func (row DatesByLocation) On(date time.Time) []Operation {
	for _, rec := range row.Dates {
		if SameDate(rec.Date, date) {
			return rec.Operations
		}
	}
	return nil
}

// Count returns the number of operations in the matrix.
func (m TaskMatrix) Count() int {
	n := 0
	for _, row := range m {
		for _, rec := range row.Dates {
			n += len(rec.Operations)
		}
	}
	return n
}
