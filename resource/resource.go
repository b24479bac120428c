package resource

import "time"

// Kind identifies an entity type.
type Kind string

const (
	AssetLand  Kind = "asset--land"
	AssetPlant Kind = "asset--plant"

	LogActivity Kind = "log--activity"
	LogHarvest  Kind = "log--harvest"
	LogInput    Kind = "log--input"
	LogSeeding  Kind = "log--seeding"

	PlanFarmFlow Kind = "plan--farm_flow_board"

	TermPlant     Kind = "taxonomy_term--plant"
	TermOperation Kind = "taxonomy_term--standard_operating_procedure"
)

// IsLog reports whether k is one of the log kinds.
func (k Kind) IsLog() bool {
	switch k {
	case LogActivity, LogHarvest, LogInput, LogSeeding:
		return true
	}
	return false
}

// Identifier references another entity by id.
type Identifier struct {
	ID   string `yaml:"id"`
	Type Kind   `yaml:"type,omitempty"`
}

// Location is a land asset. Boards use one row per location.
type Location struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Crop is a plant taxonomy term.
type Crop struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}

// Operation is a standard operating procedure. Color is a CSS-like color
// string; an empty color renders with the style's default marker fill.
type Operation struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	LogType Kind   `yaml:"logType,omitempty"`
	Color   string `yaml:"color,omitempty"`
}

// Plant is a plant asset growing in a location.
type Plant struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Crop     string `yaml:"crop"`
	Location string `yaml:"location"`
}

// Log records a task on a date.
type Log struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Type      Kind      `yaml:"type"`
	Date      time.Time `yaml:"date"`
	Location  string    `yaml:"location,omitempty"`
	Operation string    `yaml:"operation,omitempty"`
	Plant     string    `yaml:"plant,omitempty"`
	Notes     string    `yaml:"notes,omitempty"`
}

// Board describes a farm flow plan.
type Board struct {
	ID    string    `yaml:"id"`
	Name  string    `yaml:"name"`
	Start time.Time `yaml:"start"`
	End   time.Time `yaml:"end"`
}

// SameDate reports whether a and b fall on the same calendar day, each in
// its own location.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateRange returns every calendar day from start through end inclusive,
// at midnight in start's location. It returns nil when end precedes start.
func DateRange(start, end time.Time) []time.Time {
	y, m, d := start.Date()
	first := time.Date(y, m, d, 0, 0, 0, 0, start.Location())
	ey, em, ed := end.In(start.Location()).Date()
	last := time.Date(ey, em, ed, 0, 0, 0, 0, start.Location())
	if last.Before(first) {
		return nil
	}
	var dates []time.Time
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day)
	}
	return dates
}
