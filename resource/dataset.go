package resource

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Dataset is a self-contained farm plan: the board's date range and every
// record needed to build its TaskMatrix.
type Dataset struct {
	Board      Board       `yaml:"board"`
	Locations  []Location  `yaml:"locations"`
	Operations []Operation `yaml:"operations"`
	Crops      []Crop      `yaml:"crops,omitempty"`
	Plants     []Plant     `yaml:"plants,omitempty"`
	Logs       []Log       `yaml:"logs"`
}

// Load reads a YAML dataset from path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("resource: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Decode reads a YAML dataset from r and checks its references.
func Decode(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := yaml.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("resource: decode dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks that every log references known records.
func (ds *Dataset) Validate() error {
	locations := make(map[string]bool, len(ds.Locations))
	for _, l := range ds.Locations {
		if l.ID == "" {
			return fmt.Errorf("resource: location %q has no id", l.Name)
		}
		locations[l.ID] = true
	}
	operations := make(map[string]bool, len(ds.Operations))
	for _, op := range ds.Operations {
		operations[op.ID] = true
	}
	plants := make(map[string]Plant, len(ds.Plants))
	for _, p := range ds.Plants {
		plants[p.ID] = p
	}
	for _, lg := range ds.Logs {
		if lg.Type != "" && !lg.Type.IsLog() {
			return fmt.Errorf("resource: log %q has non-log type %q", lg.ID, lg.Type)
		}
		if lg.Operation != "" && !operations[lg.Operation] {
			return fmt.Errorf("resource: log %q references unknown operation %q", lg.ID, lg.Operation)
		}
		loc := lg.Location
		if loc == "" && lg.Plant != "" {
			p, ok := plants[lg.Plant]
			if !ok {
				return fmt.Errorf("resource: log %q references unknown plant %q", lg.ID, lg.Plant)
			}
			loc = p.Location
		}
		if loc != "" && !locations[loc] {
			return fmt.Errorf("resource: log %q references unknown location %q", lg.ID, loc)
		}
	}
	return nil
}

// Dates returns every day of the board's date range.
func (ds *Dataset) Dates() []time.Time {
	return DateRange(ds.Board.Start, ds.Board.End)
}

// Matrix groups the dataset's logs by location and date. A log's location
// is its own, or that of its plant. Logs without an operation or location
// are left out. Dates within a row are in ascending order and operations
// keep log order.
func (ds *Dataset) Matrix() TaskMatrix {
	ops := make(map[string]Operation, len(ds.Operations))
	for _, op := range ds.Operations {
		ops[op.ID] = op
	}
	crops := make(map[string]Crop, len(ds.Crops))
	for _, c := range ds.Crops {
		crops[c.ID] = c
	}
	plants := make(map[string]Plant, len(ds.Plants))
	cropAt := make(map[string]Crop)
	for _, p := range ds.Plants {
		plants[p.ID] = p
		if c, ok := crops[p.Crop]; ok {
			if _, seen := cropAt[p.Location]; !seen {
				cropAt[p.Location] = c
			}
		}
	}

	byLocation := make(map[string][]OperationsByDate)
	for _, lg := range ds.Logs {
		op, ok := ops[lg.Operation]
		if !ok {
			continue
		}
		loc := lg.Location
		if loc == "" {
			loc = plants[lg.Plant].Location
		}
		if loc == "" {
			continue
		}
		recs := byLocation[loc]
		i := 0
		for i < len(recs) && !SameDate(recs[i].Date, lg.Date) {
			i++
		}
		if i == len(recs) {
			recs = append(recs, OperationsByDate{Date: lg.Date})
		}
		recs[i].Operations = append(recs[i].Operations, op)
		recs[i].Tasks = append(recs[i].Tasks, lg)
		byLocation[loc] = recs
	}

	var m TaskMatrix
	for _, l := range ds.Locations {
		recs, ok := byLocation[l.ID]
		if !ok {
			continue
		}
		sort.SliceStable(recs, func(i, j int) bool { return recs[i].Date.Before(recs[j].Date) })
		row := DatesByLocation{ID: l.ID, Name: l.Name, Dates: recs}
		if c, ok := cropAt[l.ID]; ok {
			row.Crop = &c
		}
		m = append(m, row)
	}
	return m
}
