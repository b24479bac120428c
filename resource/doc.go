// Package resource defines the farm records a board displays: land
// locations, operations (standard operating procedures), crops and logs,
// and the sparse TaskMatrix that maps a (location, date) cell to the
// operations planned there.
//
// Datasets can be loaded from YAML with Load and turned into the values a
// board renders with Dataset.Dates, Dataset.Locations and Dataset.Matrix.
package resource
