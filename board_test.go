package board

import (
	"fmt"
	"time"

	"github.com/runrig-coop/farm-flow-board/recording"
	"github.com/runrig-coop/farm-flow-board/resource"
	"github.com/runrig-coop/farm-flow-board/style"
)

var day0 = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func day(i int) time.Time { return day0.AddDate(0, 0, i) }

var (
	opSeed    = resource.Operation{ID: "op-seed", Name: "Seeding", LogType: resource.LogSeeding, Color: "#3cb371"}
	opHarvest = resource.Operation{ID: "op-harvest", Name: "Harvest", LogType: resource.LogHarvest, Color: "tomato"}
	opWeed    = resource.Operation{ID: "op-weed", Name: "Weeding", LogType: resource.LogActivity, Color: "#zzz"}
)

// testValues covers January 1 through February 5 over eight locations.
func testValues() AxisValues {
	locs := make([]resource.Location, 8)
	for i := range locs {
		locs[i] = resource.Location{ID: fmt.Sprintf("loc-%d", i), Name: fmt.Sprintf("Field %d", i+1)}
	}
	return AxisValues{
		X: resource.DateRange(day0, day(35)),
		Y: locs,
	}
}

func testTasks() resource.TaskMatrix {
	return resource.TaskMatrix{
		{ID: "loc-0", Name: "Field 1", Dates: []resource.OperationsByDate{
			{Date: day(0), Operations: []resource.Operation{opSeed}},
			{Date: day(4), Operations: []resource.Operation{opSeed, opHarvest}},
		}},
		{ID: "loc-2", Name: "Field 3", Dates: []resource.OperationsByDate{
			{Date: day(12), Operations: []resource.Operation{opHarvest}},
		}},
		{ID: "loc-5", Name: "Field 6", Dates: []resource.OperationsByDate{
			{Date: day(33), Operations: []resource.Operation{opSeed, opHarvest, opWeed}},
		}},
	}
}

// testStyle is the light default style: 40px cells, a 240px location axis
// and a 60px date axis. On a 640x220 surface that leaves 10 columns and 4
// rows.
func testStyle() style.Style { return style.Default(false) }

func ofType[C recording.Command](cmds []recording.Command) []C {
	var out []C
	for _, c := range cmds {
		if v, ok := c.(C); ok {
			out = append(out, v)
		}
	}
	return out
}
