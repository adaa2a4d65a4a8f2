// Package scoresheet turns a judge's mission sheet into a point value.
// The catalog mirrors the season's mission list; scoring is a pure
// function of the sheet so the workflow layer can treat it as data in,
// points out.
package scoresheet

import (
	"fmt"
	"sort"
)

// Mission is one scorable task on the table.
type Mission struct {
	ID     string
	Info   string
	Points int
}

// Catalog lists the season's missions keyed by ID.
var Catalog = map[string]Mission{
	"m01_space_travel":   {ID: "m01_space_travel", Info: "Send the payload rolling down the ramp.", Points: 20},
	"m02_solar_panel":    {ID: "m02_solar_panel", Info: "Angle both solar panels toward your field.", Points: 20},
	"m03_3d_printing":    {ID: "m03_3d_printing", Info: "Eject the 2x4 brick from the printer.", Points: 20},
	"m04_crater_cross":   {ID: "m04_crater_cross", Info: "Cross the craters model completely.", Points: 20},
	"m05_filter":         {ID: "m05_filter", Info: "Move the filter north until the lock latch drops.", Points: 30},
	"m06_stasis_chamber": {ID: "m06_stasis_chamber", Info: "Free the stasis chamber from its lock.", Points: 30},
	"m07_escape_velocity": {ID: "m07_escape_velocity", Info: "Strike the impact plate hard enough to hold the spacecraft up.",
		Points: 40},
	"m08_aerobic_exercise": {ID: "m08_aerobic_exercise", Info: "Advance the pointer fully on the exercise machine.",
		Points: 40},
}

// Sheet is raw form input for one run: which missions were completed,
// plus an optional judge note carried onto the attempt.
type Sheet struct {
	Completed map[string]bool
	Note      string
}

// Points computes the score for a sheet. Unknown mission IDs make the
// whole sheet invalid; a nil or empty sheet scores zero.
func Points(s Sheet) (int, error) {
	total := 0
	for id, done := range s.Completed {
		m, ok := Catalog[id]
		if !ok {
			return 0, fmt.Errorf("unknown mission: %s", id)
		}
		if done {
			total += m.Points
		}
	}
	return total, nil
}

// Missions returns the catalog ordered by ID for stable form rendering.
func Missions() []Mission {
	out := make([]Mission, 0, len(Catalog))
	for _, m := range Catalog {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
