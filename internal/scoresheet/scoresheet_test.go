package scoresheet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointsEmptySheet(t *testing.T) {
	got, err := Points(Sheet{})
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestPointsSumsCompletedMissions(t *testing.T) {
	got, err := Points(Sheet{Completed: map[string]bool{
		"m05_filter":       true,
		"m01_space_travel": true,
		"m02_solar_panel":  false,
	}})
	require.NoError(t, err)
	require.Equal(t, 50, got)
}

func TestPointsUnknownMission(t *testing.T) {
	_, err := Points(Sheet{Completed: map[string]bool{"m99_warp_drive": true}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown mission")
}

func TestMissionsOrderedByID(t *testing.T) {
	ms := Missions()
	require.Len(t, ms, len(Catalog))
	for i := 1; i < len(ms); i++ {
		require.Less(t, ms[i-1].ID, ms[i].ID)
	}
}
