package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTeamNextAttempt(t *testing.T) {
	var team Team
	require.Equal(t, 1, team.NextAttempt())

	team.Attempts[0] = &Attempt{Score: 120}
	require.Equal(t, 2, team.NextAttempt())

	team.Attempts[1] = &Attempt{Score: 90}
	team.Attempts[2] = &Attempt{Score: 150}
	require.Equal(t, MaxAttempts+1, team.NextAttempt())
}

func TestTeamHighestScore(t *testing.T) {
	var team Team

	_, ok := team.HighestScore()
	require.False(t, ok)

	team.Attempts[0] = &Attempt{Score: 120}
	team.Attempts[1] = &Attempt{Score: 150}
	team.Attempts[2] = &Attempt{Score: 90}

	best, ok := team.HighestScore()
	require.True(t, ok)
	require.Equal(t, 150, best)
}

func TestTeamZeroScoreIsSet(t *testing.T) {
	var team Team
	team.Attempts[0] = &Attempt{Score: 0}

	best, ok := team.HighestScore()
	require.True(t, ok)
	require.Zero(t, best)
	require.Len(t, team.ScoredAttempts(), 1)
}

func TestScoredAttemptsKeepsOrder(t *testing.T) {
	var team Team
	team.Attempts[0] = &Attempt{Score: 10, Note: "first"}
	team.Attempts[1] = &Attempt{Score: 20}

	got := team.ScoredAttempts()
	require.Len(t, got, 2)
	require.Equal(t, "first", got[0].Note)
	require.Equal(t, 20, got[1].Score)
}
