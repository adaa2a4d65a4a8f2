// Package entities contains core business entities.
package entities

// RankedTeam is one scoreboard row. HighestScore is nil for teams with
// no recorded attempts; they sort below every scored team.
type RankedTeam struct {
	Rank         int
	Number       int
	Name         string
	HighestScore *int
}

// ScoreboardView is the ordered scoreboard for the current stage.
// Round stages carry three display bands (ranks 1-8, 9-16, 17+);
// elimination stages carry a single flat band.
type ScoreboardView struct {
	Stage     Stage
	StageName string
	Bands     [][]RankedTeam
}
