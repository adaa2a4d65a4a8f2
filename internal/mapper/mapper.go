// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/benjidennett/lego-app/internal/api"
	"github.com/benjidennett/lego-app/internal/entities"
	"github.com/benjidennett/lego-app/internal/scoresheet"
)

// FromAPISubmission builds an entities.ScoreSubmission from transport DTO.
func FromAPISubmission(src api.ScoreSubmission) entities.ScoreSubmission {
	return entities.ScoreSubmission{
		TeamNumber: src.TeamNumber,
		Sheet: scoresheet.Sheet{
			Completed: src.Missions,
			Note:      src.Note,
		},
		Confirm:      src.Confirm,
		ConfirmToken: src.ConfirmToken,
	}
}

// ToAPIOutcome maps entities.ScoreOutcome to transport model.
func ToAPIOutcome(o entities.ScoreOutcome) api.ScoreOutcome {
	return api.ScoreOutcome{
		Status:       string(o.Status),
		TeamNumber:   o.TeamNumber,
		TeamName:     o.TeamName,
		Score:        o.Score,
		Attempt:      o.Attempt,
		ConfirmToken: o.ConfirmToken,
		Message:      o.Message,
	}
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(t entities.Team) api.Team {
	attempts := make([]api.AttemptSlot, 0, entities.MaxAttempts)
	for i, a := range t.Attempts {
		if a == nil {
			continue
		}
		attempts = append(attempts, api.AttemptSlot{Attempt: i + 1, Score: a.Score, Note: a.Note})
	}

	out := api.Team{
		Number:     t.Number,
		Name:       t.Name,
		IsPractice: t.IsPractice,
		Active:     t.Active,
		Attempts:   attempts,
	}
	if s, ok := t.HighestScore(); ok {
		score := s
		out.HighestScore = &score
	}
	return out
}

// ToAPITeamList maps a team slice.
func ToAPITeamList(teams []entities.Team) []api.Team {
	out := make([]api.Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, ToAPITeam(t))
	}
	return out
}

// ToAPIScoreboard maps entities.ScoreboardView to transport model.
func ToAPIScoreboard(v entities.ScoreboardView) api.Scoreboard {
	bands := make([][]api.RankedTeam, 0, len(v.Bands))
	for _, band := range v.Bands {
		rows := make([]api.RankedTeam, 0, len(band))
		for _, r := range band {
			rows = append(rows, api.RankedTeam{
				Rank:         r.Rank,
				Number:       r.Number,
				Name:         r.Name,
				HighestScore: r.HighestScore,
			})
		}
		bands = append(bands, rows)
	}
	return api.Scoreboard{Stage: int(v.Stage), StageName: v.StageName, Bands: bands}
}

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	return api.User{Username: u.Username, IsJudge: u.IsJudge, IsAdmin: u.IsAdmin}
}

// ToAPIUserList maps a user slice.
func ToAPIUserList(users []entities.User) []api.User {
	out := make([]api.User, 0, len(users))
	for _, u := range users {
		out = append(out, ToAPIUser(u))
	}
	return out
}
