// Package domain contains application usecases orchestrating the
// competition scoring logic: scoreboard ranking.
package domain

import (
	"context"
	"sort"

	"github.com/benjidennett/lego-app/internal/entities"
)

// Scoreboard orders active, non-practice teams by best score for the
// current stage. Round stages split the order into three display bands;
// elimination stages present one flat list.
func (u *Usecase) Scoreboard(ctx context.Context) (entities.ScoreboardView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	stage, err := u.repo.Stage(ctx)
	if err != nil {
		return entities.ScoreboardView{}, err
	}

	teams, err := u.repo.Teams(ctx, entities.TeamFilter{ExcludePractice: true, ActiveOnly: true})
	if err != nil {
		return entities.ScoreboardView{}, err
	}

	ranked := rankTeams(teams)

	view := entities.ScoreboardView{Stage: stage, StageName: stage.String()}
	if stage.Elimination() {
		view.Bands = [][]entities.RankedTeam{ranked}
		return view, nil
	}

	view.Bands = [][]entities.RankedTeam{
		sliceBand(ranked, 0, 8),
		sliceBand(ranked, 8, 16),
		sliceBand(ranked, 16, len(ranked)),
	}
	return view, nil
}

// rankTeams sorts by highest score descending. Teams with no attempts
// compare below any scored team; ties break by team number ascending so
// the order is deterministic.
func rankTeams(teams []entities.Team) []entities.RankedTeam {
	sorted := make([]entities.Team, len(teams))
	copy(sorted, teams)

	sort.Slice(sorted, func(i, j int) bool {
		si, oki := sorted[i].HighestScore()
		sj, okj := sorted[j].HighestScore()
		if oki != okj {
			return oki
		}
		if oki && si != sj {
			return si > sj
		}
		return sorted[i].Number < sorted[j].Number
	})

	ranked := make([]entities.RankedTeam, 0, len(sorted))
	for i, t := range sorted {
		r := entities.RankedTeam{Rank: i + 1, Number: t.Number, Name: t.Name}
		if s, ok := t.HighestScore(); ok {
			score := s
			r.HighestScore = &score
		}
		ranked = append(ranked, r)
	}
	return ranked
}

func sliceBand(ranked []entities.RankedTeam, from, to int) []entities.RankedTeam {
	if from > len(ranked) {
		from = len(ranked)
	}
	if to > len(ranked) {
		to = len(ranked)
	}
	return ranked[from:to]
}
