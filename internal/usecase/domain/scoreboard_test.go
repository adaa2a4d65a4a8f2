package domain

import (
	"context"
	"testing"

	"github.com/benjidennett/lego-app/internal/entities"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func team(number int, name string, scores ...int) entities.Team {
	t := entities.Team{Number: number, Name: name, Active: true}
	for i, s := range scores {
		score := s
		t.Attempts[i] = &entities.Attempt{Score: score}
	}
	return t
}

func TestRankTeamsOrdersByBestScore(t *testing.T) {
	ranked := rankTeams([]entities.Team{
		team(1, "A", 100, 180, 50),
		team(2, "B", 200),
		team(3, "C"),
	})

	require.Len(t, ranked, 3)
	require.Equal(t, "B", ranked[0].Name)
	require.Equal(t, "A", ranked[1].Name)
	require.Equal(t, "C", ranked[2].Name)
	require.Nil(t, ranked[2].HighestScore)
	require.Equal(t, []int{1, 2, 3}, []int{ranked[0].Rank, ranked[1].Rank, ranked[2].Rank})
}

func TestRankTeamsTieBreaksByNumber(t *testing.T) {
	ranked := rankTeams([]entities.Team{
		team(9, "Later", 150),
		team(4, "Earlier", 150),
	})

	require.Equal(t, 4, ranked[0].Number)
	require.Equal(t, 9, ranked[1].Number)
}

func TestRankTeamsZeroScoreBeatsNoAttempts(t *testing.T) {
	ranked := rankTeams([]entities.Team{
		team(2, "NoRuns"),
		team(5, "ZeroPoints", 0),
	})

	require.Equal(t, "ZeroPoints", ranked[0].Name)
	require.NotNil(t, ranked[0].HighestScore)
	require.Zero(t, *ranked[0].HighestScore)
	require.Equal(t, "NoRuns", ranked[1].Name)
}

func TestScoreboardRoundStageBands(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	teams := make([]entities.Team, 0, 18)
	for i := 1; i <= 18; i++ {
		teams = append(teams, team(i, "T", i*10))
	}
	repo.On("Stage", mock.Anything).Return(entities.StageRound1, nil)
	repo.On("Teams", mock.Anything, entities.TeamFilter{ExcludePractice: true, ActiveOnly: true}).
		Return(teams, nil)

	view, err := uc.Scoreboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, entities.StageRound1, view.Stage)
	require.Len(t, view.Bands, 3)
	require.Len(t, view.Bands[0], 8)
	require.Len(t, view.Bands[1], 8)
	require.Len(t, view.Bands[2], 2)
	require.Equal(t, 18, view.Bands[0][0].Number)
}

func TestScoreboardEliminationStageFlat(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	repo.On("Stage", mock.Anything).Return(entities.StageSemiFinal, nil)
	repo.On("Teams", mock.Anything, entities.TeamFilter{ExcludePractice: true, ActiveOnly: true}).
		Return([]entities.Team{team(2, "B", 200), team(1, "A", 180)}, nil)

	view, err := uc.Scoreboard(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Bands, 1)
	require.Len(t, view.Bands[0], 2)
	require.Equal(t, "B", view.Bands[0][0].Name)
}

func TestScoreboardSmallFieldBands(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	repo.On("Stage", mock.Anything).Return(entities.StageRound1, nil)
	repo.On("Teams", mock.Anything, entities.TeamFilter{ExcludePractice: true, ActiveOnly: true}).
		Return([]entities.Team{team(1, "A", 50)}, nil)

	view, err := uc.Scoreboard(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Bands, 3)
	require.Len(t, view.Bands[0], 1)
	require.Empty(t, view.Bands[1])
	require.Empty(t, view.Bands[2])
}
