package domain

import (
	"context"
	"testing"
	"time"

	"github.com/benjidennett/lego-app/internal/entities"
	"github.com/benjidennett/lego-app/internal/repository"
	"github.com/benjidennett/lego-app/internal/scoresheet"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) TeamByNumber(ctx context.Context, number int) (*entities.Team, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) Teams(ctx context.Context, filter entities.TeamFilter) ([]entities.Team, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *repoMock) DeleteTeam(ctx context.Context, number int) error {
	return m.Called(ctx, number).Error(0)
}

func (m *repoMock) ResetTeams(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *repoMock) RecordAttempt(ctx context.Context, teamNumber int, score int, note string) (*entities.Team, int, error) {
	args := m.Called(ctx, teamNumber, score, note)
	var t *entities.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*entities.Team)
	}
	return t, args.Int(1), args.Error(2)
}

func (m *repoMock) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) UserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) Users(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) DeleteUser(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

func (m *repoMock) SetPassword(ctx context.Context, username, passwordHash string) error {
	return m.Called(ctx, username, passwordHash).Error(0)
}

func (m *repoMock) Stage(ctx context.Context) (entities.Stage, error) {
	args := m.Called(ctx)
	return args.Get(0).(entities.Stage), args.Error(1)
}

func (m *repoMock) SetStageAndActivate(ctx context.Context, stage entities.Stage, keep int) error {
	return m.Called(ctx, stage, keep).Error(0)
}

var judge = entities.User{Username: "Judge", IsJudge: true}
var admin = entities.User{Username: "Admin", IsAdmin: true}

func newTestUsecase(repo repository.Repository, variant entities.Variant) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, time.Second, variant, time.Minute)
}

func filterSheet() scoresheet.Sheet {
	return scoresheet.Sheet{Completed: map[string]bool{"m05_filter": true}}
}

func TestSubmitScoreForbiddenForPlainUser(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	_, err := uc.SubmitScore(context.Background(), entities.User{Username: "guest"}, entities.ScoreSubmission{TeamNumber: 7})
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "TeamByNumber", mock.Anything, mock.Anything)
}

func TestSubmitScorePendingDoesNotMutate(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	team := &entities.Team{ID: 1, Number: 7, Name: "Rockets"}
	repo.On("TeamByNumber", mock.Anything, 7).Return(team, nil)

	// Repeating the calculate step any number of times never writes.
	for i := 0; i < 3; i++ {
		outcome, err := uc.SubmitScore(context.Background(), judge, entities.ScoreSubmission{
			TeamNumber: 7,
			Sheet:      filterSheet(),
		})
		require.NoError(t, err)
		require.Equal(t, entities.SubmissionPending, outcome.Status)
		require.Equal(t, 30, outcome.Score)
		require.Equal(t, 1, outcome.Attempt)
		require.NotEmpty(t, outcome.ConfirmToken)
	}

	repo.AssertNotCalled(t, "RecordAttempt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitScoreConfirmCommitsExactlyOnce(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	team := &entities.Team{ID: 1, Number: 7, Name: "Rockets"}
	repo.On("TeamByNumber", mock.Anything, 7).Return(team, nil)

	committed := &entities.Team{ID: 1, Number: 7, Name: "Rockets",
		Attempts: [entities.MaxAttempts]*entities.Attempt{{Score: 30}, nil, nil}}
	repo.On("RecordAttempt", mock.Anything, 7, 30, "").Return(committed, 1, nil).Once()

	pending, err := uc.SubmitScore(context.Background(), judge, entities.ScoreSubmission{
		TeamNumber: 7,
		Sheet:      filterSheet(),
	})
	require.NoError(t, err)
	require.Equal(t, entities.SubmissionPending, pending.Status)

	confirm := entities.ScoreSubmission{TeamNumber: 7, Confirm: true, ConfirmToken: pending.ConfirmToken}
	outcome, err := uc.SubmitScore(context.Background(), judge, confirm)
	require.NoError(t, err)
	require.Equal(t, entities.SubmissionCommitted, outcome.Status)
	require.Equal(t, 30, outcome.Score)
	require.Equal(t, 1, outcome.Attempt)

	// The token is spent; a second confirm cannot double-write.
	_, err = uc.SubmitScore(context.Background(), judge, confirm)
	require.ErrorIs(t, err, entities.ErrConfirmationExpired)
	repo.AssertExpectations(t)
}

func TestSubmitScoreConfirmTokenTeamMismatch(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	team := &entities.Team{ID: 1, Number: 7, Name: "Rockets"}
	repo.On("TeamByNumber", mock.Anything, 7).Return(team, nil)

	pending, err := uc.SubmitScore(context.Background(), judge, entities.ScoreSubmission{
		TeamNumber: 7,
		Sheet:      filterSheet(),
	})
	require.NoError(t, err)

	_, err = uc.SubmitScore(context.Background(), judge, entities.ScoreSubmission{
		TeamNumber:   9,
		Confirm:      true,
		ConfirmToken: pending.ConfirmToken,
	})
	require.ErrorIs(t, err, entities.ErrValidation)
	repo.AssertNotCalled(t, "RecordAttempt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitScorePracticeAutoConfirms(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	practice := &entities.Team{ID: 9, Number: entities.PracticeTeamNumber, Name: "Practice", IsPractice: true}
	repo.On("TeamByNumber", mock.Anything, entities.PracticeTeamNumber).Return(practice, nil)

	committed := &entities.Team{ID: 9, Number: entities.PracticeTeamNumber, Name: "Practice", IsPractice: true,
		Attempts: [entities.MaxAttempts]*entities.Attempt{{Score: 30}, nil, nil}}
	repo.On("RecordAttempt", mock.Anything, entities.PracticeTeamNumber, 30, "").Return(committed, 1, nil).Once()

	outcome, err := uc.SubmitScore(context.Background(), judge, entities.ScoreSubmission{
		TeamNumber: entities.PracticeTeamNumber,
		Sheet:      filterSheet(),
	})
	require.NoError(t, err)
	require.Equal(t, entities.SubmissionCommitted, outcome.Status)
	require.Equal(t, 30, outcome.Score)
	require.Empty(t, outcome.ConfirmToken)
	repo.AssertExpectations(t)
}

func TestSubmitScoreAttemptsExhausted(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	full := &entities.Team{ID: 1, Number: 7, Name: "Rockets",
		Attempts: [entities.MaxAttempts]*entities.Attempt{{Score: 10}, {Score: 20}, {Score: 0}}}
	repo.On("TeamByNumber", mock.Anything, 7).Return(full, nil)

	_, err := uc.SubmitScore(context.Background(), judge, entities.ScoreSubmission{
		TeamNumber: 7,
		Sheet:      filterSheet(),
	})
	require.ErrorIs(t, err, entities.ErrAttemptsExhausted)
	repo.AssertNotCalled(t, "RecordAttempt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitScoreInvalidSheet(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	team := &entities.Team{ID: 1, Number: 7, Name: "Rockets"}
	repo.On("TeamByNumber", mock.Anything, 7).Return(team, nil)

	_, err := uc.SubmitScore(context.Background(), judge, entities.ScoreSubmission{
		TeamNumber: 7,
		Sheet:      scoresheet.Sheet{Completed: map[string]bool{"m99_warp_drive": true}},
	})
	require.ErrorIs(t, err, entities.ErrValidation)
}

func TestSetStageRequiresAdmin(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	_, err := uc.SetStage(context.Background(), judge, int(entities.StageQuarterFinal))
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "SetStageAndActivate", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetStageOrdinalOutOfRange(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	_, err := uc.SetStage(context.Background(), admin, 9)
	require.ErrorIs(t, err, entities.ErrValidation)
}

func TestSetStageVariantGuard(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	_, err := uc.SetStage(context.Background(), admin, int(entities.StageRound2))
	require.ErrorIs(t, err, entities.ErrStageUnsupported)
	repo.AssertNotCalled(t, "SetStageAndActivate", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetStageQuarterFinalKeepsTopEight(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	repo.On("SetStageAndActivate", mock.Anything, entities.StageQuarterFinal, 8).Return(nil).Once()

	stage, err := uc.SetStage(context.Background(), admin, int(entities.StageQuarterFinal))
	require.NoError(t, err)
	require.Equal(t, entities.StageQuarterFinal, stage)
	repo.AssertExpectations(t)
}

func TestSetStageRound2AllowedForUK(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantUK)

	repo.On("SetStageAndActivate", mock.Anything, entities.StageRound2, 16).Return(nil).Once()

	stage, err := uc.SetStage(context.Background(), admin, int(entities.StageRound2))
	require.NoError(t, err)
	require.Equal(t, entities.StageRound2, stage)
	repo.AssertExpectations(t)
}

func TestAuthenticate(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &entities.User{Username: "Judge", PasswordHash: string(hash), IsJudge: true}
	repo.On("UserByUsername", mock.Anything, "Judge").Return(stored, nil)
	repo.On("UserByUsername", mock.Anything, "ghost").Return(nil, entities.ErrUserNotFound)

	got, err := uc.Authenticate(context.Background(), "Judge", "secret")
	require.NoError(t, err)
	require.True(t, got.IsJudge)

	_, err = uc.Authenticate(context.Background(), "Judge", "wrong")
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)

	// Unknown usernames fail the same way as bad passwords.
	_, err = uc.Authenticate(context.Background(), "ghost", "secret")
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestCreateTeamValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, entities.VariantBristol)

	_, err := uc.CreateTeam(context.Background(), admin, 0, "Rockets")
	require.ErrorIs(t, err, entities.ErrValidation)

	_, err = uc.CreateTeam(context.Background(), admin, 7, "   ")
	require.ErrorIs(t, err, entities.ErrValidation)

	_, err = uc.CreateTeam(context.Background(), judge, 7, "Rockets")
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything)
}
