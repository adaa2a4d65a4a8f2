package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStageNames(t *testing.T) {
	require.Equal(t, "round_1", StageRound1.String())
	require.Equal(t, "final", StageFinal.String())
	require.Equal(t, "unknown", Stage(9).String())
}

func TestStageValidity(t *testing.T) {
	require.True(t, StageRound1.Valid())
	require.True(t, StageFinal.Valid())
	require.False(t, Stage(-1).Valid())
	require.False(t, Stage(5).Valid())
}

func TestStageElimination(t *testing.T) {
	require.False(t, StageRound1.Elimination())
	require.False(t, StageRound2.Elimination())
	require.True(t, StageQuarterFinal.Elimination())
	require.True(t, StageFinal.Elimination())
}

func TestVariantStageSupport(t *testing.T) {
	require.False(t, VariantBristol.Supports(StageRound2))
	require.True(t, VariantUK.Supports(StageRound2))
	require.True(t, VariantBristol.Supports(StageQuarterFinal))
	require.False(t, VariantBristol.Supports(Stage(7)))
}

func TestVariantAdvanceCount(t *testing.T) {
	require.Zero(t, VariantBristol.AdvanceCount(StageRound1))
	require.Equal(t, 16, VariantUK.AdvanceCount(StageRound2))
	require.Equal(t, 8, VariantBristol.AdvanceCount(StageQuarterFinal))
	require.Equal(t, 4, VariantBristol.AdvanceCount(StageSemiFinal))
	require.Equal(t, 2, VariantBristol.AdvanceCount(StageFinal))
}
