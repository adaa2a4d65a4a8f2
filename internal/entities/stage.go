// Package entities contains core business entities.
package entities

// Stage is an ordinal phase of the competition.
type Stage int

const (
	// StageRound1 is the opening round.
	StageRound1 Stage = iota
	// StageRound2 is the second round, only run at the UK final.
	StageRound2
	// StageQuarterFinal starts the elimination stages.
	StageQuarterFinal
	// StageSemiFinal follows the quarter final.
	StageSemiFinal
	// StageFinal decides the winner.
	StageFinal
)

var stageNames = [...]string{"round_1", "round_2", "quarter_final", "semi_final", "final"}

// Valid reports whether the ordinal is inside the fixed sequence.
func (s Stage) Valid() bool {
	return s >= StageRound1 && s <= StageFinal
}

// Elimination reports whether the stage presents a flat knockout scoreboard
// rather than the banded round layout.
func (s Stage) Elimination() bool {
	return s >= StageQuarterFinal
}

func (s Stage) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return stageNames[s]
}

// Variant is a configuration profile selecting which stages and
// advancement rules apply for a regional competition format.
type Variant string

const (
	// VariantBristol is the regional format; it has no round 2.
	VariantBristol Variant = "bristol"
	// VariantUK is the national final format.
	VariantUK Variant = "uk"
)

// Valid reports whether the variant is known.
func (v Variant) Valid() bool {
	return v == VariantBristol || v == VariantUK
}

// Supports reports whether the variant runs the given stage.
func (v Variant) Supports(s Stage) bool {
	if !s.Valid() {
		return false
	}
	if v == VariantBristol && s == StageRound2 {
		return false
	}
	return true
}

// AdvanceCount returns how many teams stay active entering the stage.
// Zero means every team remains active.
func (v Variant) AdvanceCount(s Stage) int {
	switch s {
	case StageRound2:
		return 16
	case StageQuarterFinal:
		return 8
	case StageSemiFinal:
		return 4
	case StageFinal:
		return 2
	default:
		return 0
	}
}
