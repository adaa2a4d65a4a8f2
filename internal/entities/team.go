// Package entities contains core business entities.
package entities

// MaxAttempts is the number of scored runs a team gets per competition.
const MaxAttempts = 3

// PracticeTeamNumber is the reserved number of the single practice team.
const PracticeTeamNumber = -1

// Attempt is one recorded run. A zero score is a real result; an unset
// slot is represented by a nil *Attempt on the team.
type Attempt struct {
	Score int
	Note  string
}

// TeamFilter narrows team listings.
type TeamFilter struct {
	ExcludePractice bool
	ActiveOnly      bool
}

// Team is a domain model of a competing team.
type Team struct {
	ID         int64
	Number     int
	Name       string
	IsPractice bool
	Active     bool
	Attempts   [MaxAttempts]*Attempt
}

// ScoredAttempts returns the set attempt slots in order.
func (t Team) ScoredAttempts() []Attempt {
	out := make([]Attempt, 0, MaxAttempts)
	for _, a := range t.Attempts {
		if a != nil {
			out = append(out, *a)
		}
	}
	return out
}

// NextAttempt returns the 1-based number of the next free slot.
// It returns MaxAttempts+1 when the team has no attempts remaining.
func (t Team) NextAttempt() int {
	return len(t.ScoredAttempts()) + 1
}

// HighestScore returns the best recorded score. ok is false when the
// team has no attempts yet.
func (t Team) HighestScore() (score int, ok bool) {
	for _, a := range t.Attempts {
		if a == nil {
			continue
		}
		if !ok || a.Score > score {
			score = a.Score
			ok = true
		}
	}
	return score, ok
}
