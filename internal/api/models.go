// Package api defines the transport DTOs for the HTTP surface.
package api

// ErrorCode is a machine-readable error discriminator.
type ErrorCode string

const (
	// VALIDATION marks malformed or out-of-range input.
	VALIDATION ErrorCode = "VALIDATION"
	// UNAUTHORIZED marks missing or bad credentials.
	UNAUTHORIZED ErrorCode = "UNAUTHORIZED"
	// FORBIDDEN marks a role check failure.
	FORBIDDEN ErrorCode = "FORBIDDEN"
	// NOTFOUND marks a missing resource.
	NOTFOUND ErrorCode = "NOT_FOUND"
	// NOATTEMPTS marks a team with all attempt slots used.
	NOATTEMPTS ErrorCode = "NO_ATTEMPTS_REMAINING"
	// STAGEUNSUPPORTED marks a stage the event variant forbids.
	STAGEUNSUPPORTED ErrorCode = "STAGE_UNSUPPORTED"
	// CONFIRMEXPIRED marks an unknown or already-used confirm token.
	CONFIRMEXPIRED ErrorCode = "CONFIRMATION_EXPIRED"
	// CONFLICT marks a uniqueness conflict.
	CONFLICT ErrorCode = "CONFLICT"
	// INTERNAL marks an operational failure.
	INTERNAL ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// ScoreSubmission is the request body for POST /judges/score.
type ScoreSubmission struct {
	TeamNumber   int             `json:"team_number"`
	Missions     map[string]bool `json:"missions,omitempty"`
	Note         string          `json:"note,omitempty"`
	Confirm      bool            `json:"confirm"`
	ConfirmToken string          `json:"confirm_token,omitempty"`
}

// ScoreOutcome is the response body for POST /judges/score.
type ScoreOutcome struct {
	Status       string `json:"status"`
	TeamNumber   int    `json:"team_number,omitempty"`
	TeamName     string `json:"team_name,omitempty"`
	Score        int    `json:"score"`
	Attempt      int    `json:"attempt,omitempty"`
	ConfirmToken string `json:"confirm_token,omitempty"`
	Message      string `json:"message"`
}

// AttemptSlot is one recorded run on a team.
type AttemptSlot struct {
	Attempt int    `json:"attempt"`
	Score   int    `json:"score"`
	Note    string `json:"note,omitempty"`
}

// Team is the transport model of a team.
type Team struct {
	Number       int           `json:"number"`
	Name         string        `json:"name"`
	IsPractice   bool          `json:"is_practice"`
	Active       bool          `json:"active"`
	Attempts     []AttemptSlot `json:"attempts"`
	HighestScore *int          `json:"highest_score,omitempty"`
}

// CreateTeamRequest is the request body for POST /admin/teams.
type CreateTeamRequest struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// SetStageRequest is the request body for PUT /admin/stage.
type SetStageRequest struct {
	Stage int `json:"stage"`
}

// StageResponse reports the current stage.
type StageResponse struct {
	Stage int    `json:"stage"`
	Name  string `json:"name"`
}

// RankedTeam is one scoreboard row.
type RankedTeam struct {
	Rank         int    `json:"rank"`
	Number       int    `json:"number"`
	Name         string `json:"name"`
	HighestScore *int   `json:"highest_score,omitempty"`
}

// Scoreboard is the response body for GET /scoreboard.
type Scoreboard struct {
	Stage     int            `json:"stage"`
	StageName string         `json:"stage_name"`
	Bands     [][]RankedTeam `json:"bands"`
}

// User is the transport model of an account. Password material never
// leaves the server.
type User struct {
	Username string `json:"username"`
	IsJudge  bool   `json:"is_judge"`
	IsAdmin  bool   `json:"is_admin"`
}

// CreateUserRequest is the request body for POST /admin/users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsJudge  bool   `json:"is_judge"`
	IsAdmin  bool   `json:"is_admin"`
}
