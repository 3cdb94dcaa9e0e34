package bbt

import "errors"

// Validation errors returned by UpdateRatings. They are detected before any
// rating is modified, so a failed update never leaves a partially written
// rating set behind.
var (
	ErrTeamsRanksMismatch = errors.New("teams and ranks differ in length")
	ErrTooFewTeams        = errors.New("at least two teams are required")
	ErrEmptyTeam          = errors.New("team has no players")
)
