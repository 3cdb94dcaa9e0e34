package bbt

import "strconv"

// Default parameters of the 0-50 rating scale used by the paper. A fresh
// player sits at the middle of the scale with a third of it as uncertainty.
const (
	DefaultMu    = 25.0
	DefaultSigma = DefaultMu / 3.0
)

// conservativeK is the number of standard deviations subtracted from the
// mean to obtain the conservative skill estimate.
const conservativeK = 3.0

// Rating is the belief about a single player's skill: a normal distribution
// with mean mu and standard deviation sigma. Ratings are created by the
// caller, handed to a Rater by pointer and updated in place; sigma must be
// positive and shrinks as match evidence accumulates.
type Rating struct {
	mu      float64
	sigma   float64
	sigmaSq float64
}

// NewRating returns a rating with the given mean and standard deviation.
// Values are taken as-is; sigma is expected to be positive.
func NewRating(mu, sigma float64) *Rating {
	return &Rating{
		mu:      mu,
		sigma:   sigma,
		sigmaSq: sigma * sigma,
	}
}

// DefaultRating returns the rating of an unknown player on the 0-50 scale:
// mu 25, sigma 25/3.
func DefaultRating() *Rating {
	return NewRating(DefaultMu, DefaultSigma)
}

// Mu returns the estimated skill of the player.
func (r *Rating) Mu() float64 {
	return r.mu
}

// Sigma returns the uncertainty of the skill estimate.
func (r *Rating) Sigma() float64 {
	return r.sigma
}

// ConservativeEstimate returns mu - 3*sigma, a pessimistic scalar score that is
// low for unproven players and approaches mu as evidence accumulates. Sort
// leaderboards by this value.
func (r *Rating) ConservativeEstimate() float64 {
	return r.mu - conservativeK*r.sigma
}

// String renders the conservative estimate, clamped below at zero, which is
// the usual display form on a 0-50 leaderboard.
func (r *Rating) String() string {
	ce := r.ConservativeEstimate()
	if ce < 0 {
		return "0.0"
	}
	return strconv.FormatFloat(ce, 'f', -1, 64)
}
