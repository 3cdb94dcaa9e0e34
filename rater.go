package bbt

import (
	"fmt"
	"math"
)

// DefaultBeta is the performance deviation matching the default 0-50 rating
// scale, 25/6 as used in the paper.
const DefaultBeta = DefaultMu / 6.0

// defaultDrawProbability feeds the Thurstone-Mosteller draw margin when the
// caller sets neither a margin nor a probability.
const defaultDrawProbability = 0.10

// sigmaSqAdjFloor is the lower clamp on the multiplicative variance
// adjustment. It keeps sigma strictly positive no matter how one-sided the
// accumulated evidence is.
const sigmaSqAdjFloor = 0.0001

// minSpread is the lower clamp on the combined spread c of a pairwise
// comparison, guarding the divisions when both teams are near-certain and
// beta is tiny.
const minSpread = 1e-9

// Model selects the pairwise-comparison model a Rater updates under. Both
// come from the Weng-Lin paper and share the same team bookkeeping; they
// differ in how an observed outcome is turned into mean and variance
// corrections.
type Model int

const (
	// BradleyTerry scores comparisons with the logistic curve. It is the
	// default model and needs no draw tolerance: draws are read off equal
	// declared ranks alone.
	BradleyTerry Model = iota
	// ThurstoneMosteller scores comparisons with the normal CDF and an
	// explicit draw margin.
	ThurstoneMosteller
)

func (m Model) String() string {
	switch m {
	case BradleyTerry:
		return "bradley-terry"
	case ThurstoneMosteller:
		return "thurstone-mosteller"
	default:
		return "unknown"
	}
}

// ParseModel maps the names reported by Model.String back to a Model.
func ParseModel(name string) (Model, error) {
	switch name {
	case "bradley-terry":
		return BradleyTerry, nil
	case "thurstone-mosteller":
		return ThurstoneMosteller, nil
	default:
		return BradleyTerry, fmt.Errorf("unknown rating model %q", name)
	}
}

// Rater computes rating updates for a game with performance deviation beta.
// It holds no mutable state, so one Rater may serve any number of goroutines;
// the ratings an update touches are still the caller's to synchronize.
type Rater struct {
	betaSq     float64
	model      Model
	drawMargin float64
}

// Option configures a Rater beyond its beta parameter.
type Option func(*Rater)

// WithModel selects the pairwise-comparison model.
func WithModel(m Model) Option {
	return func(r *Rater) { r.model = m }
}

// WithDrawMargin sets the Thurstone-Mosteller draw margin directly, on the
// same scale as mu. The Bradley-Terry model ignores it.
func WithDrawMargin(eps float64) Option {
	return func(r *Rater) { r.drawMargin = eps }
}

// WithDrawProbability derives the draw margin from the probability that two
// evenly matched players draw. Without this or WithDrawMargin, a
// Thurstone-Mosteller rater assumes a draw probability of 0.10.
func WithDrawProbability(p float64) Option {
	return func(r *Rater) { r.drawMargin = drawMargin(p, math.Sqrt(r.betaSq)) }
}

func drawMargin(p, beta float64) float64 {
	return normPPF((1+p)/2) * math.Sqrt2 * beta
}

// NewRater returns a rater for a game whose in-match performance varies
// around true skill with standard deviation beta. Luck-heavy games want a
// larger beta than skill-heavy ones.
func NewRater(beta float64, opts ...Option) *Rater {
	r := &Rater{
		betaSq:     beta * beta,
		model:      BradleyTerry,
		drawMargin: drawMargin(defaultDrawProbability, beta),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewDefaultRater returns a Bradley-Terry rater with the paper's default
// beta of 25/6.
func NewDefaultRater() *Rater {
	return NewRater(DefaultBeta)
}

// Duel updates two ratings in place after a head-to-head game. The outcome
// is from p1's perspective: Win if p1 won, Loss if p2 won, Draw otherwise.
func (r *Rater) Duel(p1, p2 *Rating, outcome Outcome) {
	teams := [][]*Rating{{p1}, {p2}}

	var ranks []int
	switch outcome {
	case Win:
		ranks = []int{1, 2}
	case Loss:
		ranks = []int{2, 1}
	default:
		ranks = []int{1, 1}
	}

	// The two-team shape built above always passes validation.
	_ = r.UpdateRatings(teams, ranks)
}

// UpdateRatings computes new ratings from the finishing order of a match and
// writes them into the supplied ratings in place.
//
// Each team is a non-empty slice of rating pointers; ranks declares where
// each team finished. Lower rank is better, equal ranks are a tie, and only
// the relative order of ranks carries meaning. Every pair of teams is
// compared and the accumulated evidence is applied in one write, so a team
// in the middle of the field is pushed down by the teams above it and up by
// the teams below it in the same update.
//
// The input is validated before anything is written: the error is one of
// ErrTeamsRanksMismatch, ErrTooFewTeams or ErrEmptyTeam (wrapped with the
// offending team index), and in the error case no rating is modified.
func (r *Rater) UpdateRatings(teams [][]*Rating, ranks []int) error {
	if len(teams) != len(ranks) {
		return fmt.Errorf("%d teams with %d ranks: %w", len(teams), len(ranks), ErrTeamsRanksMismatch)
	}
	if len(teams) < 2 {
		return ErrTooFewTeams
	}
	for i, team := range teams {
		if len(team) == 0 {
			return fmt.Errorf("team %d: %w", i, ErrEmptyTeam)
		}
	}

	n := len(teams)
	teamMu := make([]float64, n)
	teamSigmaSq := make([]float64, n)
	omega := make([]float64, n)
	delta := make([]float64, n)

	// Step 1: collect each team's skill and variance.
	for i, team := range teams {
		for _, p := range team {
			teamMu[i] += p.mu
			teamSigmaSq[i] += p.sigmaSq
		}
	}

	// Step 2: accumulate the mean shift (omega) and the variance decay
	// (delta) each team takes from its comparison with every other team.
	for i := 0; i < n; i++ {
		for q := 0; q < n; q++ {
			if i == q {
				continue
			}

			c := math.Sqrt(teamSigmaSq[i] + teamSigmaSq[q] + 2*r.betaSq)
			if c < minSpread {
				c = minSpread
			}

			var shift, decay float64
			switch r.model {
			case ThurstoneMosteller:
				shift, decay = thurstoneMosteller(teamMu[i], teamMu[q], ranks[i], ranks[q], c, r.drawMargin)
			default:
				shift, decay = bradleyTerry(teamMu[i], teamMu[q], ranks[i], ranks[q], c)
			}

			gamma := math.Sqrt(teamSigmaSq[i]) / c
			omega[i] += teamSigmaSq[i] / c * shift
			delta[i] += gamma * teamSigmaSq[i] / (c * c) * decay
		}
	}

	// Step 3: apportion each team's corrections to its players by their
	// share of the team variance, then write the posteriors.
	for i, team := range teams {
		for _, p := range team {
			share := p.sigmaSq / teamSigmaSq[i]

			adj := 1 - share*delta[i]
			if adj < sigmaSqAdjFloor {
				adj = sigmaSqAdjFloor
			}

			p.mu += share * omega[i]
			p.sigmaSq *= adj
			p.sigma = math.Sqrt(p.sigmaSq)
		}
	}

	return nil
}

// bradleyTerry scores one pairwise comparison under the logistic model. The
// returned shift is the observed-minus-expected score, the decay the
// Bernoulli variance of the expected score.
func bradleyTerry(muI, muQ float64, rankI, rankQ int, c float64) (shift, decay float64) {
	eI := math.Exp(muI / c)
	eQ := math.Exp(muQ / c)
	pIQ := eI / (eI + eQ)
	pQI := eQ / (eI + eQ)

	var s float64
	switch {
	case rankQ > rankI:
		s = 1
	case rankQ == rankI:
		s = 0.5
	}

	return s - pIQ, pIQ * pQI
}

// thurstoneMosteller scores one pairwise comparison under the normal model
// with draw margin eps, using the one-sided corrections for decisive results
// and the two-sided ones for ties.
func thurstoneMosteller(muI, muQ float64, rankI, rankQ int, c, eps float64) (shift, decay float64) {
	t := (muI - muQ) / c
	epsC := eps / c

	switch {
	case rankQ > rankI:
		return vExceedsMargin(t, epsC), wExceedsMargin(t, epsC)
	case rankQ < rankI:
		return -vExceedsMargin(-t, epsC), wExceedsMargin(-t, epsC)
	default:
		return vWithinMargin(t, epsC), wWithinMargin(t, epsC)
	}
}
