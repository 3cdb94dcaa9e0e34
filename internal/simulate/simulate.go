package simulate

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/DataWraith/bbt"
)

var (
	ErrBadShape      = errors.New("match shape needs at least two teams of at least one player")
	ErrTooFewPlayers = errors.New("not enough players to field a full match")
)

// Player couples a competitor's identity with the rater's belief about them
// and the hidden skill their performances are drawn from.
type Player struct {
	ID     uuid.UUID
	Name   string
	Skill  float64
	Rating *bbt.Rating
}

// Params shapes a simulated season: a pool of Players, Matches matches of
// Teams teams with TeamSize players each, drawn with the given Seed. Noise
// is the standard deviation of a player's per-game performance around their
// hidden skill.
type Params struct {
	Players  int
	Teams    int
	TeamSize int
	Matches  int
	Noise    float64
	Seed     int64
}

func (p Params) validate() error {
	if p.Teams < 2 || p.TeamSize < 1 {
		return fmt.Errorf("%d teams of %d: %w", p.Teams, p.TeamSize, ErrBadShape)
	}
	if p.Players < p.Teams*p.TeamSize {
		return fmt.Errorf("%d players for %d slots: %w", p.Players, p.Teams*p.TeamSize, ErrTooFewPlayers)
	}
	return nil
}

// Result is the outcome of a simulated season.
type Result struct {
	Standings   []*Player // best first, by conservative estimate
	Matches     int
	Correlation float64
}

// Run plays out a season of randomly drawn matches and reports how well the
// final standings recover the hidden skills. Lineups, skills and
// performances all come from the seeded generator, so equal parameters
// reproduce the season exactly.
func Run(rater *bbt.Rater, params Params) (*Result, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(params.Seed))
	players := newPlayers(rng, params.Players)

	for m := 0; m < params.Matches; m++ {
		if err := playMatch(rng, rater, players, params); err != nil {
			return nil, fmt.Errorf("match %d: %w", m+1, err)
		}
	}

	standings := make([]*Player, len(players))
	copy(standings, players)
	sort.Slice(standings, func(i, j int) bool {
		return standings[i].Rating.ConservativeEstimate() > standings[j].Rating.ConservativeEstimate()
	})

	return &Result{
		Standings:   standings,
		Matches:     params.Matches,
		Correlation: skillCorrelation(standings),
	}, nil
}

func newPlayers(rng *rand.Rand, n int) []*Player {
	players := make([]*Player, n)
	for i := range players {
		players[i] = &Player{
			ID:     uuid.New(),
			Name:   fmt.Sprintf("player-%03d", i+1),
			Skill:  bbt.DefaultMu + bbt.DefaultSigma*rng.NormFloat64(),
			Rating: bbt.DefaultRating(),
		}
	}
	return players
}

// playMatch draws a random lineup, simulates team performances around the
// hidden skills and feeds the finishing order back into the ratings.
func playMatch(rng *rand.Rand, rater *bbt.Rater, players []*Player, params Params) error {
	lineup := rng.Perm(len(players))[:params.Teams*params.TeamSize]

	type entry struct {
		team        []*bbt.Rating
		performance float64
	}

	entries := make([]*entry, params.Teams)
	next := 0
	for t := range entries {
		e := &entry{team: make([]*bbt.Rating, 0, params.TeamSize)}
		for p := 0; p < params.TeamSize; p++ {
			player := players[lineup[next]]
			next++
			e.team = append(e.team, player.Rating)
			e.performance += player.Skill + params.Noise*rng.NormFloat64()
		}
		entries[t] = e
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].performance > entries[j].performance
	})

	teams := make([][]*bbt.Rating, params.Teams)
	ranks := make([]int, params.Teams)
	for i, e := range entries {
		teams[i] = e.team
		ranks[i] = i + 1
	}

	return rater.UpdateRatings(teams, ranks)
}

// skillCorrelation is the Spearman rank correlation between hidden skill and
// final standing: 1 when the season recovered the true order perfectly, near
// 0 when the standings say nothing about skill.
func skillCorrelation(standings []*Player) float64 {
	n := len(standings)
	if n < 2 {
		return 0
	}

	bySkill := make([]*Player, n)
	copy(bySkill, standings)
	sort.Slice(bySkill, func(i, j int) bool { return bySkill[i].Skill > bySkill[j].Skill })

	skillRank := make(map[uuid.UUID]int, n)
	for i, p := range bySkill {
		skillRank[p.ID] = i
	}

	var sumSq float64
	for place, p := range standings {
		d := float64(place - skillRank[p.ID])
		sumSq += d * d
	}

	nf := float64(n)
	return 1 - 6*sumSq/(nf*(nf*nf-1))
}
