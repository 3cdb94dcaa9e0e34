// Package bbt implements a skill-rating system in the family of Elo, Glicko
// and TrueSkill. It follows Algorithm 1 of Weng and Lin, "A Bayesian
// Approximation Method for Online Ranking" (Journal of Machine Learning
// Research 12, 2011), which updates a normal belief distribution over each
// player's latent skill from the observed finishing order of a match.
//
// The entry point is the Rater:
//
//	rater := bbt.NewRater(25.0 / 6.0)
//
// The parameter is beta, the standard deviation of a player's in-game
// performance around their true skill. It encodes how luck-driven the game
// is: a card game deserves a larger beta than chess. Tune it for predictive
// power on your own match history.
//
// # Two-player games
//
// For head-to-head games there is a convenience method that updates both
// ratings in place. Here p1 beats p2:
//
//	rater := bbt.NewDefaultRater()
//	p1 := bbt.DefaultRating()
//	p2 := bbt.DefaultRating()
//
//	rater.Duel(p1, p2, bbt.Win)
//
// The outcome is always given from the first player's perspective: Win, Loss
// or Draw.
//
// # Multiplayer games
//
// Games with more than two parties go through UpdateRatings. It takes a slice
// of teams, each team a slice of rating pointers, and a parallel slice of
// ranks declaring where each team finished. In a six-player race every player
// is a team of one and no two ranks repeat:
//
//	teams := [][]*bbt.Rating{{p1}, {p2}, {p3}, {p4}, {p5}, {p6}}
//	err := rater.UpdateRatings(teams, []int{1, 2, 3, 4, 5, 6})
//
// Lower rank is better, only the relative order of the ranks matters, and
// equal ranks declare a tie. With four teams of two, where the first team
// wins, the next two tie for second place and the last team comes in fourth:
//
//	teams := [][]*bbt.Rating{
//		{alice, bob},
//		{charlie, dave},
//		{eve, fred},
//		{gabe, henry},
//	}
//	err := rater.UpdateRatings(teams, []int{1, 2, 2, 4})
//
// On success every rating passed in has been overwritten with its posterior
// mean and uncertainty; on a validation error nothing has been touched.
//
// # Comparison models
//
// The paper derives the update for several pairwise-comparison models. The
// default is the Bradley-Terry model (logistic win probability). The
// Thurstone-Mosteller model (normal win probability with an explicit draw
// margin) can be selected per Rater:
//
//	rater := bbt.NewRater(25.0/6.0,
//		bbt.WithModel(bbt.ThurstoneMosteller),
//		bbt.WithDrawProbability(0.25),
//	)
//
// Both models compare every pair of teams and accumulate the evidence before
// any rating is written, so a mid-field team feels pressure from the teams
// ahead of it and behind it alike.
//
// # Rating scale
//
// Defaults follow TrueSkill's 0-50 convention: new players start at mu 25
// with sigma 25/3, and beta defaults to 25/6. Any other scale works by picking
// its midpoint m and constructing ratings with NewRating(m, m/3) and the
// rater with NewRater(m/6). Leaderboards should sort by
// ConservativeEstimate, the pessimistic mu - 3*sigma score that rewards proven
// skill over lucky streaks.
package bbt
