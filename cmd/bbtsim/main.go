package main

import (
	"log"
	"time"

	"github.com/DataWraith/bbt"
	"github.com/DataWraith/bbt/internal/config"
	"github.com/DataWraith/bbt/internal/simulate"
	"github.com/DataWraith/bbt/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	model, err := bbt.ParseModel(cfg.Model)
	if err != nil {
		logger.Fatal("Invalid rating model", "model", cfg.Model, "error", err)
	}

	rater := bbt.NewRater(cfg.Beta,
		bbt.WithModel(model),
		bbt.WithDrawProbability(cfg.DrawProbability),
	)

	logger.Info("Starting rating simulation",
		"model", model.String(),
		"beta", cfg.Beta,
		"players", cfg.Players,
		"teams", cfg.Teams,
		"team_size", cfg.TeamSize,
		"matches", cfg.Matches,
		"seed", cfg.Seed,
	)

	start := time.Now()
	result, err := simulate.Run(rater, simulate.Params{
		Players:  cfg.Players,
		Teams:    cfg.Teams,
		TeamSize: cfg.TeamSize,
		Matches:  cfg.Matches,
		Noise:    cfg.Beta,
		Seed:     cfg.Seed,
	})
	if err != nil {
		logger.Fatal("Simulation failed", "error", err)
	}

	logger.Info("Season complete",
		"matches", result.Matches,
		"correlation", result.Correlation,
		"elapsed", time.Since(start).String(),
	)

	top := cfg.Top
	if top > len(result.Standings) {
		top = len(result.Standings)
	}
	for place, p := range result.Standings[:top] {
		logger.Info("Leaderboard entry",
			"place", place+1,
			"player", p.Name,
			"id", p.ID.String(),
			"estimate", p.Rating.ConservativeEstimate(),
			"mu", p.Rating.Mu(),
			"sigma", p.Rating.Sigma(),
			"hidden_skill", p.Skill,
		)
	}
}
