package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/DataWraith/bbt"
)

type Config struct {
	// Runtime
	Env      string
	LogLevel string

	// Rating model
	Beta            float64
	Model           string
	DrawProbability float64

	// Simulation
	Players  int
	Teams    int
	TeamSize int
	Matches  int
	Seed     int64
	Top      int
}

func Load() (*Config, error) {
	// Pick up a .env file when present.
	_ = godotenv.Load()

	cfg := &Config{
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Beta:            getEnvFloat("BBT_BETA", bbt.DefaultBeta),
		Model:           getEnv("BBT_MODEL", bbt.BradleyTerry.String()),
		DrawProbability: getEnvFloat("BBT_DRAW_PROBABILITY", 0.10),
		Players:         getEnvInt("SIM_PLAYERS", 32),
		Teams:           getEnvInt("SIM_TEAMS", 4),
		TeamSize:        getEnvInt("SIM_TEAM_SIZE", 2),
		Matches:         getEnvInt("SIM_MATCHES", 500),
		Seed:            int64(getEnvInt("SIM_SEED", 42)),
		Top:             getEnvInt("SIM_TOP", 10),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}
