// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers file and env values on top.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"github.com/sangsom/minime/internal/domain/progression"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory event queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of event workers. Zero means CPU-scaled.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// MaxBoardLimit caps GET /board?limit.
	MaxBoardLimit int `koanf:"max_board_limit"`

	// Mood thresholds, each the lowest happiness of its tier. Must be
	// strictly increasing.
	MoodSadAt       float64 `koanf:"mood_sad_at"`
	MoodNeutralAt   float64 `koanf:"mood_neutral_at"`
	MoodHappyAt     float64 `koanf:"mood_happy_at"`
	MoodVeryHappyAt float64 `koanf:"mood_very_happy_at"`

	// ExperiencePerLevel sets how much XP one level takes.
	ExperiencePerLevel int `koanf:"experience_per_level"`

	// DanceHappinessBonus is the happiness gained by playing a dance.
	DanceHappinessBonus float64 `koanf:"dance_happiness_bonus"`

	// Homework reward knobs.
	HomeworkXP        int     `koanf:"homework_xp"`
	HomeworkCoins     int     `koanf:"homework_coins"`
	HomeworkHappiness float64 `koanf:"homework_happiness"`
}

// New creates a Config holding the default values.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		LogFormat:           "text",
		Addr:                ":9080",
		QueueSize:           10_000,
		WorkerCount:         0,
		DedupeSize:          50_000,
		MaxBoardLimit:       100,
		MoodSadAt:           progression.DefaultSadThreshold,
		MoodNeutralAt:       progression.DefaultNeutralThreshold,
		MoodHappyAt:         progression.DefaultHappyThreshold,
		MoodVeryHappyAt:     progression.DefaultVeryHappyThreshold,
		ExperiencePerLevel:  progression.DefaultExperiencePerLevel,
		DanceHappinessBonus: progression.DefaultDanceHappinessBonus,
		HomeworkXP:          progression.DefaultHomeworkExperienceReward,
		HomeworkCoins:       progression.DefaultHomeworkCoinReward,
		HomeworkHappiness:   progression.DefaultHomeworkHappinessReward,
	}
}

// EngineOptions translates the configuration into engine options.
func (c *Config) EngineOptions() []progression.Option {
	return []progression.Option{
		progression.WithMoodThresholds(c.MoodSadAt, c.MoodNeutralAt, c.MoodHappyAt, c.MoodVeryHappyAt),
		progression.WithExperiencePerLevel(c.ExperiencePerLevel),
		progression.WithDanceHappinessBonus(c.DanceHappinessBonus),
		progression.WithHomeworkReward(c.HomeworkXP, c.HomeworkCoins, c.HomeworkHappiness),
	}
}
