// Package progression derives discrete presentation state from raw player
// numbers: mood tiers from happiness, levels from experience, display strings
// for coins and experience, and the small pieces of derived text the host
// shows around them. Every function is total over its declared inputs and
// performs no I/O.
package progression

import (
	"math/rand"
	"sync"
)

// Default engine configuration constants. Values mirror the game's shipped
// configuration; all of them can be overridden through options.
const (
	DefaultSadThreshold       = 20.0
	DefaultNeutralThreshold   = 30.0
	DefaultHappyThreshold     = 70.0
	DefaultVeryHappyThreshold = 80.0

	DefaultExperiencePerLevel = 100

	DefaultMinHappiness = 0.0
	DefaultMaxHappiness = 100.0
	DefaultMinEyeScale  = 0.5
	DefaultMaxEyeScale  = 2.0

	DefaultDanceHappinessBonus = 2.0

	DefaultHomeworkExperienceReward = 10
	DefaultHomeworkCoinReward       = 5
	DefaultHomeworkHappinessReward  = 5.0

	defaultRandomSeed = 42
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithMoodThresholds sets the four ascending mood boundaries. Invalid
// orderings are ignored so a misconfigured host cannot break monotonicity.
func WithMoodThresholds(sad, neutral, happy, veryHappy float64) Option {
	return func(e *Engine) {
		if sad < neutral && neutral < happy && happy < veryHappy {
			e.sadThreshold = sad
			e.neutralThreshold = neutral
			e.happyThreshold = happy
			e.veryHappyThreshold = veryHappy
		}
	}
}

// WithExperiencePerLevel sets how many experience points make up one level.
func WithExperiencePerLevel(xp int) Option {
	return func(e *Engine) {
		if xp > 0 {
			e.experiencePerLevel = xp
		}
	}
}

// WithHappinessBounds sets the clamping range for happiness values.
func WithHappinessBounds(minH, maxH float64) Option {
	return func(e *Engine) {
		if minH < maxH {
			e.minHappiness = minH
			e.maxHappiness = maxH
		}
	}
}

// WithEyeScaleBounds sets the clamping range for eye scale values.
func WithEyeScaleBounds(minScale, maxScale float64) Option {
	return func(e *Engine) {
		if minScale < maxScale {
			e.minEyeScale = minScale
			e.maxEyeScale = maxScale
		}
	}
}

// WithDanceHappinessBonus sets the happiness granted by a dance animation.
func WithDanceHappinessBonus(bonus float64) Option {
	return func(e *Engine) {
		if bonus >= 0 {
			e.danceBonus = bonus
		}
	}
}

// WithHomeworkReward sets the rewards granted for a completed homework item.
func WithHomeworkReward(xp, coins int, happiness float64) Option {
	return func(e *Engine) {
		if xp >= 0 && coins >= 0 && happiness >= 0 {
			e.homeworkXP = xp
			e.homeworkCoins = coins
			e.homeworkHappiness = happiness
		}
	}
}

// WithRandSource sets the randomness source used for animation picks.
// The default is deterministically seeded for reproducible tests.
func WithRandSource(src rand.Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.rng = rand.New(src) //nolint:gosec // presentation randomness, not security material
		}
	}
}

// Engine computes derived presentation state from raw player numbers.
// It holds only configuration plus a guarded randomness source, so a single
// Engine is safe for concurrent use.
type Engine struct {
	sadThreshold       float64
	neutralThreshold   float64
	happyThreshold     float64
	veryHappyThreshold float64

	experiencePerLevel int

	minHappiness float64
	maxHappiness float64
	minEyeScale  float64
	maxEyeScale  float64

	danceBonus        float64
	homeworkXP        int
	homeworkCoins     int
	homeworkHappiness float64

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New creates an Engine with default configuration, applying options.
func New(opts ...Option) *Engine {
	e := &Engine{
		sadThreshold:       DefaultSadThreshold,
		neutralThreshold:   DefaultNeutralThreshold,
		happyThreshold:     DefaultHappyThreshold,
		veryHappyThreshold: DefaultVeryHappyThreshold,
		experiencePerLevel: DefaultExperiencePerLevel,
		minHappiness:       DefaultMinHappiness,
		maxHappiness:       DefaultMaxHappiness,
		minEyeScale:        DefaultMinEyeScale,
		maxEyeScale:        DefaultMaxEyeScale,
		danceBonus:         DefaultDanceHappinessBonus,
		homeworkXP:         DefaultHomeworkExperienceReward,
		homeworkCoins:      DefaultHomeworkCoinReward,
		homeworkHappiness:  DefaultHomeworkHappinessReward,
		rng:                rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // deterministic seed for reproducible picks
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ExperiencePerLevel reports the configured experience-per-level constant.
func (e *Engine) ExperiencePerLevel() int {
	return e.experiencePerLevel
}

// ClampHappiness bounds a happiness value to the configured range.
func (e *Engine) ClampHappiness(h float64) float64 {
	return clamp(h, e.minHappiness, e.maxHappiness)
}

// ClampEyeScale bounds an eye scale value to the configured range.
func (e *Engine) ClampEyeScale(s float64) float64 {
	return clamp(s, e.minEyeScale, e.maxEyeScale)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
