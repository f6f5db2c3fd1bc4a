package smoketest

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/sangsom/minime/internal/domain/model"
	"github.com/sangsom/minime/internal/domain/progression"
	"github.com/sangsom/minime/pkg/logger"
)

// Event mix weights. Homework dominates so most profiles make visible
// progress during a short run.
const (
	weightHomework  = 4
	weightXP        = 3
	weightCoins     = 2
	weightHappiness = 2
	weightAnimation = 2
	weightEyeScale  = 1
	totalWeight     = weightHomework + weightXP + weightCoins + weightHappiness + weightAnimation + weightEyeScale
)

// Generation ranges.
const (
	maxXPGain         = 120
	maxCoinDelta      = 200
	maxHappinessDelta = 30
	minEyeScalePick   = 0.3
	maxEyeScalePick   = 2.5
)

// ProfileScript is one profile's generated event stream plus the state a
// correct service must end up in after applying it.
type ProfileScript struct {
	ProfileID string
	Events    []EventPayload
	Expected  model.Profile
}

// generateScripts builds per-profile event streams and replays each one
// through a local engine to compute the expected final profile.
func generateScripts(ctx context.Context, config *Config, stats *Stats) ([]ProfileScript, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // reproducible test data, not security material

	logger.Get().Info(ctx, "generating event scripts",
		logger.Int("profiles", config.NumProfiles),
		logger.Int("eventsPerProfile", config.EventsPerProfile),
		logger.Int64("seed", seed),
	)

	engine := progression.New()
	animations := progression.Animations()

	scripts := make([]ProfileScript, config.NumProfiles)
	for i := range scripts {
		profileID := uuid.New().String()
		script := ProfileScript{
			ProfileID: profileID,
			Events:    make([]EventPayload, 0, config.EventsPerProfile),
			Expected:  model.NewProfile(profileID),
		}

		for j := 0; j < config.EventsPerProfile; j++ {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			payload := rollEvent(rng, profileID, animations)
			script.Events = append(script.Events, payload)
			script.Expected = engine.ApplyEvent(script.Expected, toModelEvent(payload))
		}
		scripts[i] = script
	}

	stats.ProfilesGenerated = len(scripts)
	stats.EventsGenerated = len(scripts) * config.EventsPerProfile
	return scripts, nil
}

// rollEvent picks one weighted random event for a profile.
func rollEvent(rng *rand.Rand, profileID string, animations []progression.Animation) EventPayload {
	payload := EventPayload{
		EventID:   uuid.New().String(),
		ProfileID: profileID,
		TS:        time.Now().UTC().Format(time.RFC3339),
	}

	switch pick := rng.Intn(totalWeight); {
	case pick < weightHomework:
		payload.Kind = string(model.KindHomeworkCompleted)
	case pick < weightHomework+weightXP:
		payload.Kind = string(model.KindExperienceGained)
		payload.Amount = float64(1 + rng.Intn(maxXPGain))
	case pick < weightHomework+weightXP+weightCoins:
		// Non-negative deltas only: overdraft refusal depends on apply
		// order, which the service does not guarantee across workers.
		payload.Kind = string(model.KindCoinsDelta)
		payload.Amount = float64(rng.Intn(maxCoinDelta + 1))
	case pick < weightHomework+weightXP+weightCoins+weightHappiness:
		payload.Kind = string(model.KindHappinessDelta)
		payload.Amount = float64(rng.Intn(2*maxHappinessDelta) - maxHappinessDelta)
	case pick < weightHomework+weightXP+weightCoins+weightHappiness+weightAnimation:
		payload.Kind = string(model.KindAnimationPlayed)
		payload.Animation = string(animations[rng.Intn(len(animations))])
	default:
		payload.Kind = string(model.KindEyeScaleSet)
		payload.Amount = minEyeScalePick + rng.Float64()*(maxEyeScalePick-minEyeScalePick)
	}
	return payload
}

// toModelEvent converts a wire payload to the domain event for local replay.
func toModelEvent(p EventPayload) model.StateEvent {
	return model.StateEvent{
		EventID:   p.EventID,
		ProfileID: p.ProfileID,
		Kind:      model.EventKind(p.Kind),
		Amount:    p.Amount,
		Animation: p.Animation,
		Item:      p.Item,
		TS:        time.Now(),
	}
}
