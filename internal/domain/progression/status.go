package progression

import (
	"strings"

	"github.com/sangsom/minime/internal/domain/model"
	"github.com/sangsom/minime/internal/domain/types"
)

// ApplyHomeworkReward grants the configured homework rewards to a profile:
// one completed item, experience, coins, and a clamped happiness boost.
func (e *Engine) ApplyHomeworkReward(p model.Profile) model.Profile {
	p.HomeworkDone++
	p.Experience += e.homeworkXP
	p.Coins += e.homeworkCoins
	p.Happiness = e.ClampHappiness(p.Happiness + e.homeworkHappiness)
	return p
}

// SpendCoins attempts to spend amount from a balance. It refuses overdrafts
// and negative amounts, reporting whether the spend went through.
func (e *Engine) SpendCoins(balance, amount int) (int, bool) {
	if amount < 0 || balance < amount {
		return balance, false
	}
	return balance - amount, true
}

// ApplyEvent folds a state-change event into a profile. Unknown kinds leave
// the profile untouched; happiness and eye scale stay clamped.
func (e *Engine) ApplyEvent(p model.Profile, ev model.StateEvent) model.Profile {
	switch ev.Kind {
	case model.KindHomeworkCompleted:
		return e.ApplyHomeworkReward(p)
	case model.KindHappinessDelta:
		p.Happiness = e.ClampHappiness(p.Happiness + ev.Amount)
	case model.KindExperienceGained:
		if ev.Amount > 0 {
			p.Experience += int(ev.Amount)
		}
	case model.KindCoinsDelta:
		if ev.Amount >= 0 {
			p.Coins += int(ev.Amount)
		} else if next, ok := e.SpendCoins(p.Coins, int(-ev.Amount)); ok {
			p.Coins = next
		}
	case model.KindEyeScaleSet:
		p.EyeScale = e.ClampEyeScale(ev.Amount)
	case model.KindAnimationPlayed:
		if anim, ok := ParseAnimation(ev.Animation); ok {
			p.Happiness = e.ClampHappiness(p.Happiness + e.AnimationHappinessBonus(anim))
		}
	case model.KindOutfitSet:
		if item := normalizeItem(ev.Item); item != "" {
			p.Outfit = item
		}
	case model.KindAccessorySet:
		if item := normalizeItem(ev.Item); item != "" {
			p.Accessory = item
		}
	}
	return p
}

// normalizeItem canonicalizes an outfit or accessory name.
func normalizeItem(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DeriveStatus computes the full presentation snapshot for a profile at the
// given hour of day.
func (e *Engine) DeriveStatus(p model.Profile, hour int) types.Status {
	mood := e.Mood(p.Happiness)
	color := e.MoodColor(mood)
	return types.Status{
		ProfileID:     p.ProfileID,
		Level:         e.Level(p.Experience),
		LevelProgress: e.LevelProgress(p.Experience),
		Experience:    p.Experience,
		LevelText:     e.FormatExperience(p.Experience),
		Coins:         p.Coins,
		CoinsText:     e.FormatCoins(p.Coins),
		Happiness:     p.Happiness,
		Mood:          mood.String(),
		MoodEmoji:     mood.Emoji(),
		MoodColor:     types.Color{R: color.R, G: color.G, B: color.B},
		EyeScale:      p.EyeScale,
		Outfit:        p.Outfit,
		Accessory:     p.Accessory,
		Greeting:      e.Greeting(hour),
		Motivation:    e.HomeworkMotivation(p.HomeworkDone),
	}
}
