// Package model contains domain models passed between layers.
package model

import "time"

// EventKind names a state-change event submitted by the host.
type EventKind string

const (
	KindHomeworkCompleted EventKind = "homework_completed"
	KindHappinessDelta    EventKind = "happiness_delta"
	KindExperienceGained  EventKind = "xp_gained"
	KindCoinsDelta        EventKind = "coins_delta"
	KindEyeScaleSet       EventKind = "eye_scale_set"
	KindAnimationPlayed   EventKind = "animation_played"
	KindOutfitSet         EventKind = "outfit_set"
	KindAccessorySet      EventKind = "accessory_set"
)

// KnownKind reports whether k is one of the declared event kinds.
func KnownKind(k EventKind) bool {
	switch k {
	case KindHomeworkCompleted, KindHappinessDelta, KindExperienceGained,
		KindCoinsDelta, KindEyeScaleSet, KindAnimationPlayed,
		KindOutfitSet, KindAccessorySet:
		return true
	default:
		return false
	}
}

// StateEvent represents a raw state change for one profile.
type StateEvent struct {
	EventID   string    // unique id for idempotency
	ProfileID string    // subject profile identifier
	Kind      EventKind // what changed
	Amount    float64   // delta or target value, depending on Kind
	Animation string    // animation name, only for animation_played
	Item      string    // outfit or accessory name, only for customization kinds
	TS        time.Time // event timestamp
}
