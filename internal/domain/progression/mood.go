package progression

// MoodTier is the discrete bucket of emotional display state derived from a
// continuous happiness value. Tiers are ordered from VerySad to VeryHappy.
type MoodTier int

const (
	MoodVerySad MoodTier = iota
	MoodSad
	MoodNeutral
	MoodHappy
	MoodVeryHappy
)

// String returns the display label for the tier. Any value outside the
// enumeration maps to "Unknown"; with a closed set that branch should not
// occur, it exists to keep display output deterministic.
func (t MoodTier) String() string {
	switch t {
	case MoodVerySad:
		return "Very Sad"
	case MoodSad:
		return "Sad"
	case MoodNeutral:
		return "Neutral"
	case MoodHappy:
		return "Happy"
	case MoodVeryHappy:
		return "Very Happy"
	default:
		return "Unknown"
	}
}

// Emoji returns the emoji shown next to the mood label.
func (t MoodTier) Emoji() string {
	switch t {
	case MoodVerySad:
		return "😢"
	case MoodSad:
		return "😟"
	case MoodNeutral:
		return "😐"
	case MoodHappy:
		return "😊"
	case MoodVeryHappy:
		return "😄"
	default:
		return "😐"
	}
}

// Color is an RGB triple on a 0-1 scale.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// neutralGray is the defensive default for out-of-enumeration tiers.
var neutralGray = Color{R: 0.5, G: 0.5, B: 0.5}

// Mood derives the tier for a happiness value. Thresholds are evaluated
// top-down and are inclusive on their lower side; anything below the sad
// threshold is VerySad. The input is taken as-is, out-of-range values are
// not re-clamped here.
func (e *Engine) Mood(happiness float64) MoodTier {
	switch {
	case happiness >= e.veryHappyThreshold:
		return MoodVeryHappy
	case happiness >= e.happyThreshold:
		return MoodHappy
	case happiness >= e.neutralThreshold:
		return MoodNeutral
	case happiness >= e.sadThreshold:
		return MoodSad
	default:
		return MoodVerySad
	}
}

// MoodColor returns the fixed display color for a tier, neutral gray for
// anything outside the enumeration.
func (e *Engine) MoodColor(t MoodTier) Color {
	switch t {
	case MoodVeryHappy:
		return Color{R: 0.2, G: 0.8, B: 0.2}
	case MoodHappy:
		return Color{R: 0.5, G: 0.8, B: 0.3}
	case MoodNeutral:
		return Color{R: 0.8, G: 0.8, B: 0.2}
	case MoodSad:
		return Color{R: 0.8, G: 0.5, B: 0.2}
	case MoodVerySad:
		return Color{R: 0.8, G: 0.2, B: 0.2}
	default:
		return neutralGray
	}
}
