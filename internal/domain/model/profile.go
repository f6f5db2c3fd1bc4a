package model

// Starting values for a fresh profile.
const (
	StartingCoins     = 100
	StartingHappiness = 75.0
	StartingEyeScale  = 1.0
	StartingOutfit    = "default"
	StartingAccessory = "none"
)

// Profile is the raw numeric state for one character. It is a plain value,
// the engine derives presentation state from it and owns nothing across
// calls.
type Profile struct {
	ProfileID    string
	Username     string
	DisplayName  string
	Experience   int
	Coins        int
	Happiness    float64
	EyeScale     float64
	Outfit       string
	Accessory    string
	HomeworkDone int
}

// NewProfile creates a profile with the game's starting values.
func NewProfile(profileID string) Profile {
	return Profile{
		ProfileID: profileID,
		Coins:     StartingCoins,
		Happiness: StartingHappiness,
		EyeScale:  StartingEyeScale,
		Outfit:    StartingOutfit,
		Accessory: StartingAccessory,
	}
}
