// Package types contains common view types used across the application.
// They are intentionally free of logic so transport layers can use them
// without importing the engine.
package types

// Color mirrors the engine's RGB triple on a 0-1 scale.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Status is the derived presentation state for one profile.
type Status struct {
	ProfileID     string  `json:"profile_id"`
	Level         int     `json:"level"`
	LevelProgress float64 `json:"level_progress"`
	Experience    int     `json:"experience"`
	LevelText     string  `json:"level_text"`
	Coins         int     `json:"coins"`
	CoinsText     string  `json:"coins_text"`
	Happiness     float64 `json:"happiness"`
	Mood          string  `json:"mood"`
	MoodEmoji     string  `json:"mood_emoji"`
	MoodColor     Color   `json:"mood_color"`
	EyeScale      float64 `json:"eye_scale"`
	Outfit        string  `json:"outfit"`
	Accessory     string  `json:"accessory"`
	Greeting      string  `json:"greeting"`
	Motivation    string  `json:"motivation"`
}

// BoardEntry is one row of the experience board.
type BoardEntry struct {
	Rank       int    `json:"rank"`
	ProfileID  string `json:"profile_id"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
}
