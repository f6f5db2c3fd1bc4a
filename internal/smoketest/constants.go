package smoketest

import "time"

// HTTP status code constants.
const (
	StatusOK       = 200
	StatusAccepted = 202
)

// Runner timing constants.
const (
	ProcessingWaitDelay  = 5 * time.Second
	ProgressInterval     = 2 * time.Second
	PercentageMultiplier = 100
)

// Comparison tolerance for float happiness values.
const happinessEpsilon = 1e-6
