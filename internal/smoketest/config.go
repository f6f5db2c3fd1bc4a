// Package smoketest drives an end-to-end exercise of a running progression
// service: it submits generated event streams, then checks the served status
// of every profile against a local replay of the same events.
package smoketest

import (
	"time"

	"github.com/sangsom/minime/internal/domain/types"
)

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL          string        // Base URL of the service
	NumProfiles      int           // Number of profiles to simulate
	EventsPerProfile int           // Events generated per profile
	BoardTop         int           // Number of board entries to fetch
	Workers          int           // Number of concurrent submitters
	Timeout          time.Duration // HTTP request timeout
	Seed             int64         // Generator seed; 0 means time-based
	LogFile          string        // Log file for run output
	Verbose          bool          // Enable verbose logging
}

// EventPayload mirrors the wire schema for POST /events.
type EventPayload struct {
	EventID   string  `json:"event_id"`
	ProfileID string  `json:"profile_id"`
	Kind      string  `json:"kind"`
	Amount    float64 `json:"amount,omitempty"`
	Animation string  `json:"animation,omitempty"`
	Item      string  `json:"item,omitempty"`
	TS        string  `json:"ts"`
}

// AckResponse mirrors the response from event submission.
type AckResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

// Status and BoardEntry reuse the service view types.
type (
	Status     = types.Status
	BoardEntry = types.BoardEntry
)

// Stats holds run statistics.
type Stats struct {
	ProfilesGenerated int
	EventsGenerated   int
	EventsSubmitted   int
	EventsSuccessful  int
	EventsDuplicate   int
	EventsFailed      int
	StatusesChecked   int
	StatusMismatches  int
	BoardEntries      int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
