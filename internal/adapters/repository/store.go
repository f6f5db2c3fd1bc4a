// Package repository defines storage for profiles and their derived status.
package repository

import (
	"context"

	"github.com/sangsom/minime/internal/domain/model"
	"github.com/sangsom/minime/internal/domain/types"
)

// Record pairs a profile with its most recently derived status.
type Record struct {
	Profile model.Profile
	Status  types.Status
}

// Store holds session state for profiles. Implementations must be safe for
// concurrent use.
type Store interface {
	// Upsert stores the profile and its derived status, replacing any
	// previous record for the same profile id.
	Upsert(ctx context.Context, p model.Profile, s types.Status) error

	// Get returns the record for a profile id, or ErrNotFound.
	Get(ctx context.Context, profileID string) (Record, error)

	// TopByExperience returns up to limit records ordered by experience
	// descending, ties broken by profile id ascending.
	TopByExperience(ctx context.Context, limit int) ([]Record, error)

	// Count returns the number of stored profiles.
	Count(ctx context.Context) int
}
