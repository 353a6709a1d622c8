// Package monsters persists caught monsters
package monsters

//go:generate mockgen -destination=mock/mock_repository.go -package=monstersmock github.com/KirkDiggler/brainmon-api/internal/repositories/monsters Repository

import (
	"context"

	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
	"github.com/KirkDiggler/brainmon-api/internal/errors"
)

// Repository defines the storage interface for the monster collection
type Repository interface {
	// Insert stores a new monster and assigns its id.
	// A caller supplied id that already exists is ignored, not an error.
	Insert(ctx context.Context, input InsertInput) (*InsertOutput, error)

	// Update replaces the stored row for an existing id
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a monster; deleting an absent id is a no-op
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Get retrieves a monster by id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every monster ordered by name, then id
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// InsertInput defines the request for inserting a monster
type InsertInput struct {
	Monster *brainmon.Monster
}

// InsertOutput defines the response for inserting a monster
type InsertOutput struct {
	Monster *brainmon.Monster
	// Ignored is set when a row with the supplied id already existed
	Ignored bool
}

// UpdateInput defines the request for updating a monster
type UpdateInput struct {
	Monster *brainmon.Monster
}

// UpdateOutput defines the response for updating a monster
type UpdateOutput struct {
	Monster *brainmon.Monster
}

// DeleteInput defines the request for deleting a monster
type DeleteInput struct {
	ID int64
}

// DeleteOutput defines the response for deleting a monster
type DeleteOutput struct {
	Deleted bool
}

// GetInput defines the request for retrieving a monster
type GetInput struct {
	ID int64
}

// GetOutput defines the response for retrieving a monster
type GetOutput struct {
	Monster *brainmon.Monster
}

// ListInput defines the request for listing monsters
type ListInput struct{}

// ListOutput defines the response for listing monsters
type ListOutput struct {
	Monsters []*brainmon.Monster
}

const (
	errMonsterNil  = "monster cannot be nil"
	errIDRequired  = "monster id must be positive"
	errNameEmpty   = "monster name cannot be empty"
	errSpeciesNone = "monster species cannot be empty"
)

func validateForWrite(m *brainmon.Monster) error {
	if m == nil {
		return errors.InvalidArgument(errMonsterNil)
	}
	vb := errors.NewValidationBuilder()
	if m.Name == "" {
		vb.Field("name", errNameEmpty)
	}
	if m.Species == "" {
		vb.Field("species", errSpeciesNone)
	}
	return vb.Build()
}
