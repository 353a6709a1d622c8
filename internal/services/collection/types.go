package collection

import (
	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
)

// AddInput is the request for Add
type AddInput struct {
	Monster *brainmon.Monster
}

// AddOutput is the response for Add
type AddOutput struct {
	Monster *brainmon.Monster
	// Ignored is set when the monster carried an id that was already stored
	Ignored bool
}

// RenameInput is the request for Rename
type RenameInput struct {
	ID   int64
	Name string
}

// RenameOutput is the response for Rename
type RenameOutput struct {
	Monster *brainmon.Monster
}

// RemoveInput is the request for Remove
type RemoveInput struct {
	ID int64
}

// RemoveOutput is the response for Remove
type RemoveOutput struct {
	// Removed is false when the id was already gone
	Removed bool
}

// GetInput is the request for Get
type GetInput struct {
	ID int64
}

// GetOutput is the response for Get
type GetOutput struct {
	Monster *brainmon.Monster
}

// ListInput is the request for List
type ListInput struct{}

// ListOutput is the response for List
type ListOutput struct {
	Monsters []*brainmon.Monster
}
