// Package builders provides test data builders for creating test fixtures
package builders

import (
	"strings"
	"time"

	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
)

// MonsterBuilder provides a fluent interface for building test Monster instances
type MonsterBuilder struct {
	monster *brainmon.Monster
}

// NewMonsterBuilder creates a builder for an uncaught Pikachu
func NewMonsterBuilder() *MonsterBuilder {
	return &MonsterBuilder{
		monster: &brainmon.Monster{
			Name:        "Pikachu",
			Species:     "pikachu",
			Type:        "electric",
			CombatPower: 175,
			ImageURL:    "https://img.example/25.png",
			CaughtAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// WithID sets the store id
func (b *MonsterBuilder) WithID(id int64) *MonsterBuilder {
	b.monster.ID = id
	return b
}

// WithSpecies sets the species and derives a display name from it
func (b *MonsterBuilder) WithSpecies(species string) *MonsterBuilder {
	b.monster.Species = strings.ToLower(species)
	b.monster.Name = brainmon.DisplayName(species)
	return b
}

// WithName sets the nickname
func (b *MonsterBuilder) WithName(name string) *MonsterBuilder {
	b.monster.Name = name
	return b
}

// WithType sets the primary type
func (b *MonsterBuilder) WithType(t string) *MonsterBuilder {
	b.monster.Type = t
	return b
}

// WithCombatPower sets CP
func (b *MonsterBuilder) WithCombatPower(cp int) *MonsterBuilder {
	b.monster.CombatPower = cp
	return b
}

// WithCaughtAt sets the capture time
func (b *MonsterBuilder) WithCaughtAt(t time.Time) *MonsterBuilder {
	b.monster.CaughtAt = t
	return b
}

// Build returns a copy so one builder can produce several monsters
func (b *MonsterBuilder) Build() *brainmon.Monster {
	m := *b.monster
	return &m
}
