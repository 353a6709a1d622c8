package brainmon

import "strings"

// Stat names used by the combat power formula
const (
	StatHP      = "hp"
	StatAttack  = "attack"
	StatDefense = "defense"
)

// Trivia difficulties
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Difficulty thresholds on combat power
const (
	mediumThreshold = 300
	hardThreshold   = 450
)

// DefaultType is used when a creature reports no types
const DefaultType = "normal"

// Stat is one base stat of a wild creature
type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

// Encounter is the wild creature currently being battled. It is never persisted.
type Encounter struct {
	PokedexID      int      `json:"pokedex_id"`
	Species        string   `json:"species"`
	BaseExperience *int     `json:"base_experience,omitempty"`
	Height         int      `json:"height"`
	Weight         int      `json:"weight"`
	Stats          []Stat   `json:"stats"`
	Types          []string `json:"types"`
	SpriteURL      string   `json:"sprite_url"`
}

// StatValue returns the named base stat, or 0 when it is absent
func (e *Encounter) StatValue(name string) int {
	for _, s := range e.Stats {
		if s.Name == name {
			return s.Base
		}
	}
	return 0
}

// CombatPower derives the creature's CP from hp, attack and defense
func (e *Encounter) CombatPower() int {
	return CombatPower(e.StatValue(StatHP), e.StatValue(StatAttack), e.StatValue(StatDefense))
}

// PrimaryType is the first listed type, or DefaultType
func (e *Encounter) PrimaryType() string {
	if len(e.Types) == 0 {
		return DefaultType
	}
	return e.Types[0]
}

// ToMonster builds the monster stored when this creature is captured
func (e *Encounter) ToMonster() *Monster {
	species := strings.ToLower(e.Species)
	return &Monster{
		Name:        DisplayName(e.Species),
		Species:     species,
		Type:        e.PrimaryType(),
		CombatPower: e.CombatPower(),
		ImageURL:    e.SpriteURL,
	}
}

// CombatPower is floor((hp+atk+def)/3) * 5 in integer arithmetic
func CombatPower(hp, attack, defense int) int {
	return ((hp + attack + defense) / 3) * 5
}

// DifficultyFor classifies a combat power into a trivia difficulty
func DifficultyFor(cp int) string {
	switch {
	case cp < mediumThreshold:
		return DifficultyEasy
	case cp < hardThreshold:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// ValidDifficulty reports whether d is one of the trivia difficulties
func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}
