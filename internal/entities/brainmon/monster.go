package brainmon

import (
	"time"
	"unicode"
	"unicode/utf8"
)

// Monster is a creature the trainer owns
type Monster struct {
	// ID is assigned by the store on insert and never changes
	ID int64 `json:"id"`

	// Name is the user-editable nickname
	Name string `json:"name"`

	// Species is the lowercase canonical key, e.g. "pikachu"
	Species string `json:"species"`

	Type        string    `json:"type"`
	CombatPower int       `json:"combat_power"`
	ImageURL    string    `json:"image_url"`
	CaughtAt    time.Time `json:"caught_at"`
}

// DisplayName upper-cases the first letter of a species key
func DisplayName(species string) string {
	r, size := utf8.DecodeRuneInString(species)
	if r == utf8.RuneError {
		return species
	}
	return string(unicode.ToUpper(r)) + species[size:]
}
