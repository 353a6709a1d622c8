package builders

import (
	"github.com/KirkDiggler/brainmon-api/internal/clients/pokeapi"
)

// PokemonBuilder builds PokeAPI payloads
type PokemonBuilder struct {
	pokemon *pokeapi.Pokemon
}

// NewPokemonBuilder starts from a plain normal-type species with the given stats
func NewPokemonBuilder(name string, hp, attack, defense int) *PokemonBuilder {
	sprite := "https://img.example/" + name + ".png"
	return &PokemonBuilder{
		pokemon: &pokeapi.Pokemon{
			ID:      1,
			Name:    name,
			Sprites: pokeapi.Sprites{FrontDefault: &sprite},
			Stats: []pokeapi.StatEntry{
				{BaseStat: hp, Stat: pokeapi.NamedResource{Name: "hp"}},
				{BaseStat: attack, Stat: pokeapi.NamedResource{Name: "attack"}},
				{BaseStat: defense, Stat: pokeapi.NamedResource{Name: "defense"}},
			},
			Types: []pokeapi.TypeEntry{
				{Slot: 1, Type: pokeapi.NamedResource{Name: "normal"}},
			},
		},
	}
}

// WithID sets the national dex id
func (b *PokemonBuilder) WithID(id int) *PokemonBuilder {
	b.pokemon.ID = id
	return b
}

// WithTypes replaces the type slots in order
func (b *PokemonBuilder) WithTypes(types ...string) *PokemonBuilder {
	b.pokemon.Types = nil
	for i, t := range types {
		b.pokemon.Types = append(b.pokemon.Types, pokeapi.TypeEntry{
			Slot: i + 1,
			Type: pokeapi.NamedResource{Name: t},
		})
	}
	return b
}

// WithoutSprite clears front_default
func (b *PokemonBuilder) WithoutSprite() *PokemonBuilder {
	b.pokemon.Sprites.FrontDefault = nil
	return b
}

// Build returns the payload
func (b *PokemonBuilder) Build() *pokeapi.Pokemon {
	return b.pokemon
}
