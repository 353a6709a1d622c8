// Package progress derives biome completion, unlock state and trainer
// statistics from the owned monster list.
package progress

import (
	"cmp"
	"slices"
	"strings"

	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
)

// NoFavouriteType is reported when nothing has been caught
const NoFavouriteType = "None"

// BiomeProgress is one world-map entry
type BiomeProgress struct {
	Biome    brainmon.Biome
	Capacity int
	Caught   int
	Complete bool
	Unlocked bool
	// Requirement is the total catches needed to enter
	Requirement int
}

// Stats summarises a trainer's collection
type Stats struct {
	TotalCaught       int
	UniqueSpecies     int
	CompletionPercent float64
	TotalCP           int
	FavouriteType     string

	// Strongest is nil for an empty collection
	Strongest *brainmon.Monster
}

// BiomeCapacity is the size of the biome's species list, 0 for unknown keys
func BiomeCapacity(biomeID string) int {
	b, ok := brainmon.BiomeByID(biomeID)
	if !ok {
		return 0
	}
	return b.Capacity()
}

// BiomeStatus counts the biome species present in owned. Duplicates count
// once and matching ignores case. Unknown biomes are never complete.
func BiomeStatus(biomeID string, owned []*brainmon.Monster) (caught int, complete bool) {
	b, ok := brainmon.BiomeByID(biomeID)
	if !ok || b.Capacity() == 0 {
		return 0, false
	}

	return biomeStatus(b, ownedSpecies(owned))
}

func biomeStatus(b brainmon.Biome, species map[string]struct{}) (int, bool) {
	caught := 0
	for _, sp := range b.Species() {
		if _, ok := species[sp]; ok {
			caught++
		}
	}
	return caught, caught >= b.Capacity() && b.Capacity() > 0
}

func ownedSpecies(owned []*brainmon.Monster) map[string]struct{} {
	out := make(map[string]struct{}, len(owned))
	for _, m := range owned {
		if m == nil {
			continue
		}
		out[strings.ToLower(m.Species)] = struct{}{}
	}
	return out
}

// IsUnlocked reports whether totalCaught (every owned monster, duplicates
// included) meets the biome's requirement. Unknown biomes are locked.
func IsUnlocked(biomeID string, totalCaught int) bool {
	b, ok := brainmon.BiomeByID(biomeID)
	if !ok {
		return false
	}
	return totalCaught >= b.UnlockAt
}

// PokedexNumber is the canonical ordinal, 999 for unknown species
func PokedexNumber(species string) int {
	return brainmon.PokedexNumber(species)
}

// IsMilestone reports whether reaching total unlocks a biome
func IsMilestone(total int) bool {
	return slices.Contains(brainmon.UnlockMilestones(), total)
}

// WorldMap returns every biome's progress in map order
func WorldMap(owned []*brainmon.Monster) []BiomeProgress {
	species := ownedSpecies(owned)
	total := countOwned(owned)

	all := brainmon.Biomes()
	out := make([]BiomeProgress, 0, len(all))
	for _, b := range all {
		caught, complete := biomeStatus(b, species)
		out = append(out, BiomeProgress{
			Biome:       b,
			Capacity:    b.Capacity(),
			Caught:      caught,
			Complete:    complete,
			Unlocked:    total >= b.UnlockAt,
			Requirement: b.UnlockAt,
		})
	}
	return out
}

func countOwned(owned []*brainmon.Monster) int {
	n := 0
	for _, m := range owned {
		if m != nil {
			n++
		}
	}
	return n
}

// TrainerStats computes collection totals. Ties for strongest monster and
// favourite type go to whichever appears first in owned.
func TrainerStats(owned []*brainmon.Monster) Stats {
	stats := Stats{FavouriteType: NoFavouriteType}

	typeCounts := make(map[string]int)
	var typeOrder []string
	best := 0

	for _, m := range owned {
		if m == nil {
			continue
		}
		stats.TotalCaught++
		stats.TotalCP += m.CombatPower

		if stats.Strongest == nil || m.CombatPower > stats.Strongest.CombatPower {
			stats.Strongest = m
		}

		if _, seen := typeCounts[m.Type]; !seen {
			typeOrder = append(typeOrder, m.Type)
		}
		typeCounts[m.Type]++
	}

	for _, t := range typeOrder {
		if typeCounts[t] > best {
			best = typeCounts[t]
			stats.FavouriteType = t
		}
	}

	stats.UniqueSpecies = len(ownedSpecies(owned))
	if stats.TotalCaught > 0 {
		stats.CompletionPercent = float64(stats.UniqueSpecies) / float64(brainmon.PokedexSize) * 100
	}

	return stats
}

// SortByPokedex returns a copy of owned in canonical order. Unknown species
// sort last; equal ordinals keep their relative order.
func SortByPokedex(owned []*brainmon.Monster) []*brainmon.Monster {
	out := slices.Clone(owned)
	slices.SortStableFunc(out, func(a, b *brainmon.Monster) int {
		return cmp.Compare(brainmon.PokedexNumber(a.Species), brainmon.PokedexNumber(b.Species))
	})
	return out
}
