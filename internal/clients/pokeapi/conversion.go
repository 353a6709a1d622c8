package pokeapi

import (
	"sort"

	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
)

// ToEncounter converts the wire payload into the in-memory encounter model.
// Types are ordered by slot; a null sprite becomes an empty string.
func (p *Pokemon) ToEncounter() *brainmon.Encounter {
	if p == nil {
		return nil
	}

	stats := make([]brainmon.Stat, 0, len(p.Stats))
	for _, s := range p.Stats {
		stats = append(stats, brainmon.Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}

	slots := make([]TypeEntry, len(p.Types))
	copy(slots, p.Types)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	types := make([]string, 0, len(slots))
	for _, t := range slots {
		types = append(types, t.Type.Name)
	}

	sprite := ""
	if p.Sprites.FrontDefault != nil {
		sprite = *p.Sprites.FrontDefault
	}

	return &brainmon.Encounter{
		PokedexID:      p.ID,
		Species:        p.Name,
		BaseExperience: p.BaseExperience,
		Height:         p.Height,
		Weight:         p.Weight,
		Stats:          stats,
		Types:          types,
		SpriteURL:      sprite,
	}
}
