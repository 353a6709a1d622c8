package v1alpha1

import (
	"math"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
	"github.com/KirkDiggler/brainmon-api/internal/errors"
	"github.com/KirkDiggler/brainmon-api/internal/orchestrators/encounter"
	"github.com/KirkDiggler/brainmon-api/internal/services/progress"
)

// Request field names
const (
	fieldBiomeID   = "biome_id"
	fieldAnswer    = "answer"
	fieldMonsterID = "monster_id"
	fieldName      = "name"
	fieldWait      = "wait"
	fieldSort      = "sort"
)

// Monster list orderings
const (
	sortName    = "name"
	sortPokedex = "pokedex"
)

// monsterSorter resolves the sort option; the store already orders by name
func monsterSorter(req *structpb.Struct) (func([]*brainmon.Monster) []*brainmon.Monster, error) {
	switch order := stringField(req, fieldSort); order {
	case "", sortName:
		return func(m []*brainmon.Monster) []*brainmon.Monster { return m }, nil
	case sortPokedex:
		return progress.SortByPokedex, nil
	default:
		return nil, errors.InvalidArgumentf("sort must be %s or %s, got %q", sortName, sortPokedex, order)
	}
}

func stringField(req *structpb.Struct, name string) string {
	return strings.TrimSpace(req.GetFields()[name].GetStringValue())
}

func boolField(req *structpb.Struct, name string) bool {
	return req.GetFields()[name].GetBoolValue()
}

// idField reads a positive whole number. JSON numbers arrive as float64.
func idField(req *structpb.Struct, name string) (int64, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, errors.InvalidArgumentf("%s is required", name)
	}
	n := v.GetNumberValue()
	if n <= 0 || n != math.Trunc(n) || n > math.MaxInt64 {
		return 0, errors.InvalidArgumentf("%s must be a positive integer", name)
	}
	return int64(n), nil
}

func toStruct(m map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return s, nil
}

func monsterToMap(m *brainmon.Monster) map[string]any {
	if m == nil {
		return nil
	}
	out := map[string]any{
		"id":           m.ID,
		"name":         m.Name,
		"species":      m.Species,
		"type":         m.Type,
		"combat_power": m.CombatPower,
		"image_url":    m.ImageURL,
		"pokedex_id":   brainmon.PokedexNumber(m.Species),
	}
	if !m.CaughtAt.IsZero() {
		out["caught_at"] = m.CaughtAt.UTC().Format(time.RFC3339)
	}
	return out
}

func monstersToList(monsters []*brainmon.Monster) []any {
	list := make([]any, 0, len(monsters))
	for _, m := range monsters {
		list = append(list, monsterToMap(m))
	}
	return list
}

func stringsToList(values []string) []any {
	list := make([]any, len(values))
	for i, v := range values {
		list[i] = v
	}
	return list
}

func encounterToMap(e *brainmon.Encounter) map[string]any {
	stats := make(map[string]any, len(e.Stats))
	for _, s := range e.Stats {
		stats[s.Name] = s.Base
	}

	out := map[string]any{
		"pokedex_id":   e.PokedexID,
		"species":      e.Species,
		"display_name": brainmon.DisplayName(e.Species),
		"height":       e.Height,
		"weight":       e.Weight,
		"types":        stringsToList(e.Types),
		"sprite_url":   e.SpriteURL,
		"stats":        stats,
		"combat_power": e.CombatPower(),
	}
	if e.BaseExperience != nil {
		out["base_experience"] = *e.BaseExperience
	}
	return out
}

// questionToMap leaves out the correct answer
func questionToMap(q *brainmon.Question) map[string]any {
	return map[string]any{
		"text":       q.Text,
		"answers":    stringsToList(q.Answers),
		"category":   q.Category,
		"difficulty": q.Difficulty,
	}
}

func battleStateToMap(st *encounter.BattleState) map[string]any {
	if st == nil {
		st = &encounter.BattleState{Difficulty: encounter.DifficultyUnknown, Category: brainmon.DefaultCategory}
	}
	out := map[string]any{
		"encounter_id": st.EncounterID,
		"biome_id":     st.BiomeID,
		"species":      st.Species,
		"category":     st.Category,
		"category_id":  st.CategoryID,
		"difficulty":   st.Difficulty,
		"combat_power": st.CombatPower,
		"loading":      st.Loading,
		"search_error": st.SearchError,
		"encounter":    nil,
		"question":     nil,
	}
	if st.Encounter != nil {
		out["encounter"] = encounterToMap(st.Encounter)
	}
	if st.Question != nil {
		out["question"] = questionToMap(st.Question)
	}
	return out
}

func worldMapToMap(entries []progress.BiomeProgress) map[string]any {
	biomes := make([]any, 0, len(entries))
	for _, e := range entries {
		biomes = append(biomes, map[string]any{
			"id":          e.Biome.ID,
			"name":        e.Biome.Name,
			"category":    e.Biome.Category,
			"description": e.Biome.Description,
			"capacity":    e.Capacity,
			"caught":      e.Caught,
			"complete":    e.Complete,
			"unlocked":    e.Unlocked,
			"requirement": e.Requirement,
		})
	}
	return map[string]any{"biomes": biomes}
}

func statsToMap(st progress.Stats) map[string]any {
	out := map[string]any{
		"total_caught":       st.TotalCaught,
		"unique_species":     st.UniqueSpecies,
		"completion_percent": st.CompletionPercent,
		"total_cp":           st.TotalCP,
		"favourite_type":     st.FavouriteType,
		"milestone":          progress.IsMilestone(st.TotalCaught),
		"strongest":          nil,
	}
	if st.Strongest != nil {
		out["strongest"] = monsterToMap(st.Strongest)
	}
	return out
}
