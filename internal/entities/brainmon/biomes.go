package brainmon

import (
	"slices"
	"strings"
)

// Default biome and trivia category used for unknown biome keys
const (
	DefaultBiomeID    = "plains"
	DefaultCategory   = "General"
	DefaultCategoryID = 9
)

// Biome is a themed area with its own species pool, trivia subject and
// unlock requirement
type Biome struct {
	ID          string
	Name        string
	Category    string
	Description string
	CategoryID  int

	// UnlockAt is the total number of owned monsters required to enter
	UnlockAt int

	species []string
}

// Species returns a copy of the biome's species keys in table order
func (b Biome) Species() []string {
	return slices.Clone(b.species)
}

// Capacity is the number of distinct species living in the biome
func (b Biome) Capacity() int {
	return len(b.species)
}

// Contains reports whether species (any case) lives in the biome
func (b Biome) Contains(species string) bool {
	return slices.Contains(b.species, strings.ToLower(species))
}

var biomes = []Biome{
	{
		ID: "plains", Name: "Plains", Category: "General", Description: "General Knowledge",
		CategoryID: 9, UnlockAt: 0,
		species: []string{
			"pidgey", "pidgeotto", "pidgeot", "rattata", "raticate", "spearow", "fearow",
			"jigglypuff", "wigglytuff", "meowth", "persian", "farfetchd", "doduo", "dodrio",
			"lickitung", "chansey", "kangaskhan", "tauros", "ditto", "eevee", "snorlax",
		},
	},
	{
		ID: "forest", Name: "Forest", Category: "General", Description: "General Knowledge",
		CategoryID: 9, UnlockAt: 5,
		species: []string{
			"caterpie", "metapod", "butterfree", "weedle", "kakuna", "beedrill", "bulbasaur",
			"ivysaur", "venusaur", "oddish", "gloom", "vileplume", "paras", "parasect",
			"venonat", "venomoth", "bellsprout", "weepinbell", "victreebel", "exeggcute",
			"exeggutor", "scyther", "pinsir", "tangela",
		},
	},
	{
		ID: "beach", Name: "Beach", Category: "Biology", Description: "Biology (Easy)",
		CategoryID: 17, UnlockAt: 15,
		species: []string{
			"squirtle", "wartortle", "blastoise", "psyduck", "golduck", "poliwag", "poliwhirl",
			"poliwrath", "tentacool", "tentacruel", "slowpoke", "slowbro", "krabby", "kingler",
			"horsea", "seadra", "goldeen", "seaking", "staryu", "starmie", "magikarp", "gyarados",
		},
	},
	{
		ID: "desert", Name: "Desert", Category: "Math", Description: "Math (Medium)",
		CategoryID: 19, UnlockAt: 25,
		species: []string{
			"sandshrew", "sandslash", "mankey", "primeape", "diglett", "dugtrio", "geodude",
			"graveler", "golem", "onix", "cubone", "marowak", "rhyhorn", "rhydon", "aerodactyl",
		},
	},
	{
		ID: "cave", Name: "Cave", Category: "History", Description: "History (Medium)",
		CategoryID: 23, UnlockAt: 40,
		species: []string{
			"zubat", "golbat", "machop", "machoke", "machamp", "clefairy", "clefable",
			"omanyte", "omastar", "kabuto", "kabutops",
		},
	},
	{
		ID: "swamp", Name: "Swamp", Category: "Biology", Description: "Biology (Medium)",
		CategoryID: 17, UnlockAt: 55,
		species: []string{
			"ekans", "arbok", "nidoran-f", "nidorina", "nidoqueen", "nidoran-m", "nidorino",
			"nidoking", "grimer", "muk", "koffing", "weezing", "gastly", "haunter", "gengar",
		},
	},
	{
		ID: "city", Name: "City", Category: "Science", Description: "Science (Medium)",
		CategoryID: 18, UnlockAt: 70,
		species: []string{
			"pikachu", "raichu", "magnemite", "magneton", "voltorb", "electrode", "hitmonlee",
			"hitmonchan", "drowzee", "hypno", "mr-mime", "electabuzz", "porygon", "zapdos",
		},
	},
	{
		ID: "tundra", Name: "Tundra", Category: "Biology", Description: "Biology (Hard)",
		CategoryID: 17, UnlockAt: 90,
		species: []string{
			"seel", "dewgong", "shellder", "cloyster", "jynx", "lapras", "vaporeon", "articuno",
		},
	},
	{
		ID: "volcano", Name: "Volcano", Category: "Math", Description: "Math (Hard)",
		CategoryID: 19, UnlockAt: 110,
		species: []string{
			"charmander", "charmeleon", "charizard", "vulpix", "ninetales", "growlithe",
			"arcanine", "ponyta", "rapidash", "magmar", "flareon", "moltres",
		},
	},
	{
		ID: "mystic", Name: "Mystic Realm", Category: "Mythology", Description: "Mythology (Hard)",
		CategoryID: 20, UnlockAt: 130,
		species: []string{
			"abra", "kadabra", "alakazam", "jolteon", "dratini", "dragonair", "dragonite",
			"mewtwo", "mew",
		},
	},
}

// Biomes returns every biome in world-map order
func Biomes() []Biome {
	return slices.Clone(biomes)
}

// BiomeByID looks up a biome by key
func BiomeByID(id string) (Biome, bool) {
	for _, b := range biomes {
		if b.ID == id {
			return b, true
		}
	}
	return Biome{}, false
}

// CategoryFor maps a biome key to its trivia category label and id.
// Unknown keys get the general knowledge category.
func CategoryFor(biomeID string) (string, int) {
	if b, ok := BiomeByID(biomeID); ok {
		return b.Category, b.CategoryID
	}
	return DefaultCategory, DefaultCategoryID
}

// SpeciesPool returns the species eligible in a biome; unknown keys use the
// plains pool
func SpeciesPool(biomeID string) []string {
	if b, ok := BiomeByID(biomeID); ok {
		return b.Species()
	}
	b, _ := BiomeByID(DefaultBiomeID)
	return b.Species()
}

// UnlockMilestones lists every distinct non-zero unlock requirement in
// ascending order
func UnlockMilestones() []int {
	var out []int
	for _, b := range biomes {
		if b.UnlockAt > 0 && !slices.Contains(out, b.UnlockAt) {
			out = append(out, b.UnlockAt)
		}
	}
	slices.Sort(out)
	return out
}
