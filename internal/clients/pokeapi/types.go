package pokeapi

// Pokemon is the subset of the /pokemon/{name} payload the game reads
type Pokemon struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	BaseExperience *int        `json:"base_experience"`
	Height         int         `json:"height"`
	Weight         int         `json:"weight"`
	Sprites        Sprites     `json:"sprites"`
	Stats          []StatEntry `json:"stats"`
	Types          []TypeEntry `json:"types"`
}

// Sprites holds image references; front_default may be null
type Sprites struct {
	FrontDefault *string `json:"front_default"`
}

// StatEntry is one base stat
type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// TypeEntry is one elemental type slot
type TypeEntry struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// NamedResource is PokeAPI's {name, url} reference
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
