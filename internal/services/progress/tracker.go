package progress

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
	"github.com/KirkDiggler/brainmon-api/internal/errors"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/live"
	"github.com/KirkDiggler/brainmon-api/internal/services/collection"
)

// TrackerConfig holds the dependencies for a Tracker
type TrackerConfig struct {
	Collection collection.Service
}

// Validate ensures all required dependencies are provided
func (c *TrackerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Collection == nil {
		vb.RequiredField("Collection")
	}
	return vb.Build()
}

// Tracker keeps the world map and trainer stats current by following the
// collection's live list
type Tracker struct {
	collection collection.Service

	worldMap *live.Value[[]BiomeProgress]
	stats    *live.Value[Stats]

	// touched only by the Run goroutine
	seeded    bool
	lastTotal int
}

// NewTracker creates a tracker seeded with an empty collection
func NewTracker(cfg *TrackerConfig) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Tracker{
		collection: cfg.Collection,
		worldMap:   live.NewValue(WorldMap(nil)),
		stats:      live.NewValue(TrainerStats(nil)),
	}, nil
}

// Run follows the collection until ctx is done
func (t *Tracker) Run(ctx context.Context) error {
	snapshots, err := t.collection.WatchAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to watch collection")
	}

	for owned := range snapshots {
		t.apply(owned)
	}
	return nil
}

func (t *Tracker) apply(owned []*brainmon.Monster) {
	total := countOwned(owned)

	if t.seeded && total > t.lastTotal {
		for _, b := range brainmon.Biomes() {
			if b.UnlockAt > t.lastTotal && b.UnlockAt <= total {
				slog.Info("Biome unlocked",
					"biome", b.ID,
					"requirement", b.UnlockAt,
					"total_caught", total,
				)
			}
		}
	}
	t.seeded = true
	t.lastTotal = total

	t.worldMap.Set(WorldMap(owned))
	t.stats.Set(TrainerStats(owned))
}

// WorldMap returns the latest computed world map
func (t *Tracker) WorldMap() []BiomeProgress {
	return t.worldMap.Get()
}

// Stats returns the latest computed trainer stats
func (t *Tracker) Stats() Stats {
	return t.stats.Get()
}

// WatchWorldMap streams the world map, starting with the current one
func (t *Tracker) WatchWorldMap(ctx context.Context) <-chan []BiomeProgress {
	return t.worldMap.Subscribe(ctx)
}
