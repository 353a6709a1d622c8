// Package collection is the gateway to the caught-monster store. Reads can be
// one-shot or live: a watch yields the current snapshot and then a fresh
// snapshot after every successful write through this service.
package collection

//go:generate mockgen -destination=mock/mock_service.go -package=collectionmock github.com/KirkDiggler/brainmon-api/internal/services/collection Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
	"github.com/KirkDiggler/brainmon-api/internal/errors"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/clock"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/live"
	"github.com/KirkDiggler/brainmon-api/internal/repositories/monsters"
)

// Service defines the collection operations
type Service interface {
	// Add stores a newly caught monster and assigns its id
	Add(ctx context.Context, input *AddInput) (*AddOutput, error)

	// Rename changes a monster's nickname
	Rename(ctx context.Context, input *RenameInput) (*RenameOutput, error)

	// Remove releases a monster; removing an absent id succeeds
	Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error)

	// Get returns one monster
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns every monster ordered by name
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// WatchAll streams the full ordered list. The channel closes with ctx.
	WatchAll(ctx context.Context) (<-chan []*brainmon.Monster, error)

	// WatchOne streams one monster, or nil while it does not exist
	WatchOne(ctx context.Context, id int64) (<-chan *brainmon.Monster, error)
}

// Config holds the dependencies for the collection service
type Config struct {
	Repository monsters.Repository
	Clock      clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	return vb.Build()
}

type service struct {
	repo  monsters.Repository
	clock clock.Clock

	// mu serializes refreshes and guards watched
	mu      sync.Mutex
	all     *live.Value[[]*brainmon.Monster]
	watched map[int64]*live.Value[*brainmon.Monster]
}

// NewService creates a collection service
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &service{
		repo:    cfg.Repository,
		clock:   c,
		all:     live.NewValue([]*brainmon.Monster{}),
		watched: make(map[int64]*live.Value[*brainmon.Monster]),
	}, nil
}

func (s *service) Add(ctx context.Context, input *AddInput) (*AddOutput, error) {
	if input == nil || input.Monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}

	m := *input.Monster
	if m.CaughtAt.IsZero() {
		m.CaughtAt = s.clock.Now()
	}
	m.CaughtAt = m.CaughtAt.UTC()

	out, err := s.repo.Insert(ctx, monsters.InsertInput{Monster: &m})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add monster")
	}

	slog.Info("Monster added to collection",
		"monster_id", out.Monster.ID,
		"species", out.Monster.Species,
		"cp", out.Monster.CombatPower,
		"ignored", out.Ignored,
	)

	s.refresh(ctx)

	return &AddOutput{Monster: out.Monster, Ignored: out.Ignored}, nil
}

func (s *service) Rename(ctx context.Context, input *RenameInput) (*RenameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.ID <= 0 {
		vb.Field("id", "must be positive")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		vb.RequiredField("name")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := s.repo.Get(ctx, monsters.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load monster %d", input.ID)
	}

	renamed := *got.Monster
	renamed.Name = name

	out, err := s.repo.Update(ctx, monsters.UpdateInput{Monster: &renamed})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to rename monster %d", input.ID)
	}

	slog.Info("Monster renamed", "monster_id", input.ID, "name", name)

	s.refresh(ctx)

	return &RenameOutput{Monster: out.Monster}, nil
}

func (s *service) Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error) {
	if input == nil || input.ID <= 0 {
		return nil, errors.InvalidArgument("monster id must be positive")
	}

	out, err := s.repo.Delete(ctx, monsters.DeleteInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to remove monster %d", input.ID)
	}

	slog.Info("Monster released", "monster_id", input.ID, "existed", out.Deleted)

	s.refresh(ctx)

	return &RemoveOutput{Removed: out.Deleted}, nil
}

func (s *service) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID <= 0 {
		return nil, errors.InvalidArgument("monster id must be positive")
	}

	out, err := s.repo.Get(ctx, monsters.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	return &GetOutput{Monster: out.Monster}, nil
}

func (s *service) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	out, err := s.repo.List(ctx, monsters.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters")
	}
	return &ListOutput{Monsters: out.Monsters}, nil
}

func (s *service) WatchAll(ctx context.Context) (<-chan []*brainmon.Monster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.repo.List(ctx, monsters.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters")
	}
	s.all.Set(out.Monsters)

	return s.all.Subscribe(ctx), nil
}

func (s *service) WatchOne(ctx context.Context, id int64) (<-chan *brainmon.Monster, error) {
	if id <= 0 {
		return nil, errors.InvalidArgument("monster id must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	v, ok := s.watched[id]
	if !ok {
		v = live.NewValue[*brainmon.Monster](nil)
		s.watched[id] = v
	}
	v.Set(current)

	return v.Subscribe(ctx), nil
}

// lookup returns nil for an absent row
func (s *service) lookup(ctx context.Context, id int64) (*brainmon.Monster, error) {
	out, err := s.repo.Get(ctx, monsters.GetInput{ID: id})
	if errors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load monster %d", id)
	}
	return out.Monster, nil
}

// refresh re-queries the store and pushes new snapshots to every watcher.
// A failed refresh leaves watchers on their previous snapshot.
func (s *service) refresh(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.repo.List(ctx, monsters.ListInput{})
	if err != nil {
		slog.Warn("Failed to refresh monster watchers", "error", err)
		return
	}
	s.all.Set(out.Monsters)

	byID := make(map[int64]*brainmon.Monster, len(out.Monsters))
	for _, m := range out.Monsters {
		byID[m.ID] = m
	}

	for id, v := range s.watched {
		if v.Subscribers() == 0 {
			delete(s.watched, id)
			continue
		}
		v.Set(byID[id])
	}
}
