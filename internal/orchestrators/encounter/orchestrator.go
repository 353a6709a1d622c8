// Package encounter runs the battle loop: pick a wild monster for a biome,
// fetch its stats and a trivia question sized to its strength, then capture
// it into the collection when the trainer answers correctly.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/brainmon-api/internal/orchestrators/encounter Service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/brainmon-api/internal/clients/opentdb"
	"github.com/KirkDiggler/brainmon-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
	"github.com/KirkDiggler/brainmon-api/internal/errors"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/live"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/task"
	"github.com/KirkDiggler/brainmon-api/internal/services/collection"
)

const (
	// DefaultFetchTimeout bounds the creature and trivia fetches of one encounter
	DefaultFetchTimeout = 20 * time.Second

	// DefaultDeleteDelay paces releases so the UI can animate them
	DefaultDeleteDelay = time.Second
)

// Service defines the battle operations
type Service interface {
	// StartEncounter resets the battle and begins fetching a wild monster
	// for the biome in the background. A newer call supersedes older ones.
	StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error)

	// CheckAnswer compares an answer with the current question
	CheckAnswer(ctx context.Context, input *CheckAnswerInput) (*CheckAnswerOutput, error)

	// CaptureCurrentMonster stores the current wild monster and ends the encounter
	CaptureCurrentMonster(ctx context.Context, input *CaptureCurrentMonsterInput) (*CaptureCurrentMonsterOutput, error)

	// UpdateMonsterName renames an owned monster in the background
	UpdateMonsterName(ctx context.Context, input *UpdateMonsterNameInput) (*UpdateMonsterNameOutput, error)

	// DeleteMonster releases an owned monster in the background
	DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error)

	// AbandonEncounter clears the battle and drops any in-flight fetch
	AbandonEncounter(ctx context.Context, input *AbandonEncounterInput) (*AbandonEncounterOutput, error)

	// GetBattleState returns the current battle snapshot
	GetBattleState(ctx context.Context, input *GetBattleStateInput) (*GetBattleStateOutput, error)

	// WatchBattleState streams a snapshot after every battle change
	WatchBattleState(ctx context.Context) (<-chan *BattleState, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	PokeAPI     pokeapi.Client
	Trivia      opentdb.Client
	Collection  collection.Service
	IDGenerator idgen.Generator

	// Roller picks species and shuffles answers (optional, defaults to dice.DefaultRoller)
	Roller dice.Roller
	// Runner tracks background work (optional)
	Runner *task.Runner

	FetchTimeout time.Duration
	DeleteDelay  time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.PokeAPI == nil {
		vb.RequiredField("PokeAPI")
	}
	if c.Trivia == nil {
		vb.RequiredField("Trivia")
	}
	if c.Collection == nil {
		vb.RequiredField("Collection")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.FetchTimeout < 0 {
		vb.Field("FetchTimeout", "cannot be negative")
	}
	if c.DeleteDelay < 0 {
		vb.Field("DeleteDelay", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	pokeAPI    pokeapi.Client
	trivia     opentdb.Client
	collection collection.Service
	idGen      idgen.Generator
	roller     dice.Roller
	runner     *task.Runner
	validate   *validator.Validate

	fetchTimeout time.Duration
	deleteDelay  time.Duration

	// mu serializes writes to the cells below and guards current
	mu      sync.Mutex
	current string
	meta    encounterMeta

	encounter   *live.Value[*brainmon.Encounter]
	question    *live.Value[*brainmon.Question]
	searchError *live.Value[bool]
	difficulty  *live.Value[string]
	category    *live.Value[string]
	combatPower *live.Value[int]

	// battle combines the cells so watchers see consistent snapshots
	battle *live.Value[*BattleState]
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	runner := cfg.Runner
	if runner == nil {
		runner = task.NewRunner()
	}
	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout == 0 {
		fetchTimeout = DefaultFetchTimeout
	}

	o := &orchestrator{
		pokeAPI:      cfg.PokeAPI,
		trivia:       cfg.Trivia,
		collection:   cfg.Collection,
		idGen:        cfg.IDGenerator,
		roller:       roller,
		runner:       runner,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		fetchTimeout: fetchTimeout,
		deleteDelay:  cfg.DeleteDelay,
		encounter:    live.NewValue[*brainmon.Encounter](nil),
		question:     live.NewValue[*brainmon.Question](nil),
		searchError:  live.NewValue(false),
		difficulty:   live.NewValue(DifficultyUnknown),
		category:     live.NewValue(brainmon.DefaultCategory),
		combatPower:  live.NewValue(0),
	}
	o.battle = live.NewValue(o.snapshotLocked())

	return o, nil
}

// state fields that are not cells
type encounterMeta struct {
	biomeID    string
	species    string
	categoryID int
	loading    bool
}

func (o *orchestrator) StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	biomeID := strings.ToLower(strings.TrimSpace(input.BiomeID))
	categoryName, categoryID := brainmon.CategoryFor(biomeID)

	owned, err := o.collection.List(ctx, &collection.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load owned monsters")
	}

	pool := selectionPool(brainmon.SpeciesPool(biomeID), owned.Monsters)
	species, err := pick(o.roller, pool)
	if err != nil {
		return nil, err
	}

	encounterID := o.idGen.Generate()

	o.mu.Lock()
	o.current = encounterID
	o.meta = encounterMeta{
		biomeID:    biomeID,
		species:    species,
		categoryID: categoryID,
		loading:    true,
	}
	o.encounter.Set(nil)
	o.question.Set(nil)
	o.searchError.Set(false)
	o.difficulty.Set(DifficultyLoading)
	o.combatPower.Set(0)
	o.category.Set(categoryName)
	o.publishLocked()
	o.mu.Unlock()

	slog.Info("Encounter started",
		"encounter_id", encounterID,
		"biome", biomeID,
		"species", species,
		"category", categoryName,
		"pool_size", len(pool),
	)

	result := o.runner.Go(ctx, "encounter:"+encounterID, func(ctx context.Context) error {
		return o.fetchEncounter(ctx, encounterID, species, categoryID)
	})

	return &StartEncounterOutput{
		EncounterID: encounterID,
		Species:     species,
		Category:    categoryName,
		CategoryID:  categoryID,
		Result:      result,
	}, nil
}

// selectionPool removes owned species from pool, falling back to the full
// pool when nothing would be left
func selectionPool(pool []string, owned []*brainmon.Monster) []string {
	ownedSpecies := make(map[string]struct{}, len(owned))
	for _, m := range owned {
		ownedSpecies[strings.ToLower(m.Species)] = struct{}{}
	}

	available := slices.DeleteFunc(slices.Clone(pool), func(sp string) bool {
		_, ok := ownedSpecies[sp]
		return ok
	})
	if len(available) == 0 {
		return pool
	}
	return available
}

// fetchEncounter loads the creature, then a question at the creature's
// difficulty. Results are only published while encounterID is current; any
// error or panic raises the search error flag.
func (o *orchestrator) fetchEncounter(ctx context.Context, encounterID, species string, categoryID int) (err error) {
	ctx, cancel := context.WithTimeout(ctx, o.fetchTimeout)
	defer cancel()

	reason := "creature fetch failed"
	defer func() {
		if p := recover(); p != nil {
			err = errors.Internalf("encounter fetch panicked: %v", p)
		}
		if err != nil {
			o.fail(encounterID, reason, err)
		}
	}()

	pokemon, err := o.pokeAPI.GetPokemon(ctx, species)
	if err != nil {
		return err
	}

	enc := pokemon.ToEncounter()
	if enc == nil {
		return errors.NotFoundf("no creature data for %s", species)
	}
	cp := enc.CombatPower()
	difficulty := brainmon.DifficultyFor(cp)

	if !o.publishIfCurrent(encounterID, func() {
		o.encounter.Set(enc)
		o.combatPower.Set(cp)
		o.difficulty.Set(difficulty)
	}) {
		return nil
	}

	reason = "trivia fetch failed"
	trivia, err := o.trivia.GetQuestion(ctx, &opentdb.GetQuestionInput{
		CategoryID: categoryID,
		Difficulty: difficulty,
	})
	if err != nil {
		return err
	}
	if trivia == nil || len(trivia.Results) == 0 || trivia.Results[0] == nil {
		reason = "trivia result empty"
		return errors.NotFoundf("no %s trivia in category %d", difficulty, categoryID)
	}

	reason = "question build failed"
	question, err := trivia.Results[0].ToQuestion(diceShuffler{roller: o.roller})
	if err != nil {
		return err
	}
	question.Difficulty = difficulty

	if o.publishIfCurrent(encounterID, func() {
		o.question.Set(question)
		o.meta.loading = false
	}) {
		slog.Info("Encounter ready",
			"encounter_id", encounterID,
			"species", enc.Species,
			"cp", cp,
			"difficulty", difficulty,
		)
	}

	return nil
}

// publishIfCurrent applies update and publishes a snapshot, unless a newer
// encounter has replaced encounterID
func (o *orchestrator) publishIfCurrent(encounterID string, update func()) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current != encounterID {
		slog.Debug("Dropping stale encounter result",
			"encounter_id", encounterID,
			"current", o.current,
		)
		return false
	}

	update()
	o.publishLocked()
	return true
}

// fail raises the error flag and clears anything partially published
func (o *orchestrator) fail(encounterID, reason string, err error) {
	if o.publishIfCurrent(encounterID, func() {
		o.encounter.Set(nil)
		o.question.Set(nil)
		o.searchError.Set(true)
		o.meta.loading = false
	}) {
		slog.Warn("Encounter search failed",
			"encounter_id", encounterID,
			"reason", reason,
			"error", err,
		)
	}
}

func (o *orchestrator) CheckAnswer(_ context.Context, input *CheckAnswerInput) (*CheckAnswerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	q := o.question.Get()
	if q == nil {
		return nil, errors.FailedPrecondition("no question is active")
	}

	if q.IsCorrect(input.Answer) {
		return &CheckAnswerOutput{Outcome: OutcomeCorrect}, nil
	}
	return &CheckAnswerOutput{Outcome: OutcomeIncorrect}, nil
}

func (o *orchestrator) CaptureCurrentMonster(ctx context.Context, _ *CaptureCurrentMonsterInput) (*CaptureCurrentMonsterOutput, error) {
	o.mu.Lock()
	enc := o.encounter.Get()
	if enc == nil {
		o.mu.Unlock()
		return &CaptureCurrentMonsterOutput{Captured: false, Result: task.Completed(nil)}, nil
	}

	encounterID := o.current
	o.current = ""
	o.meta = encounterMeta{}
	o.encounter.Set(nil)
	o.question.Set(nil)
	o.publishLocked()
	o.mu.Unlock()

	monster := enc.ToMonster()

	slog.Info("Capturing monster",
		"encounter_id", encounterID,
		"species", monster.Species,
		"cp", monster.CombatPower,
	)

	candidate := *monster
	result := o.runner.Go(ctx, "capture:"+encounterID, func(ctx context.Context) error {
		_, err := o.collection.Add(ctx, &collection.AddInput{Monster: monster})
		return err
	})

	return &CaptureCurrentMonsterOutput{
		Captured: true,
		Monster:  &candidate,
		Result:   result,
	}, nil
}

func (o *orchestrator) UpdateMonsterName(ctx context.Context, input *UpdateMonsterNameInput) (*UpdateMonsterNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	req := *input
	req.Name = strings.TrimSpace(req.Name)
	if err := errors.NewValidationBuilder().Struct(o.validate, &req).Build(); err != nil {
		return nil, err
	}

	result := o.runner.Go(ctx, "rename", func(ctx context.Context) error {
		_, err := o.collection.Rename(ctx, &collection.RenameInput{ID: req.MonsterID, Name: req.Name})
		return err
	})

	return &UpdateMonsterNameOutput{Result: result}, nil
}

func (o *orchestrator) DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := errors.NewValidationBuilder().Struct(o.validate, input).Build(); err != nil {
		return nil, err
	}

	id := input.MonsterID
	delay := o.deleteDelay
	result := o.runner.Go(ctx, "delete", func(ctx context.Context) error {
		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		_, err := o.collection.Remove(ctx, &collection.RemoveInput{ID: id})
		return err
	})

	return &DeleteMonsterOutput{Result: result}, nil
}

func (o *orchestrator) AbandonEncounter(_ context.Context, _ *AbandonEncounterInput) (*AbandonEncounterOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current != "" {
		slog.Info("Encounter abandoned", "encounter_id", o.current)
	}

	o.current = ""
	o.meta = encounterMeta{}
	o.encounter.Set(nil)
	o.question.Set(nil)
	o.searchError.Set(false)
	o.difficulty.Set(DifficultyUnknown)
	o.category.Set(brainmon.DefaultCategory)
	o.combatPower.Set(0)
	o.publishLocked()

	return &AbandonEncounterOutput{}, nil
}

func (o *orchestrator) GetBattleState(_ context.Context, _ *GetBattleStateInput) (*GetBattleStateOutput, error) {
	return &GetBattleStateOutput{State: o.battle.Get()}, nil
}

func (o *orchestrator) WatchBattleState(ctx context.Context) (<-chan *BattleState, error) {
	return o.battle.Subscribe(ctx), nil
}

// publishLocked pushes a fresh snapshot of the cells; callers hold mu
func (o *orchestrator) publishLocked() {
	if o.battle == nil {
		return
	}
	o.battle.Set(o.snapshotLocked())
}

func (o *orchestrator) snapshotLocked() *BattleState {
	return &BattleState{
		EncounterID: o.current,
		BiomeID:     o.meta.biomeID,
		Species:     o.meta.species,
		Category:    o.category.Get(),
		CategoryID:  o.meta.categoryID,
		Difficulty:  o.difficulty.Get(),
		CombatPower: o.combatPower.Get(),
		Loading:     o.meta.loading,
		SearchError: o.searchError.Get(),
		Encounter:   o.encounter.Get(),
		Question:    o.question.Get(),
	}
}
