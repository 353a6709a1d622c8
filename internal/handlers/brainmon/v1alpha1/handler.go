// Package v1alpha1 handles the brainmon gRPC service interface
package v1alpha1

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/brainmon-api/internal/errors"
	"github.com/KirkDiggler/brainmon-api/internal/orchestrators/encounter"
	"github.com/KirkDiggler/brainmon-api/internal/services/collection"
	"github.com/KirkDiggler/brainmon-api/internal/services/progress"
)

//go:generate mockgen -destination=mock/mock_progress.go -package=v1alpha1mock github.com/KirkDiggler/brainmon-api/internal/handlers/brainmon/v1alpha1 ProgressSource

// ProgressSource serves the derived world map and trainer statistics
type ProgressSource interface {
	WorldMap() []progress.BiomeProgress
	Stats() progress.Stats
	WatchWorldMap(ctx context.Context) <-chan []progress.BiomeProgress
}

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	EncounterService  encounter.Service
	CollectionService collection.Service
	Progress          ProgressSource
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EncounterService == nil {
		vb.RequiredField("EncounterService")
	}
	if c.CollectionService == nil {
		vb.RequiredField("CollectionService")
	}
	if c.Progress == nil {
		vb.RequiredField("Progress")
	}

	return vb.Build()
}

// Handler implements BrainmonServiceServer
type Handler struct {
	encounterService  encounter.Service
	collectionService collection.Service
	progress          ProgressSource
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		encounterService:  cfg.EncounterService,
		collectionService: cfg.CollectionService,
		progress:          cfg.Progress,
	}, nil
}

// StartEncounter begins an encounter in the requested biome. With "wait"
// set it blocks until both fetches have finished and returns the resulting
// battle state.
func (h *Handler) StartEncounter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.encounterService.StartEncounter(ctx, &encounter.StartEncounterInput{
		BiomeID: stringField(req, fieldBiomeID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := map[string]any{
		"encounter_id": out.EncounterID,
		"species":      out.Species,
		"category":     out.Category,
		"category_id":  out.CategoryID,
	}

	if boolField(req, fieldWait) {
		if err := out.Result.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil, errors.ToGRPCError(err)
			}
			// The failure is reported through search_error
			slog.Debug("Encounter fetch failed", "encounter_id", out.EncounterID, "error", err)
		}

		state, err := h.encounterService.GetBattleState(ctx, &encounter.GetBattleStateInput{})
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		resp["state"] = battleStateToMap(state.State)
	}

	return h.respond(resp)
}

// GetBattleState returns a snapshot of the battle cells
func (h *Handler) GetBattleState(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.encounterService.GetBattleState(ctx, &encounter.GetBattleStateInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(battleStateToMap(out.State))
}

// CheckAnswer grades an answer against the active question
func (h *Handler) CheckAnswer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	answer := req.GetFields()[fieldAnswer].GetStringValue()
	if answer == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("answer is required"))
	}

	out, err := h.encounterService.CheckAnswer(ctx, &encounter.CheckAnswerInput{Answer: answer})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(map[string]any{
		"outcome": out.Outcome.String(),
		"correct": out.Outcome == encounter.OutcomeCorrect,
	})
}

// CaptureMonster stores the current encounter and waits for the write
func (h *Handler) CaptureMonster(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.encounterService.CaptureCurrentMonster(ctx, &encounter.CaptureCurrentMonsterInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := out.Result.Wait(ctx); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := map[string]any{
		"captured": out.Captured,
		"monster":  nil,
	}
	if out.Monster != nil {
		resp["monster"] = monsterToMap(out.Monster)
	}

	return h.respond(resp)
}

// AbandonEncounter resets the battle cells
func (h *Handler) AbandonEncounter(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	if _, err := h.encounterService.AbandonEncounter(ctx, &encounter.AbandonEncounterInput{}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(map[string]any{})
}

// ListMonsters returns the owned monsters ordered by name, or by pokedex
// number when sort is "pokedex"
func (h *Handler) ListMonsters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	order, err := monsterSorter(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.collectionService.List(ctx, &collection.ListInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(map[string]any{"monsters": monstersToList(order(out.Monsters))})
}

// GetMonster returns a single owned monster
func (h *Handler) GetMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := idField(req, fieldMonsterID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.collectionService.Get(ctx, &collection.GetInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(monsterToMap(out.Monster))
}

// RenameMonster changes a nickname and waits for the write
func (h *Handler) RenameMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := idField(req, fieldMonsterID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.encounterService.UpdateMonsterName(ctx, &encounter.UpdateMonsterNameInput{
		MonsterID: id,
		Name:      req.GetFields()[fieldName].GetStringValue(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := out.Result.Wait(ctx); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	got, err := h.collectionService.Get(ctx, &collection.GetInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(monsterToMap(got.Monster))
}

// DeleteMonster releases a monster. Deleting an absent id succeeds.
func (h *Handler) DeleteMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := idField(req, fieldMonsterID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.encounterService.DeleteMonster(ctx, &encounter.DeleteMonsterInput{MonsterID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := out.Result.Wait(ctx); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(map[string]any{"monster_id": id})
}

// GetWorldMap returns per-biome progress
func (h *Handler) GetWorldMap(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return h.respond(worldMapToMap(h.progress.WorldMap()))
}

// GetTrainerStats returns collection statistics
func (h *Handler) GetTrainerStats(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return h.respond(statsToMap(h.progress.Stats()))
}

// WatchMonsters streams the owned list after every store write
func (h *Handler) WatchMonsters(req *structpb.Struct, stream StructStream) error {
	order, err := monsterSorter(req)
	if err != nil {
		return errors.ToGRPCError(err)
	}

	ch, err := h.collectionService.WatchAll(stream.Context())
	if err != nil {
		return errors.ToGRPCError(err)
	}

	for monsters := range ch {
		msg, err := toStruct(map[string]any{"monsters": monstersToList(order(monsters))})
		if err != nil {
			return errors.ToGRPCError(err)
		}
		if err := stream.Send(msg); err != nil {
			return err
		}
	}

	return nil
}

// WatchBattle streams battle snapshots as the encounter progresses
func (h *Handler) WatchBattle(_ *structpb.Struct, stream StructStream) error {
	ch, err := h.encounterService.WatchBattleState(stream.Context())
	if err != nil {
		return errors.ToGRPCError(err)
	}

	for state := range ch {
		msg, err := toStruct(battleStateToMap(state))
		if err != nil {
			return errors.ToGRPCError(err)
		}
		if err := stream.Send(msg); err != nil {
			return err
		}
	}

	return nil
}

// WatchWorldMap streams the world map whenever the collection changes
func (h *Handler) WatchWorldMap(_ *structpb.Struct, stream StructStream) error {
	for entries := range h.progress.WatchWorldMap(stream.Context()) {
		msg, err := toStruct(worldMapToMap(entries))
		if err != nil {
			return errors.ToGRPCError(err)
		}
		if err := stream.Send(msg); err != nil {
			return err
		}
	}

	return nil
}

func (h *Handler) respond(m map[string]any) (*structpb.Struct, error) {
	s, err := toStruct(m)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return s, nil
}
