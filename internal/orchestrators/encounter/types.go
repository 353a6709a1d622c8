package encounter

import (
	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/task"
)

// Initial values of the battle cells
const (
	DifficultyUnknown = "Unknown"
	DifficultyLoading = "..."
)

// Outcome is the result of checking an answer
type Outcome int

// Outcome values
const (
	OutcomeIncorrect Outcome = iota
	OutcomeCorrect
)

func (o Outcome) String() string {
	if o == OutcomeCorrect {
		return "correct"
	}
	return "incorrect"
}

// BattleState is a consistent snapshot of every battle cell
type BattleState struct {
	// EncounterID identifies the StartEncounter call that owns this state;
	// empty when no encounter was started or it was abandoned
	EncounterID string
	BiomeID     string
	Species     string
	Category    string
	CategoryID  int
	Difficulty  string
	CombatPower int
	Loading     bool
	SearchError bool

	// Encounter and Question are nil until their fetches succeed
	Encounter *brainmon.Encounter
	Question  *brainmon.Question
}

// StartEncounterInput is the request for StartEncounter
type StartEncounterInput struct {
	BiomeID string
}

// StartEncounterOutput is the response for StartEncounter
type StartEncounterOutput struct {
	EncounterID string
	Species     string
	Category    string
	CategoryID  int
	// Result finishes when the creature and question fetches are done
	Result *task.Result
}

// CheckAnswerInput is the request for CheckAnswer
type CheckAnswerInput struct {
	Answer string
}

// CheckAnswerOutput is the response for CheckAnswer
type CheckAnswerOutput struct {
	Outcome Outcome
}

// CaptureCurrentMonsterInput is the request for CaptureCurrentMonster
type CaptureCurrentMonsterInput struct{}

// CaptureCurrentMonsterOutput is the response for CaptureCurrentMonster
type CaptureCurrentMonsterOutput struct {
	// Captured is false when no encounter was active
	Captured bool
	Monster  *brainmon.Monster
	// Result carries the store write error
	Result *task.Result
}

// UpdateMonsterNameInput is the request for UpdateMonsterName
type UpdateMonsterNameInput struct {
	MonsterID int64  `validate:"gt=0"`
	Name      string `validate:"required,max=40"`
}

// UpdateMonsterNameOutput is the response for UpdateMonsterName
type UpdateMonsterNameOutput struct {
	Result *task.Result
}

// DeleteMonsterInput is the request for DeleteMonster
type DeleteMonsterInput struct {
	MonsterID int64 `validate:"gt=0"`
}

// DeleteMonsterOutput is the response for DeleteMonster
type DeleteMonsterOutput struct {
	Result *task.Result
}

// AbandonEncounterInput is the request for AbandonEncounter
type AbandonEncounterInput struct{}

// AbandonEncounterOutput is the response for AbandonEncounter
type AbandonEncounterOutput struct{}

// GetBattleStateInput is the request for GetBattleState
type GetBattleStateInput struct{}

// GetBattleStateOutput is the response for GetBattleState
type GetBattleStateOutput struct {
	State *BattleState
}
