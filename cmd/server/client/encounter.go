package client

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/brainmon-api/internal/handlers/brainmon/v1alpha1"
)

var waitForFetch bool

var encounterCmd = &cobra.Command{
	Use:   "encounter",
	Short: "Battle wild monsters",
}

var encounterStartCmd = &cobra.Command{
	Use:   "start [biome]",
	Short: "Start an encounter in a biome",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEncounterStart,
}

var encounterStateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the current battle",
	Args:  cobra.NoArgs,
	RunE:  runEncounterState,
}

var encounterAnswerCmd = &cobra.Command{
	Use:   "answer <answer>",
	Short: "Answer the current trivia question",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncounterAnswer,
}

var encounterCaptureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture the current monster",
	Args:  cobra.NoArgs,
	RunE:  runEncounterCapture,
}

var encounterAbandonCmd = &cobra.Command{
	Use:   "abandon",
	Short: "Run away from the current encounter",
	Args:  cobra.NoArgs,
	RunE:  runEncounterAbandon,
}

func init() {
	encounterStartCmd.Flags().BoolVar(&waitForFetch, "wait", true, "Wait for the monster and question to load")

	encounterCmd.AddCommand(encounterStartCmd)
	encounterCmd.AddCommand(encounterStateCmd)
	encounterCmd.AddCommand(encounterAnswerCmd)
	encounterCmd.AddCommand(encounterCaptureCmd)
	encounterCmd.AddCommand(encounterAbandonCmd)
}

func runEncounterStart(_ *cobra.Command, args []string) error {
	biome := "plains"
	if len(args) == 1 {
		biome = args[0]
	}

	log.Printf("Exploring %s on %s...", biome, serverAddr)

	resp, err := call(v1alpha1.MethodStartEncounter, map[string]any{
		"biome_id": biome,
		"wait":     waitForFetch,
	})
	if err != nil {
		return err
	}

	fmt.Printf("A wild %s appeared! (encounter %s)\n", str(resp, "species"), str(resp, "encounter_id"))
	if state := resp.GetFields()["state"].GetStructValue(); state != nil {
		printBattle(state)
	}

	return nil
}

func runEncounterState(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.MethodGetBattleState, nil)
	if err != nil {
		return err
	}

	printBattle(resp)
	return nil
}

func runEncounterAnswer(_ *cobra.Command, args []string) error {
	resp, err := call(v1alpha1.MethodCheckAnswer, map[string]any{"answer": args[0]})
	if err != nil {
		return err
	}

	if flag(resp, "correct") {
		fmt.Println("✅ Correct! Use `encounter capture` to catch it.")
	} else {
		fmt.Println("❌ Incorrect.")
	}
	return nil
}

func runEncounterCapture(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.MethodCaptureMonster, nil)
	if err != nil {
		return err
	}

	if !flag(resp, "captured") {
		fmt.Println("There is nothing to capture.")
		return nil
	}

	monster := resp.GetFields()["monster"].GetStructValue()
	fmt.Printf("🎉 Caught %s (CP %d)!\n", str(monster, "name"), num(monster, "combat_power"))
	return nil
}

func runEncounterAbandon(_ *cobra.Command, _ []string) error {
	if _, err := call(v1alpha1.MethodAbandonEncounter, nil); err != nil {
		return err
	}

	fmt.Println("Got away safely.")
	return nil
}

func printBattle(state *structpb.Struct) {
	if str(state, "encounter_id") == "" {
		fmt.Println("No active encounter.")
		return
	}
	if flag(state, "search_error") {
		fmt.Println("⚠️  The monster ran away before the battle could start. Try again.")
		return
	}
	if flag(state, "loading") {
		fmt.Println("Loading...")
		return
	}

	fmt.Printf("Subject: %s   Difficulty: %s   CP: %d\n",
		str(state, "category"), str(state, "difficulty"), num(state, "combat_power"))

	if enc := state.GetFields()["encounter"].GetStructValue(); enc != nil {
		fmt.Printf("Monster: %s (#%d)\n", str(enc, "display_name"), num(enc, "pokedex_id"))
	}

	question := state.GetFields()["question"].GetStructValue()
	if question == nil {
		return
	}

	fmt.Printf("\n%s\n", str(question, "text"))
	for i, answer := range question.GetFields()["answers"].GetListValue().GetValues() {
		fmt.Printf("  %d. %s\n", i+1, answer.GetStringValue())
	}
}
