package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/brainmon-api/internal/handlers/brainmon/v1alpha1"
)

var monstersCmd = &cobra.Command{
	Use:   "monsters",
	Short: "Manage your monster collection",
}

var monstersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List owned monsters",
	Args:  cobra.NoArgs,
	RunE:  runMonstersList,
}

var monstersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one monster",
	Args:  cobra.ExactArgs(1),
	RunE:  runMonstersGet,
}

var monstersRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Give a monster a nickname",
	Args:  cobra.ExactArgs(2),
	RunE:  runMonstersRename,
}

var monstersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Release a monster",
	Args:  cobra.ExactArgs(1),
	RunE:  runMonstersDelete,
}

var monstersWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the collection every time it changes",
	Args:  cobra.NoArgs,
	RunE:  runMonstersWatch,
}

var pokedexOrder bool

func init() {
	monstersListCmd.Flags().BoolVar(&pokedexOrder, "pokedex", false, "Order by pokedex number instead of name")
	monstersWatchCmd.Flags().BoolVar(&pokedexOrder, "pokedex", false, "Order by pokedex number instead of name")

	monstersCmd.AddCommand(monstersListCmd)
	monstersCmd.AddCommand(monstersGetCmd)
	monstersCmd.AddCommand(monstersRenameCmd)
	monstersCmd.AddCommand(monstersDeleteCmd)
	monstersCmd.AddCommand(monstersWatchCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid monster id %q", arg)
	}
	return id, nil
}

func sortFields() map[string]any {
	if pokedexOrder {
		return map[string]any{"sort": "pokedex"}
	}
	return nil
}

func runMonstersList(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.MethodListMonsters, sortFields())
	if err != nil {
		return err
	}

	printMonsters(list(resp, "monsters"))
	return nil
}

func runMonstersGet(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	resp, err := call(v1alpha1.MethodGetMonster, map[string]any{"monster_id": id})
	if err != nil {
		return err
	}

	printJSON(resp)
	return nil
}

func runMonstersRename(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	resp, err := call(v1alpha1.MethodRenameMonster, map[string]any{
		"monster_id": id,
		"name":       args[1],
	})
	if err != nil {
		return err
	}

	fmt.Printf("Monster %d is now called %s\n", id, str(resp, "name"))
	return nil
}

func runMonstersDelete(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if _, err := call(v1alpha1.MethodDeleteMonster, map[string]any{"monster_id": id}); err != nil {
		return err
	}

	fmt.Printf("Released monster %d\n", id)
	return nil
}

func runMonstersWatch(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watch(ctx, v1alpha1.MethodWatchMonsters, sortFields(), func(msg *structpb.Struct) {
		fmt.Println("---")
		printMonsters(list(msg, "monsters"))
	})
}

func printMonsters(monsters []*structpb.Struct) {
	if len(monsters) == 0 {
		fmt.Println("No monsters caught yet.")
		return
	}

	fmt.Printf("Found %d monsters:\n\n", len(monsters))
	for _, m := range monsters {
		fmt.Printf("%4d  %-14s %-12s %-9s CP %d\n",
			num(m, "id"), str(m, "name"), str(m, "species"), str(m, "type"), num(m, "combat_power"))
	}
}
