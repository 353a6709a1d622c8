package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/brainmon-api/internal/handlers/brainmon/v1alpha1"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show trainer statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.MethodGetTrainerStats, nil)
	if err != nil {
		return err
	}

	fmt.Printf("Total caught:    %d\n", num(resp, "total_caught"))
	fmt.Printf("Unique species:  %d/151 (%.1f%%)\n",
		num(resp, "unique_species"), resp.GetFields()["completion_percent"].GetNumberValue())
	fmt.Printf("Total CP:        %d\n", num(resp, "total_cp"))
	fmt.Printf("Favourite type:  %s\n", str(resp, "favourite_type"))

	if strongest := resp.GetFields()["strongest"].GetStructValue(); strongest != nil {
		fmt.Printf("Strongest:       %s (CP %d)\n", str(strongest, "name"), num(strongest, "combat_power"))
	}

	return nil
}
