package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/brainmon-api/internal/handlers/brainmon/v1alpha1"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Show the world map",
	Long:  `Show every biome with its trivia subject, completion and unlock requirement.`,
	RunE:  runExplore,
}

func runExplore(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.MethodGetWorldMap, nil)
	if err != nil {
		return err
	}

	for _, biome := range list(resp, "biomes") {
		status := "🔒"
		switch {
		case flag(biome, "complete"):
			status = "⭐"
		case flag(biome, "unlocked"):
			status = "🗺️"
		}

		fmt.Printf("%s %-13s %-10s %d/%d caught",
			status, str(biome, "name"), str(biome, "category"), num(biome, "caught"), num(biome, "capacity"))
		if !flag(biome, "unlocked") {
			fmt.Printf("  (needs %d)", num(biome, "requirement"))
		}
		fmt.Println()
	}

	return nil
}
