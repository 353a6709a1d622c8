// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/brainmon-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "brainmon",
	Short: "BrainMon API gRPC Server",
	Long:  `BrainMon API serves a monster catalog and trivia battles over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
