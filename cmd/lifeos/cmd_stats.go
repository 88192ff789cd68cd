package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/7D-codes/lifeos-core/internal/derive"
)

// statsCmd prints dashboard statistics for the workspace.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dashboard statistics as JSON",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	snap, err := openWorkspace().Snapshot(cmd.Context())
	if err != nil {
		return err
	}

	stats := derive.Stats(snap, time.Now())
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
