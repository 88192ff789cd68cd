package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initWriteConfig bool

// initCmd creates the workspace directory skeleton.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the workspace directory skeleton",
	Long: `Creates the expected workspace layout if absent:

  tasks/                    one JSON record per task
  memory/daily/             daily markdown notes
  memory/facts/             one JSON record per fact
  life/areas/projects/      one directory per project
  .openclaw/                graph snapshot and tool metadata

Safe to run repeatedly; existing directories are left untouched.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	ws := openWorkspace()
	if err := ws.EnsureLayout(); err != nil {
		return fmt.Errorf("failed to create workspace layout: %w", err)
	}
	fmt.Printf("Workspace ready at %s\n", ws.Root())

	if initWriteConfig {
		if err := cfg.Save(configPath); err != nil {
			return err
		}
		fmt.Printf("Wrote config to %s\n", configPath)
	}
	return nil
}

func init() {
	initCmd.Flags().BoolVar(&initWriteConfig, "write-config", false, "also write the resolved config file")
}
