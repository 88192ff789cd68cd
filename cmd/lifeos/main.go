package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/7D-codes/lifeos-core/internal/config"
	"github.com/7D-codes/lifeos-core/internal/workspace"
)

var (
	// Global flags
	configPath    string
	workspaceFlag string
	verbose       bool

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lifeos",
	Short: "LifeOS - personal productivity dashboard over a file-backed workspace",
	Long: `lifeos reads tasks, projects, facts, and the knowledge graph from a
file-backed workspace (JSON records and markdown notes on disk), serves them
over an HTTP JSON API, and supports limited write-back of task status,
priority, and assignment.

The workspace root is resolved from --workspace, then LIFEOS_WORKSPACE /
WORKSPACE_PATH, then the config file, then the default ~/.openclaw/workspace.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The logger has to exist before config loads so parse failures can
		// be reported; the configured level is applied right after.
		level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
		zapCfg := zap.NewProductionConfig()
		zapCfg.Level = level

		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if workspaceFlag != "" {
			cfg.Workspace = workspaceFlag
		}

		if verbose {
			level.SetLevel(zapcore.DebugLevel)
		} else if lvl, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
			level.SetLevel(lvl)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// openWorkspace builds the Workspace handle from the resolved configuration.
func openWorkspace() *workspace.Workspace {
	return workspace.New(cfg.WorkspaceRoot(), logger)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "", "workspace root (overrides config and environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
