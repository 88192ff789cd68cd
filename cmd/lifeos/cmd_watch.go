package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/7D-codes/lifeos-core/internal/watch"
)

// watchCmd streams workspace change events to stdout.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream workspace change events",
	Long: `Watches the task, fact, daily-note, and project areas and prints one line
per settled change. Useful for confirming that capture tools are writing
where the dashboard reads.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(openWorkspace(), logger)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		w.Stop()
	}()

	for ev := range w.Events() {
		fmt.Printf("%s  %-6s %s\n", ev.Time.Format("15:04:05"), ev.Op, ev.Path)
	}

	stats := w.GetStats()
	fmt.Printf("created=%d modified=%d deleted=%d errors=%d\n",
		stats.Created, stats.Modified, stats.Deleted, stats.Errors)
	return nil
}
