package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/7D-codes/lifeos-core/internal/notes"
	"github.com/7D-codes/lifeos-core/internal/types"
)

var notesCapture bool

// notesCmd renders a daily note and its extracted tasks.
var notesCmd = &cobra.Command{
	Use:   "notes [YYYY-MM-DD]",
	Short: "Show a daily note with its extracted tasks and time blocks",
	Long: `Renders the daily note for the given date (default today) and lists the
checkbox tasks and time blocks extracted from it.

With --capture, unchecked tasks from the note are written to the tasks area
as real task records with fresh ids. Capture does not deduplicate: running it
twice on the same note creates the tasks twice.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNotes,
}

func runNotes(cmd *cobra.Command, args []string) error {
	ws := openWorkspace()

	date := time.Now()
	if len(args) == 1 {
		parsed, err := time.Parse("2006-01-02", args[0])
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", args[0], err)
		}
		date = parsed
	}

	note, ok := notes.NoteForDate(ws.DailyDir(), date)
	if !ok {
		fmt.Printf("No note for %s\n", types.DateOf(date))
		return nil
	}

	rendered, err := glamour.Render(note.Content, "dark")
	if err != nil {
		// Fall back to the raw markdown rather than failing the command.
		rendered = note.Content
	}
	fmt.Print(rendered)

	if len(note.Blocks) > 0 {
		fmt.Println("Time blocks:")
		for _, b := range note.Blocks {
			fmt.Printf("  %s-%s  %-10s %s\n", b.Start, b.End, b.Type, b.Title)
		}
	}

	if len(note.Tasks) > 0 {
		fmt.Println("Tasks:")
		for _, t := range note.Tasks {
			mark := " "
			if t.Status == types.StatusDone {
				mark = "x"
			}
			fmt.Printf("  [%s] %s (%s)\n", mark, t.Title, t.Priority)
		}
	}

	if notesCapture {
		captured := 0
		for _, t := range note.Tasks {
			if t.Status == types.StatusDone {
				continue
			}
			t.ID = uuid.New().String()
			t.CreatedAt = time.Now().UTC()
			if err := ws.SaveTask(&t); err != nil {
				return err
			}
			logger.Info("captured task from note",
				zap.String("task", t.ID),
				zap.String("title", t.Title))
			captured++
		}
		fmt.Printf("Captured %d task(s) from %s\n", captured, types.DateOf(date))
	}
	return nil
}

func init() {
	notesCmd.Flags().BoolVar(&notesCapture, "capture", false, "write unchecked note tasks to the tasks area")
}
