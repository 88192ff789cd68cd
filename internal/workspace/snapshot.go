package workspace

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/7D-codes/lifeos-core/internal/types"
)

// Snapshot loads all four collections concurrently and assembles the full
// in-memory view. Per-record failures have already been absorbed by the
// individual loaders, so the only errors that can surface here are
// unexpected ones (and context cancellation).
func (w *Workspace) Snapshot(ctx context.Context) (*types.Snapshot, error) {
	snap := &types.Snapshot{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.Tasks = w.Tasks()
		return nil
	})
	g.Go(func() error {
		snap.Projects = w.Projects()
		return nil
	})
	g.Go(func() error {
		snap.Facts = w.Facts()
		return nil
	})
	g.Go(func() error {
		snap.Graph = w.Graph()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return snap, nil
}
