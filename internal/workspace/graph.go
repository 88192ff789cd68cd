package workspace

import "github.com/7D-codes/lifeos-core/internal/types"

// Graph loads the knowledge-graph snapshot. Returns nil when the snapshot is
// absent or malformed; the dashboard never reconstructs it.
func (w *Workspace) Graph() *types.GraphData {
	var g types.GraphData
	if !readJSON(w.log, w.GraphPath(), &g) {
		return nil
	}
	return &g
}
