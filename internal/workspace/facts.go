package workspace

import (
	"path/filepath"
	"sort"

	"github.com/7D-codes/lifeos-core/internal/types"
)

// Facts loads every fact record, ordered by creation timestamp descending.
// Facts are read-only; there is no write path for them here.
func (w *Workspace) Facts() []types.Fact {
	dir := w.FactsDir()

	var facts []types.Fact
	for _, name := range listFiles(dir, ".json") {
		var f types.Fact
		if readJSON(w.log, filepath.Join(dir, name), &f) {
			facts = append(facts, f)
		}
	}

	sort.SliceStable(facts, func(i, j int) bool {
		return facts[i].CreatedAt.After(facts[j].CreatedAt)
	})
	return facts
}
