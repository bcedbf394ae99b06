package main

import (
	"context"
	"path/filepath"

	"github.com/varnam/knownwords/internal/iostore"
	"github.com/varnam/knownwords/pkg/store"
)

// openStore opens the per-language store file for lang under the
// configured store directory, by convention "<lang>.vst.learnings"
// (spec §9).
func openStore(ctx context.Context, lang string) (store.Store, error) {
	path := filepath.Join(cfg.Store.Dir, lang+".vst.learnings")
	return iostore.Open(ctx, path, cfg.Store.LearnMode)
}
