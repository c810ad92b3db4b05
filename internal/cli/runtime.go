package cli

import (
	"context"
	"fmt"

	"github.com/seismiclabs/marketplace/internal/marketplace/catalog"
	"github.com/seismiclabs/marketplace/internal/marketplace/config"
	"github.com/seismiclabs/marketplace/internal/marketplace/kvstore"
)

// openStore opens the configured storage backend and loads the catalog.
// The returned close function must be called when the command is done.
func openStore(ctx context.Context) (*catalog.Store, func(), error) {
	cfg := config.Config()

	var kv kvstore.KV
	switch cfg.Storage.Backend {
	case "memory":
		kv = kvstore.NewMemory()
	default:
		var err error
		kv, err = kvstore.NewSQLite(ctx, cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening catalog storage: %w", err)
		}
	}

	store := catalog.NewStore(kv,
		catalog.WithCatalogKey(cfg.Storage.Key),
		catalog.WithStrictImport(cfg.StrictImport),
	)
	if err := store.Load(ctx); err != nil {
		_ = kv.Close()
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}

	closeFn := func() { _ = kv.Close() }
	return store, closeFn, nil
}

// newRanker builds the listing ranker from the configured collation.
func newRanker() *catalog.Ranker {
	return catalog.NewRanker(config.Config().CollationTag())
}
