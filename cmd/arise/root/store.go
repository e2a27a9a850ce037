package root

import (
	"context"

	"arise/internal/config"
	"arise/internal/game"
	"arise/internal/storage"
)

func openService(ctx context.Context, out printer) (*game.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	svc, err := game.Load(ctx, storage.NewStateRepo(db),
		game.WithBalance(cfg.Balance),
		game.WithNotifier(toastNotifier{out: out}),
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
