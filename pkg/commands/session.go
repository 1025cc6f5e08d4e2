package commands

import (
	"context"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/store"
)

// session is one command's view of the diary: the loaded config, the store
// and a service that has already reconciled with the remote record.
type session struct {
	Config *store.Config
	Store  *store.Store
	App    *app.Service
}

// openSession loads the configuration, opens the store and waits for the
// remote copy so mutations apply to the latest document.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	st, err := store.Load(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	svc := app.New(st, cfg.Debounce)
	svc.Logger = logger
	if err := svc.Sync(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}
	return &session{Config: cfg, Store: st, App: svc}, nil
}

// Close flushes pending writes and releases the remote.
func (s *session) Close() {
	s.App.Flush()
	if err := s.Store.Close(); err != nil {
		logger.Debug("closing remote", "err", err)
	}
}
