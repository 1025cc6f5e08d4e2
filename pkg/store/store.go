// Package store persists the diary document: a local cache slot for instant
// reads and one shared remote record that is the source of truth.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"tableflip.dev/diary/pkg/diary"
)

// Store pairs the local cache with an optional remote record.
type Store struct {
	Local  *Local
	Remote Remote // nil keeps everything local
	Logger *slog.Logger

	inflight sync.WaitGroup

	mu      sync.Mutex
	pending []byte // newest snapshot not yet handed to the writer
	writing bool
}

// Load opens the local cache and remote configured by cfg.
func Load(ctx context.Context, cfg *Config, logger *slog.Logger) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	remote, err := OpenRemote(ctx, cfg.Remote)
	if err != nil {
		return nil, err
	}
	return &Store{
		Local:  NewLocal(cfg.BasePath(), cfg.Key, logger),
		Remote: remote,
		Logger: logger,
	}, nil
}

func (s *Store) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// LoadLocal returns the cached document. It never fails.
func (s *Store) LoadLocal() *diary.Document {
	return s.Local.Load()
}

// SaveLocal writes the sanitized document to the cache, ignoring failures.
func (s *Store) SaveLocal(doc *diary.Document) {
	s.Local.Save(doc)
}

// Fetch reads the remote record. Any failure, including a record that was
// never written, falls back to LoadLocal. A fetched document is sanitized
// and written through to the local cache.
func (s *Store) Fetch(ctx context.Context) *diary.Document {
	if s.Remote == nil {
		return s.LoadLocal()
	}
	data, err := s.Remote.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger().Debug("remote record missing, using local cache")
		} else {
			s.logger().Debug("remote fetch failed, using local cache", "err", err)
		}
		return s.LoadLocal()
	}
	doc, err := diary.Decode(data)
	if err != nil {
		s.logger().Debug("remote record malformed, using local cache", "err", err)
		return s.LoadLocal()
	}
	s.SaveLocal(doc)
	return doc
}

// Persist writes the document to the local cache right away and to the
// remote record in the background. Remote writes go through one writer, one
// at a time and in call order; a snapshot superseded while an earlier write
// is in flight is skipped. Failures are only logged; use Wait to drain
// pending writes before exit.
func (s *Store) Persist(doc *diary.Document) {
	clean := diary.Sanitize(doc)
	s.SaveLocal(clean)
	if s.Remote == nil {
		return
	}
	data, err := diary.Encode(clean)
	if err != nil {
		s.logger().Warn("encode for remote failed", "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = data
	if s.writing {
		return
	}
	s.writing = true
	s.inflight.Add(1)
	go s.drain()
}

func (s *Store) drain() {
	defer s.inflight.Done()
	for {
		s.mu.Lock()
		data := s.pending
		s.pending = nil
		if data == nil {
			s.writing = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		if err := s.Remote.Put(context.Background(), data); err != nil {
			s.logger().Warn("remote write dropped", "err", err)
		}
	}
}

// Wait blocks until every remote write started by Persist has finished.
func (s *Store) Wait() {
	s.inflight.Wait()
}

// Close waits for pending writes and releases the remote.
func (s *Store) Close() error {
	s.Wait()
	if s.Remote == nil {
		return nil
	}
	return s.Remote.Close()
}
