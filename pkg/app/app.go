package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tableflip.dev/diary/pkg/diary"
	"tableflip.dev/diary/pkg/store"
)

// DefaultDebounce is the quiet period before a change is persisted.
const DefaultDebounce = 150 * time.Millisecond

var (
	ErrNotFound    = errors.New("app: not found")
	ErrEmptyText   = errors.New("app: entry text is empty")
	ErrInvalidDate = errors.New("app: invalid date")
	ErrAmbiguous   = errors.New("app: ambiguous id")
	ErrNotToday    = errors.New("app: entries can only be deleted from today's log")
)

// Service owns the in-memory document of one session. It loads the local
// cache for an instant first read, lets the remote copy supersede it once it
// arrives, applies mutators and schedules persists. UIs and CLIs share it.
type Service struct {
	Store  *store.Store
	Clock  func() time.Time
	Logger *slog.Logger

	mu      sync.Mutex
	doc     *diary.Document
	gen     uint64
	persist *debouncer
}

// New creates a service over st that persists debounce after the last
// change. A zero debounce uses DefaultDebounce.
func New(st *store.Store, debounce time.Duration) *Service {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	s := &Service{Store: st}
	s.persist = newDebouncer(debounce, s.persistNow)
	return s
}

// Now is the current time of the service clock.
func (s *Service) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Today is the date key of the current clock time.
func (s *Service) Today() string {
	return diary.DateKey(s.Now())
}

// Open installs the local copy, with today's bucket, as the current document
// and starts fetching the remote copy. When the fetch completes and ctx is
// still live the remote copy replaces the current document wholesale; if ctx
// ended first the result is dropped. The returned channel is closed once the
// fetch has been applied or dropped.
func (s *Service) Open(ctx context.Context) <-chan struct{} {
	local := s.Store.LoadLocal()
	diary.EnsureDay(local, s.Today())

	s.mu.Lock()
	s.doc = local
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		remote := s.Store.Fetch(ctx)
		if ctx.Err() != nil {
			s.logger().Debug("discarding remote copy, session closed")
			return
		}
		diary.EnsureDay(remote, s.Today())

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen {
			return
		}
		s.doc = remote
	}()
	return done
}

// Sync opens the session and waits for the remote copy. One-shot callers use
// it so they mutate the latest document rather than the cache.
func (s *Service) Sync(ctx context.Context) error {
	select {
	case <-s.Open(ctx):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reload replaces the current document with the local cache. It follows
// writes made by another process.
func (s *Service) Reload() {
	local := s.Store.LoadLocal()
	diary.EnsureDay(local, s.Today())
	s.mu.Lock()
	s.doc = local
	s.gen++
	s.mu.Unlock()
}

// current must be called with s.mu held.
func (s *Service) current() *diary.Document {
	if s.doc == nil {
		s.doc = s.Store.LoadLocal()
		diary.EnsureDay(s.doc, s.Today())
	}
	return s.doc
}

// Document returns a copy of the current document.
func (s *Service) Document() *diary.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current().Clone()
}

// Day returns a copy of the bucket for key, which may be empty.
func (s *Service) Day(key string) (diary.DailyLog, error) {
	if _, err := diary.ParseDateKey(key); err != nil {
		return diary.DailyLog{}, fmt.Errorf("%w %q", ErrInvalidDate, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.current().Day(key)
	if !ok {
		return diary.DailyLog{Date: key, Entries: []diary.Entry{}}, nil
	}
	entries := make([]diary.Entry, len(day.Entries))
	copy(entries, day.Entries)
	return diary.DailyLog{Date: day.Date, Entries: entries}, nil
}

// FindEntry resolves ref, a full id or a unique id prefix, to an entry of
// the given day.
func (s *Service) FindEntry(dayKey, ref string) (diary.Entry, error) {
	day, err := s.Day(dayKey)
	if err != nil {
		return diary.Entry{}, err
	}
	var found []diary.Entry
	for _, e := range day.Entries {
		if e.ID == ref {
			return e, nil
		}
		if ref != "" && strings.HasPrefix(e.ID, ref) {
			found = append(found, e)
		}
	}
	switch len(found) {
	case 0:
		return diary.Entry{}, fmt.Errorf("%w: entry %s on %s", ErrNotFound, ref, dayKey)
	case 1:
		return found[0], nil
	}
	return diary.Entry{}, fmt.Errorf("%w: %s matches %d entries", ErrAmbiguous, ref, len(found))
}

// FindNote resolves ref, a full id or a unique id prefix, to a note.
func (s *Service) FindNote(ref string) (diary.Note, error) {
	var found []diary.Note
	for _, n := range s.Notes() {
		if n.ID == ref {
			return n, nil
		}
		if ref != "" && strings.HasPrefix(n.ID, ref) {
			found = append(found, n)
		}
	}
	switch len(found) {
	case 0:
		return diary.Note{}, fmt.Errorf("%w: note %s", ErrNotFound, ref)
	case 1:
		return found[0], nil
	}
	return diary.Note{}, fmt.Errorf("%w: %s matches %d notes", ErrAmbiguous, ref, len(found))
}

// AddEntry appends trimmed text to today's log and persists at once.
func (s *Service) AddEntry(text string, opts diary.EntryOptions) (diary.Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return diary.Entry{}, ErrEmptyText
	}
	s.mu.Lock()
	e := diary.AddEntry(s.current(), s.Now(), text, opts)
	s.mu.Unlock()
	s.persist.Now()
	return e, nil
}

// UpdateEntry patches an entry in the given day.
func (s *Service) UpdateEntry(dayKey, id string, patch diary.EntryPatch) (diary.Entry, error) {
	if _, err := diary.ParseDateKey(dayKey); err != nil {
		return diary.Entry{}, fmt.Errorf("%w %q", ErrInvalidDate, dayKey)
	}
	if patch.Text != nil {
		text := strings.TrimSpace(*patch.Text)
		if text == "" {
			return diary.Entry{}, ErrEmptyText
		}
		patch.Text = &text
	}
	s.mu.Lock()
	doc := s.current()
	if !diary.UpdateEntry(doc, dayKey, id, patch) {
		s.mu.Unlock()
		return diary.Entry{}, fmt.Errorf("%w: entry %s on %s", ErrNotFound, id, dayKey)
	}
	e, _, _ := doc.Entry(id)
	s.mu.Unlock()
	s.persist.Trigger()
	return e, nil
}

// DeleteEntry removes an entry from today's log and persists at once. Past
// days are append-only history.
func (s *Service) DeleteEntry(dayKey, id string) error {
	if _, err := diary.ParseDateKey(dayKey); err != nil {
		return fmt.Errorf("%w %q", ErrInvalidDate, dayKey)
	}
	if dayKey != s.Today() {
		return fmt.Errorf("%w: %s", ErrNotToday, dayKey)
	}
	s.mu.Lock()
	removed := diary.DeleteEntry(s.current(), dayKey, id)
	s.mu.Unlock()
	if !removed {
		return fmt.Errorf("%w: entry %s on %s", ErrNotFound, id, dayKey)
	}
	s.persist.Now()
	return nil
}

// AddNote appends a note.
func (s *Service) AddNote(in diary.NoteInput) diary.Note {
	s.mu.Lock()
	n := diary.AddNote(s.current(), s.Now(), in)
	s.mu.Unlock()
	s.persist.Trigger()
	return n
}

// UpdateNote patches the note with id.
func (s *Service) UpdateNote(id string, patch diary.NotePatch) (diary.Note, error) {
	s.mu.Lock()
	doc := s.current()
	if !diary.UpdateNote(doc, id, patch) {
		s.mu.Unlock()
		return diary.Note{}, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	n, _ := doc.Note(id)
	s.mu.Unlock()
	s.persist.Trigger()
	return n, nil
}

// DeleteNote removes the note with id.
func (s *Service) DeleteNote(id string) error {
	s.mu.Lock()
	removed := diary.DeleteNote(s.current(), id)
	s.mu.Unlock()
	if !removed {
		return fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	s.persist.Trigger()
	return nil
}

// Notes returns the notes in display order.
func (s *Service) Notes() []diary.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	notes := s.current().Notes
	out := make([]diary.Note, len(notes))
	copy(out, notes)
	return out
}

// Flush persists any pending change now and waits for remote writes.
func (s *Service) Flush() {
	s.persist.Flush()
	s.Store.Wait()
}

// Save persists the current document now and waits for the remote write.
func (s *Service) Save() {
	s.persist.Now()
	s.Store.Wait()
}

func (s *Service) persistNow() {
	s.mu.Lock()
	snapshot := diary.Sanitize(s.current())
	s.mu.Unlock()
	s.Store.Persist(snapshot)
}
