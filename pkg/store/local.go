package store

import (
	"encoding/json"
	"log/slog"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/diary/pkg/diary"
)

// Local is the on-disk cache slot holding the last known document. It only
// exists for a fast first read and is always assumed to be stale relative to
// the remote record.
type Local struct {
	d        *diskv.Diskv
	key      string
	basePath string
	logger   *slog.Logger
}

// NewLocal opens the cache slot key under basePath. An empty basePath gives
// a cache with no storage behind it: Load returns an empty document and Save
// does nothing.
func NewLocal(basePath, key string, logger *slog.Logger) *Local {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Local{key: key, basePath: basePath, logger: logger}
	if basePath == "" || key == "" {
		return l
	}
	// No read cache: another process may rewrite the slot at any time.
	l.d = diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: flatTransform,
		InverseTransform:  flatInverseTransform,
		CacheSizeMax:      0,
	})
	return l
}

// Load returns the cached document, or an empty one when the slot is
// missing, unreadable or malformed.
func (l *Local) Load() *diary.Document {
	if l == nil || l.d == nil {
		return diary.New()
	}
	if !l.d.Has(l.key) {
		return diary.New()
	}
	val, err := l.d.Read(l.key)
	if err != nil {
		l.logger.Debug("local cache unreadable", "key", l.key, "err", err)
		return diary.New()
	}
	doc := &diary.Document{}
	if err := json.Unmarshal(val, doc); err != nil {
		l.logger.Debug("local cache malformed", "key", l.key, "err", err)
		return diary.New()
	}
	if doc.Logs == nil {
		doc.Logs = make(map[string]*diary.DailyLog)
	}
	if doc.Notes == nil {
		doc.Notes = []diary.Note{}
	}
	return doc
}

// Save writes the sanitized document to the slot. Failures are logged and
// otherwise ignored.
func (l *Local) Save(doc *diary.Document) {
	if l == nil || l.d == nil {
		return
	}
	data, err := diary.Encode(doc)
	if err != nil {
		l.logger.Warn("local cache encode failed", "err", err)
		return
	}
	if err := l.d.Write(l.key, data); err != nil {
		l.logger.Warn("local cache write failed", "key", l.key, "err", err)
	}
}

// Path is the file backing the slot.
func (l *Local) Path() string {
	return filepath.Join(l.basePath, l.key)
}

func flatTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func flatInverseTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
