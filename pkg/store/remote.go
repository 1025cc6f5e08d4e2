package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Remote.Get when the record has never been
// written.
var ErrNotFound = errors.New("store: remote record not found")

// Remote is the single shared record that acts as the source of truth across
// devices. Implementations move the JSON form of the document and know
// nothing about its shape.
type Remote interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, data []byte) error
	Close() error
}

// Address names the remote record: a collection (table, bucket, key prefix)
// and the record id inside it.
type Address struct {
	Collection string
	Record     string
}

func (a Address) String() string {
	return a.Collection + "/" + a.Record
}

// OpenRemote builds the remote selected by cfg. The none driver returns a nil
// Remote, which makes the Store local only. Constructors do not dial: an
// unreachable remote only shows up as failed reads and writes.
func OpenRemote(ctx context.Context, cfg RemoteConfig) (Remote, error) {
	addr := Address{Collection: cfg.Collection, Record: cfg.Record}
	var (
		remote Remote
		err    error
	)
	switch cfg.Driver {
	case "", DriverNone:
		return nil, nil
	case DriverRedis:
		remote, err = NewRedisRemote(cfg.URL, addr)
	case DriverS3:
		remote, err = NewS3Remote(cfg.S3, addr)
	case DriverPostgres:
		remote, err = NewPostgresRemote(ctx, cfg.URL, addr)
	case DriverSQLite:
		remote, err = NewSQLiteRemote(cfg.URL, addr)
	default:
		return nil, fmt.Errorf("store: unknown remote driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	return remote, nil
}
