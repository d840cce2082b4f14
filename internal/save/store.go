package save

import "context"

// Store is the persistence gateway: whole-snapshot load/save. A save
// either fully succeeds or leaves the prior snapshot untouched.
type Store interface {
	// Load returns the stored snapshot. ok is false when no usable
	// snapshot exists; the caller starts a fresh game in that case.
	Load(ctx context.Context) (snap Snapshot, ok bool, err error)
	Save(ctx context.Context, snap Snapshot) error
	Close() error
}
