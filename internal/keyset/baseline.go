package keyset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gofrs/flock"

	"ocrcorpus/internal/fileutil"
)

var (
	// ErrBaselineMissing is returned when the baseline key list does not exist.
	// The merge has no defined starting point without it.
	ErrBaselineMissing = errors.New("keyset: baseline key list not found")
	// ErrReadOnly is returned by Commit on a baseline opened with OpenReadOnly.
	ErrReadOnly = errors.New("keyset: baseline opened read-only")
)

// Baseline is an open read-then-write transaction over a baseline key list.
// The lock is taken on the baseline file itself, so nothing is created next
// to it, and is held until Close.
type Baseline struct {
	path     string
	text     string
	readOnly bool
	lock     *flock.Flock
}

// Open takes an exclusive lock on path and reads its contents. Use it when
// the merged keys will be committed back.
func Open(path string) (*Baseline, error) {
	return open(path, false)
}

// OpenReadOnly takes a shared lock on path and reads its contents. Any number
// of read-only runs may share a baseline; an exclusive holder excludes them.
// Only read access to the file is required.
func OpenReadOnly(path string) (*Baseline, error) {
	return open(path, true)
}

func open(path string, readOnly bool) (*Baseline, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBaselineMissing, path)
		}
		return nil, fmt.Errorf("stat baseline %s: %w", path, err)
	}

	// No O_CREATE: a baseline removed after the stat must not be recreated empty.
	lock := flock.New(path, flock.SetFlag(os.O_RDONLY))
	try := lock.TryLock
	if readOnly {
		try = lock.TryRLock
	}
	ok, err := try()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBaselineMissing, path)
		}
		return nil, fmt.Errorf("lock baseline %s: %w", path, err)
	}
	if !ok {
		_ = lock.Close()
		return nil, fmt.Errorf("baseline %s is locked by another run", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("read baseline %s: %w", path, err)
	}

	return &Baseline{path: path, text: string(data), readOnly: readOnly, lock: lock}, nil
}

// Path returns the baseline file location.
func (b *Baseline) Path() string { return b.path }

// Text returns the baseline contents as read by Open.
func (b *Baseline) Text() string { return b.text }

// ReadOnly reports whether the baseline was opened with OpenReadOnly.
func (b *Baseline) ReadOnly() bool { return b.readOnly }

// Merge folds keys into the baseline text without persisting anything.
func (b *Baseline) Merge(keys []rune) (string, []rune) {
	return Merge(b.text, keys)
}

// Commit persists merged as the new baseline. Unchanged text is not rewritten.
func (b *Baseline) Commit(merged string) error {
	if merged == b.text {
		return nil
	}
	if b.readOnly {
		return fmt.Errorf("update baseline %s: %w", b.path, ErrReadOnly)
	}
	if err := fileutil.WriteStringAtomic(b.path, merged); err != nil {
		return fmt.Errorf("update baseline: %w", err)
	}
	b.text = merged
	return nil
}

// Close releases the lock.
func (b *Baseline) Close() error {
	if b == nil || b.lock == nil {
		return nil
	}
	return b.lock.Close()
}
