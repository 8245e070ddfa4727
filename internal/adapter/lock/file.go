package lock

import (
	"context"
	"fmt"

	"github.com/gofrs/flock"

	"github.com/heartmarshall/community-bots/internal/domain"
)

// File guards runs on a single host with flock(2).
type File struct {
	path string
}

// NewFile creates a file lock at path. The file is created on first use.
func NewFile(path string) *File {
	return &File{path: path}
}

// TryLock implements Locker.
func (f *File) TryLock(context.Context) (Release, error) {
	fl := flock.New(f.path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", f.path, err)
	}
	if !ok {
		return nil, domain.ErrRunInProgress
	}

	return func(context.Context) error {
		if err := fl.Unlock(); err != nil {
			return fmt.Errorf("lock %s: unlock: %w", f.path, err)
		}
		return nil
	}, nil
}
