package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// File stores one JSON file per key under Dir.
type File struct {
	Dir string
}

func NewFile(dir string) (*File, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "storage: resolve data dir")
		}
		dir = filepath.Join(base, "stockfront")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "storage: create %s", dir)
	}
	return &File{Dir: dir}, nil
}

var keyReplacer = strings.NewReplacer(":", "_", "/", "_", `\`, "_", "..", "_")

func (f *File) path(key string) string {
	return filepath.Join(f.Dir, keyReplacer.Replace(key)+".json")
}

func (f *File) Load(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return b, errors.Wrapf(err, "storage: read %s", key)
}

// Save writes through a temp file so a crash never leaves half a document.
func (f *File) Save(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(f.Dir, ".tmp-*")
	if err != nil {
		return errors.Wrap(err, "storage: temp file")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "storage: write %s", key)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "storage: write %s", key)
	}
	return errors.Wrapf(os.Rename(tmp.Name(), f.path(key)), "storage: commit %s", key)
}

func (f *File) Remove(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return errors.Wrapf(err, "storage: remove %s", key)
}

func (f *File) Close() error { return nil }
