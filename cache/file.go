package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/polycubes/voxel"
)

// File stores each level as "cubes_<n>.bin" inside Dir.
type File struct {
	Dir string
}

// NewFile returns a File store rooted at dir. The directory is created on the
// first Save.
func NewFile(dir string) *File {
	return &File{Dir: dir}
}

// Path returns the file that holds the record for n.
func (f *File) Path(n int) string {
	return filepath.Join(f.Dir, fmt.Sprintf("cubes_%d.bin", n))
}

// Load implements Store.
func (f *File) Load(n int) ([]*voxel.Grid, error) {
	if err := checkLevel(n); err != nil {
		return nil, err
	}
	path := f.Path(n)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache: read %s: %w", path, err)
	}
	shapes, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("cache: %s: %w", path, err)
	}
	return shapes, nil
}

// Save implements Store. The record is written to a temporary file in Dir
// and renamed into place, so readers never observe a half-written record.
func (f *File) Save(n int, shapes []*voxel.Grid) error {
	if err := checkLevel(n); err != nil {
		return err
	}
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("cache: create dir: %w", err)
	}
	tmp, err := os.CreateTemp(f.Dir, fmt.Sprintf(".cubes_%d-*.tmp", n))
	if err != nil {
		return fmt.Errorf("cache: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(Encode(shapes)); err != nil {
		tmp.Close()
		return fmt.Errorf("cache: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cache: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.Path(n)); err != nil {
		return fmt.Errorf("cache: rename into %s: %w", f.Path(n), err)
	}
	return nil
}

// Exists implements Store.
func (f *File) Exists(n int) bool {
	if n < 1 {
		return false
	}
	info, err := os.Stat(f.Path(n))
	return err == nil && info.Mode().IsRegular()
}

// Remove deletes the record for n. A missing record is not an error.
func (f *File) Remove(n int) error {
	err := os.Remove(f.Path(n))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cache: remove: %w", err)
	}
	return nil
}
