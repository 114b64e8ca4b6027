package cache

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/polycubes/voxel"
)

// Store persists one shape collection per polycube size.
type Store interface {
	// Load returns the collection stored for n, ErrMiss if there is none, or
	// an error wrapping ErrCorrupt if the record cannot be decoded.
	Load(n int) ([]*voxel.Grid, error)
	// Save replaces the record for n with shapes.
	Save(n int, shapes []*voxel.Grid) error
	// Exists reports whether a record for n is present. It does not decode it.
	Exists(n int) bool
}

var (
	_ Store = (*File)(nil)
	_ Store = (*SQLite)(nil)
	_ Store = (*Memory)(nil)
)

func checkLevel(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrBadLevel, n)
	}
	return nil
}

// Memory is an in-process Store. Records are held encoded, so loaded grids
// never alias saved ones. It is safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	records map[int][]byte
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[int][]byte)}
}

// Load implements Store.
func (m *Memory) Load(n int) ([]*voxel.Grid, error) {
	if err := checkLevel(n); err != nil {
		return nil, err
	}
	m.mu.RLock()
	rec, ok := m.records[n]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrMiss
	}
	return Decode(rec)
}

// Save implements Store.
func (m *Memory) Save(n int, shapes []*voxel.Grid) error {
	if err := checkLevel(n); err != nil {
		return err
	}
	rec := Encode(shapes)
	m.mu.Lock()
	m.records[n] = rec
	m.mu.Unlock()
	return nil
}

// Exists implements Store.
func (m *Memory) Exists(n int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.records[n]
	return ok
}

// Put stores a raw record for n, bypassing Encode.
func (m *Memory) Put(n int, rec []byte) {
	m.mu.Lock()
	m.records[n] = append([]byte(nil), rec...)
	m.mu.Unlock()
}
