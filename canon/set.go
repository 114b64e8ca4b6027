package canon

import "github.com/katalvlaran/polycubes/voxel"

// Set holds one fingerprint per accepted shape and answers "has a rotation of
// this shape been accepted already?". A Set is not safe for concurrent use.
type Set struct {
	keys map[string]struct{}
	buf  []byte
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{keys: make(map[string]struct{})}
}

// Len returns the number of stored fingerprints.
func (s *Set) Len() int {
	return len(s.keys)
}

// Contains reports whether k is stored as-is.
func (s *Set) Contains(k Key) bool {
	_, ok := s.keys[string(k)]
	return ok
}

// Add stores the fingerprint of g in its current orientation only.
// Reports whether the key was new.
func (s *Set) Add(g *voxel.Grid) bool {
	k := string(identity.AppendKey(nil, g))
	if _, ok := s.keys[k]; ok {
		return false
	}
	s.keys[k] = struct{}{}
	return true
}

// IsDuplicate reports whether any of the 24 rotations of g is stored.
// It returns true on the first hit; a new shape costs all 24 lookups.
func (s *Set) IsDuplicate(g *voxel.Grid) bool {
	for _, r := range table {
		s.buf = r.AppendKey(s.buf[:0], g)
		if _, ok := s.keys[string(s.buf)]; ok {
			return true
		}
	}
	return false
}
