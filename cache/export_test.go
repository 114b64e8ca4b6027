package cache

// PutRaw writes an arbitrary row so tests can plant corrupt records.
func (s *SQLite) PutRaw(n, count int, data []byte) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO polycubes (n, shape_count, data) VALUES (?, ?, ?)`, n, count, data)
	return err
}
