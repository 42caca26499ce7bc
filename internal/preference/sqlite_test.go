package preference

import (
	"context"
)

// putRaw writes an arbitrary value under the store key.
func (s *SQLiteStore) putRaw(ctx context.Context, raw string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		s.key, raw,
	)
	return err
}
