package preference

import (
	"fmt"
	"strings"

	"coffee-scout/internal/config"
)

// Open returns the store selected by cfg.Preference.Backend.
func Open(cfg *config.Config) (Store, error) {
	key := cfg.Preference.Key
	if key == "" {
		key = DefaultKey
	}

	switch strings.ToLower(cfg.Preference.Backend) {
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		store, err := NewSQLiteStore(cfg.Preference.SQLitePath, key)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "valkey":
		store, err := NewValkeyStore(cfg.Preference.ValkeyAddr, key)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported preference backend %q", cfg.Preference.Backend)
	}
}
