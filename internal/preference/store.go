// Package preference persists the last mood the user picked.
package preference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"coffee-scout/internal/mood"
)

// DefaultKey is the storage key holding the preference state.
const DefaultKey = "coffee_scout_state_v1"

var ErrCorruptState = errors.New("corrupt preference state")

// Store is a single-record key-value store for the mood preference.
// Save is an idempotent upsert.
type Store interface {
	Load(ctx context.Context) (mood.Mood, bool, error)
	Save(ctx context.Context, m mood.Mood) error
	Close() error
}

// state is the persisted document. It is an object rather than a bare
// string so new fields can be added without a migration.
type state struct {
	Mood string `json:"mood,omitempty"`
}

func encodeState(m mood.Mood) (string, error) {
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", mood.ErrUnknownMood, string(m))
	}
	payload, err := json.Marshal(state{Mood: string(m)})
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func decodeState(raw string) (mood.Mood, bool, error) {
	var s state
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if s.Mood == "" {
		return "", false, nil
	}
	m, err := mood.Parse(s.Mood)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return m, true, nil
}

// Preferences wraps a Store and never fails the caller on read: absent,
// corrupt or unreadable state all resolve to mood.Default.
type Preferences struct {
	store  Store
	logger *slog.Logger
}

func NewPreferences(store Store, logger *slog.Logger) *Preferences {
	return &Preferences{
		store:  store,
		logger: logger.With("component", "preferences"),
	}
}

// Mood returns the persisted mood or mood.Default.
func (p *Preferences) Mood(ctx context.Context) mood.Mood {
	m, ok, err := p.store.Load(ctx)
	if err != nil {
		p.logger.Warn("failed to load mood preference, using default",
			"default", mood.Default,
			"error", err,
		)
		return mood.Default
	}
	if !ok {
		return mood.Default
	}
	return m
}

// SetMood persists m.
func (p *Preferences) SetMood(ctx context.Context, m mood.Mood) error {
	if err := p.store.Save(ctx, m); err != nil {
		return fmt.Errorf("failed to save mood preference: %w", err)
	}
	p.logger.Debug("saved mood preference", "mood", m)
	return nil
}
