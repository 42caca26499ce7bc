package preference

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"coffee-scout/internal/mood"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type failingStore struct {
	err error
}

func (f *failingStore) Load(context.Context) (mood.Mood, bool, error) { return "", false, f.err }
func (f *failingStore) Save(context.Context, mood.Mood) error         { return f.err }
func (f *failingStore) Close() error                                  { return nil }

func TestDecodeState(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    mood.Mood
		wantOK  bool
		wantErr bool
	}{
		{name: "valid", raw: `{"mood":"chill"}`, want: mood.Chill, wantOK: true},
		{name: "empty object", raw: `{}`, wantOK: false},
		{name: "not json", raw: `chill`, wantErr: true},
		{name: "unknown mood", raw: `{"mood":"sleepy"}`, wantErr: true},
		{name: "wrong type", raw: `{"mood":42}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := decodeState(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrCorruptState) {
					t.Errorf("decodeState(%q) error = %v, want ErrCorruptState", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeState(%q) unexpected error = %v", tt.raw, err)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("decodeState(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStores_SaveAndLoad(t *testing.T) {
	sqliteStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "prefs.db"), "")
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}

	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqliteStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			defer func() { _ = store.Close() }()
			ctx := context.Background()

			if _, ok, err := store.Load(ctx); err != nil || ok {
				t.Fatalf("Load() on empty store = (ok=%v, err=%v), want (false, nil)", ok, err)
			}

			for _, m := range []mood.Mood{mood.Social, mood.Creative, mood.Creative} {
				if err := store.Save(ctx, m); err != nil {
					t.Fatalf("Save(%q) error = %v", m, err)
				}
				got, ok, err := store.Load(ctx)
				if err != nil || !ok {
					t.Fatalf("Load() = (ok=%v, err=%v), want (true, nil)", ok, err)
				}
				if got != m {
					t.Errorf("Load() = %q, want %q", got, m)
				}
			}

			if err := store.Save(ctx, mood.Mood("sleepy")); !errors.Is(err, mood.ErrUnknownMood) {
				t.Errorf("Save(invalid) error = %v, want ErrUnknownMood", err)
			}
		})
	}
}

func TestSQLiteStore_CorruptValue(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "prefs.db"), "state")
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	if err := store.putRaw(ctx, "{not json"); err != nil {
		t.Fatalf("putRaw() error = %v", err)
	}

	if _, _, err := store.Load(ctx); !errors.Is(err, ErrCorruptState) {
		t.Fatalf("Load() error = %v, want ErrCorruptState", err)
	}

	prefs := NewPreferences(store, discardLogger())
	if got := prefs.Mood(ctx); got != mood.Default {
		t.Errorf("Mood() = %q, want %q", got, mood.Default)
	}
}

func TestPreferences_Mood(t *testing.T) {
	ctx := context.Background()

	t.Run("absent state defaults to focused", func(t *testing.T) {
		prefs := NewPreferences(NewMemoryStore(), discardLogger())
		if got := prefs.Mood(ctx); got != mood.Focused {
			t.Errorf("Mood() = %q, want %q", got, mood.Focused)
		}
	})

	t.Run("store error defaults to focused", func(t *testing.T) {
		prefs := NewPreferences(&failingStore{err: errors.New("disk on fire")}, discardLogger())
		if got := prefs.Mood(ctx); got != mood.Focused {
			t.Errorf("Mood() = %q, want %q", got, mood.Focused)
		}
	})

	t.Run("persisted mood is returned", func(t *testing.T) {
		prefs := NewPreferences(NewMemoryStore(), discardLogger())
		if err := prefs.SetMood(ctx, mood.Energetic); err != nil {
			t.Fatalf("SetMood() error = %v", err)
		}
		if got := prefs.Mood(ctx); got != mood.Energetic {
			t.Errorf("Mood() = %q, want %q", got, mood.Energetic)
		}
	})

	t.Run("save error is surfaced", func(t *testing.T) {
		prefs := NewPreferences(&failingStore{err: errors.New("read only")}, discardLogger())
		if err := prefs.SetMood(ctx, mood.Chill); err == nil {
			t.Error("SetMood() expected error but got none")
		}
	})
}
