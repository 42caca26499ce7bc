package preference

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"coffee-scout/internal/mood"
)

// ValkeyStore persists the preference in a Valkey (Redis-compatible) server.
type ValkeyStore struct {
	client valkey.Client
	key    string
}

// NewValkeyStore connects to addr and stores the preference under key.
func NewValkeyStore(addr, key string) (*ValkeyStore, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{addr},
	})
	if err != nil {
		return nil, fmt.Errorf("valkey connect: %w", err)
	}
	return NewValkeyStoreWithClient(client, key), nil
}

func NewValkeyStoreWithClient(client valkey.Client, key string) *ValkeyStore {
	if key == "" {
		key = DefaultKey
	}
	return &ValkeyStore{client: client, key: key}
}

func (s *ValkeyStore) Load(ctx context.Context) (mood.Mood, bool, error) {
	raw, err := s.client.Do(ctx, s.client.B().Get().Key(s.key).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("valkey get: %w", err)
	}
	return decodeState(raw)
}

func (s *ValkeyStore) Save(ctx context.Context, m mood.Mood) error {
	raw, err := encodeState(m)
	if err != nil {
		return err
	}
	if err := s.client.Do(ctx, s.client.B().Set().Key(s.key).Value(raw).Build()).Error(); err != nil {
		return fmt.Errorf("valkey set: %w", err)
	}
	return nil
}

func (s *ValkeyStore) Close() error {
	s.client.Close()
	return nil
}

var _ Store = (*ValkeyStore)(nil)
