package customizer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redispkg "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/redis"
)

// SessionKeyer builds the redis key for one browser session and product.
type SessionKeyer interface {
	CustomizerKey(sessionID, productSlug string) string
}

// Store persists customizer sessions as JSON blobs in redis. Each write
// refreshes the TTL, so a session stays alive as long as the user keeps
// editing.
type Store struct {
	store redispkg.CartStore
	keyer SessionKeyer
	ttl   time.Duration
}

func NewStore(store redispkg.CartStore, keyer SessionKeyer, ttl time.Duration) (*Store, error) {
	if store == nil || keyer == nil {
		return nil, fmt.Errorf("customizer store requires a redis store and keyer")
	}
	return &Store{store: store, keyer: keyer, ttl: ttl}, nil
}

// Load returns the stored session, or nil when none exists yet.
func (s *Store) Load(ctx context.Context, sessionID, productSlug string) (*Session, error) {
	raw, err := s.store.Get(ctx, s.keyer.CustomizerKey(sessionID, productSlug))
	if err != nil {
		if redispkg.IsNil(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load customizer session: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("decode customizer session: %w", err)
	}
	if session.Decals == nil {
		session.Decals = []Decal{}
	}
	return &session, nil
}

// Save writes the session back and refreshes the TTL.
func (s *Store) Save(ctx context.Context, sessionID string, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode customizer session: %w", err)
	}
	key := s.keyer.CustomizerKey(sessionID, session.ProductSlug)
	if err := s.store.Set(ctx, key, string(payload), s.ttl); err != nil {
		return fmt.Errorf("save customizer session: %w", err)
	}
	return nil
}

// Delete removes the stored session.
func (s *Store) Delete(ctx context.Context, sessionID, productSlug string) error {
	return s.store.Del(ctx, s.keyer.CustomizerKey(sessionID, productSlug))
}
