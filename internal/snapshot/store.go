// Package snapshot persists a Base Provider Context on request so a
// restarted host can resume mid-song instead of re-deriving score,
// pose, and color channels from scratch.
//
// The store prefers Redis and falls back to an in-memory map when no
// server is reachable. It lives outside the core engine: the engine
// itself never persists state; a host that wants persistence calls
// into this package around its own tick loop.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bsq-ports/tracks-rs/internal/baseprovider"
	"github.com/bsq-ports/tracks-rs/pkg/trackstypes"
)

const keyPrefix = "tracks:snapshot:"

// Snapshot is the persisted shape: one ValueDTO per channel named in
// it, plus the song time it was taken at.
type Snapshot struct {
	SongTime float32                         `json:"song_time"`
	Channels map[string]trackstypes.ValueDTO `json:"channels"`
}

// Store saves and loads Base Provider Context snapshots keyed by an
// arbitrary session id (e.g. a song or play-session identifier).
type Store struct {
	redis    *redis.Client
	ctx      context.Context
	useRedis bool

	mu    sync.RWMutex
	local map[string]Snapshot
}

// New connects to addr if non-empty, falling back to an in-memory
// store (lost on process exit) if the connection fails or addr is
// empty.
func New(addr, password string, db int) *Store {
	s := &Store{ctx: context.Background(), local: make(map[string]Snapshot)}

	if addr == "" {
		log.Println("[snapshot] redis not configured, using in-memory storage")
		return s
	}

	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(s.ctx).Err(); err != nil {
		log.Printf("[snapshot] redis connection failed: %v (falling back to in-memory)", err)
		return s
	}

	log.Printf("[snapshot] connected to redis at %s", addr)
	s.redis = client
	s.useRedis = true
	return s
}

// Save persists ctx's channels under sessionID. The expiry applies to
// the Redis store only; in-memory snapshots do not expire.
func (s *Store) Save(sessionID string, ctx *baseprovider.Context, songTime float32, expiry time.Duration) error {
	snap := Snapshot{SongTime: songTime, Channels: make(map[string]trackstypes.ValueDTO)}
	for _, channel := range baseprovider.KnownChannels() {
		v, err := ctx.Get(channel)
		if err != nil {
			return err
		}
		snap.Channels[channel] = trackstypes.FromValue(v)
	}

	if s.useRedis {
		data, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("snapshot: marshal: %w", err)
		}
		if err := s.redis.Set(s.ctx, keyPrefix+sessionID, data, expiry).Err(); err != nil {
			return fmt.Errorf("snapshot: redis set: %w", err)
		}
		return nil
	}

	s.mu.Lock()
	s.local[sessionID] = snap
	s.mu.Unlock()
	return nil
}

// Load restores a previously saved snapshot's channels into ctx,
// reporting false if no snapshot exists for sessionID.
func (s *Store) Load(sessionID string, ctx *baseprovider.Context) (float32, bool, error) {
	snap, ok, err := s.fetch(sessionID)
	if err != nil || !ok {
		return 0, ok, err
	}
	for channel, dto := range snap.Channels {
		v, err := dto.ToValue()
		if err != nil {
			return 0, false, fmt.Errorf("snapshot: channel %q: %w", channel, err)
		}
		if err := ctx.Set(channel, v); err != nil {
			return 0, false, err
		}
	}
	return snap.SongTime, true, nil
}

func (s *Store) fetch(sessionID string) (Snapshot, bool, error) {
	if s.useRedis {
		data, err := s.redis.Get(s.ctx, keyPrefix+sessionID).Bytes()
		if err == redis.Nil {
			return Snapshot{}, false, nil
		}
		if err != nil {
			return Snapshot{}, false, fmt.Errorf("snapshot: redis get: %w", err)
		}
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return Snapshot{}, false, fmt.Errorf("snapshot: unmarshal: %w", err)
		}
		return snap, true, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.local[sessionID]
	return snap, ok, nil
}

// Close releases the underlying Redis client, if any.
func (s *Store) Close() error {
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}
