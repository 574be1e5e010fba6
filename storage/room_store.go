package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aura-vc/aura-backend/models"
)

const (
	roomKeyPrefix = "room:"

	// RoomTTL is the retention window for a metadata record. Rooms older
	// than this disappear from the directory even if the media server
	// still hosts them.
	RoomTTL = 24 * time.Hour
)

// RoomStore persists room metadata in Redis under namespaced keys with a
// fixed TTL. It is a display cache, not the source of truth for room
// existence.
type RoomStore struct {
	client *redis.Client
}

func NewRoomStore(client *redis.Client) *RoomStore {
	return &RoomStore{client: client}
}

func roomKey(roomID string) string {
	return roomKeyPrefix + roomID
}

// Save writes the metadata record and (re)starts its expiry clock. An
// existing record under the same id is overwritten silently.
func (s *RoomStore) Save(ctx context.Context, meta *models.RoomMetadata) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal room %s: %w", meta.RoomID, err)
	}
	if err := s.client.Set(ctx, roomKey(meta.RoomID), data, RoomTTL).Err(); err != nil {
		return fmt.Errorf("save room %s: %w", meta.RoomID, err)
	}
	return nil
}

// Get returns the metadata record for roomID, or (nil, nil) when the key
// is missing or expired. Absence is an expected outcome, not an error.
func (s *RoomStore) Get(ctx context.Context, roomID string) (*models.RoomMetadata, error) {
	data, err := s.client.Get(ctx, roomKey(roomID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", roomID, err)
	}

	var meta models.RoomMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("unmarshal room %s: %w", roomID, err)
	}
	return &meta, nil
}

// Delete removes the record. Deleting an absent room is a no-op.
func (s *RoomStore) Delete(ctx context.Context, roomID string) error {
	if err := s.client.Del(ctx, roomKey(roomID)).Err(); err != nil {
		return fmt.Errorf("delete room %s: %w", roomID, err)
	}
	return nil
}

// List returns every non-expired metadata record. Keys that expire
// between the scan and the individual fetch are skipped; there is no
// snapshot isolation across the enumeration.
func (s *RoomStore) List(ctx context.Context) ([]models.RoomMetadata, error) {
	rooms := []models.RoomMetadata{}

	iter := s.client.Scan(ctx, 0, roomKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("list rooms: get %s: %w", iter.Val(), err)
		}

		var meta models.RoomMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			return nil, fmt.Errorf("list rooms: unmarshal %s: %w", iter.Val(), err)
		}
		rooms = append(rooms, meta)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("list rooms: scan: %w", err)
	}

	return rooms, nil
}

// RefreshTTL restarts the expiry window without rewriting the value.
// No-op when the room is absent.
func (s *RoomStore) RefreshTTL(ctx context.Context, roomID string) error {
	if err := s.client.Expire(ctx, roomKey(roomID), RoomTTL).Err(); err != nil {
		return fmt.Errorf("refresh ttl for room %s: %w", roomID, err)
	}
	return nil
}

// Ping round-trips to Redis; used by the health endpoint.
func (s *RoomStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
