package wizard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// draftTTL bounds how long an abandoned draft survives in Redis.
const draftTTL = 24 * time.Hour

// RedisDraftStore persists drafts in Redis so they survive restarts and
// can be shared across instances.
type RedisDraftStore struct {
	client *redis.Client
}

func NewRedisDraftStore(addr string) *RedisDraftStore {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	return &RedisDraftStore{client: rdb}
}

func redisDraftKey(userID, draftID string) string {
	return "wizard:draft:" + userID + ":" + draftID
}

func (s *RedisDraftStore) Get(ctx context.Context, userID, draftID string) (*Draft, error) {
	raw, err := s.client.Get(ctx, redisDraftKey(userID, draftID)).Bytes()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}
	var d Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *RedisDraftStore) Save(ctx context.Context, draft *Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisDraftKey(draft.UserID, draft.ID), raw, draftTTL).Err()
}

func (s *RedisDraftStore) Delete(ctx context.Context, userID, draftID string) error {
	return s.client.Del(ctx, redisDraftKey(userID, draftID)).Err()
}

func (s *RedisDraftStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
