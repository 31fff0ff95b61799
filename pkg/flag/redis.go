package flag

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// enabledField is the hash field holding the canonical enabled marker.
	enabledField = "enabled"

	// defaultAddBatchSize bounds the number of members written per SADD so
	// large allow-lists stay within backend batch limits. Chunked writes are
	// not atomic: a concurrent reader can observe a partially written list.
	defaultAddBatchSize = 512
)

// RedisStore is a Redis-backed Store implementation.
//
// Persisted layout, per flag name:
//
//	<prefix>:<name>:info   hash, field "enabled" -> "true" | "false"
//	<prefix>:<name>:users  set of raw user identifier strings
//
// Identical flag names under different prefixes are fully independent.
type RedisStore struct {
	db           redis.UniversalClient
	prefix       string
	addBatchSize int
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithAddBatchSize overrides the allow-list write batch size.
// Non-positive values are ignored.
func WithAddBatchSize(n int) RedisStoreOption {
	return func(s *RedisStore) {
		if n > 0 {
			s.addBatchSize = n
		}
	}
}

// NewRedisStore creates a Store backed by the given Redis client.
// The prefix namespaces every key the store touches; callers sharing a
// Redis database must pick distinct prefixes.
func NewRedisStore(db redis.UniversalClient, prefix string, opts ...RedisStoreOption) *RedisStore {
	store := &RedisStore{
		db:           db,
		prefix:       prefix,
		addBatchSize: defaultAddBatchSize,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *RedisStore) infoKey(name string) string {
	return fmt.Sprintf("%s:%s:info", s.prefix, name)
}

func (s *RedisStore) usersKey(name string) string {
	return fmt.Sprintf("%s:%s:users", s.prefix, name)
}

// SetFlag writes the enabled marker and replaces the allow-list. The two
// writes are separate commands: a concurrent reader may observe the new
// marker with the old (or empty) allow-list. Last completed write wins.
func (s *RedisStore) SetFlag(ctx context.Context, name string, enabled bool, allowedUsers ...string) error {
	marker := "false"
	if enabled {
		marker = "true"
	}
	if err := s.db.HSet(ctx, s.infoKey(name), enabledField, marker).Err(); err != nil {
		return errors.Join(ErrOperationFailed, err)
	}

	// Wholesale replace: the previous list is discarded even when no new
	// users are given.
	if err := s.db.Del(ctx, s.usersKey(name)).Err(); err != nil {
		return errors.Join(ErrOperationFailed, err)
	}

	for start := 0; start < len(allowedUsers); start += s.addBatchSize {
		end := min(start+s.addBatchSize, len(allowedUsers))
		members := make([]any, 0, end-start)
		for _, id := range allowedUsers[start:end] {
			members = append(members, id)
		}
		if err := s.db.SAdd(ctx, s.usersKey(name), members...).Err(); err != nil {
			return errors.Join(ErrOperationFailed, err)
		}
	}

	return nil
}

// GetRecord returns the stored record, or nil when no enabled marker exists.
// A marker holding anything other than "true" decodes as disabled.
func (s *RedisStore) GetRecord(ctx context.Context, name string) (*Record, error) {
	marker, err := s.db.HGet(ctx, s.infoKey(name), enabledField).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrOperationFailed, err)
	}

	users, err := s.db.SMembers(ctx, s.usersKey(name)).Result()
	if err != nil {
		return nil, errors.Join(ErrOperationFailed, err)
	}
	if len(users) == 0 {
		users = nil
	}

	return &Record{
		Name:         name,
		Enabled:      marker == "true",
		AllowedUsers: users,
	}, nil
}

// IsUserAllowed implements the decision algorithm without materializing the
// allow-list: membership is tested server-side with SISMEMBER.
func (s *RedisStore) IsUserAllowed(ctx context.Context, name, userID string) (bool, error) {
	marker, err := s.db.HGet(ctx, s.infoKey(name), enabledField).Result()
	if errors.Is(err, redis.Nil) {
		// Never written: the flag does not exist.
		return false, nil
	}
	if err != nil {
		return false, errors.Join(ErrOperationFailed, err)
	}
	if marker != "true" {
		return false, nil
	}

	size, err := s.db.SCard(ctx, s.usersKey(name)).Result()
	if err != nil {
		return false, errors.Join(ErrOperationFailed, err)
	}
	if size == 0 {
		// Enabled with no allow-list: global flag.
		return true, nil
	}

	member, err := s.db.SIsMember(ctx, s.usersKey(name), userID).Result()
	if err != nil {
		return false, errors.Join(ErrOperationFailed, err)
	}
	return member, nil
}
