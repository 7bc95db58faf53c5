package sessionstore

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/craftconnect/internal/client/models"
	"github.com/dmitrijs2005/craftconnect/internal/common"
	"github.com/dmitrijs2005/craftconnect/internal/logging"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the pair under <prefix>auth_token and <prefix>user_data.
// Save runs in MULTI/EXEC; Clear is a single DEL.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	log    logging.Logger
}

func NewRedisStore(client redis.UniversalClient, prefix string, log logging.Logger) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, log: log}
}

func (r *RedisStore) tokenKey() string { return r.prefix + common.AuthTokenKey }
func (r *RedisStore) userKey() string  { return r.prefix + common.UserDataKey }

func (r *RedisStore) Save(ctx context.Context, token string, user models.User) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.tokenKey(), token, 0)
		pipe.Set(ctx, r.userKey(), data, 0)
		return nil
	})
	if err != nil {
		return storageError("save", err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context) (*Entry, error) {
	vals, err := r.client.MGet(ctx, r.tokenKey(), r.userKey()).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, storageError("load", err)
	}
	if len(vals) != 2 {
		return nil, nil
	}

	token, _ := vals[0].(string)
	user, _ := vals[1].(string)

	return resolve(ctx, r.log, token, []byte(user), r.Clear)
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.tokenKey(), r.userKey()).Err(); err != nil {
		return storageError("clear", err)
	}
	return nil
}
