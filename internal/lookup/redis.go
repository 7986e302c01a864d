package lookup

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis answers from hashes stored under <prefix>user:<name>. The hash fields
// are returned as display fields.
type Redis struct {
	client redis.Cmdable
	prefix string
}

// NewRedis returns a Redis backend.
func NewRedis(client redis.Cmdable, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// Key returns the hash key holding username.
func (r *Redis) Key(username string) string {
	return r.prefix + "user:" + username
}

// Lookup reports whether the user hash exists.
func (r *Redis) Lookup(ctx context.Context, username string) (Result, error) {
	fields, err := r.client.HGetAll(ctx, r.Key(username)).Result()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("lookup/redis: %w", ctxErr)
		}
		return nil, fmt.Errorf("%w: redis: %w", ErrUnavailable, err)
	}
	if len(fields) == 0 {
		return NotFound(), nil
	}
	res := make(Result, len(fields)+1)
	for k, v := range fields {
		res[k] = v
	}
	res[FieldHas] = "true"
	return res, nil
}
