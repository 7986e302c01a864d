package lookup

import (
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Backend names accepted by New.
const (
	BackendLocal    = "local"
	BackendStatic   = "static"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Options selects and configures a backend.
type Options struct {
	Backend        string
	StaticUsers    []string
	RedisKeyPrefix string
	PGUsersTable   string
}

// Deps carries the connections a backend may need. Only the one matching
// Options.Backend has to be set.
type Deps struct {
	Redis    redis.Cmdable
	Postgres RowQuerier
}

// New builds the backend named by opts.Backend.
func New(opts Options, deps Deps) (Lookup, error) {
	switch opts.Backend {
	case BackendLocal, "":
		return NewLocal(), nil
	case BackendStatic:
		return NewStatic(opts.StaticUsers), nil
	case BackendRedis:
		if deps.Redis == nil {
			return nil, errors.New("lookup: redis backend requires a client")
		}
		return NewRedis(deps.Redis, opts.RedisKeyPrefix), nil
	case BackendPostgres:
		if deps.Postgres == nil {
			return nil, errors.New("lookup: postgres backend requires a pool")
		}
		if opts.PGUsersTable == "" {
			return nil, errors.New("lookup: postgres backend requires a table")
		}
		return NewPostgres(deps.Postgres, opts.PGUsersTable), nil
	default:
		return nil, fmt.Errorf("lookup: unknown backend %q", opts.Backend)
	}
}
