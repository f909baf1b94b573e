package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories depend on. Any
// redis.UniversalClient satisfies it, including one pointed at miniredis.
type Client interface {
	redis.UniversalClient
}
