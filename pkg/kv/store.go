package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/customcabinetco/storefront-backend/pkg/config"
	"github.com/customcabinetco/storefront-backend/pkg/logger"
)

// ErrNotFound is returned when a key has no stored blob.
var ErrNotFound = errors.New("kv: key not found")

// Store is the opaque blob store backing the cart and order snapshots.
// Values are whole-collection snapshots written and read as single blobs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// New selects a store driver from configuration.
func New(ctx context.Context, cfg config.StoreConfig, redisCfg config.RedisConfig, logg *logger.Logger) (Store, error) {
	switch cfg.Driver {
	case config.StoreDriverSQLite:
		return NewSQLite(ctx, cfg.SQLitePath)
	case config.StoreDriverRedis:
		return NewRedis(ctx, cfg.Namespace, redisCfg)
	case config.StoreDriverMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
