// Package storage opens the store.KV backend selected by the configuration.
package storage

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/store"
	"github.com/trezcool/portal/storage/kv/memkv"
	"github.com/trezcool/portal/storage/kv/metrickv"
	"github.com/trezcool/portal/storage/kv/rediskv"
	"github.com/trezcool/portal/storage/kv/sqlkv"
)

var ErrUnknownEngine = errors.New("unknown storage engine")

// Store is an open backend.
type Store struct {
	store.KV
	close func() error
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open opens the configured engine, namespacing every key with the configured key prefix.
// When reg is not nil the store is instrumented and its metrics registered on reg.
func Open(conf *core.Config, logger core.Logger, reg prometheus.Registerer) (*Store, error) {
	s, err := open(conf, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug(fmt.Sprintf("storage engine %q opened", conf.Storage.Engine))

	if reg != nil {
		kv, err := metrickv.Wrap(s.KV, reg)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.KV = kv
	}
	return s, nil
}

func open(conf *core.Config, logger core.Logger) (*Store, error) {
	switch conf.Storage.Engine {
	case core.EngineMemory:
		return &Store{KV: store.Prefixed(memkv.Open(), conf.Storage.KeyPrefix)}, nil

	case core.EngineSQLite, core.EnginePostgres:
		driver := sqlkv.SQLite
		if conf.Storage.Engine == core.EnginePostgres {
			driver = sqlkv.Postgres
		}
		db, err := sqlkv.Open(driver, conf.Storage.DSN, logger)
		if err != nil {
			return nil, err
		}
		return &Store{KV: store.Prefixed(db, conf.Storage.KeyPrefix), close: db.Close}, nil

	case core.EngineRedis:
		db := rediskv.Open(conf.Storage.RedisAddr, conf.Storage.KeyPrefix)
		if !db.Healthy(context.Background()) {
			_ = db.Close()
			return nil, errors.Errorf("redis at %s is unreachable", conf.Storage.RedisAddr)
		}
		return &Store{KV: db, close: db.Close}, nil

	default:
		return nil, errors.Wrap(ErrUnknownEngine, fmt.Sprintf("%q", conf.Storage.Engine))
	}
}
