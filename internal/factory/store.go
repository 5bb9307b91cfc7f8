package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kamyarmaaf/planner/internal/config"
	storepkg "github.com/kamyarmaaf/planner/internal/store"
	storepg "github.com/kamyarmaaf/planner/internal/store/postgres"
	storelite "github.com/kamyarmaaf/planner/internal/store/sqlite"
)

// NewStore returns a store.Store for the configured driver.
func NewStore(cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		db, err := storepg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("driver", cfg.DBDriver).Msg("store opened")
		return storepg.NewWithDB(db), nil
	case "sqlite":
		s, err := storelite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("driver", cfg.DBDriver).Str("path", cfg.SQLitePath).Msg("store opened")
		return s, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
