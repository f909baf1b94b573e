package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-chronicles/internal/config"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/game"
	"github.com/KirkDiggler/quest-chronicles/internal/gamedata"
	"github.com/KirkDiggler/quest-chronicles/internal/logger"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/character"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/clock"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/idgen"
	"github.com/KirkDiggler/quest-chronicles/internal/redis"
	characterrepo "github.com/KirkDiggler/quest-chronicles/internal/repositories/character"
)

// flagOverrides holds persistent flag values; empty means keep the env value
type flagOverrides struct {
	dataDir    string
	saveDir    string
	storage    string
	redisAddr  string
	sqlitePath string
	logLevel   string
	logFormat  string
}

var (
	overrides flagOverrides

	// session is built once per command invocation in setup
	session *game.Session
	closers []io.Closer
)

func (f *flagOverrides) apply(cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.DataDir, f.dataDir)
	set(&cfg.SaveDir, f.saveDir)
	set(&cfg.Storage, f.storage)
	set(&cfg.RedisAddr, f.redisAddr)
	set(&cfg.SQLitePath, f.sqlitePath)
	set(&cfg.LogLevel, f.logLevel)
	set(&cfg.LogFormat, f.logFormat)
}

func setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	overrides.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	if _, err := logger.Setup(&logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	}); err != nil {
		return err
	}

	if err := gamedata.CreateDefaultDataFiles(ctx, cfg.DataDir); err != nil {
		return err
	}
	catalogs, err := gamedata.Load(ctx, cfg.DataDir)
	if err != nil {
		return err
	}

	repo, err := newRepository(ctx, cfg)
	if err != nil {
		return err
	}
	characters, err := character.NewOrchestrator(&character.Config{CharacterRepo: repo})
	if err != nil {
		return err
	}

	session, err = game.New(&game.Config{
		Catalogs:    catalogs,
		Characters:  characters,
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewUUID("battle"),
	})
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "Session ready",
		"storage", cfg.Storage,
		"quests", len(catalogs.Quests),
		"items", len(catalogs.Items),
	)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	closers = nil
	return first
}

func newRepository(ctx context.Context, cfg *config.Config) (characterrepo.Repository, error) {
	switch cfg.Storage {
	case config.StorageRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis settings")
		}
		closers = append(closers, client)
		if err := redis.Ping(ctx, client); err != nil {
			return nil, errors.Wrapf(err, "cannot reach redis at %s", cfg.RedisAddr)
		}
		return characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Clock: clock.New()})

	case config.StorageSQLite:
		repo, err := characterrepo.NewSQLite(&characterrepo.SQLiteConfig{
			Path:  filepath.Clean(cfg.SQLitePath),
			Clock: clock.New(),
		})
		if err != nil {
			return nil, err
		}
		closers = append(closers, repo)
		return repo, nil

	default:
		return characterrepo.NewFile(&characterrepo.FileConfig{Dir: cfg.SaveDir, Clock: clock.New()})
	}
}
