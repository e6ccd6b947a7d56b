package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vizbridge/server/internal/config"
	"github.com/vizbridge/server/internal/data"
	"github.com/vizbridge/server/internal/gui"
	vnet "github.com/vizbridge/server/internal/net"
	"github.com/vizbridge/server/internal/persist"
	"github.com/vizbridge/server/internal/scripting"
	"github.com/vizbridge/server/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/vizbridge.toml"
	if p := os.Getenv("VIZBRIDGE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 3. Optional session catalog
	var journal gui.Journal
	if cfg.Catalog.Enabled {
		db, err := persist.NewDB(ctx, cfg.Catalog, log)
		if err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		defer db.Close()
		if err := persist.RunMigrations(ctx, db.Pool); err != nil {
			return fmt.Errorf("catalog migrations: %w", err)
		}
		journal = persist.NewCatalogRepo(db)
		log.Info("session catalog enabled")
	}

	// 4. Connect to the viewer
	client, err := vnet.Dial(ctx, cfg.Backend, log)
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	defer client.Close()

	// 5. Registry and facade
	state := world.NewState()
	g := gui.New(state, client, journal, log)

	// 6. Apply the scene manifest, if configured
	if cfg.Scene.Manifest != "" {
		m, err := data.LoadManifest(cfg.Scene.Manifest)
		if err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
		if err := m.Apply(ctx, g); err != nil {
			return fmt.Errorf("apply manifest %s: %w", cfg.Scene.Manifest, err)
		}
		log.Info("scene manifest applied",
			zap.String("file", cfg.Scene.Manifest),
			zap.Int("windows", len(state.Windows)),
			zap.Int("scenes", len(state.Scenes)),
			zap.Int("entities", state.EntityCount()))
	}

	// 7. Scripting: load the library dir, then run any scripts given on the
	// command line
	eng := scripting.NewEngine(ctx, g, log)
	defer eng.Close()

	if cfg.Scripting.ScriptsDir != "" {
		if err := eng.LoadDir(cfg.Scripting.ScriptsDir); err != nil {
			return fmt.Errorf("load scripts: %w", err)
		}
	}
	for _, path := range os.Args[1:] {
		log.Info("running script", zap.String("file", path))
		if err := eng.RunFile(path); err != nil {
			return fmt.Errorf("script %s: %w", path, err)
		}
	}
	if len(os.Args) > 1 {
		return nil
	}

	// No scripts: keep the connection open so the viewer stays fed until
	// interrupted.
	log.Info("no script given; holding the viewer connection open")
	<-ctx.Done()
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
