package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/tallybot/internal/config"
	"github.com/sandevgo/tallybot/internal/core"
	"github.com/sandevgo/tallybot/internal/service/command"
	"github.com/sandevgo/tallybot/internal/service/dialogue"
	"github.com/sandevgo/tallybot/internal/service/report"
	"github.com/sandevgo/tallybot/internal/service/tally"
	"github.com/sandevgo/tallybot/internal/service/window"
	"github.com/sandevgo/tallybot/internal/storage/memory"
	"github.com/sandevgo/tallybot/internal/transport/cli"
	"github.com/sandevgo/tallybot/internal/transport/health"
	"github.com/sandevgo/tallybot/internal/transport/telegram"
	"github.com/sandevgo/tallybot/pkg/log"
	"github.com/sandevgo/tallybot/pkg/srv"
)

// NewServices wires the application. stop cancels the run context and is
// called when the terminal chat exits.
func NewServices(ctx context.Context, stop func()) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Storage
	store := memory.NewStore()
	services = append(services, srv.NewCleanup(func() error {
		logger.Info().Int("conversations", store.Conversations()).Msg("discarding in-memory amount log")
		return nil
	}))

	// 3. Core
	svc := tally.NewService(
		store,
		window.NewResolver(),
		dialogue.NewManager(window.Zone, window.LabelCustom),
		report.NewFormatter(window.Zone),
	)
	router := command.NewRouter(svc)

	// 4. Transports
	transports, err := initTransports(ctx, appCfg, svc, router, stop)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	if len(transports) == 0 {
		logger.Warn().Msg("no chat transport enabled, set ENABLE_TELEGRAM or ENABLE_CLI")
	}
	services = append(services, transports...)

	// 5. Liveness
	if appCfg.EnableHealth {
		services = append(services, health.NewServer(config.NewHealthConfig(ctx)))
	}

	return services
}

func initTransports(
	ctx context.Context,
	cfg *config.AppConfig,
	svc core.Tally,
	router core.CmdRouter,
	stop func(),
) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, svc, router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if cfg.EnableCLI {
		rl, err := cli.NewReadLine(svc, router, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, srv.StopOnExit(rl, stop))
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
