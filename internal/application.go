package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
	"github.com/rocketscienceinc/tictactoe-ai/internal/report"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-ai/internal/service"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-ai/transport/console"
)

var ErrUnknownMode = errors.New("unknown mode")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	switch conf.Mode {
	case config.ModeReport:
		return runReport(log, conf)
	case config.ModePlay:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, conf.Mode)
	}

	strategies := tictactoe.NewStrategies(rand.New(rand.NewSource(time.Now().UnixNano()))) //nolint: gosec // it's ok

	var botService service.BotService
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		moveRepo := repository.NewMoveRepository(redisStorage, conf.Redis.MoveTTL)
		botService = service.NewBotService(logger, strategies, moveRepo)
		log.Info("move cache enabled", "addr", redisAddrString)
	} else {
		botService = service.NewBotService(logger, strategies, nil)
	}

	colors := termenv.NewOutput(os.Stdout).EnvColorProfile() != termenv.Ascii
	player := console.New(logger, os.Stdin, os.Stdout, colors)
	gameManager := usecase.NewGameManager(logger, botService, player)

	// run the game
	gameErrCh := make(chan error, 1)
	go func() {
		_, gameErr := gameManager.PlayGame(ctx)
		gameErrCh <- gameErr
	}()

	select {
	case err := <-gameErrCh:
		if err != nil {
			return fmt.Errorf("game error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func runReport(log *slog.Logger, conf *config.Config) error {
	samples, game, err := report.Collect()
	if err != nil {
		return fmt.Errorf("failed to collect search report: %w", err)
	}

	if err = report.WriteFile(conf.Report.Path, samples); err != nil {
		return fmt.Errorf("failed to write search report: %w", err)
	}

	log.Info("search report written", "path", conf.Report.Path, "status", game.Status, "plies", len(samples))

	return nil
}
