package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - runs the application on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			logger.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the game and plays a session reading from in and drawing to out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	terminal := console.New(logger, in, out, !conf.PlainOutput)

	first, second, err := terminal.Setup(ctx, console.Settings{
		Players:    conf.Game.Players,
		PlayerOne:  conf.Game.PlayerOne,
		PlayerTwo:  conf.Game.PlayerTwo,
		Difficulty: conf.Game.Difficulty,
	})
	if err != nil {
		if ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}
		return fmt.Errorf("failed to set up players: %w", err)
	}

	bot := service.NewBotService(service.NewRandom(conf.Seed))
	manager := usecase.NewGameManager(logger, bot, first, second)

	log.Info("Starting session", "player_one", first.Name, "player_two", second.Name)

	if err = terminal.Run(ctx, manager); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}
