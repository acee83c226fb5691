package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamebank/internal/app"
)

//	@title			Gamebank API
//	@version		1.0
//	@description	Settlement core of the in-game economy: accounts, cheques, peer loans and server loans.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

// @host		localhost:8080
// @BasePath	/
func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bank := app.New()
	if err := bank.Start(ctx); err != nil {
		// zap may not be configured yet when config or logger setup fails.
		log.Error().Err(err).Msg("gamebank failed to start")
		zap.L().Error("gamebank failed to start", zap.Error(err))
		return 1
	}

	if err := bank.Wait(ctx, stop); err != nil {
		zap.L().Error("gamebank stopped with errors", zap.Error(err))
		return 1
	}
	zap.L().Info("gamebank stopped")
	return 0
}
