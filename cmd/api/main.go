package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Yhabib05/movie-recommender/docs" // swagger docs

	"github.com/Yhabib05/movie-recommender/internal/app"
	"github.com/Yhabib05/movie-recommender/internal/config"
	"github.com/Yhabib05/movie-recommender/internal/logging"
)

// @title Movie Recommender API
// @version 1.0
// @description Recomendaciones por similitud de géneros (KNN sobre vectores one-hot).
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("configuración inválida")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Bootstrap(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("no se puede arrancar el servidor")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", cfg.Addr()).Msg("HTTP escuchando")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("error del servidor HTTP")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("apagando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("shutdown incompleto")
	}
	a.Close(shutdownCtx)
}
