package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"heartcheck/internal/config"
	"heartcheck/internal/features"
	"heartcheck/internal/logging"
	"heartcheck/internal/predictor"
	"heartcheck/internal/server"
)

func main() {
	// .env is optional; real environment variables win.
	envErr := godotenv.Load()

	cfg := config.Load()

	host := flag.String("host", cfg.Host, "address to bind")
	port := flag.String("port", cfg.Port, "port to listen on")
	flag.Parse()
	cfg.Host, cfg.Port = *host, *port

	logger := logging.New(os.Stdout, cfg.SlogLevel(), cfg.IsDev())
	slog.SetDefault(logger)

	if envErr != nil && !os.IsNotExist(envErr) {
		logger.Warn("failed to load .env file", "error", envErr)
	}

	yamlCfg, err := config.LoadYAMLConfig(cfg.ConfigFile)
	if err != nil {
		logger.Error("failed to load config file", "path", cfg.ConfigFile, "error", err)
		os.Exit(1)
	}
	yamlCfg.Apply(cfg)

	// Load the trained models. A missing or broken artifact leaves its slot
	// empty and the endpoint serves the fallback formula.
	store := predictor.Load(logger,
		predictor.Artifact{Slot: "heart", Path: cfg.HeartModelPath, Features: features.HeartNames},
		predictor.Artifact{Slot: "cholesterol", Path: cfg.CholesterolModelPath, Features: features.CholesterolNames},
	)

	srv := server.New(cfg, logger)
	srv.RegisterRoutes(store)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("server exited")
}
