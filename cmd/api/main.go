package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"delete-on-check/config"
	_ "delete-on-check/docs" // Swagger docs
	"delete-on-check/internal/dispatcher"
	"delete-on-check/internal/document/usecase"
	"delete-on-check/internal/editor"
	"delete-on-check/internal/httpserver"
	"delete-on-check/internal/vault"
	"delete-on-check/internal/watcher"
	"delete-on-check/internal/workspace"
	"delete-on-check/pkg/log"
)

// @title       Delete on Check API
// @description Removes checked Markdown tasks from opted-in notes of a vault.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting delete-on-check...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Vault: %s", cfg.Vault.Root)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Service stopped with error: ", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Service stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Vault and mutators
	store, err := vault.NewFS(cfg.Vault.Root, cfg.Vault.Extension)
	if err != nil {
		return err
	}
	editorMutator := editor.NewMutator(logger)
	fileMutator := vault.NewMutator(store, editorMutator, logger)

	if cfg.Sweep.OnStart {
		results, err := fileMutator.Sweep(ctx, vault.SweepOptions{})
		if err != nil {
			logger.Warnf(ctx, "Startup sweep finished with errors: %v", err)
		}
		logger.Infof(ctx, "Startup sweep rewrote %d document(s)", len(results))
	}

	// 4. Editing host and change notifications
	ws := workspace.New(store, logger)
	w, err := watcher.New(store, logger, watcher.Options{Debounce: cfg.Watcher.Debounce})
	if err != nil {
		return err
	}

	d, err := dispatcher.New(dispatcher.Config{
		Host:   ws,
		Files:  fileMutator,
		Editor: editorMutator,
		Logger: logger,
		Delay:  cfg.Dispatcher.Delay,
	})
	if err != nil {
		w.Close()
		return err
	}
	if err := d.Start(ctx, w, ws); err != nil {
		w.Close()
		return err
	}
	defer d.Stop()

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		DocumentUC:      usecase.New(ws, store, fileMutator, logger),
	})
	if err != nil {
		w.Close()
		return err
	}

	// 6. Run until a signal arrives or a component fails
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.Run(gctx) })
	g.Go(func() error { return httpServer.Run(gctx) })
	return g.Wait()
}
