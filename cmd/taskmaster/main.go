package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	apiadapter "github.com/edimundos/todo-interface/internal/adapter/api"
	cliadapter "github.com/edimundos/todo-interface/internal/adapter/cli"
	sessionadapter "github.com/edimundos/todo-interface/internal/adapter/session"
	"github.com/edimundos/todo-interface/internal/app/controller"
	"github.com/edimundos/todo-interface/internal/config"
	"github.com/edimundos/todo-interface/pkg/apierrors"
	"github.com/edimundos/todo-interface/pkg/translator"
)

// Overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg := config.LoadConfig()

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator()

	store, err := sessionadapter.Open(cfg.SessionDBPath)
	if err != nil {
		logger.Fatal("failed to open session store", zap.String("path", cfg.SessionDBPath), zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close session store", zap.Error(err))
		}
	}()

	gateway := apiadapter.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	ctrl := controller.New(gateway, store)
	app := cliadapter.New(ctrl, cfg.Language, os.Stdout, os.Stderr)

	if err := app.Root(version).ExecuteContext(context.Background()); err != nil {
		// Commands print their own failures as ClientErr; anything else
		// (flag or argument parse errors) still needs to reach the user.
		var clientErr apierrors.ClientErr
		if !errors.As(err, &clientErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if parsed, err := zap.ParseAtomicLevel(level); err == nil {
		zapCfg.Level = parsed
	}
	// Keep stdout free for command output.
	zapCfg.OutputPaths = []string{"stderr"}
	return zapCfg.Build()
}
