package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/pokemon-arena/internal/logging"
	"github.com/ericogr/pokemon-arena/internal/version"
)

func main() {
	settings := loadSettingsOrExit()
	if settings.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	logging.Info("Starting pokemon-arena", logging.Fields{"version": version.String()})

	cat := loadCatalogOrExit(settings.Catalog)
	store := createStoreOrExit(settings.DB)
	manager := newManager(settings, cat, store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := serve(ctx, settings.Addr, newRouter(manager)); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
