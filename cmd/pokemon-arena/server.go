package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/pokemon-arena/internal/api"
	"github.com/ericogr/pokemon-arena/internal/constants"
	"github.com/ericogr/pokemon-arena/internal/logging"
	"github.com/ericogr/pokemon-arena/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newRouter(m *service.Manager) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	api.Register(router, api.NewBattleHandler(m))
	return router
}

// requestLogger logs every request through the structured logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Debug("request", logging.Fields{
			constants.LogFieldPath: c.FullPath(),
			"method":               c.Request.Method,
			"status":               c.Writer.Status(),
			"duration_ms":          time.Since(start).Milliseconds(),
		})
	}
}

// serve runs the HTTP server until ctx is cancelled, then drains it.
func serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() {
		logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	logging.Info("Shutting down", nil)
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
