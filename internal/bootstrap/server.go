package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kofiantwi/airroutes/api"
	"github.com/kofiantwi/airroutes/config"
	"github.com/kofiantwi/airroutes/internal/service/routes"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, routeSvc routes.RouteUseCase) error {
	engine := gin.New()
	engine.Use(gin.Recovery())

	handler := api.NewRouteHandler(routeSvc)
	handler.Register(engine.Group("/api/v1/routes"))

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}
