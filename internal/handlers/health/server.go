// Package health serves the diagnostics checks over HTTP.
package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/KirkDiggler/waterstone/internal/services/diagnostics"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("health")

const shutdownTimeout = 5 * time.Second

// Response is the body of GET /healthz
type Response struct {
	Healthy bool                  `json:"healthy"`
	Results []*diagnostics.Result `json:"results"`
}

// StartOpts holds configuration for the health server
type StartOpts struct {
	Diagnostics diagnostics.Service
	Addr        string
}

// NewRouter builds the gin engine with the health routes
func NewRouter(svc diagnostics.Service) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		output, err := svc.Run(c.Request.Context(), &diagnostics.RunInput{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		status := http.StatusOK
		if !output.Healthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, Response{Healthy: output.Healthy, Results: output.Results})
	})

	return router
}

// Start runs the health server until ctx is cancelled
func Start(ctx context.Context, opts StartOpts) error {
	if opts.Diagnostics == nil {
		return errors.New("health: diagnostics service is required")
	}
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           NewRouter(opts.Diagnostics),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warningf("health server shutdown: %v", err)
		}
	}()

	log.Infof("health endpoint listening on %s", opts.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("health: %w", err)
	}
	return nil
}
