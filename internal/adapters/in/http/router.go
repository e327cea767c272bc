package http

import (
	"net/http"

	"logistics/internal/generated/servers"
	"logistics/internal/pkg/ratelimiter"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterOptions configures the ambient endpoints and middleware around the API.
type RouterOptions struct {
	Limiter  *ratelimiter.CallerLimiter
	Registry *prometheus.Registry
}

// NewRouter builds the echo instance serving the ledger API together with
// /health, /metrics and /swagger/*.
func NewRouter(server *Server, opts RouterOptions) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics, err := NewMetrics(registry)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", RateLimit(opts.Limiter), validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}
