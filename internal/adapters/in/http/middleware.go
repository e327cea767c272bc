package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"logistics/internal/generated/servers"
	"logistics/internal/pkg/ratelimiter"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const callerHeader = "X-Caller-Address"

// RequestValidator rejects requests that do not match the API document. Paths
// the document does not describe (health, metrics, swagger) pass through.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		MultiError:         true,
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			switch {
			case errors.Is(err, routers.ErrPathNotFound):
				return next(ctx)
			case errors.Is(err, routers.ErrMethodNotAllowed):
				return ctx.JSON(http.StatusMethodNotAllowed, servers.Error{
					Code:    http.StatusMethodNotAllowed,
					Message: err.Error(),
				})
			case err != nil:
				return badRequest(ctx, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return badRequest(ctx, err.Error())
			}
			return next(ctx)
		}
	}, nil
}

// RateLimit throttles each caller, identified by the caller header or, for
// anonymous reads, the client IP. A nil limiter allows everything.
func RateLimit(limiter *ratelimiter.CallerLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			key := ctx.Request().Header.Get(callerHeader)
			if key == "" {
				key = ctx.RealIP()
			}
			if !limiter.Allow(key, time.Now()) {
				return ctx.JSON(http.StatusTooManyRequests, servers.Error{
					Code:    http.StatusTooManyRequests,
					Message: "Rate limit exceeded",
				})
			}
			return next(ctx)
		}
	}
}

// Metrics records request counts and latencies per route template.
type Metrics struct {
	requestsTotal *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewMetrics registers the HTTP collectors with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_http_requests_total",
			Help: "Total count of HTTP requests processed by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, c := range []prometheus.Collector{m.requestsTotal, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Middleware observes every request after the handler has written its status.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			method := ctx.Request().Method
			m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(ctx.Response().Status)).Inc()
			m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
