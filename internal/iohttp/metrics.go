package iohttp

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokedb_http_requests_total",
		Help: "Number of HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pokedb_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"route", "method"})

	storeOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokedb_store_operations_total",
		Help: "Number of store operations by operation and result",
	}, []string{"op", "result"})
)

// metrics records a count and a duration for every request. The route
// label is the matched pattern, so ids do not create new series.
func metrics(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status, _ = errorResponse(err)
	}

	// fasthttp reuses request buffers, label values must own their bytes
	route := utils.CopyString(c.Route().Path)
	method := utils.CopyString(c.Method())
	httpRequestsTotal.
		WithLabelValues(route, method, strconv.Itoa(status)).
		Inc()
	httpRequestDuration.
		WithLabelValues(route, method).
		Observe(time.Since(start).Seconds())
	return err
}

// observe counts the result of a store operation.
func observe(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
		_, resp := errorResponse(err)
		if resp.Code == ErrNotFound {
			result = "not_found"
		}
	}
	storeOperationsTotal.WithLabelValues(op, result).Inc()
}
