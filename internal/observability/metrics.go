// Package observability exposes Prometheus metrics for the storefront API.
package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"storefront-api/internal/events"
	"storefront-api/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects HTTP and business metrics on a private registry.
type Metrics struct {
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	eventsTotal     *prometheus.CounterVec
	orderRevenue    prometheus.Counter
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_http_request_duration_seconds",
		Help:    "HTTP request duration per route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	eventsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_events_total",
		Help: "Storefront events by type and action.",
	}, []string{"type", "action"})
	revenue := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_order_revenue_total",
		Help: "Sum of accepted order totals in minor currency units.",
	})
	registry.MustRegister(requests, duration, eventsTotal, revenue)
	return &Metrics{
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		eventsTotal:     eventsTotal,
		orderRevenue:    revenue,
	}
}

// Handler serves the exposition format for /metrics.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// Middleware records every request once the handler chain has finished.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		code := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			} else {
				code = fiber.StatusInternalServerError
			}
		}
		route := "unknown"
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		m.requestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(code)).Inc()
		m.requestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Publish counts storefront events so Metrics can sit behind events.Multi.
func (m *Metrics) Publish(_ context.Context, event events.Event) error {
	m.eventsTotal.WithLabelValues(event.Type, event.Action).Inc()
	if order, ok := event.Data.(*model.Order); ok && event.Action == events.ActionOrderCreated {
		m.orderRevenue.Add(float64(order.Total))
	}
	return nil
}

func (m *Metrics) Close() error { return nil }
