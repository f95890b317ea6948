package observability

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-api/internal/events"
	"storefront-api/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/products/:id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	for _, id := range []string{"a", "b"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/products/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/products/:id", "200")))

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "storefront_http_requests_total"))
}

func TestPublishCountsEventsAndRevenue(t *testing.T) {
	m := NewMetrics()
	ctx := context.Background()

	order := &model.Order{Total: 2500}
	require.NoError(t, m.Publish(ctx, events.New(events.TypeOrder, events.ActionOrderCreated, "o1", "", order)))
	require.NoError(t, m.Publish(ctx, events.New(events.TypeLead, events.ActionLeadSubmitted, "l1", "", &model.Lead{})))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.eventsTotal.WithLabelValues(events.TypeOrder, events.ActionOrderCreated)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.eventsTotal.WithLabelValues(events.TypeLead, events.ActionLeadSubmitted)))
	assert.Equal(t, float64(2500), testutil.ToFloat64(m.orderRevenue))
}
