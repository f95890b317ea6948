package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/service"
)

func newTestApp() *fiber.App {
	auth := service.NewAuthService(service.AdminCredentials{Username: "admin", Password: "p", Token: "admin-auth"})
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/guarded", RequireAdmin(auth), ok)
	app.Get("/feed", RequireAdminOrQueryToken(auth), ok)
	app.Post("/json", RequireJSON(), ok)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()
	res, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func TestRequireAdmin(t *testing.T) {
	app := newTestApp()

	cases := map[string]struct {
		header string
		want   int
	}{
		"missing":      {"", http.StatusUnauthorized},
		"wrong token":  {"Bearer nope", http.StatusUnauthorized},
		"no scheme":    {"admin-auth", http.StatusUnauthorized},
		"basic scheme": {"Basic admin-auth", http.StatusUnauthorized},
		"bearer":       {"Bearer admin-auth", http.StatusOK},
		"lowercase":    {"bearer admin-auth", http.StatusOK},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			status, body := do(t, app, req)
			assert.Equal(t, tc.want, status)
			if tc.want == http.StatusUnauthorized {
				assert.JSONEq(t, `{"message":"Unauthorized"}`, body)
			}
		})
	}
}

func TestRequireAdminOrQueryToken(t *testing.T) {
	app := newTestApp()

	status, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/feed?token=admin-auth", nil))
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/feed?token=bad", nil))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRequireJSON(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/json", strings.NewReader("name=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	status, _ := do(t, app, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, status)

	req = httptest.NewRequest(http.MethodPost, "/json", strings.NewReader(`{"a":1}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	status, _ = do(t, app, req)
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, app, httptest.NewRequest(http.MethodPost, "/json", nil))
	assert.Equal(t, http.StatusOK, status)
}
