package middlewares

import (
	"context"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"reuse_market_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Log = logger.Initialize("middlewares_test", os.TempDir())
	os.Exit(m.Run())
}

type fakeStatus struct {
	status   bool
	refreshs int32
}

func (f *fakeStatus) Read() bool { return f.status }

func (f *fakeStatus) RefreshIfStale(ctx context.Context) {
	atomic.AddInt32(&f.refreshs, 1)
}

func newGateApp(status StatusSource) *fiber.App {
	app := fiber.New()
	app.Use(MaintenanceGate(status, nil))
	app.Get("/products", func(c *fiber.Ctx) error { return c.SendString("products") })
	app.Get("/maintenance", func(c *fiber.Ctx) error { return c.SendString("maintenance page") })
	app.Get("/api/maintenance", func(c *fiber.Ctx) error { return c.SendString("api") })
	app.Post("/member/login", func(c *fiber.Ctx) error { return c.SendString("login") })
	return app
}

// TestMaintenanceGate_RedirectsWhenActive 維護開啟時頁面請求要 302 到維護頁
func TestMaintenanceGate_RedirectsWhenActive(t *testing.T) {
	app := newGateApp(&fakeStatus{status: true})

	resp, err := app.Test(httptest.NewRequest("GET", "/products", nil))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, MaintenancePage, resp.Header.Get("Location"))
}

// TestMaintenanceGate_PassesWhenInactive
func TestMaintenanceGate_PassesWhenInactive(t *testing.T) {
	fake := &fakeStatus{status: false}
	app := newGateApp(fake)

	resp, err := app.Test(httptest.NewRequest("GET", "/products", nil))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	// 非豁免路徑要先刷新狀態
	assert.Equal(t, int32(1), atomic.LoadInt32(&fake.refreshs))
}

// TestMaintenanceGate_ExemptPaths API 和登入路徑不受維護模式影響
func TestMaintenanceGate_ExemptPaths(t *testing.T) {
	fake := &fakeStatus{status: true}
	app := newGateApp(fake)

	cases := []struct {
		method string
		path   string
	}{
		{"GET", "/api/maintenance"},
		{"POST", "/member/login"},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, tc.path)
	}

	// 豁免路徑連刷新都不做
	assert.Equal(t, int32(0), atomic.LoadInt32(&fake.refreshs))
}

// TestMaintenanceGate_NoRedirectLoop 維護頁本身永遠可達
func TestMaintenanceGate_NoRedirectLoop(t *testing.T) {
	app := newGateApp(&fakeStatus{status: true})

	resp, err := app.Test(httptest.NewRequest("GET", "/maintenance", nil))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
