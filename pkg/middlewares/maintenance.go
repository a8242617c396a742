package middlewares

import (
	"context"

	"reuse_market_service/pkg"
	"reuse_market_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// MaintenancePage redirect target when maintenance is active
const MaintenancePage = "/maintenance"

// DefaultExemptPaths 不受維護模式影響的路徑前綴
// API 路由、維護頁面本身、靜態資源、登入/註冊頁面
var DefaultExemptPaths = []string{
	"/api/",
	"/maintenance",
	"/member/",
	"/static/",
	"/auth/signin",
	"/auth/signup",
	"/favicon.ico",
	"/swagger",
	"/ws/",
}

// StatusSource 進程內維護狀態鏡像，由 gate 查詢
type StatusSource interface {
	// Read returns the cached status without refreshing
	Read() bool
	// RefreshIfStale re-fetches the status when the cached value passed its TTL
	RefreshIfStale(ctx context.Context)
}

// MaintenanceGate 每個請求先經過這裡，維護模式開啟時重定向到維護頁面
func MaintenanceGate(status StatusSource, exemptPrefixes []string) fiber.Handler {
	if exemptPrefixes == nil {
		exemptPrefixes = DefaultExemptPaths
	}
	return func(c *fiber.Ctx) error {
		// 豁免路徑無條件放行，維護頁面必須永遠可達
		if pkg.HasAnyPrefix(c.Path(), exemptPrefixes) {
			return c.Next()
		}

		status.RefreshIfStale(c.UserContext())

		if status.Read() {
			logger.Log.Debug("maintenance active, redirecting " + c.Path())
			return c.Redirect(MaintenancePage, fiber.StatusFound)
		}

		return c.Next()
	}
}
