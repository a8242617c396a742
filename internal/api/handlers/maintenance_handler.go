package handlers

import (
	"encoding/json"

	maintenanceapp "reuse_market_service/internal/maintenance/app"
	"reuse_market_service/internal/maintenance/domain"
	"reuse_market_service/pkg/config"
	"reuse_market_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MaintenanceHandler 处理维护模式相关的 HTTP 请求
type MaintenanceHandler struct {
	maintenanceUC maintenanceapp.MaintenanceUseCase
}

// NewMaintenanceHandler 创建新的 MaintenanceHandler
func NewMaintenanceHandler(maintenanceUC maintenanceapp.MaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceUC: maintenanceUC,
	}
}

// GetConfig 取得目前的維護配置
// @Summary Get maintenance config
// @Description Returns the authoritative maintenance config, creating a default row when none exists
// @Tags Maintenance
// @Produce json
// @Success 200 {object} domain.Config "current config"
// @Failure 500 {object} string "server error"
// @Router /api/maintenance [get]
func (h *MaintenanceHandler) GetConfig(c *fiber.Ctx) error {
	cfg, err := h.maintenanceUC.GetConfig(c.UserContext())
	if err != nil {
		logger.Log.Error("get maintenance config err :", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(cfg)
}

// updateRequest 用 json.RawMessage 接 maintenanceMode,
// 非 boolean 的值要回 400 而不是被 BodyParser 吞掉
type updateRequest struct {
	MaintenanceMode    json.RawMessage `json:"maintenanceMode"`
	MaintenanceMessage *string         `json:"maintenanceMessage"`
	APIKey             string          `json:"apiKey"`
}

func (r *updateRequest) mode() (bool, bool) {
	var mode bool
	if err := json.Unmarshal(r.MaintenanceMode, &mode); err != nil {
		return false, false
	}
	return mode, true
}

// UpdateConfig 更新維護配置
// @Summary Update maintenance config
// @Description Toggles maintenance mode; message is preserved when omitted
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body object true "maintenanceMode (bool) and optional maintenanceMessage"
// @Success 200 {object} domain.Config "updated config"
// @Failure 400 {object} string "maintenanceMode is not a boolean"
// @Failure 500 {object} string "server error"
// @Router /api/maintenance [put]
func (h *MaintenanceHandler) UpdateConfig(c *fiber.Ctx) error {
	var req updateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	mode, ok := req.mode()
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "maintenanceMode deve ser um valor booleano"})
	}

	cfg, err := h.maintenanceUC.SetConfig(c.UserContext(), mode, req.MaintenanceMessage)
	if err != nil {
		logger.Log.Error("update maintenance config err :", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(cfg)
}

// ControlUpdate 外部系統用的維護開關, 由 api key 把關
// @Summary Remote maintenance toggle
// @Description Same upsert as PUT /api/maintenance but gated by MAINTENANCE_API_KEY
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body object true "apiKey, maintenanceMode and optional maintenanceMessage"
// @Success 200 {object} domain.Config "updated config"
// @Failure 400 {object} string "maintenanceMode is not a boolean"
// @Failure 401 {object} string "invalid api key"
// @Router /api/maintenance/control [post]
func (h *MaintenanceHandler) ControlUpdate(c *fiber.Ctx) error {
	var req updateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	// key 沒設定時不把關, 跟原本的行為一致
	expected := config.EnvConfig.MaintenanceAPIKey
	if expected != "" && req.APIKey != expected {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "chave de API inválida"})
	}

	mode, ok := req.mode()
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "maintenanceMode deve ser um valor booleano"})
	}

	cfg, err := h.maintenanceUC.SetConfig(c.UserContext(), mode, req.MaintenanceMessage)
	if err != nil {
		logger.Log.Error("control update err :", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(cfg)
}

// ControlStatus 外部輪詢用的狀態查詢
// @Summary Maintenance status for external pollers
// @Tags Maintenance
// @Produce json
// @Success 200 {object} string "maintenanceMode, maintenanceMessage, lastUpdated"
// @Router /api/maintenance/control [get]
func (h *MaintenanceHandler) ControlStatus(c *fiber.Ctx) error {
	cfg, err := h.maintenanceUC.GetConfig(c.UserContext())
	if err != nil {
		logger.Log.Error("control status err :", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(fiber.Map{
		"maintenanceMode":    cfg.MaintenanceMode,
		"maintenanceMessage": cfg.MaintenanceMessage,
		"lastUpdated":        cfg.UpdatedAt,
	})
}

// Panel 操作面板, 表單直接打 control 端點
// @Summary Maintenance operator panel
// @Tags Maintenance
// @Produce html
// @Success 200 {string} string "HTML panel"
// @Router /api/maintenance/panel [get]
func (h *MaintenanceHandler) Panel(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(maintenancePanelHTML)
}

// NoticePage 維護公告頁, 任何時候都要能打開
// @Summary Maintenance notice page
// @Tags Maintenance
// @Produce html
// @Success 200 {string} string "HTML notice"
// @Router /maintenance [get]
func (h *MaintenanceHandler) NoticePage(c *fiber.Ctx) error {
	message := domain.DefaultMaintenanceMessage
	// 配置讀不到也要能顯示頁面
	if cfg, err := h.maintenanceUC.GetConfig(c.UserContext()); err == nil {
		message = cfg.MaintenanceMessage
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>ReUse - Manutenção</title>
  <style>
    body { font-family: sans-serif; background: #f0fdf4; display: flex; align-items: center; justify-content: center; height: 100vh; margin: 0; }
    .card { background: #fff; border-radius: 12px; padding: 48px; text-align: center; box-shadow: 0 4px 12px rgba(0,0,0,.08); max-width: 480px; }
    h1 { color: #16a34a; }
  </style>
</head>
<body>
  <div class="card">
    <h1>🔧 ReUse</h1>
    <p>` + message + `</p>
  </div>
</body>
</html>`)
}

const maintenancePanelHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <title>ReUse - Painel de Manutenção</title>
  <style>
    body { font-family: sans-serif; max-width: 560px; margin: 40px auto; }
    label { display: block; margin: 12px 0 4px; }
    input, textarea { width: 100%; padding: 8px; }
    button { margin-top: 16px; padding: 10px 24px; background: #16a34a; color: #fff; border: 0; border-radius: 6px; cursor: pointer; }
    #status { margin-top: 16px; }
  </style>
</head>
<body>
  <h1>Painel de Manutenção</h1>
  <label><input type="checkbox" id="mode"> Modo de manutenção ativo</label>
  <label for="message">Mensagem</label>
  <textarea id="message" rows="3"></textarea>
  <label for="apiKey">Chave de API</label>
  <input type="password" id="apiKey">
  <button onclick="apply()">Aplicar</button>
  <div id="status"></div>
  <script>
    async function load() {
      const res = await fetch('/api/maintenance/control');
      const data = await res.json();
      document.getElementById('mode').checked = data.maintenanceMode;
      document.getElementById('message').value = data.maintenanceMessage;
    }
    async function apply() {
      const res = await fetch('/api/maintenance/control', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({
          apiKey: document.getElementById('apiKey').value,
          maintenanceMode: document.getElementById('mode').checked,
          maintenanceMessage: document.getElementById('message').value
        })
      });
      document.getElementById('status').textContent = res.ok ? 'Atualizado!' : 'Erro: ' + res.status;
    }
    load();
  </script>
</body>
</html>`
