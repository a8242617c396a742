package handlers

import (
	chatbotapp "reuse_market_service/internal/chatbot/app"
	"reuse_market_service/internal/chatbot/domain"

	"github.com/gofiber/fiber/v2"
)

// ChatbotHandler 处理教學機器人的 HTTP 请求
type ChatbotHandler struct {
	dialogueUC chatbotapp.DialogueUseCase
}

// NewChatbotHandler 创建新的 ChatbotHandler
func NewChatbotHandler(dialogueUC chatbotapp.DialogueUseCase) *ChatbotHandler {
	return &ChatbotHandler{
		dialogueUC: dialogueUC,
	}
}

// Info 機器人能力描述
// @Summary Chatbot capability metadata
// @Tags Chatbot
// @Produce json
// @Success 200 {object} string "chatbot and platform info"
// @Router /api/chatbot/help [get]
func (h *ChatbotHandler) Info(c *fiber.Ctx) error {
	return c.JSON(h.dialogueUC.Info())
}

// Reply 單輪對話
// @Summary One dialogue turn
// @Description Stateless: the reply depends only on buttonValue; unknown input returns the welcome step
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param request body domain.DialogueRequest true "message, buttonValue, sessionId"
// @Success 200 {object} domain.DialogueResponse "reply"
// @Failure 400 {object} string "invalid body"
// @Router /api/chatbot/help [post]
func (h *ChatbotHandler) Reply(c *fiber.Ctx) error {
	var req domain.DialogueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	return c.JSON(h.dialogueUC.Reply(req.ButtonValue))
}
