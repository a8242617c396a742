package handlers

import (
	"errors"

	chatapp "reuse_market_service/internal/chat/app"
	"reuse_market_service/internal/chat/domain"
	"reuse_market_service/pkg/logger"
	"reuse_market_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ChatHandler 处理訊息相关的 HTTP 请求
type ChatHandler struct {
	chatUC chatapp.ChatUseCase
}

// NewChatHandler 创建新的 ChatHandler
func NewChatHandler(chatUC chatapp.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUC: chatUC,
	}
}

// GetConversations 登入者的對話串列表
// @Summary List viewer's conversations
// @Description Messages grouped by (product, other user); most recently active first
// @Tags Chat
// @Produce json
// @Success 200 {array} domain.Conversation "conversations"
// @Failure 401 {object} string "missing session"
// @Router /api/chat/conversations [get]
func (h *ChatHandler) GetConversations(c *fiber.Ctx) error {
	viewerID, ok := c.Locals(middlewares.TokenUserID).(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	conversations, err := h.chatUC.GetConversations(c.UserContext(), viewerID)
	if err != nil {
		logger.Log.Error("get conversations err :", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(conversations)
}

// GetThread 單一對話串的訊息, 最舊在前
// @Summary Get message thread
// @Tags Chat
// @Produce json
// @Param productId query string true "product id"
// @Param otherUserId query string true "other participant's user id"
// @Success 200 {array} domain.MessageView "messages oldest first"
// @Failure 400 {object} string "missing productId or otherUserId"
// @Router /api/messages [get]
func (h *ChatHandler) GetThread(c *fiber.Ctx) error {
	viewerID, ok := c.Locals(middlewares.TokenUserID).(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	productID := c.Query("productId")
	otherUserID := c.Query("otherUserId")
	if productID == "" || otherUserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "productId and otherUserId are required"})
	}

	msgs, err := h.chatUC.GetThread(c.UserContext(), viewerID, productID, otherUserID)
	if err != nil {
		logger.Log.Error("get thread err :", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(msgs)
}

// SendMessage 發送訊息
// @Summary Send a message about a product
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body object true "receiverId, productId, content"
// @Success 201 {object} domain.MessageView "created message"
// @Failure 400 {object} string "empty content or self message"
// @Failure 404 {object} string "product or receiver not found"
// @Router /api/messages [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	senderID, ok := c.Locals(middlewares.TokenUserID).(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	type request struct {
		ReceiverID string `json:"receiverId"`
		ProductID  string `json:"productId"`
		Content    string `json:"content"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	view, err := h.chatUC.SendMessage(c.UserContext(), senderID, req.ReceiverID, req.ProductID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyContent), errors.Is(err, domain.ErrSelfMessage):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrReceiverNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			logger.Log.Error("send message err :", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(view)
}
