package router

import (
	"context"

	"reuse_market_service/internal/api/handlers"
	chatapp "reuse_market_service/internal/chat/app"
	"reuse_market_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes 注册所有路由
// @title ReUse Market Service API
// @version 1.0
// @description API documentation for ReUse Market Service
// @host localhost:8080
// @BasePath /
func RegisterRoutes(app *fiber.App,
	gate fiber.Handler,
	memberHandler *handlers.MemberHandler,
	productHandler *handlers.ProductHandler,
	chatHandler *handlers.ChatHandler,
	chatbotHandler *handlers.ChatbotHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	chatWebsocket *chatapp.ChatWebsocketHandler,
) {
	// 維護模式攔截要在所有路由之前
	app.Use(gate)

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Post("/debug", handlers.DebugLogFlag)

	// 維護公告頁永遠可達
	app.Get("/maintenance", maintenanceHandler.NoticePage)

	memberRoutes := app.Group("/member")
	memberRoutes.Post("/register", memberHandler.Register)
	memberRoutes.Post("/login", memberHandler.Login)
	memberRoutes.Post("/logout", middlewares.JWTMiddleware(), memberHandler.Logout)

	api := app.Group("/api")

	maintenanceRoutes := api.Group("/maintenance")
	maintenanceRoutes.Get("/", maintenanceHandler.GetConfig)
	maintenanceRoutes.Put("/", maintenanceHandler.UpdateConfig)
	maintenanceRoutes.Get("/control", maintenanceHandler.ControlStatus)
	maintenanceRoutes.Post("/control", maintenanceHandler.ControlUpdate)
	maintenanceRoutes.Get("/panel", maintenanceHandler.Panel)

	productRoutes := api.Group("/products")
	productRoutes.Get("/", productHandler.ListProducts)
	productRoutes.Get("/categories", productHandler.Categories)
	productRoutes.Get("/:id", productHandler.GetProduct)
	productRoutes.Post("/", middlewares.JWTMiddleware(), productHandler.CreateProduct)

	chatbotRoutes := api.Group("/chatbot")
	chatbotRoutes.Get("/help", chatbotHandler.Info)
	chatbotRoutes.Post("/help", chatbotHandler.Reply)

	// 訊息相關都要登入
	api.Get("/chat/conversations", middlewares.JWTMiddleware(), chatHandler.GetConversations)
	messageRoutes := api.Group("/messages", middlewares.JWTMiddleware())
	messageRoutes.Get("/", chatHandler.GetThread)
	messageRoutes.Post("/", chatHandler.SendMessage)

	ws := app.Group("/ws", middlewares.JWTMiddleware())
	ws.Use(func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/chat", websocket.New(func(c *websocket.Conn) {
		chatWebsocket.HandleConnection(context.Background(), c)
	}))
}
