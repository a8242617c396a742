package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"reuse_market_service/internal/api/handlers"
	"reuse_market_service/internal/api/router"
	chatapp "reuse_market_service/internal/chat/app"
	chatrepository "reuse_market_service/internal/chat/repository"
	chatbotapp "reuse_market_service/internal/chatbot/app"
	maintenanceapp "reuse_market_service/internal/maintenance/app"
	maintenancerepository "reuse_market_service/internal/maintenance/repository"
	memberapp "reuse_market_service/internal/member/app"
	memberdomain "reuse_market_service/internal/member/domain"
	memberrepository "reuse_market_service/internal/member/repository"
	productapp "reuse_market_service/internal/product/app"
	productrepository "reuse_market_service/internal/product/repository"
	"reuse_market_service/pkg/config"
	"reuse_market_service/pkg/database"
	"reuse_market_service/pkg/logger"
	"reuse_market_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	seed := flag.Bool("seed", false, "insert demo users, products and messages before serving")
	flag.Parse()

	logger.Log = logger.Initialize(config.EnvConfig.MarketService, config.EnvConfig.MarketServiceLogPath)

	cfg := config.LoadConfig[config.Market](config.EnvConfig.MarketService, config.EnvConfig.MarketServiceYAMLPath)

	// 1. 連線 PostgreSQL (pgxpool 給 member, gorm 給其餘)
	sqlParams := fmt.Sprintf("postgres://%s:%s@%s:%d/%s", cfg.PostgreSQL.User, cfg.PostgreSQL.Password, cfg.PostgreSQL.Host, cfg.PostgreSQL.Port, cfg.PostgreSQL.Database)
	pool, err := database.NewDatabaseConnection(database.Connection{
		ConnectStr:    sqlParams,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to postgreSQL database after retries",
			zap.String("address", fmt.Sprintf("[%s]", sqlParams)),
			zap.Error(err),
		)
	}
	defer pool.Close()

	db, err := database.NewGormConnection(database.Connection{
		ConnectStr:    sqlParams,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal("Unable to open gorm connection after retries", zap.Error(err))
	}

	// 2. 資料表遷移
	userRepo := memberrepository.NewUserRepository(pool)
	if err := userRepo.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("users schema err : %v", err)
	}
	productRepo := productrepository.NewProductRepo(db)
	if err := productRepo.AutoMigrate(); err != nil {
		log.Fatalf("products migrate err : %v", err)
	}
	messageRepo := chatrepository.NewMessageRepository(db)
	if err := messageRepo.AutoMigrate(); err != nil {
		log.Fatalf("messages migrate err : %v", err)
	}
	configRepo := maintenancerepository.NewConfigRepository(db)
	if err := configRepo.AutoMigrate(); err != nil {
		log.Fatalf("configs migrate err : %v", err)
	}

	// 3. Redis: session 存取 + 新訊息 pub/sub 共用同一個 client
	masterName, sentinel := config.GetRedisSetting()
	redisClient, err := database.NewRedisClient(masterName, sentinel, cfg.RedisMarket.RedisDB)
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect redis err : %v", err))
	}
	sessionRepo := database.NewRedisRepository[memberdomain.UserSession](redisClient)
	pubsub := chatrepository.NewRedisPubSub(redisClient)

	// 4. MinIO 商品圖片
	minioClient, err := database.NewMinIOConnection(database.MinIOConnection{
		Endpoint:   cfg.MinIO.Endpoint,
		User:       cfg.MinIO.User,
		Password:   cfg.MinIO.Password,
		BucketName: cfg.MinIO.BucketName,
		UseSSL:     cfg.MinIO.UseSSL,

		RetryCount:    cfg.MinIO.RetryCount,
		RetryInterval: time.Duration(cfg.MinIO.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect minio err : %v", err))
	}

	// 5. UseCases
	userUC := memberapp.NewUserUseCase(userRepo, cfg.SessionTTL*time.Minute, sessionRepo)
	productUC := productapp.NewProductUseCase(productRepo, minioClient)
	chatUC := chatapp.NewChatUseCase(messageRepo, productRepo, userRepo, pubsub)
	dialogueUC := chatbotapp.NewDialogueUseCase()

	statusCache := maintenanceapp.NewStatusCache(
		time.Duration(cfg.Maintenance.CacheTTL)*time.Millisecond,
		time.Duration(cfg.Maintenance.FetchTimeout)*time.Millisecond,
		func(ctx context.Context) (bool, error) {
			c, err := configRepo.FindLatest(ctx)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return false, nil
				}
				return false, err
			}
			return c.MaintenanceMode, nil
		},
	)
	maintenanceUC := maintenanceapp.NewMaintenanceUseCase(configRepo, statusCache)

	if *seed {
		if err := seedDemoData(context.Background(), userRepo, productRepo, messageRepo); err != nil {
			logger.Log.Fatal("seed err", zap.Error(err))
		}
		logger.Log.Info("seed completed")
	}

	// 6. Handlers 與路由
	memberHandler := handlers.NewMemberHandler(userUC)
	productHandler := handlers.NewProductHandler(productUC)
	chatHandler := handlers.NewChatHandler(chatUC)
	chatbotHandler := handlers.NewChatbotHandler(dialogueUC)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceUC)
	chatWebsocket := chatapp.NewChatWebsocketHandler(chatUC, pubsub)

	r := fiber.New()

	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.MarketServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	gate := middlewares.MaintenanceGate(statusCache, nil)
	router.RegisterRoutes(r, gate, memberHandler, productHandler, chatHandler, chatbotHandler, maintenanceHandler, chatWebsocket)

	if err := r.Listen(cfg.IP + ":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}
