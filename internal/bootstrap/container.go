package bootstrap

import (
	"context"
	"log"

	"ai-siteplanner-be/internal/config"
	"ai-siteplanner-be/internal/constant"
	"ai-siteplanner-be/internal/controller"
	"ai-siteplanner-be/internal/handler"
	"ai-siteplanner-be/internal/pkg/logger"
	"ai-siteplanner-be/internal/repository/contract"
	"ai-siteplanner-be/internal/repository/implementation"
	"ai-siteplanner-be/internal/repository/memory"
	"ai-siteplanner-be/internal/repository/redisrepo"
	"ai-siteplanner-be/internal/service"
	"ai-siteplanner-be/internal/websocket"
	"ai-siteplanner-be/pkg/database"
	"ai-siteplanner-be/pkg/genai"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	PlannerController controller.IPlannerController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	ProgressHandler *handler.ProgressHandler
	WebSocketHub    *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Plan Store based on Config
	planRepo := newPlanRepository(cfg)

	// 4. WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/progress.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	// 5. Services
	genaiClient := genai.NewClient(cfg.Keys.GoogleGemini, cfg.Ai.Model)
	if !genaiClient.Configured() {
		log.Printf("[WARN] GOOGLE_GEMINI_API_KEY is not set; generation endpoints will fail")
	}

	modelLogger := logger.NewIsolatedLogger("logs/model_responses.log")
	generatorService := service.NewGeneratorService(genaiClient, modelLogger)

	publisherService := service.NewPublisherService(pubSub, constant.PlanUpdatedTopicName)
	consumerService := service.NewConsumerService(
		pubSub,
		constant.PlanUpdatedTopicName,
		planRepo,
		sysLogger,
	)

	plannerService := service.NewPlannerService(
		generatorService,
		planRepo,
		publisherService,
		wsHub,
		sysLogger,
		cfg.Ai.DefaultTemperature,
	)

	return &Container{
		PlannerController: controller.NewPlannerController(plannerService),
		ConsumerService:   consumerService,
		ProgressHandler:   handler.NewProgressHandler(wsHub, wsLogger),
		WebSocketHub:      wsHub,
	}
}

func newPlanRepository(cfg *config.Config) contract.IPlanRepository {
	switch cfg.Store.Provider {
	case "postgres":
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Fatalf("[FATAL] Unable to connect to GORM DB: %v", err)
		}
		repo, err := implementation.NewPlanRepository(db)
		if err != nil {
			log.Fatalf("[FATAL] Unable to migrate plan store: %v", err)
		}
		log.Printf("[INFO] Using Plan Store: POSTGRES")
		return repo

	case "redis":
		opt, err := redis.ParseURL(cfg.Store.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.Store.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		log.Printf("[INFO] Using Plan Store: REDIS")
		return redisrepo.NewPlanRepository(rdb)

	default:
		log.Printf("[INFO] Using Plan Store: MEMORY")
		return memory.NewPlanRepository()
	}
}
