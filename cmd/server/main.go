package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/fadilmartias/job-wingman/internal/config"
	"github.com/fadilmartias/job-wingman/internal/domain/fiber/handler"
	"github.com/fadilmartias/job-wingman/internal/logger"
	"github.com/fadilmartias/job-wingman/internal/middleware"
	"github.com/fadilmartias/job-wingman/internal/model"
	"github.com/fadilmartias/job-wingman/internal/repository"
	"github.com/fadilmartias/job-wingman/internal/service"
	"github.com/fadilmartias/job-wingman/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	jwtConfig := config.LoadJWTConfig()

	zlog, err := logger.New(appConfig.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"message": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: appConfig.CORSAllowedOrigins,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	db := ConnectDB(zlog)

	userRepo := repository.NewUserRepository(db)
	historyRepo := repository.NewChatHistoryRepository(db)

	var completion service.CompletionServiceInterface
	switch appConfig.CompletionProvider {
	case "gemini":
		gemini, err := service.NewGeminiService(ctx, zlog)
		if err != nil {
			zlog.Fatal("failed to initialize gemini service", zap.Error(err))
		}
		completion = gemini
	default:
		completion = service.NewOpenRouterService(zlog)
	}

	authUc := usecase.NewAuthUsecase(userRepo, jwtConfig.Secret, jwtConfig.TokenTTL, zlog)
	chatUc := usecase.NewChatUsecase(userRepo, historyRepo, completion, zlog)

	authHandler := handler.NewAuthHandler(authUc, zlog)
	chatHandler := handler.NewChatHandler(chatUc, zlog)

	authHandler.RegisterRoutes(app)
	chatHandler.RegisterRoutes(app, middleware.BearerAuth(jwtConfig.Secret))

	zlog.Info("server starting",
		zap.String("port", appConfig.Port),
		zap.String("completion_provider", appConfig.CompletionProvider))
	if err := app.Listen(appConfig.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func ConnectDB(zlog *zap.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{})
	if err != nil {
		zlog.Fatal("could not connect to database", zap.Error(err))
	}
	pgDB, err := db.DB()
	if err != nil {
		zlog.Fatal("could not get database instance", zap.Error(err))
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.User{}, &model.ChatHistory{}); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}
	return db
}
