package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bitewise/internal/clover"
	"bitewise/internal/config"
	"bitewise/internal/handlers"
	"bitewise/internal/logging"
	"bitewise/internal/models"
	"bitewise/internal/repositories"
	"bitewise/internal/services"
	"bitewise/pkg/rabbitmq"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("server exited")
	}
}

// run owns every resource it opens, so deferred closes also happen on error.
func run() error {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// --- Database ---
	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", cfg.DBDriver, err)
	}
	defer closeDatabase(db)

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			logging.Warn().Err(err).Msg("RabbitMQ unavailable, recommendation events disabled")
		} else {
			defer func() {
				if err := mqClient.Close(); err != nil {
					logging.Error().Err(err).Msg("error closing RabbitMQ client")
				}
			}()
			publisher = mqClient
			startEventConsumer(mqClient)
		}
	}

	catalog := clover.NewClient(cfg.CloverBaseURL, cfg.CloverTimeout)

	app, err := newApp(cfg, db, catalog, publisher)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", cfg.AppPort).Msg("starting server")
		listenErr <- app.Listen(cfg.AppPort)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	logging.Info().Msg("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logging.Error().Err(err).Msg("error during fiber shutdown")
	}
	logging.Info().Msg("server gracefully stopped")
	return nil
}

func closeDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logging.Error().Err(err).Msg("failed to get database handle")
		return
	}
	if err := sqlDB.Close(); err != nil {
		logging.Error().Err(err).Msg("error closing database")
	}
}

// openDatabase connects using the configured driver and DSN.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

// newApp migrates the schema and wires repositories, services and handlers
// into a Fiber app. publisher may be nil.
func newApp(cfg *config.Config, db *gorm.DB, catalog services.CatalogClient, publisher services.EventPublisher) (*fiber.App, error) {
	if err := db.AutoMigrate(&models.User{}, &models.Recommendation{}, &models.MerchantToken{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	recRepo := repositories.NewGORMRecommendationRepository(db)
	merchantRepo := repositories.NewGORMMerchantRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo)
	merchantService := services.NewMerchantService(merchantRepo, catalog, cfg.DefaultMerchantID)
	catalogService := services.NewCatalogService(catalog)
	orderService := services.NewOrderService(catalog)
	recService := services.NewRecommendationService(userRepo, recRepo, catalog, publisher)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService)
	merchantHandler := handlers.NewMerchantHandler(merchantService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, merchantService)
	orderHandler := handlers.NewOrderHandler(orderService, merchantService)
	recHandler := handlers.NewRecommendationHandler(recService, merchantService, cfg.CoffeeCategory)

	app := fiber.New(fiber.Config{
		AppName:               "bitewise",
		DisableStartupMessage: true,
		UnescapePath:          true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": publisher != nil,
		})
	})

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	userHandler.RegisterRoutes(apiV1)
	merchantHandler.RegisterRoutes(apiV1)
	catalogHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)
	recHandler.RegisterRoutes(apiV1)

	return app, nil
}

// startEventConsumer logs every recommendation event seen on the queue.
func startEventConsumer(mqClient *rabbitmq.Client) {
	err := mqClient.Consume(func(msg amqp.Delivery) error {
		var event models.RecommendationEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			return fmt.Errorf("decode recommendation event: %w", err)
		}
		logging.Info().
			Str("event_id", event.EventID).
			Uint("recommendation_id", event.RecommendationID).
			Uint("user_id", event.UserID).
			Int("items", event.ItemCount).
			Msg("recommendation event received")
		return nil
	})
	if err != nil {
		logging.Error().Err(err).Msg("failed to start RabbitMQ consumer")
	}
}
