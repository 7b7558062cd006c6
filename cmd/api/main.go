package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/config"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/database"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/health"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/logger"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/middleware"
	natspkg "github.com/rickeev/RideShareTahoe-sub001/internal/pkg/nats"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/server"
	bookingsGateway "github.com/rickeev/RideShareTahoe-sub001/services/bookings/gateway"
	bookingsHandler "github.com/rickeev/RideShareTahoe-sub001/services/bookings/handler"
	bookingsRepository "github.com/rickeev/RideShareTahoe-sub001/services/bookings/repository"
	bookingsUsecase "github.com/rickeev/RideShareTahoe-sub001/services/bookings/usecase"
	messagingHandler "github.com/rickeev/RideShareTahoe-sub001/services/messaging/handler"
	messagingRepository "github.com/rickeev/RideShareTahoe-sub001/services/messaging/repository"
	messagingUsecase "github.com/rickeev/RideShareTahoe-sub001/services/messaging/usecase"
	ridesHandler "github.com/rickeev/RideShareTahoe-sub001/services/rides/handler"
	ridesRepository "github.com/rickeev/RideShareTahoe-sub001/services/rides/repository"
	ridesUsecase "github.com/rickeev/RideShareTahoe-sub001/services/rides/usecase"
	usersHandler "github.com/rickeev/RideShareTahoe-sub001/services/users/handler"
	usersRepository "github.com/rickeev/RideShareTahoe-sub001/services/users/repository"
	usersUsecase "github.com/rickeev/RideShareTahoe-sub001/services/users/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Infrastructure clients
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Repositories
	userRepo := usersRepository.NewUserRepo(configs, db)
	rideRepo := ridesRepository.NewRideRepo(configs, db, redisClient)
	bookingRepo := bookingsRepository.NewBookingRepo(configs, db)
	messageRepo := messagingRepository.NewMessageRepo(configs, db)

	// Gateways
	bookingGW := bookingsGateway.NewBookingGW(natsClient)

	// Usecases
	userUC := usersUsecase.NewUserUC(configs, userRepo)
	rideUC := ridesUsecase.NewRideUC(configs, rideRepo)
	bookingUC, err := bookingsUsecase.NewBookingUC(configs, bookingRepo, bookingGW)
	if err != nil {
		logger.Fatal("Failed to create booking usecase", logger.Err(err))
	}
	messageUC := messagingUsecase.NewMessageUC(configs, messageRepo)

	// Handlers
	usersH := usersHandler.NewHandler(userUC, configs)
	ridesH := ridesHandler.NewHandler(rideUC, configs)
	bookingsH := bookingsHandler.NewHandler(bookingUC, configs)
	messagingH := messagingHandler.NewHandler(messageUC, natsClient, configs)

	if err := messagingH.InitConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	defer messagingH.Drain()

	// HTTP router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Health endpoints
	healthSvc := health.NewService()
	healthSvc.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
	healthSvc.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	health.RegisterEndpoints(e, configs.App.Name, configs.App.Version, healthSvc)

	// Public routes
	public := e.Group("")
	usersH.RegisterPublicRoutes(public)

	// Authenticated routes
	authenticated := e.Group("", middleware.JWTAuthMiddleware(configs.JWT))
	if configs.RateLimit.Enabled {
		authenticated.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient.GetClient(),
			Limit:       configs.RateLimit.Limit,
			Period:      time.Duration(configs.RateLimit.PeriodSeconds) * time.Second,
		}))
	}
	usersH.RegisterRoutes(authenticated)
	ridesH.RegisterRoutes(authenticated)
	bookingsH.RegisterRoutes(authenticated)
	messagingH.RegisterRoutes(authenticated)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Error("Server shutdown with error", logger.Err(err))
	}
}
