// File: api-chik-chik/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maksim-leskin/api-chik-chik/config"
	"github.com/maksim-leskin/api-chik-chik/cron"
	"github.com/maksim-leskin/api-chik-chik/database"
	orderRepoPkg "github.com/maksim-leskin/api-chik-chik/database/repository/order"
	scheduleRepoPkg "github.com/maksim-leskin/api-chik-chik/database/repository/schedule"
	specialistRepoPkg "github.com/maksim-leskin/api-chik-chik/database/repository/specialist"
	"github.com/maksim-leskin/api-chik-chik/handlers"
	"github.com/maksim-leskin/api-chik-chik/middleware"
	"github.com/maksim-leskin/api-chik-chik/routes"
	"github.com/maksim-leskin/api-chik-chik/services/order"
	"github.com/maksim-leskin/api-chik-chik/services/schedule"
	"github.com/maksim-leskin/api-chik-chik/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	specRepo := specialistRepoPkg.NewMongoSpecialistRepo()
	schedRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	ordRepo := orderRepoPkg.NewMongoOrderRepo()

	// services.
	scheduleCache := schedule.NewRedisScheduleCache(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.ScheduleCacheTTLMinutes)*time.Minute,
	)
	scheduleService := &schedule.DefaultScheduleService{
		Specialists: specRepo,
		Schedules:   schedRepo,
		Cache:       scheduleCache,
		MonthsAhead: config.AppConfig.ScheduleMonthsAhead,
		StaleAfter:  time.Duration(config.AppConfig.ScheduleStaleAfterHours) * time.Hour,
	}
	orderService := &order.DefaultOrderService{
		Repo: ordRepo,
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ResolveAvailability: scheduleHandler.ResolveHandler,
		CreateOrder:         orderHandler.CreateOrderHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start background workers.
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	cron.StartScheduleWorker(
		workerCtx,
		scheduleService,
		time.Duration(config.AppConfig.ScheduleCheckPeriodHours)*time.Hour,
	)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "2002"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting Chik-chik server on %s...", srv.Addr)
	logger.Sugar().Info("GET /api - specialist catalog")
	logger.Sugar().Info("GET /api?service={n} - specialists offering a service")
	logger.Sugar().Info("GET /api?spec={n} - specialist's working months")
	logger.Sugar().Info("GET /api?spec={n}&month={n} - specialist's working days")
	logger.Sugar().Info("GET /api?spec={n}&month={n}&day={n} - free slots for a day")
	logger.Sugar().Info("POST /api/order - submit an order")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	cancelWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
