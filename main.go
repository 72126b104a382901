package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventhorizon/config"
	"eventhorizon/cron"
	"eventhorizon/database"
	bookmarkRepo "eventhorizon/database/repository/bookmark"
	horizonRepo "eventhorizon/database/repository/horizon"
	mealplanRepo "eventhorizon/database/repository/mealplan"
	todoRepo "eventhorizon/database/repository/todo"
	"eventhorizon/handlers"
	"eventhorizon/middleware"
	"eventhorizon/routes"
	calendarSvc "eventhorizon/services/calendar"
	horizonSvc "eventhorizon/services/horizon"
	"eventhorizon/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	defer database.CloseDB()

	// Redis is optional; without it the app falls back to the in-process
	// cache and the warm worker stays off.
	if config.AppConfig.RedisAddr != "" {
		utils.InitCache()
	}
	queryCache := utils.NewQueryCache()

	gcalClient, err := utils.NewCalendarService(context.Background())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Google Calendar client: %v", err)
	}
	calSvc, err := calendarSvc.NewDefaultCalendarService(gcalClient, queryCache)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	todos := todoRepo.NewMongoTodoRepo()
	horizons := horizonRepo.NewMongoHorizonRepo()
	bookmarks := bookmarkRepo.NewMongoBookmarkRepo()
	mealplans := mealplanRepo.NewMongoMealPlanRepo()

	// Services.
	horizonService := &horizonSvc.DefaultHorizonService{
		Repo:  horizons,
		Cache: queryCache,
		TTL:   time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Calendar: handlers.NewCalendarHandler(calSvc),
		Todo:     handlers.NewTodoHandler(todos),
		Horizon:  handlers.NewHorizonHandler(horizonService),
		Bookmark: handlers.NewBookmarkHandler(bookmarks),
		MealPlan: handlers.NewMealPlanHandler(mealplans),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Background pieces: dependency health snapshot and the scheduled
	// calendar cache warm.
	utils.StartHealthMonitor(utils.CacheClient, database.MongoClient)
	cron.InitCacheWarmWorker(calSvc)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
