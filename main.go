// File: farmconnect/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farmconnect/config"
	"farmconnect/database"
	bookingRepoPkg "farmconnect/database/repository/booking"
	labourRepoPkg "farmconnect/database/repository/labour"
	machineryRepoPkg "farmconnect/database/repository/machinery"
	requesterRepoPkg "farmconnect/database/repository/requester"
	"farmconnect/handlers"
	"farmconnect/routes"
	"farmconnect/services/sms"
	"farmconnect/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSMSCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	requesterRepo := requesterRepoPkg.NewMongoRequesterRepo()
	machineryRepo := machineryRepoPkg.NewMongoMachineryRepo()
	labourRepo := labourRepoPkg.NewMongoLabourRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	smsService := &sms.DefaultSMSBookingService{
		Requesters: requesterRepo,
		Machinery:  machineryRepo,
		Labour:     labourRepo,
		Bookings:   bookingRepo,
	}

	smsHandler := handlers.NewSMSHandler(smsService, utils.GetSMSCacheClient(), logger)

	routes.RegisterRoutes(router, smsHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
