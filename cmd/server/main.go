package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goose-bumps-backend/conf"
	"goose-bumps-backend/controller"
	"goose-bumps-backend/database"
	"goose-bumps-backend/service/solana_service"
	"goose-bumps-backend/service/web3_service"

	"go.uber.org/zap"
)

var createMint bool

func init() {
	flag.BoolVar(&createMint, "create-mint", false, "Create the SPL-token mint account and exit")
}

// @title           Goose Bumps Backend API
// @version         1.0
// @description     Gamified education backend with Solana and ERC-721 reward adapters

// @host      localhost:8000
// @BasePath  /

// @schemes http https

func main() {
	flag.Parse()

	if err := conf.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// Adapters are built once and shared; a missing or malformed variable
	// stops the process here with a message naming it.
	solanaService, err := solana_service.NewService(conf.Cfg.Solana, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize Solana adapter: %v", err)
	}
	web3Service, err := web3_service.NewService(conf.Cfg.Web3, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize EVM adapter: %v", err)
	}

	if createMint {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := solanaService.CreateMint(ctx); err != nil {
			logger.Fatalf("Mint creation failed: %v", err)
		}
		logger.Info("Mint account created, exiting")
		return
	}

	// The deployment path is a stub, but it must complete before the
	// listener binds so a broken configuration fails at startup.
	if err := web3Service.DeployContract(context.Background()); err != nil {
		logger.Fatalf("Contract deployment check failed: %v", err)
	}

	store := database.NewUserStore()
	router := controller.SetupRouter(store, solanaService, web3Service, logger)

	srv := &http.Server{
		Addr:    ":" + conf.Cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Infof("API service starting on port %s...", conf.Cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	waitForShutdown()

	logger.Info("Shutting down server...")
	shutdownServer(srv, logger)
	logger.Info("Server exited")
}

// waitForShutdown wait for shutdown signal
func waitForShutdown() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
}

// shutdownServer gracefully shutdown server
func shutdownServer(srv *http.Server, logger *zap.SugaredLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
}
