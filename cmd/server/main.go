package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bankledger/configs"
	"bankledger/internal/accounts"
	"bankledger/internal/handlers"
	"bankledger/internal/ledger"
	"bankledger/internal/logger"
	"bankledger/internal/routes"
	"bankledger/internal/seed"
	"bankledger/internal/store"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	configs.LoadConfig()

	db, err := store.NewDB(configs.AppConfig.DB.DSN)
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.Log.Fatal("failed to run migrations", zap.Error(err))
	}
	seed.Run(db)

	accountRepo := store.NewAccounts(db)
	movementRepo := store.NewMovements(db)
	userRepo := store.NewUsers(db)

	accountSvc := accounts.NewService(accountRepo, logger.Log)
	ledgerSvc := ledger.NewService(movementRepo, accountRepo, logger.Log)

	h := handlers.New(accountSvc, ledgerSvc, userRepo, configs.AppConfig.JWT.SECRET)
	router := routes.New(h, configs.AppConfig.JWT.SECRET)

	srv := &http.Server{
		Addr:         configs.AppConfig.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	logger.Log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("graceful shutdown failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Error("db close skipped, reason:", zap.Error(err))
	} else {
		sqlDB.Close()
		logger.Log.Info("db closed")
	}

	logger.Log.Info("server stopped")
}
