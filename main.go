package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"treehouse/config"
	_ "treehouse/docs"
	"treehouse/repositories"
	"treehouse/routes"

	"github.com/gin-gonic/gin"
)

// @title The Treehouse API
// @version 1.0
// @description Menu, session cart and order relay for The Treehouse.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.LoadConfig()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx := context.Background()
	infra := routes.Infrastructure{
		Redis: config.ConnectRedis(ctx, cfg),
	}
	defer config.CloseRedis(infra.Redis)

	if cfg.MenuSource == config.MenuSourcePostgres {
		if err := config.RunMigrations(cfg); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		if infra.Redis != nil {
			if err := repositories.InvalidateMenuCache(ctx, infra.Redis); err != nil {
				log.Printf("Failed to invalidate menu cache: %v", err)
			}
		}
		db, err := config.ConnectDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		infra.DB = db
		defer config.CloseDB(db)
	}

	router, err := routes.NewRouter(cfg, infra)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Println("Received shutdown signal, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
