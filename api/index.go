package api

import (
	"context"
	"log"
	"net/http"
	"sync"
	"treehouse/config"
	_ "treehouse/docs"
	"treehouse/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

// initApp builds the router once per serverless instance. Carts live in
// Redis here; without it they only survive for the life of the instance.
func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()
		infra := routes.Infrastructure{
			Redis: config.ConnectRedis(context.Background(), cfg),
		}

		if cfg.MenuSource == config.MenuSourcePostgres {
			db, err := config.ConnectDB(context.Background(), cfg)
			if err != nil {
				log.Printf("Database unavailable, serving static menu: %v", err)
			} else {
				infra.DB = db
			}
		}

		r, err := routes.NewRouter(cfg, infra)
		if err != nil {
			log.Fatalf("Failed to build router: %v", err)
		}
		router = r
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
