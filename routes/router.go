package routes

import (
	"fmt"
	"log"
	"treehouse/config"
	"treehouse/controllers"
	"treehouse/libs"
	"treehouse/middleware"
	"treehouse/repositories"
	"treehouse/services"
	"treehouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Infrastructure holds optional backends. A nil Redis keeps carts in memory
// and the menu uncached; a nil DB serves the static catalog.
type Infrastructure struct {
	Redis *redis.Client
	DB    *pgxpool.Pool
}

func NewRouter(cfg *config.Config, infra Infrastructure) (*gin.Engine, error) {
	codeHash := cfg.MembersAccessCodeHash
	if codeHash == "" {
		hash, err := utils.HashAccessCode(cfg.MembersAccessCode)
		if err != nil {
			return nil, fmt.Errorf("failed to hash members access code: %w", err)
		}
		codeHash = hash
	}

	images, err := libs.NewImageResolver(cfg.CloudinaryURL, cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, err
	}

	var menuRepo repositories.MenuRepository = repositories.NewStaticMenuRepository()
	if infra.DB != nil {
		menuRepo = repositories.NewPostgresMenuRepository(infra.DB)
	}

	var cartRepo repositories.CartRepository = repositories.NewMemoryCartRepository()
	if infra.Redis != nil {
		menuRepo = repositories.NewCachedMenuRepository(menuRepo, infra.Redis, cfg.MenuCacheTTL)
		cartRepo = repositories.NewRedisCartRepository(infra.Redis, cfg.CartTTL)
	}

	httpClient := libs.NewJSONClient(cfg.WebhookTimeout)

	membersService := services.NewMembersService(codeHash, cfg.JWTSecret, cfg.MembersTokenExpiry)
	cartService := services.NewCartService(cartRepo)
	orderService := services.NewOrderService(cartService, libs.NewRelayClient(cfg.OrderRelayURL, httpClient), cfg.ConfirmationWindow)
	relayService := services.NewRelayService(config.WebhookURL, httpClient, cfg.RestaurantName)
	menuService := services.NewMenuService(menuRepo, images)

	secure := cfg.AppEnv == "production"
	ctrls := &Controllers{
		Menu:    controllers.NewMenuController(menuService),
		Members: controllers.NewMembersController(membersService, secure),
		Cart:    controllers.NewCartController(cartService, orderService, menuService),
		Order:   controllers.NewOrderController(relayService),
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	router.Use(middleware.SessionMiddleware(secure))
	SetupRoutes(router, ctrls, middleware.MembersAccess(membersService))

	log.Printf("Order relay URL: %s", cfg.OrderRelayURL)
	return router, nil
}
