package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/recipeshare/backend/config"
	"github.com/recipeshare/backend/internal/api"
	"github.com/recipeshare/backend/internal/middleware"
	"github.com/recipeshare/backend/internal/service"
)

// Setup wires services, middleware and handlers into the route table. The
// redis client may be nil, which disables login rate limiting.
func Setup(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *gin.Engine {
	if cfg.Env != config.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret, config.TokenExpireSeconds*time.Second)
	userService := service.NewUserService(db, cfg.BcryptCost)
	recipeService := service.NewRecipeService(db)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	if cfg.Env == config.Development {
		router.Use(middleware.RequestLogger())
	}
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.TokenExtractor(authService))

	apiGroup := router.Group("/api")

	login := apiGroup.Group("/login")
	if redisClient != nil && cfg.Env != config.Test {
		login.Use(middleware.NewLoginRateLimiter(redisClient).Middleware())
	}
	api.NewLoginHandler(authService).RegisterRoutes(login)

	api.NewUserHandler(db, userService).RegisterRoutes(apiGroup)
	api.NewRecipeHandler(db, recipeService).RegisterRoutes(apiGroup)

	if cfg.Env == config.Test {
		api.NewTestingHandler(userService).RegisterRoutes(apiGroup)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "unknown endpoint"})
	})

	return router
}
