package server

import (
	"github.com/gin-gonic/gin"

	"github.com/robocompare/robocompare-backend/internal/http/handlers"
	"github.com/robocompare/robocompare-backend/internal/http/middleware"
	"github.com/robocompare/robocompare-backend/internal/logger"
)

type RouterConfig struct {
	Log             *logger.Logger
	AllowedOrigins  []string
	HealthHandler   *handlers.HealthHandler
	CategoryHandler *handlers.CategoryHandler
	RobotHandler    *handlers.RobotHandler
	ConfigHandler   *handlers.ConfigHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.AttachRequestID())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/categories", cfg.CategoryHandler.ListCategories)
		api.GET("/robots/:category", cfg.RobotHandler.GetRobots)
		api.GET("/config/:category", cfg.ConfigHandler.GetConfig)
		api.POST("/config/:category", cfg.ConfigHandler.SaveConfig)
	}

	return router
}
