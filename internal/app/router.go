package app

import (
	"github.com/gin-gonic/gin"

	"github.com/robocompare/robocompare-backend/internal/logger"
	"github.com/robocompare/robocompare-backend/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:             log,
		AllowedOrigins:  cfg.AllowedOrigins,
		HealthHandler:   handlerset.Health,
		CategoryHandler: handlerset.Category,
		RobotHandler:    handlerset.Robot,
		ConfigHandler:   handlerset.Config,
	})
}
