package app

import (
	"github.com/robocompare/robocompare-backend/internal/catalog"
	"github.com/robocompare/robocompare-backend/internal/http/handlers"
	"github.com/robocompare/robocompare-backend/internal/logger"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Category *handlers.CategoryHandler
	Robot    *handlers.RobotHandler
	Config   *handlers.ConfigHandler
}

func wireHandlers(log *logger.Logger, registry *catalog.Registry, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   handlers.NewHealthHandler(),
		Category: handlers.NewCategoryHandler(registry),
		Robot:    handlers.NewRobotHandler(log, serviceset.Robots),
		Config:   handlers.NewConfigHandler(log, serviceset.Config),
	}
}
