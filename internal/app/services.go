package app

import (
	"github.com/robocompare/robocompare-backend/internal/catalog"
	"github.com/robocompare/robocompare-backend/internal/logger"
	"github.com/robocompare/robocompare-backend/internal/services"
)

type Services struct {
	Robots services.RobotService
	Config services.ConfigService
}

func wireServices(log *logger.Logger, cfg Config, registry *catalog.Registry, clients Clients) Services {
	log.Info("Wiring services...")
	robotService := services.NewRobotService(log, registry, clients.Notion)
	cachedRobots := services.NewCachedRobotService(log, robotService, cfg.CacheTTL)
	configService := services.NewConfigService(log, clients.Notion, cfg.ConfigDatabaseID)
	return Services{
		Robots: cachedRobots,
		Config: configService,
	}
}
