package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/robocompare/robocompare-backend/internal/catalog"
	"github.com/robocompare/robocompare-backend/internal/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Registry *catalog.Registry
	Router   *gin.Engine
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	registry, err := catalog.Load(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load category catalog: %w", err)
	}

	clients, err := wireClients(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init clients: %w", err)
	}

	serviceset := wireServices(log, cfg, registry, clients)
	handlerset := wireHandlers(log, registry, serviceset)
	router := wireRouter(log, cfg, handlerset)

	return &App{
		Log:      log,
		Cfg:      cfg,
		Registry: registry,
		Router:   router,
		Services: serviceset,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
