package app

import (
	"strings"
	"time"

	"github.com/robocompare/robocompare-backend/internal/logger"
	"github.com/robocompare/robocompare-backend/internal/utils"
)

type Config struct {
	Port             string
	CacheTTL         time.Duration
	ConfigDatabaseID string
	AllowedOrigins   []string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "4000", log)
	cacheTTLSeconds := utils.GetEnvAsInt("CACHE_TTL_SECONDS", 60, log)
	configDatabaseID := utils.GetEnv("DB_CONFIG", "2e361bed8f1c80b7b408f9210a57ef58", log)

	var origins []string
	if raw := utils.GetEnv("ALLOWED_ORIGINS", "", log); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return Config{
		Port:             port,
		CacheTTL:         time.Duration(cacheTTLSeconds) * time.Second,
		ConfigDatabaseID: configDatabaseID,
		AllowedOrigins:   origins,
	}
}
