package app

import (
	"github.com/robocompare/robocompare-backend/internal/clients/notion"
	"github.com/robocompare/robocompare-backend/internal/logger"
)

type Clients struct {
	Notion notion.API
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")
	notionClient, err := notion.NewClient(log)
	if err != nil {
		return Clients{}, err
	}
	return Clients{Notion: notionClient}, nil
}
