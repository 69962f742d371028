package normalization

import (
	"github.com/robocompare/robocompare-backend/internal/clients/notion"
	"github.com/robocompare/robocompare-backend/internal/types"
)

const missingIdentity = "Unknown"

// NormalizeRecord flattens one raw record into its client-ready shape
// using a classification of the record's schema. Highlight ordinals with
// no field or no value are compacted away; absent generic values are
// omitted from Specs entirely.
func NormalizeRecord(rec notion.Record, cls Classification) *types.Robot {
	robot := &types.Robot{
		ID:         rec.ID,
		Highlights: []string{},
		Specs:      map[string]any{},
	}

	robot.Model = identityValue(rec, cls.Identity.Model)
	robot.Company = identityValue(rec, cls.Identity.Company)

	if cls.Identity.Image != "" {
		if val, ok := Extract(rec.Properties[cls.Identity.Image]); ok {
			if url, isStr := val.(string); isStr && url != "" {
				robot.Image = &url
			}
		}
	}

	for _, field := range cls.Highlights {
		if field == "" {
			continue
		}
		if text := ExtractText(rec.Properties[field]); text != "" {
			robot.Highlights = append(robot.Highlights, text)
		}
	}

	for _, desc := range cls.Generic {
		if val, ok := Extract(rec.Properties[desc.Name]); ok {
			robot.Specs[desc.Name] = val
		}
	}

	return robot
}

func identityValue(rec notion.Record, field string) string {
	if field != "" {
		if text := ExtractText(rec.Properties[field]); text != "" {
			return text
		}
	}
	return missingIdentity
}
