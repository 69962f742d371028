package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robocompare/robocompare-backend/internal/logger"
	"github.com/robocompare/robocompare-backend/internal/types"
	"github.com/robocompare/robocompare-backend/internal/utils"
)

var ErrCategoryNotFound = errors.New("category not found")

// Registry is the static category catalog, defined at process start and
// immutable at runtime. Database ids come from built-in defaults, per
// category env overrides (DB_<ID>), or a CATALOG_FILE YAML file.
type Registry struct {
	categories []types.Category
	byID       map[string]int
}

func defaultCategories() []types.Category {
	return []types.Category{
		{
			ID: "humanoid", Name: "Humanoid", Icon: "🤖", DatabaseID: "5287fbe07a1f459f9641ef25da1d604b",
			SpecGroups: []types.SpecGroup{
				{ID: "overview", Name: "Overview", Icon: "📐", Specs: []string{"Height", "Weight", "Total DOF"}, Better: []string{"", "min", "max"}},
				{ID: "performance", Name: "Performance", Icon: "⚡", Specs: []string{"Navigation Max", "Payload", "IP Rating"}, Better: []string{"max", "max", ""}},
				{ID: "power", Name: "Power", Icon: "🔋", Specs: []string{"Runtime", "Battery", "Charge Time"}, Better: []string{"max", "max", "min"}},
				{ID: "intelligence", Name: "Intelligence", Icon: "🧠", Specs: []string{"Chip", "Computing", "Sensors"}, Better: []string{"", "max", ""}},
			},
		},
		{
			ID: "quadruped", Name: "Quadruped", Icon: "🐕", DatabaseID: "c14806f5048b4a29b616d5ec93b3d53c",
			SpecGroups: []types.SpecGroup{
				{ID: "overview", Name: "Overview", Icon: "📐", Specs: []string{"Length", "Height", "Weight"}, Better: []string{"", "", "min"}},
				{ID: "performance", Name: "Performance", Icon: "⚡", Specs: []string{"Max Speed", "Payload", "IP Rating"}, Better: []string{"max", "max", ""}},
				{ID: "power", Name: "Power", Icon: "🔋", Specs: []string{"Runtime", "Battery"}, Better: []string{"max", "max"}},
			},
		},
		{
			ID: "vacuum", Name: "Vacuum", Icon: "🧹", DatabaseID: "9c845bdc3ec54ddfae1381eed85c480f",
			SpecGroups: []types.SpecGroup{
				{ID: "overview", Name: "Overview", Icon: "📐", Specs: []string{"Diameter", "Height", "Weight"}, Better: []string{"min", "min", "min"}},
				{ID: "performance", Name: "Performance", Icon: "⚡", Specs: []string{"Suction Power", "Mopping", "Navigation Type"}, Better: []string{"max", "", ""}},
				{ID: "power", Name: "Power", Icon: "🔋", Specs: []string{"Runtime"}, Better: []string{"max"}},
			},
		},
		{
			ID: "pool_cleaner", Name: "Pool Cleaner", Icon: "🏊", DatabaseID: "24a8ebb8167a4acfa7c555a3529cef90",
			SpecGroups: []types.SpecGroup{
				{ID: "overview", Name: "Overview", Icon: "📐", Specs: []string{"Weight"}, Better: []string{"min"}},
				{ID: "performance", Name: "Performance", Icon: "⚡", Specs: []string{"Coverage"}, Better: []string{"max"}},
			},
		},
		{
			ID: "lawn_mower", Name: "Lawn Mower", Icon: "🌿", DatabaseID: "0797ce98f8464c7abe2c25644d43978b",
			SpecGroups: []types.SpecGroup{
				{ID: "overview", Name: "Overview", Icon: "📐", Specs: []string{"Weight"}, Better: []string{"min"}},
				{ID: "performance", Name: "Performance", Icon: "⚡", Specs: []string{"Coverage"}, Better: []string{"max"}},
			},
		},
		{
			ID: "industrial", Name: "Industrial", Icon: "🏭", DatabaseID: "2a4638597dd945e492adccd286da0615",
			SpecGroups: []types.SpecGroup{
				{ID: "overview", Name: "Overview", Icon: "📐", Specs: []string{"Reach", "Weight", "Axes"}, Better: []string{"max", "min", "max"}},
				{ID: "performance", Name: "Performance", Icon: "⚡", Specs: []string{"Payload", "Repeatability"}, Better: []string{"max", "min"}},
			},
		},
		{
			ID: "wheeled", Name: "Wheeled", Icon: "🦿", DatabaseID: "4009dbfc313949cc8900f70ffadc26a5",
			SpecGroups: []types.SpecGroup{
				{ID: "overview", Name: "Overview", Icon: "📐", Specs: []string{"Weight"}, Better: []string{"min"}},
			},
		},
		{
			ID: "companion", Name: "Companion", Icon: "🤗", DatabaseID: "9a3a7a3d3ee744e3905843ab967b4f27",
			SpecGroups: []types.SpecGroup{
				{ID: "overview", Name: "Overview", Icon: "📐", Specs: []string{"Weight"}, Better: []string{"min"}},
			},
		},
		{
			ID: "drone", Name: "Drone", Icon: "🚁", DatabaseID: "0acb01e2fbeb494f9876c004aacbcb5a",
			SpecGroups: []types.SpecGroup{
				{ID: "overview", Name: "Overview", Icon: "📐", Specs: []string{"Weight", "Foldable"}, Better: []string{"min", ""}},
				{ID: "performance", Name: "Performance", Icon: "⚡", Specs: []string{"Max Speed", "Max Range"}, Better: []string{"max", "max"}},
				{ID: "power", Name: "Power", Icon: "🔋", Specs: []string{"Flight Time"}, Better: []string{"max"}},
				{ID: "camera", Name: "Camera", Icon: "📷", Specs: []string{"Camera Resolution", "Video Resolution"}, Better: []string{"", ""}},
			},
		},
		{
			ID: "others", Name: "Others", Icon: "📦", DatabaseID: "925a0db1fd3e48a3b2a09e7d300ea8e5",
			SpecGroups: []types.SpecGroup{},
		},
	}
}

type catalogFile struct {
	Categories []types.Category `yaml:"categories"`
}

func Load(log *logger.Logger) (*Registry, error) {
	cats := defaultCategories()

	if path := utils.GetEnv("CATALOG_FILE", "", log); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog file: %w", err)
		}
		if len(file.Categories) > 0 {
			cats = file.Categories
		}
		log.Info("Loaded category catalog from file", "path", path, "categories", len(cats))
	}

	for i := range cats {
		envKey := "DB_" + strings.ToUpper(cats[i].ID)
		if v := utils.GetEnv(envKey, "", log); v != "" {
			cats[i].DatabaseID = v
		}
		// serialized as [] rather than null for file-loaded entries
		if cats[i].SpecGroups == nil {
			cats[i].SpecGroups = []types.SpecGroup{}
		}
	}

	byID := make(map[string]int, len(cats))
	for i, cat := range cats {
		if _, dup := byID[cat.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q in catalog", cat.ID)
		}
		byID[cat.ID] = i
	}
	return &Registry{categories: cats, byID: byID}, nil
}

// Categories returns the catalog entries that have a backing database,
// in registry order.
func (r *Registry) Categories() []types.Category {
	out := make([]types.Category, 0, len(r.categories))
	for _, cat := range r.categories {
		if cat.DatabaseID == "" {
			continue
		}
		out = append(out, cat)
	}
	return out
}

// DatabaseID resolves a category id to its upstream database id.
func (r *Registry) DatabaseID(categoryID string) (string, error) {
	i, ok := r.byID[categoryID]
	if !ok || r.categories[i].DatabaseID == "" {
		return "", fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID)
	}
	return r.categories[i].DatabaseID, nil
}
