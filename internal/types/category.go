package types

// SpecGroup is a named, ordered cluster of generic spec fields used for
// comparison layout. Better[i] holds the preferred direction ("min", "max"
// or "") for Specs[i].
type SpecGroup struct {
	ID     string   `json:"id" yaml:"id"`
	Name   string   `json:"name" yaml:"name"`
	Icon   string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Specs  []string `json:"specs" yaml:"specs"`
	Better []string `json:"better" yaml:"better"`
}

// Category is one catalog entry from the static registry. DatabaseID points
// at the upstream database backing the category and is never exposed to
// clients.
type Category struct {
	ID         string      `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Icon       string      `json:"icon" yaml:"icon"`
	DatabaseID string      `json:"-" yaml:"database_id"`
	SpecGroups []SpecGroup `json:"specGroups" yaml:"spec_groups,omitempty"`
}

// CategoryConfig is the persisted per-category display configuration blob.
type CategoryConfig struct {
	SpecGroups []SpecGroup `json:"specGroups"`
}
