package types

// PropertySpec is one field of an upstream database schema: its declared
// type tag plus, for select fields, the selectable option labels.
type PropertySpec struct {
	Type    string
	Options []string
}

// PropertySchema maps field name to its declared property spec. Fetched
// fresh from the upstream store on every cache miss, never mutated.
type PropertySchema map[string]PropertySpec

// PropertyDescriptor describes one generic (non-identity, non-highlight)
// field available for a category's comparison table.
type PropertyDescriptor struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// Robot is a single normalized record. Highlights is a compacted ordered
// list (no gaps, at most five entries). Specs never contains identity,
// media or highlight fields.
type Robot struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	Company    string         `json:"company"`
	Image      *string        `json:"image"`
	Highlights []string       `json:"highlights"`
	Specs      map[string]any `json:"specs"`
}

// RobotData is the full client-ready result for one category. HasKSP
// reflects the schema (highlight fields exist), not per-record presence.
type RobotData struct {
	Robots     []*Robot             `json:"robots"`
	Properties []PropertyDescriptor `json:"properties"`
	HasKSP     bool                 `json:"hasKSP"`
}
