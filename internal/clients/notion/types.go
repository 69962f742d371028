package notion

// Wire types for the upstream structured store. Every property value is a
// tagged union: Type selects which of the nested fields is populated.
// Unknown tags decode into the zero value and extract to nothing.

type RichText struct {
	PlainText string `json:"plain_text"`
}

type SelectOption struct {
	Name string `json:"name"`
}

type FileRef struct {
	URL string `json:"url"`
}

type File struct {
	File     *FileRef `json:"file,omitempty"`
	External *FileRef `json:"external,omitempty"`
}

type Formula struct {
	Type   string   `json:"type"`
	String *string  `json:"string,omitempty"`
	Number *float64 `json:"number,omitempty"`
}

type Date struct {
	Start string `json:"start"`
}

type PropertyValue struct {
	Type        string         `json:"type"`
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	Number      *float64       `json:"number,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	Checkbox    *bool          `json:"checkbox,omitempty"`
	URL         *string        `json:"url,omitempty"`
	Files       []File         `json:"files,omitempty"`
	Formula     *Formula       `json:"formula,omitempty"`
	Date        *Date          `json:"date,omitempty"`
}

// Record is one raw page returned by a database query.
type Record struct {
	ID         string                   `json:"id"`
	Properties map[string]PropertyValue `json:"properties"`
}

// ConfigRow is one row of the config database: the page id plus the raw
// JSON payload stored in its Config property.
type ConfigRow struct {
	PageID  string
	Payload string
}

type schemaSelect struct {
	Options []SelectOption `json:"options"`
}

type schemaProperty struct {
	Type   string        `json:"type"`
	Select *schemaSelect `json:"select,omitempty"`
}

type databaseResponse struct {
	Properties map[string]schemaProperty `json:"properties"`
}

type querySort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type titleFilter struct {
	Equals string `json:"equals"`
}

type queryFilter struct {
	Property string      `json:"property"`
	Title    titleFilter `json:"title"`
}

type queryRequest struct {
	Sorts    []querySort  `json:"sorts,omitempty"`
	Filter   *queryFilter `json:"filter,omitempty"`
	PageSize int          `json:"page_size,omitempty"`
}

type queryResponse struct {
	Results []Record `json:"results"`
}

type textContent struct {
	Content string `json:"content"`
}

type textRun struct {
	Text textContent `json:"text"`
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

type createPageRequest struct {
	Parent     pageParent     `json:"parent"`
	Properties map[string]any `json:"properties"`
}

type updatePageRequest struct {
	Properties map[string]any `json:"properties"`
}
