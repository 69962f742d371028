package normalization

import (
	"fmt"
	"strings"

	"github.com/robocompare/robocompare-backend/internal/clients/notion"
)

// Extract converts one typed property value into its canonical scalar.
// The second return is false when the value carries no content. Unknown
// type tags extract to nothing; nested fields are all optional, so this
// never panics on partially-populated values.
func Extract(v notion.PropertyValue) (any, bool) {
	switch v.Type {
	case "title":
		return firstPlainText(v.Title)
	case "rich_text", "text":
		return firstPlainText(v.RichText)
	case "number":
		if v.Number == nil {
			return nil, false
		}
		return *v.Number, true
	case "select":
		if v.Select == nil || v.Select.Name == "" {
			return nil, false
		}
		return v.Select.Name, true
	case "multi_select":
		names := make([]string, 0, len(v.MultiSelect))
		for _, opt := range v.MultiSelect {
			names = append(names, opt.Name)
		}
		return strings.Join(names, ", "), true
	case "checkbox":
		if v.Checkbox == nil {
			return nil, false
		}
		if *v.Checkbox {
			return "Yes", true
		}
		return "No", true
	case "url":
		if v.URL == nil || *v.URL == "" {
			return nil, false
		}
		return *v.URL, true
	case "files":
		if len(v.Files) == 0 {
			return nil, false
		}
		first := v.Files[0]
		if first.File != nil && first.File.URL != "" {
			return first.File.URL, true
		}
		if first.External != nil && first.External.URL != "" {
			return first.External.URL, true
		}
		return nil, false
	case "formula":
		if v.Formula == nil {
			return nil, false
		}
		if v.Formula.String != nil {
			return *v.Formula.String, true
		}
		if v.Formula.Number != nil {
			return *v.Formula.Number, true
		}
		return nil, false
	case "date":
		if v.Date == nil || v.Date.Start == "" {
			return nil, false
		}
		return v.Date.Start, true
	default:
		return nil, false
	}
}

// ExtractText is Extract flattened to a display string, "" when absent.
func ExtractText(v notion.PropertyValue) string {
	val, ok := Extract(v)
	if !ok {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprint(val)
}

func firstPlainText(runs []notion.RichText) (any, bool) {
	if len(runs) == 0 {
		return nil, false
	}
	return runs[0].PlainText, true
}
