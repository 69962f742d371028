package normalization

import (
	"regexp"
	"sort"
	"strings"

	"github.com/robocompare/robocompare-backend/internal/types"
)

// Identity names the schema fields that supply a record's model, company
// and image. Any of the three may be empty when the schema has no match.
type Identity struct {
	Model   string
	Company string
	Image   string
}

// Classification partitions a schema into identity fields, highlight
// fields (by ordinal, index 0 holds the field for rank 1) and the generic
// comparison fields. The three sets are mutually exclusive.
type Classification struct {
	Identity   Identity
	Highlights [highlightSlots]string
	Generic    []types.PropertyDescriptor
}

const highlightSlots = 5

// Historical naming variants, in priority order; first present wins.
var (
	modelAliases   = []string{"Model", "Name"}
	companyAliases = []string{"Company", "Brand"}
	imageAliases   = []string{"Image", "Photo"}
)

// Types that render meaningfully in a comparison table. Title is excluded:
// it is reserved for identity use.
var genericTypes = map[string]bool{
	"number":       true,
	"select":       true,
	"multi_select": true,
	"checkbox":     true,
	"rich_text":    true,
	"text":         true,
	"url":          true,
	"date":         true,
}

var highlightPattern = regexp.MustCompile(`^ksp([1-5])$`)

// MatchHighlight reports whether a field name is a highlight field and,
// if so, its ordinal rank 1-5. Matching is case-insensitive and ignores
// whitespace, hyphens and underscores, so "KSP-1", "KSP 1", "ksp-1" and
// "ksp1" all resolve to rank 1.
func MatchHighlight(name string) (int, bool) {
	normalized := strings.ToLower(name)
	normalized = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, normalized)
	m := highlightPattern.FindStringSubmatch(normalized)
	if m == nil {
		return 0, false
	}
	return int(m[1][0] - '0'), true
}

// Classify is a pure function of the schema. Field order is made
// deterministic by sorting names, so duplicate ordinals and alias ties
// resolve the same way on every call.
func Classify(schema types.PropertySchema) Classification {
	var cls Classification

	cls.Identity.Model = firstPresent(schema, modelAliases)
	cls.Identity.Company = firstPresent(schema, companyAliases)
	cls.Identity.Image = firstPresent(schema, imageAliases)

	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)

	reserved := map[string]bool{}
	for _, name := range []string{cls.Identity.Model, cls.Identity.Company, cls.Identity.Image} {
		if name != "" {
			reserved[name] = true
		}
	}

	for _, name := range names {
		if reserved[name] {
			continue
		}
		if ord, ok := MatchHighlight(name); ok {
			if cls.Highlights[ord-1] == "" {
				cls.Highlights[ord-1] = name
			}
			reserved[name] = true
		}
	}

	for _, name := range names {
		if reserved[name] {
			continue
		}
		spec := schema[name]
		if !genericTypes[spec.Type] {
			continue
		}
		desc := types.PropertyDescriptor{Name: name, Type: spec.Type}
		if spec.Type == "select" {
			desc.Options = spec.Options
		}
		cls.Generic = append(cls.Generic, desc)
	}

	return cls
}

// HasHighlights reports whether the schema declared any highlight field
// at all, regardless of per-record values.
func (c Classification) HasHighlights() bool {
	for _, name := range c.Highlights {
		if name != "" {
			return true
		}
	}
	return false
}

func firstPresent(schema types.PropertySchema, aliases []string) string {
	for _, alias := range aliases {
		if _, ok := schema[alias]; ok {
			return alias
		}
	}
	return ""
}
