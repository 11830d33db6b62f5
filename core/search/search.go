package search

import (
	"strings"

	"github.com/goto/assetkeeper/core/asset"
)

// DefaultHint is the placeholder shown in an empty search box. A query equal
// to it is treated as empty.
const DefaultHint = "Search..."

// DefaultFields are the fields searched when none are configured.
var DefaultFields = []asset.Field{
	asset.FieldID,
	asset.FieldName,
	asset.FieldBorrower,
	asset.FieldEmail,
	asset.FieldRequested,
	asset.FieldDue,
	asset.FieldDescription,
	asset.FieldStorageLocation,
}

type Config struct {
	Fields []string `mapstructure:"fields" yaml:"fields"`
	Hint   string   `mapstructure:"hint" yaml:"hint" default:"Search..."`
}

// Filter matches records by case-insensitive substring over a fixed set of
// fields.
type Filter struct {
	Fields []asset.Field
	Hint   string
}

// NewFilter builds a Filter from configuration, falling back to the defaults
// for anything left empty.
func NewFilter(cfg Config) (Filter, error) {
	f := Filter{Fields: DefaultFields, Hint: cfg.Hint}
	if f.Hint == "" {
		f.Hint = DefaultHint
	}
	if len(cfg.Fields) == 0 {
		return f, nil
	}

	fields := make([]asset.Field, 0, len(cfg.Fields))
	for _, name := range cfg.Fields {
		fld, err := asset.ParseField(strings.TrimSpace(name))
		if err != nil {
			return Filter{}, asset.ValidationError{Op: "search", Field: "fields", Err: err}
		}
		fields = append(fields, fld)
	}
	f.Fields = fields
	return f, nil
}

// IsEmpty reports whether query selects every record. Whitespace is part of
// the query.
func (f Filter) IsEmpty(query string) bool {
	return query == "" || query == f.Hint
}

// Match returns, in registry order, the indices of records with at least one
// searchable field containing query.
func (f Filter) Match(query string, records []asset.Record) []int {
	out := make([]int, 0, len(records))
	if f.IsEmpty(query) {
		for i := range records {
			out = append(out, i)
		}
		return out
	}

	q := strings.ToLower(query)
	for i, rec := range records {
		if f.matches(q, rec) {
			out = append(out, i)
		}
	}
	return out
}

func (f Filter) matches(q string, rec asset.Record) bool {
	for _, fld := range f.Fields {
		v, ok := rec.Value(fld)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}
