package search_test

import (
	"strings"
	"testing"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/core/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fixtures() []asset.Record {
	due := asset.MustDate("2024-01-31")
	return []asset.Record{
		{ID: "100", Name: "Canon EOS R6", State: asset.StateAvailable, StorageLocation: "Shelf A", Description: strPtr("Mirrorless body")},
		{ID: "101", Name: "Tripod", State: asset.StateBorrowed, Borrower: strPtr("Jane Doe"), Email: strPtr("jane@example.com"), Due: &due, StorageLocation: "Closet"},
		{ID: "A-7", Name: "Projector", State: asset.StateAvailable, StorageLocation: "Room 3"},
	}
}

func TestFilterMatch(t *testing.T) {
	f, err := search.NewFilter(search.Config{})
	require.NoError(t, err)

	type testCase struct {
		Description string
		Query       string
		Expected    []int
	}

	var testCases = []testCase{
		{Description: "empty query returns every index", Query: "", Expected: []int{0, 1, 2}},
		{Description: "whitespace query matches only fields holding it", Query: " ", Expected: []int{0, 1, 2}},
		{Description: "double space matches nothing", Query: "  ", Expected: []int{}},
		{Description: "leading space is part of the query", Query: " eos", Expected: []int{0}},
		{Description: "padded query does not match the field start", Query: " canon", Expected: []int{}},
		{Description: "hint text returns every index", Query: search.DefaultHint, Expected: []int{0, 1, 2}},
		{Description: "matches names case-insensitively", Query: "canon", Expected: []int{0}},
		{Description: "matches identifiers", Query: "10", Expected: []int{0, 1}},
		{Description: "matches borrower email", Query: "EXAMPLE.COM", Expected: []int{1}},
		{Description: "matches due date text", Query: "2024-01", Expected: []int{1}},
		{Description: "matches description", Query: "mirrorless", Expected: []int{0}},
		{Description: "matches storage location", Query: "room", Expected: []int{2}},
		{Description: "state is not searchable", Query: "borrowed", Expected: []int{}},
		{Description: "no match returns empty", Query: "zzz", Expected: []int{}},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			got := f.Match(tc.Query, fixtures())
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestFilterMatchIsSubsetOfIdentity(t *testing.T) {
	f, err := search.NewFilter(search.Config{})
	require.NoError(t, err)

	records := fixtures()
	identity := f.Match("", records)
	for _, q := range []string{"a", "E", "1", "-", "doe", "shelf", "2024", "x", " ", "  ", " cam", "r ", " 3"} {
		got := f.Match(q, records)
		assert.Subset(t, identity, got, "query %q", q)
		for _, i := range got {
			found := false
			for _, fld := range f.Fields {
				v, ok := records[i].Value(fld)
				if ok && strings.Contains(strings.ToLower(v), strings.ToLower(q)) {
					found = true
				}
			}
			assert.True(t, found, "query %q returned index %d without a matching field", q, i)
		}
	}
}

func TestNewFilter(t *testing.T) {
	t.Run("uses configured fields and hint", func(t *testing.T) {
		f, err := search.NewFilter(search.Config{Fields: []string{"name", " purchase_date "}, Hint: "Find"})
		require.NoError(t, err)
		assert.Equal(t, []asset.Field{asset.FieldName, asset.FieldPurchaseDate}, f.Fields)
		assert.True(t, f.IsEmpty("Find"))
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := search.NewFilter(search.Config{Fields: []string{"colour"}})
		assert.ErrorAs(t, err, &asset.ValidationError{})
	})
}
