package asset

import (
	"strconv"
	"strings"
)

// ParseIDs splits a comma separated identifier list as typed for bulk entry.
// Every identifier appearing more than once is reported.
func ParseIDs(input string) ([]string, error) {
	parts := strings.Split(input, ",")
	ids := make([]string, 0, len(parts))
	seen := make(map[string]int, len(parts))
	var dups []string
	for _, p := range parts {
		id := strings.TrimSpace(p)
		if id == "" {
			return nil, ValidationError{Op: "add", Field: FieldID.String(), Reason: "required field is empty"}
		}
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, id)
		}
		ids = append(ids, id)
	}
	if len(dups) > 0 {
		return nil, ValidationError{Op: "add", IDs: dups, Field: FieldID.String(), Reason: "non-unique asset identifiers"}
	}
	return ids, nil
}

// MaxNumericIDLen bounds the identifiers ordered by value, so that they fit
// a signed 64-bit column cast.
const MaxNumericIDLen = 18

// CompareIDs is the listing order of identifiers: decimal identifiers first,
// by value, then every other identifier bytewise.
func CompareIDs(a, b string) int {
	na, okA := numericID(a)
	nb, okB := numericID(b)
	switch {
	case okA && okB:
		if na < nb {
			return -1
		}
		if na > nb {
			return 1
		}
	case okA:
		return -1
	case okB:
		return 1
	}
	return strings.Compare(a, b)
}

func numericID(id string) (uint64, bool) {
	if id == "" || len(id) > MaxNumericIDLen {
		return 0, false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(id, 10, 64)
	return n, err == nil
}
