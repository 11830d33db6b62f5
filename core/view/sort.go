package view

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goto/assetkeeper/core/asset"
)

// Sort orders a displayed subset by one column.
type Sort struct {
	Column     asset.Field
	Descending bool
}

// SortBy stably sorts the displayed subset of kind. The registry order is not
// touched.
func (x *Index) SortBy(kind Kind, column asset.Field, descending bool) error {
	if !column.IsValid() {
		return asset.ValidationError{Op: "sort", Field: column.String(), Reason: "unknown column"}
	}
	s := Sort{Column: column, Descending: descending}
	x.sorts[kind] = s
	x.apply(kind, s)
	return nil
}

// SortOf returns the active sort of kind, if any.
func (x *Index) SortOf(kind Kind) (Sort, bool) {
	s, ok := x.sorts[kind]
	return s, ok
}

func (x *Index) apply(kind Kind, s Sort) {
	today := x.today()
	key := func(i int) string {
		rec := x.reg.At(i)
		if s.Column == asset.FieldState {
			return rec.Presented(today).String()
		}
		v, _ := rec.Value(s.Column)
		return v
	}
	less := func(a, b int) bool {
		c := compare(s.Column, key(a), key(b))
		if s.Descending {
			return c > 0
		}
		return c < 0
	}

	switch kind {
	case Inventory:
		sort.SliceStable(x.inventory, func(i, j int) bool {
			return less(x.inventory[i], x.inventory[j])
		})
	case Cart:
		positions := make(map[string]int, len(x.cart))
		for _, id := range x.cart {
			positions[id], _ = x.reg.IndexOf(id)
		}
		sort.SliceStable(x.cart, func(i, j int) bool {
			return less(positions[x.cart[i]], positions[x.cart[j]])
		})
	}
}

// compare orders identifiers numerically when both are integers and every
// other value case-insensitively.
func compare(column asset.Field, a, b string) int {
	if column == asset.FieldID {
		na, errA := strconv.ParseInt(a, 10, 64)
		nb, errB := strconv.ParseInt(b, 10, 64)
		if errA == nil && errB == nil {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
