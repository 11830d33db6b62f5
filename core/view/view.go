package view

import (
	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/core/search"
)

// Kind names one of the two views over the registry.
type Kind int

const (
	Inventory Kind = iota
	Cart
)

func (k Kind) String() string {
	switch k {
	case Inventory:
		return "inventory"
	case Cart:
		return "cart"
	}
	return "unknown"
}

// Row is one displayed entry of a view.
type Row struct {
	Handle    asset.Handle
	Record    asset.Record
	Presented asset.State
}

type Option func(*Index)

// WithClock sets the source of today's date used to derive presented states.
func WithClock(today func() asset.Date) Option {
	return func(x *Index) {
		x.today = today
	}
}

// Index keeps the Inventory and Cart subsets of one registry. Inventory holds
// registry positions narrowed by the active query; Cart holds asset
// identifiers so that either view can be reordered independently.
type Index struct {
	reg    *asset.Registry
	filter search.Filter
	today  func() asset.Date

	query     string
	inventory []int
	cart      []string
	sorts     map[Kind]Sort
}

func New(reg *asset.Registry, filter search.Filter, opts ...Option) *Index {
	x := &Index{
		reg:    reg,
		filter: filter,
		today:  asset.Today,
		sorts:  map[Kind]Sort{},
	}
	for _, opt := range opts {
		opt(x)
	}
	x.sync(false)
	return x
}

// Query returns the active search query.
func (x *Index) Query() string {
	return x.query
}

// SetFilter recomputes Inventory for query. Cart is untouched.
func (x *Index) SetFilter(query string) {
	x.query = query
	delete(x.sorts, Inventory)
	x.inventory = x.filter.Match(query, x.reg.Records())
}

// ToggleCart moves an Available record into the cart, or a Cart record back
// out of it.
func (x *Index) ToggleCart(h asset.Handle) (asset.State, error) {
	rec, err := x.reg.Get(h)
	if err != nil {
		return "", err
	}

	switch rec.State {
	case asset.StateAvailable:
		to, err := asset.Transition(rec.ID, rec.State, asset.EventAddToCart)
		if err != nil {
			return "", err
		}
		x.reg.SetState(h.Index, to)
		x.cart = append(x.cart, rec.ID)
		x.sync(true)
		return to, nil
	case asset.StateCart:
		if err := x.Uncart(rec.ID); err != nil {
			return "", err
		}
		return asset.StateAvailable, nil
	}
	return "", asset.InvalidTransitionError{AssetID: rec.ID, From: rec.State, Event: asset.EventAddToCart}
}

// Uncart reverts a cart item to Available and removes it from the cart.
func (x *Index) Uncart(id string) error {
	i, ok := x.reg.IndexOf(id)
	if !ok {
		return asset.NotFoundError{AssetID: id}
	}
	to, err := asset.Transition(id, x.reg.At(i).State, asset.EventRemoveFromCart)
	if err != nil {
		return err
	}
	x.reg.SetState(i, to)
	x.dropFromCart(id)
	x.sync(true)
	return nil
}

// Settle records that a cart item was checked out: it leaves the cart as
// Requested.
func (x *Index) Settle(id string) error {
	i, ok := x.reg.IndexOf(id)
	if !ok {
		return asset.NotFoundError{AssetID: id}
	}
	to, err := asset.Transition(id, x.reg.At(i).State, asset.EventCheckout)
	if err != nil {
		return err
	}
	x.reg.SetState(i, to)
	x.dropFromCart(id)
	x.sync(true)
	return nil
}

// ClearCart empties the cart, returning every item still in it to Available.
func (x *Index) ClearCart() {
	for _, id := range x.cart {
		if i, ok := x.reg.IndexOf(id); ok && x.reg.At(i).State == asset.StateCart {
			x.reg.SetState(i, asset.StateAvailable)
		}
	}
	x.cart = nil
	delete(x.sorts, Cart)
	x.sync(true)
}

// CartIDs returns the identifiers in the cart in displayed order.
func (x *Index) CartIDs() []string {
	out := make([]string, len(x.cart))
	copy(out, x.cart)
	return out
}

// CartRecords returns the records in the cart in displayed order.
func (x *Index) CartRecords() []asset.Record {
	out := make([]asset.Record, 0, len(x.cart))
	for _, id := range x.cart {
		if i, ok := x.reg.IndexOf(id); ok {
			out = append(out, x.reg.At(i))
		}
	}
	return out
}

// RemoveIndex deletes the record at registry position i and purges it from
// both views. Inventory positions above i shift down by one.
func (x *Index) RemoveIndex(i int) error {
	if i < 0 || i >= x.reg.Len() {
		return asset.IndexInvalidatedError{Index: i, Generation: x.reg.Generation(), Current: x.reg.Generation()}
	}
	id := x.reg.At(i).ID
	x.reg.Remove(i)

	x.dropFromCart(id)
	inventory := x.inventory[:0]
	for _, pos := range x.inventory {
		switch {
		case pos == i:
			continue
		case pos > i:
			pos--
		}
		inventory = append(inventory, pos)
	}
	x.inventory = inventory
	x.sorts = map[Kind]Sort{}
	return nil
}

// Refresh recomputes both views after records changed in place, keeping any
// active sort.
func (x *Index) Refresh() {
	x.sync(true)
}

// Rebuild recomputes both views after a structural change of the registry.
// Sorts are dropped.
func (x *Index) Rebuild() {
	x.sync(false)
}

// Rows returns the displayed rows of a view.
func (x *Index) Rows(kind Kind) []Row {
	today := x.today()
	var positions []int
	switch kind {
	case Inventory:
		positions = x.inventory
	case Cart:
		positions = make([]int, 0, len(x.cart))
		for _, id := range x.cart {
			if i, ok := x.reg.IndexOf(id); ok {
				positions = append(positions, i)
			}
		}
	}

	rows := make([]Row, 0, len(positions))
	for _, i := range positions {
		rec := x.reg.At(i)
		rows = append(rows, Row{
			Handle:    x.reg.Handle(i),
			Record:    rec,
			Presented: rec.Presented(today),
		})
	}
	return rows
}

// Contains reports whether the view displays the asset with the given id.
func (x *Index) Contains(kind Kind, id string) bool {
	for _, row := range x.Rows(kind) {
		if row.Record.ID == id {
			return true
		}
	}
	return false
}

// sync re-applies cart membership by identifier and recomputes Inventory.
// Identifiers that are gone, or whose record is neither Available nor Cart,
// leave the cart.
func (x *Index) sync(keepSort bool) {
	cart := x.cart[:0]
	seen := map[string]bool{}
	for _, id := range x.cart {
		i, ok := x.reg.IndexOf(id)
		if !ok || seen[id] {
			continue
		}
		switch x.reg.At(i).State {
		case asset.StateAvailable:
			x.reg.SetState(i, asset.StateCart)
		case asset.StateCart:
		default:
			continue
		}
		seen[id] = true
		cart = append(cart, id)
	}
	x.cart = cart

	x.inventory = x.filter.Match(x.query, x.reg.Records())

	if !keepSort {
		x.sorts = map[Kind]Sort{}
		return
	}
	for kind, s := range x.sorts {
		x.apply(kind, s)
	}
}

func (x *Index) dropFromCart(id string) {
	for i, cid := range x.cart {
		if cid == id {
			x.cart = append(x.cart[:i], x.cart[i+1:]...)
			return
		}
	}
}
