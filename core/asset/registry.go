package asset

// Handle addresses a registry position as of a given generation.
type Handle struct {
	Index      int
	Generation uint64
}

// Registry is the authoritative in-memory ordered list of records. The
// generation is bumped on every structural change so that handles taken
// before it are detected as stale.
type Registry struct {
	records    []Record
	byID       map[string]int
	generation uint64
}

func NewRegistry() *Registry {
	return &Registry{byID: map[string]int{}}
}

func (r *Registry) Len() int {
	return len(r.records)
}

func (r *Registry) Generation() uint64 {
	return r.generation
}

// Records returns a copy of the records in registry order.
func (r *Registry) Records() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// At returns the record at position i. It panics when i is out of range, like
// indexing a slice.
func (r *Registry) At(i int) Record {
	return r.records[i]
}

// Handle returns a handle to position i in the current generation.
func (r *Registry) Handle(i int) Handle {
	return Handle{Index: i, Generation: r.generation}
}

// Resolve validates h against the current generation and bounds.
func (r *Registry) Resolve(h Handle) (int, error) {
	if h.Generation != r.generation || h.Index < 0 || h.Index >= len(r.records) {
		return 0, IndexInvalidatedError{Index: h.Index, Generation: h.Generation, Current: r.generation}
	}
	return h.Index, nil
}

// Get returns the record h points at.
func (r *Registry) Get(h Handle) (Record, error) {
	i, err := r.Resolve(h)
	if err != nil {
		return Record{}, err
	}
	return r.records[i], nil
}

func (r *Registry) IndexOf(id string) (int, bool) {
	i, ok := r.byID[id]
	return i, ok
}

// Lookup returns a current handle for the asset with the given id.
func (r *Registry) Lookup(id string) (Handle, error) {
	i, ok := r.byID[id]
	if !ok {
		return Handle{}, NotFoundError{AssetID: id}
	}
	return r.Handle(i), nil
}

// Replace swaps the whole list, as done after a reload from the store.
func (r *Registry) Replace(records []Record) {
	r.records = make([]Record, len(records))
	copy(r.records, records)
	r.reindex()
	r.generation++
}

// Update overwrites the record at i in place. The id must not change, so the
// generation is kept.
func (r *Registry) Update(i int, rec Record) {
	r.records[i] = rec
}

// SetState changes the state of the record at i in place.
func (r *Registry) SetState(i int, s State) {
	r.records[i].State = s
}

// Remove deletes the record at i.
func (r *Registry) Remove(i int) {
	r.records = append(r.records[:i], r.records[i+1:]...)
	r.reindex()
	r.generation++
}

func (r *Registry) reindex() {
	r.byID = make(map[string]int, len(r.records))
	for i, rec := range r.records {
		r.byID[rec.ID] = i
	}
}
