package asset

// State is the custody state of an asset.
type State string

const (
	StateAvailable State = "Available"
	StateCart      State = "Cart"
	StateRequested State = "Requested"
	StateBorrowed  State = "Borrowed"
	StateOverdue   State = "Overdue"
	StateDeleted   State = "Deleted"
)

func (s State) String() string {
	return string(s)
}

// IsDurable reports whether the state is held in a loan row.
func (s State) IsDurable() bool {
	return s == StateRequested || s == StateBorrowed
}

// parseLoanState maps the state column of a loan row.
func parseLoanState(s string) (State, bool) {
	st := State(s)
	if !st.IsDurable() {
		return "", false
	}
	return st, true
}
