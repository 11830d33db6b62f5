package asset

// LoanPeriodDays is the number of calendar days a loan runs and an extension
// adds.
const LoanPeriodDays = 30

// Event triggers a lifecycle transition.
type Event string

const (
	EventAddToCart      Event = "add to cart"
	EventRemoveFromCart Event = "remove from cart"
	EventCheckout       Event = "check out"
	EventApprove        Event = "approve"
	EventMakeAvailable  Event = "make available"
	EventReturn         Event = "return"
	EventExtend         Event = "extend"
	EventDelete         Event = "delete"
)

func (e Event) String() string {
	return string(e)
}

var transitions = map[Event]map[State]State{
	EventAddToCart:      {StateAvailable: StateCart},
	EventRemoveFromCart: {StateCart: StateAvailable},
	EventCheckout:       {StateCart: StateRequested},
	EventApprove:        {StateRequested: StateBorrowed},
	EventMakeAvailable: {
		StateRequested: StateAvailable,
		StateBorrowed:  StateAvailable,
	},
	EventReturn: {StateBorrowed: StateAvailable},
	EventExtend: {
		StateRequested: StateRequested,
		StateBorrowed:  StateBorrowed,
	},
	EventDelete: {
		StateAvailable: StateDeleted,
		StateCart:      StateDeleted,
		StateRequested: StateDeleted,
		StateBorrowed:  StateDeleted,
	},
}

// Transition returns the state reached from `from` on event ev. Overdue is
// validated as the borrowed state it is derived from.
func Transition(assetID string, from State, ev Event) (State, error) {
	if from == StateOverdue {
		from = StateBorrowed
	}
	to, ok := transitions[ev][from]
	if !ok {
		return "", InvalidTransitionError{AssetID: assetID, From: from, Event: ev}
	}
	return to, nil
}

// Can reports whether ev is legal for the record's stored state.
func (r Record) Can(ev Event) bool {
	_, err := Transition(r.ID, r.State, ev)
	return err == nil
}

// ExtendedDue returns the due date after an extension of `days` calendar
// days. A record without a parsable due date is corrupt.
func (r Record) ExtendedDue(days int) (Date, error) {
	if r.Due == nil {
		return Date{}, CorruptRecordError{AssetID: r.ID, Field: FieldDue}
	}
	return r.Due.AddDays(days), nil
}
