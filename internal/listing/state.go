package listing

// State is the whole listing application state: the collection plus the
// current filter selection. It is a value; Reduce returns a new State and
// never writes through the old one, so the caller owns exactly one current
// value and replaces it wholesale on every event.
type State struct {
	Items   []Item  `json:"items"`
	Filters Filters `json:"filters"`
}

// NewState builds the initial state around an already loaded collection.
func NewState(items []Item) State {
	return State{
		Items:   items,
		Filters: Filters{}.normalized(),
	}
}

// Visible applies the current filters to the collection.
func (s State) Visible() []Item {
	return Apply(s.Items, s.Filters)
}

// Event is one state transition trigger.
type Event interface {
	isEvent()
}

type ItemAdded struct{ Item Item }

type ItemUpdated struct {
	ID      int64
	Changes Changes
}

type ItemDeleted struct{ ID int64 }

type ItemToggled struct{ ID int64 }

type InactiveCleared struct{}

type FiltersChanged struct{ Filters Filters }

func (ItemAdded) isEvent()       {}
func (ItemUpdated) isEvent()     {}
func (ItemDeleted) isEvent()     {}
func (ItemToggled) isEvent()     {}
func (InactiveCleared) isEvent() {}
func (FiltersChanged) isEvent()  {}

// Reduce maps (state, event) to the next state. Unknown events return the
// input unchanged.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case ItemAdded:
		s.Items = Add(s.Items, ev.Item)
	case ItemUpdated:
		s.Items = Update(s.Items, ev.ID, ev.Changes)
	case ItemDeleted:
		s.Items = Delete(s.Items, ev.ID)
	case ItemToggled:
		s.Items = Toggle(s.Items, ev.ID)
	case InactiveCleared:
		s.Items = ClearInactive(s.Items)
	case FiltersChanged:
		s.Filters = ev.Filters.normalized()
	}
	return s
}
