package rbtree

type Event int

const (
	EventInsert Event = iota
	EventDuplicate
	EventRemove
	EventRemoveMiss
	EventRotateLeft
	EventRotateRight
	// insert fixup, red uncle
	EventInsertRecolor
	// insert fixup, black uncle
	EventInsertRotate
	EventRemoveSiblingRed
	// remove fixup, black sibling with black children
	EventRemoveRecolor
	EventRemoveNearNephew
	EventRemoveFarNephew
)

var eventNames = [...]string{
	EventInsert:           "insert",
	EventDuplicate:        "duplicate",
	EventRemove:           "remove",
	EventRemoveMiss:       "remove_miss",
	EventRotateLeft:       "rotate_left",
	EventRotateRight:      "rotate_right",
	EventInsertRecolor:    "insert_recolor",
	EventInsertRotate:     "insert_rotate",
	EventRemoveSiblingRed: "remove_sibling_red",
	EventRemoveRecolor:    "remove_recolor",
	EventRemoveNearNephew: "remove_near_nephew",
	EventRemoveFarNephew:  "remove_far_nephew",
}

// Events lists every Event in declaration order.
func Events() []Event {
	events := make([]Event, len(eventNames))
	for i := range events {
		events[i] = Event(i)
	}
	return events
}

func (T Event) String() string {
	if T < 0 || int(T) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[T]
}

// Observer is notified of tree events. size is the number of keys at the time
// of the event. Implementations must not call back into the tree.
type Observer interface {
	Observe(event Event, size int)
}

type ObserverFunc func(event Event, size int)

func (T ObserverFunc) Observe(event Event, size int) {
	T(event, size)
}

// Observers fans each event out to every member.
type Observers []Observer

func (T Observers) Observe(event Event, size int) {
	for _, o := range T {
		o.Observe(event, size)
	}
}

// Counter counts events. The zero value is ready to use.
type Counter [len(eventNames)]int

func (T *Counter) Observe(event Event, _ int) {
	T[event]++
}

func (T *Counter) Count(event Event) int {
	return T[event]
}

var (
	_ Observer = ObserverFunc(nil)
	_ Observer = Observers(nil)
	_ Observer = (*Counter)(nil)
)
