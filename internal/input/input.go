// Package input models the raw pointer event stream: mouse and touch events
// fan out through a Dispatcher to whoever registered for them. Everything is
// single-threaded and run-to-completion; Dispatch returns only after every
// listener has run.
package input

// Kind identifies a pointer event type.
type Kind int

const (
	MouseDown Kind = iota
	MouseMove
	MouseUp
	MouseLeave
	TouchStart
	TouchMove
	TouchEnd
)

// Touch is a single active touch point in page coordinates.
type Touch struct {
	PageX float32
	PageY float32
}

// PointerEvent carries the coordinates of a mouse event or the touch-point
// list of a touch event.
type PointerEvent struct {
	ClientX float32
	ClientY float32
	Touches []Touch
}

type pointerListener struct {
	id int
	fn func(PointerEvent)
}

// Dispatcher routes pointer events to registered listeners.
type Dispatcher struct {
	listeners map[Kind][]pointerListener
	nextID    int
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[Kind][]pointerListener)}
}

// AddListener registers a callback for one event kind and returns an id for
// RemoveListener.
func (d *Dispatcher) AddListener(kind Kind, fn func(PointerEvent)) int {
	if fn == nil {
		return 0
	}
	d.nextID++
	d.listeners[kind] = append(d.listeners[kind], pointerListener{id: d.nextID, fn: fn})
	return d.nextID
}

// RemoveListener removes the callback registered under id.
// Stale or unknown ids are a no-op.
func (d *Dispatcher) RemoveListener(kind Kind, id int) {
	ls := d.listeners[kind]
	for i, l := range ls {
		if l.id == id {
			d.listeners[kind] = append(ls[:i], ls[i+1:]...)
			return
		}
	}
}

// Dispatch delivers an event to every listener of the given kind, in
// registration order.
func (d *Dispatcher) Dispatch(kind Kind, ev PointerEvent) {
	for _, l := range d.listeners[kind] {
		l.fn(ev)
	}
}
