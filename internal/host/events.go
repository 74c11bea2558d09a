package host

// Key names a keyboard key the way the window reports it.
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
)

// Viewport is the window's client area. Width and Height are in
// device-independent units; PixelRatio converts them to device pixels.
type Viewport struct {
	Width      float64
	Height     float64
	PixelRatio float64
}

// Pixels returns the viewport size in device pixels.
func (v Viewport) Pixels() (int, int) {
	ratio := v.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	return int(v.Width * ratio), int(v.Height * ratio)
}

type listenerKind int

const (
	kindResize listenerKind = iota
	kindKeyDown
	kindKeyUp
)

type listener struct {
	id     uint64
	kind   listenerKind
	resize func(Viewport)
	key    func(Key)
}

// Events fans window events out to listeners in registration order.
type Events struct {
	nextID    uint64
	listeners []listener
	viewport  Viewport
}

func NewEvents(initial Viewport) *Events {
	return &Events{viewport: initial}
}

// Subscription detaches a listener. Cancel may be called any number of times.
type Subscription struct {
	events *Events
	id     uint64
}

func (s Subscription) Cancel() {
	if s.events == nil {
		return
	}
	s.events.remove(s.id)
}

func (e *Events) OnResize(fn func(Viewport)) Subscription {
	return e.add(listener{kind: kindResize, resize: fn})
}

func (e *Events) OnKeyDown(fn func(Key)) Subscription {
	return e.add(listener{kind: kindKeyDown, key: fn})
}

func (e *Events) OnKeyUp(fn func(Key)) Subscription {
	return e.add(listener{kind: kindKeyUp, key: fn})
}

// Viewport returns the most recently emitted viewport.
func (e *Events) Viewport() Viewport {
	return e.viewport
}

// Listeners counts live registrations.
func (e *Events) Listeners() int {
	return len(e.listeners)
}

func (e *Events) EmitResize(v Viewport) {
	e.viewport = v
	for _, l := range e.snapshot(kindResize) {
		l.resize(v)
	}
}

func (e *Events) EmitKeyDown(k Key) {
	for _, l := range e.snapshot(kindKeyDown) {
		l.key(k)
	}
}

func (e *Events) EmitKeyUp(k Key) {
	for _, l := range e.snapshot(kindKeyUp) {
		l.key(k)
	}
}

func (e *Events) add(l listener) Subscription {
	e.nextID++
	l.id = e.nextID
	e.listeners = append(e.listeners, l)
	return Subscription{events: e, id: l.id}
}

func (e *Events) remove(id uint64) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// snapshot copies matching listeners so handlers can unsubscribe while an
// event is being delivered.
func (e *Events) snapshot(kind listenerKind) []listener {
	var out []listener
	for _, l := range e.listeners {
		if l.kind == kind {
			out = append(out, l)
		}
	}
	return out
}
