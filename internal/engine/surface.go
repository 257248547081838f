package engine

// Surface is the render surface a scene draws to. It may not exist yet when
// components attach; they subscribe via OnReady and complete their setup
// when MarkReady fires. Listeners added after readiness fire immediately.
type Surface struct {
	width   float32
	height  float32
	ready   bool
	onReady Event
}

func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) Ready() bool {
	return s.ready
}

// Size returns the surface dimensions in pixels. Zero until ready.
func (s *Surface) Size() (w, h float32) {
	return s.width, s.height
}

// Resize updates the surface dimensions.
func (s *Surface) Resize(w, h float32) {
	s.width = w
	s.height = h
}

// MarkReady records the surface dimensions and notifies waiters. Calling it
// again just resizes.
func (s *Surface) MarkReady(w, h float32) {
	s.width = w
	s.height = h
	if s.ready {
		return
	}
	s.ready = true
	s.onReady.Invoke()
	s.onReady.RemoveAllListeners()
}

// OnReady registers a callback for surface readiness and returns an id for
// OffReady. If the surface is already ready the callback runs immediately
// and the returned id is 0.
func (s *Surface) OnReady(fn func()) int {
	if s.ready {
		if fn != nil {
			fn()
		}
		return 0
	}
	return s.onReady.AddListener(fn)
}

// OffReady removes a pending readiness callback. Safe to call with a stale
// id or when the surface never became ready.
func (s *Surface) OffReady(id int) {
	s.onReady.RemoveListener(id)
}
