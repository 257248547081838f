package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Poller bridges raylib's polled input model to the event-driven Dispatcher.
// Call Poll once per frame; it compares against last frame's state and
// dispatches the corresponding events.
type Poller struct {
	dispatcher *Dispatcher

	lastMouse      rl.Vector2
	wasOnScreen    bool
	lastTouchCount int32
}

func NewPoller(d *Dispatcher) *Poller {
	return &Poller{dispatcher: d, wasOnScreen: true}
}

func (p *Poller) Poll() {
	onScreen := rl.IsCursorOnScreen()
	if p.wasOnScreen && !onScreen {
		p.dispatcher.Dispatch(MouseLeave, PointerEvent{ClientX: p.lastMouse.X, ClientY: p.lastMouse.Y})
	}
	p.wasOnScreen = onScreen

	mouse := rl.GetMousePosition()
	ev := PointerEvent{ClientX: mouse.X, ClientY: mouse.Y}

	if onScreen && (mouse.X != p.lastMouse.X || mouse.Y != p.lastMouse.Y) {
		p.dispatcher.Dispatch(MouseMove, ev)
	}
	p.lastMouse = mouse

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		p.dispatcher.Dispatch(MouseDown, ev)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		p.dispatcher.Dispatch(MouseUp, ev)
	}

	p.pollTouch()
}

func (p *Poller) pollTouch() {
	count := rl.GetTouchPointCount()
	touches := make([]Touch, 0, count)
	for i := int32(0); i < count; i++ {
		pos := rl.GetTouchPosition(i)
		touches = append(touches, Touch{PageX: pos.X, PageY: pos.Y})
	}
	ev := PointerEvent{Touches: touches}

	switch {
	case count > p.lastTouchCount:
		p.dispatcher.Dispatch(TouchStart, ev)
	case count < p.lastTouchCount:
		p.dispatcher.Dispatch(TouchEnd, ev)
	case count > 0:
		p.dispatcher.Dispatch(TouchMove, ev)
	}
	p.lastTouchCount = count
}
