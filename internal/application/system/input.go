package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState holds the pointer state for one frame
type PointerState struct {
	X, Y         float64
	Down         bool
	JustPressed  bool
	JustReleased bool
}

// PointerSource produces the raw pointer state of the current frame
type PointerSource interface {
	ReadPointer() PointerState
}

// InputSystem exposes the polled pointer to scenes and widgets.
//
// A widget that handles a press or release calls Consume so that widgets
// and scenes below it do not react to the same event.
type InputSystem struct {
	source   PointerSource
	current  PointerState
	consumed bool
}

// NewInputSystem creates a new input system
func NewInputSystem(source PointerSource) *InputSystem {
	return &InputSystem{source: source}
}

// Poll reads the pointer for a new frame
func (s *InputSystem) Poll() {
	s.current = s.source.ReadPointer()
	s.consumed = false
}

// Pointer returns the current pointer state. Once consumed, the press and
// release edges are cleared for the rest of the frame.
func (s *InputSystem) Pointer() PointerState {
	p := s.current
	if s.consumed {
		p.JustPressed = false
		p.JustReleased = false
	}
	return p
}

// Consume marks this frame's press/release edges as handled
func (s *InputSystem) Consume() {
	s.consumed = true
}

// EbitenPointer reads the left mouse button and the first active touch
type EbitenPointer struct {
	touchID  ebiten.TouchID
	touching bool
	touchIDs []ebiten.TouchID
	lastX    float64
	lastY    float64
}

// ReadPointer implements PointerSource
func (p *EbitenPointer) ReadPointer() PointerState {
	mx, my := ebiten.CursorPosition()
	st := PointerState{
		X:            float64(mx),
		Y:            float64(my),
		Down:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}

	if !p.touching {
		p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
		if len(p.touchIDs) > 0 {
			p.touchID = p.touchIDs[0]
			p.touching = true
			st.JustPressed = true
		}
	}
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			st.JustReleased = true
			st.X, st.Y = p.lastX, p.lastY
			return st
		}
		tx, ty := ebiten.TouchPosition(p.touchID)
		p.lastX, p.lastY = float64(tx), float64(ty)
		st.X, st.Y = p.lastX, p.lastY
		st.Down = true
	}
	return st
}
