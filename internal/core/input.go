package core

// Button is one of the five logical buttons of the device.
// Only presses are delivered; releases carry no game meaning.
type Button int

const (
	ButtonNone Button = iota
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonCenter
)

// DeliveryOrder is the order in which the device polls its buttons each frame.
var DeliveryOrder = [...]Button{ButtonDown, ButtonRight, ButtonUp, ButtonLeft, ButtonCenter}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonCenter:
		return "Center"
	default:
		return "Unknown"
	}
}

// ParseButton maps a single-letter code (u, d, l, r, c) to a button.
// Used by scripted input such as the headless snapshot command.
func ParseButton(code rune) Button {
	switch code {
	case 'u', 'U':
		return ButtonUp
	case 'd', 'D':
		return ButtonDown
	case 'l', 'L':
		return ButtonLeft
	case 'r', 'R':
		return ButtonRight
	case 'c', 'C':
		return ButtonCenter
	default:
		return ButtonNone
	}
}

// InputFrame holds the edge-triggered presses collected during one tick.
type InputFrame struct {
	// Pressed maps buttons to whether they were pressed this frame.
	Pressed map[Button]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Button]bool),
	}
}

// Set marks a button as pressed for this frame.
func (f *InputFrame) Set(b Button) {
	if b == ButtonNone {
		return
	}
	if f.Pressed == nil {
		f.Pressed = make(map[Button]bool)
	}
	f.Pressed[b] = true
}

// Has returns true if the given button was pressed this frame.
func (f InputFrame) Has(b Button) bool {
	if f.Pressed == nil {
		return false
	}
	return f.Pressed[b]
}

// Presses returns the pressed buttons in device delivery order.
func (f InputFrame) Presses() []Button {
	var out []Button
	for _, b := range DeliveryOrder {
		if f.Has(b) {
			out = append(out, b)
		}
	}
	return out
}

// Clear resets all presses for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}
