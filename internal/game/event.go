package game

// Button identifies a pointer button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
)

// Event is one host input delivered to State.Handle. The set of event types
// is closed; hosts construct them directly.
type Event interface {
	event()
}

// PointerMoved reports the pointer position in screen pixels, origin top-left.
type PointerMoved struct {
	X, Y float32
}

// PointerDown reports a button press.
type PointerDown struct {
	Button Button
	X, Y   float32
}

// PointerUp reports a button release.
type PointerUp struct {
	Button Button
	X, Y   float32
}

// KeyDown reports a key press. Key is a lower-case key name such as "r" or
// "space". Repeat is set for auto-repeat presses.
type KeyDown struct {
	Key    string
	Repeat bool
}

// Resized reports the new drawable size in pixels.
type Resized struct {
	Width, Height int
}

// CloseRequested asks the game to stop.
type CloseRequested struct{}

// DrawTick advances the simulation by one frame.
type DrawTick struct{}

func (PointerMoved) event()   {}
func (PointerDown) event()    {}
func (PointerUp) event()      {}
func (KeyDown) event()        {}
func (Resized) event()        {}
func (CloseRequested) event() {}
func (DrawTick) event()       {}

// KeyLaunch releases the ball from the start marker.
const KeyLaunch = "space"
