package engine

type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
	ButtonB
	ButtonX
	ButtonY
)

var buttonNames = [...]string{"up", "down", "left", "right", "a", "b", "x", "y"}

func (b Button) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return "unknown"
	}
	return buttonNames[b]
}

// Input is sampled once per update.
type Input interface {
	// Held reports whether the button is currently down.
	Held(b Button) bool
	// Pressed reports whether the button went down since the previous update.
	Pressed(b Button) bool
}

// ScriptedInput is an Input driven by code rather than a keyboard.
type ScriptedInput struct {
	held    map[Button]bool
	pressed map[Button]bool
}

func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{
		held:    map[Button]bool{},
		pressed: map[Button]bool{},
	}
}

func (s *ScriptedInput) Hold(buttons ...Button) {
	for _, b := range buttons {
		if !s.held[b] {
			s.pressed[b] = true
		}
		s.held[b] = true
	}
}

func (s *ScriptedInput) Release(buttons ...Button) {
	for _, b := range buttons {
		delete(s.held, b)
	}
}

// Press taps a button for a single update.
func (s *ScriptedInput) Press(buttons ...Button) {
	for _, b := range buttons {
		s.pressed[b] = true
	}
}

// Next clears edge state. Call it after each update.
func (s *ScriptedInput) Next() {
	s.pressed = map[Button]bool{}
}

func (s *ScriptedInput) Held(b Button) bool    { return s.held[b] }
func (s *ScriptedInput) Pressed(b Button) bool { return s.pressed[b] }
