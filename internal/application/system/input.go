package system

import (
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// ButtonState is the per-tick state of one button or logical channel
type ButtonState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Or merges two sources bound to the same channel
func (b ButtonState) Or(o ButtonState) ButtonState {
	return ButtonState{
		Pressed:      b.Pressed || o.Pressed,
		JustPressed:  b.JustPressed || o.JustPressed,
		JustReleased: b.JustReleased || o.JustReleased,
	}
}

// InputFrame is the logical input for a single tick.
// It is produced once per tick and passed by value to every stage.
type InputFrame struct {
	Left  ButtonState
	Right ButtonState
	Jump  ButtonState
	Save  ButtonState
	Load  ButtonState
}

// Direction returns -1 or 1 when exactly one of left/right is held, else 0
func (f InputFrame) Direction() int {
	switch {
	case f.Left.Pressed && !f.Right.Pressed:
		return -1
	case f.Right.Pressed && !f.Left.Pressed:
		return 1
	default:
		return 0
	}
}

// GamepadID identifies a secondary input device
type GamepadID int

// DeviceButtons holds one device's raw button state per logical channel.
// A channel bound to several physical buttons is already OR-ed by the poller.
type DeviceButtons [config.ActionCount]ButtonState

// RawFrame is everything the device layer observed during one tick
type RawFrame struct {
	Keyboard     DeviceButtons
	Gamepads     map[GamepadID]DeviceButtons
	Connected    []GamepadID
	Disconnected []GamepadID
}

// InputSystem aggregates raw device state into logical channels.
// It tracks at most one active gamepad.
type InputSystem struct {
	active    GamepadID
	hasActive bool
}

// NewInputSystem creates a new input system with no gamepad bound
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// ActiveGamepad returns the bound gamepad, if any
func (s *InputSystem) ActiveGamepad() (GamepadID, bool) {
	return s.active, s.hasActive
}

// Aggregate merges the keyboard and the active gamepad into an InputFrame.
// Connect and disconnect events are applied after the merge, so binding
// changes take effect from the next tick.
func (s *InputSystem) Aggregate(raw RawFrame) InputFrame {
	buttons := raw.Keyboard
	if s.hasActive {
		if pad, ok := raw.Gamepads[s.active]; ok {
			for a := range buttons {
				buttons[a] = buttons[a].Or(pad[a])
			}
		}
	}

	for _, id := range raw.Disconnected {
		s.Disconnect(id)
	}
	for _, id := range raw.Connected {
		s.Connect(id)
	}

	return InputFrame{
		Left:  buttons[config.ActionLeft],
		Right: buttons[config.ActionRight],
		Jump:  buttons[config.ActionJump],
		Save:  buttons[config.ActionSave],
		Load:  buttons[config.ActionLoad],
	}
}

// Connect binds id as the active gamepad if none is bound
func (s *InputSystem) Connect(id GamepadID) {
	if s.hasActive {
		return
	}
	s.active = id
	s.hasActive = true
}

// Disconnect unbinds id if it is the active gamepad
func (s *InputSystem) Disconnect(id GamepadID) {
	if s.hasActive && s.active == id {
		s.hasActive = false
		s.active = 0
	}
}
