// Package device polls ebiten keyboard and gamepad state into raw input frames.
package device

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wallhop/internal/application/system"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// Source is the subset of ebiten's input API the poller reads
type Source interface {
	IsKeyPressed(key ebiten.Key) bool
	AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool
	IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
}

// EbitenSource reads live input from ebiten
type EbitenSource struct{}

func (EbitenSource) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenSource) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}

func (EbitenSource) IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool {
	return ebiten.IsStandardGamepadLayoutAvailable(id)
}

func (EbitenSource) IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}

type pressedSet [config.ActionCount]bool

// Poller turns held keys and buttons into per-device channel states.
// Edges are derived from the previous poll, so Poll must run exactly once
// per tick.
type Poller struct {
	source   Source
	bindings *config.InputConfig

	prevKeyboard pressedSet
	prevPads     map[ebiten.GamepadID]pressedSet

	// Reusable slice for gamepad IDs to avoid allocations
	ids []ebiten.GamepadID
}

// NewPoller creates a poller reading src through the given bindings
func NewPoller(src Source, bindings *config.InputConfig) *Poller {
	return &Poller{
		source:   src,
		bindings: bindings,
		prevPads: make(map[ebiten.GamepadID]pressedSet),
	}
}

// Poll reads one tick of raw input
func (p *Poller) Poll() system.RawFrame {
	var raw system.RawFrame

	keys := p.pollKeyboard()
	raw.Keyboard = edges(p.prevKeyboard, keys)
	p.prevKeyboard = keys

	p.ids = p.source.AppendGamepadIDs(p.ids[:0])
	seen := make(map[ebiten.GamepadID]bool, len(p.ids))
	raw.Gamepads = make(map[system.GamepadID]system.DeviceButtons, len(p.ids))

	for _, id := range p.ids {
		if !p.source.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		seen[id] = true

		prev, known := p.prevPads[id]
		if !known {
			raw.Connected = append(raw.Connected, system.GamepadID(id))
		}
		cur := p.pollGamepad(id)
		raw.Gamepads[system.GamepadID(id)] = edges(prev, cur)
		p.prevPads[id] = cur
	}

	for id := range p.prevPads {
		if !seen[id] {
			raw.Disconnected = append(raw.Disconnected, system.GamepadID(id))
			delete(p.prevPads, id)
		}
	}
	// Map iteration order is random; keep event order stable for replays.
	slices.Sort(raw.Connected)
	slices.Sort(raw.Disconnected)

	return raw
}

func (p *Poller) pollKeyboard() pressedSet {
	var cur pressedSet
	for action, binding := range p.bindings.Bindings {
		for _, key := range binding.Keys {
			if p.source.IsKeyPressed(key) {
				cur[action] = true
				break
			}
		}
	}
	return cur
}

func (p *Poller) pollGamepad(id ebiten.GamepadID) pressedSet {
	var cur pressedSet
	for action, binding := range p.bindings.Bindings {
		for _, btn := range binding.StandardGamepadButtons {
			if p.source.IsStandardGamepadButtonPressed(id, btn) {
				cur[action] = true
				break
			}
		}
	}
	return cur
}

// edges derives the button state of every channel from two polls
func edges(prev, cur pressedSet) system.DeviceButtons {
	var out system.DeviceButtons
	for a := range out {
		out[a] = system.ButtonState{
			Pressed:      cur[a],
			JustPressed:  cur[a] && !prev[a],
			JustReleased: !cur[a] && prev[a],
		}
	}
	return out
}
