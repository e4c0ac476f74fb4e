package replay

import "github.com/younwookim/wallhop/internal/application/system"

// Version is written into every replay file
const Version = "2.0"

// FrameInput records the five logical channels for a single frame.
// Each channel keeps its held, just-pressed and just-released bits.
type FrameInput struct {
	F  int  `json:"f" msgpack:"f"`                       // Frame number
	L  bool `json:"l,omitempty" msgpack:"l,omitempty"`   // Left
	LP bool `json:"lp,omitempty" msgpack:"lp,omitempty"` // LeftPressed
	LR bool `json:"lr,omitempty" msgpack:"lr,omitempty"` // LeftReleased
	R  bool `json:"r,omitempty" msgpack:"r,omitempty"`   // Right
	RP bool `json:"rp,omitempty" msgpack:"rp,omitempty"` // RightPressed
	RR bool `json:"rr,omitempty" msgpack:"rr,omitempty"` // RightReleased
	J  bool `json:"j,omitempty" msgpack:"j,omitempty"`   // Jump
	JP bool `json:"jp,omitempty" msgpack:"jp,omitempty"` // JumpPressed
	JR bool `json:"jr,omitempty" msgpack:"jr,omitempty"` // JumpReleased
	S  bool `json:"s,omitempty" msgpack:"s,omitempty"`   // Save
	SP bool `json:"sp,omitempty" msgpack:"sp,omitempty"` // SavePressed
	SR bool `json:"sr,omitempty" msgpack:"sr,omitempty"` // SaveReleased
	O  bool `json:"o,omitempty" msgpack:"o,omitempty"`   // Load
	OP bool `json:"op,omitempty" msgpack:"op,omitempty"` // LoadPressed
	OR bool `json:"or,omitempty" msgpack:"or,omitempty"` // LoadReleased
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version" msgpack:"version"`
	Stage     string       `json:"stage" msgpack:"stage"`
	StartTime string       `json:"startTime" msgpack:"startTime"`
	Frames    []FrameInput `json:"frames" msgpack:"frames"`
}

// NewFrameInput packs an InputFrame for recording
func NewFrameInput(frame int, in system.InputFrame) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left.Pressed,
		LP: in.Left.JustPressed,
		LR: in.Left.JustReleased,
		R:  in.Right.Pressed,
		RP: in.Right.JustPressed,
		RR: in.Right.JustReleased,
		J:  in.Jump.Pressed,
		JP: in.Jump.JustPressed,
		JR: in.Jump.JustReleased,
		S:  in.Save.Pressed,
		SP: in.Save.JustPressed,
		SR: in.Save.JustReleased,
		O:  in.Load.Pressed,
		OP: in.Load.JustPressed,
		OR: in.Load.JustReleased,
	}
}

// InputFrame unpacks a recorded frame
func (f FrameInput) InputFrame() system.InputFrame {
	return system.InputFrame{
		Left:  system.ButtonState{Pressed: f.L, JustPressed: f.LP, JustReleased: f.LR},
		Right: system.ButtonState{Pressed: f.R, JustPressed: f.RP, JustReleased: f.RR},
		Jump:  system.ButtonState{Pressed: f.J, JustPressed: f.JP, JustReleased: f.JR},
		Save:  system.ButtonState{Pressed: f.S, JustPressed: f.SP, JustReleased: f.SR},
		Load:  system.ButtonState{Pressed: f.O, JustPressed: f.OP, JustReleased: f.OR},
	}
}
