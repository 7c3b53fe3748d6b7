package browser

// Action is a key-level request from the input translator. What it does
// depends on the mode and the property overlay; see Handle.
type Action int

const (
	None Action = iota
	Advance
	Retreat
	Forward
	Backward
	Commit
	ToggleMode
	ToggleOverlay
	ToggleGutter
	JumpHome
	JumpEnd
)

var actionNames = [...]string{
	None:          "none",
	Advance:       "advance",
	Retreat:       "retreat",
	Forward:       "forward",
	Backward:      "backward",
	Commit:        "commit",
	ToggleMode:    "toggle-mode",
	ToggleOverlay: "toggle-overlay",
	ToggleGutter:  "toggle-gutter",
	JumpHome:      "jump-home",
	JumpEnd:       "jump-end",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// op is a controller operation an action resolves to.
type op int

const (
	opNone op = iota
	opAdvance
	opRetreat
	opPanForward
	opPanBackward
	opToggleMode
	opCommit
	opDismiss
	opToggleOverlay
	opToggleGutter
	opJumpHome
	opJumpEnd
)

// route is the whole dispatch table. Movement is suppressed while the
// overlay is shown; the toggles work everywhere.
func route(mode Mode, overlay bool, a Action) op {
	switch a {
	case ToggleMode:
		return opToggleMode
	case ToggleOverlay:
		return opToggleOverlay
	case ToggleGutter:
		return opToggleGutter
	}

	if mode == Browsing {
		switch a {
		case Advance:
			if !overlay {
				return opAdvance
			}
		case Retreat:
			if !overlay {
				return opRetreat
			}
		case Forward, Commit:
			return opCommit
		case Backward:
			return opDismiss
		}
		return opNone
	}

	switch a {
	case JumpHome:
		return opJumpHome
	case JumpEnd:
		return opJumpEnd
	}
	if overlay {
		return opNone
	}
	switch a {
	case Advance:
		return opAdvance
	case Retreat:
		return opRetreat
	case Forward:
		return opPanForward
	case Backward:
		return opPanBackward
	}
	return opNone
}
