package joypad

import "github.com/ushitora-anqou/sdlbringup/constant"

type Action uint8

const (
	ActionNone Action = iota
	ActionCycleMode
	ActionExit
	ActionToggleSize
	ActionAudioTest
)

func (a Action) String() string {
	switch a {
	case ActionCycleMode:
		return "cycle-mode"
	case ActionExit:
		return "exit"
	case ActionToggleSize:
		return "toggle-size"
	case ActionAudioTest:
		return "audio-test"
	}
	return "none"
}

// Joypad maps buttons of the designated device to actions. Presses on any
// other device are reported but do nothing.
type Joypad struct {
	device  int
	actions map[int]Action
}

func NewJoypad(device int) *Joypad {
	return &Joypad{
		device: device,
		actions: map[int]Action{
			constant.BUTTON_CYCLE_MODE:  ActionCycleMode,
			constant.BUTTON_EXIT:        ActionExit,
			constant.BUTTON_TOGGLE_SIZE: ActionToggleSize,
			constant.BUTTON_AUDIO:       ActionAudioTest,
		},
	}
}

func (j *Joypad) Device() int {
	return j.device
}

// Lookup reports the action bound to button on device, if any.
func (j *Joypad) Lookup(device, button int) (Action, bool) {
	if device != j.device {
		return ActionNone, false
	}
	action, ok := j.actions[button]
	return action, ok
}
