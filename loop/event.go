package loop

type Event interface {
	isEvent()
}

type AxisMotion struct {
	Device, Axis, Value int
}

type ButtonDown struct {
	Device, Button int
}

func (AxisMotion) isEvent() {}
func (ButtonDown) isEvent() {}

type EventSource interface {
	PollEvents() []Event
}
