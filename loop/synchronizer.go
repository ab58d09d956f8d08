package loop

// Clock is a microsecond time source able to sleep.
type Clock interface {
	Ticks() int64
	Delay(us int64)
}

// TimeSynchronizer paces frames when presenting is not synced to vblank.
type TimeSynchronizer struct {
	clock                 Clock
	prevTicks, usPerFrame int64
}

const maxLagFrames = 10

func NewTimeSynchronizer(clock Clock, targetFPS float64) *TimeSynchronizer {
	return &TimeSynchronizer{
		clock:      clock,
		prevTicks:  clock.Ticks(),
		usPerFrame: int64(1000000.0 / targetFPS),
	}
}

func (ts *TimeSynchronizer) MaySleep() {
	cur := ts.clock.Ticks()
	if cur < ts.prevTicks {
		return
	}
	diff := ts.usPerFrame - (cur - ts.prevTicks)
	if diff > 1000 { // Larger than 1ms
		ts.clock.Delay(diff)
	}
	ts.prevTicks += ts.usPerFrame
	if cur-ts.prevTicks > ts.usPerFrame*maxLagFrames {
		// Far behind schedule. Restart from now instead of rushing frames.
		ts.prevTicks = cur
	}
}
