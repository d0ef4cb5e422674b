package config

// IntervalForPreset returns the generation interval in milliseconds for a
// speed preset.
func IntervalForPreset(preset SpeedPreset) (int, bool) {
	switch preset {
	case SpeedSlow:
		return 1000, true
	case SpeedNormal:
		return 333, true
	case SpeedFast:
		return 100, true
	case SpeedTurbo:
		return 33, true
	default:
		return 0, false
	}
}

// Faster returns the next shorter interval, halving towards the minimum.
func (t TickConfig) Faster() int {
	return max(t.MinIntervalMS, t.IntervalMS/2)
}

// Slower returns the next longer interval, doubling towards the maximum.
func (t TickConfig) Slower() int {
	return min(t.MaxIntervalMS, t.IntervalMS*2)
}

// TicksPerGeneration converts the interval into platform ticks at the
// given tick rate, never less than one.
func (t TickConfig) TicksPerGeneration(tickRate int) int {
	if tickRate <= 0 {
		return 1
	}
	return max(1, t.IntervalMS*tickRate/1000)
}
