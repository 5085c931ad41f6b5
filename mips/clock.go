package mips

// Clock is the cycle and timing accumulator. Each executed instruction
// costs one cycle tick and weight[class] * period seconds of simulated
// time.
type Clock struct {
	Cycles  int     // Monotonic cycle counter.
	Elapsed float64 // Accumulated simulated time in seconds.

	period  float64
	weights map[Class]int
}

// NewClock creates a clock from a validated CPU configuration.
func NewClock(config Config) (clock *Clock) {
	clock = &Clock{
		period:  config.Period(),
		weights: config.Weights,
	}

	return
}

// Weight returns the configured cycle weight for an instruction class.
// Classes without an override cost 1 cycle.
func (clock *Clock) Weight(class Class) (weight int) {
	weight, ok := clock.weights[class]
	if !ok {
		weight = 1
	}

	return
}

// Advance charges one executed instruction of the given class, and
// returns the elapsed time delta.
func (clock *Clock) Advance(class Class) (delta float64) {
	clock.Cycles++

	delta = float64(clock.Weight(class)) * clock.period
	clock.Elapsed += delta

	return
}
