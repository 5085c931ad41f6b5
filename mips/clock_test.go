package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_Advance(t *testing.T) {
	assert := assert.New(t)

	config := Config{
		Hz:      1e6,
		Weights: map[Class]int{CLASS_R: 4, CLASS_I: 1, CLASS_J: 3},
	}
	clock := NewClock(config)

	delta := clock.Advance(CLASS_R)
	assert.InDelta(4e-6, delta, 1e-12)
	assert.Equal(1, clock.Cycles)

	delta = clock.Advance(CLASS_J)
	assert.InDelta(3e-6, delta, 1e-12)
	assert.Equal(2, clock.Cycles)

	assert.InDelta(7e-6, clock.Elapsed, 1e-12)
}

func TestClock_Accumulation(t *testing.T) {
	assert := assert.New(t)

	// N instructions of uniform class C with weight W and period P
	// accumulate N * W * P.
	config := Config{Hz: 25e6, Weights: map[Class]int{CLASS_I: 2}}
	clock := NewClock(config)

	const n = 1000
	for range n {
		clock.Advance(CLASS_I)
	}

	assert.Equal(n, clock.Cycles)
	assert.InDelta(n*2*config.Period(), clock.Elapsed, 1e-9)
}

func TestClock_DefaultWeight(t *testing.T) {
	assert := assert.New(t)

	clock := NewClock(Config{Hz: 1})

	assert.Equal(1, clock.Weight(CLASS_R))
	assert.Equal(1, clock.Weight(CLASS_I))
	assert.Equal(1, clock.Weight(CLASS_J))

	delta := clock.Advance(CLASS_J)
	assert.InDelta(1.0, delta, 1e-12)
}
