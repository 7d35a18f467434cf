package game

import (
	"time"

	"golang.org/x/exp/rand"

	"war/meta"
)

// Roller produces independent, uniformly distributed die faces in [1,6].
type Roller interface {
	Roll() int
}

// Picker draws a uniform index in [0,n).
type Picker interface {
	Intn(n int) int
}

// Dice is the random source of a session. It is passed explicitly to
// whatever needs randomness; there is no package-level generator.
type Dice struct {
	rng *rand.Rand
}

// NewDice returns dice seeded with seed. The same seed yields the same rolls.
func NewDice(seed uint64) *Dice {
	return &Dice{rng: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededDice returns dice seeded from the clock, so sequences differ
// across runs.
func NewTimeSeededDice() *Dice {
	return NewDice(uint64(time.Now().UnixNano()))
}

// Roll rolls a single die.
func (d *Dice) Roll() int {
	return d.rng.Intn(meta.DICE_FACES) + 1
}

// Intn returns a uniform integer in [0,n).
func (d *Dice) Intn(n int) int {
	return d.rng.Intn(n)
}
