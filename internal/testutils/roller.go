package testutils

import (
	"fmt"
	"sync"
)

// ScriptedRoller is a dice.Roller that returns queued values in order.
// It errors once the script runs out so a test never rolls silently.
type ScriptedRoller struct {
	mu    sync.Mutex
	rolls []int
	Sizes []int
}

// NewScriptedRoller queues the given results
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// Queue appends more results
func (r *ScriptedRoller) Queue(rolls ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rolls = append(r.rolls, rolls...)
}

// Remaining is how many queued results are left
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rolls)
}

// Roll returns the next queued result
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sizes = append(r.Sizes, size)
	if len(r.rolls) == 0 {
		return 0, fmt.Errorf("no scripted roll left for d%d", size)
	}
	next := r.rolls[0]
	r.rolls = r.rolls[1:]
	return next, nil
}

// RollN returns the next count queued results
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for range count {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
