package occ

import (
	"errors"
	"fmt"

	"github.com/qchemlab/gowfn/linalg"
)

var (
	// ErrOccupationCount indicates an unusable electron count.
	ErrOccupationCount = errors.New("occ: bad electron count")
	// ErrExpansionCount indicates Assign received the wrong number of expansions.
	ErrExpansionCount = errors.New("occ: expansion count does not match channel count")
)

// Aufbau fills the lowest orbitals first: channel i receives counts[i]
// electrons, one per orbital.
type Aufbau struct {
	counts []int
}

// NewAufbau builds an Aufbau model for one or more spin channels.
// Counts must be non-negative and not all zero.
func NewAufbau(counts ...int) (*Aufbau, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: no spin channels", ErrOccupationCount)
	}
	total := 0
	for _, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative count %d", ErrOccupationCount, n)
		}
		total += n
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: at least one electron required", ErrOccupationCount)
	}

	cp := make([]int, len(counts))
	copy(cp, counts)

	return &Aufbau{counts: cp}, nil
}

// Counts returns a copy of the per-channel electron counts.
func (a *Aufbau) Counts() []int {
	cp := make([]int, len(a.counts))
	copy(cp, a.counts)

	return cp
}

// Assign writes the Aufbau pattern into one expansion per channel: the
// lowest counts[i] orbitals of exps[i] get occupation 1, the rest 0.
// All channels are validated before any expansion is touched, so a failed
// call never leaves a partial assignment behind.
func (a *Aufbau) Assign(exps ...*linalg.Expansion) error {
	if len(exps) != len(a.counts) {
		return fmt.Errorf("%w: %d expansions for %d channels", ErrExpansionCount, len(exps), len(a.counts))
	}
	for k, e := range exps {
		if a.counts[k] > e.NFn() {
			return fmt.Errorf("%w: %d electrons for %d orbitals in channel %d", ErrOccupationCount, a.counts[k], e.NFn(), k)
		}
	}

	for k, e := range exps {
		vals := make([]float64, e.NFn())
		for i := 0; i < a.counts[k]; i++ {
			vals[i] = 1
		}
		if err := e.SetOccupations(vals); err != nil {
			return err
		}
	}

	return nil
}
