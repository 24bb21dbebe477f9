// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates a requested dimension is not positive.
	ErrBadShape = errors.New("linalg: dimensions must be positive")
	// ErrDimensionMismatch indicates operands disagree on basis or orbital counts.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")
	// ErrOccupiedCount indicates an occupied-orbital count outside [0, orbitals].
	ErrOccupiedCount = errors.New("linalg: occupied orbital count out of range")
	// ErrBadPermutation indicates an index list that is not a permutation of the basis.
	ErrBadPermutation = errors.New("linalg: not a permutation of the basis")
	// ErrNoEnergies indicates the expansion was allocated without energy tracking.
	ErrNoEnergies = errors.New("linalg: expansion does not track orbital energies")
	// ErrNotNormalized indicates the occupied orbitals fail orthonormality.
	ErrNotNormalized = errors.New("linalg: occupied orbitals are not orthonormal")
)

// NormalizationError pinpoints the first Gram-matrix entry that deviates
// from the identity beyond the tolerance. It unwraps to ErrNotNormalized.
type NormalizationError struct {
	I, J      int     // Gram-matrix indices (occupied-orbital pair)
	Value     float64 // observed ⟨i|S|j⟩
	Deviation float64 // |Value − δij|
	Eps       float64 // tolerance in force
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("linalg: gram[%d,%d] = %g deviates from orthonormality by %g (eps %g)",
		e.I, e.J, e.Value, e.Deviation, e.Eps)
}

// Unwrap ties the error to ErrNotNormalized for errors.Is matching.
func (e *NormalizationError) Unwrap() error { return ErrNotNormalized }
