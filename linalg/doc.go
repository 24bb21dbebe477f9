// SPDX-License-Identifier: MIT

// Package linalg supplies the dense numeric objects wavefunctions are
// made of: orbital expansions, symmetric one-body operators and the
// factory that allocates them. Storage and kernels ride on gonum/mat.
//
// What:
//
//   - Expansion holds orbital coefficients column-wise in a basis×orbital
//     matrix, plus per-orbital occupations and (optionally) energies.
//   - OneBody is a symmetric operator over the basis: overlap, kinetic,
//     density matrices and friends.
//   - Factory allocates both; DenseFactory is the gonum-backed
//     implementation used everywhere today.
//
// Why:
//
//   - Wavefunction containers own counts and rules, not storage; every
//     dense object they touch is allocated and manipulated here.
//   - A factory seam keeps the container code independent of the storage
//     scheme, so sparse or GPU-resident backends can slot in later.
//
// Complexity (n = basis size, m = orbitals, k = occupied):
//
//   - ComputeDensityMatrix: O(n²·k) time, O(n²) memory.
//   - CheckNormalization:   O(n²·k + n·k²) time, O(n·k) memory.
//   - ApplyBasisPermutation: O(n·m) time, O(n·m) memory.
//
// Errors:
//
//   - ErrBadShape: a dimension is not positive.
//   - ErrDimensionMismatch: operands disagree on basis or orbital counts.
//   - ErrOccupiedCount: occupied count is negative or exceeds the orbitals.
//   - ErrBadPermutation: index list is not a permutation of the basis.
//   - ErrNoEnergies: expansion was allocated without energy tracking.
//   - ErrNotNormalized: occupied orbitals fail the orthonormality check;
//     returned inside a *NormalizationError carrying the offending entry.
package linalg
