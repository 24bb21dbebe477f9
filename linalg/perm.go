// SPDX-License-Identifier: MIT

package linalg

import "fmt"

// checkPermutation verifies that perm is a permutation of 0..n-1:
// right length, every index in range, no index twice.
func checkPermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: got %d entries for %d basis functions", ErrBadPermutation, len(perm), n)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n {
			return fmt.Errorf("%w: index %d out of range", ErrBadPermutation, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: index %d repeated", ErrBadPermutation, p)
		}
		seen[p] = true
	}

	return nil
}
