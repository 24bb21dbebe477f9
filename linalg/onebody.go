// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/qchemlab/gowfn/chk"
)

// OneBody is a symmetric one-body operator over the basis: overlap,
// kinetic, core Hamiltonian, density matrices. Element (i,j) always equals
// (j,i); storage is a gonum SymDense.
type OneBody struct {
	n   int
	sym *mat.SymDense // n × n
}

// NewOneBody allocates a zeroed n×n symmetric operator.
// Returns ErrBadShape when n is not positive.
func NewOneBody(n int) (*OneBody, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d basis functions", ErrBadShape, n)
	}

	return &OneBody{n: n, sym: mat.NewSymDense(n, nil)}, nil
}

// N returns the basis size.
func (o *OneBody) N() int { return o.n }

// At returns element (i,j). Complexity: O(1).
func (o *OneBody) At(i, j int) float64 { return o.sym.At(i, j) }

// Set stores v at (i,j) and, by symmetry, at (j,i). Complexity: O(1).
func (o *OneBody) Set(i, j int, v float64) { o.sym.SetSym(i, j, v) }

// Sym returns the live backing matrix for use with gonum kernels.
func (o *OneBody) Sym() *mat.SymDense { return o.sym }

// Reset zeroes every element, keeping the allocation.
func (o *OneBody) Reset() { o.sym.Zero() }

// Scale multiplies every element by f in place.
func (o *OneBody) Scale(f float64) { o.sym.ScaleSym(f, o.sym) }

// Trace returns the sum of the diagonal elements.
func (o *OneBody) Trace() float64 { return mat.Trace(o.sym) }

// Clone returns an independent deep copy of the operator.
func (o *OneBody) Clone() *OneBody {
	cp := mat.NewSymDense(o.n, nil)
	cp.CopySym(o.sym)

	return &OneBody{n: o.n, sym: cp}
}

// ExpectationValue returns Tr(O·D) for a density matrix dm, the standard
// one-body expectation value ⟨O⟩.
// Returns ErrDimensionMismatch when the operands disagree on basis size.
func (o *OneBody) ExpectationValue(dm *OneBody) (float64, error) {
	if dm.N() != o.n {
		return 0, fmt.Errorf("%w: %d×%d operator, %d×%d density", ErrDimensionMismatch, o.n, o.n, dm.N(), dm.N())
	}
	var prod mat.Dense
	prod.Mul(o.sym, dm.sym)

	return mat.Trace(&prod), nil
}

// ApplyBasisPermutation reorders rows and columns in place so that new
// element (i,j) is old element (perm[i],perm[j]).
// Returns ErrBadPermutation when perm is not a permutation of the basis.
func (o *OneBody) ApplyBasisPermutation(perm []int) error {
	if err := checkPermutation(perm, o.n); err != nil {
		return err
	}

	out := mat.NewSymDense(o.n, nil)
	for i := 0; i < o.n; i++ {
		for j := i; j < o.n; j++ {
			out.SetSym(i, j, o.sym.At(perm[i], perm[j]))
		}
	}
	o.sym.CopySym(out)

	return nil
}

// ToGroup writes the operator into g: scalar basisSize plus the full
// elements table. The table stores both triangles for readability; the
// upper triangle is authoritative on read.
func (o *OneBody) ToGroup(g *chk.Group) error {
	g.SetInt("basisSize", o.n)

	tab, err := chk.NewTable(o.n, o.n)
	if err != nil {
		return err
	}
	for i := 0; i < o.n; i++ {
		for j := 0; j < o.n; j++ {
			tab.Set(i, j, o.sym.At(i, j))
		}
	}

	return g.SetTable("elements", tab)
}

// OneBodyFromGroup rebuilds an operator written by ToGroup.
func OneBodyFromGroup(g *chk.Group) (*OneBody, error) {
	n, err := g.Int("basisSize")
	if err != nil {
		return nil, err
	}
	tab, err := g.Table("elements")
	if err != nil {
		return nil, err
	}
	if tab.Rows != n || tab.Cols != n {
		return nil, fmt.Errorf("%w: %d×%d elements table for basis size %d", ErrDimensionMismatch, tab.Rows, tab.Cols, n)
	}

	o, err := NewOneBody(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			o.sym.SetSym(i, j, tab.At(i, j))
		}
	}

	return o, nil
}
