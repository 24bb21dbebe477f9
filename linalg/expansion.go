// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/qchemlab/gowfn/chk"
)

// Expansion holds molecular orbitals expanded in a finite basis: orbital j
// is the column coeffs[:,j]. Occupations are per orbital on a 0..1 scale
// (spin handling lives with the wavefunction, not here). Orbital energies
// are tracked only when requested at allocation time.
//
// Accessors expose the live backing storage in the gonum manner; callers
// fill coefficients and energies through them.
type Expansion struct {
	nbasis      int
	nfn         int
	coeffs      *mat.Dense // nbasis × nfn
	energies    []float64  // nil unless tracked; length nfn
	occupations []float64  // length nfn
}

// NewExpansion allocates a zeroed expansion of norb orbitals over nbasis
// basis functions. Returns ErrBadShape when either count is not positive.
func NewExpansion(nbasis, norb int, trackEnergies bool) (*Expansion, error) {
	if nbasis <= 0 || norb <= 0 {
		return nil, fmt.Errorf("%w: %d basis functions, %d orbitals", ErrBadShape, nbasis, norb)
	}
	e := &Expansion{
		nbasis:      nbasis,
		nfn:         norb,
		coeffs:      mat.NewDense(nbasis, norb, nil),
		occupations: make([]float64, norb),
	}
	if trackEnergies {
		e.energies = make([]float64, norb)
	}

	return e, nil
}

// NBasis returns the number of basis functions (coefficient rows).
func (e *Expansion) NBasis() int { return e.nbasis }

// NFn returns the number of orbitals (coefficient columns).
func (e *Expansion) NFn() int { return e.nfn }

// Coefficients returns the live coefficient matrix. Mutations through the
// returned handle are visible to the expansion.
func (e *Expansion) Coefficients() *mat.Dense { return e.coeffs }

// HasEnergies reports whether orbital energies are tracked.
func (e *Expansion) HasEnergies() bool { return e.energies != nil }

// Energies returns the live orbital-energy slice, or nil when energies are
// not tracked.
func (e *Expansion) Energies() []float64 { return e.energies }

// Occupations returns the live per-orbital occupation slice.
func (e *Expansion) Occupations() []float64 { return e.occupations }

// OccupationSum returns the total occupation across all orbitals.
func (e *Expansion) OccupationSum() float64 { return floats.Sum(e.occupations) }

// SetEnergies copies vals into the tracked energy slice.
// Returns ErrNoEnergies when energies are not tracked and
// ErrDimensionMismatch when len(vals) differs from the orbital count.
func (e *Expansion) SetEnergies(vals []float64) error {
	if e.energies == nil {
		return ErrNoEnergies
	}
	if len(vals) != e.nfn {
		return fmt.Errorf("%w: %d energies for %d orbitals", ErrDimensionMismatch, len(vals), e.nfn)
	}
	copy(e.energies, vals)

	return nil
}

// SetOccupations copies vals into the occupation slice.
// Returns ErrDimensionMismatch when len(vals) differs from the orbital count.
func (e *Expansion) SetOccupations(vals []float64) error {
	if len(vals) != e.nfn {
		return fmt.Errorf("%w: %d occupations for %d orbitals", ErrDimensionMismatch, len(vals), e.nfn)
	}
	copy(e.occupations, vals)

	return nil
}

// Clone returns an independent deep copy of the expansion.
func (e *Expansion) Clone() *Expansion {
	cp := &Expansion{
		nbasis:      e.nbasis,
		nfn:         e.nfn,
		coeffs:      mat.DenseCopyOf(e.coeffs),
		occupations: make([]float64, e.nfn),
	}
	copy(cp.occupations, e.occupations)
	if e.energies != nil {
		cp.energies = make([]float64, e.nfn)
		copy(cp.energies, e.energies)
	}

	return cp
}

// checkOccupied validates an occupied-orbital count against the expansion.
func (e *Expansion) checkOccupied(nocc int) error {
	if nocc < 0 || nocc > e.nfn {
		return fmt.Errorf("%w: %d of %d orbitals", ErrOccupiedCount, nocc, e.nfn)
	}

	return nil
}

// ComputeDensityMatrix accumulates factor·C_occ·C_occᵀ into dm, where
// C_occ is the leading nocc columns. The target is not reset here; callers
// owning several channels reset once and accumulate per channel.
// Complexity: O(n²·k) for k occupied orbitals.
func (e *Expansion) ComputeDensityMatrix(nocc int, dm *OneBody, factor float64) error {
	if err := e.checkOccupied(nocc); err != nil {
		return err
	}
	if dm.N() != e.nbasis {
		return fmt.Errorf("%w: %d×%d density for %d basis functions", ErrDimensionMismatch, dm.N(), dm.N(), e.nbasis)
	}
	if nocc == 0 {
		return nil // nothing occupied, nothing to add
	}

	occ := e.coeffs.Slice(0, e.nbasis, 0, nocc)
	var outer mat.SymDense
	outer.SymOuterK(factor, occ)
	dm.sym.AddSym(dm.sym, &outer)

	return nil
}

// CheckNormalization verifies that the leading nocc orbitals are
// orthonormal under the overlap operator olp: the Gram matrix
// C_occᵀ·S·C_occ must match the identity entrywise within eps.
// The first offending entry is reported as a *NormalizationError.
func (e *Expansion) CheckNormalization(olp *OneBody, nocc int, eps float64) error {
	if err := e.checkOccupied(nocc); err != nil {
		return err
	}
	if olp.N() != e.nbasis {
		return fmt.Errorf("%w: %d×%d overlap for %d basis functions", ErrDimensionMismatch, olp.N(), olp.N(), e.nbasis)
	}
	if nocc == 0 {
		return nil
	}

	occ := e.coeffs.Slice(0, e.nbasis, 0, nocc)
	var sc mat.Dense
	sc.Mul(olp.sym, occ) // S·C_occ, nbasis×nocc
	var gram mat.Dense
	gram.Mul(occ.T(), &sc) // C_occᵀ·S·C_occ, nocc×nocc

	for i := 0; i < nocc; i++ {
		for j := 0; j < nocc; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			v := gram.At(i, j)
			dev := v - want
			if dev < 0 {
				dev = -dev
			}
			if dev > eps {
				return &NormalizationError{I: i, J: j, Value: v, Deviation: dev, Eps: eps}
			}
		}
	}

	return nil
}

// ApplyBasisPermutation reorders the coefficient rows in place so that new
// row i is old row perm[i]. Orbital energies and occupations are untouched:
// the permutation relabels basis functions, not orbitals.
// Returns ErrBadPermutation when perm is not a permutation of the basis.
func (e *Expansion) ApplyBasisPermutation(perm []int) error {
	if err := checkPermutation(perm, e.nbasis); err != nil {
		return err
	}

	out := mat.NewDense(e.nbasis, e.nfn, nil)
	for i, src := range perm {
		out.SetRow(i, e.coeffs.RawRowView(src))
	}
	e.coeffs.Copy(out)

	return nil
}

// ToGroup writes the expansion into g: scalars basisSize and orbitalCount,
// table coefficients, array occupations, and array energies when tracked.
func (e *Expansion) ToGroup(g *chk.Group) error {
	g.SetInt("basisSize", e.nbasis)
	g.SetInt("orbitalCount", e.nfn)

	tab, err := chk.NewTable(e.nbasis, e.nfn)
	if err != nil {
		return err
	}
	for i := 0; i < e.nbasis; i++ {
		copy(tab.Data[i*e.nfn:(i+1)*e.nfn], e.coeffs.RawRowView(i))
	}
	if err = g.SetTable("coefficients", tab); err != nil {
		return err
	}

	if e.energies != nil {
		g.SetArray("energies", e.energies)
	}
	g.SetArray("occupations", e.occupations)

	return nil
}

// ReadGroup loads an expansion written by ToGroup into this allocation.
// The declared shape must match the allocation exactly. A stored energies
// array requires energy tracking here; a tracked expansion reading a group
// without energies keeps its zeros. Missing occupations keep their zeros
// as well.
func (e *Expansion) ReadGroup(g *chk.Group) error {
	nbasis, err := g.Int("basisSize")
	if err != nil {
		return err
	}
	norb, err := g.Int("orbitalCount")
	if err != nil {
		return err
	}
	if nbasis != e.nbasis || norb != e.nfn {
		return fmt.Errorf("%w: stored %d×%d, allocated %d×%d",
			ErrDimensionMismatch, nbasis, norb, e.nbasis, e.nfn)
	}
	tab, err := g.Table("coefficients")
	if err != nil {
		return err
	}
	if tab.Rows != nbasis || tab.Cols != norb {
		return fmt.Errorf("%w: %d×%d coefficient table for %d×%d expansion",
			ErrDimensionMismatch, tab.Rows, tab.Cols, nbasis, norb)
	}

	for i := 0; i < nbasis; i++ {
		e.coeffs.SetRow(i, tab.Data[i*norb:(i+1)*norb])
	}
	if g.HasArray("energies") {
		vals, aerr := g.Array("energies")
		if aerr != nil {
			return aerr
		}
		if err = e.SetEnergies(vals); err != nil {
			return err
		}
	}
	if g.HasArray("occupations") {
		vals, aerr := g.Array("occupations")
		if aerr != nil {
			return aerr
		}
		if err = e.SetOccupations(vals); err != nil {
			return err
		}
	}

	return nil
}

// ExpansionFromGroup rebuilds an expansion written by ToGroup in a fresh
// allocation. Energies are tracked exactly when the group carries an
// energies array.
func ExpansionFromGroup(g *chk.Group) (*Expansion, error) {
	nbasis, err := g.Int("basisSize")
	if err != nil {
		return nil, err
	}
	norb, err := g.Int("orbitalCount")
	if err != nil {
		return nil, err
	}
	e, err := NewExpansion(nbasis, norb, g.HasArray("energies"))
	if err != nil {
		return nil, err
	}
	if err = e.ReadGroup(g); err != nil {
		return nil, err
	}

	return e, nil
}
