package wfn

import (
	"fmt"

	"github.com/qchemlab/gowfn/chk"
	"github.com/qchemlab/gowfn/linalg"
)

// ClosedShell is a restricted wavefunction: every electron is paired and
// both spin channels share one orbital expansion. Construction validates
// all counts, so an existing value is always internally consistent.
type ClosedShell struct {
	npair  int
	nbasis int
	norb   int
	exp    *linalg.Expansion
}

// Compile-time conformance check.
var _ Wavefunction = (*ClosedShell)(nil)

// NewClosedShell builds a closed-shell wavefunction with npair electron
// pairs over nbasis basis functions. The orbital count defaults to nbasis;
// override it with WithOrbitals. The shared expansion is allocated through
// lf with energy tracking on.
// Returns ErrElectronCount when npair is not positive or exceeds the basis
// or orbital capacity.
func NewClosedShell(lf linalg.Factory, npair, nbasis int, opts ...Option) (*ClosedShell, error) {
	if npair <= 0 {
		return nil, fmt.Errorf("%w: at least one electron pair is required", ErrElectronCount)
	}
	if nbasis < npair {
		return nil, fmt.Errorf("%w: %d basis functions cannot hold %d electron pairs", ErrElectronCount, nbasis, npair)
	}
	c := resolveOptions(nbasis, opts)
	if c.norb < npair {
		return nil, fmt.Errorf("%w: %d orbitals cannot hold %d electron pairs", ErrElectronCount, c.norb, npair)
	}

	exp, err := lf.CreateExpansion(nbasis, c.norb, true)
	if err != nil {
		return nil, err
	}

	return &ClosedShell{npair: npair, nbasis: nbasis, norb: c.norb, exp: exp}, nil
}

// NPair returns the number of electron pairs.
func (w *ClosedShell) NPair() int { return w.npair }

// NBasis returns the number of basis functions.
func (w *ClosedShell) NBasis() int { return w.nbasis }

// NOrb returns the number of orbitals in the shared expansion.
func (w *ClosedShell) NOrb() int { return w.norb }

// NElectron returns the total electron count, twice the pair count.
func (w *ClosedShell) NElectron() int { return 2 * w.npair }

// Restricted reports true: both spin channels share one expansion.
func (w *ClosedShell) Restricted() bool { return true }

// Expansion returns the shared orbital expansion.
func (w *ClosedShell) Expansion() *linalg.Expansion { return w.exp }

// String describes the variant and its counts.
func (w *ClosedShell) String() string {
	return fmt.Sprintf("restricted closed-shell wavefunction (%d electron pairs, %d basis functions, %d orbitals)",
		w.npair, w.nbasis, w.norb)
}

// IterExpansions implements the selection protocol. Alpha and Beta both
// resolve to the shared expansion at unit scale, Full doubles the scale to
// count both spins at once, and Spin is empty: the channels cancel exactly.
func (w *ClosedShell) IterExpansions(sel Selection) ([]OccupiedExpansion, error) {
	switch sel {
	case Alpha, Beta:
		return []OccupiedExpansion{{Exp: w.exp, NOcc: w.npair, Scale: 1}}, nil
	case Full:
		return []OccupiedExpansion{{Exp: w.exp, NOcc: w.npair, Scale: 2}}, nil
	case Spin:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSelection, sel)
	}
}

// ToGroup writes the persisted layout: the ClosedShell type tag, the three
// count scalars and the expansion subgroup.
func (w *ClosedShell) ToGroup(g *chk.Group) error {
	g.SetAttr("type", variantClosedShell)
	g.SetInt("electronPairCount", w.npair)
	g.SetInt("basisSize", w.nbasis)
	g.SetInt("orbitalCount", w.norb)

	return w.exp.ToGroup(g.CreateGroup("expansion"))
}
