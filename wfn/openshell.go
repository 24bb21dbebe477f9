package wfn

import (
	"fmt"

	"github.com/qchemlab/gowfn/chk"
	"github.com/qchemlab/gowfn/linalg"
)

// OpenShell is an unrestricted wavefunction: alpha and beta electrons live
// in independent orbital expansions of the same shape.
type OpenShell struct {
	nalpha int
	nbeta  int
	nbasis int
	norb   int
	alpha  *linalg.Expansion
	beta   *linalg.Expansion
}

// Compile-time conformance check.
var _ Wavefunction = (*OpenShell)(nil)

// NewOpenShell builds an open-shell wavefunction with nalpha spin-up and
// nbeta spin-down electrons over nbasis basis functions. The orbital count
// defaults to nbasis; override it with WithOrbitals. Both expansions are
// allocated through lf with energy tracking on.
// Returns ErrElectronCount when a count is negative, both are zero, or
// either exceeds the basis or orbital capacity.
func NewOpenShell(lf linalg.Factory, nalpha, nbeta, nbasis int, opts ...Option) (*OpenShell, error) {
	if nalpha < 0 || nbeta < 0 {
		return nil, fmt.Errorf("%w: negative electron counts are not allowed", ErrElectronCount)
	}
	if nalpha == 0 && nbeta == 0 {
		return nil, fmt.Errorf("%w: at least one alpha or beta electron is required", ErrElectronCount)
	}
	if nbasis < nalpha || nbasis < nbeta {
		return nil, fmt.Errorf("%w: %d basis functions cannot hold %d alpha and %d beta electrons",
			ErrElectronCount, nbasis, nalpha, nbeta)
	}
	c := resolveOptions(nbasis, opts)
	if c.norb < nalpha || c.norb < nbeta {
		return nil, fmt.Errorf("%w: %d orbitals cannot hold %d alpha and %d beta electrons",
			ErrElectronCount, c.norb, nalpha, nbeta)
	}

	alpha, err := lf.CreateExpansion(nbasis, c.norb, true)
	if err != nil {
		return nil, err
	}
	beta, err := lf.CreateExpansion(nbasis, c.norb, true)
	if err != nil {
		return nil, err
	}

	return &OpenShell{nalpha: nalpha, nbeta: nbeta, nbasis: nbasis, norb: c.norb, alpha: alpha, beta: beta}, nil
}

// NAlpha returns the number of spin-up electrons.
func (w *OpenShell) NAlpha() int { return w.nalpha }

// NBeta returns the number of spin-down electrons.
func (w *OpenShell) NBeta() int { return w.nbeta }

// NBasis returns the number of basis functions.
func (w *OpenShell) NBasis() int { return w.nbasis }

// NOrb returns the number of orbitals per expansion.
func (w *OpenShell) NOrb() int { return w.norb }

// NElectron returns the total electron count.
func (w *OpenShell) NElectron() int { return w.nalpha + w.nbeta }

// Restricted reports false: the spin channels are independent.
func (w *OpenShell) Restricted() bool { return false }

// AlphaExpansion returns the spin-up orbital expansion.
func (w *OpenShell) AlphaExpansion() *linalg.Expansion { return w.alpha }

// BetaExpansion returns the spin-down orbital expansion.
func (w *OpenShell) BetaExpansion() *linalg.Expansion { return w.beta }

// String describes the variant and its counts.
func (w *OpenShell) String() string {
	return fmt.Sprintf("unrestricted open-shell wavefunction (%d alpha, %d beta electrons, %d basis functions, %d orbitals)",
		w.nalpha, w.nbeta, w.nbasis, w.norb)
}

// IterExpansions implements the selection protocol. Channels always come
// back alpha before beta; Spin weights beta with −1 so the fold over the
// records yields the spin density directly.
func (w *OpenShell) IterExpansions(sel Selection) ([]OccupiedExpansion, error) {
	switch sel {
	case Alpha:
		return []OccupiedExpansion{{Exp: w.alpha, NOcc: w.nalpha, Scale: 1}}, nil
	case Beta:
		return []OccupiedExpansion{{Exp: w.beta, NOcc: w.nbeta, Scale: 1}}, nil
	case Full:
		return []OccupiedExpansion{
			{Exp: w.alpha, NOcc: w.nalpha, Scale: 1},
			{Exp: w.beta, NOcc: w.nbeta, Scale: 1},
		}, nil
	case Spin:
		return []OccupiedExpansion{
			{Exp: w.alpha, NOcc: w.nalpha, Scale: 1},
			{Exp: w.beta, NOcc: w.nbeta, Scale: -1},
		}, nil
	default:
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSelection, sel)
	}
}

// ToGroup writes the persisted layout: the OpenShell type tag, the four
// count scalars and one subgroup per spin channel.
func (w *OpenShell) ToGroup(g *chk.Group) error {
	g.SetAttr("type", variantOpenShell)
	g.SetInt("alphaElectronCount", w.nalpha)
	g.SetInt("betaElectronCount", w.nbeta)
	g.SetInt("basisSize", w.nbasis)
	g.SetInt("orbitalCount", w.norb)

	if err := w.alpha.ToGroup(g.CreateGroup("alphaExpansion")); err != nil {
		return err
	}

	return w.beta.ToGroup(g.CreateGroup("betaExpansion"))
}
