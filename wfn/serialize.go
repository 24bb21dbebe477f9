package wfn

import (
	"fmt"

	"github.com/qchemlab/gowfn/chk"
	"github.com/qchemlab/gowfn/linalg"
)

// Type tags stored in the persisted layout's "type" attribute.
const (
	variantClosedShell = "ClosedShell"
	variantOpenShell   = "OpenShell"
)

// FromGroup restores a wavefunction from a tree written by ToGroup,
// dispatching on the type tag. Expansions are allocated through lf, so the
// caller picks the storage backend of the restored object.
// Returns ErrUnknownVariant for a missing or unrecognized tag.
func FromGroup(g *chk.Group, lf linalg.Factory) (Wavefunction, error) {
	typ, err := g.Attr("type")
	if err != nil {
		return nil, fmt.Errorf("%w: no type attribute", ErrUnknownVariant)
	}
	switch typ {
	case variantClosedShell:
		return closedShellFromGroup(g, lf)
	case variantOpenShell:
		return openShellFromGroup(g, lf)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, typ)
	}
}

// closedShellFromGroup rebuilds a ClosedShell: counts first (revalidated by
// the constructor), then the shared expansion payload.
func closedShellFromGroup(g *chk.Group, lf linalg.Factory) (*ClosedShell, error) {
	npair, err := g.Int("electronPairCount")
	if err != nil {
		return nil, err
	}
	nbasis, err := g.Int("basisSize")
	if err != nil {
		return nil, err
	}
	norb, err := g.Int("orbitalCount")
	if err != nil {
		return nil, err
	}

	w, err := NewClosedShell(lf, npair, nbasis, WithOrbitals(norb))
	if err != nil {
		return nil, err
	}
	sub, err := g.Subgroup("expansion")
	if err != nil {
		return nil, err
	}
	if err = w.exp.ReadGroup(sub); err != nil {
		return nil, err
	}

	return w, nil
}

// openShellFromGroup rebuilds an OpenShell: counts first (revalidated by
// the constructor), then both channel payloads.
func openShellFromGroup(g *chk.Group, lf linalg.Factory) (*OpenShell, error) {
	nalpha, err := g.Int("alphaElectronCount")
	if err != nil {
		return nil, err
	}
	nbeta, err := g.Int("betaElectronCount")
	if err != nil {
		return nil, err
	}
	nbasis, err := g.Int("basisSize")
	if err != nil {
		return nil, err
	}
	norb, err := g.Int("orbitalCount")
	if err != nil {
		return nil, err
	}

	w, err := NewOpenShell(lf, nalpha, nbeta, nbasis, WithOrbitals(norb))
	if err != nil {
		return nil, err
	}
	sub, err := g.Subgroup("alphaExpansion")
	if err != nil {
		return nil, err
	}
	if err = w.alpha.ReadGroup(sub); err != nil {
		return nil, err
	}
	sub, err = g.Subgroup("betaExpansion")
	if err != nil {
		return nil, err
	}
	if err = w.beta.ReadGroup(sub); err != nil {
		return nil, err
	}

	return w, nil
}

// Save writes w to a checkpoint file at path.
func Save(path string, w Wavefunction) error {
	g := chk.NewGroup()
	if err := w.ToGroup(g); err != nil {
		return err
	}

	return chk.Save(path, g)
}

// Load restores a wavefunction from a checkpoint file at path, allocating
// its expansions through lf.
func Load(path string, lf linalg.Factory) (Wavefunction, error) {
	g, err := chk.Load(path)
	if err != nil {
		return nil, err
	}

	return FromGroup(g, lf)
}
