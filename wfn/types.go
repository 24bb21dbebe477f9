package wfn

import (
	"fmt"

	"github.com/qchemlab/gowfn/chk"
	"github.com/qchemlab/gowfn/linalg"
)

// DefaultNormalizationEps is the tolerance CheckNormalization applies when
// callers have no tighter requirement. Deliberately loose: it flags broken
// orbitals, not numerical noise.
const DefaultNormalizationEps = 1e-4

// Selection picks the spin channels an operation runs over. The zero value
// is Full, the default everywhere.
type Selection int

const (
	// Full selects every physical electron: both channels for an open
	// shell, the shared expansion at double occupancy for a closed shell.
	Full Selection = iota
	// Alpha selects the spin-up channel.
	Alpha
	// Beta selects the spin-down channel.
	Beta
	// Spin selects the spin density, alpha minus beta. Empty for a closed
	// shell, where the channels cancel exactly.
	Spin
)

// String returns the lowercase selection name.
func (s Selection) String() string {
	switch s {
	case Full:
		return "full"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Spin:
		return "spin"
	default:
		return fmt.Sprintf("selection(%d)", int(s))
	}
}

// OccupiedExpansion is one record of the selection protocol: an orbital
// expansion, how many of its leading orbitals are occupied, and the weight
// each occupied orbital contributes to densities.
type OccupiedExpansion struct {
	Exp   *linalg.Expansion
	NOcc  int
	Scale float64
}

// Wavefunction is the contract both variants implement. Operations in this
// package are written against it, never against a concrete variant.
type Wavefunction interface {
	fmt.Stringer

	// NBasis returns the number of basis functions.
	NBasis() int
	// NOrb returns the number of orbitals per expansion (occupied + virtual).
	NOrb() int
	// NElectron returns the total number of electrons.
	NElectron() int
	// Restricted reports whether both spin channels share one expansion.
	Restricted() bool
	// IterExpansions resolves a selection into its (expansion, occupied,
	// scale) records, in deterministic order (alpha before beta).
	// Returns ErrInvalidSelection for selections outside the enum.
	IterExpansions(sel Selection) ([]OccupiedExpansion, error)
	// ToGroup writes the variant-tagged persisted layout into g.
	ToGroup(g *chk.Group) error
}

// config carries optional construction parameters.
type config struct {
	norb int // 0 means "default to the basis size"
}

// Option adjusts optional wavefunction parameters at construction.
type Option func(*config)

// WithOrbitals sets the number of orbitals per expansion (occupied +
// virtual), for bases with linear dependencies removed. Zero or omitted
// means the basis size.
func WithOrbitals(norb int) Option {
	return func(c *config) { c.norb = norb }
}

// resolveOptions folds options over the defaults for a given basis size.
func resolveOptions(nbasis int, opts []Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.norb == 0 {
		c.norb = nbasis
	}

	return c
}
