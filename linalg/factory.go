// SPDX-License-Identifier: MIT

package linalg

// Factory allocates the dense objects a wavefunction owns. Containers and
// deserializers receive a Factory instead of calling concrete constructors,
// keeping them independent of the storage backend.
type Factory interface {
	// CreateExpansion allocates a zeroed norb-orbital expansion over nbasis
	// basis functions, tracking orbital energies when trackEnergies is set.
	CreateExpansion(nbasis, norb int, trackEnergies bool) (*Expansion, error)
	// CreateOneBody allocates a zeroed nbasis×nbasis symmetric operator.
	CreateOneBody(nbasis int) (*OneBody, error)
}

// DenseFactory allocates gonum-backed dense expansions and operators.
// It is stateless; the zero value is ready to use.
type DenseFactory struct{}

// NewDenseFactory returns a dense allocator.
func NewDenseFactory() *DenseFactory { return &DenseFactory{} }

// CreateExpansion implements Factory.
func (f *DenseFactory) CreateExpansion(nbasis, norb int, trackEnergies bool) (*Expansion, error) {
	return NewExpansion(nbasis, norb, trackEnergies)
}

// CreateOneBody implements Factory.
func (f *DenseFactory) CreateOneBody(nbasis int) (*OneBody, error) {
	return NewOneBody(nbasis)
}

// Compile-time conformance check.
var _ Factory = (*DenseFactory)(nil)
