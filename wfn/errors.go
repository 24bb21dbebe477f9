package wfn

import "errors"

var (
	// ErrElectronCount indicates electron counts that are negative, empty or
	// beyond what the basis and orbital counts can hold.
	ErrElectronCount = errors.New("wfn: bad electron count")
	// ErrInvalidSelection indicates a selection outside Alpha, Beta, Full and Spin.
	ErrInvalidSelection = errors.New("wfn: select has to be one of alpha, beta, full or spin")
	// ErrUnknownVariant indicates a persisted tree with an unrecognized type tag.
	ErrUnknownVariant = errors.New("wfn: unknown wavefunction variant")
)
