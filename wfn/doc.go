// Package wfn implements mean-field wavefunction containers: the
// restricted closed-shell and unrestricted open-shell variants, the spin
// selection protocol shared by both, and the density, normalization,
// permutation and persistence operations built on top of it.
//
// What:
//
//   - ClosedShell pairs every electron in one shared orbital expansion;
//     OpenShell carries independent alpha and beta expansions.
//   - IterExpansions(selection) is the single protocol both variants
//     speak: it returns (expansion, occupied, scale) records, and every
//     operation in this package is a fold over those records.
//   - ComputeDensityMatrix resets the target, then accumulates
//     scale·C_occ·C_occᵀ per record; Spin uses scales +1/−1 to form the
//     spin density, which is identically zero for a closed shell.
//   - CheckNormalization verifies occupied-orbital orthonormality under an
//     overlap operator; ApplyBasisPermutation relabels basis functions
//     across every owned expansion; LogSummary writes a qlog section.
//   - ToGroup/FromGroup persist and restore wavefunctions as
//     variant-tagged chk group trees; Save/Load add the file round trip.
//
// Why:
//
//   - SCF solvers, Hamiltonians and property codes only consume the
//     selection protocol; adding a wavefunction variant never touches them.
//   - Counts and capacity are validated at construction, so a container
//     that exists is always internally consistent.
//
// Selections per variant:
//
//	             ClosedShell                OpenShell
//	Alpha        (shared, npair, 1)         (alpha, nalpha, +1)
//	Beta         (shared, npair, 1)         (beta,  nbeta,  +1)
//	Full         (shared, npair, 2)         (alpha, nalpha, +1), (beta, nbeta, +1)
//	Spin         — empty —                  (alpha, nalpha, +1), (beta, nbeta, −1)
//
// Errors:
//
//   - ErrElectronCount: electron counts and capacities disagree.
//   - ErrInvalidSelection: selection outside Alpha/Beta/Full/Spin.
//   - ErrUnknownVariant: persisted tree carries an unrecognized type tag.
//   - linalg.ErrNotNormalized: reported by CheckNormalization via a
//     *linalg.NormalizationError with the offending Gram entry.
package wfn
