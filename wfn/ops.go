package wfn

import (
	"github.com/qchemlab/gowfn/linalg"
	"github.com/qchemlab/gowfn/qlog"
)

// ComputeDensityMatrix resets dm and accumulates the density of the
// selected channels: dm = Σ scale·C_occ·C_occᵀ over the selection records.
// With Spin on a closed shell the selection is empty and dm stays zeroed.
// The selection is validated before dm is touched.
func ComputeDensityMatrix(w Wavefunction, dm *linalg.OneBody, sel Selection) error {
	recs, err := w.IterExpansions(sel)
	if err != nil {
		return err
	}

	dm.Reset()
	for _, r := range recs {
		if err = r.Exp.ComputeDensityMatrix(r.NOcc, dm, r.Scale); err != nil {
			return err
		}
	}

	return nil
}

// ApplyBasisPermutation reorders the basis functions of every expansion the
// wavefunction owns: new row i is old row perm[i]. The shared closed-shell
// expansion is permuted exactly once.
func ApplyBasisPermutation(w Wavefunction, perm []int) error {
	recs, err := w.IterExpansions(Full)
	if err != nil {
		return err
	}
	for _, r := range recs {
		if err = r.Exp.ApplyBasisPermutation(perm); err != nil {
			return err
		}
	}

	return nil
}

// CheckNormalization verifies that the occupied orbitals of every channel
// are orthonormal under the overlap operator olp. The first violation is
// returned as a *linalg.NormalizationError. Use DefaultNormalizationEps
// when no tighter tolerance applies.
func CheckNormalization(w Wavefunction, olp *linalg.OneBody, eps float64) error {
	recs, err := w.IterExpansions(Full)
	if err != nil {
		return err
	}
	for _, r := range recs {
		if err = r.Exp.CheckNormalization(olp, r.NOcc, eps); err != nil {
			return err
		}
	}

	return nil
}

// LogSummary writes a WFN section describing w to the diagnostic log:
// variant, electron count, and per-channel orbital bookkeeping. Channel
// labels follow the deterministic iteration order, so a closed shell
// reports a single alpha line.
func LogSummary(w Wavefunction) {
	qlog.Section("WFN")
	qlog.Info("wavefunction: %s", w)
	qlog.Info("number of electrons: %d", w.NElectron())

	recs, err := w.IterExpansions(Full)
	if err != nil {
		qlog.Warn("summary aborted: %v", err)

		return
	}
	labels := [...]string{"alpha", "beta"}
	for i, r := range recs {
		qlog.Info("expansion for %s electrons:", labels[i])
		qlog.Info("  number of orbitals:          %d", r.Exp.NFn())
		qlog.Info("  number of occupied orbitals: %d", r.NOcc)
		qlog.Debug("  assigned occupation sum:     %g", r.Exp.OccupationSum())
	}
}
