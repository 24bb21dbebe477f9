// Package gowfn is an in-memory toolkit for mean-field electronic
// wavefunctions — orbital expansions, density matrices and the
// checkpoint plumbing around them.
//
// 🚀 What is gowfn?
//
//	A small, focused library that brings together:
//		• Wavefunction containers: closed-shell (spin-paired) & open-shell (spin-resolved)
//		• Orbital expansions: coefficient matrices + orbital energies & occupations
//		• Density matrices: total, per-spin-channel and spin (α−β) assembly
//		• Sanity checks: orthonormality against an overlap operator
//		• Occupation models: Aufbau filling for one or two spin channels
//		• Checkpoints: variant-tagged group trees, YAML on disk
//
// ✨ Why choose gowfn?
//
//   - Fail-fast construction – electron counts and basis capacity are
//     validated before any allocation
//   - Deterministic iteration – spin channels always come back in the
//     same order, so results are reproducible
//   - gonum underneath – dense kernels ride on gonum/mat, not hand-rolled
//     loops
//   - Honest errors – every failure unwraps to a named sentinel
//
// Everything is organized under five subpackages:
//
//	wfn/    — wavefunction variants, selections, density & summary operations
//	linalg/ — expansion & one-body operator types on gonum, plus the factory
//	occ/    — Aufbau occupation model
//	chk/    — checkpoint group trees and their YAML codec
//	qlog/   — the verbose-gated diagnostic logger used by summaries
//
// Quick sketch:
//
//	lf := linalg.NewDenseFactory()
//	w, _ := wfn.NewClosedShell(lf, 5, 13)     // 5 electron pairs, 13 basis functions
//	dm, _ := lf.CreateOneBody(13)
//	_ = wfn.ComputeDensityMatrix(w, dm, wfn.Full)
//
//	computes the closed-shell density D = 2·C_occ·C_occᵀ.
//
// Dive into the per-package docs for the full contracts, error taxonomy
// and worked examples.
//
//	go get github.com/qchemlab/gowfn
package gowfn
