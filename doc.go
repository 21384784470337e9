// Package bandprec is a preconditioning toolkit for Newton–Krylov
// solves of large nonlinear systems G(y) = 0: a band-block-diagonal
// preconditioner assembled by grouped finite differences, with the
// generic nonlinear-solver plumbing around it.
//
// 🚀 What is bandprec?
//
//	A pure-Go library that brings together:
//		• nvec/   — the minimal vector capability interface + a serial
//		  Dense backend (weighted-RMS norms, elementwise arithmetic)
//		• band/   — banded matrix storage, LU with partial pivoting,
//		  in-place backsolve
//		• solver/ — the generic nonlinear-solver contract: variant tag,
//		  canonical status taxonomy, callback slots
//		• newton/ — a full-Newton root-finding solver behind the contract
//		• bbd/    — the band-block-diagonal preconditioner: grouped
//		  difference-quotient Jacobian, factor-once / solve-per-iteration
//
// ✨ Why choose bandprec?
//
//   - Evaluation-frugal — Jacobian assembly costs 1 + bandwidth local
//     residual evaluations, independent of problem size
//   - Communication-free — each process factors and solves its own
//     banded block; no cross-process data dependency after the halo
//     exchange
//   - Explicit failure semantics — every operation distinguishes
//     success, recoverable failure (retry with adjusted inputs) and
//     unrecoverable failure, as sentinels or canonical statuses
//   - Pure Go — no cgo, no hidden deps
//
// Quick sketch of one Newton step:
//
//	Setup:  gcomm(u) → Gloc probes (grouped) → banded LU
//	Solve:  backsolve the factored block, once per Krylov iteration
//
// Dive into the package docs and examples/ for full scenarios.
//
//	go get github.com/katalvlaran/bandprec
package bandprec
