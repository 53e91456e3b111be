// Package errors provides structured error types for the tooling around the
// constant evaluator.
//
// The evaluator itself never returns errors: violating its call contract is
// a programmer bug and panics. This package serves the layers in front of
// it — text parsing, catalog queries, request validation — which deal with
// untrusted input and need recoverable, inspectable failures.
//
// Errors are categorized by Phase (where the failure occurred) and Kind
// (what went wrong). Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidNumber).
//		Op("fadd").
//		Path("src1", "lane0").
//		Detail("cannot parse %q as float32", text).
//		Build()
//
// Or the convenience constructors for common patterns:
//
//	err := errors.UnknownOp("fmadd")
//	err := errors.UnsupportedWidth("fadd", 8)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
