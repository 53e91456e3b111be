// Package nir provides the constant value representation shared by the
// NIR constant-expression evaluator.
//
// This library is the constant-folding core of a shader compiler: given an
// ALU opcode, a bit width, a lane count and already-resolved constant
// operands, it computes the exact value the operation would produce at run
// time, so the optimizer can replace the instruction with its result.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	nir/                 Root package with the Value cell and the boolean
//	                     sentinel convention (leaf dependency)
//	├── alu/             Opcode catalog, dispatcher and per-op semantics
//	│   └── internal/half/  IEEE-754 binary16 with explicit rounding modes
//	├── errors/          Structured error types for CLI and catalog
//	│                    diagnostics
//	└── cmd/nirfold/     Command line and interactive constant calculator
//
// # Quick Start
//
// Fold a two-lane 32-bit float add:
//
//	dst := make([]nir.Value, 2)
//	a := []nir.Value{nir.Float32(2.5), nir.Float32(-1.0)}
//	b := []nir.Value{nir.Float32(0.5), nir.Float32(1.0)}
//	alu.Evaluate(alu.OpFAdd, dst, 2, 32, a, b)
//	// dst[0].Float32() == 3.0, dst[1].Float32() == 0.0
//
// The evaluator owns no state: two calls with identical inputs always
// produce identical outputs, and concurrent callers need no synchronization
// as long as result buffers are not shared.
package nir
