// Package mips implements the execution engine for a cycle-stepping
// simulator of a small MIPS instruction subset.
//
// The machine consists of a 32-entry register file with a hard-wired
// zero register, a program store holding instructions and labels, a
// byte-addressable data memory with write provenance, and a clock that
// charges a configurable cycle weight per instruction class (R, I, J).
//
// The loader provides the two-section source format: a config_cpu line
// describing the clock, followed by instruction and label lines. Source
// lines support .equ constants and compile-time $() expression
// evaluation.
package mips
