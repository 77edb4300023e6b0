// Package dataflow implements the monotone-framework contract (the
// direction, lattice, and transfer function every analysis declares)
// and the generic worklist solver that reaches a fixpoint for any
// instance of it, plus the four classical analyses this module ships:
// Available Expressions, Reaching Definitions, Very Busy Expressions
// and Live Variables.
//
// Direction and may/must are data an Analysis[F] instance supplies, so
// one solver (Solve, in solver.go) drives all four analyses instead of
// a hand-written chaotic-iteration loop per analysis.
package dataflow

import "github.com/labm1997/monoflow/cfg"

// Direction is the direction an analysis propagates facts in.
type Direction int

const (
	// Forward analyses compute entry facts from predecessors' exits.
	Forward Direction = iota
	// Backward analyses compute exit facts from successors' entries.
	Backward
)

// Analysis is the monotone-framework contract an instance must
// implement. F is the analysis's fact-set type, e.g. *fset.Set[ast.Arith]
// for Available Expressions or *fset.Set[RDFact] for Reaching
// Definitions. Every method must be pure: the solver may call it
// arbitrarily many times, in any order, and expects identical answers
// each time.
type Analysis[F any] interface {
	// Direction is the direction this analysis propagates in.
	Direction() Direction

	// Flow is the flow graph F to iterate on: Flow(program) for a
	// forward analysis, FlowR(program) for a backward one.
	Flow() []cfg.Edge

	// Extremal is the set E of extremal labels: {init(program)} for a
	// forward analysis, final(program) for a backward one.
	Extremal() []cfg.Label

	// ExtremalValue is iota_E, the fact set seeded at every label in
	// Extremal().
	ExtremalValue() F

	// InitialValue is iota_other, the fact set seeded at every label
	// not in Extremal().
	InitialValue() F

	// Leq reports whether candidate contributes nothing new relative to
	// target: candidate ⊆ target for a union-joined (may) analysis,
	// target ⊆ candidate for an intersection-joined (must) analysis.
	// The solver's termination check is Leq(candidate, target); it
	// never reasons about may/must directly.
	Leq(candidate, target F) bool

	// Join combines two fact sets: union for a may analysis,
	// intersection for a must analysis.
	Join(a, b F) F

	// Transfer computes (entry ∖ kill(block)) ∪ gen(block).
	Transfer(block cfg.Block, entry F) F

	// Blocks indexes every elementary block of the program by label.
	Blocks() map[cfg.Label]cfg.Block

	// Labels lists every label of the program.
	Labels() []cfg.Label
}

// Result is the outcome of a solve: the entry and exit fact sets for
// every label of the analyzed program.
type Result[F any] struct {
	Entry map[cfg.Label]F
	Exit  map[cfg.Label]F
}
