package dataflow

import (
	"github.com/labm1997/monoflow/ast"
	"github.com/labm1997/monoflow/cfg"
	"github.com/labm1997/monoflow/internal/fset"
)

// AE is the Available Expressions analysis: a forward, must analysis
// over complex arithmetic expressions, joined by intersection. An
// assignment kills every complex expression mentioning the assigned
// variable and generates the complex subexpressions of its own
// right-hand side that do not themselves mention that variable.
type AE struct {
	program  ast.Stmt
	blocks   map[cfg.Label]cfg.Block
	labels   []cfg.Label
	flow     []cfg.Edge
	universe *fset.Universe[ast.Arith]
}

// NewAE builds an Available Expressions instance over program,
// precomputing its block map, flow graph and complex-expression
// universe once.
func NewAE(program ast.Stmt) *AE {
	return &AE{
		program:  program,
		blocks:   cfg.BlockMap(program),
		labels:   cfg.Labels(program),
		flow:     cfg.Flow(program),
		universe: fset.NewUniverse(cfg.ComplexExprs(program)),
	}
}

func (a *AE) Direction() Direction      { return Forward }
func (a *AE) Flow() []cfg.Edge          { return a.flow }
func (a *AE) Extremal() []cfg.Label     { return []cfg.Label{cfg.Init(a.program)} }
func (a *AE) ExtremalValue() *fset.Set[ast.Arith] { return a.universe.Empty() }
func (a *AE) InitialValue() *fset.Set[ast.Arith]  { return a.universe.Full() }
func (a *AE) Blocks() map[cfg.Label]cfg.Block     { return a.blocks }
func (a *AE) Labels() []cfg.Label                 { return a.labels }

// Leq is "target already dominates candidate" for a must analysis:
// candidate adds nothing new exactly when target is already a subset
// of candidate.
func (a *AE) Leq(candidate, target *fset.Set[ast.Arith]) bool {
	return target.SubsetOf(candidate)
}

// Join is the must-analysis join: intersection.
func (a *AE) Join(x, y *fset.Set[ast.Arith]) *fset.Set[ast.Arith] {
	return x.Intersect(y)
}

// Transfer applies (entry ∖ kill(block)) ∪ gen(block).
func (a *AE) Transfer(block cfg.Block, entry *fset.Set[ast.Arith]) *fset.Set[ast.Arith] {
	kill, gen := a.genKill(block)
	return entry.Difference(kill).Union(gen)
}

func (a *AE) genKill(block cfg.Block) (kill, gen *fset.Set[ast.Arith]) {
	assign, ok := block.(cfg.AssignBlock)
	if !ok {
		return a.universe.Empty(), a.universe.Empty()
	}

	kill = a.universe.Empty()
	for _, e := range a.universe.Full().Items() {
		if contains(cfg.FreeVarsArith(e), assign.Name) {
			kill.Add(e)
		}
	}

	gen = a.universe.Empty()
	for _, e := range cfg.ComplexExprsArith(assign.Exp) {
		if !contains(cfg.FreeVarsArith(e), assign.Name) {
			gen.Add(e)
		}
	}
	return kill, gen
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
