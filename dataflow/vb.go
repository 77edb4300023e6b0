package dataflow

import (
	"github.com/labm1997/monoflow/ast"
	"github.com/labm1997/monoflow/cfg"
	"github.com/labm1997/monoflow/internal/fset"
)

// VB is the Very Busy Expressions analysis: a backward, must analysis
// over complex arithmetic expressions, joined by intersection. An
// expression is very busy at a point if, on every path forward from
// that point, it is evaluated before any of its operands is
// reassigned.
type VB struct {
	program  ast.Stmt
	blocks   map[cfg.Label]cfg.Block
	labels   []cfg.Label
	flow     []cfg.Edge
	universe *fset.Universe[ast.Arith]
}

// NewVB builds a Very Busy Expressions instance over program.
func NewVB(program ast.Stmt) *VB {
	return &VB{
		program:  program,
		blocks:   cfg.BlockMap(program),
		labels:   cfg.Labels(program),
		flow:     cfg.FlowR(program),
		universe: fset.NewUniverse(cfg.ComplexExprs(program)),
	}
}

func (a *VB) Direction() Direction      { return Backward }
func (a *VB) Flow() []cfg.Edge          { return a.flow }
func (a *VB) Extremal() []cfg.Label     { return cfg.Final(a.program) }
func (a *VB) ExtremalValue() *fset.Set[ast.Arith] { return a.universe.Empty() }
func (a *VB) InitialValue() *fset.Set[ast.Arith]  { return a.universe.Full() }
func (a *VB) Blocks() map[cfg.Label]cfg.Block     { return a.blocks }
func (a *VB) Labels() []cfg.Label                 { return a.labels }

// Leq is "target already dominates candidate" for a must analysis.
func (a *VB) Leq(candidate, target *fset.Set[ast.Arith]) bool {
	return target.SubsetOf(candidate)
}

// Join is the must-analysis join: intersection.
func (a *VB) Join(x, y *fset.Set[ast.Arith]) *fset.Set[ast.Arith] {
	return x.Intersect(y)
}

// Transfer applies (entry ∖ kill(block)) ∪ gen(block).
func (a *VB) Transfer(block cfg.Block, entry *fset.Set[ast.Arith]) *fset.Set[ast.Arith] {
	switch block := block.(type) {
	case cfg.AssignBlock:
		kill := a.universe.Empty()
		for _, e := range a.universe.Full().Items() {
			if contains(cfg.FreeVarsArith(e), block.Name) {
				kill.Add(e)
			}
		}
		gen := a.universe.Of(cfg.ComplexExprsArith(block.Exp)...)
		return entry.Difference(kill).Union(gen)
	case cfg.CondBlock:
		gen := a.universe.Of(cfg.ComplexExprsBool(block.Cond)...)
		return entry.Union(gen)
	default:
		return entry.Clone()
	}
}
