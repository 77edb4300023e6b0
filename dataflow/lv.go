package dataflow

import (
	"github.com/labm1997/monoflow/ast"
	"github.com/labm1997/monoflow/cfg"
	"github.com/labm1997/monoflow/internal/fset"
)

// LV is the Live Variables analysis: a backward, may analysis over
// variable names, joined by union.
type LV struct {
	program  ast.Stmt
	blocks   map[cfg.Label]cfg.Block
	labels   []cfg.Label
	flow     []cfg.Edge
	universe *fset.Universe[string]
}

// NewLV builds a Live Variables instance over program.
func NewLV(program ast.Stmt) *LV {
	return &LV{
		program:  program,
		blocks:   cfg.BlockMap(program),
		labels:   cfg.Labels(program),
		flow:     cfg.FlowR(program),
		universe: fset.NewUniverse(cfg.FreeVars(program)),
	}
}

func (a *LV) Direction() Direction  { return Backward }
func (a *LV) Flow() []cfg.Edge      { return a.flow }
func (a *LV) Extremal() []cfg.Label { return cfg.Final(a.program) }
func (a *LV) ExtremalValue() *fset.Set[string] { return a.universe.Empty() }
func (a *LV) InitialValue() *fset.Set[string]  { return a.universe.Empty() }
func (a *LV) Blocks() map[cfg.Label]cfg.Block  { return a.blocks }
func (a *LV) Labels() []cfg.Label              { return a.labels }

// Leq is subset for a may analysis.
func (a *LV) Leq(candidate, target *fset.Set[string]) bool {
	return candidate.SubsetOf(target)
}

// Join is the may-analysis join: union.
func (a *LV) Join(x, y *fset.Set[string]) *fset.Set[string] { return x.Union(y) }

// Transfer applies (entry ∖ kill(block)) ∪ gen(block).
func (a *LV) Transfer(block cfg.Block, entry *fset.Set[string]) *fset.Set[string] {
	switch block := block.(type) {
	case cfg.AssignBlock:
		kill := a.universe.Of(block.Name)
		gen := a.universe.Of(cfg.FreeVarsArith(block.Exp)...)
		return entry.Difference(kill).Union(gen)
	case cfg.CondBlock:
		gen := a.universe.Of(cfg.FreeVarsBool(block.Cond)...)
		return entry.Union(gen)
	default:
		return entry.Clone()
	}
}
