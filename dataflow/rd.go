package dataflow

import (
	"github.com/labm1997/monoflow/ast"
	"github.com/labm1997/monoflow/cfg"
	"github.com/labm1997/monoflow/internal/fset"
)

// RDFact is a Reaching Definitions fact: variable Name was last defined
// at label Def, or at Def == cfg.Undef if it reaches without any prior
// assignment in the program.
type RDFact struct {
	Name string
	Def  cfg.Label
}

// RD is the Reaching Definitions analysis: a forward, may analysis over
// (name, label) pairs, joined by union. cfg.Undef stands in for "reaches
// without any prior assignment in the program".
type RD struct {
	program  ast.Stmt
	blocks   map[cfg.Label]cfg.Block
	labels   []cfg.Label
	flow     []cfg.Edge
	universe *fset.Universe[RDFact]
}

// NewRD builds a Reaching Definitions instance over program.
func NewRD(program ast.Stmt) *RD {
	assigns := cfg.Assignments(program)
	facts := make([]RDFact, 0, len(assigns)+4)
	for _, name := range cfg.FreeVars(program) {
		facts = append(facts, RDFact{Name: name, Def: cfg.Undef})
	}
	for _, assign := range assigns {
		facts = append(facts, RDFact{Name: assign.Name, Def: assign.Lbl})
	}

	return &RD{
		program:  program,
		blocks:   cfg.BlockMap(program),
		labels:   cfg.Labels(program),
		flow:     cfg.Flow(program),
		universe: fset.NewUniverse(facts),
	}
}

func (a *RD) Direction() Direction     { return Forward }
func (a *RD) Flow() []cfg.Edge         { return a.flow }
func (a *RD) Extremal() []cfg.Label    { return []cfg.Label{cfg.Init(a.program)} }
func (a *RD) Blocks() map[cfg.Label]cfg.Block { return a.blocks }
func (a *RD) Labels() []cfg.Label      { return a.labels }

// ExtremalValue is {(x, Undef) : x ∈ fv(program)}.
func (a *RD) ExtremalValue() *fset.Set[RDFact] {
	s := a.universe.Empty()
	for _, name := range cfg.FreeVars(a.program) {
		s.Add(RDFact{Name: name, Def: cfg.Undef})
	}
	return s
}

// InitialValue is ∅, the bottom of the may-analysis lattice.
func (a *RD) InitialValue() *fset.Set[RDFact] { return a.universe.Empty() }

// Leq is subset for a may analysis.
func (a *RD) Leq(candidate, target *fset.Set[RDFact]) bool {
	return candidate.SubsetOf(target)
}

// Join is the may-analysis join: union.
func (a *RD) Join(x, y *fset.Set[RDFact]) *fset.Set[RDFact] { return x.Union(y) }

// Transfer applies (entry ∖ kill(block)) ∪ gen(block).
func (a *RD) Transfer(block cfg.Block, entry *fset.Set[RDFact]) *fset.Set[RDFact] {
	assign, ok := block.(cfg.AssignBlock)
	if !ok {
		return entry.Clone()
	}

	kill := a.universe.Of(RDFact{Name: assign.Name, Def: cfg.Undef})
	for _, other := range cfg.Assignments(a.program) {
		if other.Name == assign.Name {
			kill.Add(RDFact{Name: assign.Name, Def: other.Lbl})
		}
	}

	gen := a.universe.Of(RDFact{Name: assign.Name, Def: assign.Lbl})
	return entry.Difference(kill).Union(gen)
}
