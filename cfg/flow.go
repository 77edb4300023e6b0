package cfg

import "github.com/labm1997/monoflow/ast"

// Init returns the entry label of s: the label of the construct itself
// for atomic forms, init(s1) for Sequence, and the condition's label
// for IfElse/While.
func Init(s ast.Stmt) Label {
	switch s := s.(type) {
	case ast.Assign:
		return s.Lbl
	case ast.Skip:
		return s.Lbl
	case ast.Seq:
		return Init(s.S1)
	case ast.If:
		return s.CondLbl
	case ast.While:
		return s.CondLbl
	default:
		panic("cfg: unknown ast.Stmt variant")
	}
}

// Final returns the exit labels of s: a singleton for atomic forms,
// final(s2) for Sequence, the union of both branches' finals for
// IfElse, and the condition's label for While (the loop is exited when
// the test fails).
func Final(s ast.Stmt) []Label {
	switch s := s.(type) {
	case ast.Assign:
		return []Label{s.Lbl}
	case ast.Skip:
		return []Label{s.Lbl}
	case ast.Seq:
		return Final(s.S2)
	case ast.If:
		return append(Final(s.Then), Final(s.Else)...)
	case ast.While:
		return []Label{s.CondLbl}
	default:
		panic("cfg: unknown ast.Stmt variant")
	}
}

// Flow returns the forward flow-graph edges of s.
//
//   - Atomic forms contribute no edges.
//   - Sequence(s1, s2): flow(s1) ∪ flow(s2) ∪ {(l, init(s2)) : l ∈ final(s1)}.
//   - IfElse(c, t, e) with condition label l: flow(t) ∪ flow(e) ∪
//     {(l, init(t)), (l, init(e))}.
//   - While(c, b) with condition label l: flow(b) ∪ {(l, init(b))} ∪
//     {(l', l) : l' ∈ final(b)}.
//
// A lone While contributes no fall-through edge out of the loop; a
// caller that sequences a While with following code gets that edge
// through the Sequence rule instead.
func Flow(s ast.Stmt) []Edge {
	switch s := s.(type) {
	case ast.Assign, ast.Skip:
		return nil
	case ast.Seq:
		edges := append(Flow(s.S1), Flow(s.S2)...)
		init2 := Init(s.S2)
		for _, l := range Final(s.S1) {
			edges = append(edges, Edge{From: l, To: init2})
		}
		return edges
	case ast.If:
		edges := append(Flow(s.Then), Flow(s.Else)...)
		edges = append(edges,
			Edge{From: s.CondLbl, To: Init(s.Then)},
			Edge{From: s.CondLbl, To: Init(s.Else)},
		)
		return edges
	case ast.While:
		edges := append([]Edge{}, Flow(s.Body)...)
		edges = append(edges, Edge{From: s.CondLbl, To: Init(s.Body)})
		for _, l := range Final(s.Body) {
			edges = append(edges, Edge{From: l, To: s.CondLbl})
		}
		return edges
	default:
		panic("cfg: unknown ast.Stmt variant")
	}
}

// FlowR returns the reverse of Flow(s): every (from, to) edge with its
// endpoints swapped. Backward analyses (Very Busy Expressions, Live
// Variables) iterate on this graph.
func FlowR(s ast.Stmt) []Edge {
	fwd := Flow(s)
	rev := make([]Edge, len(fwd))
	for i, e := range fwd {
		rev[i] = Edge{From: e.To, To: e.From}
	}
	return rev
}
