package cfg

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is a flow graph over program labels, backed by
// gonum.org/v1/gonum/graph/simple.DirectedGraph. The worklist solver
// uses it to look up a label's successors when an update needs to be
// propagated, rather than rescanning the full edge list on every step.
type Graph struct {
	g *simple.DirectedGraph
}

// NewGraph builds a Graph from a flow-edge list such as the one Flow or
// FlowR returns.
func NewGraph(edges []Edge) *Graph {
	g := simple.NewDirectedGraph()
	for _, e := range edges {
		from := simple.Node(e.From)
		to := simple.Node(e.To)
		if g.Node(int64(e.From)) == nil {
			g.AddNode(from)
		}
		if g.Node(int64(e.To)) == nil {
			g.AddNode(to)
		}
		g.SetEdge(simple.Edge{F: from, T: to})
	}
	return &Graph{g: g}
}

// Successors returns every label l' such that (l, l') is an edge of the
// graph.
func (gr *Graph) Successors(l Label) []Label {
	if gr.g.Node(int64(l)) == nil {
		return nil
	}
	it := gr.g.From(int64(l))
	succs := make([]Label, 0, it.Len())
	for it.Next() {
		succs = append(succs, Label(it.Node().ID()))
	}
	return succs
}

// Predecessors returns every label l' such that (l', l) is an edge of
// the graph.
func (gr *Graph) Predecessors(l Label) []Label {
	if gr.g.Node(int64(l)) == nil {
		return nil
	}
	it := gr.g.To(int64(l))
	preds := make([]Label, 0, it.Len())
	for it.Next() {
		preds = append(preds, Label(it.Node().ID()))
	}
	return preds
}

var _ graph.Directed = (*simple.DirectedGraph)(nil)
