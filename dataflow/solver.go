package dataflow

import "github.com/labm1997/monoflow/cfg"

// Solve runs the chaotic-iteration worklist algorithm to a fixpoint for
// the given analysis instance and reports the resulting entry/exit fact
// sets for every label of the program.
//
// Steps:
//
//  1. Build the block map from a.Blocks().
//  2. Seed A[l] = a.ExtremalValue() for l in a.Extremal(), else
//     a.InitialValue(), for every label of the program.
//  3. Initialize the worklist with every edge of a.Flow().
//  4. While the worklist is non-empty, pop an edge (l1, l2), compute
//     out = Transfer(block[l1], A[l1]); if !Leq(out, A[l2]), join out
//     into A[l2] and push every edge leaving l2.
//  5. Report entry/exit for every label according to direction.
//
// Solve performs no I/O and has no side effects beyond allocating its
// own result; it is safe to call repeatedly on the same instance and
// is independent of the order edges are popped from the worklist.
func Solve[F any](a Analysis[F]) Result[F] {
	blocks := a.Blocks()
	labels := a.Labels()
	extremal := a.Extremal()
	isExtremal := make(map[cfg.Label]bool, len(extremal))
	for _, l := range extremal {
		isExtremal[l] = true
	}

	facts := make(map[cfg.Label]F, len(labels))
	for _, l := range labels {
		if isExtremal[l] {
			facts[l] = a.ExtremalValue()
		} else {
			facts[l] = a.InitialValue()
		}
	}

	flow := a.Flow()
	graph := cfg.NewGraph(flow)

	worklist := make([]cfg.Edge, len(flow))
	copy(worklist, flow)

	for len(worklist) > 0 {
		n := len(worklist) - 1
		edge := worklist[n]
		worklist = worklist[:n]

		block1, ok := blocks[edge.From]
		if !ok {
			panic("dataflow: solve: no block for label in flow graph")
		}
		out := a.Transfer(block1, facts[edge.From])

		target, ok := facts[edge.To]
		if !ok {
			panic("dataflow: solve: no fact entry for label in flow graph")
		}

		if !a.Leq(out, target) {
			facts[edge.To] = a.Join(target, out)
			for _, l3 := range graph.Successors(edge.To) {
				worklist = append(worklist, cfg.Edge{From: edge.To, To: l3})
			}
		}
	}

	entry := make(map[cfg.Label]F, len(labels))
	exit := make(map[cfg.Label]F, len(labels))
	for _, l := range labels {
		block, ok := blocks[l]
		if !ok {
			panic("dataflow: solve: no block for label in program")
		}
		switch a.Direction() {
		case Forward:
			entry[l] = facts[l]
			exit[l] = a.Transfer(block, facts[l])
		case Backward:
			exit[l] = facts[l]
			entry[l] = a.Transfer(block, facts[l])
		default:
			panic("dataflow: solve: unknown direction")
		}
	}

	return Result[F]{Entry: entry, Exit: exit}
}
