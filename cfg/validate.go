package cfg

import (
	"fmt"

	"github.com/labm1997/monoflow/ast"
	"github.com/pkg/errors"
)

// ValidationError describes a single precondition violation detected by
// Validate: a duplicate label, a flow edge naming a label with no
// corresponding block, or a block other than the program's entry with
// no incoming flow edge.
type ValidationError struct {
	Label   Label
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("label %d: %s", e.Label, e.Message)
}

// Validate checks the preconditions the core assumes of a well-formed
// program:
//
//   - every label in the program is unique,
//   - every label referenced by a forward-flow edge has a corresponding
//     block in the block map,
//   - every block other than the program's entry has at least one
//     incoming forward-flow edge.
//
// It is not called implicitly by Blocks, Flow, or any other function in
// this package (those remain pure structural recursions regardless of
// whether the input is well-formed). Callers that want to fail fast on
// a malformed program call Validate themselves before constructing a
// dataflow.Analysis.
func Validate(program ast.Stmt) error {
	seen := make(map[Label]struct{})
	for _, l := range Labels(program) {
		if _, ok := seen[l]; ok {
			return errors.Wrap(&ValidationError{Label: l, Message: "duplicate label"}, "cfg: invalid program")
		}
		seen[l] = struct{}{}
	}

	blocks := BlockMap(program)
	flow := Flow(program)
	for _, e := range flow {
		if _, ok := blocks[e.From]; !ok {
			return errors.Wrap(&ValidationError{Label: e.From, Message: "edge references a label with no block"}, "cfg: invalid program")
		}
		if _, ok := blocks[e.To]; !ok {
			return errors.Wrap(&ValidationError{Label: e.To, Message: "edge references a label with no block"}, "cfg: invalid program")
		}
	}

	graph := NewGraph(flow)
	init := Init(program)
	for l := range blocks {
		if l == init {
			continue
		}
		if len(graph.Predecessors(l)) == 0 {
			return errors.Wrap(&ValidationError{Label: l, Message: "block is unreachable from the program's entry"}, "cfg: invalid program")
		}
	}
	return nil
}
