package report_test

import (
	"bytes"
	"testing"

	"github.com/labm1997/monoflow/ast"
	"github.com/labm1997/monoflow/cfg"
	"github.com/labm1997/monoflow/dataflow"
	"github.com/labm1997/monoflow/internal/fset"
	"github.com/labm1997/monoflow/report"
	"github.com/stretchr/testify/require"
)

// program is 1: x = a+b; 2: y = a*b.
func program() ast.Stmt {
	return ast.NewSeq(
		ast.NewAssign("x", ast.Add{Left: ast.Var{Name: "a"}, Right: ast.Var{Name: "b"}}, 1),
		ast.NewAssign("y", ast.Mul{Left: ast.Var{Name: "a"}, Right: ast.Var{Name: "b"}}, 2),
	)
}

func TestEmit_VisitsLabelsInAscendingOrder(t *testing.T) {
	s := program()
	a := dataflow.NewAE(s)
	res := dataflow.Solve(a)

	var visited []cfg.Label
	sink := recordingSink{visit: func(l cfg.Label) { visited = append(visited, l) }}

	report.Emit(res, []cfg.Label{2, 1}, sink)

	require.Equal(t, []cfg.Label{1, 2}, visited)
}

type recordingSink struct {
	visit func(cfg.Label)
}

func (r recordingSink) Report(label cfg.Label, entry, exit *fset.Set[ast.Arith]) { r.visit(label) }

func TestPrinter_WritesOneLinePerLabel(t *testing.T) {
	s := program()
	a := dataflow.NewAE(s)
	res := dataflow.Solve(a)

	var buf bytes.Buffer
	printer := report.NewPrinter[ast.Arith](&buf)
	report.Emit(res, a.Labels(), printer)

	out := buf.String()
	require.Contains(t, out, "1:")
	require.Contains(t, out, "2:")
}
