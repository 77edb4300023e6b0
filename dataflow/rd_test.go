package dataflow

import (
	"testing"

	"github.com/labm1997/monoflow/ast"
	"github.com/labm1997/monoflow/cfg"
	"github.com/stretchr/testify/require"
)

// scenario2 builds:
//
//	1: x = 5
//	2: y = 1
//	3: while x > 1 {
//	4:   y = x*y
//	5:   x = x-1
//	}
func scenario2() ast.Stmt {
	body := ast.NewSeq(
		ast.NewAssign("y", ast.Mul{Left: ast.Var{Name: "x"}, Right: ast.Var{Name: "y"}}, 4),
		ast.NewAssign("x", ast.Sub{Left: ast.Var{Name: "x"}, Right: ast.Num{Value: 1}}, 5),
	)
	loop := ast.NewWhile(ast.GT{Left: ast.Var{Name: "x"}, Right: ast.Num{Value: 1}}, 3, body)
	return ast.NewSeq(
		ast.NewAssign("x", ast.Num{Value: 5}, 1),
		ast.NewSeq(ast.NewAssign("y", ast.Num{Value: 1}, 2), loop),
	)
}

func TestRD_Scenario2(t *testing.T) {
	program := scenario2()
	a := NewRD(program)
	res := Solve(a)

	require.True(t, res.Entry[1].Equal(a.universe.Of(
		RDFact{Name: "x", Def: cfg.Undef},
		RDFact{Name: "y", Def: cfg.Undef},
	)))

	require.True(t, res.Entry[3].Equal(a.universe.Of(
		RDFact{Name: "x", Def: 1},
		RDFact{Name: "x", Def: 5},
		RDFact{Name: "y", Def: 2},
		RDFact{Name: "y", Def: 4},
	)))

	require.True(t, res.Entry[5].Equal(a.universe.Of(
		RDFact{Name: "x", Def: 1},
		RDFact{Name: "x", Def: 5},
		RDFact{Name: "y", Def: 4},
	)))
}
