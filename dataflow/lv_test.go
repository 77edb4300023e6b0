package dataflow

import (
	"testing"

	"github.com/labm1997/monoflow/ast"
	"github.com/labm1997/monoflow/cfg"
	"github.com/stretchr/testify/require"
)

// scenario3 builds:
//
//	1: x = 2
//	2: y = 4
//	3: x = 1
//	4: if y > x then 5: z = y else 6: z = y*y
//	7: x = z
func scenario3() ast.Stmt {
	then := ast.NewAssign("z", ast.Var{Name: "y"}, 5)
	els := ast.NewAssign("z", ast.Mul{Left: ast.Var{Name: "y"}, Right: ast.Var{Name: "y"}}, 6)
	ifStmt := ast.NewIf(ast.GT{Left: ast.Var{Name: "y"}, Right: ast.Var{Name: "x"}}, 4, then, els)

	return ast.NewSeq(
		ast.NewAssign("x", ast.Num{Value: 2}, 1),
		ast.NewSeq(
			ast.NewAssign("y", ast.Num{Value: 4}, 2),
			ast.NewSeq(
				ast.NewAssign("x", ast.Num{Value: 1}, 3),
				ast.NewSeq(ifStmt, ast.NewAssign("x", ast.Var{Name: "z"}, 7)),
			),
		),
	)
}

func TestLV_Scenario3(t *testing.T) {
	program := scenario3()
	a := NewLV(program)
	res := Solve(a)

	wantExit := map[cfg.Label][]string{
		1: {},
		2: {"y"},
		3: {"x", "y"},
		4: {"y"},
		5: {"z"},
		6: {"z"},
		7: {},
	}
	for l, want := range wantExit {
		require.True(t, res.Exit[l].Equal(a.universe.Of(want...)), "exit at %d: got %v want %v", l, res.Exit[l].Items(), want)
	}

	require.True(t, res.Entry[4].Equal(a.universe.Of("x", "y")))
	require.True(t, res.Entry[7].Equal(a.universe.Of("z")))
}
