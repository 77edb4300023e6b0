package dataflow

import (
	"testing"

	"github.com/labm1997/monoflow/ast"
	"github.com/labm1997/monoflow/cfg"
	"github.com/stretchr/testify/require"
)

// scenario1 builds:
//
//	1: x = a+b
//	2: y = a*b
//	3: while y > a+b {
//	4:   a = a+1
//	5:   x = a+b
//	}
func scenario1() ast.Stmt {
	aPlusB := ast.Add{Left: ast.Var{Name: "a"}, Right: ast.Var{Name: "b"}}
	body := ast.NewSeq(
		ast.NewAssign("a", ast.Add{Left: ast.Var{Name: "a"}, Right: ast.Num{Value: 1}}, 4),
		ast.NewAssign("x", ast.Add{Left: ast.Var{Name: "a"}, Right: ast.Var{Name: "b"}}, 5),
	)
	loop := ast.NewWhile(ast.GT{Left: ast.Var{Name: "y"}, Right: aPlusB}, 3, body)
	return ast.NewSeq(
		ast.NewAssign("x", aPlusB, 1),
		ast.NewSeq(ast.NewAssign("y", ast.Mul{Left: ast.Var{Name: "a"}, Right: ast.Var{Name: "b"}}, 2), loop),
	)
}

func TestAE_Scenario1(t *testing.T) {
	program := scenario1()
	a := NewAE(program)
	res := Solve(a)

	aPlusB := ast.Add{Left: ast.Var{Name: "a"}, Right: ast.Var{Name: "b"}}
	aTimesB := ast.Mul{Left: ast.Var{Name: "a"}, Right: ast.Var{Name: "b"}}

	wantEntry := map[cfg.Label][]ast.Arith{
		1: {},
		2: {aPlusB},
		3: {aPlusB},
		4: {aPlusB},
		5: {},
	}
	wantExit := map[cfg.Label][]ast.Arith{
		1: {aPlusB},
		2: {aPlusB, aTimesB},
		3: {aPlusB},
		4: {},
		5: {aPlusB},
	}

	for l, want := range wantEntry {
		require.True(t, res.Entry[l].Equal(a.universe.Of(want...)), "entry at %d: got %v want %v", l, res.Entry[l].Items(), want)
	}
	for l, want := range wantExit {
		require.True(t, res.Exit[l].Equal(a.universe.Of(want...)), "exit at %d: got %v want %v", l, res.Exit[l].Items(), want)
	}
}
