package cfg

import "github.com/labm1997/monoflow/ast"

// ComplexExprsArith returns every complex (binary) arithmetic
// subexpression of e, including e itself if it is binary. Var and Num
// contribute nothing on their own.
func ComplexExprsArith(e ast.Arith) []ast.Arith {
	switch e := e.(type) {
	case ast.Var:
		return nil
	case ast.Num:
		return nil
	case ast.Add:
		return append(append([]ast.Arith{e}, ComplexExprsArith(e.Left)...), ComplexExprsArith(e.Right)...)
	case ast.Sub:
		return append(append([]ast.Arith{e}, ComplexExprsArith(e.Left)...), ComplexExprsArith(e.Right)...)
	case ast.Mul:
		return append(append([]ast.Arith{e}, ComplexExprsArith(e.Left)...), ComplexExprsArith(e.Right)...)
	case ast.Div:
		return append(append([]ast.Arith{e}, ComplexExprsArith(e.Left)...), ComplexExprsArith(e.Right)...)
	default:
		panic("cfg: unknown ast.Arith variant")
	}
}

// ComplexExprsBool returns the complex arithmetic subexpressions
// occurring inside a boolean or relational expression: the arithmetic
// operands of relational comparisons, recursively through and/or/not.
func ComplexExprsBool(e ast.Bool) []ast.Arith {
	switch e := e.(type) {
	case ast.True:
		return nil
	case ast.False:
		return nil
	case ast.Not:
		return ComplexExprsBool(e.Exp)
	case ast.And:
		return append(ComplexExprsBool(e.Left), ComplexExprsBool(e.Right)...)
	case ast.Or:
		return append(ComplexExprsBool(e.Left), ComplexExprsBool(e.Right)...)
	case ast.Eq:
		return append(ComplexExprsArith(e.Left), ComplexExprsArith(e.Right)...)
	case ast.GT:
		return append(ComplexExprsArith(e.Left), ComplexExprsArith(e.Right)...)
	case ast.LT:
		return append(ComplexExprsArith(e.Left), ComplexExprsArith(e.Right)...)
	case ast.GEq:
		return append(ComplexExprsArith(e.Left), ComplexExprsArith(e.Right)...)
	case ast.LEq:
		return append(ComplexExprsArith(e.Left), ComplexExprsArith(e.Right)...)
	default:
		panic("cfg: unknown ast.Bool variant")
	}
}

// ComplexExprs returns the set of distinct complex arithmetic
// subexpressions occurring anywhere in s, including inside conditions,
// in structural discovery order with duplicates removed.
func ComplexExprs(s ast.Stmt) []ast.Arith {
	return dedupArith(complexExprsStmt(s))
}

func complexExprsStmt(s ast.Stmt) []ast.Arith {
	switch s := s.(type) {
	case ast.Assign:
		return ComplexExprsArith(s.Exp)
	case ast.Skip:
		return nil
	case ast.Seq:
		return append(complexExprsStmt(s.S1), complexExprsStmt(s.S2)...)
	case ast.If:
		exprs := ComplexExprsBool(s.Cond)
		exprs = append(exprs, complexExprsStmt(s.Then)...)
		exprs = append(exprs, complexExprsStmt(s.Else)...)
		return exprs
	case ast.While:
		return append(ComplexExprsBool(s.Cond), complexExprsStmt(s.Body)...)
	default:
		panic("cfg: unknown ast.Stmt variant")
	}
}

func dedupArith(exprs []ast.Arith) []ast.Arith {
	seen := make(map[ast.Arith]struct{}, len(exprs))
	out := make([]ast.Arith, 0, len(exprs))
	for _, e := range exprs {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
