package cfg

import "github.com/labm1997/monoflow/ast"

// FreeVarsArith returns the variables occurring in an arithmetic
// expression.
func FreeVarsArith(e ast.Arith) []string {
	switch e := e.(type) {
	case ast.Var:
		return []string{e.Name}
	case ast.Num:
		return nil
	case ast.Add:
		return append(FreeVarsArith(e.Left), FreeVarsArith(e.Right)...)
	case ast.Sub:
		return append(FreeVarsArith(e.Left), FreeVarsArith(e.Right)...)
	case ast.Mul:
		return append(FreeVarsArith(e.Left), FreeVarsArith(e.Right)...)
	case ast.Div:
		return append(FreeVarsArith(e.Left), FreeVarsArith(e.Right)...)
	default:
		panic("cfg: unknown ast.Arith variant")
	}
}

// FreeVarsBool returns the variables occurring in a boolean or
// relational expression.
func FreeVarsBool(e ast.Bool) []string {
	switch e := e.(type) {
	case ast.True:
		return nil
	case ast.False:
		return nil
	case ast.Not:
		return FreeVarsBool(e.Exp)
	case ast.And:
		return append(FreeVarsBool(e.Left), FreeVarsBool(e.Right)...)
	case ast.Or:
		return append(FreeVarsBool(e.Left), FreeVarsBool(e.Right)...)
	case ast.Eq:
		return append(FreeVarsArith(e.Left), FreeVarsArith(e.Right)...)
	case ast.GT:
		return append(FreeVarsArith(e.Left), FreeVarsArith(e.Right)...)
	case ast.LT:
		return append(FreeVarsArith(e.Left), FreeVarsArith(e.Right)...)
	case ast.GEq:
		return append(FreeVarsArith(e.Left), FreeVarsArith(e.Right)...)
	case ast.LEq:
		return append(FreeVarsArith(e.Left), FreeVarsArith(e.Right)...)
	default:
		panic("cfg: unknown ast.Bool variant")
	}
}

// FreeVars returns the variables occurring anywhere in statement s,
// including inside conditions.
func FreeVars(s ast.Stmt) []string {
	switch s := s.(type) {
	case ast.Assign:
		return FreeVarsArith(s.Exp)
	case ast.Skip:
		return nil
	case ast.Seq:
		return append(FreeVars(s.S1), FreeVars(s.S2)...)
	case ast.If:
		vars := FreeVarsBool(s.Cond)
		vars = append(vars, FreeVars(s.Then)...)
		vars = append(vars, FreeVars(s.Else)...)
		return vars
	case ast.While:
		return append(FreeVarsBool(s.Cond), FreeVars(s.Body)...)
	default:
		panic("cfg: unknown ast.Stmt variant")
	}
}
