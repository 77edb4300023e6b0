package ast

import "fmt"

// String renders an arithmetic expression in ordinary infix notation.
// It exists so fact sets of Arith values (Available/Very Busy
// Expressions) print readably through report.Printer without that
// package needing to know about ast's concrete types.
func (v Var) String() string { return v.Name }
func (n Num) String() string { return fmt.Sprintf("%d", n.Value) }
func (a Add) String() string { return fmt.Sprintf("(%v+%v)", a.Left, a.Right) }
func (s Sub) String() string { return fmt.Sprintf("(%v-%v)", s.Left, s.Right) }
func (m Mul) String() string { return fmt.Sprintf("(%v*%v)", m.Left, m.Right) }
func (d Div) String() string { return fmt.Sprintf("(%v/%v)", d.Left, d.Right) }

func (True) String() string  { return "true" }
func (False) String() string { return "false" }
func (n Not) String() string { return fmt.Sprintf("!%v", n.Exp) }
func (a And) String() string { return fmt.Sprintf("(%v && %v)", a.Left, a.Right) }
func (o Or) String() string  { return fmt.Sprintf("(%v || %v)", o.Left, o.Right) }
func (e Eq) String() string  { return fmt.Sprintf("(%v == %v)", e.Left, e.Right) }
func (g GT) String() string  { return fmt.Sprintf("(%v > %v)", g.Left, g.Right) }
func (l LT) String() string  { return fmt.Sprintf("(%v < %v)", l.Left, l.Right) }
func (g GEq) String() string { return fmt.Sprintf("(%v >= %v)", g.Left, g.Right) }
func (l LEq) String() string { return fmt.Sprintf("(%v <= %v)", l.Left, l.Right) }
