// Package cfg derives the syntactic objects a dataflow analysis needs
// from an ast.Stmt: the elementary blocks, the forward and reverse flow
// graphs, the free-variable and complex-subexpression universes, and
// a gonum-backed directed graph the solver walks for successor lookups.
//
// Every function here is a pure structural recursion over the AST:
// none of them mutate the AST or retain state across calls.
package cfg

import "github.com/labm1997/monoflow/ast"

// Label identifies a program point; Undef marks "defined on entry".
type Label = ast.Label

// Undef is the reaching-definitions sentinel label.
const Undef = ast.Undef

// Edge is a directed flow-graph edge between two labels.
type Edge struct {
	From, To Label
}

// Block is the elementary unit of the flow graph: an assignment, a
// skip, or a condition lifted out of an If or While.
type Block interface {
	BlockLabel() Label
	block()
}

// AssignBlock is an assignment statement viewed as a block.
type AssignBlock struct {
	Name string
	Exp  ast.Arith
	Lbl  Label
}

// SkipBlock is a skip statement viewed as a block.
type SkipBlock struct {
	Lbl Label
}

// CondBlock is the condition of an If or While, lifted into its own
// block.
type CondBlock struct {
	Cond ast.Bool
	Lbl  Label
}

func (b AssignBlock) BlockLabel() Label { return b.Lbl }
func (b SkipBlock) BlockLabel() Label   { return b.Lbl }
func (b CondBlock) BlockLabel() Label   { return b.Lbl }

func (AssignBlock) block() {}
func (SkipBlock) block()   {}
func (CondBlock) block()   {}

// Blocks returns the elementary blocks of s, in the order described by
// the language's structural recursion: Assignment/Skip yield
// themselves; Sequence concatenates its children's blocks; IfElse
// yields its condition block followed by both branches' blocks; While
// yields its condition block followed by its body's blocks.
func Blocks(s ast.Stmt) []Block {
	switch s := s.(type) {
	case ast.Assign:
		return []Block{AssignBlock{Name: s.Name, Exp: s.Exp, Lbl: s.Lbl}}
	case ast.Skip:
		return []Block{SkipBlock{Lbl: s.Lbl}}
	case ast.Seq:
		return append(Blocks(s.S1), Blocks(s.S2)...)
	case ast.If:
		blocks := []Block{CondBlock{Cond: s.Cond, Lbl: s.CondLbl}}
		blocks = append(blocks, Blocks(s.Then)...)
		blocks = append(blocks, Blocks(s.Else)...)
		return blocks
	case ast.While:
		blocks := []Block{CondBlock{Cond: s.Cond, Lbl: s.CondLbl}}
		blocks = append(blocks, Blocks(s.Body)...)
		return blocks
	default:
		panic("cfg: unknown ast.Stmt variant")
	}
}

// Labels returns the label of every elementary block of s.
func Labels(s ast.Stmt) []Label {
	blocks := Blocks(s)
	labels := make([]Label, len(blocks))
	for i, b := range blocks {
		labels[i] = b.BlockLabel()
	}
	return labels
}

// BlockMap indexes the elementary blocks of s by label. Duplicate
// labels silently overwrite earlier entries; use Validate to detect
// duplicates as a precondition violation instead.
func BlockMap(s ast.Stmt) map[Label]Block {
	blocks := Blocks(s)
	m := make(map[Label]Block, len(blocks))
	for _, b := range blocks {
		m[b.BlockLabel()] = b
	}
	return m
}

// Assignments returns every Assignment block in s, in the order
// assignments appear structurally. Used to build Reaching Definitions'
// kill universe.
func Assignments(s ast.Stmt) []AssignBlock {
	switch s := s.(type) {
	case ast.Assign:
		return []AssignBlock{{Name: s.Name, Exp: s.Exp, Lbl: s.Lbl}}
	case ast.Skip:
		return nil
	case ast.Seq:
		return append(Assignments(s.S1), Assignments(s.S2)...)
	case ast.If:
		return append(Assignments(s.Then), Assignments(s.Else)...)
	case ast.While:
		return Assignments(s.Body)
	default:
		panic("cfg: unknown ast.Stmt variant")
	}
}
