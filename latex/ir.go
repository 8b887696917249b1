package latex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// BracketType is the kind of brackets surrounding an IR node.
type BracketType int8

// Bracket types
const (
	NoBrackets BracketType = iota
	Curly                  // { }
	Square                 // [ ]
	Round                  // ( )
	Angle                  // ⟨ ⟩
)

// Open returns the opening bracket, or an empty string.
func (b BracketType) Open() string {
	switch b {
	case Curly:
		return "{"
	case Square:
		return "["
	case Round:
		return "("
	case Angle:
		return "⟨"
	}
	return ""
}

// Close returns the closing bracket, or an empty string.
func (b BracketType) Close() string {
	switch b {
	case Curly:
		return "}"
	case Square:
		return "]"
	case Round:
		return ")"
	case Angle:
		return "⟩"
	}
	return ""
}

func openingBracket(r rune) (BracketType, bool) {
	switch r {
	case '{':
		return Curly, true
	case '[':
		return Square, true
	case '(':
		return Round, true
	case '⟨':
		return Angle, true
	}
	return NoBrackets, false
}

func isClosingBracket(r rune) bool {
	return r == '}' || r == ']' || r == ')' || r == '⟩'
}

// Names of IR nodes which are not operators or leaves.
const (
	opAdd    = "+"
	opSub    = "-"
	opMul    = "*"
	opDiv    = "/"
	opPow    = "^"
	opEquals = "="
	cmdFrac  = `\frac`
	cmdSqrt  = `\sqrt`
	cmdSin   = `\sin`
	cmdCos   = `\cos`
	cmdLn    = `\ln`
	cmdVec   = `\vec`
	cmdRm    = `\mathrm`
	cmdPi    = `\pi`
	group    = "" // a bracket group around an already bracketed node
)

// IR is an intermediate representation of a formula: a homogenous tree of
// named nodes. Operators, e.g. "+", and commands, e.g. `\frac`, have children,
// leaves (numbers, variables, constants) have none. The brackets surrounding
// a node in the source text are remembered for re-creating the text.
type IR struct {
	Name     string
	Children []*IR
	Brackets BracketType
}

func leaf(name string) *IR {
	return &IR{Name: name}
}

func node(name string, children ...*IR) *IR {
	return &IR{Name: name, Children: children}
}

// IsLeaf is true for nodes without children.
func (ir *IR) IsLeaf() bool {
	return len(ir.Children) == 0
}

// String returns a Lisp-like representation of an IR tree, for debugging.
func (ir *IR) String() string {
	if ir == nil {
		return "nil"
	}
	var b strings.Builder
	b.WriteString(ir.Brackets.Open())
	if ir.IsLeaf() {
		b.WriteString(ir.Name)
	} else {
		b.WriteByte('(')
		b.WriteString(ir.Name)
		for _, ch := range ir.Children {
			b.WriteByte(' ')
			b.WriteString(ch.String())
		}
		b.WriteByte(')')
	}
	b.WriteString(ir.Brackets.Close())
	return b.String()
}

// LaTeX creates LaTeX text for an IR tree. Multiplication signs are emitted
// explicitly.
func (ir *IR) LaTeX() string {
	var b strings.Builder
	ir.write(&b, false)
	return b.String()
}

// write writes a node including its brackets.
func (ir *IR) write(b *strings.Builder, implicit bool) {
	b.WriteString(ir.Brackets.Open())
	ir.writeBody(b, implicit)
	b.WriteString(ir.Brackets.Close())
}

func (ir *IR) writeBody(b *strings.Builder, implicit bool) {
	if ir.IsLeaf() {
		b.WriteString(ir.Name)
		return
	}
	switch ir.Name {
	case opSub:
		if len(ir.Children) == 1 {
			b.WriteString(opSub)
			ir.Children[0].write(b, implicit)
			return
		}
		ir.writeInfix(b, implicit)
	case opAdd, opMul, opDiv, opPow, opEquals:
		ir.writeInfix(b, implicit)
	case cmdFrac:
		b.WriteString(cmdFrac)
		for _, ch := range ir.Children {
			ch.writeArgument(b, implicit, Curly)
		}
	case cmdSqrt:
		b.WriteString(cmdSqrt)
		if len(ir.Children) > 1 {
			ir.Children[1].writeArgument(b, implicit, Square)
		}
		ir.Children[0].writeArgument(b, implicit, Curly)
	case cmdVec, cmdRm:
		b.WriteString(ir.Name)
		ir.Children[0].writeArgument(b, implicit, Curly)
	case cmdSin, cmdCos, cmdLn:
		b.WriteString(ir.Name)
		ir.Children[0].writeArgument(b, implicit, Round)
	case group:
		ir.Children[0].write(b, implicit)
	default:
		b.WriteString(ir.Name)
		for _, ch := range ir.Children {
			ch.writeArgument(b, implicit, Curly)
		}
	}
}

// writeArgument writes the argument of a command. Arguments without
// brackets are enclosed in default brackets.
func (ir *IR) writeArgument(b *strings.Builder, implicit bool, defaultBrackets BracketType) {
	if ir.Brackets != NoBrackets {
		ir.write(b, implicit)
		return
	}
	b.WriteString(defaultBrackets.Open())
	ir.writeBody(b, implicit)
	b.WriteString(defaultBrackets.Close())
}

func (ir *IR) writeInfix(b *strings.Builder, implicit bool) {
	for i, ch := range ir.Children {
		if i > 0 {
			if !(ir.Name == opMul && implicit && juxtaposable(ir.Children[i-1], ch)) {
				b.WriteString(ir.Name)
			}
		}
		ch.write(b, implicit)
	}
}

// juxtaposable checks if two factors may be written without a multiplication
// sign between them, and still be read back as a product: a number followed by
// a variable, or a variable or number followed by a bracket group.
func juxtaposable(left, right *IR) bool {
	if !left.IsLeaf() || left.Brackets != NoBrackets {
		return false
	}
	if right.Brackets == Round {
		return true
	}
	if !isNumeral(left.Name) || right.Brackets != NoBrackets {
		return false
	}
	switch {
	case right.IsLeaf():
		return !isNumeral(right.Name)
	case right.Name == cmdVec || right.Name == cmdRm:
		return true
	case right.Name == opPow:
		base := right.Children[0]
		return base.IsLeaf() && base.Brackets == NoBrackets && !isNumeral(base.Name)
	}
	return false
}

func isNumeral(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}
