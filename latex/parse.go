package latex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"regexp"
	"strings"

	"github.com/npillmayer/fishrambeta"
	"github.com/npillmayer/fishrambeta/expr"
)

// Parse parses LaTeX text into an expression. If implicit is set, adjacent
// operands denote a product.
func Parse(text string, implicit bool) (expr.Expression, error) {
	ir, err := ParseIR(text, implicit)
	if err != nil {
		return nil, err
	}
	return ir.Expression()
}

// ParseIR parses LaTeX text into an IR tree.
func ParseIR(text string, implicit bool) (*IR, error) {
	clean := cleanup(text)
	if clean == "" {
		return nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "empty formula")
	}
	input := []rune(clean)
	if err := checkBrackets(input); err != nil {
		return nil, err
	}
	p := parser{implicit: implicit}
	ir, err := p.parse(input, NoBrackets)
	if err != nil {
		tracer().Debugf("cannot parse %q: %v", text, err)
		return nil, err
	}
	tracer().Debugf("parsed %q as %s", text, ir)
	return ir, nil
}

// --- Preprocessing ---------------------------------------------------------

var (
	sizingPrefix   = regexp.MustCompile(`\\(?:left|right)([^a-zA-Z]|$)`)
	multiplication = regexp.MustCompile(`\\(?:cdot|times)`)
	controlWordGap = regexp.MustCompile(`(\\[a-zA-Z]+)\s+([a-zA-Z0-9])`)
	whitespace     = regexp.MustCompile(`\s+`)
)

// cleanup normalizes LaTeX text before parsing. Whitespace terminating a
// control word is replaced by an empty group, all other whitespace is dropped.
func cleanup(text string) string {
	text = sizingPrefix.ReplaceAllString(text, "${1}")
	text = multiplication.ReplaceAllString(text, "*")
	text = controlWordGap.ReplaceAllString(text, "${1}{}${2}")
	return whitespace.ReplaceAllString(text, "")
}

// checkBrackets checks that brackets are balanced and properly nested.
func checkBrackets(text []rune) error {
	var stack []BracketType
	for _, r := range text {
		if bt, ok := openingBracket(r); ok {
			stack = append(stack, bt)
			continue
		}
		if !isClosingBracket(r) {
			continue
		}
		if len(stack) == 0 {
			return fishrambeta.Errorf(fishrambeta.MalformedInput, "unbalanced closing bracket %q", r)
		}
		if bt := stack[len(stack)-1]; bt.Close() != string(r) {
			return fishrambeta.Errorf(fishrambeta.MalformedInput, "bracket %s closed by %q", bt.Open(), r)
		}
		stack = stack[:len(stack)-1]
	}
	if len(stack) > 0 {
		return fishrambeta.Errorf(fishrambeta.MalformedInput, "%d unclosed bracket(s)", len(stack))
	}
	return nil
}

// closingIndex returns the position of the bracket closing the one at start,
// or -1.
func closingIndex(text []rune, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		if _, ok := openingBracket(text[i]); ok {
			depth++
		} else if isClosingBracket(text[i]) {
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// --- Parser ----------------------------------------------------------------

type parser struct {
	implicit bool
}

// operators collects the positions of operators outside of brackets.
type operators struct {
	equals, additive, multiplicative, carets []int
}

func scanOperators(text []rune) operators {
	var ops operators
	depth := 0
	for i, r := range text {
		if _, ok := openingBracket(r); ok {
			depth++
			continue
		} else if isClosingBracket(r) {
			depth--
			continue
		}
		if depth > 0 {
			continue
		}
		switch r {
		case '=':
			ops.equals = append(ops.equals, i)
		case '+', '-':
			if i > 0 && !strings.ContainsRune("+-*/^=", text[i-1]) {
				ops.additive = append(ops.additive, i)
			}
		case '*', '/':
			ops.multiplicative = append(ops.multiplicative, i)
		case '^':
			ops.carets = append(ops.carets, i)
		}
	}
	return ops
}

// parse parses a piece of text. brackets are the brackets which surrounded
// the text in the input.
func (p parser) parse(text []rune, brackets BracketType) (*IR, error) {
	if len(text) == 0 {
		return nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "missing operand")
	}
	ops := scanOperators(text)
	switch {
	case len(ops.equals) > 1:
		return nil, fishrambeta.Errorf(fishrambeta.Unsupported, "chained equation %q", string(text))
	case len(ops.equals) == 1:
		return p.infix(opEquals, text, ops.equals[0], brackets)
	case len(ops.additive) > 0:
		k := ops.additive[len(ops.additive)-1]
		return p.infix(string(text[k]), text, k, brackets)
	case text[0] == '-':
		operand, err := p.parse(text[1:], NoBrackets)
		if err != nil {
			return nil, err
		}
		return &IR{Name: opSub, Children: []*IR{operand}, Brackets: brackets}, nil
	case text[0] == '+':
		return p.parse(text[1:], brackets)
	case len(ops.multiplicative) > 0:
		k := ops.multiplicative[len(ops.multiplicative)-1]
		return p.infix(string(text[k]), text, k, brackets)
	}
	if powers := p.powers(text, ops.carets); len(powers) > 0 {
		return p.power(text, powers, brackets)
	}
	if bt, ok := openingBracket(text[0]); ok && closingIndex(text, 0) == len(text)-1 {
		inner, err := p.parse(text[1:len(text)-1], bt)
		if err != nil {
			return nil, err
		}
		return withBrackets(inner, brackets), nil
	}
	if text[0] == '\\' {
		return p.command(text, brackets)
	}
	return p.operands(string(text), brackets)
}

// infix splits text at an operator at position k. Operands are left
// associative, chains of +, - and * are flattened.
func (p parser) infix(op string, text []rune, k int, brackets BracketType) (*IR, error) {
	left, err := p.parse(text[:k], NoBrackets)
	if err != nil {
		return nil, err
	}
	right, err := p.parse(text[k+1:], NoBrackets)
	if err != nil {
		return nil, err
	}
	if op != opDiv && op != opEquals && left.Name == op &&
		left.Brackets == NoBrackets && len(left.Children) > 1 {
		left.Children = append(left.Children, right)
		left.Brackets = brackets
		return left, nil
	}
	return &IR{Name: op, Children: []*IR{left, right}, Brackets: brackets}, nil
}

// powers selects the carets which split text into the segments of a power.
func (p parser) powers(text []rune, carets []int) []int {
	var powers []int
	prev := -1
	for _, c := range carets {
		if caretIsPower(text, c) && (prev < 0 || p.isStandalone(text[prev+1:c])) {
			powers = append(powers, c)
		}
		prev = c
	}
	return powers
}

// caretIsPower is false for a caret denoting the upper bound of an integral.
func caretIsPower(text []rune, caret int) bool {
	start := -1
	for i := caret - 1; i >= 0; i-- {
		if text[i] == '\\' {
			start = i
			break
		}
	}
	if start < 0 {
		return true
	}
	word := text[start+1 : caret]
	for i, r := range word {
		if r == '{' && i > 0 && word[i-1] != '_' {
			return true
		}
	}
	for i, r := range word {
		if r == '_' {
			word = word[:i]
			break
		}
	}
	return string(word) != "int"
}

// isStandalone checks if the text between two carets is a single
// expression, which is required for the second caret to start a new segment.
func (p parser) isStandalone(between []rune) bool {
	if len(between) <= 1 {
		return false
	}
	if _, ok := openingBracket(between[0]); ok {
		return closingIndex(between, 0) == len(between)-1
	}
	if !p.implicit {
		return false
	}
	for _, r := range between {
		if !isLetter(r) {
			return false
		}
	}
	return true
}

// power splits text at the given carets. With implicit multiplication, an
// unbracketed product left of the first caret contributes only its last factor
// to the base, and an unbracketed product right of the last caret contributes
// only its first factor to the exponent. Thus 2x^2 is read as 2·x².
func (p parser) power(text []rune, carets []int, brackets BracketType) (*IR, error) {
	segments := make([]*IR, 0, len(carets)+1)
	start := 0
	for i := 0; i <= len(carets); i++ {
		end := len(text)
		if i < len(carets) {
			end = carets[i]
		}
		segment, err := p.parse(text[start:end], NoBrackets)
		if err != nil {
			return nil, err
		}
		segments = append(segments, segment)
		start = end + 1
	}
	var prefix, suffix []*IR
	if first := segments[0]; isJuxtaposition(first) {
		n := len(first.Children)
		prefix = first.Children[:n-1]
		segments[0] = first.Children[n-1]
	}
	if last := segments[len(segments)-1]; isJuxtaposition(last) {
		suffix = last.Children[1:]
		segments[len(segments)-1] = last.Children[0]
	}
	pow := node(opPow, segments...)
	if prefix == nil && suffix == nil {
		pow.Brackets = brackets
		return pow, nil
	}
	factors := make([]*IR, 0, len(prefix)+len(suffix)+1)
	factors = append(factors, prefix...)
	factors = append(factors, pow)
	factors = append(factors, suffix...)
	return &IR{Name: opMul, Children: factors, Brackets: brackets}, nil
}

// isJuxtaposition is true for products of a power segment. As a segment
// contains no top-level operators, these cannot stem from an explicit '*'.
func isJuxtaposition(ir *IR) bool {
	return ir.Name == opMul && ir.Brackets == NoBrackets && len(ir.Children) > 1
}

// withBrackets attaches brackets to a node, wrapping it into a group node if
// it already has brackets.
func withBrackets(ir *IR, bt BracketType) *IR {
	if bt == NoBrackets {
		return ir
	}
	if ir.Brackets == NoBrackets {
		ir.Brackets = bt
		return ir
	}
	return &IR{Name: group, Children: []*IR{ir}, Brackets: bt}
}

// --- Commands --------------------------------------------------------------

// command parses text starting with a backslash.
func (p parser) command(text []rune, brackets BracketType) (*IR, error) {
	name, rest := controlWord(text)
	if name == "" {
		return nil, fishrambeta.Errorf(fishrambeta.Unsupported, "cannot interpret %q", string(text))
	}
	var cmd *IR
	var err error
	multiplies := true // trailing text is a factor
	switch name {
	case "int":
		return nil, fishrambeta.Errorf(fishrambeta.Unsupported, "integrals are not supported")
	case "frac":
		rest = skipEmptyGroup(rest)
		var num, den *IR
		if num, rest, err = p.argument(rest); err != nil {
			return nil, err
		}
		if den, rest, err = p.argument(rest); err != nil {
			return nil, err
		}
		cmd = node(cmdFrac, num, den)
	case "sqrt":
		rest = skipEmptyGroup(rest)
		var degree *IR
		if len(rest) > 0 && rest[0] == '[' {
			end := closingIndex(rest, 0)
			if degree, err = p.parse(rest[1:end], Square); err != nil {
				return nil, err
			}
			rest = rest[end+1:]
		}
		var arg *IR
		if arg, rest, err = p.argument(rest); err != nil {
			return nil, err
		}
		cmd = node(cmdSqrt, arg)
		if degree != nil {
			cmd.Children = append(cmd.Children, degree)
		}
	case "sin", "cos", "ln":
		rest = skipEmptyGroup(rest)
		var arg *IR
		if _, ok := openingBracket(first(rest)); ok {
			arg, rest, err = p.argument(rest)
		} else {
			arg, err = p.parse(rest, NoBrackets)
			rest = nil
		}
		if err != nil {
			return nil, err
		}
		cmd = node(`\`+name, arg)
	case "vec", "mathrm":
		rest = skipEmptyGroup(rest)
		var arg *IR
		if arg, rest, err = p.argument(rest); err != nil {
			return nil, err
		}
		if !arg.IsLeaf() {
			return nil, fishrambeta.Errorf(fishrambeta.Unsupported, `\%s needs a name, have %s`, name, arg)
		}
		cmd = node(`\`+name, arg)
		multiplies = name == "vec" || p.implicit
	case "pi":
		cmd = leaf(cmdPi)
		rest = skipEmptyGroup(rest)
		multiplies = p.implicit
	default:
		var sub string
		if sub, rest, err = subscriptOf(rest); err != nil {
			return nil, err
		}
		cmd = leaf(`\` + name + sub)
		rest = skipEmptyGroup(rest)
		multiplies = p.implicit
	}
	if len(rest) == 0 {
		return withBrackets(cmd, brackets), nil
	}
	if !multiplies {
		return nil, fishrambeta.Errorf(fishrambeta.Unsupported, "unexpected %q after \\%s", string(rest), name)
	}
	factor, err := p.parse(rest, NoBrackets)
	if err != nil {
		return nil, err
	}
	factors := []*IR{cmd}
	if isJuxtaposition(factor) {
		factors = append(factors, factor.Children...)
	} else {
		factors = append(factors, factor)
	}
	return &IR{Name: opMul, Children: factors, Brackets: brackets}, nil
}

// argument reads the argument of a command: a bracket group or a single
// character.
func (p parser) argument(text []rune) (*IR, []rune, error) {
	if len(text) == 0 {
		return nil, nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "missing argument")
	}
	if bt, ok := openingBracket(text[0]); ok {
		end := closingIndex(text, 0)
		arg, err := p.parse(text[1:end], bt)
		return arg, text[end+1:], err
	}
	if text[0] == '\\' {
		return nil, nil, fishrambeta.Errorf(fishrambeta.Unsupported, "unbraced command argument %q", string(text))
	}
	arg, err := p.parse(text[:1], NoBrackets)
	return arg, text[1:], err
}

// controlWord splits a leading \name from text.
func controlWord(text []rune) (string, []rune) {
	i := 1
	for i < len(text) && isLetter(text[i]) {
		i++
	}
	return string(text[1:i]), text[i:]
}

// subscriptOf reads an optional subscript, either _x or _{xy}. A braced
// single character is normalized to the unbraced form.
func subscriptOf(text []rune) (string, []rune, error) {
	if len(text) == 0 || text[0] != '_' {
		return "", text, nil
	}
	if len(text) < 2 {
		return "", nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "missing subscript")
	}
	if text[1] != '{' {
		return "_" + string(text[1]), text[2:], nil
	}
	end := closingIndex(text, 1)
	inner := text[2:end]
	switch len(inner) {
	case 0:
		return "", nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "empty subscript")
	case 1:
		return "_" + string(inner), text[end+1:], nil
	}
	return "_{" + string(inner) + "}", text[end+1:], nil
}

func skipEmptyGroup(text []rune) []rune {
	if len(text) >= 2 && text[0] == '{' && text[1] == '}' {
		return text[2:]
	}
	return text
}

func first(text []rune) rune {
	if len(text) == 0 {
		return 0
	}
	return text[0]
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// --- Operands --------------------------------------------------------------

// operands splits text without top-level operators into a sequence of
// operands. More than one operand is a product, if implicit multiplication
// is enabled.
func (p parser) operands(text string, brackets BracketType) (*IR, error) {
	sc, err := newOperandScanner(text)
	if err != nil {
		return nil, fishrambeta.Errorf(fishrambeta.Unsupported, "cannot scan %q: %v", text, err)
	}
	var ops []*IR
scanning:
	for {
		token, err := sc.next()
		if err != nil {
			return nil, fishrambeta.Errorf(fishrambeta.Unsupported, "%v", err)
		}
		if token == nil {
			break
		}
		lexeme := string(token.Lexeme)
		switch token.Type {
		case tokNum:
			ops = append(ops, leaf(lexeme))
		case tokIdent:
			ops = append(ops, leaf(normalizeSubscript(lexeme)))
		case tokOpen:
			rest := []rune(sc.rest(token))
			end := closingIndex(rest, 0)
			bt, _ := openingBracket(rest[0])
			grp, err := p.parse(rest[1:end], bt)
			if err != nil {
				return nil, err
			}
			ops = append(ops, grp)
			sc.skipTo(token.TC + len(string(rest[:end+1])))
		case tokCmd:
			cmd, err := p.command([]rune(sc.rest(token)), NoBrackets)
			if err != nil {
				return nil, err
			}
			if isJuxtaposition(cmd) {
				ops = append(ops, cmd.Children...)
			} else {
				ops = append(ops, cmd)
			}
			break scanning
		default:
			return nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "unexpected %q", lexeme)
		}
	}
	switch len(ops) {
	case 0:
		return nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "missing operand")
	case 1:
		return withBrackets(ops[0], brackets), nil
	}
	if !p.implicit {
		return nil, fishrambeta.Errorf(fishrambeta.Unsupported,
			"adjacent operands in %q need implicit multiplication", text)
	}
	return &IR{Name: opMul, Children: ops, Brackets: brackets}, nil
}

// normalizeSubscript rewrites x_{1} to x_1.
func normalizeSubscript(ident string) string {
	k := strings.Index(ident, "_{")
	if k < 0 {
		return ident
	}
	inner := []rune(ident[k+2 : len(ident)-1])
	if len(inner) == 1 {
		return ident[:k] + "_" + string(inner)
	}
	return ident
}
