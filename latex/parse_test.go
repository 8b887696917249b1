package latex

import (
	"errors"
	"testing"

	"github.com/npillmayer/fishrambeta"
	"github.com/npillmayer/fishrambeta/expr"
	"github.com/npillmayer/fishrambeta/expr/rewrite"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCleanup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.latex")
	defer teardown()
	//
	tests := []struct{ text, clean string }{
		{`2 \cdot x`, "2*x"},
		{`a \times b`, "a*b"},
		{`\left( x \right)`, "(x)"},
		{`\pi r`, `\pi{}r`},
		{`\frac {1} {2}`, `\frac{1}{2}`},
		{"x\t+\n1", "x+1"},
	}
	for _, test := range tests {
		if clean := cleanup(test.text); clean != test.clean {
			t.Errorf("expected %q to be cleaned up to %q, is %q", test.text, test.clean, clean)
		}
	}
}

func TestParseIR(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.latex")
	defer teardown()
	//
	tests := []struct {
		text     string
		implicit bool
		ir       string
	}{
		{"a+b+c", false, "(+ a b c)"},
		{"a-b+c", false, "(+ (- a b) c)"},
		{"a-b-c", false, "(- a b c)"},
		{"-a-b", false, "(- (- a) b)"},
		{"a/b*c", false, "(* (/ a b) c)"},
		{"a*b/c", false, "(/ (* a b) c)"},
		{"x*-y", false, "(* x (- y))"},
		{"a^b^c", false, "(^ a (^ b c))"},
		{"x=1", false, "(= x 1)"},
		{`\frac{1}{2}`, false, `(\frac {1} {2})`},
		{"(x+1)", false, "((+ x 1))"},
		{"2(x+1)", true, "(* 2 ((+ x 1)))"},
		{"2x^2", true, "(* 2 (^ x 2))"},
		{"x^{2}y", true, "(* (^ x {2}) y)"},
		{`\pi r`, true, `(* \pi r)`},
		{`\epsilon_0`, false, `\epsilon_0`},
		{`k_{B}`, false, "k_B"},
		{`\sqrt[3]{x}`, false, `(\sqrt {x} [3])`},
		{`\sin x`, false, `(\sin x)`},
		{`\frac12`, false, `(\frac 1 2)`},
	}
	for _, test := range tests {
		ir, err := ParseIR(test.text, test.implicit)
		if err != nil {
			t.Errorf("cannot parse %q: %v", test.text, err)
			continue
		}
		if ir.String() != test.ir {
			t.Errorf("expected %q to parse as %s, is %s", test.text, test.ir, ir)
		}
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.latex")
	defer teardown()
	//
	tests := []struct {
		text     string
		implicit bool
		kind     error
	}{
		{"", false, fishrambeta.ErrMalformedInput},
		{"   ", false, fishrambeta.ErrMalformedInput},
		{"(x+1", false, fishrambeta.ErrMalformedInput},
		{"x+1)", false, fishrambeta.ErrMalformedInput},
		{")x(", false, fishrambeta.ErrMalformedInput},
		{"(x]", false, fishrambeta.ErrMalformedInput},
		{"x+", false, fishrambeta.ErrMalformedInput},
		{"()", false, fishrambeta.ErrMalformedInput},
		{`\frac{1}`, false, fishrambeta.ErrMalformedInput},
		{"99999999999999999999", false, fishrambeta.ErrMalformedInput},
		{`\int_0^1 x`, true, fishrambeta.ErrUnsupported},
		{`\int x`, true, fishrambeta.ErrUnsupported},
		{`1+\int_{0}^{1}x`, true, fishrambeta.ErrUnsupported},
		{"2x", false, fishrambeta.ErrUnsupported},
		{`\pi r`, false, fishrambeta.ErrUnsupported},
		{"a=b=c", false, fishrambeta.ErrUnsupported},
		{"x!", false, fishrambeta.ErrUnsupported},
		{`\,x`, false, fishrambeta.ErrUnsupported},
	}
	for _, test := range tests {
		e, err := Parse(test.text, test.implicit)
		if err == nil {
			t.Errorf("expected %q to fail, parsed as %v", test.text, e)
			continue
		}
		if !errors.Is(err, test.kind) {
			t.Errorf("expected %q to fail with %v, is %v", test.text, test.kind, err)
		}
	}
}

func TestLowering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.latex")
	defer teardown()
	//
	x, a, b := expr.Letter("x"), expr.Letter("a"), expr.Letter("b")
	tests := []struct {
		text     string
		expected expr.Expression
	}{
		{"1.5", expr.Rational{Num: 3, Den: 2}},
		{"42", expr.Integer(42)},
		{`\sqrt{x}`, expr.Power{Base: x, Exp: expr.Rational{Num: 1, Den: 2}}},
		{`\sqrt[3]{x}`, expr.Power{Base: x, Exp: expr.Rational{Num: 1, Den: 3}}},
		{`\mathrm{e}`, expr.E},
		{`\pi`, expr.PI},
		{`\vec{v}`, expr.Vector("v")},
		{`\alpha`, expr.Letter(`\alpha`)},
		{"a-b", expr.Addition{a, expr.Negative{X: b}}},
		{"-x", expr.Negative{X: x}},
		{`\frac{a}{b}`, expr.Division{Num: a, Den: b}},
		{`\ln(x)`, expr.Ln{X: x}},
		{`\cos{x}`, expr.Cos{X: x}},
		{"x=a", expr.Equals{LHS: x, RHS: a}},
	}
	for _, test := range tests {
		e, err := Parse(test.text, false)
		if err != nil {
			t.Errorf("cannot parse %q: %v", test.text, err)
			continue
		}
		if !expr.Equal(e, test.expected) {
			t.Errorf("expected %q to lower to %v, is %v", test.text, test.expected, e)
		}
	}
}

func TestLowerLongChains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.latex")
	defer teardown()
	//
	ir := node(opPow, leaf("a"), leaf("b"), leaf("c"))
	e, err := ir.Expression()
	if err != nil {
		t.Fatal(err)
	}
	expected := expr.Multiplication{expr.Power{Base: expr.Letter("a"), Exp: expr.Letter("b")}, expr.Letter("c")}
	if !expr.Equal(e, expected) {
		t.Errorf("expected %v, is %v", expected, e)
	}
	if _, err = node(opDiv, leaf("a")).Expression(); !errors.Is(err, fishrambeta.ErrMalformedInput) {
		t.Errorf("expected division with one operand to be malformed, is %v", err)
	}
}

func TestParseAndSimplify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.latex")
	defer teardown()
	//
	x := expr.Letter("x")
	tests := []struct {
		text     string
		expected expr.Expression
	}{
		{"2+2", expr.Integer(4)},
		{"x*x", expr.Power{Base: x, Exp: expr.Integer(2)}},
		{`\frac{1}{2}+\frac{1}{2}`, expr.Integer(1)},
		{"x-x", expr.Integer(0)},
		{`2 \cdot 3`, expr.Integer(6)},
	}
	for _, test := range tests {
		e, err := Parse(test.text, true)
		if err != nil {
			t.Errorf("cannot parse %q: %v", test.text, err)
			continue
		}
		if s := rewrite.Simplify(e); !expr.Equal(s, test.expected) {
			t.Errorf("expected %q to simplify to %v, is %v", test.text, test.expected, s)
		}
	}
	e, err := Parse("x^2", false)
	if err != nil {
		t.Fatal(err)
	}
	v, err := expr.Evaluate(e, expr.Values{"x": 3})
	if err != nil || v != 9 {
		t.Errorf("expected x^2 = 9 for x = 3, is %g (%v)", v, err)
	}
}

func TestIRLaTeX(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.latex")
	defer teardown()
	//
	for _, text := range []string{
		"2*(x+1)",
		`\frac{a}{b}`,
		"[x+y]*z",
		"⟨x⟩",
		`\sqrt[3]{x}`,
		"a-b-c",
		"-x^{2}",
	} {
		ir, err := ParseIR(text, false)
		if err != nil {
			t.Errorf("cannot parse %q: %v", text, err)
			continue
		}
		if ir.LaTeX() != text {
			t.Errorf("expected IR of %q to re-create the text, is %q", text, ir.LaTeX())
		}
	}
}
