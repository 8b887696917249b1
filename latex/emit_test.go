package latex

import (
	"testing"

	"github.com/npillmayer/fishrambeta/expr"
	"github.com/npillmayer/fishrambeta/expr/rewrite"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEmit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.latex")
	defer teardown()
	//
	x, a, b := expr.Letter("x"), expr.Letter("a"), expr.Letter("b")
	sum := expr.Addition{x, expr.Integer(1)}
	tests := []struct {
		e        expr.Expression
		implicit bool
		text     string
	}{
		{sum, false, "x+1"},
		{expr.Addition{expr.Negative{X: x}, expr.Integer(-1)}, false, "-x-1"},
		{expr.Addition{a, expr.Negative{X: b}, x}, false, "a-b+x"},
		{expr.Multiplication{expr.Integer(2), x}, false, "2*x"},
		{expr.Multiplication{expr.Integer(2), x}, true, "2x"},
		{expr.Multiplication{expr.Integer(2), sum}, true, "2(x+1)"},
		{expr.Multiplication{x, b}, true, "x*b"},
		{expr.Multiplication{expr.Integer(2), expr.Power{Base: x, Exp: expr.Integer(2)}}, true, "2x^{2}"},
		{expr.Power{Base: x, Exp: expr.Rational{Num: 1, Den: 2}}, false, `\sqrt{x}`},
		{expr.Power{Base: x, Exp: expr.Rational{Num: 1, Den: 3}}, false, `\sqrt[3]{x}`},
		{expr.Power{Base: sum, Exp: expr.Integer(2)}, false, "(x+1)^{2}"},
		{expr.Power{Base: x, Exp: expr.Integer(-1)}, false, "x^{-1}"},
		{expr.Division{Num: a, Den: b}, false, `\frac{a}{b}`},
		{expr.Rational{Num: -1, Den: 2}, false, `-\frac{1}{2}`},
		{expr.Rational{Num: 1, Den: -2}, false, `-\frac{1}{2}`},
		{expr.E, false, `\mathrm{e}`},
		{expr.PI, false, `\pi`},
		{expr.Vector("v"), false, `\vec{v}`},
		{expr.Ln{X: x}, false, `\ln(x)`},
		{expr.Negative{X: expr.Addition{a, b}}, false, "-(a+b)"},
		{expr.Negative{X: expr.Negative{X: a}}, false, "-(-a)"},
		{expr.Multiplication{a, expr.Negative{X: b}}, false, "a*(-b)"},
		{expr.Equals{LHS: x, RHS: sum}, false, "x=x+1"},
	}
	for _, test := range tests {
		if text := Emit(test.e, test.implicit); text != test.text {
			t.Errorf("expected %v to be emitted as %q, is %q", test.e, test.text, text)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.latex")
	defer teardown()
	//
	for _, text := range []string{
		"x^2+2x+1",
		`\frac{a}{b}-c`,
		`2\pi r`,
		`\sqrt{x+1}`,
		`\sin(x)^2+\cos(x)^2`,
		"(a+b)(a-b)",
		`\mathrm{e}^{x}`,
		"x=3y",
		`\vec{v}*2`,
		`-\frac{1}{2}x`,
		`\ln(x)*y`,
		`k_B T`,
		`\sqrt[3]{x}`,
		`\frac{1}{2}m*v^2`,
		`\epsilon_0 E^2`,
	} {
		for _, implicit := range []bool{false, true} {
			e, err := Parse(text, true)
			if err != nil {
				t.Errorf("cannot parse %q: %v", text, err)
				break
			}
			s := rewrite.Simplify(e)
			emitted := Emit(s, implicit)
			again, err := Parse(emitted, implicit)
			if err != nil {
				t.Errorf("cannot re-parse %q (from %q): %v", emitted, text, err)
				continue
			}
			if s2 := rewrite.Simplify(again); !expr.Equal(s, s2) {
				t.Errorf("round trip of %q via %q: %v ≠ %v", text, emitted, s, s2)
			}
		}
	}
}
