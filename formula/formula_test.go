package formula

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/fishrambeta"
	"github.com/npillmayer/fishrambeta/expr"
	"github.com/npillmayer/fishrambeta/physics"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSimplify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.formula")
	defer teardown()
	//
	tests := []struct {
		text     string
		implicit bool
		latex    string
	}{
		{"2+2", true, "4"},
		{"x*x", true, "x^{2}"},
		{`\frac{1}{2}+\frac{1}{2}`, true, "1"},
		{"x+x", true, "2x"},
		{"x+x", false, "2*x"},
		{"x-x", false, "0"},
		{`\frac{6}{4}`, false, `\frac{3}{2}`},
		{`3 \cdot 4 - 20`, false, "-8"},
	}
	for _, test := range tests {
		latex, err := Simplify(test.text, ImplicitMultiplication(test.implicit))
		if err != nil {
			t.Errorf("cannot simplify %q: %v", test.text, err)
			continue
		}
		if latex != test.latex {
			t.Errorf("expected %q to simplify to %q, is %q", test.text, test.latex, latex)
		}
	}
}

func TestSimplifyErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.formula")
	defer teardown()
	//
	if _, err := Simplify(`\int_0^1 x dx`); !errors.Is(err, fishrambeta.ErrUnsupported) {
		t.Errorf("expected integral to be unsupported, is %v", err)
	}
	if _, err := Simplify(`\frac{1}{2`); !errors.Is(err, fishrambeta.ErrMalformedInput) {
		t.Errorf("expected unbalanced input to be malformed, is %v", err)
	}
}

func TestTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.formula")
	defer teardown()
	//
	e, err := Tree("y*x*y")
	if err != nil {
		t.Fatal(err)
	}
	expected := expr.Multiplication{expr.Letter("x"), expr.Power{Base: expr.Letter("y"), Exp: expr.Integer(2)}}
	if !expr.Equal(e, expected) {
		t.Errorf("expected %v, is %v", expected, e)
	}
}

func TestCalculate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.formula")
	defer teardown()
	//
	v, err := Calculate("x^2", map[string]float64{"x": 3})
	if err != nil || v != 9 {
		t.Errorf("expected x^2 = 9 for x = 3, is %g (%v)", v, err)
	}
	v, err = Calculate(`\frac{1}{2}m*v^2`, map[string]float64{"m": 2, "v": 3})
	if err != nil || v != 9 {
		t.Errorf("expected kinetic energy of 9, is %g (%v)", v, err)
	}
	v, err = Calculate("m*c^2", map[string]float64{"m": 1})
	if c2 := 299792458.0 * 299792458.0; err != nil || math.Abs(v-c2) > 1e-9*c2 {
		t.Errorf("expected m*c^2 = %g for m = 1, is %g (%v)", c2, v, err)
	}
	v, err = Calculate("g", map[string]float64{"g": 10})
	if err != nil || v != 10 {
		t.Errorf("expected user value to shadow constant g, is %g (%v)", v, err)
	}
	v, err = Calculate("g", nil, WithConstants(physics.Table{"g": 1.62}))
	if err != nil || v != 1.62 {
		t.Errorf("expected g from custom constants, is %g (%v)", v, err)
	}
	v, err = Calculate(`2\mathrm{e}`, nil)
	if err != nil || v != 2*math.E {
		t.Errorf("expected 2ℯ, is %g (%v)", v, err)
	}
}

func TestCalculateErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.formula")
	defer teardown()
	//
	if _, err := Calculate("y", nil); !errors.Is(err, fishrambeta.ErrUnboundVariable) {
		t.Errorf("expected unbound variable, is %v", err)
	}
	if _, err := Calculate("x=1", map[string]float64{"x": 1}); !errors.Is(err, fishrambeta.ErrInvalidOperation) {
		t.Errorf("expected equation to be rejected, is %v", err)
	}
	if _, err := Calculate("2x", map[string]float64{"x": 1}, ImplicitMultiplication(false)); !errors.Is(err, fishrambeta.ErrUnsupported) {
		t.Errorf("expected juxtaposition to be unsupported, is %v", err)
	}
}

func TestZipValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.formula")
	defer teardown()
	//
	zipped := ZipValues(`m\n\nv\n\nh`, []float64{2, 3})
	if len(zipped) != 2 || zipped["m"] != 2 || zipped["v"] != 3 {
		t.Errorf("expected m = 2 and v = 3, have %v", zipped)
	}
	if zipped := ZipValues("", []float64{1}); len(zipped) != 0 {
		t.Errorf("expected no values for empty names, have %v", zipped)
	}
}
