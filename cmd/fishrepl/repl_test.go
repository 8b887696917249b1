package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/fishrambeta"
	"github.com/npillmayer/fishrambeta/physics"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEvalLetAndCalc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.repl")
	defer teardown()
	//
	intp := NewIntp(physics.Defaults(), true)
	if _, err := intp.Eval(":let m = 2"); err != nil {
		t.Fatal(err)
	}
	if _, err := intp.Eval(":let v = 1+2"); err != nil {
		t.Fatal(err)
	}
	if _, err := intp.Eval(`:calc \frac{1}{2}m*v^2`); err != nil {
		t.Fatal(err)
	}
	if intp.lastValue != 9 {
		t.Errorf("expected kinetic energy of 9, is %g", intp.lastValue)
	}
	if names := intp.env.Variables(); len(names) != 2 {
		t.Errorf("expected 2 variables, have %v", names)
	}
}

func TestEvalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.repl")
	defer teardown()
	//
	intp := NewIntp(physics.Defaults(), true)
	for _, line := range []string{"x+x", ":tree x*(y+1)", ":vars"} {
		if quit, err := intp.Eval(line); quit || err != nil {
			t.Errorf("expected %q to succeed, is %v", line, err)
		}
	}
	if quit, _ := intp.Eval(":quit"); !quit {
		t.Errorf("expected :quit to quit")
	}
	if _, err := intp.Eval(":let = 3"); !errors.Is(err, fishrambeta.ErrMalformedInput) {
		t.Errorf("expected missing name to be malformed, is %v", err)
	}
	if _, err := intp.Eval(`\int x`); !errors.Is(err, fishrambeta.ErrUnsupported) {
		t.Errorf("expected integral to be unsupported, is %v", err)
	}
	if _, err := intp.Eval(":frobnicate"); err == nil {
		t.Errorf("expected unknown command to fail")
	}
}

func TestLoadInitFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.repl")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "init.tex")
	content := "% moon\n:let g = 1.62\n\n:let h = 10\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	intp := NewIntp(physics.Defaults(), true)
	intp.loadInitFile(path)
	if _, err := intp.Eval(`:calc \sqrt{2h/g}`); err != nil {
		t.Fatal(err)
	}
	if v := intp.lastValue; v < 3.5 || v > 3.52 {
		t.Errorf("expected fall time of about 3.51 s on the moon, is %g", v)
	}
}
