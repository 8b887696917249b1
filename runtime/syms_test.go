package runtime

import (
	"testing"

	"github.com/npillmayer/fishrambeta/expr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewSymTab(t *testing.T) {
	symtab := NewSymbolTable()
	if symtab == nil {
		t.Error("no symbol table created")
	}
}

func TestNewSymbol(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if sym == nil {
		t.Error("no symbol created for table")
	}
	sym.UData = 5
	if sym.UData != 5 {
		t.Errorf("UData does not work")
	}
	if sym.IsBound() {
		t.Errorf("new symbol should not carry a value")
	}
	if sym.Bind(2.5); !sym.IsBound() || sym.Value != 2.5 || sym.Typ != VariableType {
		t.Errorf("binding a value to a symbol does not work: %v", sym)
	}
}

func TestTwoSymbolsDistinctId(t *testing.T) {
	symtab := NewSymbolTable()
	sym1, _ := symtab.DefineTag("new-sym1")
	sym2, _ := symtab.DefineTag("new-sym2")
	if sym1 == sym2 {
		t.Error("2 symbols with equal name")
	}
}

func TestResolveTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if s := symtab.ResolveTag(sym.Name()); s == nil {
		t.Error("cannot find stored symbol in table")
	}
}

func TestResolveOrDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, found := symtab.ResolveOrDefineTag(sym.Name()); !found {
		t.Error("cannot find stored symbol in table")
	}
}

func TestDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, old := symtab.DefineTag("new-sym"); old != sym {
		t.Error("symbol should have been replaced")
	}
}

func TestScopeUpsearch(t *testing.T) {
	scopep := NewScope("parent", nil)
	scope := NewScope("current", scopep)
	scopep.DefineTag("new-sym")
	if sym, _ := scope.ResolveTag("new-sym"); sym != nil {
		t.Logf("found symbol '%s' in parent scope, ok\n", sym.Name())
	} else {
		t.Fail()
	}
}

func TestScopeLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.runtime")
	defer teardown()
	//
	scopep := NewScope("parent", nil)
	scope := NewScope("current", scopep)
	tag, _ := scopep.DefineTag("x")
	tag.Bind(3)
	scope.DefineTag("x") // declared, but without value
	if v, ok := scope.Lookup("x"); !ok || v != 3 {
		t.Errorf("expected x = 3 from parent scope, is %g (%v)", v, ok)
	}
	if _, ok := scope.Lookup("y"); ok {
		t.Errorf("expected y to be unbound")
	}
}

func TestBindingsShadowConstants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.runtime")
	defer teardown()
	//
	env := NewBindings(map[string]float64{"g": 9.81, "c": 299792458},
		map[string]float64{"g": 1.62, "m": 2})
	if v, ok := env.Lookup("g"); !ok || v != 1.62 {
		t.Errorf("expected user value of g to shadow constant, is %g", v)
	}
	if v, ok := env.Lookup("c"); !ok || v != 299792458 {
		t.Errorf("expected constant c, is %g", v)
	}
	env.Define("m", 4)
	e := expr.Multiplication{expr.Letter("m"), expr.Letter("g")}
	if v, err := expr.Evaluate(e, env); err != nil || v != 4*1.62 {
		t.Errorf("expected m·g = %g, is %g (%v)", 4*1.62, v, err)
	}
	vars := env.Variables()
	if len(vars) != 2 || vars[0] != "g" || vars[1] != "m" {
		t.Errorf("expected user variables [g m], are %v", vars)
	}
	if values := env.UserValues(); len(values) != 2 || values["m"] != 4 {
		t.Errorf("expected user values {g:1.62 m:4}, are %v", values)
	}
	if consts := env.Constants(); len(consts) != 2 || consts[0] != "c" {
		t.Errorf("expected constants [c g], are %v", consts)
	}
}

func TestPopGlobalScope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.runtime")
	defer teardown()
	//
	env := NewEnvironment(nil)
	if sc := env.ScopeTree.PopScope(); sc == nil || sc.Name != "user" {
		t.Errorf("expected to pop user scope, got %v", sc)
	}
	if sc := env.ScopeTree.PopScope(); sc != nil {
		t.Errorf("global scope should not be popped")
	}
}
