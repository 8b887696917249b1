/*
Package runtime implements variable bindings for evaluating formulas,
consisting of scopes and symbols (variables with values).

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Symbol Table and Scope Tree

This module implements data structures for scope trees and symbol tables
attached to them. An environment stacks a scope for user variables on top of
a scope holding named constants. Resolving a name searches the user scope
first, thus user values shadow constants of the same name.


----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"github.com/npillmayer/fishrambeta/expr"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/slices"
)

// tracer traces with key 'fishrambeta.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("fishrambeta.runtime")
}

// Environment is a type implementing variable bindings for evaluation.
type Environment struct {
	ScopeTree *ScopeTree  // collect scopes
	UData     interface{} // extension point
}

var _ expr.Bindings = (*Environment)(nil)
var _ expr.Bindings = (*Scope)(nil)

// NewEnvironment constructs a new environment, initialized with a scope
// for constants and a scope for user variables on top of it.
//
func NewEnvironment(constants map[string]float64) *Environment {
	env := &Environment{}
	env.ScopeTree = new(ScopeTree)
	globals := env.ScopeTree.PushNewScope("constants") // push global scope first
	for name, value := range constants {
		tag, _ := globals.DefineTag(name)
		tag.WithType(ConstantType).Bind(value)
	}
	env.ScopeTree.PushNewScope("user")
	return env
}

// NewBindings creates an environment from a table of constants and a table
// of user values. User values shadow constants.
func NewBindings(constants, user map[string]float64) *Environment {
	env := NewEnvironment(constants)
	for name, value := range user {
		env.Define(name, value)
	}
	return env
}

// Define binds a user variable to a value, replacing a previous value.
func (env *Environment) Define(name string, value float64) *Tag {
	tag, _ := env.ScopeTree.Current().DefineTag(name)
	if tag == nil {
		tracer().Errorf("cannot define variable with empty name")
		return nil
	}
	tracer().P("var", name).Debugf("= %g", value)
	return tag.WithType(VariableType).Bind(value)
}

// Lookup finds the value of a variable, with user variables shadowing
// constants. It is part of interface expr.Bindings.
func (env *Environment) Lookup(name string) (float64, bool) {
	return env.ScopeTree.Current().Lookup(name)
}

// Variables returns the sorted names of the user variables.
func (env *Environment) Variables() []string {
	return names(env.ScopeTree.Current())
}

// UserValues returns a table of the user variables and their values.
func (env *Environment) UserValues() map[string]float64 {
	values := make(map[string]float64)
	env.ScopeTree.Current().Tags().Each(func(name string, tag *Tag) {
		if tag.IsBound() {
			values[name] = tag.Value
		}
	})
	return values
}

// Constants returns the sorted names of the constants.
func (env *Environment) Constants() []string {
	return names(env.ScopeTree.Globals())
}

func names(scope *Scope) []string {
	n := make([]string, 0, scope.Tags().Size())
	scope.Tags().Each(func(name string, tag *Tag) {
		if tag.IsBound() {
			n = append(n, name)
		}
	})
	slices.Sort(n)
	return n
}
