/*
Package fishrambeta is a symbolic algebra engine for physics and math formulas.

It parses a constrained LaTeX notation into expression trees, rewrites
them into a canonical simplified form using exact rational arithmetic and
structural factor analysis, and evaluates them either exactly or numerically
against caller-supplied variable bindings. Package structure is
as follows:

■ expr: Package expr implements the expression tree, its total order and
hashing, and the exact and floating point evaluators.

■ expr/rewrite: Package rewrite implements factor analysis, term combination
and the canonicalizing simplifier.

■ latex: Package latex parses LaTeX text into expressions and emits expressions
as LaTeX text.

■ runtime: Package runtime provides scopes and symbol tables, used as variable
bindings for evaluation.

■ physics: Package physics provides a default table of named physical constants.

■ formula: Package formula bundles parsing, simplification and evaluation into
the operations an application calls.

The base package contains the error type which is used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fishrambeta
