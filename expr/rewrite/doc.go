/*
Package rewrite implements term rewriting for expressions: factor analysis,
multiplication of terms, and a simplifier which rewrites expressions into a
canonical form.

Simplify

Simplify is pure and terminating, and idempotent:

    Simplify(Simplify(e)) == Simplify(e)

At every node, exact rational evaluation is tried first. If it succeeds, the
node is replaced by a literal. Otherwise a rewriter for the kind of node is
applied. Sums collect like terms, products count repeated factors and
distribute over sums, quotients cancel shared factors, and powers distribute
over products.

Canonical form

Simplified trees obey a small set of rules, which all rewriters rely on:
sums and products are flat (a sum never has a sum as a direct child, and a
product never has a product as a direct child), literals of a sum are folded
into a single constant addend at the end, literals of a product into a single
positive coefficient at the front, and the sign of a product is carried by an
enclosing Negative. Terms of a sum and factors of a product are ordered by
expr.Compare.

Factors

A factor of an expression is a sub-expression which structurally divides it.
For sums, every addend has to carry a factor for it to count, otherwise
cancelling it would be unsound.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rewrite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fishrambeta.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("fishrambeta.rewrite")
}
