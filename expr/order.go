package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/slices"
)

// Compare is a total order over expressions. It returns -1, 0 or +1.
//
// Expressions are ordered by kind first, then by their atomic payload, then by
// their children (lexicographically, a shorter list of children sorting first
// on a common prefix). The order exists to make grouping of terms deterministic;
// it does not reflect numerical magnitude: Rational(1,2) and Rational(2,4) are
// different expressions.
//
// Compare(a, b) == 0 if and only if Equal(a, b).
func Compare(a, b Expression) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		}
		return 1
	}
	if ka, kb := a.Kind(), b.Kind(); ka != kb {
		return cmpInt(int64(ka), int64(kb))
	}
	switch x := a.(type) {
	case Integer:
		return cmpInt(int64(x), int64(b.(Integer)))
	case Rational:
		y := b.(Rational)
		if c := cmpInt(x.Num, y.Num); c != 0 {
			return c
		}
		return cmpInt(x.Den, y.Den)
	case Constant:
		return cmpInt(int64(x), int64(b.(Constant)))
	case Letter:
		return cmpString(string(x), string(b.(Letter)))
	case Vector:
		return cmpString(string(x), string(b.(Vector)))
	}
	return compareLists(Children(a), Children(b))
}

func compareLists(a, b []Expression) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmpInt(int64(len(a)), int64(len(b)))
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Comparator adapts Compare for ordered containers keyed by expressions.
var Comparator utils.Comparator = func(a, b interface{}) int {
	return Compare(a.(Expression), b.(Expression))
}

// Equal is deep structural equality of expressions.
//
// Expressions must never be compared with the == operator: sums and products
// are slices, and comparing interface values holding slices panics.
func Equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Integer, Rational, Constant, Letter, Vector:
		return a == b // leaves are comparable
	case Addition:
		return slices.EqualFunc(x, b.(Addition), Equal)
	case Multiplication:
		return slices.EqualFunc(x, b.(Multiplication), Equal)
	}
	return slices.EqualFunc(Children(a), Children(b), Equal)
}

// IsInteger checks if e is the integer literal n.
func IsInteger(e Expression, n int64) bool {
	i, ok := e.(Integer)
	return ok && int64(i) == n
}

// Index returns the position of the first element of list which is equal to e,
// or -1.
func Index(list []Expression, e Expression) int {
	return slices.IndexFunc(list, func(x Expression) bool {
		return Equal(x, e)
	})
}

// --- Hashing ---------------------------------------------------------------

// hashNode is the canonical serialization of an expression: variant tag,
// atomic payload and ordered children.
type hashNode struct {
	Tag      string
	Atom     string
	Children []hashNode
}

func canonical(e Expression) hashNode {
	if e == nil {
		return hashNode{Tag: "nil"}
	}
	n := hashNode{Tag: e.Kind().String()}
	switch x := e.(type) {
	case Integer:
		n.Atom = strconv.FormatInt(int64(x), 10)
	case Rational:
		n.Atom = strconv.FormatInt(x.Num, 10) + "/" + strconv.FormatInt(x.Den, 10)
	case Constant:
		n.Atom = strconv.Itoa(int(x))
	case Letter:
		n.Atom = string(x)
	case Vector:
		n.Atom = string(x)
	default:
		children := Children(e)
		n.Children = make([]hashNode, len(children))
		for i, ch := range children {
			n.Children[i] = canonical(ch)
		}
	}
	return n
}

// Hash returns a digest of an expression. Equal expressions have equal hashes.
func Hash(e Expression) string {
	h, err := structhash.Hash(canonical(e), 1)
	if err != nil { // cannot happen for hashNode, which has plain fields only
		tracer().Errorf("cannot hash expression %v: %v", e, err)
		return e.Kind().String() + ":" + e.String()
	}
	return h
}
