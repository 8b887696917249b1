/*
Package fishrepl/main provides an interactive command line tool for
simplifying and calculating formulas given in LaTeX notation.

Lines starting with a colon are commands:

    :let name = <latex>    calculate a value and bind it to a variable
    :calc <latex>          calculate a value
    :tree <latex>          display the simplified expression as a tree
    :vars                  list user variables
    :quit                  quit (as does <ctrl>D)

Any other line is simplified and printed as LaTeX.

Flags are -trace (trace level), -init (a file of lines to execute first),
-implicit (implicit multiplication, default true) and -constants (a TOML or
YAML file of additional constants). Lines of an init file starting with %
are skipped.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fishrambeta.repl'
func tracer() tracing.Trace {
	return tracing.Select("fishrambeta.repl")
}
