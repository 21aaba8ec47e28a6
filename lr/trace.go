package lr

import "fmt"

// debugShift writes one line for a shift move: the Symbol shifted and the
// state it lands in. Mirrors the teacher generator's terse, one-line-per-
// event style (see mbver-yacc/output.go's summary()).
func (d *Driver) debugShift(sym Symbol) {
	fmt.Fprintf(d.DebugWriter, "shift: sym %d, goto state %d\n", sym.SymID, sym.ParseState)
}

// debugReduce writes one line for a reduce move.
func (d *Driver) debugReduce(prodNum, lhsSym, rhsSize int) {
	fmt.Fprintf(d.DebugWriter, "reduce: prod %d, lhs %d, rhs size %d\n", prodNum, lhsSym, rhsSize)
}

// dumpStack writes the current stack contents, top first, for debugging.
func (d *Driver) dumpStack() {
	fmt.Fprintf(d.DebugWriter, "stack (size %d):", d.stack.size())
	for i := d.stack.size() - 1; i >= 0; i-- {
		sym := d.stack.elementAt(i)
		fmt.Fprintf(d.DebugWriter, " [%d:%d]", sym.SymID, sym.ParseState)
	}
	fmt.Fprintf(d.DebugWriter, "\n")
}
