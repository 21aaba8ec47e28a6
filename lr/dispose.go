package lr

import "io"

// defaultDisposeOf is the driver's default DisposeOf hook: it drops the
// reference, giving the payload a chance to release its own resources if it
// implements io.Closer, and reports any close error through ReportError
// rather than letting it escape (disposal happens deep inside recovery and
// must not itself fail the parse).
func (d *Driver) defaultDisposeOf(sym Symbol) {
	if c, ok := sym.Value.(io.Closer); ok {
		if err := c.Close(); err != nil {
			d.ReportError("dispose: "+err.Error(), &sym)
		}
	}
}

// disposeOf routes a popped Symbol to the driver's DisposeOf hook, or
// appends it to the pending list when RetainPending is set, deferring the
// actual hook call to DrainPending/Close.
func (d *Driver) disposeOf(sym Symbol) {
	if d.RetainPending {
		d.pending = append(d.pending, sym)
		return
	}
	d.DisposeOf(sym)
}

// DrainPending disposes of every Symbol currently on the pending list and
// returns how many were drained. Destruction order is unspecified but
// exhaustive.
func (d *Driver) DrainPending() int {
	n := len(d.pending)
	for _, sym := range d.pending {
		d.DisposeOf(sym)
	}
	d.pending = d.pending[:0]
	return n
}

// disposeHandle routes RHS symbols marked in the delete table through
// disposeOf after an ordinary (non-recovery) reduce. handle is the slice of
// popped Symbols in RHS order, prod is the production index being reduced.
func (d *Driver) disposeHandle(prod int, handle []Symbol) {
	if d.tables.DeleteTable == nil {
		return
	}
	for i, sym := range handle {
		if d.tables.deleteBit(prod, i) {
			d.disposeOf(sym)
		}
	}
}
