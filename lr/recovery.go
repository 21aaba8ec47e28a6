package lr

// recoveryStatus is the outcome of a run of the error-recovery controller.
type recoveryStatus int

const (
	recoverFail recoveryStatus = iota
	recoverSuccess
	recoverAccept
)

// errorRecovery attempts to recover from the syntax error at d.curToken.
// Recovery happens in four phases: find a recovery configuration on the
// real stack, read a buffer of lookahead tokens, discard tokens one at a
// time until a speculative parse-ahead makes it through the buffer, then
// replay the buffer for real.
func (d *Driver) errorRecovery(trace bool) (recoveryStatus, Symbol) {
	if !d.findRecoveryConfig(trace) {
		return recoverFail, Symbol{}
	}

	if ferr := d.readLookahead(); ferr != nil {
		d.ReportFatalError(ferr.Message, ferr.Symbol)
		return recoverFail, Symbol{}
	}

	for {
		if d.tryParseAhead() {
			break
		}
		if isEOF(d.lookahead.buf[0], d.tables.EOFSym) {
			if d.EOFRecoveryHook != nil && d.EOFRecoveryHook(d) {
				break
			}
			return recoverFail, Symbol{}
		}
		d.disposeOf(d.lookahead.buf[0])
		if ferr := d.restartLookahead(); ferr != nil {
			d.ReportFatalError(ferr.Message, ferr.Symbol)
			return recoverFail, Symbol{}
		}
	}

	status, sym, ferr := d.parseLookahead(trace)
	if ferr != nil {
		d.ReportFatalError(ferr.Message, ferr.Symbol)
		return recoverFail, Symbol{}
	}
	return status, sym
}

// shiftUnderError reports whether the state currently on top of the real
// stack has a shift action under the grammar's error symbol.
func (d *Driver) shiftUnderError() bool {
	return d.tables.getAction(d.stack.peek().ParseState, d.tables.ErrorSym) > 0
}

// findRecoveryConfig puts the real parse stack into error-recovery
// configuration: pop states (disposing of each popped Symbol) until the
// top state can shift on the error symbol, then perform that shift with a
// synthesized error Symbol. Returns false if the stack empties first.
func (d *Driver) findRecoveryConfig(trace bool) bool {
	for !d.stack.empty() {
		if d.shiftUnderError() {
			act := d.tables.getAction(d.stack.peek().ParseState, d.tables.ErrorSym)
			errSym := Symbol{SymID: d.tables.ErrorSym, ParseState: act - 1}
			if trace {
				d.debugShift(errSym)
			}
			d.stack.push(errSym)
			return true
		}
		d.disposeOf(d.stack.pop())
	}
	return false
}

// syncTarget is the number of tokens error recovery must match cleanly to
// declare success: the smaller of the configured ErrorSyncSize and the hard
// cap MaxErrorSyncSize.
func (d *Driver) syncTarget() int {
	if d.errSyncSz > MaxErrorSyncSize {
		return MaxErrorSyncSize
	}
	return d.errSyncSz
}

// readLookahead fills the lookahead buffer from the scanner, up to
// syncTarget() tokens, stopping early (and shortening len) if EOF appears.
func (d *Driver) readLookahead() *FatalError {
	d.lookahead.reset()
	target := d.syncTarget()
	for d.lookahead.len < target {
		tok, err := d.scan()
		if err != nil {
			return &FatalError{Message: "scanner error", Symbol: &tok, Cause: err}
		}
		d.lookahead.buf[d.lookahead.len] = tok
		d.lookahead.len++
		if isEOF(tok, d.tables.EOFSym) {
			break
		}
	}
	return nil
}

// restartLookahead shifts the buffer left by one (dropping the discarded
// token at index 0), reads one fresh token at the tail unless the buffer
// already ends in EOF or is already at its target size, and resets pos to
// 0 for the next parse-ahead attempt.
func (d *Driver) restartLookahead() *FatalError {
	for i := 1; i < d.lookahead.len; i++ {
		d.lookahead.buf[i-1] = d.lookahead.buf[i]
	}
	d.lookahead.len--
	d.lookahead.pos = 0

	if d.lookahead.len > 0 && isEOF(d.lookahead.buf[d.lookahead.len-1], d.tables.EOFSym) {
		return nil
	}
	if d.lookahead.len >= d.syncTarget() {
		return nil
	}
	tok, err := d.scan()
	if err != nil {
		return &FatalError{Message: "scanner error", Symbol: &tok, Cause: err}
	}
	d.lookahead.buf[d.lookahead.len] = tok
	d.lookahead.len++
	return nil
}

// tryParseAhead speculatively parses the buffered lookahead tokens from the
// current real-stack configuration using a virtual stack, executing no
// semantic actions and never mutating the real stack. It returns true if
// the buffered tokens parse through to acceptance or buffer exhaustion
// without hitting an error action.
func (d *Driver) tryParseAhead() bool {
	d.lookahead.pos = 0
	vs := newVirtualStack(d.stack)

	for {
		cur := d.lookahead.cur()
		act := d.tables.getAction(vs.peek(), cur.SymID)

		switch {
		case act == 0:
			return false

		case act > 0: // shift
			vs.push(act - 1)
			if !d.lookahead.advance() {
				return true
			}

		default: // reduce
			p := -act - 1
			if p == d.tables.StartProduction {
				return true
			}
			prod := d.tables.ProductionTable[p]
			vs.npop(prod.RHSSize)
			vs.push(d.tables.getGoto(vs.peek(), prod.LHSSym))
		}
	}
}

// parseLookahead replays the validated lookahead buffer through the real
// driver path: real shifts, real reductions, real semantic actions. It
// returns once the buffer is exhausted (recoverSuccess, control returns to
// the normal main loop) or accept is reached (recoverAccept).
func (d *Driver) parseLookahead(trace bool) (recoveryStatus, Symbol, *FatalError) {
	d.lookahead.pos = 0

	for {
		cur := d.lookahead.cur()
		act := d.tables.getAction(d.stack.peek().ParseState, cur.SymID)

		switch {
		case act > 0: // shift
			cur.ParseState = act - 1
			if trace {
				d.debugShift(cur)
			}
			d.stack.push(cur)
			if !d.lookahead.advance() {
				d.curToken = nil
				d.abandonLookahead()
				return recoverSuccess, Symbol{}, nil
			}

		case act < 0: // reduce
			p := -act - 1
			accept, sym, ferr := d.reduceStep(p, trace)
			if ferr != nil {
				d.abandonLookahead()
				return recoverFail, Symbol{}, ferr
			}
			if accept {
				d.abandonLookahead()
				return recoverAccept, sym, nil
			}

		default:
			// tryParseAhead already validated this exact token sequence parses
			// cleanly from this configuration; reaching an error action here
			// would mean the tables disagree with themselves.
			d.abandonLookahead()
			return recoverFail, Symbol{}, &FatalError{Message: "replay hit an error action tryParseAhead had validated away", Symbol: &cur}
		}
	}
}

// abandonLookahead disposes of every buffered token parseLookahead had not
// yet shifted onto the real stack, then clears the buffer. Tokens already
// shifted are owned by the real stack (or already disposed of by a reduce);
// leaving them in the buffer too would make Close() visit them twice.
func (d *Driver) abandonLookahead() {
	for i := d.lookahead.pos; i < d.lookahead.len; i++ {
		d.disposeOf(d.lookahead.buf[i])
	}
	d.lookahead.reset()
}
