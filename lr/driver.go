package lr

import (
	"io"
	"os"
)

const defaultStackInitSize = 128

// Driver is the table-driven LR(1) engine: the shift/reduce loop, the
// parse stack, and the error-recovery controller. A zero Driver is not
// usable; construct one with NewDriver.
//
// A *Driver is not safe for concurrent use: it is strictly single-threaded,
// matching the state machine it drives.
type Driver struct {
	tables Tables

	scanner        Scanner
	actionExecutor ActionExecutor

	stack     *stack
	curToken  *Symbol
	gotEOF    bool
	errSyncSz int

	lookahead lookaheadBuffer

	pending       []Symbol
	RetainPending bool

	ErrorWriter io.Writer
	DebugWriter io.Writer

	UserInit                   func() error
	SyntaxErrorFunc            func(Symbol)
	UnrecoveredSyntaxErrorFunc func(Symbol)
	ReportErrorFunc            func(msg string, sym *Symbol)
	ReportFatalErrorFunc       func(msg string, sym *Symbol)
	DisposeOf                  func(Symbol)
	EOFRecoveryHook            func(d *Driver) bool

	closed bool
}

// Option configures a Driver at construction time.
type Option func(*Driver)

// WithScanner sets the Scanner used by the default scan() implementation.
func WithScanner(s Scanner) Option {
	return func(d *Driver) { d.scanner = s }
}

// WithActionExecutor sets the ActionExecutor used to run semantic actions.
func WithActionExecutor(a ActionExecutor) Option {
	return func(d *Driver) { d.actionExecutor = a }
}

// WithErrorSyncSize sets the initial error-sync size; it is validated the
// same way SetErrorSyncSize validates a later change.
func WithErrorSyncSize(n int) Option {
	return func(d *Driver) { d.errSyncSz = n }
}

// WithErrorWriter overrides the default error stream (os.Stderr).
func WithErrorWriter(w io.Writer) Option {
	return func(d *Driver) { d.ErrorWriter = w }
}

// WithDebugWriter overrides the default debug stream (io.Discard).
func WithDebugWriter(w io.Writer) Option {
	return func(d *Driver) { d.DebugWriter = w }
}

// NewDriver builds a Driver over the given generator-supplied tables. The
// ActionExecutor and Scanner may also be supplied later via SetScanner and
// SetActionExecutor, but Parse/DebugParse fail with a *ConfigError if they
// are still nil when called.
func NewDriver(tables Tables, opts ...Option) (*Driver, error) {
	if err := tables.validate(); err != nil {
		return nil, err
	}
	d := &Driver{
		tables:      tables,
		stack:       newStack(defaultStackInitSize),
		errSyncSz:   defaultErrorSyncSize,
		ErrorWriter: os.Stderr,
		DebugWriter: io.Discard,
	}
	d.SyntaxErrorFunc = d.defaultSyntaxError
	d.UnrecoveredSyntaxErrorFunc = d.defaultUnrecoveredSyntaxError
	d.ReportErrorFunc = d.defaultReportError
	d.ReportFatalErrorFunc = d.defaultReportFatalError
	d.DisposeOf = d.defaultDisposeOf

	for _, opt := range opts {
		opt(d)
	}
	if err := validateErrorSyncSize(d.errSyncSz); err != nil {
		return nil, err
	}
	return d, nil
}

// SetScanner sets the scanner used by scan().
func (d *Driver) SetScanner(s Scanner) { d.scanner = s }

// Scanner returns the driver's current scanner.
func (d *Driver) Scanner() Scanner { return d.scanner }

// SetActionExecutor sets the executor used to run semantic actions.
func (d *Driver) SetActionExecutor(a ActionExecutor) { d.actionExecutor = a }

// SetErrorSyncSize sets the number of tokens past a syntax error that must
// parse cleanly to declare a recovery successful. n must be in
// [2, MaxErrorSyncSize]; out-of-range values are rejected without mutating
// the driver.
func (d *Driver) SetErrorSyncSize(n int) error {
	if err := validateErrorSyncSize(n); err != nil {
		return err
	}
	d.errSyncSz = n
	return nil
}

// ErrorSyncSize returns the current error-sync size.
func (d *Driver) ErrorSyncSize() int { return d.errSyncSz }

// ReportError reports a non-fatal error/warning via ReportErrorFunc.
func (d *Driver) ReportError(msg string, sym *Symbol) { d.ReportErrorFunc(msg, sym) }

// ReportFatalError reports an unrecoverable error via ReportFatalErrorFunc.
func (d *Driver) ReportFatalError(msg string, sym *Symbol) { d.ReportFatalErrorFunc(msg, sym) }

func (d *Driver) defaultReportError(msg string, sym *Symbol) {
	if sym != nil {
		if p, ok := sym.Value.(Positioner); ok {
			_, _ = io.WriteString(d.ErrorWriter, msg+" at "+p.Pos()+"\n")
			return
		}
	}
	_, _ = io.WriteString(d.ErrorWriter, msg+"\n")
}

func (d *Driver) defaultReportFatalError(msg string, sym *Symbol) {
	d.defaultReportError(msg, sym)
}

func (d *Driver) defaultSyntaxError(sym Symbol) {
	err := &SyntaxError{State: d.stack.peek().ParseState, Symbol: sym, Message: "syntax error"}
	d.ReportError(err.Error(), &sym)
}

func (d *Driver) defaultUnrecoveredSyntaxError(sym Symbol) {
	d.ReportFatalError("couldn't repair and continue parse", &sym)
}

// Parse runs the driver to completion, returning the accept Symbol and a
// nil error on success, a zero Symbol and a *ConfigError if no Scanner or
// ActionExecutor is configured, or a zero Symbol and a *FatalError otherwise.
func (d *Driver) Parse() (Symbol, error) {
	return d.run(false)
}

// DebugParse behaves exactly like Parse but additionally emits
// shift/reduce/stack-dump diagnostics to DebugWriter.
func (d *Driver) DebugParse() (Symbol, error) {
	return d.run(true)
}

func (d *Driver) run(trace bool) (Symbol, error) {
	if err := d.checkReady(); err != nil {
		return Symbol{}, err
	}
	if d.UserInit != nil {
		if err := d.UserInit(); err != nil {
			return Symbol{}, &FatalError{Message: "user_init failed", Cause: err}
		}
	}
	d.stack.reset()
	d.stack.push(Symbol{ParseState: d.tables.StartState})
	d.curToken = nil
	d.gotEOF = false

	result, ferr := d.runLoop(trace)
	if ferr != nil {
		_ = d.Close()
		return Symbol{}, ferr
	}
	return result, nil
}

func (d *Driver) checkReady() error {
	if d.actionExecutor == nil {
		return &ConfigError{Message: "no ActionExecutor configured"}
	}
	if d.scanner == nil {
		return &ConfigError{Message: "no Scanner configured"}
	}
	return nil
}

// runLoop is the shift/reduce main loop shared by Parse and DebugParse; only
// the trace flag differs between the two public entry points, so they
// cannot drift in observable behavior.
func (d *Driver) runLoop(trace bool) (Symbol, *FatalError) {
	for {
		if d.curToken == nil {
			tok, err := d.scan()
			if err != nil {
				return Symbol{}, &FatalError{Message: "scanner error", Symbol: &tok, Cause: err}
			}
			d.curToken = &tok
		}

		act := d.tables.getAction(d.stack.peek().ParseState, d.curToken.SymID)

		switch {
		case act > 0: // shift
			d.curToken.ParseState = act - 1
			if trace {
				d.debugShift(*d.curToken)
			}
			d.stack.push(*d.curToken)
			d.curToken = nil

		case act < 0: // reduce
			p := -act - 1
			accept, sym, ferr := d.reduceStep(p, trace)
			if ferr != nil {
				return Symbol{}, ferr
			}
			if accept {
				return sym, nil
			}

		default: // error
			d.SyntaxErrorFunc(*d.curToken)
			status, result := d.errorRecovery(trace)
			switch status {
			case recoverFail:
				d.UnrecoveredSyntaxErrorFunc(*d.curToken)
				return Symbol{}, &FatalError{Message: "couldn't repair and continue parse", Symbol: d.curToken}
			case recoverAccept:
				return result, nil
			case recoverSuccess:
				// continue the loop at step 1
			}
		}

		if trace {
			d.dumpStack()
		}
	}
}

// reduceStep performs one reduce by production p: either the accept (when p
// is the start production) or an ordinary reduce that pops the handle,
// disposes of delete-table-marked RHS symbols, and pushes the goto'd
// left-hand side. It is shared by runLoop and parseLookahead so the two
// cannot diverge in reduce semantics.
func (d *Driver) reduceStep(p int, trace bool) (accept bool, acceptSym Symbol, ferr *FatalError) {
	prod := d.tables.ProductionTable[p]
	if trace {
		d.debugReduce(p, prod.LHSSym, prod.RHSSize)
	}

	lhs, err := d.doAction(p)
	if err != nil {
		return false, Symbol{}, &FatalError{Message: "action failed", Cause: err}
	}
	handle := append([]Symbol(nil), d.stack.topSlice()[d.stack.size()-prod.RHSSize:]...)
	d.stack.npop(prod.RHSSize)
	d.disposeHandle(p, handle)

	if p == d.tables.StartProduction && d.stack.size() == 1 {
		return true, lhs, nil
	}

	gotoState := d.tables.getGoto(d.stack.peek().ParseState, prod.LHSSym)
	lhs.ParseState = gotoState
	d.stack.push(lhs)
	return false, Symbol{}, nil
}

// scan returns the next input Symbol, synthesizing EOF once the scanner has
// reported it once rather than calling the scanner again.
func (d *Driver) scan() (Symbol, error) {
	if d.gotEOF {
		return Symbol{SymID: d.tables.EOFSym}, nil
	}
	sym, err := d.scanner.NextToken()
	if err != nil {
		return sym, err
	}
	if isEOF(sym, d.tables.EOFSym) {
		d.gotEOF = true
	}
	return sym, nil
}

// Reset reinitializes all per-parse state so the same Driver (tables, hooks,
// scanner, action executor) can be used for a fresh Parse/DebugParse call.
func (d *Driver) Reset() {
	d.stack.reset()
	d.curToken = nil
	d.gotEOF = false
	d.lookahead.reset()
	d.pending = d.pending[:0]
	d.closed = false
}

// Close releases every Symbol the driver still owns: the stack contents,
// the current lookahead buffer, and the pending-disposal list. It is safe
// to call more than once.
func (d *Driver) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	for d.stack.size() > 0 {
		d.disposeOf(d.stack.pop())
	}
	for i := 0; i < d.lookahead.len; i++ {
		d.disposeOf(d.lookahead.buf[i])
	}
	d.lookahead.reset()
	d.DrainPending()
	return nil
}
