package lr

// MaxErrorSyncSize bounds the lookahead buffer used during error recovery.
// ErrorSyncSize must be in [2, MaxErrorSyncSize].
const MaxErrorSyncSize = 8

const defaultErrorSyncSize = 3

// lookaheadBuffer is a bounded FIFO of tokens read past the point of a
// syntax error, used both to validate a candidate recovery (parse-ahead)
// and, once validated, to replay the same tokens through the real driver.
type lookaheadBuffer struct {
	buf [MaxErrorSyncSize]Symbol
	len int // tokens currently buffered
	pos int // cursor used while replaying/parse-ahead
}

func (b *lookaheadBuffer) cur() Symbol {
	return b.buf[b.pos]
}

// advance moves the cursor forward one token, reporting whether there is
// another buffered token to look at.
func (b *lookaheadBuffer) advance() bool {
	b.pos++
	return b.pos < b.len
}

// reset clears the buffer back to empty, ready for a fresh readLookahead.
func (b *lookaheadBuffer) reset() {
	b.len = 0
	b.pos = 0
}
