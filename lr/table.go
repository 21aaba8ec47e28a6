package lr

// sentinel marks the default entry at the end of a sparse table row.
const sentinel = -1

// ActionCell is one (symbolID, actionCode) pair in a sparse table row.
type ActionCell struct {
	SymID int16
	Code  int16
}

// ActionRow is one state's worth of a sparse action or goto table: a run of
// (symbolID, code) pairs terminated by a sentinel entry whose SymID is -1
// and whose Code is the row's default.
type ActionRow []ActionCell

// ProdEntry pairs the left-hand-side non-terminal id with the number of
// right-hand-side symbols for one production, indexed by production number.
type ProdEntry struct {
	LHSSym  int
	RHSSize int
}

// Tables bundles everything a generator must supply to drive a grammar.
// ActionTable and GotoTable are row-per-state; row i is consulted with the
// parser in state i. DeleteTable is optional (see §3/§4.J of the spec): one
// uint64 bitmask per production, bit j set meaning RHS position j should be
// disposed of automatically after an ordinary reduce if not consumed by the
// action.
type Tables struct {
	ProductionTable []ProdEntry
	ActionTable     []ActionRow
	GotoTable       []ActionRow
	DeleteTable     []uint64

	StartState      int
	StartProduction int
	EOFSym          int
	ErrorSym        int
}

func (t *Tables) validate() error {
	switch {
	case t.ActionTable == nil:
		return &ConfigError{Message: "tables: ActionTable is nil"}
	case t.GotoTable == nil:
		return &ConfigError{Message: "tables: GotoTable is nil"}
	case t.ProductionTable == nil:
		return &ConfigError{Message: "tables: ProductionTable is nil"}
	case t.StartState < 0 || t.StartState >= len(t.ActionTable):
		return &ConfigError{Message: "tables: StartState out of range"}
	case t.StartProduction < 0 || t.StartProduction >= len(t.ProductionTable):
		return &ConfigError{Message: "tables: StartProduction out of range"}
	}
	return nil
}

// getAction fetches the action for (state, symID) from the action table: a
// linear scan of the row, returning on the first matching symID or on the
// sentinel. A row may consist solely of the sentinel, meaning "default
// action for every symbol".
func (t *Tables) getAction(state, symID int) int {
	return scanRow(t.ActionTable[state], symID)
}

// getGoto fetches the goto state for (state, symID) from the reduce-goto
// table using the same row/sentinel convention as getAction.
func (t *Tables) getGoto(state, symID int) int {
	return scanRow(t.GotoTable[state], symID)
}

func scanRow(row ActionRow, symID int) int {
	for _, cell := range row {
		if int(cell.SymID) == symID || int(cell.SymID) == sentinel {
			return int(cell.Code)
		}
	}
	return 0
}

// deleteBit reports whether RHS position pos of production p is marked for
// automatic disposal in the delete table. Absent a delete table, or a
// production/position outside it, nothing is marked.
func (t *Tables) deleteBit(p, pos int) bool {
	if t.DeleteTable == nil || p < 0 || p >= len(t.DeleteTable) {
		return false
	}
	if pos < 0 || pos >= 64 {
		return false
	}
	return t.DeleteTable[p]&(1<<uint(pos)) != 0
}
