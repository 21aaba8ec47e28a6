package lr

import "testing"

func TestScanRow(t *testing.T) {
	cases := []struct {
		name string
		row  ActionRow
		sym  int
		want int
	}{
		{"sentinel only", ActionRow{{SymID: sentinel, Code: 0}}, 5, 0},
		{"sentinel only, nonzero default", ActionRow{{SymID: sentinel, Code: -3}}, 5, -3},
		{"match before sentinel", ActionRow{{SymID: 3, Code: 7}, {SymID: sentinel, Code: 0}}, 3, 7},
		{"no match falls to sentinel", ActionRow{{SymID: 3, Code: 7}, {SymID: sentinel, Code: -1}}, 9, -1},
		{"first matching cell wins", ActionRow{{SymID: 3, Code: 7}, {SymID: 3, Code: 99}, {SymID: sentinel, Code: 0}}, 3, 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := scanRow(c.row, c.sym); got != c.want {
				t.Errorf("scanRow(%v, %d) = %d, want %d", c.row, c.sym, got, c.want)
			}
		})
	}
}

func TestTablesGetActionGetGoto(t *testing.T) {
	tbl := &Tables{
		ActionTable: []ActionRow{
			{{SymID: 1, Code: 2}, {SymID: sentinel, Code: 0}},
		},
		GotoTable: []ActionRow{
			{{SymID: 9, Code: 4}, {SymID: sentinel, Code: 0}},
		},
	}
	if got := tbl.getAction(0, 1); got != 2 {
		t.Errorf("getAction(0, 1) = %d, want 2", got)
	}
	if got := tbl.getAction(0, 7); got != 0 {
		t.Errorf("getAction(0, 7) = %d, want 0", got)
	}
	if got := tbl.getGoto(0, 9); got != 4 {
		t.Errorf("getGoto(0, 9) = %d, want 4", got)
	}
}

func TestTablesValidate(t *testing.T) {
	base := Tables{
		ProductionTable: []ProdEntry{{LHSSym: 0, RHSSize: 1}},
		ActionTable:     []ActionRow{{{SymID: sentinel, Code: 0}}},
		GotoTable:       []ActionRow{{{SymID: sentinel, Code: 0}}},
		StartState:      0,
		StartProduction: 0,
	}

	if err := base.validate(); err != nil {
		t.Fatalf("validate() on a well-formed Tables returned %v", err)
	}

	missingAction := base
	missingAction.ActionTable = nil
	if err := missingAction.validate(); err == nil {
		t.Error("validate() with nil ActionTable should fail")
	}

	badStart := base
	badStart.StartState = 5
	if err := badStart.validate(); err == nil {
		t.Error("validate() with out-of-range StartState should fail")
	}

	badStartProd := base
	badStartProd.StartProduction = -1
	if err := badStartProd.validate(); err == nil {
		t.Error("validate() with negative StartProduction should fail")
	}
}

func TestTablesDeleteBit(t *testing.T) {
	tbl := &Tables{DeleteTable: []uint64{0b101, 0}}

	cases := []struct {
		name string
		p    int
		pos  int
		want bool
	}{
		{"bit 0 set", 0, 0, true},
		{"bit 1 clear", 0, 1, false},
		{"bit 2 set", 0, 2, true},
		{"production with zero mask", 1, 0, false},
		{"production out of range", 2, 0, false},
		{"position out of range", 0, 64, false},
		{"negative position", 0, -1, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := tbl.deleteBit(c.p, c.pos); got != c.want {
				t.Errorf("deleteBit(%d, %d) = %v, want %v", c.p, c.pos, got, c.want)
			}
		})
	}

	var noTable Tables
	if noTable.deleteBit(0, 0) {
		t.Error("deleteBit with nil DeleteTable should always be false")
	}
}
