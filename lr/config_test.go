package lr

import "testing"

func TestValidateErrorSyncSize(t *testing.T) {
	cases := []struct {
		n     int
		valid bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{5, true},
		{MaxErrorSyncSize, true},
		{MaxErrorSyncSize + 1, false},
	}
	for _, c := range cases {
		err := validateErrorSyncSize(c.n)
		if c.valid && err != nil {
			t.Errorf("validateErrorSyncSize(%d) = %v, want nil", c.n, err)
		}
		if !c.valid && err == nil {
			t.Errorf("validateErrorSyncSize(%d) = nil, want an error", c.n)
		}
	}
}

func TestNewDriverRejectsBadErrorSyncSize(t *testing.T) {
	_, err := NewDriver(minimalTables(), WithErrorSyncSize(99))
	if err == nil {
		t.Fatal("NewDriver with an out-of-range ErrorSyncSize should fail")
	}
}

func TestSetErrorSyncSizeRejectsBadValue(t *testing.T) {
	d := newTestDriver(t)
	if err := d.SetErrorSyncSize(0); err == nil {
		t.Fatal("SetErrorSyncSize(0) should fail")
	}
	if err := d.SetErrorSyncSize(4); err != nil {
		t.Fatalf("SetErrorSyncSize(4) = %v, want nil", err)
	}
	if got := d.ErrorSyncSize(); got != 4 {
		t.Fatalf("ErrorSyncSize() = %d, want 4", got)
	}
}
