package domain

import "testing"

func TestRawKind_Terminates(t *testing.T) {
	cases := []struct {
		kind RawKind
		want bool
	}{
		{RawTreeUpdate, true},
		{RawPropertyUpdate, true},
		{RawMonadTreeUpdate, true},
		{RawNodeUpdate, false},
		{RawAddNode, false},
		{RawCopyNode, false},
		{RawFreeNode, false},
		{RawAddLink, false},
		{RawUndo, false},
	}

	for _, tc := range cases {
		if got := tc.kind.Terminates(); got != tc.want {
			t.Errorf("%s.Terminates() = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestRawKind_Known(t *testing.T) {
	for _, kind := range RawKinds() {
		if !kind.Known() {
			t.Errorf("declared kind %s reported unknown", kind)
		}
	}
	if RawKind("viewport_update").Known() {
		t.Error("undeclared kind reported known")
	}
	if RawKind("").Known() {
		t.Error("empty kind reported known")
	}
}

func TestRawKinds_Complete(t *testing.T) {
	kinds := RawKinds()
	if len(kinds) != 9 {
		t.Fatalf("expected 9 declared kinds, got %d", len(kinds))
	}
	seen := make(map[RawKind]bool, len(kinds))
	for _, k := range kinds {
		if seen[k] {
			t.Errorf("kind %s listed twice", k)
		}
		seen[k] = true
	}
}
