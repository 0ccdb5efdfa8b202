package domain

import (
	"errors"
	"testing"
)

func TestClassify_Table(t *testing.T) {
	cases := []struct {
		raw  RawKind
		want ChangeKind
	}{
		{RawAddNode, ChangeAddNode},
		{RawCopyNode, ChangeCopyNodes},
		{RawFreeNode, ChangeFreeNodes},
		{RawAddLink, ChangeLinkUpdate},
		{RawPropertyUpdate, ChangePropertyUpdate},
		{RawUndo, ChangeUndo},
		{RawTreeUpdate, ChangeUndefined},
		{RawMonadTreeUpdate, ChangeUndefined},
		{RawNodeUpdate, ChangeUndefined},
	}

	for _, tc := range cases {
		t.Run(string(tc.raw), func(t *testing.T) {
			got, err := Classify(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error classifying %s: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Errorf("Classify(%s) = %s, want %s", tc.raw, got, tc.want)
			}
		})
	}
}

func TestClassify_UnmappedKind(t *testing.T) {
	_, err := Classify(RawKind("link_color_update"))
	if err == nil {
		t.Fatal("expected error for undeclared kind, got nil")
	}
	if !errors.Is(err, ErrUnmappedKind) {
		t.Errorf("error does not match ErrUnmappedKind: %v", err)
	}

	var unmapped *UnmappedKindError
	if !errors.As(err, &unmapped) {
		t.Fatalf("error is not *UnmappedKindError: %T", err)
	}
	if unmapped.Kind != RawKind("link_color_update") {
		t.Errorf("error carries kind %q, want the offending kind", unmapped.Kind)
	}
}

func TestClassify_CoversEveryDeclaredKind(t *testing.T) {
	for _, kind := range RawKinds() {
		if _, err := Classify(kind); err != nil {
			t.Errorf("declared kind %s has no table entry: %v", kind, err)
		}
	}
}
