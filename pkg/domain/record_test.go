package domain

import "testing"

func TestRecord_MatchesIgnoresSubject(t *testing.T) {
	a := Record{Kind: RawCopyNode, Subject: NodeSubject("SvBoxNode", "Box")}
	b := Record{Kind: RawCopyNode, Subject: NodeSubject("SvSphereNode", "Sphere")}
	c := Record{Kind: RawFreeNode, Subject: NodeSubject("SvBoxNode", "Box")}

	if !a.Matches(b) {
		t.Error("records of equal kind with different subjects must match")
	}
	if a.Matches(c) {
		t.Error("records of different kind must not match, even with equal subjects")
	}
}

func TestRecord_Is(t *testing.T) {
	r := Record{Kind: RawUndo}
	if !r.Is(RawUndo) {
		t.Error("Is(RawUndo) = false for an undo record")
	}
	if r.Is(RawAddNode) {
		t.Error("Is(RawAddNode) = true for an undo record")
	}
}

func TestSubject_IsZero(t *testing.T) {
	if !(Subject{}).IsZero() {
		t.Error("zero subject not reported absent")
	}
	if NodeSubject("SvBoxNode", "Box").IsZero() {
		t.Error("node subject reported absent")
	}
	if TreeSubject("SverchCustomTreeType", "NodeTree").IsZero() {
		t.Error("tree subject reported absent")
	}
}

func TestSubject_Constructors(t *testing.T) {
	n := NodeSubject("SvBoxNode", "Box.001")
	if n.Kind != SubjectNode || n.Type != "SvBoxNode" || n.Name != "Box.001" {
		t.Errorf("unexpected node subject: %+v", n)
	}

	tr := TreeSubject("SverchCustomTreeType", "Geometry")
	if tr.Kind != SubjectTree || tr.Type != "SverchCustomTreeType" || tr.Name != "Geometry" {
		t.Errorf("unexpected tree subject: %+v", tr)
	}
}

func TestChange_SubjectNames(t *testing.T) {
	ch := Change{
		Kind: ChangeCopyNodes,
		Subjects: []Subject{
			NodeSubject("SvBoxNode", "Box"),
			NodeSubject("SvSphereNode", "Sphere"),
		},
	}
	names := ch.SubjectNames()
	if len(names) != 2 || names[0] != "Box" || names[1] != "Sphere" {
		t.Errorf("unexpected names: %v", names)
	}

	empty := Change{Kind: ChangeUndefined}
	if empty.SubjectNames() != nil {
		t.Error("expected nil names for a change without subjects")
	}
}
