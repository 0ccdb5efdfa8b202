package fswatch

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/swell/pkg/bridge"
	"github.com/aretw0/swell/pkg/domain"
)

type recordedCall struct {
	kind    domain.RawKind
	subject domain.Subject
}

type recorderSpy struct {
	calls []recordedCall
}

func (r *recorderSpy) Record(ctx context.Context, kind domain.RawKind, subject domain.Subject) {
	r.calls = append(r.calls, recordedCall{kind: kind, subject: subject})
}

func newDispatchSpy(root string) (*Watcher, *recorderSpy) {
	spy := &recorderSpy{}
	return New(root, bridge.New(spy)), spy
}

func TestDispatch_CreateOpensAndClosesCreationWave(t *testing.T) {
	root := filepath.Join("/tmp", "tree")
	w, spy := newDispatchSpy(root)

	w.dispatch(context.Background(), fsnotify.Event{
		Name: filepath.Join(root, "a.md"),
		Op:   fsnotify.Create,
	})

	if len(spy.calls) != 2 {
		t.Fatalf("expected 2 records (add_node + tree_update), got %d", len(spy.calls))
	}
	if spy.calls[0].kind != domain.RawAddNode {
		t.Errorf("first record = %s, want %s", spy.calls[0].kind, domain.RawAddNode)
	}
	if spy.calls[0].subject != domain.NodeSubject("md", "a.md") {
		t.Errorf("node subject = %+v", spy.calls[0].subject)
	}
	if spy.calls[1].kind != domain.RawTreeUpdate {
		t.Errorf("second record = %s, want %s", spy.calls[1].kind, domain.RawTreeUpdate)
	}
	if spy.calls[1].subject != domain.TreeSubject(TreeType, "tree") {
		t.Errorf("tree subject = %+v", spy.calls[1].subject)
	}
}

func TestDispatch_WriteIsAPropertyUpdate(t *testing.T) {
	root := filepath.Join("/tmp", "tree")
	w, spy := newDispatchSpy(root)

	w.dispatch(context.Background(), fsnotify.Event{
		Name: filepath.Join(root, "a.md"),
		Op:   fsnotify.Write,
	})

	if len(spy.calls) != 1 {
		t.Fatalf("expected 1 record, got %d", len(spy.calls))
	}
	if spy.calls[0].kind != domain.RawPropertyUpdate {
		t.Errorf("record = %s, want %s", spy.calls[0].kind, domain.RawPropertyUpdate)
	}
}

func TestDispatch_RemoveAndRenameFreeTheNode(t *testing.T) {
	root := filepath.Join("/tmp", "tree")

	for _, op := range []fsnotify.Op{fsnotify.Remove, fsnotify.Rename} {
		t.Run(op.String(), func(t *testing.T) {
			w, spy := newDispatchSpy(root)
			w.dispatch(context.Background(), fsnotify.Event{
				Name: filepath.Join(root, "a.md"),
				Op:   op,
			})

			if len(spy.calls) != 2 {
				t.Fatalf("expected 2 records (free_node + tree_update), got %d", len(spy.calls))
			}
			if spy.calls[0].kind != domain.RawFreeNode {
				t.Errorf("first record = %s, want %s", spy.calls[0].kind, domain.RawFreeNode)
			}
			if spy.calls[1].kind != domain.RawTreeUpdate {
				t.Errorf("second record = %s, want %s", spy.calls[1].kind, domain.RawTreeUpdate)
			}
		})
	}
}

func TestDispatch_ChmodIsNoise(t *testing.T) {
	root := filepath.Join("/tmp", "tree")
	w, spy := newDispatchSpy(root)

	w.dispatch(context.Background(), fsnotify.Event{
		Name: filepath.Join(root, "a.md"),
		Op:   fsnotify.Chmod,
	})

	if len(spy.calls) != 1 {
		t.Fatalf("expected 1 record, got %d", len(spy.calls))
	}
	if spy.calls[0].kind != domain.RawNodeUpdate {
		t.Errorf("chmod recorded as %s, want the filtered %s", spy.calls[0].kind, domain.RawNodeUpdate)
	}
}

func TestSubjectFor_PathShapes(t *testing.T) {
	w := New("/watch/root", nil)

	cases := []struct {
		path     string
		wantType string
		wantName string
	}{
		{"/watch/root/a.md", "md", "a.md"},
		{"/watch/root/nested/b.json", "json", filepath.Join("nested", "b.json")},
		{"/watch/root/Makefile", "file", "Makefile"},
		{"/elsewhere/c.txt", "txt", "c.txt"},
	}

	for _, tc := range cases {
		gotType, gotName := w.subjectFor(tc.path)
		if gotType != tc.wantType || gotName != tc.wantName {
			t.Errorf("subjectFor(%s) = (%s, %s), want (%s, %s)",
				tc.path, gotType, gotName, tc.wantType, tc.wantName)
		}
	}
}
