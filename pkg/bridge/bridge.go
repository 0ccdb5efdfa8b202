/*
Package bridge translates a host editor's lifecycle hooks into raw
notification records.

The host calls one typed method per hook; the bridge owns the kind selection
and the subject shape, so call sites cannot record a node subject for a
tree-level signal or vice versa. It also guarantees the generic "something
changed" echo reaches the pipeline as node_update, where the Coordinator's
noise filter discards it.
*/
package bridge

import (
	"context"

	"github.com/aretw0/swell/pkg/domain"
)

// Recorder is the ingestion surface the bridge drives. *swell.Coordinator
// satisfies it.
type Recorder interface {
	Record(ctx context.Context, kind domain.RawKind, subject domain.Subject)
}

// Bridge is the host-facing glue. It is stateless; all buffering lives in
// the Recorder behind it.
type Bridge struct {
	rec Recorder
}

// New wires a Bridge to a Recorder.
func New(rec Recorder) *Bridge {
	return &Bridge{rec: rec}
}

// NodeAdded reports a newly created node. Fires first in a creation wave.
func (b *Bridge) NodeAdded(ctx context.Context, nodeType, name string) {
	b.rec.Record(ctx, domain.RawAddNode, domain.NodeSubject(nodeType, name))
}

// NodeCopied reports one duplicated node; the host calls it once per copy.
func (b *Bridge) NodeCopied(ctx context.Context, nodeType, name string) {
	b.rec.Record(ctx, domain.RawCopyNode, domain.NodeSubject(nodeType, name))
}

// NodeFreed reports one removed node; the host calls it once per removal.
func (b *Bridge) NodeFreed(ctx context.Context, nodeType, name string) {
	b.rec.Record(ctx, domain.RawFreeNode, domain.NodeSubject(nodeType, name))
}

// LinkAdded reports a manually created link, attributed to the node that
// received it.
func (b *Bridge) LinkAdded(ctx context.Context, nodeType, name string) {
	b.rec.Record(ctx, domain.RawAddLink, domain.NodeSubject(nodeType, name))
}

// PropertyChanged reports an edited node property.
func (b *Bridge) PropertyChanged(ctx context.Context, nodeType, name string) {
	b.rec.Record(ctx, domain.RawPropertyUpdate, domain.NodeSubject(nodeType, name))
}

// NodeChanged reports the host's generic per-node echo. It is recorded as
// node_update and discarded by the pipeline; the method exists so hosts can
// wire every hook uniformly.
func (b *Bridge) NodeChanged(ctx context.Context, nodeType, name string) {
	b.rec.Record(ctx, domain.RawNodeUpdate, domain.NodeSubject(nodeType, name))
}

// TreeChanged reports a whole-tree update. The subject is the tree itself.
func (b *Bridge) TreeChanged(ctx context.Context, treeType, name string) {
	b.rec.Record(ctx, domain.RawTreeUpdate, domain.TreeSubject(treeType, name))
}

// MonadTreeChanged reports a group-tree update. The subject is the tree
// itself.
func (b *Bridge) MonadTreeChanged(ctx context.Context, treeType, name string) {
	b.rec.Record(ctx, domain.RawMonadTreeUpdate, domain.TreeSubject(treeType, name))
}

// UndoPerformed reports an undo step. The host replays no per-entity
// notifications for it, so the record carries no subject.
func (b *Bridge) UndoPerformed(ctx context.Context) {
	b.rec.Record(ctx, domain.RawUndo, domain.Subject{})
}
