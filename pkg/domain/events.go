package domain

// RawKind identifies a low-level notification fired by the host editor.
// The host emits several of these per logical user action; their relative
// order is a property of the host, not of this package, and the quirks noted
// below are observations that the coalescing heuristics rely on.
type RawKind string

const (
	// RawTreeUpdate fires last in a wave, except during node creation.
	RawTreeUpdate RawKind = "tree_update"
	// RawMonadTreeUpdate is the group-tree variant of RawTreeUpdate.
	RawMonadTreeUpdate RawKind = "monad_tree_update"
	// RawNodeUpdate is the host's generic "something about a node changed"
	// echo. It can fire last during node creation, which makes it ambiguous;
	// ingestion filters it out entirely (see Coordinator.Record).
	RawNodeUpdate RawKind = "node_update"

	// RawAddNode fires first in a creation wave.
	RawAddNode RawKind = "add_node"
	// RawCopyNode fires first in a duplication wave, once per copied node.
	RawCopyNode RawKind = "copy_node"
	// RawFreeNode fires first in a removal wave, once per removed node.
	RawFreeNode RawKind = "free_node"
	// RawAddLink fires for manually created links only; programmatic link
	// changes surface as tree updates.
	RawAddLink RawKind = "add_link_to_node"
	// RawPropertyUpdate fires when a node property is edited. Its position
	// in a wave is not fully reliable in current hosts.
	RawPropertyUpdate RawKind = "node_property_update"
	// RawUndo fires alone; the host replays no other notifications for the
	// tree changes an undo causes.
	RawUndo RawKind = "undo"
)

// terminators is the set of raw kinds the host emits as the final
// notification of a logical action. It is the whole wave-termination
// predicate and is tested independently of the Coordinator.
var terminators = map[RawKind]struct{}{
	RawTreeUpdate:      {},
	RawPropertyUpdate:  {},
	RawMonadTreeUpdate: {},
}

// Terminates reports whether k closes the current wave.
//
// The heuristic is an approximation inherited from the host's observed
// behavior, not a guaranteed protocol: hosts have emitted action sequences
// where none of the three kinds arrives last. Callers must treat a
// still-open wave as possible at any time.
func (k RawKind) Terminates() bool {
	_, ok := terminators[k]
	return ok
}

// Known reports whether k is one of the declared raw kinds.
func (k RawKind) Known() bool {
	_, ok := conversion[k]
	return ok
}

// RawKinds returns the declared raw kinds in a stable order.
func RawKinds() []RawKind {
	return []RawKind{
		RawTreeUpdate,
		RawMonadTreeUpdate,
		RawNodeUpdate,
		RawAddNode,
		RawCopyNode,
		RawFreeNode,
		RawAddLink,
		RawPropertyUpdate,
		RawUndo,
	}
}
