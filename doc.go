/*
Package swell coalesces the raw, noisy notification stream of a node-graph
editor into single, intent-revealing change events.

A host editor fires many low-level notifications per logical user action:
duplicating three nodes emits one copy notification per node plus a trailing
tree update, and editing a property may echo generic "node changed" signals
that carry no information at all. Reacting to each notification individually
causes redundant, possibly inconsistent recomputation downstream. Swell
buffers the temporal wave produced by one action, drops the noise, detects
the wave's end, and reduces it to exactly one domain.Change naming the
distinct affected subjects.

# Usage

	coord := swell.New(
		swell.WithLogger(logger),
		swell.WithSink(debuglog.New(prefs, traceLogger)),
		swell.WithJournal(memory.NewJournal()),
	)

	glue := bridge.New(coord)

	// Wire the host's lifecycle hooks to the bridge:
	glue.NodeCopied(ctx, "SvBoxNode", "Box.001")
	glue.NodeCopied(ctx, "SvSphereNode", "Sphere.001")
	glue.TreeChanged(ctx, "SverchCustomTreeType", "Geometry")
	// The tree update closes the wave: sinks receive one copy_nodes change
	// listing Box.001 and Sphere.001.

# Wave semantics

A wave is the ordered run of notifications produced by one logical action.
The host reliably ends an action with a tree update, a group-tree update, or
a property update, so those three kinds act as the flush signal. Reduction
classifies the wave's first record and reports the maximal leading run of
same-kind records as one change; tree-level signals reduce to an undefined
change without subjects, since attributing them would require diffing the
graph itself.

# Concurrency

A Coordinator performs no locking: the host delivers notifications
sequentially on the thread that mutates the graph. Create one Coordinator
per document, or serialize upstream, when that does not hold.
*/
package swell
