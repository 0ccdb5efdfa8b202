package swell_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/swell"
	"github.com/aretw0/swell/pkg/bridge"
	"github.com/aretw0/swell/pkg/domain"
	"github.com/aretw0/swell/pkg/ports"
)

// ExampleNew demonstrates the raw ingestion surface: three copy notifications
// and the trailing tree update collapse into a single change.
func ExampleNew() {
	coord := swell.New(swell.WithSink(ports.SinkFuncs{
		Change: func(_ context.Context, ch domain.Change) {
			fmt.Printf("%s: %s\n", ch.Kind, strings.Join(ch.SubjectNames(), ", "))
		},
	}))

	ctx := context.Background()
	coord.Record(ctx, domain.RawCopyNode, domain.NodeSubject("SvBoxNode", "Box.001"))
	coord.Record(ctx, domain.RawCopyNode, domain.NodeSubject("SvSphereNode", "Sphere.001"))
	coord.Record(ctx, domain.RawTreeUpdate, domain.TreeSubject("SverchCustomTreeType", "Geometry"))

	// Output: copy_nodes: Box.001, Sphere.001
}

// ExampleNew_bridge wires the typed host glue instead of calling Record
// directly; the generic NodeChanged echo is discarded as noise.
func ExampleNew_bridge() {
	coord := swell.New(swell.WithSink(ports.SinkFuncs{
		Change: func(_ context.Context, ch domain.Change) {
			fmt.Printf("%s (wave of %d)\n", ch.Kind, ch.WaveSize)
		},
	}))
	glue := bridge.New(coord)

	ctx := context.Background()
	glue.PropertyChanged(ctx, "SvBoxNode", "Box")
	// A property edit closed the wave already; the follow-up echo is dropped
	// and starts nothing new.
	glue.NodeChanged(ctx, "SvBoxNode", "Box")

	// Output: node_property_update (wave of 1)
}
