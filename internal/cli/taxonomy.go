package cli

import (
	"fmt"

	"github.com/aretw0/swell/internal/presentation/graph"
)

// RunTaxonomy prints the kind taxonomy as a table or a mermaid flowchart.
// Mermaid output is always raw so it can be piped into diagram tooling.
func RunTaxonomy(mermaid, plain bool) error {
	if mermaid {
		fmt.Print(graph.Mermaid())
		return nil
	}
	return printMarkdown(graph.Table(), plain)
}
