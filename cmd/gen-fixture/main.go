// Command gen-fixture writes sample session fixtures for the replay command.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/swell/pkg/adapters/replay"
)

func main() {
	targetDir := "examples/fixtures"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	// Ensure dir exists
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		panic(err)
	}

	fmt.Printf("Generating session fixtures in: %s\n", targetDir)

	write(targetDir, "copy-paste.yaml", copyPaste())
	write(targetDir, "teardown.yaml", teardown())
	write(targetDir, "undo.yaml", undoSession())

	fmt.Println("Done. Replay them with: swell replay <file>")
}

type fixtureFile struct {
	Steps []replay.Step `yaml:"steps"`
}

func write(dir, name string, steps []replay.Step) {
	data, err := yaml.Marshal(fixtureFile{Steps: steps})
	check(err)
	check(os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

// copyPaste is the canonical burst: one notification per duplicated node,
// closed by the whole-tree echo.
func copyPaste() []replay.Step {
	return []replay.Step{
		{Event: "copy_node", Node: mesh("Box.001")},
		{Event: "copy_node", Node: mesh("Sphere.001")},
		{Event: "copy_node", Node: mesh("Circle.001")},
		{Event: "tree_update", Tree: scene()},
	}
}

// teardown deletes two nodes; the leading run decides the change kind, so
// the trailing relink notification only counts toward the wave size.
func teardown() []replay.Step {
	return []replay.Step{
		{Event: "free_node", Node: mesh("Box")},
		{Event: "free_node", Node: mesh("Sphere")},
		{Event: "add_link_to_node", Node: mesh("Circle")},
		{Event: "tree_update", Tree: scene()},
	}
}

// undoSession mixes per-node noise with an undo step.
func undoSession() []replay.Step {
	return []replay.Step{
		{Event: "add_node", Node: mesh("Box")},
		{Event: "node_property_update", Node: mesh("Box")},
		{Event: "undo"},
		{Event: "node_update", Node: mesh("Box")},
		{Event: "tree_update", Tree: scene()},
	}
}

func mesh(name string) *replay.Ref {
	return &replay.Ref{Type: "mesh", Name: name}
}

func scene() *replay.Ref {
	return &replay.Ref{Type: "graph", Name: "Scene"}
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
