/*
Package replay loads scripted notification fixtures and feeds them through
a bridge, so a recorded editing session can be rerun outside any host.

Fixtures are YAML:

	steps:
	  - event: copy_node
	    node: {type: mesh, name: Box.001}
	  - event: tree_update
	    tree: {type: graph, name: Scene}
	  - event: undo
*/
package replay

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/swell/pkg/bridge"
	"github.com/aretw0/swell/pkg/domain"
)

// Ref names one subject in a fixture step.
type Ref struct {
	Type string `yaml:"type" mapstructure:"type"`
	Name string `yaml:"name" mapstructure:"name"`
}

// Step is one scripted notification. Event must be a known raw kind; Node
// and Tree are optional, matching hosts that fire subjectless hooks.
type Step struct {
	Event string `yaml:"event" mapstructure:"event"`
	Node  *Ref   `yaml:"node,omitempty" mapstructure:"node"`
	Tree  *Ref   `yaml:"tree,omitempty" mapstructure:"tree"`
}

// fixtureFile is the raw YAML shape. Steps stay generic maps so decode
// errors can name the offending entry.
type fixtureFile struct {
	Steps []map[string]any `yaml:"steps"`
}

// Load reads and parses a fixture file.
func Load(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Parse(data)
}

// Parse decodes fixture YAML into validated steps.
func Parse(data []byte) ([]Step, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("fixture has no steps")
	}

	steps := make([]Step, 0, len(file.Steps))
	for i, raw := range file.Steps {
		var step Step
		if err := mapstructure.Decode(raw, &step); err != nil {
			return nil, fmt.Errorf("step %d: failed to decode: %w", i+1, err)
		}
		if step.Event == "" {
			return nil, fmt.Errorf("step %d: missing event", i+1)
		}
		if !domain.RawKind(step.Event).Known() {
			return nil, fmt.Errorf("step %d: unknown event %q", i+1, step.Event)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Feed replays steps through the bridge in order. It stops early if the
// context is cancelled.
func Feed(ctx context.Context, b *bridge.Bridge, steps []Step) error {
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		node := step.Node.orZero()
		tree := step.Tree.orZero()

		switch domain.RawKind(step.Event) {
		case domain.RawAddNode:
			b.NodeAdded(ctx, node.Type, node.Name)
		case domain.RawCopyNode:
			b.NodeCopied(ctx, node.Type, node.Name)
		case domain.RawFreeNode:
			b.NodeFreed(ctx, node.Type, node.Name)
		case domain.RawAddLink:
			b.LinkAdded(ctx, node.Type, node.Name)
		case domain.RawPropertyUpdate:
			b.PropertyChanged(ctx, node.Type, node.Name)
		case domain.RawNodeUpdate:
			b.NodeChanged(ctx, node.Type, node.Name)
		case domain.RawTreeUpdate:
			b.TreeChanged(ctx, tree.Type, tree.Name)
		case domain.RawMonadTreeUpdate:
			b.MonadTreeChanged(ctx, tree.Type, tree.Name)
		case domain.RawUndo:
			b.UndoPerformed(ctx)
		default:
			return fmt.Errorf("step %d: no bridge hook for event %q", i+1, step.Event)
		}
	}
	return nil
}

func (r *Ref) orZero() Ref {
	if r == nil {
		return Ref{}
	}
	return *r
}

// Summary renders a markdown report of a replay run. Changes arrive in
// journal order (newest first) and are printed chronologically.
func Summary(steps []Step, changes []domain.Change) string {
	var sb strings.Builder
	sb.WriteString("# Replay report\n\n")
	sb.WriteString(fmt.Sprintf("Fed **%d** raw events, coalesced into **%d** changes.\n\n", len(steps), len(changes)))

	if len(changes) == 0 {
		sb.WriteString("No waves closed. Fixtures need a terminating event (tree_update, monad_tree_update or node_property_update) after each burst.\n")
		return sb.String()
	}

	sb.WriteString("| # | Change | Subjects | Wave |\n")
	sb.WriteString("|---|--------|----------|------|\n")
	for i := len(changes) - 1; i >= 0; i-- {
		ch := changes[i]
		subjects := "-"
		if names := ch.SubjectNames(); len(names) > 0 {
			subjects = strings.Join(names, ", ")
		}
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %d |\n", len(changes)-i, ch.Kind, subjects, ch.WaveSize))
	}
	return sb.String()
}
