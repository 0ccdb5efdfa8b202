package replay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/swell/pkg/adapters/replay"
)

func TestLint_CleanFixture(t *testing.T) {
	steps, err := replay.Parse([]byte(copyScenario))
	require.NoError(t, err)

	assert.Empty(t, replay.Lint(steps))
}

func TestLint_Findings(t *testing.T) {
	fixture := `
steps:
  - event: copy_node
  - event: tree_update
  - event: add_node
    node: {type: mesh, name: Box}
`
	steps, err := replay.Parse([]byte(fixture))
	require.NoError(t, err)

	findings := replay.Lint(steps)
	require.Len(t, findings, 3)
	assert.Contains(t, findings[0], "step 1: copy_node names no node")
	assert.Contains(t, findings[1], "step 2: tree_update names no tree")
	assert.Contains(t, findings[2], "ends with add_node")
}

func TestLint_UndoNeedsNoSubject(t *testing.T) {
	fixture := `
steps:
  - event: undo
  - event: tree_update
    tree: {type: graph, name: Scene}
`
	steps, err := replay.Parse([]byte(fixture))
	require.NoError(t, err)

	assert.Empty(t, replay.Lint(steps))
}
