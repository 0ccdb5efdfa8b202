package hook

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/aretw0/swell/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envDumpHook returns a hook that writes the SWELL_CHANGE_* environment to
// outFile, using the shell available on the OS.
func envDumpHook(name string, on []string, outFile string) Config {
	if runtime.GOOS == "windows" {
		return Config{
			Name:    name,
			On:      on,
			Command: "cmd",
			Args:    []string{"/c", "echo %SWELL_CHANGE_KIND% %SWELL_CHANGE_SUBJECTS% %SWELL_CHANGE_WAVE% > " + outFile},
		}
	}
	return Config{
		Name:    name,
		On:      on,
		Command: "sh",
		Args:    []string{"-c", `echo "$SWELL_CHANGE_KIND $SWELL_CHANGE_SUBJECTS $SWELL_CHANGE_WAVE" > ` + outFile},
	}
}

func TestLoadConfigs(t *testing.T) {
	t.Run("Loads YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hooks.yaml")
		content := `
hooks:
  - name: rebuild
    on: [copy_nodes, add_node]
    command: make
    args: [preview]
  - name: notify
    command: notify-send
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		hooks, err := LoadConfigs(path)
		require.NoError(t, err)
		require.Len(t, hooks, 2)
		assert.Equal(t, "rebuild", hooks[0].Name)
		assert.Equal(t, []string{"copy_nodes", "add_node"}, hooks[0].On)
		assert.Equal(t, "make", hooks[0].Command)
		assert.Empty(t, hooks[1].On)
	})

	t.Run("Loads JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hooks.json")
		content := `{"hooks": [{"name": "rebuild", "command": "make"}]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		hooks, err := LoadConfigs(path)
		require.NoError(t, err)
		require.Len(t, hooks, 1)
		assert.Equal(t, "rebuild", hooks[0].Name)
	})

	t.Run("Missing File Means No Hooks", func(t *testing.T) {
		hooks, err := LoadConfigs(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.NoError(t, err)
		assert.Empty(t, hooks)
	})

	t.Run("Skips Incomplete Entries", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hooks.yaml")
		content := `
hooks:
  - name: no-command
  - command: no-name
  - name: ok
    command: true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		hooks, err := LoadConfigs(path)
		require.NoError(t, err)
		require.Len(t, hooks, 1)
		assert.Equal(t, "ok", hooks[0].Name)
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hooks.yaml")
		require.NoError(t, os.WriteFile(path, []byte("hooks: [unclosed"), 0644))

		_, err := LoadConfigs(path)
		assert.ErrorContains(t, err, "failed to parse hooks.yaml")
	})
}

func TestSink_OnChange(t *testing.T) {
	change := domain.Change{
		ID:   "chg-1",
		Kind: domain.ChangeCopyNodes,
		Subjects: []domain.Subject{
			domain.NodeSubject("SvMeshNode", "Box.001"),
			domain.NodeSubject("SvMeshNode", "Sphere.001"),
		},
		WaveSize: 3,
		At:       time.Now(),
	}

	t.Run("Passes Change via Env Vars", func(t *testing.T) {
		outFile := filepath.Join(t.TempDir(), "out.txt")
		sink := New([]Config{envDumpHook("dump", nil, outFile)})

		sink.OnChange(context.Background(), change)

		data, err := os.ReadFile(outFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "copy_nodes")
		assert.Contains(t, string(data), "Box.001,Sphere.001")
		assert.Contains(t, string(data), "3")
	})

	t.Run("Skips Non-Matching Kinds", func(t *testing.T) {
		outFile := filepath.Join(t.TempDir(), "out.txt")
		sink := New([]Config{envDumpHook("dump", []string{"free_nodes"}, outFile)})

		sink.OnChange(context.Background(), change)

		_, err := os.Stat(outFile)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Runs Matching Kinds", func(t *testing.T) {
		outFile := filepath.Join(t.TempDir(), "out.txt")
		sink := New([]Config{envDumpHook("dump", []string{"free_nodes", "copy_nodes"}, outFile)})

		sink.OnChange(context.Background(), change)

		_, err := os.Stat(outFile)
		assert.NoError(t, err)
	})

	t.Run("Failing Hook Does Not Stop Later Hooks", func(t *testing.T) {
		outFile := filepath.Join(t.TempDir(), "out.txt")
		sink := New([]Config{
			{Name: "broken", Command: "swell-no-such-binary"},
			envDumpHook("dump", nil, outFile),
		})

		sink.OnChange(context.Background(), change)

		_, err := os.Stat(outFile)
		assert.NoError(t, err)
	})
}
