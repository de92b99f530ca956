package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rcail/nudge/internal/alert"
	"github.com/rcail/nudge/internal/config"
	"github.com/rcail/nudge/internal/store"
)

// newTestEnv isolates a command run: records under a temp dir, a config
// file pointing the notifier at /bin/true so no real banner is shown,
// and no change hook.
func newTestEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("notifier: /bin/true\n"), 0o644))

	t.Setenv(config.EnvConfig, cfgPath)
	t.Setenv(config.EnvDir, dir)
	return dir
}

// writeConfig replaces the test env's config file contents.
func writeConfig(t *testing.T, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(os.Getenv(config.EnvConfig), []byte(contents), 0o644))
}

// runCommand executes the CLI with the given args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// seedAlert writes a record file directly, bypassing the engine, so
// tests control ids and timestamps.
func seedAlert(t *testing.T, dir string, a *alert.Alert) {
	t.Helper()
	_, err := store.New(dir).Save(a)
	require.NoError(t, err)
}

func seeded(id, title, message string, created int64) *alert.Alert {
	return &alert.Alert{
		ID:        id,
		Title:     title,
		Message:   message,
		CreatedAt: time.Unix(created, 0).UTC(),
	}
}

// waitForFile blocks until a detached command's marker file appears.
func waitForFile(t *testing.T, path string) {
	t.Helper()
	require.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond, "marker %s never appeared", path)
}

// decodeResponse parses a JSON-mode envelope.
func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp
}
