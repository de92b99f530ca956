package cli

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcail/nudge/internal/alert"
	"github.com/rcail/nudge/internal/store"
)

func TestSend_PrintsNewID(t *testing.T) {
	newTestEnv(t)

	out, err := runCommand(t, "send", "Build", "main is green")
	require.NoError(t, err)

	id := strings.TrimSpace(out)
	assert.Regexp(t, regexp.MustCompile(`^\d+_[0-9a-f]{8}$`), id)
}

func TestSend_PersistsRecordWithFields(t *testing.T) {
	dir := newTestEnv(t)

	out, err := runCommand(t, "send", "Deploy", "rolling out",
		"--tag", "ci", "--tag", "deploy",
		"--source", "jenkins",
		"--session", "run-42",
		"--kind", "update",
		"--dedupe-key", "deploy-prod",
		"--on-click", "open https://ci",
		"--sound", "ping")
	require.NoError(t, err)

	id := strings.TrimSpace(out)
	got, err := store.New(dir).Load(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Deploy", got.Title)
	assert.Equal(t, "rolling out", got.Message)
	assert.Equal(t, []string{"ci", "deploy"}, got.Tags)
	assert.Equal(t, "jenkins", got.Source)
	assert.Equal(t, "run-42", got.Session)
	assert.Equal(t, "update", got.Kind)
	assert.Equal(t, "deploy-prod", got.DedupeKey)
	assert.Equal(t, "open https://ci", got.OnClick)
	assert.Equal(t, "ping", got.Sound)
}

func TestSend_DedupeReplacesWithinSession(t *testing.T) {
	dir := newTestEnv(t)

	_, err := runCommand(t, "send", "first", "m", "--session", "s1", "--dedupe-key", "k")
	require.NoError(t, err)
	_, err = runCommand(t, "send", "second", "m", "--session", "s1", "--dedupe-key", "k")
	require.NoError(t, err)

	alerts, err := store.New(dir).List(alert.Filter{DedupeKeys: []string{"k"}})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "second", alerts[0].Title)
}

func TestSend_JSONFormat(t *testing.T) {
	newTestEnv(t)

	out, err := runCommand(t, "send", "Build", "done", "--format", "json")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Regexp(t, `^\d+_[0-9a-f]{8}$`, data["id"])
}

func TestSend_ConfigDefaultsApplyWhenFlagsUnset(t *testing.T) {
	dir := newTestEnv(t)
	writeConfig(t, "notifier: /bin/true\nsound: default-ping\nicon: default-bell\n")

	out, err := runCommand(t, "send", "Build", "done")
	require.NoError(t, err)

	got, err := store.New(dir).Load(strings.TrimSpace(out))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "default-ping", got.Sound)
	assert.Equal(t, "default-bell", got.Icon)
}

func TestSend_FlagBeatsConfigDefault(t *testing.T) {
	dir := newTestEnv(t)
	writeConfig(t, "notifier: /bin/true\nsound: default-ping\n")

	out, err := runCommand(t, "send", "Build", "done", "--sound", "chime")
	require.NoError(t, err)

	got, err := store.New(dir).Load(strings.TrimSpace(out))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "chime", got.Sound)
}

func TestSend_InvalidFormatIsCommandError(t *testing.T) {
	newTestEnv(t)

	_, err := runCommand(t, "send", "Build", "done", "--format", "xml")
	require.Error(t, err)
}
