package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flags")))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "not found")))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain error")))
}

func TestExitError_WrapsAndUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapExitError(ExitFailure, "create failed", cause)

	assert.Contains(t, err.Error(), "create failed")
	assert.Contains(t, err.Error(), "disk full")
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
}

func TestOutputFormatter_JSONEnvelope(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}

	require.NoError(t, f.Success(map[string]string{"id": "1_a"}))
	assert.JSONEq(t, `{"status":"ok","data":{"id":"1_a"}}`, buf.String())

	buf.Reset()
	require.NoError(t, f.Error("NOT_FOUND", "no alert"))
	assert.JSONEq(t, `{"status":"error","error":{"code":"NOT_FOUND","message":"no alert"}}`, buf.String())
}

func TestOutputFormatter_TextMode(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &buf}

	require.NoError(t, f.SuccessText("rendered line", map[string]string{"ignored": "x"}))
	assert.Equal(t, "rendered line\n", buf.String())

	buf.Reset()
	require.NoError(t, f.Error("NOT_FOUND", "no alert"))
	assert.Equal(t, "Error: no alert\n", buf.String())
}
