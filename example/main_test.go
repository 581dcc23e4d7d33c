package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_BundledScenario(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run("", &out))

	assert.Contains(t, out.String(), `BeginTooltip()`)
	assert.Contains(t, out.String(), `TextUnformatted("quality changed")`)
	assert.Contains(t, out.String(), "TextUnformatted(\"Speedometer\")\nEndChildFrame()\n")
	assert.Contains(t, out.String(), "-- result: quality=Ultra mode=Borderless vsync=true hud=[Minimap Wanted level]\n")
}

func TestRun_ScriptFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frames:\n  - close: [Settings]\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(path, &out))

	assert.Equal(t, "-- frame 0\nBegin(\"Settings\", nil, 64)\n-- result: quality=Medium mode=Windowed vsync=false hud=[Minimap Speedometer]\n", out.String())
}

func TestRun_BadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frames:\n  - tap: [x]\n"), 0o600))

	assert.Error(t, run(path, &bytes.Buffer{}))
}
