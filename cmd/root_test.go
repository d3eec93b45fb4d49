package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	viper.Reset()
	t.Cleanup(viper.Reset)

	color.NoColor = true

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const groceries = `events:
  - op: create
    title: Groceries
    body: Milk, eggs
  - op: hover
    target: {kind: color-icon, id: 1}
    at: {x: 10, y: 20}
  - op: click
    target: {kind: swatch, color: green}
`

func TestReplayJSON(t *testing.T) {
	out, err := runRoot(t, "replay", writeScript(t, groceries), "--format", "json")
	require.NoError(t, err)

	var model struct {
		Notes []struct {
			ID    int    `json:"id"`
			Title string `json:"title"`
			Color string `json:"color"`
		} `json:"notes"`
		UI struct {
			ColorPickerOpen bool `json:"color_picker_open"`
		} `json:"ui"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &model))
	require.Len(t, model.Notes, 1)
	assert.Equal(t, 1, model.Notes[0].ID)
	assert.Equal(t, "Groceries", model.Notes[0].Title)
	assert.Equal(t, "green", model.Notes[0].Color)
	assert.True(t, model.UI.ColorPickerOpen)
}

func TestReplayTextSteps(t *testing.T) {
	out, err := runRoot(t, "replay", writeScript(t, groceries), "--format", "text", "--steps")
	require.NoError(t, err)

	assert.Contains(t, out, "# step 1: create")
	assert.Contains(t, out, "# step 3: click")
	assert.Contains(t, out, "#1 [White]")
	assert.Contains(t, out, "#1 [Green]")
}

func TestReplayErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"replay", filepath.Join(t.TempDir(), "nope.yaml")}},
		{"bad format", []string{"replay", writeScript(t, groceries), "--format", "xml"}},
		{"unknown op", []string{"replay", writeScript(t, "events:\n  - op: explode\n")}},
		{"no args", []string{"replay"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runRoot(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestPaletteFromEnv(t *testing.T) {
	t.Setenv("STICKIES_PALETTE", "white,green")
	out, err := runRoot(t, "palette")
	require.NoError(t, err)

	assert.Contains(t, out, "White (default)")
	assert.Contains(t, out, "Green")
	assert.NotContains(t, out, "Purple")
}

func TestPaletteRejectsBadConfig(t *testing.T) {
	t.Setenv("STICKIES_PALETTE", "white,white")
	_, err := runRoot(t, "palette")
	assert.Error(t, err)
}

func TestVersionJSON(t *testing.T) {
	out, err := runRoot(t, "version", "--json")
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
