package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoview/pkg/ecoview"
)

func TestLoadRunConfigExample(t *testing.T) {
	cfg, err := loadRunConfig(filepath.Join("testdata", "ex.config.toml"))
	require.NoError(t, err)

	assert.Equal(t, &ecoview.Coordinate{Row: 0, Col: 0}, cfg.Start)
	assert.Equal(t, &ecoview.Coordinate{Row: 4, Col: 11}, cfg.Target)
	assert.Equal(t, "route.png", cfg.Output)
	assert.Equal(t, ecoview.StrokeStyle{Color: color.RGBA{0, 255, 128, 255}, Width: 2}, cfg.Stroke)
	assert.True(t, cfg.Annotate)
	assert.Equal(t, 256, cfg.CancelCheckInterval)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRunConfigDefaults(t *testing.T) {
	path := writeConfig(t, "annotate = false\n")

	cfg, err := loadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultRunConfig(), cfg)
	assert.Nil(t, cfg.Start)
	assert.Nil(t, cfg.Target)
}

func TestLoadRunConfigErrors(t *testing.T) {
	tests := map[string]string{
		"half coordinate": "start_row = 3\n",
		"bad colour":      "stroke_color = \"red\"\n",
		"bad timeout":     "timeout = \"soon\"\n",
		"zero width":      "stroke_width = 0\n",
		"malformed toml":  "start_row = \n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadRunConfig(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	c, err := parseCoordinate(" 4, 11")
	require.NoError(t, err)
	assert.Equal(t, ecoview.Coordinate{Row: 4, Col: 11}, *c)

	for _, bad := range []string{"", "4", "4,x", "1,2,3"} {
		_, err := parseCoordinate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, c)

	c, err = parseHexColor("0000ff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, c)

	_, err = parseHexColor("#gg0000")
	assert.Error(t, err)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
