package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/pong/pong"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Frontend: FrontendWindow,
		FontPath: DefaultFontPath,
		FontSize: DefaultFontSize,
	}, cfg)
}

func TestLoadEnvironment(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"PONG_FRONTEND":  "terminal",
		"PONG_FONT":      "/tmp/font.ttf",
		"PONG_FONT_SIZE": "18",
		"PONG_CPU":       "right",
		"PONG_SOUND":     "1",
		"PONG_DEBUG":     "true",
		"PONG_TELEMETRY": "false",
	}))
	require.NoError(t, err)

	assert.Equal(t, FrontendTerminal, cfg.Frontend)
	assert.Equal(t, "/tmp/font.ttf", cfg.FontPath)
	assert.Equal(t, 18.0, cfg.FontSize)
	assert.Equal(t, []pong.Side{pong.SideRight}, cfg.CPU)
	assert.True(t, cfg.Sound)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Telemetry)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := load(
		[]string{"-frontend", "window", "-cpu", "both", "-sound=false", "-font-size", "30"},
		envMap(map[string]string{"PONG_FRONTEND": "terminal", "PONG_SOUND": "yes"}),
	)
	// "yes" is not a valid bool
	require.ErrorIs(t, err, ErrInvalid)

	cfg, err = load(
		[]string{"-frontend", "window", "-cpu", "both", "-sound=false", "-font-size", "30"},
		envMap(map[string]string{"PONG_FRONTEND": "terminal", "PONG_SOUND": "true"}),
	)
	require.NoError(t, err)
	assert.Equal(t, FrontendWindow, cfg.Frontend)
	assert.Equal(t, []pong.Side{pong.SideLeft, pong.SideRight}, cfg.CPU)
	assert.False(t, cfg.Sound)
	assert.Equal(t, 30.0, cfg.FontSize)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"unknown frontend", []string{"-frontend", "vr"}, nil},
		{"unknown side", []string{"-cpu", "middle"}, nil},
		{"zero font size", []string{"-font-size", "0"}, nil},
		{"malformed font size env", nil, map[string]string{"PONG_FONT_SIZE": "big"}},
		{"malformed bool env", nil, map[string]string{"PONG_DEBUG": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(tt.args, envMap(tt.env))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := load([]string{"-no-such-flag"}, envMap(nil))
	assert.Error(t, err)
}

func TestParseSides(t *testing.T) {
	for input, want := range map[string][]pong.Side{
		"":      nil,
		"none":  nil,
		"Left":  {pong.SideLeft},
		"right": {pong.SideRight},
		" both": {pong.SideLeft, pong.SideRight},
	} {
		got, err := ParseSides(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestLoadEnvFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.env")
	require.NoError(t, os.WriteFile(path, []byte("PONG_FRONTEND=terminal\nPONG_CPU=left\n"), 0o644))

	for _, key := range []string{"PONG_FRONTEND", "PONG_CPU"} {
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() { os.Unsetenv(key) })
	}

	require.NoError(t, LoadEnvFiles(path))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
	assert.Equal(t, []pong.Side{pong.SideLeft}, cfg.CPU)

	assert.Error(t, LoadEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
}
