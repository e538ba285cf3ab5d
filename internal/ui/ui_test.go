package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkSizeForWidth_Breakpoints(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 3},
		{599, 3},
		{600, 4},
		{799, 4},
		{800, 6},
		{999, 6},
		{1000, 8},
		{1199, 8},
		{1200, 10},
		{4000, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ChunkSizeForWidth(tt.width), "width %d", tt.width)
	}
}

func TestChunkSizeForColumns(t *testing.T) {
	// 80 columns is 640 virtual pixels
	assert.Equal(t, 4, ChunkSizeForColumns(80))
	assert.Equal(t, 6, ChunkSizeForColumns(100))
	assert.Equal(t, 10, ChunkSizeForColumns(150))
	assert.Equal(t, 3, ChunkSizeForColumns(40))
}

func TestNewConfig_Options(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")
	buf := &bytes.Buffer{}

	cfg := NewConfig(buf, WithDarkTheme(true), WithChunkSize(5))

	assert.Equal(t, buf, cfg.Output)
	assert.True(t, cfg.Dark)
	assert.Equal(t, 5, cfg.ChunkSize)
	assert.False(t, cfg.NoColor)
}

func TestNewConfig_RespectsNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	cfg := NewConfig(&bytes.Buffer{})

	assert.True(t, cfg.NoColor)
}

func TestIsTTY_NonTerminals(t *testing.T) {
	assert.False(t, IsTTY(nil))
	assert.False(t, IsTTY(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	if assert.NoError(t, err) {
		defer f.Close()
		assert.False(t, IsTTY(f))
		assert.False(t, Interactive(f))
	}
}

func TestDetectCI(t *testing.T) {
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "TRAVIS"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
	assert.False(t, DetectCI())

	t.Setenv("GITHUB_ACTIONS", "true")
	assert.True(t, DetectCI())
}
