package watcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOperation_String(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want string
	}{
		{"create", OpCreate, "CREATE"},
		{"modify", OpModify, "MODIFY"},
		{"delete", OpDelete, "DELETE"},
		{"rename", OpRename, "RENAME"},
		{"unknown", Operation(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.String())
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 300*time.Millisecond, opts.DebounceWindow)
	assert.Equal(t, 5*time.Second, opts.PollInterval)
	assert.False(t, opts.ForcePolling)
}

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
	assert.NoError(t, Options{}.Validate())
	assert.Error(t, Options{DebounceWindow: -1}.Validate())
	assert.Error(t, Options{PollInterval: -time.Second}.Validate())
}

func TestOptions_WithDefaults(t *testing.T) {
	// Given: options with only the window set
	opts := Options{DebounceWindow: 50 * time.Millisecond}

	// When: defaults are applied
	got := opts.WithDefaults()

	// Then: zero fields are filled and set fields kept
	assert.Equal(t, 50*time.Millisecond, got.DebounceWindow)
	assert.Equal(t, 5*time.Second, got.PollInterval)
}

func TestIgnored(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{".", true},
		{"", true},
		{".git", true},
		{".git/objects/ab", true},
		{"Actions/.DS_Store", true},
		{"Actions/general/add.svg", false},
		{"Actions/general", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ignored(tt.path), tt.path)
	}
}
