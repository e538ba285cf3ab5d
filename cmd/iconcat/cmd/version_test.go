package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/iconcat/pkg/version"
)

func TestVersionCmd(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, stdout string)
	}{
		{
			name: "full",
			args: []string{"version"},
			check: func(t *testing.T, stdout string) {
				assert.Equal(t, strings.TrimSpace(version.String()), strings.TrimSpace(stdout))
			},
		},
		{
			name: "short",
			args: []string{"version", "--short"},
			check: func(t *testing.T, stdout string) {
				assert.Equal(t, version.Short(), strings.TrimSpace(stdout))
			},
		},
		{
			name: "json",
			args: []string{"version", "--json"},
			check: func(t *testing.T, stdout string) {
				var info version.BuildInfo
				require.NoError(t, json.Unmarshal([]byte(stdout), &info))
				assert.Equal(t, version.Version, info.Version)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: an isolated environment
			isolate(t)

			// When: running the version command
			stdout, _, err := execute(t, tt.args...)

			// Then: output matches the version package
			require.NoError(t, err)
			tt.check(t, stdout)
		})
	}
}

func TestVersionCmd_NeedsNoConfig(t *testing.T) {
	// Given: an invalid theme in the environment
	isolate(t)
	t.Setenv("ICONCAT_THEME", "purple")

	// When: printing the version
	_, _, err := execute(t, "version", "--short")

	// Then: it still works
	assert.NoError(t, err)
}
