package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMultiYAMLFromBytes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCount int
		wantErr   bool
	}{
		{
			name:      "single document",
			input:     "name: ShieldedSwap\nversion: 1.0.0\n",
			wantCount: 1,
		},
		{
			name:      "multiple documents",
			input:     "name: one\n---\nname: two\n---\nname: three\n",
			wantCount: 3,
		},
		{
			name:      "leading and trailing separators",
			input:     "---\nname: one\n---\n",
			wantCount: 1,
		},
		{
			name:      "empty input",
			input:     "",
			wantCount: 0,
		},
		{
			name:      "only separators",
			input:     "---\n---\n",
			wantCount: 0,
		},
		{
			name:      "json is valid yaml",
			input:     `{"name": "one", "version": "1.0.0"}`,
			wantCount: 1,
		},
		{
			name:    "malformed yaml",
			input:   "name: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := ParseMultiYAMLFromBytes([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, docs, tt.wantCount)
		})
	}
}

func TestParseMultiYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing.yaml")
	contents := "name: Walnut Vault\nauthor: Walnut Labs\n---\nname: Oblivion Oracle\nauthor: Seis Oracles\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	docs, err := ParseMultiYAML(path)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Walnut Vault", docs[0]["name"])
	assert.Equal(t, "Seis Oracles", docs[1]["author"])
}

func TestParseMultiYAMLTabIndentation(t *testing.T) {
	input := "fee:\n\ttype: free\n"
	docs, err := ParseMultiYAMLFromBytes(replaceTabsWithSpaces([]byte(input)))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	fee, ok := docs[0]["fee"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "free", fee["type"])
}

func TestParseMultiYAMLMissingFile(t *testing.T) {
	_, err := ParseMultiYAML(filepath.Join(t.TempDir(), "no-such.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
