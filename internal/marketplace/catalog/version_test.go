package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareDesc(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int // sign of the expected result
	}{
		{name: "a newer than b", a: "1.2.0", b: "1.0.0", want: -1},
		{name: "b newer than a", a: "1.0.0", b: "1.2.0", want: 1},
		{name: "equal", a: "1.1.1", b: "1.1.1", want: 0},
		{name: "major dominates minor", a: "2.0.0", b: "1.9.9", want: -1},
		{name: "patch breaks tie", a: "1.0.1", b: "1.0.2", want: 1},
		{name: "missing component counts as zero", a: "1.0", b: "1.0.0", want: 0},
		{name: "non-numeric component counts as zero", a: "1.x.0", b: "1.0.0", want: 0},
		{name: "malformed loses to real version", a: "garbage", b: "0.0.1", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sign(CompareDesc(tt.a, tt.b)))
			assert.Equal(t, -tt.want, sign(CompareDesc(tt.b, tt.a)))
		})
	}
}

func TestCompareDescAntisymmetry(t *testing.T) {
	versions := []string{"0.0.0", "0.9.0", "1.0.0", "1.0.1", "1.1.0", "1.2.0", "2.0.0", "10.0.0"}
	for _, a := range versions {
		for _, b := range versions {
			assert.Equal(t, -CompareDesc(b, a), CompareDesc(a, b), "compare(%s,%s)", a, b)
			if a == b {
				assert.Zero(t, CompareDesc(a, b))
			}
		}
	}
}

func TestLatest(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		want     string
	}{
		{name: "ascending input", versions: []string{"1.0.0", "1.1.0", "1.2.0"}, want: "1.2.0"},
		{name: "unordered input", versions: []string{"1.1.1", "1.2.0", "1.0.0"}, want: "1.2.0"},
		{name: "single version", versions: []string{"0.9.0"}, want: "0.9.0"},
		{name: "duplicate versions", versions: []string{"1.0.0", "1.0.0"}, want: "1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]VersionEntry, len(tt.versions))
			for i, v := range tt.versions {
				entries[i] = VersionEntry{Version: v}
			}
			latest := Latest(entries)
			require.NotNil(t, latest)
			assert.Equal(t, tt.want, latest.Version)
		})
	}

	assert.Nil(t, Latest(nil))
	assert.Nil(t, Latest([]VersionEntry{}))
}

func TestSortDescDoesNotMutateInput(t *testing.T) {
	entries := []VersionEntry{{Version: "1.0.0"}, {Version: "1.2.0"}, {Version: "1.1.0"}}
	sorted := SortDesc(entries)

	assert.Equal(t, "1.2.0", sorted[0].Version)
	assert.Equal(t, "1.1.0", sorted[1].Version)
	assert.Equal(t, "1.0.0", sorted[2].Version)

	// input order untouched
	assert.Equal(t, "1.0.0", entries[0].Version)
	assert.Equal(t, "1.2.0", entries[1].Version)
	assert.Equal(t, "1.1.0", entries[2].Version)
}

func TestIsTriple(t *testing.T) {
	assert.True(t, IsTriple("1.0.0"))
	assert.True(t, IsTriple("0.0.0"))
	assert.True(t, IsTriple("12.34.56"))
	assert.False(t, IsTriple("1.0"))
	assert.False(t, IsTriple("1.0.0-alpha"))
	assert.False(t, IsTriple("v1.0.0"))
	assert.False(t, IsTriple(""))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
