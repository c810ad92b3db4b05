package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionTripleRegex is the publish-time version format: three dot-separated
// non-negative integers, no pre-release or build suffixes.
var versionTripleRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// IsTriple reports whether s is a version string in MAJOR.MINOR.PATCH form.
func IsTriple(s string) bool {
	return versionTripleRegex.MatchString(s)
}

// CompareDesc orders two version strings newest-first: it returns a negative
// value when a is newer than b, zero when they are equal component-wise, and
// a positive value otherwise.
//
// Well-formed versions are compared through semver. Imported data is not
// validated, so anything semver rejects degrades to a positional comparison
// where missing or non-numeric components count as zero.
func CompareDesc(a, b string) int {
	va, errA := semver.StrictNewVersion(a)
	vb, errB := semver.StrictNewVersion(b)
	if errA == nil && errB == nil {
		return vb.Compare(va)
	}
	for i := 0; i < 3; i++ {
		if d := component(b, i) - component(a, i); d != 0 {
			return d
		}
	}
	return 0
}

// component returns the i-th dot-separated component of v as an integer,
// or 0 when absent or non-numeric.
func component(v string, i int) int {
	parts := strings.Split(v, ".")
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return n
}

// SortDesc returns a copy of entries ordered newest-first. The input slice
// is never mutated.
func SortDesc(entries []VersionEntry) []VersionEntry {
	sorted := make([]VersionEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareDesc(sorted[i].Version, sorted[j].Version) < 0
	})
	return sorted
}

// Latest returns the newest entry of the given versions, or nil for an
// empty input.
func Latest(entries []VersionEntry) *VersionEntry {
	if len(entries) == 0 {
		return nil
	}
	sorted := SortDesc(entries)
	return &sorted[0]
}
