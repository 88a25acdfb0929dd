// Package semver classifies the difference between two dotted version
// strings as a major, minor or patch bump.
package semver

import (
	"fmt"
	"strings"
)

// Kind names the positional segment of a dotted version that changed.
type Kind string

const (
	Major Kind = "major"
	Minor Kind = "minor"
	Patch Kind = "patch"
)

// PartNames maps a dotted-version position to its semantic label.
var PartNames = [...]Kind{Major, Minor, Patch}

// String returns the label of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of Major, Minor or Patch.
func (k Kind) IsValid() bool {
	switch k {
	case Major, Minor, Patch:
		return true
	default:
		return false
	}
}

// ParseKind converts a label (case-insensitive) into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("invalid bump kind %q (expected major, minor or patch)", s)
	}
	return k, nil
}

// Classify reports which segment differs between the changelog version and
// the manifest version.
//
// Both strings are split on "." and walked in lockstep with PartNames; the walk
// stops at the shortest of the three sequences, so parts beyond the third (or
// beyond the end of the shorter version) are never compared. Parts are compared
// as text: "02" and "2" differ. When no compared part differs the result is
// Patch.
func Classify(changelogVersion, manifestVersion string) Kind {
	a := strings.Split(changelogVersion, ".")
	b := strings.Split(manifestVersion, ".")

	n := min(len(a), len(b), len(PartNames))
	for i := range n {
		if a[i] != b[i] {
			return PartNames[i]
		}
	}
	return Patch
}
