// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semverset

import (
	"fmt"
	"strconv"
	"strings"
)

// sentinelPre is the smallest possible prerelease identifier. Bound
// arithmetic uses it to denote "just above the release, below any real
// prerelease" when computing exclusive cutoffs.
const sentinelPre = "0"

// Version is a semantic version (major.minor.patch[-prerelease][+build]).
//
// Ordering compares the numeric fields first, then the prerelease (a release,
// with empty prerelease, orders after any prerelease; non-empty prereleases
// compare identifier by identifier with numeric identifiers before
// alphanumeric ones), and finally the build metadata as a tie-break (empty
// build orders first). Build metadata never participates in set membership:
// every set operation strips it before testing containment.
type Version struct {
	Major uint64 `json:"major"`
	Minor uint64 `json:"minor"`
	Patch uint64 `json:"patch"`
	Pre   string `json:"pre,omitempty"`
	Build string `json:"build,omitempty"`
}

// NewVersion returns the release version major.minor.patch.
func NewVersion(major, minor, patch uint64) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// ParseVersion parses a version string.
// Supports formats like: "1.2.3", "1.2.3-alpha", "1.2.3-alpha.1",
// "1.2.3+build", "1.2.3-alpha+build". Missing minor or patch numbers
// default to zero.
func ParseVersion(s string) (Version, error) {
	var v Version

	rest := s
	if i := strings.IndexByte(rest, '+'); i >= 0 {
		v.Build = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '-'); i >= 0 {
		v.Pre = rest[i+1:]
		rest = rest[:i]
	}

	nums := strings.Split(rest, ".")
	if len(nums) < 1 || len(nums) > 3 {
		return Version{}, fmt.Errorf("invalid version format: %s", s)
	}

	var err error
	v.Major, err = strconv.ParseUint(nums[0], 10, 64)
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version: %s", nums[0])
	}
	if len(nums) > 1 {
		v.Minor, err = strconv.ParseUint(nums[1], 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("invalid minor version: %s", nums[1])
		}
	}
	if len(nums) > 2 {
		v.Patch, err = strconv.ParseUint(nums[2], 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("invalid patch version: %s", nums[2])
		}
	}
	return v, nil
}

// String returns the canonical string representation of the version.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// IsPrerelease reports whether the version has a non-empty prerelease.
func (v Version) IsPrerelease() bool {
	return v.Pre != ""
}

// withoutBuild returns the version with its build metadata stripped.
// Set membership is defined on the build-free version.
func (v Version) withoutBuild() Version {
	v.Build = ""
	return v
}

// release returns the plain release version at the same numeric triple.
func (v Version) release() Version {
	v.Pre = ""
	v.Build = ""
	return v
}

// Compare returns a negative number if v < other, zero if equal, and a
// positive number if v > other.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}
	if c := comparePrerelease(v.Pre, other.Pre); c != 0 {
		return c
	}
	return compareBuild(v.Build, other.Build)
}

// comparePrerelease compares two prerelease strings.
// An empty prerelease denotes a release and orders after any non-empty one.
func comparePrerelease(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	return compareIdentifiers(a, b)
}

// compareBuild compares two build metadata strings.
// Unlike prereleases, an empty build orders before any non-empty one.
func compareBuild(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return -1
	case b == "":
		return 1
	}
	return compareIdentifiers(a, b)
}

// compareIdentifiers compares dot-separated identifier lists.
// Numeric identifiers compare numerically and order before alphanumeric
// ones; alphanumeric identifiers compare lexically in ASCII order; a
// shorter list orders before a longer one with an equal prefix.
func compareIdentifiers(a, b string) int {
	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")

	for i := 0; i < len(aParts) && i < len(bParts); i++ {
		ap, bp := aParts[i], bParts[i]
		aNum := isNumericIdentifier(ap)
		bNum := isNumericIdentifier(bp)
		switch {
		case aNum && bNum:
			if c := compareNumericIdentifiers(ap, bp); c != 0 {
				return c
			}
		case aNum:
			return -1
		case bNum:
			return 1
		default:
			if c := strings.Compare(ap, bp); c != 0 {
				return c
			}
		}
	}

	switch {
	case len(aParts) < len(bParts):
		return -1
	case len(aParts) > len(bParts):
		return 1
	}
	return 0
}

// isNumericIdentifier reports whether the identifier consists solely of
// decimal digits.
func isNumericIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// compareNumericIdentifiers compares two digit-only identifiers by value,
// without parsing, so arbitrarily large identifiers work. Leading zeros
// break value ties lexically for a total order.
func compareNumericIdentifiers(a, b string) int {
	at := strings.TrimLeft(a, "0")
	bt := strings.TrimLeft(b, "0")
	if len(at) != len(bt) {
		if len(at) < len(bt) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(at, bt); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
