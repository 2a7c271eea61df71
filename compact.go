// Copyright 2024 The University of Queensland
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

import "encoding/json"

// Packed layout: major in bits 63..43, minor in 42..22, patch in 21..1, and
// bit 0 set when the version carries the sentinel "0" prerelease. Shifting
// the flag out leaves the numeric triple in lexicographic order.
const (
	packedFieldBits = 21
	packedFieldMax  = 1<<packedFieldBits - 1

	packedMajorShift = 1 + 2*packedFieldBits
	packedMinorShift = 1 + packedFieldBits
	packedPatchShift = 1

	packedPreFlag = 1
)

// CompactVersion is a Version optimized for storage density. Most real
// versions have small numeric components, no build metadata, and at most the
// sentinel "0" prerelease; those pack into a single integer. Everything else
// falls back to a pointer to an immutable heap Version shared by every copy.
//
// CompactVersion values are safe to copy and share across goroutines. They
// must not be used directly as map keys: two logically equal values can
// differ in pointer identity. Use Key for keying and Equal or Compare for
// comparisons.
//
// The zero value is version 0.0.0.
type CompactVersion struct {
	packed uint64
	full   *Version
}

// CompactVersionOf converts a full version, packing it when possible.
func CompactVersionOf(v Version) CompactVersion {
	if v.Major > packedFieldMax || v.Minor > packedFieldMax || v.Patch > packedFieldMax {
		return CompactVersion{full: &v}
	}
	if v.Build != "" || (v.Pre != "" && v.Pre != sentinelPre) {
		return CompactVersion{full: &v}
	}
	packed := v.Major<<packedMajorShift | v.Minor<<packedMinorShift | v.Patch<<packedPatchShift
	if v.Pre != "" {
		packed |= packedPreFlag
	}
	return CompactVersion{packed: packed}
}

// Major returns the major component.
func (c CompactVersion) Major() uint64 {
	if c.full != nil {
		return c.full.Major
	}
	return c.packed >> packedMajorShift & packedFieldMax
}

// Minor returns the minor component.
func (c CompactVersion) Minor() uint64 {
	if c.full != nil {
		return c.full.Minor
	}
	return c.packed >> packedMinorShift & packedFieldMax
}

// Patch returns the patch component.
func (c CompactVersion) Patch() uint64 {
	if c.full != nil {
		return c.full.Patch
	}
	return c.packed >> packedPatchShift & packedFieldMax
}

// Pre returns the prerelease identifiers, empty for a release.
func (c CompactVersion) Pre() string {
	if c.full != nil {
		return c.full.Pre
	}
	if c.packed&packedPreFlag != 0 {
		return sentinelPre
	}
	return ""
}

// Build returns the build metadata, always empty in the packed form.
func (c CompactVersion) Build() string {
	if c.full != nil {
		return c.full.Build
	}
	return ""
}

// IsPrerelease returns true when the version has a non-empty prerelease.
func (c CompactVersion) IsPrerelease() bool {
	return c.Pre() != ""
}

// Version expands back to a full Version. The packed form expands without
// touching the heap.
func (c CompactVersion) Version() Version {
	if c.full != nil {
		return *c.full
	}
	return Version{
		Major: c.Major(),
		Minor: c.Minor(),
		Patch: c.Patch(),
		Pre:   c.Pre(),
	}
}

// Key returns a comparable value suitable for map keys, equal exactly when
// the logical versions are equal.
func (c CompactVersion) Key() Version {
	return c.Version()
}

// Compare orders compact versions exactly like their expanded Versions.
// Two packed values compare on the integer alone; every other pairing goes
// through the full ordering rule.
func (c CompactVersion) Compare(other CompactVersion) int {
	if c.full == nil && other.full == nil {
		a, b := c.packed>>packedPatchShift, other.packed>>packedPatchShift
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		// at an equal triple the sentinel prerelease sorts first
		switch {
		case c.packed&packedPreFlag == other.packed&packedPreFlag:
			return 0
		case c.packed&packedPreFlag != 0:
			return -1
		default:
			return 1
		}
	}
	cv, ov := c.Version(), other.Version()
	return cv.Compare(ov)
}

// Equal reports logical equality, build metadata included.
func (c CompactVersion) Equal(other CompactVersion) bool {
	return c.Compare(other) == 0
}

// String formats the expanded version.
func (c CompactVersion) String() string {
	return c.Version().String()
}

// MarshalJSON encodes the expanded version record.
func (c CompactVersion) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Version())
}

// UnmarshalJSON decodes a version record, repacking when possible.
func (c *CompactVersion) UnmarshalJSON(data []byte) error {
	var v Version
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = CompactVersionOf(v)
	return nil
}
