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

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type boundKind uint8

const (
	boundUnbounded boundKind = iota
	boundIncluded
	boundExcluded
)

// A Bound is one end of a version interval: Unbounded, Included(v) or
// Excluded(v). Whether Unbounded means -∞ or +∞ depends on whether the
// bound is used as a lower or an upper bound.
type Bound struct {
	kind    boundKind
	version Version
}

// Included returns a bound that includes v.
func Included(v Version) Bound {
	return Bound{kind: boundIncluded, version: v}
}

// Excluded returns a bound that excludes v.
func Excluded(v Version) Bound {
	return Bound{kind: boundExcluded, version: v}
}

// Unbounded returns a bound with no limit.
func Unbounded() Bound {
	return Bound{kind: boundUnbounded}
}

// IsUnbounded reports whether the bound has no limit.
func (b Bound) IsUnbounded() bool {
	return b.kind == boundUnbounded
}

// IsIncluded reports whether the bound includes its version.
func (b Bound) IsIncluded() bool {
	return b.kind == boundIncluded
}

// Version returns the bound's version. The boolean is false for an
// unbounded bound, whose version is meaningless.
func (b Bound) Version() (Version, bool) {
	return b.version, b.kind != boundUnbounded
}

// String returns a textual form of the bound for debugging.
func (b Bound) String() string {
	switch b.kind {
	case boundUnbounded:
		return "unbounded"
	case boundIncluded:
		return fmt.Sprintf("[%s]", b.version)
	default:
		return fmt.Sprintf("(%s)", b.version)
	}
}

// compareLower compares two bounds in their role as lower bounds.
// Unbounded is -∞; at equal versions the included bound comes first.
func compareLower(a, b Bound) int {
	switch {
	case a.kind == boundUnbounded && b.kind == boundUnbounded:
		return 0
	case a.kind == boundUnbounded:
		return -1
	case b.kind == boundUnbounded:
		return 1
	}
	if c := a.version.Compare(b.version); c != 0 {
		return c
	}
	if a.kind == b.kind {
		return 0
	}
	if a.kind == boundIncluded {
		return -1
	}
	return 1
}

// compareUpper compares two bounds in their role as upper bounds.
// Unbounded is +∞; at equal versions the excluded bound comes first.
func compareUpper(a, b Bound) int {
	switch {
	case a.kind == boundUnbounded && b.kind == boundUnbounded:
		return 0
	case a.kind == boundUnbounded:
		return 1
	case b.kind == boundUnbounded:
		return -1
	}
	if c := a.version.Compare(b.version); c != 0 {
		return c
	}
	if a.kind == b.kind {
		return 0
	}
	if a.kind == boundIncluded {
		return 1
	}
	return -1
}

var unboundedJSON = []byte(`"unbounded"`)

// MarshalJSON encodes the bound as "unbounded", {"included": version} or
// {"excluded": version}.
func (b Bound) MarshalJSON() ([]byte, error) {
	switch b.kind {
	case boundUnbounded:
		return unboundedJSON, nil
	case boundIncluded:
		return json.Marshal(struct {
			Included Version `json:"included"`
		}{b.version})
	default:
		return json.Marshal(struct {
			Excluded Version `json:"excluded"`
		}{b.version})
	}
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (b *Bound) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), unboundedJSON) {
		*b = Unbounded()
		return nil
	}
	var rec struct {
		Included *Version `json:"included"`
		Excluded *Version `json:"excluded"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	switch {
	case rec.Included != nil:
		*b = Included(*rec.Included)
	case rec.Excluded != nil:
		*b = Excluded(*rec.Excluded)
	default:
		return fmt.Errorf("invalid bound: %s", data)
	}
	return nil
}
