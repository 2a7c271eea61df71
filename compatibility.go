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
	"cmp"
	"fmt"
	"math"
)

type compatibilityKind uint8

const (
	compatPatch compatibilityKind = iota
	compatMinor
	compatMajor
)

// Compatibility identifies the set of versions whose leftmost nonzero
// numeric component is the same: 1.x.x versions are Major(1), 0.2.x
// versions are Minor(2), 0.0.3 is Patch(3). Two versions in the same class
// are the ones a caret requirement treats as interchangeable.
//
// Classes are totally ordered: every Patch class sorts below every Minor
// class, which sorts below every Major class, and within a kind classes sort
// by their component value. This matches Version order on the classes'
// minimum versions.
type Compatibility struct {
	kind compatibilityKind
	n    uint64
}

// MajorCompatibility returns the class of versions n.x.x. n must be nonzero;
// major zero versions belong to a Minor or Patch class.
func MajorCompatibility(n uint64) Compatibility {
	if n == 0 {
		panic("semverset: major compatibility requires a nonzero major")
	}
	return Compatibility{kind: compatMajor, n: n}
}

// MinorCompatibility returns the class of versions 0.n.x. n must be nonzero.
func MinorCompatibility(n uint64) Compatibility {
	if n == 0 {
		panic("semverset: minor compatibility requires a nonzero minor")
	}
	return Compatibility{kind: compatMinor, n: n}
}

// PatchCompatibility returns the class of versions 0.0.n. Zero is allowed:
// Patch(0) is the smallest class of all.
func PatchCompatibility(n uint64) Compatibility {
	return Compatibility{kind: compatPatch, n: n}
}

// CompatibilityOf classifies a version by its leftmost nonzero component.
// Build metadata and prerelease are ignored.
func CompatibilityOf(v Version) Compatibility {
	if v.Major != 0 {
		return Compatibility{kind: compatMajor, n: v.Major}
	}
	if v.Minor != 0 {
		return Compatibility{kind: compatMinor, n: v.Minor}
	}
	return Compatibility{kind: compatPatch, n: v.Patch}
}

// Minimum returns the smallest version in the class, a sentinel "0"
// prerelease of the class's base triple.
func (c Compatibility) Minimum() Version {
	v := c.base()
	v.Pre = sentinelPre
	return v
}

// Canonical returns the smallest release in the class.
func (c Compatibility) Canonical() Version {
	return c.base()
}

func (c Compatibility) base() Version {
	switch c.kind {
	case compatMajor:
		return Version{Major: c.n}
	case compatMinor:
		return Version{Minor: c.n}
	default:
		return Version{Patch: c.n}
	}
}

// Next returns the immediately following class. The component value
// increments within the kind and spills into the next wider kind at the
// numeric ceiling; past the largest Major class there is no successor.
func (c Compatibility) Next() (Compatibility, bool) {
	if c.n < math.MaxUint64 {
		return Compatibility{kind: c.kind, n: c.n + 1}, true
	}
	switch c.kind {
	case compatPatch:
		return Compatibility{kind: compatMinor, n: 1}, true
	case compatMinor:
		return Compatibility{kind: compatMajor, n: 1}, true
	default:
		return Compatibility{}, false
	}
}

// MaximumBound returns the exclusive upper bound closing the class, or an
// unbounded bound for the largest class.
func (c Compatibility) MaximumBound() Bound {
	next, ok := c.Next()
	if !ok {
		return Unbounded()
	}
	return Excluded(next.Minimum())
}

// Range returns the class as a version range, prereleases included.
func (c Compatibility) Range() Range {
	return NewRange(Included(c.Minimum()), c.MaximumBound())
}

// Compare orders classes: Patch below Minor below Major, then by component
// value.
func (c Compatibility) Compare(other Compatibility) int {
	if d := cmp.Compare(c.kind, other.kind); d != 0 {
		return d
	}
	return cmp.Compare(c.n, other.n)
}

// String renders the class with x placeholders for the free components.
func (c Compatibility) String() string {
	switch c.kind {
	case compatMajor:
		return fmt.Sprintf("%d.x.x", c.n)
	case compatMinor:
		return fmt.Sprintf("0.%d.x", c.n)
	default:
		return fmt.Sprintf("0.0.%d", c.n)
	}
}
