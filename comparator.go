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
	"fmt"
	"math"
	"strings"
)

// Op is a comparator operator.
type Op uint8

const (
	OpExact Op = iota
	OpGreater
	OpGreaterEq
	OpLess
	OpLessEq
	OpTilde
	OpCaret
	OpWildcard
)

// String returns the operator's requirement-syntax spelling.
func (op Op) String() string {
	switch op {
	case OpExact:
		return "="
	case OpGreater:
		return ">"
	case OpGreaterEq:
		return ">="
	case OpLess:
		return "<"
	case OpLessEq:
		return "<="
	case OpTilde:
		return "~"
	case OpCaret:
		return "^"
	case OpWildcard:
		return ""
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Comparator is one operator applied to a partial version, e.g. "^1.2" or
// ">=2.0.0-beta.1". Minor and Patch are nil when the field was not written;
// Patch is only present when Minor is, and Pre is only meaningful when Patch
// is present. Comparators arrive pre-validated from an external requirement
// parser and are treated as well-formed.
type Comparator struct {
	Op    Op
	Major uint64
	Minor *uint64
	Patch *uint64
	Pre   string
}

// Requirement is an ordered list of comparators, all of which a version must
// satisfy.
type Requirement struct {
	Comparators []Comparator
}

func (c Comparator) minorOr(def uint64) uint64 {
	if c.Minor == nil {
		return def
	}
	return *c.Minor
}

func (c Comparator) patchOr(def uint64) uint64 {
	if c.Patch == nil {
		return def
	}
	return *c.Patch
}

// preVersion returns the exact version a prerelease comparator names. A
// prerelease is only well-formed when minor and patch were written.
func (c Comparator) preVersion() Version {
	if c.Minor == nil || c.Patch == nil {
		panic(fmt.Sprintf("semverset: comparator %s has a prerelease without minor and patch", c))
	}
	return Version{Major: c.Major, Minor: *c.Minor, Patch: *c.Patch, Pre: c.Pre}
}

// String formats the comparator in requirement syntax.
func (c Comparator) String() string {
	var sb strings.Builder
	sb.WriteString(c.Op.String())
	fmt.Fprintf(&sb, "%d", c.Major)
	if c.Minor != nil {
		fmt.Fprintf(&sb, ".%d", *c.Minor)
		if c.Patch != nil {
			fmt.Fprintf(&sb, ".%d", *c.Patch)
		} else if c.Op == OpWildcard {
			sb.WriteString(".*")
		}
	} else if c.Op == OpWildcard {
		sb.WriteString(".*")
	}
	if c.Pre != "" {
		sb.WriteByte('-')
		sb.WriteString(c.Pre)
	}
	return sb.String()
}

// String formats the requirement as a comma-separated comparator list.
func (r Requirement) String() string {
	if len(r.Comparators) == 0 {
		return "*"
	}
	parts := make([]string, len(r.Comparators))
	for i, c := range r.Comparators {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// translate maps one comparator to its release-side and prerelease-side
// ranges. Each side reproduces, over the versions routed to it, exactly the
// versions the matching predicate accepts for this comparator. The
// requirement-level prerelease gate is applied separately in
// FromRequirement.
func (c Comparator) translate() (normal, pre Range) {
	switch c.Op {
	case OpExact, OpWildcard:
		return c.translateExact()
	case OpGreater:
		r := c.translateGreater()
		return r, r
	case OpGreaterEq:
		en, ep := c.translateExact()
		g := c.translateGreater()
		return en.Union(g), ep.Union(g)
	case OpLess:
		return c.translateLess()
	case OpLessEq:
		en, ep := c.translateExact()
		ln, lp := c.translateLess()
		return en.Union(ln), ep.Union(lp)
	case OpTilde:
		return c.translateTilde()
	case OpCaret:
		r := c.translateCaret()
		return r, r
	}
	panic(fmt.Sprintf("semverset: comparator has unknown operator %d", uint8(c.Op)))
}

// translateExact handles = and wildcard comparators. With a prerelease the
// comparator names one exact version; otherwise it spans everything sharing
// the written fields, which can never include a prerelease.
func (c Comparator) translateExact() (normal, pre Range) {
	if c.Pre != "" {
		return EmptyRange(), SingletonRange(c.preVersion())
	}

	base := Version{Major: c.Major, Minor: c.minorOr(0), Patch: c.patchOr(0)}
	var upper Bound
	switch {
	case c.Patch != nil:
		upper = bumpPatch(base)
	case c.Minor != nil:
		upper = bumpMinor(base)
	default:
		upper = bumpMajor(base)
	}
	lower, upper := releaseBounds(Included(base), upper)
	return NewRange(lower, upper), EmptyRange()
}

// translateGreater handles >. Missing fields act as their maximum value, so
// the lowest admitted version is the immediate successor of the most
// specific written field. At the numeric ceiling nothing can be greater and
// the range is empty.
func (c Comparator) translateGreater() Range {
	v := Version{
		Major: c.Major,
		Minor: c.minorOr(math.MaxUint64),
		Patch: c.patchOr(math.MaxUint64),
		Pre:   c.Pre,
	}
	b := bumpPre(v)
	if b.IsUnbounded() {
		return EmptyRange()
	}
	low, _ := b.Version()
	return NewRange(Included(low), Unbounded())
}

// translateLess handles <. With a written patch the cutoff carries the
// comparator's literal prerelease; without one the predicate rejects every
// prerelease sharing the cutoff triple, which the sentinel "0" prerelease
// bound expresses. The release side never needs the sentinel and is widened
// back to the plain release.
func (c Comparator) translateLess() (normal, pre Range) {
	upper := Version{Major: c.Major, Minor: c.minorOr(0), Patch: c.patchOr(0)}
	if c.Patch != nil {
		upper.Pre = c.Pre
	} else {
		upper.Pre = sentinelPre
	}
	pre = NewRange(Unbounded(), Excluded(upper))
	lo, hi := releaseBounds(Unbounded(), Excluded(upper))
	return NewRange(lo, hi), pre
}

// translateTilde handles ~. Prereleases only ever match when the comparator
// wrote a patch; the admitted window always closes at the next minor of the
// written fields, or the next major when only a major was written.
func (c Comparator) translateTilde() (normal, pre Range) {
	if c.Pre != "" {
		low := c.preVersion()
		upper := bumpMinor(low)
		nl, nu := releaseBounds(Included(low), upper)
		return NewRange(nl, nu), NewRange(Included(low), upper)
	}

	base := Version{Major: c.Major, Minor: c.minorOr(0), Patch: c.patchOr(0)}
	var upper Bound
	if c.Minor != nil {
		upper = bumpMinor(base)
	} else {
		upper = bumpMajor(base)
	}
	nl, nu := releaseBounds(Included(base), upper)
	normal = NewRange(nl, nu)
	if c.Patch != nil {
		pre = NewRange(Included(base), upper)
	} else {
		pre = EmptyRange()
	}
	return normal, pre
}

// translateCaret handles ^. The window closes at the next bump of the
// leftmost nonzero written field. When the patch is absent the predicate
// ignores prereleases entirely, so the window opens at the sentinel "0"
// prerelease of the floor version; with a patch the comparator's literal
// prerelease is the floor.
func (c Comparator) translateCaret() Range {
	if c.Minor == nil {
		return between(Version{Major: c.Major, Pre: sentinelPre}, bumpMajor)
	}

	if c.Patch == nil {
		low := Version{Major: c.Major, Minor: *c.Minor, Pre: sentinelPre}
		if c.Major > 0 {
			return between(low, bumpMajor)
		}
		return between(low, bumpMinor)
	}

	low := Version{Major: c.Major, Minor: *c.Minor, Patch: *c.Patch, Pre: c.Pre}
	switch {
	case c.Major > 0:
		return between(low, bumpMajor)
	case *c.Minor > 0:
		return between(low, bumpMinor)
	default:
		return between(low, bumpPatch)
	}
}

// gateWindow returns the prereleases this comparator vouches for at the
// requirement level: the prereleases of its own exact triple, and only when
// the comparator itself wrote a prerelease. Everything else is empty.
func (c Comparator) gateWindow() Range {
	if c.Pre == "" || c.Minor == nil || c.Patch == nil {
		return EmptyRange()
	}
	triple := Version{Major: c.Major, Minor: *c.Minor, Patch: *c.Patch}
	floor := triple
	floor.Pre = sentinelPre
	return NewRange(Included(floor), Excluded(triple))
}

// FromRequirement translates a requirement into its dual-side version set.
// The release side is the intersection of every comparator's release range.
// The prerelease side is likewise intersected, then restricted to the union
// of the comparators' gate windows: a prerelease can only satisfy the
// requirement when some comparator explicitly wrote a prerelease at the same
// numeric triple. An empty requirement admits every release and no
// prerelease.
func FromRequirement(req Requirement) VersionSet {
	normal := FullRange()
	pre := FullRange()
	gate := EmptyRange()
	for _, c := range req.Comparators {
		cn, cp := c.translate()
		normal = normal.Intersection(cn)
		pre = pre.Intersection(cp)
		gate = gate.Union(c.gateWindow())
	}
	pre = pre.Intersection(gate)
	return VersionSet{normal: normal, pre: pre}
}
