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
	"encoding/json"
	"fmt"
)

// VersionSet is a pair of version ranges, one spanning releases and one
// spanning prereleases. Containment routes entirely on the queried version's
// own prerelease field, so the two sides never interact except through the
// algebra applied to both. Sets are immutable values after construction;
// every operation returns a new set.
//
// The split exists because requirement semantics treat prereleases
// asymmetrically: a prerelease only matches when a comparator opted in at
// its exact numeric triple, so the prerelease side of a translated
// requirement is usually far narrower than its release side.
type VersionSet struct {
	normal Range
	pre    Range
}

// Empty returns the set containing no versions.
func Empty() VersionSet {
	return VersionSet{}
}

// Full returns the set containing every version.
func Full() VersionSet {
	return VersionSet{normal: FullRange(), pre: FullRange()}
}

// Singleton returns the set holding exactly one version. The version's own
// prerelease field decides which side carries it.
func Singleton(v Version) VersionSet {
	v = v.withoutBuild()
	if v.IsPrerelease() {
		return VersionSet{pre: SingletonRange(v)}
	}
	return VersionSet{normal: SingletonRange(v)}
}

// NewVersionSet builds a set directly from its two sides.
func NewVersionSet(normal, pre Range) VersionSet {
	return VersionSet{normal: normal, pre: pre}
}

// Normal returns the release side of the set.
func (s VersionSet) Normal() Range {
	return s.normal
}

// Pre returns the prerelease side of the set.
func (s VersionSet) Pre() Range {
	return s.pre
}

// Complement returns the set of versions NOT in this set.
func (s VersionSet) Complement() VersionSet {
	return VersionSet{
		normal: s.normal.Complement(),
		pre:    s.pre.Complement(),
	}
}

// Intersection returns the versions in both sets.
func (s VersionSet) Intersection(other VersionSet) VersionSet {
	return VersionSet{
		normal: s.normal.Intersection(other.normal),
		pre:    s.pre.Intersection(other.pre),
	}
}

// Union returns the versions in either set.
func (s VersionSet) Union(other VersionSet) VersionSet {
	return VersionSet{
		normal: s.normal.Union(other.normal),
		pre:    s.pre.Union(other.pre),
	}
}

// Contains tests whether the set holds the version. Build metadata never
// participates in membership and is stripped first; the test then runs
// against the release side for releases and the prerelease side otherwise.
func (s VersionSet) Contains(v Version) bool {
	v = v.withoutBuild()
	if v.IsPrerelease() {
		return s.pre.Contains(v)
	}
	return s.normal.Contains(v)
}

// IsEmpty returns true when both sides are empty.
func (s VersionSet) IsEmpty() bool {
	return s.normal.IsEmpty() && s.pre.IsEmpty()
}

// IsDisjoint returns true when the two sets share no version.
func (s VersionSet) IsDisjoint(other VersionSet) bool {
	return s.normal.IsDisjoint(other.normal) && s.pre.IsDisjoint(other.pre)
}

// IsSubset returns true when every version in this set is in the other.
func (s VersionSet) IsSubset(other VersionSet) bool {
	return s.normal.IsSubset(other.normal) && s.pre.IsSubset(other.pre)
}

// Equal reports whether both sides hold identical intervals.
func (s VersionSet) Equal(other VersionSet) bool {
	return s.normal.Equal(other.normal) && s.pre.Equal(other.pre)
}

// BoundingRange returns the smallest single interval enclosing both sides,
// or false for the empty set. When both sides are non-empty the enclosing
// bounds are the smaller of the two lower bounds and the larger of the two
// upper bounds.
func (s VersionSet) BoundingRange() (lower, upper Bound, ok bool) {
	nl, nu, nok := s.normal.BoundingRange()
	pl, pu, pok := s.pre.BoundingRange()
	switch {
	case nok && pok:
		return minOf(nl, pl, compareLower), maxOf(nu, pu, compareUpper), true
	case nok:
		return nl, nu, true
	case pok:
		return pl, pu, true
	default:
		return Bound{}, Bound{}, false
	}
}

// OnlyOneCompatibilityRange reports the single compatibility class every
// version the set can ever contain belongs to, or false when the set spans
// more than one class. The empty set vacuously belongs to the smallest
// class.
func (s VersionSet) OnlyOneCompatibilityRange() (Compatibility, bool) {
	nl, nu, nok := s.normal.BoundingRange()
	pl, pu, pok := s.pre.BoundingRange()
	if !nok && !pok {
		return PatchCompatibility(0), true
	}

	var class Compatibility
	switch {
	case nok && pok:
		nc := startClass(nl)
		pc := startClass(pl)
		if nc.Compare(pc) != 0 {
			return Compatibility{}, false
		}
		class = nc
	case nok:
		class = startClass(nl)
	default:
		class = startClass(pl)
	}

	next, hasNext := class.Next()
	if !hasNext {
		return class, true
	}
	if nok && !upperWithinLimit(nu, next.Canonical()) {
		return Compatibility{}, false
	}
	if pok && !upperWithinLimit(pu, next.Minimum()) {
		return Compatibility{}, false
	}
	return class, true
}

// startClass classifies an interval's lower bound; an unbounded start can
// only be entered through the smallest representable versions.
func startClass(lower Bound) Compatibility {
	v, ok := lower.Version()
	if !ok {
		return PatchCompatibility(0)
	}
	return CompatibilityOf(v)
}

// upperWithinLimit reports whether an upper bound stays below the first
// version of the following class.
func upperWithinLimit(upper Bound, limit Version) bool {
	v, ok := upper.Version()
	if !ok {
		return false
	}
	cmp := v.Compare(limit)
	if upper.IsIncluded() {
		return cmp < 0
	}
	return cmp <= 0
}

// ContainsMany reports containment for a batch of versions in one pass per
// side. The input must be sorted ascending by version order; results line up
// index-for-index with the input. Build metadata is ignored as in Contains.
func (s VersionSet) ContainsMany(versions []Version) []bool {
	releases := make([]Version, 0, len(versions))
	prereleases := make([]Version, 0)
	releaseIdx := make([]int, 0, len(versions))
	preIdx := make([]int, 0)
	for i, v := range versions {
		v = v.withoutBuild()
		if v.IsPrerelease() {
			prereleases = append(prereleases, v)
			preIdx = append(preIdx, i)
		} else {
			releases = append(releases, v)
			releaseIdx = append(releaseIdx, i)
		}
	}

	out := make([]bool, len(versions))
	for k, c := range s.normal.ContainsSorted(releases) {
		out[releaseIdx[k]] = c
	}
	for k, c := range s.pre.ContainsSorted(prereleases) {
		out[preIdx[k]] = c
	}
	return out
}

// Simplify returns a set that classifies every supplied candidate exactly
// like this one but may use fewer intervals. The candidates must be sorted
// ascending; versions outside the candidate list may be classified
// differently.
func (s VersionSet) Simplify(versions []Version) VersionSet {
	releases := make([]Version, 0, len(versions))
	prereleases := make([]Version, 0)
	for _, v := range versions {
		v = v.withoutBuild()
		if v.IsPrerelease() {
			prereleases = append(prereleases, v)
		} else {
			releases = append(releases, v)
		}
	}
	return VersionSet{
		normal: s.normal.Simplify(releases),
		pre:    s.pre.Simplify(prereleases),
	}
}

// AsSingleton returns the set's single version when one side holds exactly
// one version and the other side is empty.
func (s VersionSet) AsSingleton() (Version, bool) {
	if s.pre.IsEmpty() {
		return s.normal.AsSingleton()
	}
	if s.normal.IsEmpty() {
		return s.pre.AsSingleton()
	}
	return Version{}, false
}

// String renders both sides.
func (s VersionSet) String() string {
	return fmt.Sprintf("{normal: %s, pre: %s}", s.normal, s.pre)
}

// versionSetRecord is the persisted form: a side is present only when
// non-empty and absent sides decode as empty.
type versionSetRecord struct {
	Normal *Range `json:"normal,omitempty"`
	Pre    *Range `json:"pre,omitempty"`
}

// MarshalJSON encodes the set, omitting empty sides entirely.
func (s VersionSet) MarshalJSON() ([]byte, error) {
	var rec versionSetRecord
	if !s.normal.IsEmpty() {
		rec.Normal = &s.normal
	}
	if !s.pre.IsEmpty() {
		rec.Pre = &s.pre
	}
	return json.Marshal(rec)
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (s *VersionSet) UnmarshalJSON(data []byte) error {
	var rec versionSetRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*s = VersionSet{}
	if rec.Normal != nil {
		s.normal = *rec.Normal
	}
	if rec.Pre != nil {
		s.pre = *rec.Pre
	}
	return nil
}
