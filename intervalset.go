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
	"iter"
	"strings"
)

// Range is an ordered, gap-free list of disjoint version intervals. It is
// the single-sided interval-set primitive the dual VersionSet is built on.
//
// Ranges are stored in normalized form: sorted, non-empty, non-overlapping,
// and with no abutting intervals that could be merged. The zero value is the
// empty range. All operations are pure: they never mutate the receiver.
type Range struct {
	intervals []interval
}

// newRange creates a Range from intervals, normalizing them first.
func newRange(intervals []interval) Range {
	return Range{intervals: normalizeIntervals(intervals)}
}

// EmptyRange returns a range containing no versions.
func EmptyRange() Range {
	return Range{}
}

// FullRange returns a range containing all possible versions.
func FullRange() Range {
	return Range{intervals: []interval{{lower: Unbounded(), upper: Unbounded()}}}
}

// NewRange returns the range between the two bounds. An inverted pair of
// bounds yields the empty range.
func NewRange(lower, upper Bound) Range {
	if iv, ok := newInterval(lower, upper); ok {
		return Range{intervals: []interval{iv}}
	}
	return Range{}
}

// SingletonRange returns the range holding exactly one version.
func SingletonRange(v Version) Range {
	return NewRange(Included(v), Included(v))
}

// cloneIntervals creates a copy of the intervals slice for safe mutation.
func (r Range) cloneIntervals() []interval {
	if len(r.intervals) == 0 {
		return nil
	}
	cloned := make([]interval, len(r.intervals))
	copy(cloned, r.intervals)
	return cloned
}

// Union returns the set of versions in either this range or the other.
func (r Range) Union(other Range) Range {
	intervals := r.cloneIntervals()
	intervals = append(intervals, other.intervals...)
	return newRange(intervals)
}

// Intersection returns the set of versions in both this range and the other.
func (r Range) Intersection(other Range) Range {
	if len(r.intervals) == 0 || len(other.intervals) == 0 {
		return Range{}
	}

	result := make([]interval, 0, len(r.intervals))
	i, j := 0, 0
	for i < len(r.intervals) && j < len(other.intervals) {
		if iv, ok := newInterval(
			maxOf(r.intervals[i].lower, other.intervals[j].lower, compareLower),
			minOf(r.intervals[i].upper, other.intervals[j].upper, compareUpper),
		); ok {
			result = append(result, iv)
		}

		if compareUpper(r.intervals[i].upper, other.intervals[j].upper) < 0 {
			i++
		} else {
			j++
		}
	}

	return newRange(result)
}

// Complement returns the set of versions NOT in this range.
func (r Range) Complement() Range {
	if len(r.intervals) == 0 {
		return FullRange()
	}

	gaps := make([]interval, 0, len(r.intervals)+1)

	first := r.intervals[0]
	if !first.lower.IsUnbounded() {
		gaps = append(gaps, interval{lower: Unbounded(), upper: first.complementUpperBound()})
	}
	for i := 0; i+1 < len(r.intervals); i++ {
		if gap, ok := newInterval(
			r.intervals[i].complementLowerBound(),
			r.intervals[i+1].complementUpperBound(),
		); ok {
			gaps = append(gaps, gap)
		}
	}
	last := r.intervals[len(r.intervals)-1]
	if !last.upper.IsUnbounded() {
		gaps = append(gaps, interval{lower: last.complementLowerBound(), upper: Unbounded()})
	}

	return newRange(gaps)
}

// Contains tests if a specific version is in the range.
func (r Range) Contains(v Version) bool {
	for _, iv := range r.intervals {
		if iv.contains(v) {
			return true
		}
	}
	return false
}

// IsEmpty returns true if the range contains no intervals. Note that an
// interval below the smallest representable version (such as <0.0.0-0) is
// kept as an interval even though no version can fall inside it.
func (r Range) IsEmpty() bool {
	return len(r.intervals) == 0
}

// IsSubset returns true if all versions in this range are also in the other.
func (r Range) IsSubset(other Range) bool {
	if len(r.intervals) == 0 {
		return true
	}
	if len(other.intervals) == 0 {
		return false
	}

	i, j := 0, 0
	for i < len(r.intervals) {
		if j >= len(other.intervals) {
			return false
		}

		if other.intervals[j].covers(r.intervals[i]) {
			i++
			continue
		}

		if upperDisjointBelow(other.intervals[j].upper, r.intervals[i].lower) {
			j++
			continue
		}

		return false
	}

	return true
}

// IsDisjoint returns true if this range and the other have no versions in
// common.
func (r Range) IsDisjoint(other Range) bool {
	if len(r.intervals) == 0 || len(other.intervals) == 0 {
		return true
	}

	i, j := 0, 0
	for i < len(r.intervals) && j < len(other.intervals) {
		if r.intervals[i].overlaps(other.intervals[j]) {
			return false
		}

		if compareUpper(r.intervals[i].upper, other.intervals[j].upper) < 0 {
			i++
		} else {
			j++
		}
	}

	return true
}

// Equal reports whether the two ranges hold identical intervals.
func (r Range) Equal(other Range) bool {
	if len(r.intervals) != len(other.intervals) {
		return false
	}
	for i, iv := range r.intervals {
		if !iv.equal(other.intervals[i]) {
			return false
		}
	}
	return true
}

// BoundingRange returns the smallest single interval enclosing the range,
// or false if the range is empty.
func (r Range) BoundingRange() (lower, upper Bound, ok bool) {
	if len(r.intervals) == 0 {
		return Bound{}, Bound{}, false
	}
	return r.intervals[0].lower, r.intervals[len(r.intervals)-1].upper, true
}

// ContainsSorted reports containment for a batch of versions in a single
// forward walk over the intervals. The input must be sorted ascending; the
// result for an unsorted input is unspecified.
func (r Range) ContainsSorted(versions []Version) []bool {
	out := make([]bool, len(versions))
	i := 0
	for k, v := range versions {
		for i < len(r.intervals) && upperFiniteBelowVersion(r.intervals[i].upper, v) {
			i++
		}
		if i < len(r.intervals) {
			out[k] = r.intervals[i].contains(v)
		}
	}
	return out
}

// upperFiniteBelowVersion reports whether the upper bound lies strictly
// below the version, i.e. the interval it closes cannot contain it nor
// anything after it.
func upperFiniteBelowVersion(upper Bound, v Version) bool {
	if upper.IsUnbounded() {
		return false
	}
	cmp := upper.version.Compare(v)
	return cmp < 0 || (cmp == 0 && !upper.IsIncluded())
}

// Simplify returns a range that agrees with this one on every supplied
// version but may use fewer intervals, pushing the outermost bounds to
// unbounded where no candidate constrains them. The input must be sorted
// ascending. The result is the minimal-interval range that classifies every
// candidate like the receiver does; versions outside the candidate list may
// be classified differently.
func (r Range) Simplify(versions []Version) Range {
	contained := r.ContainsSorted(versions)

	var out []interval
	for i := 0; i < len(versions); {
		if !contained[i] {
			i++
			continue
		}
		j := i
		for j+1 < len(versions) && contained[j+1] {
			j++
		}
		lower := Unbounded()
		if i > 0 {
			lower = Included(versions[i])
		}
		upper := Unbounded()
		if j < len(versions)-1 {
			upper = Included(versions[j])
		}
		if iv, ok := newInterval(lower, upper); ok {
			out = append(out, iv)
		}
		i = j + 1
	}

	return newRange(out)
}

// AsSingleton returns the single version held by the range, if the range is
// exactly one included-included point.
func (r Range) AsSingleton() (Version, bool) {
	if len(r.intervals) != 1 {
		return Version{}, false
	}
	iv := r.intervals[0]
	if iv.lower.IsUnbounded() || iv.upper.IsUnbounded() {
		return Version{}, false
	}
	if !iv.lower.IsIncluded() || !iv.upper.IsIncluded() {
		return Version{}, false
	}
	if iv.lower.version.Compare(iv.upper.version) != 0 {
		return Version{}, false
	}
	return iv.lower.version, true
}

// Bounds returns an iterator over the (lower, upper) bound pairs of the
// range's intervals, in ascending order:
//
//	for lower, upper := range r.Bounds() {
//	    fmt.Printf("from %v to %v\n", lower, upper)
//	}
func (r Range) Bounds() iter.Seq2[Bound, Bound] {
	return func(yield func(Bound, Bound) bool) {
		for _, iv := range r.intervals {
			if !yield(iv.lower, iv.upper) {
				return
			}
		}
	}
}

// String returns a human-readable representation of the range.
// Empty ranges display as "∅", full ranges as "*", and intervals use
// standard operators.
func (r Range) String() string {
	if len(r.intervals) == 0 {
		return "∅"
	}

	if len(r.intervals) == 1 {
		return intervalToString(r.intervals[0])
	}

	parts := make([]string, len(r.intervals))
	for i, iv := range r.intervals {
		parts[i] = intervalToString(iv)
	}
	return strings.Join(parts, " || ")
}

// intervalToString converts a single interval to its string representation.
func intervalToString(iv interval) string {
	if iv.lower.IsUnbounded() && iv.upper.IsUnbounded() {
		return "*"
	}

	if !iv.lower.IsUnbounded() && !iv.upper.IsUnbounded() {
		if iv.lower.version.Compare(iv.upper.version) == 0 &&
			iv.lower.IsIncluded() && iv.upper.IsIncluded() {
			return fmt.Sprintf("==%s", iv.lower.version)
		}
	}

	var parts []string

	if !iv.lower.IsUnbounded() {
		if iv.lower.IsIncluded() {
			parts = append(parts, fmt.Sprintf(">=%s", iv.lower.version))
		} else {
			parts = append(parts, fmt.Sprintf(">%s", iv.lower.version))
		}
	}

	if !iv.upper.IsUnbounded() {
		if iv.upper.IsIncluded() {
			parts = append(parts, fmt.Sprintf("<=%s", iv.upper.version))
		} else {
			parts = append(parts, fmt.Sprintf("<%s", iv.upper.version))
		}
	}

	return strings.Join(parts, ", ")
}

// intervalRecord is the persisted form of one interval.
type intervalRecord struct {
	Lower Bound `json:"lower"`
	Upper Bound `json:"upper"`
}

// MarshalJSON encodes the range as a list of {lower, upper} records.
func (r Range) MarshalJSON() ([]byte, error) {
	recs := make([]intervalRecord, len(r.intervals))
	for i, iv := range r.intervals {
		recs[i] = intervalRecord{Lower: iv.lower, Upper: iv.upper}
	}
	return json.Marshal(recs)
}

// UnmarshalJSON decodes the form produced by MarshalJSON, renormalizing the
// intervals.
func (r *Range) UnmarshalJSON(data []byte) error {
	var recs []intervalRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return err
	}
	intervals := make([]interval, len(recs))
	for i, rec := range recs {
		intervals[i] = interval{lower: rec.Lower, upper: rec.Upper}
	}
	*r = newRange(intervals)
	return nil
}
