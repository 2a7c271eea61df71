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

import "slices"

// interval represents a contiguous range of versions between a lower and an
// upper bound. Bounds may be included, excluded or unbounded.
//
// Examples:
//   - [1.0.0, 2.0.0) represents >=1.0.0, <2.0.0
//   - (1.0.0, 2.0.0] represents >1.0.0, <=2.0.0
//   - [1.0.0, ∞) represents >=1.0.0
type interval struct {
	lower Bound
	upper Bound
}

// newInterval creates an interval from bounds, returning false if it is empty.
func newInterval(lower, upper Bound) (interval, bool) {
	iv := interval{lower: lower, upper: upper}
	if iv.isEmpty() {
		return interval{}, false
	}
	return iv, true
}

// isEmpty returns true if the interval denotes no versions: both bounds
// finite with the upper below the lower, or equal with either end excluded.
func (iv interval) isEmpty() bool {
	if iv.lower.IsUnbounded() || iv.upper.IsUnbounded() {
		return false
	}
	cmp := iv.lower.version.Compare(iv.upper.version)
	switch {
	case cmp < 0:
		return false
	case cmp > 0:
		return true
	default:
		return !iv.lower.IsIncluded() || !iv.upper.IsIncluded()
	}
}

// contains returns true if the given version falls within this interval.
func (iv interval) contains(v Version) bool {
	if !iv.lower.IsUnbounded() {
		cmp := v.Compare(iv.lower.version)
		if cmp < 0 || (cmp == 0 && !iv.lower.IsIncluded()) {
			return false
		}
	}
	if !iv.upper.IsUnbounded() {
		cmp := v.Compare(iv.upper.version)
		if cmp > 0 || (cmp == 0 && !iv.upper.IsIncluded()) {
			return false
		}
	}
	return true
}

// upperDisjointBelow returns true if an interval ending at upper shares no
// version with one starting at lower. Used to detect disjointness.
func upperDisjointBelow(upper, lower Bound) bool {
	if upper.IsUnbounded() || lower.IsUnbounded() {
		return false
	}
	cmp := upper.version.Compare(lower.version)
	if cmp != 0 {
		return cmp < 0
	}
	return !upper.IsIncluded() || !lower.IsIncluded()
}

// upperSeparatedBelow returns true if there is a gap between an interval
// ending at upper and one starting at lower, i.e. the two cannot be merged
// into a single interval. Unlike upperDisjointBelow, an excluded upper
// meeting an included lower at the same version (or the reverse) counts as
// contiguous.
func upperSeparatedBelow(upper, lower Bound) bool {
	if upper.IsUnbounded() || lower.IsUnbounded() {
		return false
	}
	cmp := upper.version.Compare(lower.version)
	if cmp != 0 {
		return cmp < 0
	}
	return !upper.IsIncluded() && !lower.IsIncluded()
}

// overlaps returns true if this interval has any versions in common with other.
func (iv interval) overlaps(other interval) bool {
	if upperDisjointBelow(iv.upper, other.lower) {
		return false
	}
	if upperDisjointBelow(other.upper, iv.lower) {
		return false
	}
	return true
}

// touches returns true if this interval overlaps or abuts other, so the two
// can be merged without creating a gap.
func (iv interval) touches(other interval) bool {
	return !upperSeparatedBelow(iv.upper, other.lower) &&
		!upperSeparatedBelow(other.upper, iv.lower)
}

// merge combines two intervals into a single interval spanning both.
func (iv interval) merge(other interval) interval {
	return interval{
		lower: minOf(iv.lower, other.lower, compareLower),
		upper: maxOf(iv.upper, other.upper, compareUpper),
	}
}

// minOf returns the minimum of two values using a comparison function.
func minOf[T any](a, b T, compare func(T, T) int) T {
	if compare(a, b) <= 0 {
		return a
	}
	return b
}

// maxOf returns the maximum of two values using a comparison function.
func maxOf[T any](a, b T, compare func(T, T) int) T {
	if compare(a, b) >= 0 {
		return a
	}
	return b
}

// covers returns true if this interval completely contains other.
func (iv interval) covers(other interval) bool {
	if compareLower(iv.lower, other.lower) > 0 {
		return false
	}
	if compareUpper(iv.upper, other.upper) < 0 {
		return false
	}
	return true
}

// complementLowerBound returns the lower bound of the complement interval
// above this interval. The caller must check that the upper bound is finite.
func (iv interval) complementLowerBound() Bound {
	if iv.upper.IsIncluded() {
		return Excluded(iv.upper.version)
	}
	return Included(iv.upper.version)
}

// complementUpperBound returns the upper bound of the complement interval
// below this interval. The caller must check that the lower bound is finite.
func (iv interval) complementUpperBound() Bound {
	if iv.lower.IsIncluded() {
		return Excluded(iv.lower.version)
	}
	return Included(iv.lower.version)
}

// equal reports whether two intervals have identical bounds.
func (iv interval) equal(other interval) bool {
	return compareLower(iv.lower, other.lower) == 0 &&
		compareUpper(iv.upper, other.upper) == 0
}

// normalizeIntervals canonicalizes a slice of intervals by:
//  1. Removing empty intervals
//  2. Sorting by lower bound
//  3. Merging overlapping or abutting intervals
//
// This ensures intervals are disjoint and sorted, enabling efficient set
// operations.
func normalizeIntervals(intervals []interval) []interval {
	filtered := intervals[:0]
	for _, iv := range intervals {
		if !iv.isEmpty() {
			filtered = append(filtered, iv)
		}
	}

	if len(filtered) == 0 {
		return nil
	}

	slices.SortFunc(filtered, func(a, b interval) int {
		return compareLower(a.lower, b.lower)
	})

	merged := filtered[:1]
	for i := 1; i < len(filtered); i++ {
		last := &merged[len(merged)-1]
		current := filtered[i]
		if last.touches(current) {
			*last = last.merge(current)
		} else {
			merged = append(merged, current)
		}
	}

	out := make([]interval, len(merged))
	copy(out, merged)
	return out
}
