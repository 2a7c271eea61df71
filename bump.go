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

import "math"

// The bump helpers derive the exclusive upper bound that closes a half-open
// interval starting at a version. The bound carries the sentinel "0"
// prerelease so that prereleases of the bumped release fall outside the
// interval. A bump at the numeric limit escalates to the next wider field,
// and past the major field the interval is unbounded above.

// bumpMajor returns the bound just below the next major release.
func bumpMajor(v Version) Bound {
	if v.Major == math.MaxUint64 {
		return Unbounded()
	}
	return Excluded(Version{Major: v.Major + 1, Pre: sentinelPre})
}

// bumpMinor returns the bound just below the next minor release, escalating
// to bumpMajor when the minor field is saturated.
func bumpMinor(v Version) Bound {
	if v.Minor == math.MaxUint64 {
		return bumpMajor(v)
	}
	return Excluded(Version{Major: v.Major, Minor: v.Minor + 1, Pre: sentinelPre})
}

// bumpPatch returns the bound just below the next patch release, escalating
// to bumpMinor when the patch field is saturated.
func bumpPatch(v Version) Bound {
	if v.Patch == math.MaxUint64 {
		return bumpMinor(v)
	}
	return Excluded(Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1, Pre: sentinelPre})
}

// bumpPre returns the bound just above a prerelease version: the prerelease
// extended with a ".0" identifier sorts immediately after it. Releases fall
// back to bumpPatch.
func bumpPre(v Version) Bound {
	if v.Pre == "" {
		return bumpPatch(v)
	}
	return Excluded(Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch, Pre: v.Pre + ".0"})
}

// between returns the range from low (inclusive) up to the bound the bump
// function produces for it.
func between(low Version, bump func(Version) Bound) Range {
	return NewRange(Included(low), bump(low))
}

// releaseFloor strips the prerelease from a version, returning false for
// versions that already are releases.
func releaseFloor(v Version) (Version, bool) {
	if v.Pre == "" {
		return Version{}, false
	}
	return v.release(), true
}

// releaseBounds widens a pair of interval bounds so that neither rests on a
// prerelease version: a prerelease lower bound becomes inclusive at its
// release, a prerelease upper bound becomes exclusive at its release. Bounds
// already on releases pass through unchanged.
func releaseBounds(lower, upper Bound) (Bound, Bound) {
	if !lower.IsUnbounded() {
		if n, ok := releaseFloor(lower.version); ok {
			lower = Included(n)
		}
	}
	if !upper.IsUnbounded() {
		if n, ok := releaseFloor(upper.version); ok {
			upper = Excluded(n)
		}
	}
	return lower, upper
}
