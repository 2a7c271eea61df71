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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBumpBounds(t *testing.T) {
	t.Parallel()

	max := uint64(math.MaxUint64)

	tests := []struct {
		name   string
		bump   func(Version) Bound
		in     Version
		expect Bound
	}{
		{"patch", bumpPatch, NewVersion(1, 2, 3), Excluded(Version{Major: 1, Minor: 2, Patch: 4, Pre: "0"})},
		{"patch ignores pre", bumpPatch, Version{Major: 1, Minor: 2, Patch: 3, Pre: "beta"}, Excluded(Version{Major: 1, Minor: 2, Patch: 4, Pre: "0"})},
		{"patch overflow to minor", bumpPatch, Version{Major: 1, Minor: 2, Patch: max}, Excluded(Version{Major: 1, Minor: 3, Pre: "0"})},
		{"minor", bumpMinor, NewVersion(1, 2, 3), Excluded(Version{Major: 1, Minor: 3, Pre: "0"})},
		{"minor overflow to major", bumpMinor, Version{Major: 1, Minor: max, Patch: 2}, Excluded(Version{Major: 2, Pre: "0"})},
		{"major", bumpMajor, NewVersion(1, 2, 3), Excluded(Version{Major: 2, Pre: "0"})},
		{"major overflow unbounded", bumpMajor, Version{Major: max}, Unbounded()},
		{"cascading overflow", bumpPatch, Version{Major: max, Minor: max, Patch: max}, Unbounded()},
		{"pre extends", bumpPre, Version{Major: 1, Minor: 2, Patch: 3, Pre: "alpha"}, Excluded(Version{Major: 1, Minor: 2, Patch: 3, Pre: "alpha.0"})},
		{"pre on release bumps patch", bumpPre, NewVersion(1, 2, 3), Excluded(Version{Major: 1, Minor: 2, Patch: 4, Pre: "0"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expect, tt.bump(tt.in))
		})
	}
}

func TestBumpPreIsImmediateSuccessor(t *testing.T) {
	t.Parallel()

	// The bumped bound must sort just above the version: above it, but at
	// or below every other greater version.
	v := mustVersion(t, "1.2.3-alpha")
	b := bumpPre(v)
	bv, ok := b.Version()
	require.True(t, ok)
	require.True(t, v.Compare(bv) < 0)

	greater := []string{"1.2.3-alpha.0", "1.2.3-alpha.1", "1.2.3-alpha.zzz", "1.2.3-beta", "1.2.3", "1.2.4-0"}
	for _, s := range greater {
		g := mustVersion(t, s)
		require.True(t, v.Compare(g) < 0, "%s should be above %s", s, v)
		if g.Compare(bv) < 0 {
			t.Fatalf("%s sorts between %s and its bump bound %s", s, v, bv)
		}
	}
}

func TestBetween(t *testing.T) {
	t.Parallel()

	low := NewVersion(1, 2, 0)
	r := between(low, bumpMinor)

	require.True(t, r.Contains(mustVersion(t, "1.2.0")))
	require.True(t, r.Contains(mustVersion(t, "1.2.9")))
	require.True(t, r.Contains(mustVersion(t, "1.2.5-beta")))
	require.False(t, r.Contains(mustVersion(t, "1.3.0-0")))
	require.False(t, r.Contains(mustVersion(t, "1.3.0")))
	require.False(t, r.Contains(mustVersion(t, "1.1.9")))
}

func TestReleaseBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		lower, upper Bound
		wantLower    Bound
		wantUpper    Bound
	}{
		{
			"sentinel bounds collapse to releases",
			Included(Version{Major: 1, Minor: 2, Pre: "0"}),
			Excluded(Version{Major: 1, Minor: 3, Pre: "0"}),
			Included(NewVersion(1, 2, 0)),
			Excluded(NewVersion(1, 3, 0)),
		},
		{
			"prerelease lower becomes inclusive release",
			Included(mustVersion(t, "1.2.3-alpha")),
			Excluded(NewVersion(2, 0, 0)),
			Included(NewVersion(1, 2, 3)),
			Excluded(NewVersion(2, 0, 0)),
		},
		{
			"prerelease upper becomes exclusive release",
			Included(NewVersion(1, 0, 0)),
			Included(mustVersion(t, "2.0.0-rc.1")),
			Included(NewVersion(1, 0, 0)),
			Excluded(NewVersion(2, 0, 0)),
		},
		{
			"release bounds unchanged",
			Included(NewVersion(1, 0, 0)),
			Excluded(NewVersion(2, 0, 0)),
			Included(NewVersion(1, 0, 0)),
			Excluded(NewVersion(2, 0, 0)),
		},
		{
			"unbounded passes through",
			Unbounded(),
			Unbounded(),
			Unbounded(),
			Unbounded(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lower, upper := releaseBounds(tt.lower, tt.upper)
			require.Equal(t, tt.wantLower, lower)
			require.Equal(t, tt.wantUpper, upper)
		})
	}
}
