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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromRequirementScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		requirement string
		version     string
		expect      bool
	}{
		{"^1.2.3", "1.2.3", true},
		{"^1.2.3", "1.9.9", true},
		{"^1.2.3", "1.2.2", false},
		{"^1.2.3", "2.0.0", false},
		{"^1.2.3", "1.5.0-beta", false},
		{"~1.2.3", "1.2.3", true},
		{"~1.2.3", "1.2.9", true},
		{"~1.2.3", "1.3.0", false},
		{"~1.2.3", "1.2.5-alpha", false},
		{"=1.2.3-alpha", "1.2.3-alpha", true},
		{"=1.2.3-alpha", "1.2.3", false},
		{"=1.2.3-alpha", "1.2.3-beta", false},
		{">1.2.3, <2.0.0", "1.5.0", true},
		{">1.2.3, <2.0.0", "1.2.3", false},
		{">1.2.3, <2.0.0", "2.0.0", false},
		{">=1.2.3-alpha, <2", "1.2.3-beta", true},
		{">=1.2.3-alpha, <2", "1.2.9-beta", false},
		{"*", "0.0.1", true},
		{"*", "1.0.0-alpha", false},
	}

	for _, tt := range tests {
		t.Run(tt.requirement+" contains "+tt.version, func(t *testing.T) {
			set := FromRequirement(parseRequirement(t, tt.requirement))
			if got := set.Contains(mustVersion(t, tt.version)); got != tt.expect {
				t.Fatalf("Contains(%s) = %v, want %v", tt.version, got, tt.expect)
			}
		})
	}
}

func TestFromRequirementSides(t *testing.T) {
	t.Parallel()

	// Without a written prerelease no comparator vouches for any
	// prerelease, so the assembled prerelease side is empty.
	set := FromRequirement(parseRequirement(t, "~1.2.3"))
	require.True(t, set.Pre().IsEmpty())
	require.True(t, set.Normal().Equal(NewRange(
		Included(NewVersion(1, 2, 3)),
		Excluded(NewVersion(1, 3, 0)),
	)), "normal side is %s", set.Normal())

	// An exact prerelease comparator pins the prerelease side to one
	// version and leaves no releases at all.
	set = FromRequirement(parseRequirement(t, "=1.2.3-alpha"))
	require.True(t, set.Normal().IsEmpty())
	require.True(t, set.Pre().Equal(SingletonRange(mustVersion(t, "1.2.3-alpha"))))

	v, ok := set.AsSingleton()
	require.True(t, ok)
	require.Equal(t, mustVersion(t, "1.2.3-alpha"), v)
}

func TestComparatorTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comparator string
		normal     Range
		pre        Range
	}{
		{
			"^1.2.3",
			NewRange(Included(mustVersion(t, "1.2.3")), Excluded(mustVersion(t, "2.0.0-0"))),
			NewRange(Included(mustVersion(t, "1.2.3")), Excluded(mustVersion(t, "2.0.0-0"))),
		},
		{
			"^1.2",
			NewRange(Included(mustVersion(t, "1.2.0-0")), Excluded(mustVersion(t, "2.0.0-0"))),
			NewRange(Included(mustVersion(t, "1.2.0-0")), Excluded(mustVersion(t, "2.0.0-0"))),
		},
		{
			"^0.0.3",
			NewRange(Included(mustVersion(t, "0.0.3")), Excluded(mustVersion(t, "0.0.4-0"))),
			NewRange(Included(mustVersion(t, "0.0.3")), Excluded(mustVersion(t, "0.0.4-0"))),
		},
		{
			"~1.2.3",
			NewRange(Included(mustVersion(t, "1.2.3")), Excluded(mustVersion(t, "1.3.0"))),
			NewRange(Included(mustVersion(t, "1.2.3")), Excluded(mustVersion(t, "1.3.0-0"))),
		},
		{
			"~1.2",
			NewRange(Included(mustVersion(t, "1.2.0")), Excluded(mustVersion(t, "1.3.0"))),
			EmptyRange(),
		},
		{
			"=1.2",
			NewRange(Included(mustVersion(t, "1.2.0")), Excluded(mustVersion(t, "1.3.0"))),
			EmptyRange(),
		},
		{
			"=1.2.3-alpha",
			EmptyRange(),
			SingletonRange(mustVersion(t, "1.2.3-alpha")),
		},
		{
			">1.2.3",
			NewRange(Included(mustVersion(t, "1.2.4-0")), Unbounded()),
			NewRange(Included(mustVersion(t, "1.2.4-0")), Unbounded()),
		},
		{
			"<1.2",
			NewRange(Unbounded(), Excluded(mustVersion(t, "1.2.0"))),
			NewRange(Unbounded(), Excluded(mustVersion(t, "1.2.0-0"))),
		},
		{
			"<1.2.3-beta",
			NewRange(Unbounded(), Excluded(mustVersion(t, "1.2.3"))),
			NewRange(Unbounded(), Excluded(mustVersion(t, "1.2.3-beta"))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.comparator, func(t *testing.T) {
			normal, pre := parseComparator(t, tt.comparator).translate()
			require.True(t, normal.Equal(tt.normal), "normal side: got %s, want %s", normal, tt.normal)
			require.True(t, pre.Equal(tt.pre), "pre side: got %s, want %s", pre, tt.pre)
		})
	}
}

func TestTranslateUnknownOpPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		Comparator{Op: Op(42), Major: 1}.translate()
	})
}

func TestTranslateMalformedPrereleasePanics(t *testing.T) {
	t.Parallel()

	minor := uint64(2)
	tests := []struct {
		name string
		c    Comparator
	}{
		{"exact prerelease without minor", Comparator{Op: OpExact, Major: 1, Pre: "alpha"}},
		{"exact prerelease without patch", Comparator{Op: OpExact, Major: 1, Minor: &minor, Pre: "alpha"}},
		{"tilde prerelease without patch", Comparator{Op: OpTilde, Major: 1, Minor: &minor, Pre: "alpha"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.PanicsWithValue(t,
				fmt.Sprintf("semverset: comparator %s has a prerelease without minor and patch", tt.c),
				func() { tt.c.translate() },
			)
		})
	}
}

func TestVersionSetBuildMetadataIgnored(t *testing.T) {
	t.Parallel()

	set := FromRequirement(parseRequirement(t, "^1.2.3"))
	require.True(t, set.Contains(mustVersion(t, "1.2.3+build5")))
	require.Equal(t,
		set.Contains(mustVersion(t, "1.2.3")),
		set.Contains(mustVersion(t, "1.2.3+build5")),
	)

	require.True(t, Singleton(mustVersion(t, "1.2.3+build5")).Contains(mustVersion(t, "1.2.3")))
}

func TestVersionSetSingleton(t *testing.T) {
	t.Parallel()

	s := Singleton(mustVersion(t, "1.2.3"))
	require.True(t, s.Contains(mustVersion(t, "1.2.3")))
	require.False(t, s.Contains(mustVersion(t, "1.2.3-alpha")))
	require.True(t, s.Pre().IsEmpty())

	s = Singleton(mustVersion(t, "1.2.3-alpha"))
	require.True(t, s.Contains(mustVersion(t, "1.2.3-alpha")))
	require.False(t, s.Contains(mustVersion(t, "1.2.3")))
	require.True(t, s.Normal().IsEmpty())
}

func TestVersionSetAlgebra(t *testing.T) {
	t.Parallel()

	a := FromRequirement(parseRequirement(t, "^1.2"))
	b := FromRequirement(parseRequirement(t, "~1.5"))

	inter := a.Intersection(b)
	require.True(t, inter.Contains(mustVersion(t, "1.5.3")))
	require.False(t, inter.Contains(mustVersion(t, "1.4.9")))
	require.True(t, inter.IsSubset(a))
	require.True(t, inter.IsSubset(b))

	union := a.Union(b)
	require.True(t, a.IsSubset(union))
	require.True(t, b.IsSubset(union))

	require.True(t, a.Intersection(a.Complement()).IsEmpty())
	require.True(t, a.IsDisjoint(a.Complement()))
	require.True(t, a.Union(a.Complement()).Equal(Full()))
	require.True(t, a.Complement().Complement().Equal(a))

	require.True(t, Empty().IsEmpty())
	require.False(t, Full().IsEmpty())
	require.True(t, Empty().IsSubset(a))
	require.True(t, a.IsSubset(Full()))
	require.True(t, Empty().IsDisjoint(Full()))
}

func TestVersionSetBoundingRange(t *testing.T) {
	t.Parallel()

	_, _, ok := Empty().BoundingRange()
	require.False(t, ok)

	// One-sided sets report that side's bounds.
	set := FromRequirement(parseRequirement(t, "~1.2.3"))
	lower, upper, ok := set.BoundingRange()
	require.True(t, ok)
	require.Equal(t, Included(mustVersion(t, "1.2.3")), lower)
	require.Equal(t, Excluded(mustVersion(t, "1.3.0")), upper)

	// With both sides populated the bounds merge outward.
	set = NewVersionSet(
		NewRange(Included(NewVersion(1, 0, 0)), Included(NewVersion(2, 0, 0))),
		NewRange(Included(mustVersion(t, "0.5.0-0")), Excluded(mustVersion(t, "1.5.0-0"))),
	)
	lower, upper, ok = set.BoundingRange()
	require.True(t, ok)
	require.Equal(t, Included(mustVersion(t, "0.5.0-0")), lower)
	require.Equal(t, Included(NewVersion(2, 0, 0)), upper)

	// At an equal version an inclusive bound wins on both ends.
	set = NewVersionSet(
		NewRange(Included(NewVersion(1, 0, 0)), Included(NewVersion(2, 0, 0))),
		NewRange(Excluded(NewVersion(1, 0, 0)), Excluded(NewVersion(2, 0, 0))),
	)
	lower, upper, ok = set.BoundingRange()
	require.True(t, ok)
	require.Equal(t, Included(NewVersion(1, 0, 0)), lower)
	require.Equal(t, Included(NewVersion(2, 0, 0)), upper)
}

func TestOnlyOneCompatibilityRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		set    VersionSet
		expect Compatibility
		ok     bool
	}{
		{
			"caret stays in one major",
			FromRequirement(parseRequirement(t, "^1.2.3")),
			MajorCompatibility(1), true,
		},
		{
			"caret on zero major stays in one minor",
			FromRequirement(parseRequirement(t, "^0.2")),
			MinorCompatibility(2), true,
		},
		{
			"caret on zero minor stays in one patch",
			FromRequirement(parseRequirement(t, "^0.0.3")),
			PatchCompatibility(3), true,
		},
		{
			"prerelease comparator stays in one major",
			FromRequirement(parseRequirement(t, "=1.2.3-alpha")),
			MajorCompatibility(1), true,
		},
		{
			"two majors spanned",
			FromRequirement(parseRequirement(t, ">=1, <3")),
			Compatibility{}, false,
		},
		{
			"open requirement spans everything",
			FromRequirement(parseRequirement(t, "*")),
			Compatibility{}, false,
		},
		{
			"unbounded above",
			FromRequirement(parseRequirement(t, ">=1.2.3")),
			Compatibility{}, false,
		},
		{
			"empty set is vacuously single-class",
			Empty(),
			PatchCompatibility(0), true,
		},
		{
			"sides in different classes",
			NewVersionSet(
				NewRange(Included(NewVersion(1, 0, 0)), Included(NewVersion(1, 5, 0))),
				NewRange(Included(mustVersion(t, "0.2.0-0")), Excluded(mustVersion(t, "0.3.0-0"))),
			),
			Compatibility{}, false,
		},
		{
			"pre side reaching the next class minimum",
			NewVersionSet(
				EmptyRange(),
				NewRange(Included(mustVersion(t, "1.0.0-0")), Included(mustVersion(t, "2.0.0-0"))),
			),
			Compatibility{}, false,
		},
		{
			"pre side stopping before the next class minimum",
			NewVersionSet(
				EmptyRange(),
				NewRange(Included(mustVersion(t, "1.0.0-0")), Excluded(mustVersion(t, "2.0.0-0"))),
			),
			MajorCompatibility(1), true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.set.OnlyOneCompatibilityRange()
			require.Equal(t, tt.ok, ok)
			if ok {
				require.Equal(t, tt.expect, got)
			}
		})
	}
}

func TestVersionSetContainsMany(t *testing.T) {
	t.Parallel()

	versions := sampleVersions(t)
	for _, rs := range []string{"^1.2.3", "~1.2", ">=1.2.3-alpha, <2", "=1.2.3-alpha", "*", ">=2, <2"} {
		set := FromRequirement(parseRequirement(t, rs))
		got := set.ContainsMany(versions)
		require.Len(t, got, len(versions))
		for i, v := range versions {
			if want := set.Contains(v); got[i] != want {
				t.Fatalf("%q: ContainsMany[%s] = %v, want %v", rs, v, got[i], want)
			}
		}
	}
}

func TestVersionSetSimplify(t *testing.T) {
	t.Parallel()

	versions := sampleVersions(t)
	for _, rs := range []string{"^1.2.3", ">=1.2.3-alpha, <2", ">1.2.3, <2.0.0"} {
		set := FromRequirement(parseRequirement(t, rs))
		simplified := set.Simplify(versions)
		for _, v := range versions {
			if set.Contains(v) != simplified.Contains(v) {
				t.Fatalf("%q: simplified set disagrees on %s", rs, v)
			}
		}
	}
}

func TestVersionSetString(t *testing.T) {
	t.Parallel()

	set := FromRequirement(parseRequirement(t, "~1.2.3"))
	require.Equal(t, "{normal: >=1.2.3, <1.3.0, pre: ∅}", set.String())
}

func TestVersionSetJSON(t *testing.T) {
	t.Parallel()

	// Empty sides are omitted from the persisted form and restored as
	// empty on decode.
	set := FromRequirement(parseRequirement(t, "~1.2.3"))
	data, err := json.Marshal(set)
	require.NoError(t, err)

	asMap := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(data, &asMap))
	require.Contains(t, asMap, "normal")
	require.NotContains(t, asMap, "pre")

	var back VersionSet
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, back.Equal(set))

	set = FromRequirement(parseRequirement(t, "=1.2.3-alpha"))
	data, err = json.Marshal(set)
	require.NoError(t, err)
	asMap = map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(data, &asMap))
	require.NotContains(t, asMap, "normal")
	require.Contains(t, asMap, "pre")

	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, back.Equal(set))

	data, err = json.Marshal(Empty())
	require.NoError(t, err)
	require.Equal(t, "{}", string(data))
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, back.Equal(Empty()))
}
