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

// SolverSet is the capability set a constraint solver may rely on. All
// operations are pure: implementations must be immutable values and every
// operation returns a new instance.
//
// VersionSet is the implementation this package provides; the interface
// exists so a solver can be written against the algebra alone and tested
// with simpler set types.
type SolverSet[S any] interface {
	// Complement returns the set of versions NOT in this set.
	Complement() S

	// Intersection returns the set of versions in both this set and the other.
	Intersection(other S) S

	// Union returns the set of versions in either this set or the other.
	Union(other S) S

	// Contains tests if a specific version is in the set.
	Contains(version Version) bool

	// IsEmpty returns true if the set contains no versions.
	IsEmpty() bool

	// IsSubset returns true if all versions in this set are also in the other set.
	IsSubset(other S) bool

	// IsDisjoint returns true if this set and the other set have no versions in common.
	IsDisjoint(other S) bool

	// String returns a human-readable representation of the set.
	String() string
}

var (
	_ SolverSet[VersionSet] = VersionSet{}
	_ SolverSet[Range]      = Range{}
)
