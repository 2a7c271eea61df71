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

// Package semverset turns semver requirement comparators like ^1.2.3, ~1.2
// and >=2, <3 into interval sets that can be intersected, unioned and
// complemented like any other set. Membership agrees exactly with the Rust
// semver crate's matching predicate, including its prerelease opt-in rules,
// which is why every set carries two ranges: one over releases and one over
// prereleases.
//
// The package also classifies versions into caret compatibility ranges and
// provides CompactVersion, an allocation-free representation for the common
// small versions.
package semverset
