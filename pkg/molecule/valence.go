// Copyright The smartscompiler Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package molecule

import "slices"

// Default valences for the organic subset, lowest first.
var defaultValences = map[int][]int{
	5:  {3},
	6:  {4},
	7:  {3, 5},
	8:  {2},
	9:  {1},
	15: {3, 5},
	16: {2, 4, 6},
	17: {1},
	35: {1},
	53: {1},
}

// Determine the number of implicit hydrogens on an atom written without
// brackets, given the sum of its bond orders (counting aromatic bonds as one).
// The lowest default valence which accommodates the bonds is filled with
// hydrogens.  Aromatic atoms have one additional valence reserved, and only
// consider their lowest default valence.
func implicitHydrogens(element int, aromatic bool, sum int) int {
	valences, ok := defaultValences[element]
	//
	if !ok {
		return 0
	} else if aromatic {
		return max(0, valences[0]-sum-1)
	}
	//
	for _, v := range valences {
		if v >= sum {
			return v - sum
		}
	}
	//
	return 0
}

// Determine the total valence of an atom from the sum of its bond orders
// (counting aromatic bonds as one) including hydrogens.  An aromatic atom
// gains one extra valence if this gives one of its default valences, such
// that benzene carbons have valence 4 whilst pyrrole nitrogens have valence 3.
func valence(element int, aromatic bool, sum int) int {
	if aromatic && slices.Contains(defaultValences[element], sum+1) {
		return sum + 1
	}
	//
	return sum
}
