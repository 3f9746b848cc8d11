// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"regexp"
	"strings"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

// chunkify splits s into alternating runs of digits and non-digits.
func chunkify(s string) []string {
	return chunkifyRegexp.FindAllString(s, -1)
}

// NaturalLess reports whether a strictly precedes b in natural order, where
// runs of digits are compared by their numeric value.
func NaturalLess(a, b string) bool {
	chunksA := chunkify(a)
	chunksB := chunkify(b)

	for i := 0; i < len(chunksA) && i < len(chunksB); i++ {
		x, y := chunksA[i], chunksB[i]
		if x == y {
			continue
		}

		if isDigits(x) && isDigits(y) {
			if cmp := compareNumeric(x, y); cmp != 0 {
				return cmp < 0
			}
		}

		return x < y
	}

	// One is a prefix of the other, the shorter one comes first.
	return len(chunksA) < len(chunksB)
}

// isDigits reports whether the chunk s is a run of digits.
func isDigits(s string) bool {
	return s[0] >= '0' && s[0] <= '9'
}

// compareNumeric compares two runs of digits by value, without any limit
// on their length.
func compareNumeric(x, y string) int {
	x = strings.TrimLeft(x, "0")
	y = strings.TrimLeft(y, "0")

	switch {
	case len(x) != len(y):
		if len(x) < len(y) {
			return -1
		}
		return 1
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
