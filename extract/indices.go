/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package extract

import "unicode/utf16"

// unitOffsets returns, for every codepoint offset of text from 0 to the
// codepoint count, the matching UTF-16 code unit offset. Invalid UTF-8 bytes
// count as one codepoint and one unit each, like U+FFFD.
func unitOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	units := 0
	for _, r := range text {
		offsets = append(offsets, units)
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
	}
	return append(offsets, units)
}

func clamp(i, hi int) int {
	return max(0, min(i, hi))
}

// ToUnitIndices converts entity offsets from codepoints to UTF-16 code
// units, the index space of Java and JavaScript strings. The input slice is
// not modified.
func ToUnitIndices(text string, entities []Entity) []Entity {
	offsets := unitOffsets(text)
	last := len(offsets) - 1
	out := make([]Entity, len(entities))
	for i, e := range entities {
		e.Start = offsets[clamp(e.Start, last)]
		e.End = offsets[clamp(e.End, last)]
		out[i] = e
	}
	return out
}

// ToCodepointIndices converts entity offsets from UTF-16 code units to
// codepoints. An offset that falls between the halves of a surrogate pair
// maps to the codepoint of the pair. The input slice is not modified.
func ToCodepointIndices(text string, entities []Entity) []Entity {
	offsets := unitOffsets(text)
	total := offsets[len(offsets)-1]
	codepoints := make([]int, total+1)
	for cp := len(offsets) - 1; cp >= 0; cp-- {
		codepoints[offsets[cp]] = cp
		if cp > 0 && offsets[cp]-offsets[cp-1] == 2 {
			codepoints[offsets[cp]-1] = cp - 1
		}
	}
	out := make([]Entity, len(entities))
	for i, e := range entities {
		e.Start = codepoints[clamp(e.Start, total)]
		e.End = codepoints[clamp(e.End, total)]
		out[i] = e
	}
	return out
}

// DecodeUTF16 turns UTF-16 text into a string. Each unpaired surrogate
// becomes one U+FFFD.
func DecodeUTF16(units []uint16) string {
	return string(utf16.Decode(units))
}
