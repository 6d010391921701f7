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

import "unicode"

// isHashtagPredecessor reports whether r may precede a hash sign. Letters,
// marks and "&" may not, except the emoji variation selectors.
func isHashtagPredecessor(r rune) bool {
	if r == 0xFE0E || r == 0xFE0F {
		return true
	}
	return r == eof || (r != '&' && !isLetterOrMark(r))
}

// isHashtagSpecial reports codepoints allowed in hashtag text that do not
// count as letters.
func isHashtagSpecial(r rune) bool {
	if r == '_' || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case 0x200C, 0x200D, 0xA67E, 0x05BE, 0x05F3, 0x05F4, 0xFF5E, 0x301C,
		0x309B, 0x309C, 0x30A0, 0x30FB, 0x3003, 0x0F0B, 0x0F0C, 0x00B7:
		return true
	}
	return false
}

// matchHashtag matches a hashtag at i, which holds a hash sign, and returns
// its end or -1. The text needs at least one letter or mark and may not run
// into another hash sign or a scheme separator.
func matchHashtag(in *input, i int) int {
	start := i + 1
	if in.hasPrefixFold(start, "http://") || in.hasPrefixFold(start, "https://") {
		return -1
	}
	if r := in.at(start); r == 0xFE0F || r == 0x20E3 {
		return -1
	}

	j, letter := start, false
	for {
		r := in.at(j)
		if isLetterOrMark(r) {
			letter = true
		} else if !isHashtagSpecial(r) {
			break
		}
		j++
	}
	if !letter || isHashSign(in.at(j)) || in.hasPrefix(j, "://") {
		return -1
	}
	return j
}
