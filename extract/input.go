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

// eof is returned by input.at outside the text.
const eof rune = -1

// input provides random access over the codepoints of a text. Every offset
// handled by the grammar is a codepoint offset into runes.
type input struct {
	runes []rune
}

// newInput decodes s once. Invalid UTF-8 bytes become one U+FFFD each.
func newInput(s string) *input {
	return &input{runes: []rune(s)}
}

// len returns the number of codepoints in the text.
func (in *input) len() int {
	return len(in.runes)
}

// at returns the codepoint at i, or eof when i is out of range.
func (in *input) at(i int) rune {
	if i < 0 || i >= len(in.runes) {
		return eof
	}
	return in.runes[i]
}

// hasPrefix checks if the text at i starts with s.
func (in *input) hasPrefix(i int, s string) bool {
	for _, r := range s {
		if in.at(i) != r {
			return false
		}
		i++
	}
	return true
}

// hasPrefixFold is hasPrefix with ASCII case folding. s must be lowercase.
func (in *input) hasPrefixFold(i int, s string) bool {
	for _, r := range s {
		c := in.at(i)
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != r {
			return false
		}
		i++
	}
	return true
}

// slice returns the text between codepoint offsets i and j.
func (in *input) slice(i, j int) string {
	return string(in.runes[i:j])
}

// indexFunc returns the first offset at or after i whose codepoint satisfies
// f, or the text length.
func (in *input) indexFunc(i int, f func(rune) bool) int {
	for ; i < len(in.runes); i++ {
		if f(in.runes[i]) {
			return i
		}
	}
	return len(in.runes)
}
