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

import (
	"strings"
	"unicode"
)

// isASCIILetter checks if a rune is an ASCII letter.
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit checks if a rune is an ASCII digit.
func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isASCIIAlnum checks if a rune is an ASCII letter or digit.
func isASCIIAlnum(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r)
}

// isASCIIHexDigit checks if a rune is an ASCII hexadecimal digit.
func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// isLatinAccent reports accented Latin letters and combining diacritics. They
// are word characters for mention boundaries and protocol-less domains.
func isLatinAccent(r rune) bool {
	switch {
	case r >= 0x00C0 && r <= 0x00D6,
		r >= 0x00D8 && r <= 0x00F6,
		r >= 0x00F8 && r <= 0x00FF,
		r >= 0x0100 && r <= 0x024F,
		r >= 0x0253 && r <= 0x0254,
		r >= 0x0256 && r <= 0x0257,
		r == 0x0259, r == 0x025B, r == 0x0263, r == 0x0268,
		r == 0x026F, r == 0x0272, r == 0x0289, r == 0x028B,
		r == 0x02BB,
		r >= 0x0300 && r <= 0x036F,
		r >= 0x1E00 && r <= 0x1EFF:
		return true
	}
	return false
}

func isCyrillic(r rune) bool {
	return r >= 0x0400 && r <= 0x04FF
}

// IsSpace reports the whitespace set of the grammar: the Unicode White_Space
// characters plus U+180E MONGOLIAN VOWEL SEPARATOR.
func IsSpace(r rune) bool {
	switch {
	case r >= 0x0009 && r <= 0x000D,
		r >= 0x2000 && r <= 0x200A:
		return true
	}
	switch r {
	case 0x0020, 0x0085, 0x00A0, 0x1680, 0x180E, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000:
		return true
	}
	return false
}

// isPunctuation reports ASCII punctuation.
func isPunctuation(r rune) bool {
	return r < 0x80 && strings.ContainsRune("-_!\"#$%&'()*+,./\\:;<=>?@[]^`{|}~", r)
}

// isInvalidChar reports the codepoints that make a text invalid: the byte
// order marks and the U+FFFF noncharacter.
func isInvalidChar(r rune) bool {
	return r == 0xFFFE || r == 0xFEFF || r == 0xFFFF
}

// isURLDelimiter reports CJK and fullwidth codepoints that end a URL context
// the same way a space does.
func isURLDelimiter(r rune) bool {
	switch {
	case r >= 0x3000 && r <= 0x303F,
		r >= 0x3040 && r <= 0x309F,
		r >= 0x30A0 && r <= 0x30FF,
		r >= 0x4E00 && r <= 0x9FFF,
		r >= 0xAC00 && r <= 0xD7AF,
		r >= 0xFF00 && r <= 0xFFEF:
		return true
	}
	return false
}

// isLatin is the script test used by domain label mixing checks.
func isLatin(r rune) bool {
	return isASCIILetter(r) || (r >= 0x00C0 && r <= 0x024F)
}

func isAtSign(r rune) bool {
	return r == '@' || r == '＠'
}

func isHashSign(r rune) bool {
	return r == '#' || r == '＃'
}

func isLetterOrMark(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r)
}
