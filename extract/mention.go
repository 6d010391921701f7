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

import "strings"

const (
	maxUsernameLength = 20
	maxListSlugLength = 25
)

// mentionMatch is a grammar match of an @ reference. Offsets are codepoints.
type mentionMatch struct {
	end int
	// slugStart is the offset of the "/" of a list reference, or -1.
	slugStart int
	federated bool
}

func isUsernameChar(r rune) bool {
	return isASCIIAlnum(r) || r == '_'
}

func isListSlugChar(r rune) bool {
	return isASCIIAlnum(r) || r == '_' || r == '-'
}

// isMentionPredecessor reports whether r may precede the at sign of a
// mention. Word characters and some symbols suggest an email address or
// other non-mention text.
func isMentionPredecessor(r rune) bool {
	if isUsernameChar(r) || isAtSign(r) {
		return false
	}
	return r == eof || !strings.ContainsRune("!#$%&*", r)
}

// hasRetweetPrefix reports an "RT" or "RT:" written right before offset i,
// itself at the start of the text or after whitespace.
func hasRetweetPrefix(in *input, i int) bool {
	rt := i - 2
	if in.at(i-1) == ':' {
		rt--
	}
	if rt < 0 || !in.hasPrefixFold(rt, "rt") {
		return false
	}
	return rt == 0 || IsSpace(in.at(rt-1))
}

// isInvalidMentionSuffix reports text after a mention that invalidates it.
func isInvalidMentionSuffix(in *input, j int) bool {
	r := in.at(j)
	return isAtSign(r) || r == '-' || isLatinAccent(r) || in.hasPrefix(j, "://")
}

// matchMention matches a federated mention, a list reference or a username
// at i, which holds an at sign. The predecessor has already been checked.
func matchMention(in *input, i int) (mentionMatch, bool) {
	if end := matchFederated(in, i); end >= 0 {
		return mentionMatch{end: end, slugStart: -1, federated: true}, true
	}

	j := i + 1
	for j < i+1+maxUsernameLength && isUsernameChar(in.at(j)) {
		j++
	}
	if j == i+1 {
		return mentionMatch{}, false
	}
	m := mentionMatch{end: j, slugStart: -1}

	if in.at(j) == '/' && isASCIILetter(in.at(j+1)) {
		k := j + 2
		for k < j+1+maxListSlugLength && isListSlugChar(in.at(k)) {
			k++
		}
		m = mentionMatch{end: k, slugStart: j}
	}

	if isInvalidMentionSuffix(in, m.end) {
		return mentionMatch{}, false
	}
	return m, true
}

// matchFederated matches "@user@domain" at i. The domain needs a dot, a
// valid top-level label and must pass the host lookup profile.
func matchFederated(in *input, i int) int {
	j := i + 1
	for isUsernameChar(in.at(j)) {
		j++
	}
	if j == i+1 || in.at(j) != '@' {
		return -1
	}
	domainStart := j + 1
	if !isUsernameChar(in.at(domainStart)) {
		return -1
	}
	end := domainStart
	for {
		k := end
		for isUsernameChar(in.at(k)) {
			k++
		}
		end = k
		for in.at(k) == '.' || in.at(k) == '-' {
			k++
		}
		if k == end || !isUsernameChar(in.at(k)) {
			break
		}
		end = k
	}

	domain := in.slice(domainStart, end)
	dot := strings.LastIndexByte(domain, '.')
	if dot < 0 || !IsValidTLD(domain[dot+1:]) || isInvalidMentionSuffix(in, end) {
		return -1
	}
	if _, err := hostProfile.ToASCII(domain); err != nil {
		return -1
	}
	return end
}
