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

// maxTCOPathLength bounds the alphanumeric path of a t.co link.
const maxTCOPathLength = 40

// urlKind tells which grammar produced a urlMatch.
type urlKind int

const (
	protocolURL urlKind = iota
	tcoURL
	bareURL
)

// urlMatch is a grammar match of a URL. Offsets are codepoints.
type urlMatch struct {
	kind      urlKind
	start     int
	end       int
	hostStart int
	hostEnd   int
}

const (
	pathPunctuation  = "!*';:,.$%[]~|&@\u2013"
	queryPunctuation = "!?*'();:$%[].~|@,"
	queryEnd         = "-_&=/+"
	fragmentExtra    = "-_&=/+#"
	userinfoExtra    = "-._~:!$&'()*+,;="
)

func isDomainChar(r rune) bool {
	return r != eof && !IsSpace(r) && !isPunctuation(r) && !isInvalidChar(r)
}

func isBareDomainChar(r rune) bool {
	return isASCIIAlnum(r) || isLatinAccent(r)
}

func isUnicodeTLDChar(r rune) bool {
	return r >= 0x80 && isDomainChar(r)
}

func isURLPathEnd(r rune) bool {
	return isASCIIAlnum(r) || r == '=' || r == '_' || r == '-' || r == '+' || isCyrillic(r) || isLatinAccent(r)
}

func isPathPunctuation(r rune) bool {
	return r != eof && strings.ContainsRune(pathPunctuation, r)
}

func isPathChar(r rune) bool {
	return isURLPathEnd(r) || isPathPunctuation(r) || r == '/'
}

func isQueryEnd(r rune) bool {
	return isASCIIAlnum(r) || (r != eof && strings.ContainsRune(queryEnd, r))
}

func isQueryPunctuation(r rune) bool {
	return r != eof && strings.ContainsRune(queryPunctuation, r)
}

func isFragmentChar(r rune) bool {
	return isASCIIAlnum(r) || isQueryPunctuation(r) || (r != eof && strings.ContainsRune(fragmentExtra, r))
}

func isUserinfoChar(r rune) bool {
	return isASCIIAlnum(r) || isCyrillic(r) || (r != eof && strings.ContainsRune(userinfoExtra, r))
}

// isInvalidTLDSuffix reports codepoints that may not follow the last label of
// a protocol-less domain.
func isInvalidTLDSuffix(r rune) bool {
	return isASCIIAlnum(r) || isAtSign(r)
}

// isURLPredecessor reports whether r may precede a URL. The symbols of
// mentions, hashtags and cashtags may not.
func isURLPredecessor(r rune) bool {
	return r != '@' && r != '#' && r != '$' && r != '＠' && r != '＃'
}

// matchProtocol matches a case-insensitive "http://" or "https://".
func matchProtocol(in *input, i int) int {
	if !in.hasPrefixFold(i, "http") {
		return -1
	}
	i += 4
	if in.hasPrefixFold(i, "s") {
		i++
	}
	if !in.hasPrefix(i, "://") {
		return -1
	}
	return i + 3
}

// matchProtocolURL matches a URL with an explicit scheme starting at i.
func matchProtocolURL(in *input, i int) (urlMatch, bool) {
	if m, ok := matchTCOURL(in, i); ok {
		return m, true
	}
	return matchNormalURL(in, i)
}

// matchTCOURL matches a t.co short link. The host must be exactly "t.co".
func matchTCOURL(in *input, i int) (urlMatch, bool) {
	host := matchProtocol(in, i)
	if host < 0 || !in.hasPrefix(host, "t.co") {
		return urlMatch{}, false
	}
	j := host + 4
	if matchDomain(in, host) != j {
		return urlMatch{}, false
	}
	m := urlMatch{kind: tcoURL, start: i, hostStart: host, hostEnd: j}

	if in.at(j) == '/' {
		k := j + 1
		for isASCIIAlnum(in.at(k)) {
			k++
		}
		if k-(j+1) > maxTCOPathLength {
			return urlMatch{}, false
		}
		j = k
	}
	if q := matchQuery(in, j); q >= 0 {
		j = q
		if f := matchFragment(in, j); f >= 0 {
			j = f
		}
	}
	m.end = j
	return m, true
}

func matchNormalURL(in *input, i int) (urlMatch, bool) {
	j := matchProtocol(in, i)
	if j < 0 {
		return urlMatch{}, false
	}
	if u := matchUserinfo(in, j); u >= 0 {
		j = u
	}
	host := j
	j = matchHost(in, j)
	if j < 0 {
		return urlMatch{}, false
	}
	m := urlMatch{kind: protocolURL, start: i, hostStart: host, hostEnd: j}
	m.end = matchURLTail(in, j)
	return m, true
}

// matchURLTail consumes the optional port, path, query and fragment.
func matchURLTail(in *input, j int) int {
	if p := matchPort(in, j); p >= 0 {
		j = p
	}
	if p := matchPath(in, j); p >= 0 {
		j = p
	}
	if q := matchQuery(in, j); q >= 0 {
		j = q
	}
	if f := matchFragment(in, j); f >= 0 {
		j = f
	}
	return j
}

// matchUserinfo matches "user:password@" including the at sign.
func matchUserinfo(in *input, i int) int {
	for j := i; ; j++ {
		r := in.at(j)
		switch {
		case r == '@':
			return j + 1
		case r == '%':
			if !isASCIIHexDigit(in.at(j+1)) || !isASCIIHexDigit(in.at(j+2)) {
				return -1
			}
			j += 2
		case isUserinfoChar(r):
		default:
			return -1
		}
	}
}

func matchHost(in *input, i int) int {
	if in.hasPrefix(i, "t.co") && matchDomain(in, i) == i+4 {
		return -1
	}
	if j := matchIPLiteral(in, i); j >= 0 {
		return j
	}
	if j := matchIPv4(in, i); j >= 0 {
		if r := in.at(j); r != '.' && !isDomainChar(r) {
			return j
		}
	}
	return matchDomain(in, i)
}

func matchIPLiteral(in *input, i int) int {
	if in.at(i) != '[' {
		return -1
	}
	j := i + 1
	for r := in.at(j); isASCIIHexDigit(r) || r == ':' || r == '.'; r = in.at(j) {
		j++
	}
	if j == i+1 || in.at(j) != ']' {
		return -1
	}
	return j + 1
}

func matchIPv4(in *input, i int) int {
	j := i
	for octet := 0; octet < 4; octet++ {
		if octet > 0 {
			if in.at(j) != '.' {
				return -1
			}
			j++
		}
		if j = matchDecOctet(in, j); j < 0 {
			return -1
		}
	}
	return j
}

// matchDecOctet matches the longest decimal number in 0..255 without a
// leading zero.
func matchDecOctet(in *input, i int) int {
	if !isASCIIDigit(in.at(i)) {
		return -1
	}
	if in.at(i) == '0' {
		return i + 1
	}
	value, j := 0, i
	for j < i+3 && isASCIIDigit(in.at(j)) {
		next := value*10 + int(in.at(j)-'0')
		if next > 255 {
			break
		}
		value = next
		j++
	}
	return j
}

// matchDomain matches dot separated labels. A trailing dot is left out.
func matchDomain(in *input, i int) int {
	j := matchLabel(in, i, isDomainChar)
	for j >= 0 && in.at(j) == '.' {
		next := matchLabel(in, j+1, isDomainChar)
		if next < 0 {
			break
		}
		j = next
	}
	return j
}

// matchLabel matches a punycode label or a run of label characters joined
// by single hyphens or underscores.
func matchLabel(in *input, i int, isChar func(rune) bool) int {
	if in.hasPrefixFold(i, "xn--") && (isASCIIAlnum(in.at(i+4)) || in.at(i+4) == '-') {
		j := i + 4
		for isASCIIAlnum(in.at(j)) || in.at(j) == '-' {
			j++
		}
		return j
	}
	if !isChar(in.at(i)) {
		return -1
	}
	j := i + 1
	for {
		r := in.at(j)
		switch {
		case (r == '-' || r == '_') && isChar(in.at(j+1)):
			j += 2
		case isChar(r):
			j++
		default:
			return j
		}
	}
}

func matchPort(in *input, i int) int {
	if in.at(i) != ':' || in.at(i+1) < '1' || in.at(i+1) > '9' {
		return -1
	}
	j := i + 2
	for isASCIIDigit(in.at(j)) {
		j++
	}
	return j
}

// matchPath matches "/" followed by path characters. Parentheses must
// balance, and trailing punctuation is not part of the path.
func matchPath(in *input, i int) int {
	if in.at(i) != '/' {
		return -1
	}
	end, balanced, depth := i+1, i+1, 0
scan:
	for j := i + 1; ; j++ {
		switch r := in.at(j); {
		case r == '(':
			depth++
		case r == ')':
			if depth == 0 {
				break scan
			}
			depth--
		case isPathChar(r):
		default:
			break scan
		}
		end = j + 1
		if depth == 0 {
			balanced = end
		}
	}
	if depth > 0 {
		end = balanced
	}
	for end > i+1 && isPathPunctuation(in.at(end-1)) {
		end--
	}
	return end
}

// matchQuery matches "?" and its parameters. Punctuation is kept only when an
// unreserved character follows it. A lone "?" is accepted before "#".
func matchQuery(in *input, i int) int {
	if in.at(i) != '?' {
		return -1
	}
	if in.at(i+1) == '#' {
		return i + 1
	}
	end := -1
	for j := i + 1; ; j++ {
		r := in.at(j)
		if isQueryEnd(r) {
			end = j + 1
		} else if !isQueryPunctuation(r) {
			break
		}
	}
	return end
}

func matchFragment(in *input, i int) int {
	if in.at(i) != '#' {
		return -1
	}
	j := i + 1
	for isFragmentChar(in.at(j)) {
		j++
	}
	return j
}

// matchBareURL matches a URL without protocol starting at i: a dotted domain
// of Latin labels, possibly ending on a Unicode top-level label, followed by
// the optional port, path, query and fragment.
func matchBareURL(in *input, i int) (urlMatch, bool) {
	if in.at(in.indexFunc(i, func(r rune) bool { return r == '.' || IsSpace(r) })) != '.' {
		return urlMatch{}, false
	}

	j, dots := i, 0
	for {
		next := matchLabel(in, j, isBareDomainChar)
		if next < 0 {
			next = j
			for isUnicodeTLDChar(in.at(next)) {
				next++
			}
			if next == j {
				return urlMatch{}, false
			}
			j = next
			break
		}
		j = next
		if in.at(j) != '.' || !startsBareLabel(in, j+1) {
			break
		}
		j++
		dots++
	}
	if dots == 0 || isInvalidTLDSuffix(in.at(j)) {
		return urlMatch{}, false
	}
	m := urlMatch{kind: bareURL, start: i, hostStart: i, hostEnd: j}
	m.end = matchURLTail(in, j)
	return m, true
}

func startsBareLabel(in *input, i int) bool {
	return matchLabel(in, i, isBareDomainChar) >= 0 || isUnicodeTLDChar(in.at(i))
}

// MatchURL reports whether s, as a whole, follows the grammar of a URL with
// protocol. Top-level domains are not checked.
func MatchURL(s string) bool {
	in := newInput(s)
	m, ok := matchProtocolURL(in, 0)
	return ok && m.end == in.len()
}

// MatchURLWithoutProtocol reports whether s, as a whole, follows the grammar
// of a URL without protocol. Top-level domains are not checked.
func MatchURLWithoutProtocol(s string) bool {
	in := newInput(s)
	m, ok := matchBareURL(in, 0)
	return ok && m.end == in.len()
}
