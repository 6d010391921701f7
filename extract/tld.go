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
	_ "embed" // Note the blank import for go:embed
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
	"gopkg.in/yaml.v3"
)

//go:embed tlds.yml
var embeddedTLDs []byte

var (
	tldsOnce sync.Once
	tldTable map[string]struct{}
)

// tldList is the layout of tlds.yml.
type tldList struct {
	Country []string `yaml:"country"`
	Generic []string `yaml:"generic"`
}

// MaxURLLength is the longest URL, in bytes after IDNA conversion of its
// host, that the extractor accepts.
const MaxURLLength = 4096

// lengthWithoutScheme is added to protocol-less URLs before comparing their
// length with MaxURLLength.
const lengthWithoutScheme = len("https://")

// hostProfile is the UTS 46 lookup profile applied to every extracted host.
// Underscores and leading or trailing hyphens are accepted, label and name
// lengths are enforced.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
	idna.CheckHyphens(false),
	idna.VerifyDNSLength(true),
)

// IsValidTLD reports whether label is a top-level domain. A label is valid
// when the embedded country and generic table lists it, or when the ICANN
// section of the Public Suffix List manages it. Unicode labels are also
// checked in their punycode form, and case is ignored.
func IsValidTLD(label string) bool {
	if label == "" || strings.ContainsRune(label, '.') {
		return false
	}
	label = strings.ToLower(label)
	table := loadTLDs()
	if _, ok := table[label]; ok {
		return true
	}
	ascii, err := hostProfile.ToASCII(label)
	if err != nil || ascii == "" {
		return false
	}
	if _, ok := table[ascii]; ok {
		return true
	}
	// Probing a child name covers wildcard rules such as "*.ck".
	suffix, icann := publicsuffix.PublicSuffix("x." + ascii)
	return icann && (suffix == ascii || strings.HasSuffix(suffix, "."+ascii))
}

// loadTLDs decodes the embedded table once. It is part of the binary, so a
// failure is a build defect and panics.
func loadTLDs() map[string]struct{} {
	tldsOnce.Do(func() {
		tldTable = mustDecodeTLDs(embeddedTLDs)
	})
	return tldTable
}

func mustDecodeTLDs(data []byte) map[string]struct{} {
	var list tldList
	if err := yaml.Unmarshal(data, &list); err != nil {
		panic(fmt.Sprintf("extract: embedded tlds.yml: %v", err))
	}
	table := make(map[string]struct{}, 2*(len(list.Country)+len(list.Generic)))
	for _, tld := range append(list.Country, list.Generic...) {
		tld = strings.ToLower(tld)
		table[tld] = struct{}{}
		if ascii, err := hostProfile.ToASCII(tld); err == nil {
			table[ascii] = struct{}{}
		}
	}
	return table
}

// hasScriptMixing reports a domain label in which a non-Latin codepoint
// follows a Latin letter. Digits and hyphens belong to every script and
// punycode labels are exempt.
func hasScriptMixing(label []rune) bool {
	if len(label) >= 4 && strings.EqualFold(string(label[:4]), "xn--") {
		return false
	}
	seenLatin := false
	for _, r := range label {
		switch {
		case isLatin(r):
			seenLatin = true
		case isASCIIDigit(r) || r == '-':
		case seenLatin:
			return true
		}
	}
	return false
}

// scriptBoundary returns the length of the label prefix that ends before the
// first non-Latin codepoint following a Latin letter.
func scriptBoundary(label []rune) int {
	seenLatin := false
	for i, r := range label {
		switch {
		case isLatin(r):
			seenLatin = true
		case isASCIIDigit(r) || r == '-':
		case seenLatin:
			return i
		}
	}
	return len(label)
}

// splitLabels returns the [start, end) offsets of the dot separated labels
// of a domain.
func splitLabels(domain []rune) [][2]int {
	var labels [][2]int
	start := 0
	for i, r := range domain {
		if r == '.' {
			labels = append(labels, [2]int{start, i})
			start = i + 1
		}
	}
	return append(labels, [2]int{start, len(domain)})
}

// validDomainEnd returns where a protocol-less domain ends once its rightmost
// mixed-script label is cut at the script boundary.
func validDomainEnd(domain []rune) int {
	labels := splitLabels(domain)
	for i := len(labels) - 1; i >= 0; i-- {
		l := labels[i]
		if hasScriptMixing(domain[l[0]:l[1]]) {
			return l[0] + scriptBoundary(domain[l[0]:l[1]])
		}
	}
	return len(domain)
}

// validTLDBoundary finds where a domain ends on a valid top-level domain.
// Mixed-script labels are tried first, left to right, at their script
// boundary. Then labels are tried right to left. When exact is set, a
// non-ASCII label may also end on a Unicode TLD prefix of two or more
// codepoints ("みんなです" ends after "みんな").
func validTLDBoundary(domain []rune, exact bool) (int, bool) {
	labels := splitLabels(domain)
	if len(labels) < 2 {
		return 0, false
	}
	tail := labels[1:]

	for _, l := range tail {
		label := domain[l[0]:l[1]]
		if !hasScriptMixing(label) {
			continue
		}
		if n := scriptBoundary(label); n > 0 && IsValidTLD(string(label[:n])) {
			return l[0] + n, true
		}
	}

	for i := len(tail) - 1; i >= 0; i-- {
		l := tail[i]
		label := domain[l[0]:l[1]]
		if IsValidTLD(string(label)) {
			return l[1], true
		}
		if exact && !isASCIIString(label) {
			for n := 2; n < len(label); n++ {
				if IsValidTLD(string(label[:n])) {
					return l[0] + n, true
				}
			}
		}
	}
	return 0, false
}

func isASCIIString(label []rune) bool {
	for _, r := range label {
		if r >= 0x80 {
			return false
		}
	}
	return true
}

// validHost converts host with the lookup profile and checks the resulting
// URL length. urlLen is the byte length of the URL containing host.
func validHost(host string, urlLen int, hasScheme bool) bool {
	ascii, err := hostProfile.ToASCII(host)
	if err != nil {
		return false
	}
	length := urlLen - len(host) + len(ascii)
	if !hasScheme {
		length += lengthWithoutScheme
	}
	return length < MaxURLLength
}

// validateURL checks the host of a grammar match against the top-level
// domain table and the lookup profile. It returns where the accepted URL
// ends, which is before m.end when the host had to be cut after its TLD.
func validateURL(in *input, m urlMatch) (int, bool) {
	host := in.runes[m.hostStart:m.hostEnd]
	if m.kind == tcoURL {
		return m.end, validHost(string(host), len(in.slice(m.start, m.end)), true)
	}

	exact := m.kind == bareURL
	if exact {
		if end := validDomainEnd(host); end < len(host) {
			domain := host[:end]
			dot := strings.LastIndexByte(string(domain), '.')
			if dot < 0 || !IsValidTLD(string(domain)[dot+1:]) {
				return 0, false
			}
			urlEnd := m.hostStart + end
			return urlEnd, validHost(string(domain), len(in.slice(m.start, urlEnd)), false)
		}
	}

	end, ok := validTLDBoundary(host, exact)
	if !ok {
		return 0, false
	}
	urlEnd := m.end
	if end < len(host) {
		urlEnd = m.hostStart + end
	}
	return urlEnd, validHost(string(host[:end]), len(in.slice(m.start, urlEnd)), !exact)
}
