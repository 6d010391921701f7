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

/*
Package validate measures and validates tweet texts.

Parse computes the weighted length of a text under a configuration: every
codepoint is charged the weight of its range in the configuration table, a
URL is charged a flat length whatever its size, and under configurations
with emoji parsing an emoji sequence is charged once. The Validator builds
on it and adds standalone checks for usernames, lists, hashtags and URLs.

# Key Features

  - Texts are weighed in Unicode Normalization Form C, while the returned
    ranges are expressed in codepoints of the text as given.
  - Display and valid text ranges, for clients that grey out the part of a
    text past the limit.
  - Byte order marks and noncharacters make a text invalid whatever its
    length.
*/
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/jplu/twittertext/config"
	"github.com/jplu/twittertext/extract"
	"golang.org/x/text/unicode/norm"
)

// Range is a half-open window [Start, End) of codepoint offsets.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
}

// Len returns the number of codepoints in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// ParseResult holds the measurements of a text.
type ParseResult struct {
	// WeightedLength is the sum of the weights divided by the scale, rounded up.
	WeightedLength int `json:"weightedLength" yaml:"weightedLength"`
	// Permillage is WeightedLength in thousandths of the maximum length.
	Permillage int `json:"permillage" yaml:"permillage"`
	// IsValid reports a non-empty text within the limit and without
	// invalid characters.
	IsValid bool `json:"valid" yaml:"valid"`
	// DisplayTextRange excludes leading and trailing whitespace and
	// directional marks.
	DisplayTextRange Range `json:"displayTextRange" yaml:"displayTextRange"`
	// ValidTextRange is the prefix of DisplayTextRange that fits the limit
	// and precedes the first invalid character.
	ValidTextRange Range `json:"validTextRange" yaml:"validTextRange"`
}

// Parse measures text under cfg. When extractURLs is false URLs are charged
// like any other text. A nil cfg means config.Default().
func Parse(text string, cfg *config.Configuration, extractURLs bool) ParseResult {
	if text == "" {
		return ParseResult{}
	}
	if cfg == nil {
		cfg = config.Default()
	}

	nfc, offsets := normalize(text)
	runes := []rune(nfc)
	tokens := extract.Scan(nfc, extract.ScanOptions{URLWithoutProtocol: true})

	m := newMeter(cfg)
	pos := 0
	for _, tok := range tokens {
		for ; pos < tok.Start; pos++ {
			m.text(runes[pos])
		}
		switch {
		case tok.Kind == extract.InvalidCharToken:
			m.valid = false
		case tok.Kind == extract.EmojiToken && cfg.EmojiParsingEnabled():
			m.unit(cfg.DefaultWeight(), tok.End-tok.Start)
			pos = tok.End
		case tok.Kind == extract.EntityToken && tok.Entity.Type == extract.URL && extractURLs:
			m.unit(cfg.TransformedURLLength()*cfg.Scale(), tok.End-tok.Start)
			pos = tok.End
		}
	}
	for ; pos < len(runes); pos++ {
		m.text(runes[pos])
	}

	weighted := (m.sum + cfg.Scale() - 1) / cfg.Scale()
	display := trimmedRange(runes)
	valid := Range{Start: display.Start, End: max(display.Start, min(display.End, m.validEnd))}

	return ParseResult{
		WeightedLength:   weighted,
		Permillage:       weighted * 1000 / cfg.MaxWeightedTweetLength(),
		IsValid:          m.valid && weighted > 0 && weighted <= cfg.MaxWeightedTweetLength(),
		DisplayTextRange: offsets.original(display),
		ValidTextRange:   offsets.original(valid),
	}
}

// meter accumulates the weight of a text codepoint by codepoint.
type meter struct {
	cfg   *config.Configuration
	limit int
	sum   int
	// end is the number of codepoints seen, validEnd the number seen while
	// the text was still valid and within the limit.
	end      int
	validEnd int
	valid    bool
}

func newMeter(cfg *config.Configuration) *meter {
	return &meter{
		cfg:   cfg,
		limit: cfg.MaxWeightedTweetLength() * cfg.Scale(),
		valid: true,
	}
}

func (m *meter) advance(n int) {
	m.end += n
	if m.valid && m.sum <= m.limit {
		m.validEnd += n
	}
}

func (m *meter) text(r rune) {
	m.sum += m.cfg.Weight(r)
	m.advance(1)
}

// unit charges weight once for a span of n codepoints.
func (m *meter) unit(weight, n int) {
	m.sum += weight
	m.advance(n)
}

func isDirectionalMark(r rune) bool {
	switch {
	case r == 0x200E, r == 0x200F, r == 0x061C,
		r >= 0x202A && r <= 0x202E,
		r >= 0x2066 && r <= 0x2069:
		return true
	}
	return false
}

func isBlank(r rune) bool {
	return extract.IsSpace(r) || isDirectionalMark(r)
}

// trimmedRange returns the range of runes without blank codepoints at
// either end. A blank text yields an empty range at offset 0.
func trimmedRange(runes []rune) Range {
	start, end := 0, len(runes)
	for start < end && isBlank(runes[start]) {
		start++
	}
	for end > start && isBlank(runes[end-1]) {
		end--
	}
	if start == end {
		return Range{}
	}
	return Range{Start: start, End: end}
}

// offsetMap maps codepoint boundaries of a normalized text back to the text
// it was normalized from. lo and hi differ only for boundaries inside a
// segment whose codepoints were recomposed, where lo is the start of the
// original segment and hi its end.
type offsetMap struct {
	lo []int
	hi []int
}

func (m offsetMap) original(r Range) Range {
	return Range{Start: m.lo[r.Start], End: m.hi[r.End]}
}

// normalize returns the NFC form of text along with its offset map.
func normalize(text string) (string, offsetMap) {
	var (
		it   norm.Iter
		b    strings.Builder
		m    offsetMap
		orig int
	)
	b.Grow(len(text))
	it.InitString(norm.NFC, text)
	for !it.Done() {
		from := it.Pos()
		seg := it.Next()
		src := text[from:it.Pos()]
		consumed := utf8.RuneCountInString(src)
		n := utf8.RuneCount(seg)
		unchanged := string(seg) == src
		for k := 0; k < n; k++ {
			if unchanged || k == 0 {
				m.lo = append(m.lo, orig+k)
				m.hi = append(m.hi, orig+k)
				continue
			}
			m.lo = append(m.lo, orig)
			m.hi = append(m.hi, orig+consumed)
		}
		orig += consumed
		b.Write(seg)
	}
	m.lo = append(m.lo, orig)
	m.hi = append(m.hi, orig)
	return b.String(), m
}
