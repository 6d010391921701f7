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

package autolink

import (
	"cmp"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// DefaultHighlightTag is the tag wrapping hits.
const DefaultHighlightTag = "em"

// Hit is a half-open range [Start, End) of text codepoints to highlight.
// Codepoints inside markup do not count.
type Hit struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
}

// HitHighlighter wraps hits in a tag. The text may already contain markup,
// such as the output of an Autolinker; hits then count only the characters
// of text nodes and the highlight tag is closed and reopened around other
// tags so that the result stays well nested.
type HitHighlighter struct {
	tag string
}

// NewHitHighlighter returns a HitHighlighter using DefaultHighlightTag.
func NewHitHighlighter() *HitHighlighter {
	return NewHitHighlighterWithTag(DefaultHighlightTag)
}

// NewHitHighlighterWithTag returns a HitHighlighter using tag.
func NewHitHighlighterWithTag(tag string) *HitHighlighter {
	return &HitHighlighter{tag: tag}
}

// Tag returns the highlight tag.
func (h *HitHighlighter) Tag() string {
	return h.tag
}

// Highlight returns text with every hit wrapped in the highlight tag. Empty
// hits are ignored and overlapping hits are highlighted once.
func (h *HitHighlighter) Highlight(text string, hits []Hit) string {
	hits = normalizeHits(hits)
	if len(hits) == 0 {
		return text
	}

	w := &highlightWriter{
		open:  "<" + h.tag + ">",
		close: "</" + h.tag + ">",
		hits:  hits,
		cur:   -1,
	}
	w.b.Grow(len(text) + len(hits)*(len(w.open)+len(w.close)))

	z := html.NewTokenizer(strings.NewReader(text))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				w.markup(z.Raw())
			}
			w.closeHit()
			return w.b.String()
		case html.TextToken:
			w.text(z.Raw())
		default:
			w.markup(z.Raw())
		}
	}
}

// normalizeHits sorts the hits and merges the ones that overlap.
func normalizeHits(hits []Hit) []Hit {
	out := make([]Hit, 0, len(hits))
	for _, hit := range hits {
		if hit.Start >= 0 && hit.Start < hit.End {
			out = append(out, hit)
		}
	}
	slices.SortFunc(out, func(a, b Hit) int { return cmp.Compare(a.Start, b.Start) })

	merged := out[:0]
	for _, hit := range out {
		if n := len(merged); n > 0 && hit.Start < merged[n-1].End {
			merged[n-1].End = max(merged[n-1].End, hit.End)
			continue
		}
		merged = append(merged, hit)
	}
	return merged
}

type highlightWriter struct {
	b     strings.Builder
	open  string
	close string
	hits  []Hit
	next  int
	// cur is the index of the hit whose tag is open, or -1.
	cur   int
	count int
}

func (w *highlightWriter) closeHit() {
	if w.cur >= 0 {
		w.b.WriteString(w.close)
		w.cur = -1
	}
}

func (w *highlightWriter) markup(raw []byte) {
	w.closeHit()
	w.b.Write(raw)
}

func (w *highlightWriter) text(raw []byte) {
	for s := string(raw); s != ""; {
		_, size := utf8.DecodeRuneInString(s)
		for w.next < len(w.hits) && w.hits[w.next].End <= w.count {
			w.next++
		}
		inside := w.next < len(w.hits) && w.hits[w.next].Start <= w.count
		if w.cur >= 0 && (!inside || w.cur != w.next) {
			w.closeHit()
		}
		if inside && w.cur < 0 {
			w.b.WriteString(w.open)
			w.cur = w.next
		}
		w.b.WriteString(s[:size])
		s = s[size:]
		w.count++
	}
}
