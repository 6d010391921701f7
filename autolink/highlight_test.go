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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package autolink

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHighlight(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		hits []Hit
		want string
	}{
		{"no hits", "this is a test", nil, "this is a test"},
		{"beginning", "this is a test", []Hit{{0, 4}}, "<em>this</em> is a test"},
		{"middle", "this is a test", []Hit{{5, 7}}, "this <em>is</em> a test"},
		{"end", "this is a test", []Hit{{10, 14}}, "this is a <em>test</em>"},
		{"multiple", "this is a test", []Hit{{8, 9}, {0, 4}}, "<em>this</em> is <em>a</em> test"},
		{"adjacent", "abcd", []Hit{{0, 2}, {2, 4}}, "<em>ab</em><em>cd</em>"},
		{"overlapping", "abcdef", []Hit{{0, 3}, {2, 5}}, "<em>abcde</em>f"},
		{"empty hit", "abc", []Hit{{1, 1}}, "abc"},
		{"past the end", "abc", []Hit{{1, 10}}, "a<em>bc</em>"},
		{"unicode", "日本語 text", []Hit{{0, 3}}, "<em>日本語</em> text"},
		{"inside a link", "<a>this</a> is a test", []Hit{{0, 4}}, "<a><em>this</em></a> is a test"},
		{
			"across a link",
			`<a href="x">this is</a> a test`,
			[]Hit{{5, 9}},
			`<a href="x">this <em>is</em></a><em> a</em> test`,
		},
		{
			"autolinked hashtag",
			`Check <a href="https://twitter.com/search?q=%23go" class="tweet-url hashtag">#go</a> now`,
			[]Hit{{6, 9}},
			`Check <a href="https://twitter.com/search?q=%23go" class="tweet-url hashtag"><em>#go</em></a> now`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, NewHitHighlighter().Highlight(tt.text, tt.hits))
		})
	}
}

func TestHighlightTag(t *testing.T) {
	t.Parallel()
	h := NewHitHighlighterWithTag("b")
	require.Equal(t, "b", h.Tag())
	require.Equal(t, "<b>hi</b> there", h.Highlight("hi there", []Hit{{0, 2}}))
	require.Equal(t, DefaultHighlightTag, NewHitHighlighter().Tag())
}

func TestNormalizeHits(t *testing.T) {
	t.Parallel()
	got := normalizeHits([]Hit{{5, 6}, {-1, 2}, {0, 2}, {1, 4}, {3, 3}})
	require.Equal(t, []Hit{{0, 4}, {5, 6}}, got)
}
