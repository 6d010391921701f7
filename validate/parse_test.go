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
package validate

import (
	"strings"
	"testing"

	"github.com/jplu/twittertext/config"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	const longURL = "Visit https://example.com/a/very/long/path/indeed today"
	family := "\U0001F468\u200D\U0001F469\u200D\U0001F467"
	accent := func(n int) string { return strings.Repeat("e\u0301", n) }

	tests := []struct {
		name        string
		text        string
		cfg         *config.Configuration
		extractURLs bool
		want        ParseResult
	}{
		{
			name: "empty",
			text: "",
			cfg:  config.V3(),
			want: ParseResult{},
		},
		{
			name: "plain text v1",
			text: "Normal Text",
			cfg:  config.V1(),
			want: ParseResult{
				WeightedLength: 11, Permillage: 78, IsValid: true,
				DisplayTextRange: Range{0, 11}, ValidTextRange: Range{0, 11},
			},
		},
		{
			name: "entities count as text",
			text: "Text with #hashtag, @mention and $CASH",
			cfg:  config.V1(),
			want: ParseResult{
				WeightedLength: 38, Permillage: 271, IsValid: true,
				DisplayTextRange: Range{0, 38}, ValidTextRange: Range{0, 38},
			},
		},
		{
			name: "over the v1 limit",
			text: strings.Repeat("a", 141),
			cfg:  config.V1(),
			want: ParseResult{
				WeightedLength: 141, Permillage: 1007, IsValid: false,
				DisplayTextRange: Range{0, 141}, ValidTextRange: Range{0, 140},
			},
		},
		{
			name: "combining accents are composed",
			text: accent(279),
			cfg:  config.V3(),
			want: ParseResult{
				WeightedLength: 279, Permillage: 996, IsValid: true,
				DisplayTextRange: Range{0, 558}, ValidTextRange: Range{0, 558},
			},
		},
		{
			name: "exactly at the v3 limit",
			text: accent(280),
			cfg:  config.V3(),
			want: ParseResult{
				WeightedLength: 280, Permillage: 1000, IsValid: true,
				DisplayTextRange: Range{0, 560}, ValidTextRange: Range{0, 560},
			},
		},
		{
			name: "one over the v3 limit",
			text: accent(281),
			cfg:  config.V3(),
			want: ParseResult{
				WeightedLength: 281, Permillage: 1003, IsValid: false,
				DisplayTextRange: Range{0, 562}, ValidTextRange: Range{0, 560},
			},
		},
		{
			name:        "URL charged flat",
			text:        longURL,
			cfg:         config.V3(),
			extractURLs: true,
			want: ParseResult{
				WeightedLength: 35, Permillage: 125, IsValid: true,
				DisplayTextRange: Range{0, 55}, ValidTextRange: Range{0, 55},
			},
		},
		{
			name: "URL charged as text",
			text: longURL,
			cfg:  config.V3(),
			want: ParseResult{
				WeightedLength: 55, Permillage: 196, IsValid: true,
				DisplayTextRange: Range{0, 55}, ValidTextRange: Range{0, 55},
			},
		},
		{
			name: "emoji sequence charged once",
			text: family,
			cfg:  config.V3(),
			want: ParseResult{
				WeightedLength: 2, Permillage: 7, IsValid: true,
				DisplayTextRange: Range{0, 5}, ValidTextRange: Range{0, 5},
			},
		},
		{
			name: "emoji sequence charged per codepoint",
			text: family,
			cfg:  config.V2(),
			want: ParseResult{
				WeightedLength: 8, Permillage: 28, IsValid: true,
				DisplayTextRange: Range{0, 5}, ValidTextRange: Range{0, 5},
			},
		},
		{
			name: "combining mark after emoji is text",
			text: "\U0001F600\u0301",
			cfg:  config.V3(),
			want: ParseResult{
				WeightedLength: 3, Permillage: 10, IsValid: true,
				DisplayTextRange: Range{0, 2}, ValidTextRange: Range{0, 2},
			},
		},
		{
			name: "math symbol is not emoji",
			text: "\u2211\u0301",
			cfg:  config.V3(),
			want: ParseResult{
				WeightedLength: 3, Permillage: 10, IsValid: true,
				DisplayTextRange: Range{0, 2}, ValidTextRange: Range{0, 2},
			},
		},
		{
			name: "CJK",
			text: "日本語",
			cfg:  config.V3(),
			want: ParseResult{
				WeightedLength: 6, Permillage: 21, IsValid: true,
				DisplayTextRange: Range{0, 3}, ValidTextRange: Range{0, 3},
			},
		},
		{
			name: "directional marks are trimmed",
			text: "\u200Fhello world \u200E",
			cfg:  config.V3(),
			want: ParseResult{
				WeightedLength: 16, Permillage: 57, IsValid: true,
				DisplayTextRange: Range{1, 12}, ValidTextRange: Range{1, 12},
			},
		},
		{
			name: "leading whitespace",
			text: "  hi",
			cfg:  config.V1(),
			want: ParseResult{
				WeightedLength: 4, Permillage: 28, IsValid: true,
				DisplayTextRange: Range{2, 4}, ValidTextRange: Range{2, 4},
			},
		},
		{
			name: "invalid character",
			text: "ab\uFFFEcd",
			cfg:  config.V1(),
			want: ParseResult{
				WeightedLength: 5, Permillage: 35, IsValid: false,
				DisplayTextRange: Range{0, 5}, ValidTextRange: Range{0, 2},
			},
		},
		{
			name: "nil configuration is the default",
			text: "hi",
			want: ParseResult{
				WeightedLength: 2, Permillage: 7, IsValid: true,
				DisplayTextRange: Range{0, 2}, ValidTextRange: Range{0, 2},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Parse(tt.text, tt.cfg, tt.extractURLs))
		})
	}
}

func TestParseRoundsUp(t *testing.T) {
	t.Parallel()
	cfg, err := config.New(config.Description{
		Version:                9,
		MaxWeightedTweetLength: 10,
		Scale:                  2,
		DefaultWeight:          1,
		TransformedURLLength:   23,
	})
	require.NoError(t, err)

	got := Parse("abc", cfg, false)
	require.Equal(t, 2, got.WeightedLength)
	require.Equal(t, 200, got.Permillage)
	require.True(t, got.IsValid)
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		want string
		lo   []int
		hi   []int
	}{
		{"ascii", "abc", "abc", []int{0, 1, 2, 3}, []int{0, 1, 2, 3}},
		{"composed", "e\u0301x", "\u00E9x", []int{0, 2, 3}, []int{0, 2, 3}},
		{"already composed", "\u00E9x", "\u00E9x", []int{0, 1, 2}, []int{0, 1, 2}},
		{"hangul jamo", "\u1100\u1161!", "\uAC00!", []int{0, 2, 3}, []int{0, 2, 3}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, m := normalize(tt.text)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.lo, m.lo)
			require.Equal(t, tt.hi, m.hi)
		})
	}
}

func TestTrimmedRange(t *testing.T) {
	t.Parallel()
	require.Equal(t, Range{}, trimmedRange([]rune("   ")))
	require.Equal(t, Range{}, trimmedRange(nil))
	require.Equal(t, Range{1, 3}, trimmedRange([]rune("\u202Aab\u2069")))
	require.Equal(t, 2, Range{1, 3}.Len())
}
