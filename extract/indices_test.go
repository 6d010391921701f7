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
package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnitIndices(t *testing.T) {
	t.Parallel()
	const text = "\U0001F426 hi @user and #tag"

	entities := New().ExtractEntitiesWithIndices(text, false)
	require.Equal(t, []Entity{
		{Type: Mention, Start: 5, End: 10, Value: "user"},
		{Type: Hashtag, Start: 15, End: 19, Value: "tag"},
	}, entities)

	units := ToUnitIndices(text, entities)
	require.Equal(t, 6, units[0].Start)
	require.Equal(t, 11, units[0].End)
	require.Equal(t, 16, units[1].Start)
	require.Equal(t, 20, units[1].End)
	require.Equal(t, 5, entities[0].Start, "input must not be modified")

	require.Equal(t, entities, ToCodepointIndices(text, units))
}

func TestCodepointIndicesInsideSurrogatePair(t *testing.T) {
	t.Parallel()
	const text = "a\U0001F600b"
	got := ToCodepointIndices(text, []Entity{{Start: 2, End: 4}})
	require.Equal(t, 1, got[0].Start)
	require.Equal(t, 3, got[0].End)
}

func TestIndicesAreClamped(t *testing.T) {
	t.Parallel()
	got := ToUnitIndices("ab", []Entity{{Start: -3, End: 10}})
	require.Equal(t, 0, got[0].Start)
	require.Equal(t, 2, got[0].End)

	got = ToCodepointIndices("\U0001F600", []Entity{{Start: 0, End: 9}})
	require.Equal(t, 1, got[0].End)
}

func TestDecodeUTF16(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		units []uint16
		want  string
	}{
		{"ascii", []uint16{'h', 'i'}, "hi"},
		{"surrogate pair", []uint16{0xD83D, 0xDE00}, "\U0001F600"},
		{"lone high surrogate", []uint16{0xD800, 'a'}, "\uFFFDa"},
		{"lone low surrogate", []uint16{'a', 0xDC00}, "a\uFFFD"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, DecodeUTF16(tt.units))
		})
	}
}

func TestUnitOffsetsInvalidUTF8(t *testing.T) {
	t.Parallel()
	require.Equal(t, []int{0, 1, 2, 3}, unitOffsets("a\xffb"))
	require.Equal(t, []int{0, 2, 3}, unitOffsets("\U0001F600c"))
	require.Equal(t, []int{0}, unitOffsets(""))
}
