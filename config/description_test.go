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
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestParse_File(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		file  string
		parse func([]byte) (*Configuration, error)
	}{
		{"test_config.json", Parse},
		{"test_config.yaml", ParseYAML},
	} {
		tc := tc
		t.Run(tc.file, func(t *testing.T) {
			t.Parallel()
			c, err := tc.parse(readTestdata(t, tc.file))
			require.NoError(t, err)
			require.Equal(t, 42, c.Version())
			require.Equal(t, 400, c.MaxWeightedTweetLength())
			require.Equal(t, 43, c.Scale())
			require.Equal(t, 213, c.DefaultWeight())
			require.Equal(t, 32, c.TransformedURLLength())
			require.Equal(t, []WeightedRange{{Range: Range{Start: 0, End: 4351}, Weight: 200}}, c.Ranges())
		})
	}
}

func TestParse_MissingFieldsUseDefault(t *testing.T) {
	t.Parallel()

	c, err := Parse([]byte(`{"version": 7, "maxWeightedTweetLength": 500}`))
	require.NoError(t, err)
	require.Equal(t, 7, c.Version())
	require.Equal(t, 500, c.MaxWeightedTweetLength())
	require.Equal(t, Default().Scale(), c.Scale())
	require.Equal(t, Default().DefaultWeight(), c.DefaultWeight())
	require.Equal(t, Default().Ranges(), c.Ranges())
	require.True(t, c.EmojiParsingEnabled())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmptyDescription},
		{"blank", "  \n", ErrEmptyDescription},
		{"zero scale", `{"scale": 0}`, errNonPositiveScale},
		{"negative max", `{"maxWeightedTweetLength": -1}`, errNonPositiveMaxLength},
		{"negative default weight", `{"defaultWeight": -5}`, errNegativeWeight},
		{"negative url length", `{"transformedURLLength": -1}`, errNegativeURLLength},
		{"inverted range", `{"ranges": [{"start": 10, "end": 1, "weight": 1}]}`, errInvertedRange},
		{"negative range weight", `{"ranges": [{"start": 0, "end": 1, "weight": -1}]}`, errNegativeWeight},
		{
			"overlapping ranges",
			`{"ranges": [{"start": 0, "end": 10, "weight": 1}, {"start": 10, "end": 20, "weight": 1}]}`,
			errUnorderedRanges,
		},
		{
			"descending ranges",
			`{"ranges": [{"start": 100, "end": 110, "weight": 1}, {"start": 0, "end": 20, "weight": 1}]}`,
			errUnorderedRanges,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := Parse([]byte(tt.input))
			require.Nil(t, c)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "error should be a *ParseError, got %T", err)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`{"version": "three"`))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Contains(t, parseErr.Error(), "invalid JSON")

	_, err = ParseYAML([]byte("version: [1, 2"))
	require.ErrorAs(t, err, &parseErr)
	require.Contains(t, parseErr.Error(), "invalid YAML")
}

// TestFromJSON_Fallback checks that an unusable description always yields
// the default configuration.
func TestFromJSON_Fallback(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "not json", `{"scale": -1}`, `[1, 2, 3]`} {
		require.Same(t, Default(), FromJSON([]byte(input)), "input %q", input)
		require.Same(t, Default(), FromYAML([]byte(input)), "input %q", input)
	}

	c := FromJSON(readTestdata(t, "test_config.json"))
	require.Equal(t, 42, c.Version())
	c = FromYAML(readTestdata(t, "test_config.yaml"))
	require.Equal(t, 42, c.Version())
	require.False(t, c.EmojiParsingEnabled())
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(V2())
	require.NoError(t, err)
	require.JSONEq(t, string(readPreset(t, "v2.json")), string(data))

	var decoded Configuration
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, decoded.Equal(V2()))

	require.Error(t, json.Unmarshal([]byte(`{"scale": 0}`), &decoded))
}

func readPreset(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	return data
}

func TestKindError(t *testing.T) {
	t.Parallel()

	err := errInvertedRange.withDetails("[%d, %d]", 3, 1)
	require.Equal(t, "Weighted range start is after its end '[3, 1]'", err.Error())
	require.ErrorIs(t, err, errInvertedRange)
	require.NotErrorIs(t, err, errUnorderedRanges)
	require.Equal(t, "Scale must be positive", errNonPositiveScale.Error())

	pe := newParseError(err)
	require.Equal(t, "configuration parse error: Weighted range start is after its end '[3, 1]'", pe.Error())
	require.Nil(t, newParseError(nil))
}
