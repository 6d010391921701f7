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
	"testing"
)

// TestPresets checks the values of the three embedded presets.
func TestPresets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		config      *Configuration
		version     int
		max         int
		scale       int
		defWeight   int
		emoji       bool
		rangesCount int
	}{
		{"v1", V1(), 1, 140, 1, 1, false, 0},
		{"v2", V2(), 2, 280, 100, 200, false, 4},
		{"v3", V3(), 3, 280, 100, 200, true, 4},
		{"default", Default(), 3, 280, 100, 200, true, 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := tt.config
			if c.Version() != tt.version {
				t.Errorf("Version() = %d, want %d", c.Version(), tt.version)
			}
			if c.MaxWeightedTweetLength() != tt.max {
				t.Errorf("MaxWeightedTweetLength() = %d, want %d", c.MaxWeightedTweetLength(), tt.max)
			}
			if c.Scale() != tt.scale {
				t.Errorf("Scale() = %d, want %d", c.Scale(), tt.scale)
			}
			if c.DefaultWeight() != tt.defWeight {
				t.Errorf("DefaultWeight() = %d, want %d", c.DefaultWeight(), tt.defWeight)
			}
			if c.TransformedURLLength() != 23 {
				t.Errorf("TransformedURLLength() = %d, want 23", c.TransformedURLLength())
			}
			if c.EmojiParsingEnabled() != tt.emoji {
				t.Errorf("EmojiParsingEnabled() = %v, want %v", c.EmojiParsingEnabled(), tt.emoji)
			}
			if got := len(c.Ranges()); got != tt.rangesCount {
				t.Errorf("len(Ranges()) = %d, want %d", got, tt.rangesCount)
			}
		})
	}
}

func TestPresetsAreShared(t *testing.T) {
	t.Parallel()
	if V3() != Default() {
		t.Error("Default() should return the v3 preset")
	}
	if V1() != V1() {
		t.Error("V1() should return the same instance on every call")
	}
}

// TestWeight checks the binary search over the weight table, including the
// boundaries of every v2 range.
func TestWeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    rune
		want int
	}{
		{"ASCII letter", 'a', 100},
		{"NUL", 0, 100},
		{"last of first range", 4351, 100},
		{"first after first range", 4352, 200},
		{"CJK", '中', 200},
		{"en quad", 8192, 100},
		{"zero width joiner", 8205, 100},
		{"left-to-right mark", 8206, 200},
		{"hyphen", 8208, 100},
		{"right double quote", 8221, 100},
		{"bullet range end", 8223, 100},
		{"between ranges", 8230, 200},
		{"prime", 8242, 100},
		{"reversed triple prime", 8247, 100},
		{"after last range", 8248, 200},
		{"emoji", '😀', 200},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := V2().Weight(tt.r); got != tt.want {
				t.Errorf("V2().Weight(%U) = %d, want %d", tt.r, got, tt.want)
			}
		})
	}

	if got := V1().Weight('中'); got != 1 {
		t.Errorf("V1().Weight('中') = %d, want 1", got)
	}
}

func TestRangesReturnsCopy(t *testing.T) {
	t.Parallel()
	c := V2()
	ranges := c.Ranges()
	ranges[0].Weight = 999
	if c.Weight('a') != 100 {
		t.Error("mutating the slice returned by Ranges() changed the configuration")
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()
	same, err := New(V2().Description())
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}
	if !same.Equal(V2()) {
		t.Error("a configuration rebuilt from its description should be equal to the original")
	}
	if V2().Equal(V3()) {
		t.Error("v2 and v3 should not be equal")
	}
	var nilConfig *Configuration
	if !nilConfig.Equal(nil) {
		t.Error("two nil configurations should be equal")
	}
	if V1().Equal(nil) {
		t.Error("a configuration should not equal nil")
	}
}
