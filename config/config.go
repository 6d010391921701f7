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

// Package config holds the versioned weighting configuration used to measure
// the length of a tweet.
//
// A Configuration bundles a weight table (codepoint ranges with a weight
// each), the scale those weights are expressed in, the weight of codepoints
// outside every range, the flat length charged for a URL and whether emoji
// sequences are charged as a single unit.
//
// # Key Features
//   - Named presets for the three historical versions: V1, V2 and V3.
//   - Declarative descriptions in JSON or YAML, with a total fallback to the
//     default configuration so that callers always get a usable value.
//   - Immutable values that are safe to share between goroutines.
package config

import (
	"encoding/json"
	"sort"
)

// Range is an inclusive range of codepoints.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether the codepoint cp falls within the range.
func (r Range) Contains(cp int) bool {
	return r.Start <= cp && cp <= r.End
}

// WeightedRange assigns a weight to every codepoint of a Range.
type WeightedRange struct {
	Range  `yaml:",inline"`
	Weight int `json:"weight" yaml:"weight"`
}

// Configuration is an immutable weighting configuration. The zero value is
// not usable; obtain one from a preset or from Parse.
type Configuration struct {
	version                int
	maxWeightedTweetLength int
	scale                  int
	defaultWeight          int
	transformedURLLength   int
	emojiParsingEnabled    bool
	ranges                 []WeightedRange
}

// Version returns the version tag of the configuration.
func (c *Configuration) Version() int { return c.version }

// MaxWeightedTweetLength returns the largest valid weighted length.
func (c *Configuration) MaxWeightedTweetLength() int { return c.maxWeightedTweetLength }

// Scale returns the factor every weight is divided by.
func (c *Configuration) Scale() int { return c.scale }

// DefaultWeight returns the weight of codepoints outside every range.
func (c *Configuration) DefaultWeight() int { return c.defaultWeight }

// TransformedURLLength returns the unscaled length charged for each URL.
func (c *Configuration) TransformedURLLength() int { return c.transformedURLLength }

// EmojiParsingEnabled reports whether an emoji sequence is charged once.
func (c *Configuration) EmojiParsingEnabled() bool { return c.emojiParsingEnabled }

// Ranges returns a copy of the weight table.
func (c *Configuration) Ranges() []WeightedRange {
	out := make([]WeightedRange, len(c.ranges))
	copy(out, c.ranges)
	return out
}

// Weight returns the weight of the codepoint r: the weight of the range that
// contains it, or the default weight.
func (c *Configuration) Weight(r rune) int {
	cp := int(r)
	i := sort.Search(len(c.ranges), func(i int) bool { return c.ranges[i].End >= cp })
	if i < len(c.ranges) && c.ranges[i].Contains(cp) {
		return c.ranges[i].Weight
	}
	return c.defaultWeight
}

// Description returns the declarative form of the configuration.
func (c *Configuration) Description() Description {
	return Description{
		Version:                c.version,
		MaxWeightedTweetLength: c.maxWeightedTweetLength,
		Scale:                  c.scale,
		DefaultWeight:          c.defaultWeight,
		TransformedURLLength:   c.transformedURLLength,
		EmojiParsingEnabled:    c.emojiParsingEnabled,
		Ranges:                 c.Ranges(),
	}
}

// MarshalJSON encodes the configuration as its description.
func (c *Configuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Description())
}

// UnmarshalJSON decodes a description into the configuration. Unlike
// FromJSON it reports invalid input instead of falling back.
func (c *Configuration) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}

// Equal reports whether two configurations describe the same weighting.
func (c *Configuration) Equal(other *Configuration) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.version != other.version ||
		c.maxWeightedTweetLength != other.maxWeightedTweetLength ||
		c.scale != other.scale ||
		c.defaultWeight != other.defaultWeight ||
		c.transformedURLLength != other.transformedURLLength ||
		c.emojiParsingEnabled != other.emojiParsingEnabled ||
		len(c.ranges) != len(other.ranges) {
		return false
	}
	for i := range c.ranges {
		if c.ranges[i] != other.ranges[i] {
			return false
		}
	}
	return true
}
