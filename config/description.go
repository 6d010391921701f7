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

package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Description is the declarative, version-tagged form of a Configuration.
// Its JSON and YAML keys are the ones used by the configuration files shipped
// with every twitter-text implementation.
type Description struct {
	Version                int             `json:"version" yaml:"version"`
	MaxWeightedTweetLength int             `json:"maxWeightedTweetLength" yaml:"maxWeightedTweetLength"`
	Scale                  int             `json:"scale" yaml:"scale"`
	DefaultWeight          int             `json:"defaultWeight" yaml:"defaultWeight"`
	TransformedURLLength   int             `json:"transformedURLLength" yaml:"transformedURLLength"`
	EmojiParsingEnabled    bool            `json:"emojiParsingEnabled" yaml:"emojiParsingEnabled"`
	Ranges                 []WeightedRange `json:"ranges" yaml:"ranges"`
}

// New validates a description and builds the Configuration it describes.
func New(d Description) (*Configuration, error) {
	if err := d.validate(); err != nil {
		return nil, newParseError(err)
	}
	ranges := make([]WeightedRange, len(d.Ranges))
	copy(ranges, d.Ranges)
	return &Configuration{
		version:                d.Version,
		maxWeightedTweetLength: d.MaxWeightedTweetLength,
		scale:                  d.Scale,
		defaultWeight:          d.DefaultWeight,
		transformedURLLength:   d.TransformedURLLength,
		emojiParsingEnabled:    d.EmojiParsingEnabled,
		ranges:                 ranges,
	}, nil
}

// Parse decodes a JSON description. Fields missing from the document keep
// the value of the default configuration.
func Parse(data []byte) (*Configuration, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, newParseError(ErrEmptyDescription)
	}
	d := Default().Description()
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &ParseError{Message: fmt.Sprintf("invalid JSON: %v", err), Err: err}
	}
	return New(d)
}

// ParseYAML decodes a YAML description using the same keys as Parse.
func ParseYAML(data []byte) (*Configuration, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, newParseError(ErrEmptyDescription)
	}
	d := Default().Description()
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, &ParseError{Message: fmt.Sprintf("invalid YAML: %v", err), Err: err}
	}
	return New(d)
}

// FromJSON is like Parse but never fails: an invalid description is logged
// and replaced by the default configuration.
func FromJSON(data []byte) *Configuration {
	c, err := Parse(data)
	if err != nil {
		log.Warn().Err(err).Int("bytes", len(data)).Msg("invalid JSON configuration, using default")
		return Default()
	}
	return c
}

// FromYAML is the YAML counterpart of FromJSON.
func FromYAML(data []byte) *Configuration {
	c, err := ParseYAML(data)
	if err != nil {
		log.Warn().Err(err).Int("bytes", len(data)).Msg("invalid YAML configuration, using default")
		return Default()
	}
	return c
}

func (d *Description) validate() error {
	switch {
	case d.Scale <= 0:
		return errNonPositiveScale.withDetails("%d", d.Scale)
	case d.MaxWeightedTweetLength <= 0:
		return errNonPositiveMaxLength.withDetails("%d", d.MaxWeightedTweetLength)
	case d.DefaultWeight < 0:
		return errNegativeWeight.withDetails("defaultWeight=%d", d.DefaultWeight)
	case d.TransformedURLLength < 0:
		return errNegativeURLLength.withDetails("%d", d.TransformedURLLength)
	}
	for i, r := range d.Ranges {
		if r.Start > r.End {
			return errInvertedRange.withDetails("[%d, %d]", r.Start, r.End)
		}
		if r.Weight < 0 {
			return errNegativeWeight.withDetails("range %d weight=%d", i, r.Weight)
		}
		if i > 0 && r.Start <= d.Ranges[i-1].End {
			return errUnorderedRanges.withDetails("[%d, %d] after [%d, %d]",
				r.Start, r.End, d.Ranges[i-1].Start, d.Ranges[i-1].End)
		}
	}
	return nil
}
