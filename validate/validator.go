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

package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/jplu/twittertext/config"
	"github.com/jplu/twittertext/extract"
	"golang.org/x/text/unicode/norm"
)

const (
	// MaxTweetLength is the maximum weighted length of a tweet.
	MaxTweetLength = 280
	// DefaultShortURLLength is the length of a shortened link.
	DefaultShortURLLength = 23
)

// Validator checks tweets and the standalone parts of a tweet. A Validator
// must not be reconfigured while another goroutine uses it.
type Validator struct {
	cfg                 *config.Configuration
	extractor           *extract.Extractor
	shortURLLength      int
	shortURLLengthHTTPS int
}

// New returns a Validator that measures tweets with config.V1().
func New() *Validator {
	return NewWithConfig(config.V1())
}

// NewWithConfig returns a Validator that measures tweets with cfg. A nil cfg
// means config.Default().
func NewWithConfig(cfg *config.Configuration) *Validator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Validator{
		cfg:                 cfg,
		extractor:           extract.New(),
		shortURLLength:      DefaultShortURLLength,
		shortURLLengthHTTPS: DefaultShortURLLength,
	}
}

// Config returns the configuration tweets are measured with.
func (v *Validator) Config() *config.Configuration {
	return v.cfg
}

// IsValidTweet reports whether text is a non-empty tweet within the length
// limit and without invalid characters. URLs are charged like plain text.
func (v *Validator) IsValidTweet(text string) bool {
	return Parse(text, v.cfg, false).IsValid
}

// IsValidUsername reports whether text is exactly one "@username".
func (v *Validator) IsValidUsername(text string) bool {
	text = norm.NFC.String(text)
	if !hasSymbolPrefix(text, "@", "＠") {
		return false
	}
	names := v.extractor.ExtractMentionedScreennames(text)
	return len(names) == 1 && utf8.RuneCountInString(names[0]) == utf8.RuneCountInString(text)-1
}

// IsValidList reports whether text is exactly one "@username/list".
func (v *Validator) IsValidList(text string) bool {
	text = norm.NFC.String(text)
	if !hasSymbolPrefix(text, "@", "＠") {
		return false
	}
	lists := v.extractor.ExtractMentionsOrListsWithIndices(text)
	if len(lists) != 1 {
		return false
	}
	return lists[0].ListSlug != "" && lists[0].Start == 0 && lists[0].End == utf8.RuneCountInString(text)
}

// IsValidHashtag reports whether text is exactly one "#hashtag".
func (v *Validator) IsValidHashtag(text string) bool {
	text = norm.NFC.String(text)
	if !hasSymbolPrefix(text, "#", "＃") {
		return false
	}
	tags := v.extractor.ExtractHashtags(text)
	return len(tags) == 1 && utf8.RuneCountInString(tags[0]) == utf8.RuneCountInString(text)-1
}

// IsValidURL reports whether the whole text is a URL with a protocol. The
// top-level domain is not checked.
func (v *Validator) IsValidURL(text string) bool {
	return extract.MatchURL(norm.NFC.String(text))
}

// IsValidURLWithoutProtocol reports whether the whole text is a URL written
// without protocol. The top-level domain is not checked.
func (v *Validator) IsValidURLWithoutProtocol(text string) bool {
	return extract.MatchURLWithoutProtocol(norm.NFC.String(text))
}

// MaxTweetLength returns MaxTweetLength.
func (v *Validator) MaxTweetLength() int {
	return MaxTweetLength
}

// ShortURLLength returns the length of a shortened http link.
func (v *Validator) ShortURLLength() int {
	return v.shortURLLength
}

// SetShortURLLength sets the length of a shortened http link.
func (v *Validator) SetShortURLLength(n int) {
	v.shortURLLength = n
}

// ShortURLLengthHTTPS returns the length of a shortened https link.
func (v *Validator) ShortURLLengthHTTPS() int {
	return v.shortURLLengthHTTPS
}

// SetShortURLLengthHTTPS sets the length of a shortened https link.
func (v *Validator) SetShortURLLengthHTTPS(n int) {
	v.shortURLLengthHTTPS = n
}

func hasSymbolPrefix(text string, symbols ...string) bool {
	for _, s := range symbols {
		if strings.HasPrefix(text, s) {
			return true
		}
	}
	return false
}
