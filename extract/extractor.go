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
Package extract finds URLs, hashtags, cashtags, mentions, list references
and federated mentions in short social texts.

The grammar is applied in one left-to-right pass over the codepoints of the
text. At every offset the first matching construct wins and consumes its
text, which makes the extracted entities ordered and non-overlapping by
construction.

# Key Features

  - URLs with or without protocol, t.co short links, IPv4 and IPv6 hosts,
    balanced parentheses in paths and trailing punctuation trimming.
  - Top-level domains checked against the ICANN section of the Public
    Suffix List, and hosts checked with a UTS 46 lookup profile.
  - Unicode hashtags, $cashtags, @mentions, @user/list references, legacy
    "RT@user" retweets and @user@domain federated mentions.
  - Codepoint offsets, with conversion to and from UTF-16 code units.

# Usage

	e := extract.New()
	for _, ent := range e.ExtractEntitiesWithIndices("Hi @jack, see https://example.com #go", false) {
		fmt.Println(ent.Type, ent.Start, ent.End, ent.Value)
	}
*/
package extract

// Extractor extracts entities from texts. The zero value does not extract
// URLs without protocol; use New for the default behavior. An Extractor must
// not be reconfigured while another goroutine uses it.
type Extractor struct {
	extractURLWithoutProtocol bool
}

// New returns an Extractor that also extracts URLs without protocol.
func New() *Extractor {
	return &Extractor{extractURLWithoutProtocol: true}
}

// SetExtractURLWithoutProtocol enables or disables URLs written without
// "http://" or "https://".
func (e *Extractor) SetExtractURLWithoutProtocol(enabled bool) {
	e.extractURLWithoutProtocol = enabled
}

// ExtractURLWithoutProtocol reports whether URLs without protocol are extracted.
func (e *Extractor) ExtractURLWithoutProtocol() bool {
	return e.extractURLWithoutProtocol
}

func (e *Extractor) scan(text string, federated bool) []Token {
	if text == "" {
		return nil
	}
	return Scan(text, ScanOptions{
		URLWithoutProtocol: e.extractURLWithoutProtocol,
		FederatedMentions:  federated,
	})
}

// ExtractEntitiesWithIndices returns every URL, hashtag, cashtag, mention
// and list reference of text in order. Federated mentions are included only
// when includeFederated is set.
func (e *Extractor) ExtractEntitiesWithIndices(text string, includeFederated bool) []Entity {
	return resolve(e.scan(text, includeFederated), func(Token) bool { return true })
}

// ExtractURLsWithIndices returns the URLs of text.
func (e *Extractor) ExtractURLsWithIndices(text string) []Entity {
	return resolve(e.scan(text, false), isType(URL))
}

// ExtractHashtagsWithIndices returns the hashtags of text. Values have no "#".
func (e *Extractor) ExtractHashtagsWithIndices(text string) []Entity {
	return resolve(e.scan(text, false), isType(Hashtag))
}

// ExtractCashtagsWithIndices returns the cashtags of text. Values have no "$".
func (e *Extractor) ExtractCashtagsWithIndices(text string) []Entity {
	return resolve(e.scan(text, false), isType(Cashtag))
}

// ExtractMentionedScreennamesWithIndices returns the mentions of text that
// are not list references. Values have no "@".
func (e *Extractor) ExtractMentionedScreennamesWithIndices(text string) []Entity {
	return resolve(e.scan(text, false), isUsername)
}

// ExtractMentionsOrListsWithIndices returns mentions and list references.
func (e *Extractor) ExtractMentionsOrListsWithIndices(text string) []Entity {
	return resolve(e.scan(text, false), isType(Mention))
}

// ExtractFederatedMentionsWithIndices returns mentions and federated
// mentions. A federated mention keeps its full "@user@domain" value.
func (e *Extractor) ExtractFederatedMentionsWithIndices(text string) []Entity {
	return resolve(e.scan(text, true), func(t Token) bool {
		return isUsername(t) || t.Entity.Type == FederatedMention
	})
}

// ExtractURLs returns the URLs of text as written.
func (e *Extractor) ExtractURLs(text string) []string {
	return values(e.ExtractURLsWithIndices(text))
}

// ExtractHashtags returns the hashtags of text without their "#".
func (e *Extractor) ExtractHashtags(text string) []string {
	return values(e.ExtractHashtagsWithIndices(text))
}

// ExtractCashtags returns the cashtags of text without their "$".
func (e *Extractor) ExtractCashtags(text string) []string {
	return values(e.ExtractCashtagsWithIndices(text))
}

// ExtractMentionedScreennames returns the usernames mentioned in text,
// without "@". List references are left out.
func (e *Extractor) ExtractMentionedScreennames(text string) []string {
	return values(e.ExtractMentionedScreennamesWithIndices(text))
}

// ExtractFederatedMentions returns the usernames and full "@user@domain"
// federated mentions of text.
func (e *Extractor) ExtractFederatedMentions(text string) []string {
	return values(e.ExtractFederatedMentionsWithIndices(text))
}

// ExtractReplyScreenname returns the mention a text starts with, after
// optional whitespace, or nil. For a list reference only the username part
// is returned.
func (e *Extractor) ExtractReplyScreenname(text string) *Entity {
	in := newInput(text)
	start := in.indexFunc(0, func(r rune) bool { return !IsSpace(r) })
	if !isAtSign(in.at(start)) {
		return nil
	}
	m, ok := matchMention(in, start)
	if !ok || m.federated {
		return nil
	}
	end := m.end
	if m.slugStart >= 0 {
		end = m.slugStart
	}
	return &Entity{Type: Mention, Start: start, End: end, Value: in.slice(start+1, end)}
}
