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

package extract

// TokenKind classifies a Token produced by Scan.
type TokenKind int

const (
	// EntityToken carries an extracted Entity.
	EntityToken TokenKind = iota
	// EmojiToken covers one emoji sequence.
	EmojiToken
	// InvalidCharToken covers one codepoint that makes a text invalid.
	InvalidCharToken
)

// Token is a span found by Scan. Offsets are half-open codepoint offsets.
type Token struct {
	Kind  TokenKind
	Start int
	End   int
	// Entity is set for EntityToken.
	Entity Entity
	// WithoutProtocol marks URL entities written without a scheme.
	WithoutProtocol bool
}

// ScanOptions selects optional entities reported by Scan. The grammar
// consumes their text whether or not they are reported.
type ScanOptions struct {
	// URLWithoutProtocol reports URLs written without a scheme.
	URLWithoutProtocol bool
	// FederatedMentions reports @user@domain mentions.
	FederatedMentions bool
}

// Scan walks text once and returns, in order, the entities, emoji sequences
// and invalid codepoints it contains. Tokens never overlap.
func Scan(text string, opts ScanOptions) []Token {
	s := &scanner{in: newInput(text), opts: opts}
	for i := 0; i < s.in.len(); {
		i = s.step(i)
	}
	return s.tokens
}

type scanner struct {
	in     *input
	opts   ScanOptions
	tokens []Token
}

func (s *scanner) emit(t Token) {
	s.tokens = append(s.tokens, t)
}

func (s *scanner) emitEntity(typ Type, start, end int, value string) {
	s.emit(Token{
		Kind:   EntityToken,
		Start:  start,
		End:    end,
		Entity: Entity{Type: typ, Start: start, End: end, Value: value},
	})
}

// step matches whatever starts at i and returns the offset to continue from.
func (s *scanner) step(i int) int {
	in := s.in
	r, prev := in.at(i), in.at(i-1)

	switch {
	case isAtSign(r):
		if end, ok := s.mention(i); ok {
			return end
		}
		// The domain of an email address is not a URL of its own.
		if m, ok := matchBareURL(in, i+1); ok {
			return m.end
		}
		return i + 1
	case r == '$':
		if IsSpace(prev) || prev == eof {
			if end := matchCashtag(in, i); end >= 0 {
				s.emitEntity(Cashtag, i, end, in.slice(i+1, end))
				return end
			}
		}
		if m, ok := matchProtocolURL(in, i+1); ok {
			return m.end
		}
		if m, ok := matchBareURL(in, i+1); ok {
			return m.end
		}
		return i + 1
	case isHashSign(r):
		if isHashtagPredecessor(prev) {
			if end := matchHashtag(in, i); end >= 0 {
				s.emitEntity(Hashtag, i, end, in.slice(i+1, end))
				return end
			}
		}
	}

	if (r == 'h' || r == 'H') && isURLPredecessor(prev) {
		if m, ok := matchProtocolURL(in, i); ok {
			s.url(m)
			return m.end
		}
	}
	if s.bareURLAllowed(i) {
		if m, ok := matchBareURL(in, i); ok && !isAtSign(in.at(m.end)) {
			s.url(m)
			return m.end
		}
	}

	if isInvalidChar(r) {
		s.emit(Token{Kind: InvalidCharToken, Start: i, End: i + 1})
		return i + 1
	}
	if end := matchEmoji(in, i); end > i {
		s.emit(Token{Kind: EmojiToken, Start: i, End: end})
		return end
	}
	return i + 1
}

// mention emits the mention, list or federated mention at i, if any.
func (s *scanner) mention(i int) (int, bool) {
	in := s.in
	if !isMentionPredecessor(in.at(i-1)) && !hasRetweetPrefix(in, i) {
		return 0, false
	}
	m, ok := matchMention(in, i)
	if !ok {
		return 0, false
	}
	switch {
	case m.federated:
		if s.opts.FederatedMentions {
			s.emitEntity(FederatedMention, i, m.end, in.slice(i, m.end))
		}
	case m.slugStart >= 0:
		s.emitEntity(Mention, i, m.end, in.slice(i+1, m.slugStart))
		s.tokens[len(s.tokens)-1].Entity.ListSlug = in.slice(m.slugStart, m.end)
	default:
		s.emitEntity(Mention, i, m.end, in.slice(i+1, m.end))
	}
	return m.end, true
}

// url validates a URL match and emits what survives. The whole match is
// consumed by the caller either way.
func (s *scanner) url(m urlMatch) {
	if m.kind == bareURL && !s.opts.URLWithoutProtocol {
		return
	}
	end, ok := validateURL(s.in, m)
	if !ok || end <= m.start {
		return
	}
	s.emitEntity(URL, m.start, end, s.in.slice(m.start, end))
	s.tokens[len(s.tokens)-1].WithoutProtocol = m.kind == bareURL
}

// bareURLAllowed reports whether a URL without protocol may start at i: at
// the start of a word, not right after an entity symbol, and not inside the
// remains of a URL whose scheme failed to parse.
func (s *scanner) bareURLAllowed(i int) bool {
	in := s.in
	r, prev := in.at(i), in.at(i-1)
	if !isBareDomainChar(r) || isBareDomainChar(prev) || !isURLPredecessor(prev) {
		return false
	}
	for j := i - 1; j >= 2; j-- {
		c := in.at(j)
		if IsSpace(c) || isURLDelimiter(c) {
			break
		}
		if c == '/' && in.at(j-1) == '/' && in.at(j-2) == ':' {
			return false
		}
	}
	return true
}
