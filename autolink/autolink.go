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
Package autolink turns the entities of a tweet into HTML links.

An Autolinker links hashtags and cashtags to a search page, usernames and
lists to a profile page and URLs to themselves. Every piece of generated
markup is escaped; the text around the entities is copied as is, except by
Autolink which escapes angle brackets first.

# Key Features

  - CSS classes, URL bases, link target and rel="nofollow" set per instance.
  - Optional tags around the symbol and the text of hashtags, cashtags and
    mentions.
  - Display URLs with ellipses rendered so that copying the link copies the
    expanded URL.
  - One Modifier at a time to add an attribute, replace the class or
    rewrite the text of the links.
  - A HitHighlighter that wraps search hits in plain or autolinked text.

# Usage

	a := autolink.New(true)
	fmt.Println(a.Autolink("This has a #hashtag"))
*/
package autolink

import (
	"strings"

	"github.com/jplu/twittertext/extract"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultListClass is the CSS class of list links.
	DefaultListClass = "tweet-url list-slug"
	// DefaultUsernameClass is the CSS class of username links.
	DefaultUsernameClass = "tweet-url username"
	// DefaultHashtagClass is the CSS class of hashtag links.
	DefaultHashtagClass = "tweet-url hashtag"
	// DefaultCashtagClass is the CSS class of cashtag links.
	DefaultCashtagClass = "tweet-url cashtag"
	// DefaultUsernameURLBase is prefixed to the username of a link.
	DefaultUsernameURLBase = "https://twitter.com/"
	// DefaultListURLBase is prefixed to the "username/slug" of a list link.
	DefaultListURLBase = "https://twitter.com/"
	// DefaultHashtagURLBase is prefixed to the text of a hashtag link.
	DefaultHashtagURLBase = "https://twitter.com/search?q=%23"
	// DefaultCashtagURLBase is prefixed to the symbol of a cashtag link.
	DefaultCashtagURLBase = "https://twitter.com/search?q=%24"
	// DefaultInvisibleTagAttrs hides the parts of an expanded URL that are
	// not displayed.
	DefaultInvisibleTagAttrs = "style='position:absolute;left:-9999px;'"
)

const ellipsis = "…"

// Autolinker renders entities as links. Its fields may be changed between
// calls but an Autolinker must not be reconfigured while another goroutine
// uses it.
type Autolinker struct {
	// NoFollow adds rel="nofollow" to every link.
	NoFollow bool
	// URLClass and URLTarget are added to URL links when not empty.
	URLClass  string
	URLTarget string
	// SymbolTag and TextWithSymbolTag, when not empty, name the tags
	// wrapping the symbol and the text of hashtag, cashtag and mention links.
	SymbolTag         string
	TextWithSymbolTag string

	ListClass     string
	UsernameClass string
	HashtagClass  string
	CashtagClass  string

	UsernameURLBase string
	ListURLBase     string
	HashtagURLBase  string
	CashtagURLBase  string

	InvisibleTagAttrs string
	// UsernameIncludeSymbol moves the at sign of mentions inside the link.
	UsernameIncludeSymbol bool

	extractor *extract.Extractor
	modifier  Modifier
}

// New returns an Autolinker with the default classes and URL bases. URLs
// without protocol are not linked.
func New(noFollow bool) *Autolinker {
	e := extract.New()
	e.SetExtractURLWithoutProtocol(false)
	return &Autolinker{
		NoFollow:          noFollow,
		ListClass:         DefaultListClass,
		UsernameClass:     DefaultUsernameClass,
		HashtagClass:      DefaultHashtagClass,
		CashtagClass:      DefaultCashtagClass,
		UsernameURLBase:   DefaultUsernameURLBase,
		ListURLBase:       DefaultListURLBase,
		HashtagURLBase:    DefaultHashtagURLBase,
		CashtagURLBase:    DefaultCashtagURLBase,
		InvisibleTagAttrs: DefaultInvisibleTagAttrs,
		extractor:         e,
	}
}

// SetModifier replaces the active modifier. NoModifier() clears it.
func (a *Autolinker) SetModifier(m Modifier) {
	a.modifier = m
}

// Modifier returns the active modifier.
func (a *Autolinker) Modifier() Modifier {
	return a.modifier
}

// Autolink escapes the angle brackets of text and links all its entities
// except federated mentions.
func (a *Autolinker) Autolink(text string) string {
	text = EscapeBrackets(text)
	return a.AutolinkEntities(text, a.extractor.ExtractEntitiesWithIndices(text, false))
}

// AutolinkUsernamesAndLists links the @username and @username/list
// references of text.
func (a *Autolinker) AutolinkUsernamesAndLists(text string) string {
	return a.AutolinkEntities(text, a.extractor.ExtractMentionsOrListsWithIndices(text))
}

// AutolinkHashtags links the hashtags of text.
func (a *Autolinker) AutolinkHashtags(text string) string {
	return a.AutolinkEntities(text, a.extractor.ExtractHashtagsWithIndices(text))
}

// AutolinkURLs links the URLs of text that have a protocol.
func (a *Autolinker) AutolinkURLs(text string) string {
	return a.AutolinkEntities(text, a.extractor.ExtractURLsWithIndices(text))
}

// AutolinkCashtags links the cashtags of text.
func (a *Autolinker) AutolinkCashtags(text string) string {
	return a.AutolinkEntities(text, a.extractor.ExtractCashtagsWithIndices(text))
}

// AutolinkEntities links the given entities of text. Offsets are codepoints.
// Entities must be ordered and must not overlap; an entity that breaks the
// order or falls outside the text is logged and left as text. Federated
// mentions are left as text.
func (a *Autolinker) AutolinkEntities(text string, entities []extract.Entity) string {
	if err := extract.CheckSequence(entities); err != nil {
		log.Error().Err(err).Int("entities", len(entities)).Msg("autolinking an invalid entity sequence")
	}

	runes := []rune(text)
	rtl := containsRTL(text)
	var b strings.Builder
	b.Grow(len(text) * 2)
	offset := 0
	for _, ent := range entities {
		if ent.Start < offset || ent.Start >= ent.End || ent.End > len(runes) {
			continue
		}
		b.WriteString(string(runes[offset:ent.Start]))
		switch ent.Type {
		case extract.URL:
			a.linkToURL(&b, ent)
		case extract.Hashtag:
			a.linkToHashtag(&b, ent, runes[ent.Start], rtl)
		case extract.Mention:
			a.linkToMentionOrList(&b, ent, runes[ent.Start])
		case extract.Cashtag:
			a.linkToCashtag(&b, ent)
		default:
			b.WriteString(string(runes[ent.Start:ent.End]))
		}
		offset = ent.End
	}
	b.WriteString(string(runes[offset:]))
	return b.String()
}

// linkToText writes an anchor around html, the escaped form of plain.
func (a *Autolinker) linkToText(b *strings.Builder, ent extract.Entity, attrs []attribute, html, plain string) {
	if a.NoFollow {
		attrs = append(attrs, attribute{"rel", "nofollow"})
	}
	attrs = a.modifier.attributes(ent, attrs)
	if text, ok := a.modifier.text(ent, plain); ok {
		html = text
	}

	b.WriteString("<a")
	for _, attr := range attrs {
		b.WriteByte(' ')
		b.WriteString(EscapeHTML(attr.key))
		b.WriteString(`="`)
		b.WriteString(EscapeHTML(attr.value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(html)
	b.WriteString("</a>")
}

func wrap(tag, s string) string {
	if tag == "" {
		return s
	}
	return "<" + tag + ">" + s + "</" + tag + ">"
}

func (a *Autolinker) linkToTextWithSymbol(b *strings.Builder, ent extract.Entity, symbol, text string, attrs []attribute) {
	taggedSymbol := wrap(a.SymbolTag, EscapeHTML(symbol))
	taggedText := wrap(a.TextWithSymbolTag, EscapeHTML(text))

	if a.UsernameIncludeSymbol || (symbol != "@" && symbol != "＠") {
		a.linkToText(b, ent, attrs, taggedSymbol+taggedText, symbol+text)
		return
	}
	b.WriteString(taggedSymbol)
	a.linkToText(b, ent, attrs, taggedText, text)
}

// linkToHashtag links a hashtag. rtl tells whether the whole text holds
// Hebrew or Arabic script.
func (a *Autolinker) linkToHashtag(b *strings.Builder, ent extract.Entity, symbol rune, rtl bool) {
	class := a.HashtagClass
	if rtl {
		class += " rtl"
	}
	attrs := []attribute{
		{"href", a.HashtagURLBase + ent.Value},
		{"title", "#" + ent.Value},
		{"class", class},
	}
	a.linkToTextWithSymbol(b, ent, string(symbol), ent.Value, attrs)
}

func (a *Autolinker) linkToCashtag(b *strings.Builder, ent extract.Entity) {
	attrs := []attribute{
		{"href", a.CashtagURLBase + ent.Value},
		{"title", "$" + ent.Value},
		{"class", a.CashtagClass},
	}
	a.linkToTextWithSymbol(b, ent, "$", ent.Value, attrs)
}

func (a *Autolinker) linkToMentionOrList(b *strings.Builder, ent extract.Entity, symbol rune) {
	name := ent.Value
	var attrs []attribute
	if ent.ListSlug != "" {
		name += ent.ListSlug
		attrs = []attribute{{"class", a.ListClass}, {"href", a.ListURLBase + name}}
	} else {
		attrs = []attribute{{"class", a.UsernameClass}, {"href", a.UsernameURLBase + name}}
	}
	a.linkToTextWithSymbol(b, ent, string(symbol), name, attrs)
}

func (a *Autolinker) linkToURL(b *strings.Builder, ent extract.Entity) {
	html, plain := EscapeHTML(ent.Value), ent.Value
	if ent.DisplayURL != "" && ent.ExpandedURL != "" {
		html, plain = a.displayURL(ent), ent.DisplayURL
	}

	attrs := []attribute{{"href", ent.Value}}
	if a.URLClass != "" {
		attrs = append(attrs, attribute{"class", a.URLClass})
	}
	if a.URLTarget != "" {
		attrs = append(attrs, attribute{"target", a.URLTarget})
	}
	a.linkToText(b, ent, attrs, html, plain)
}

// displayURL renders the expanded URL of ent so that only the display part
// is visible, with the ellipses of the display URL shown but not copied.
// When the display URL is not part of the expanded URL, the display URL is
// rendered alone.
func (a *Autolinker) displayURL(ent extract.Entity) string {
	shown := strings.ReplaceAll(ent.DisplayURL, ellipsis, "")
	i := strings.Index(ent.ExpandedURL, shown)
	if i < 0 {
		return EscapeHTML(ent.DisplayURL)
	}
	before, after := ent.ExpandedURL[:i], ent.ExpandedURL[i+len(shown):]

	var leading, trailing string
	if strings.HasPrefix(ent.DisplayURL, ellipsis) {
		leading = ellipsis
	}
	if strings.HasSuffix(ent.DisplayURL, ellipsis) {
		trailing = ellipsis
	}
	invisible := "<span " + a.InvisibleTagAttrs + ">"

	var sb strings.Builder
	sb.WriteString("<span class='tco-ellipsis'>")
	sb.WriteString(leading)
	sb.WriteString(invisible)
	sb.WriteString("&nbsp;</span></span>")
	sb.WriteString(invisible)
	sb.WriteString(EscapeHTML(before))
	sb.WriteString("</span><span class='js-display-url'>")
	sb.WriteString(EscapeHTML(shown))
	sb.WriteString("</span>")
	sb.WriteString(invisible)
	sb.WriteString(EscapeHTML(after))
	sb.WriteString("</span><span class='tco-ellipsis'>")
	sb.WriteString(invisible)
	sb.WriteString("&nbsp;</span>")
	sb.WriteString(trailing)
	sb.WriteString("</span>")
	return sb.String()
}
