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

package autolink

import (
	"slices"

	"github.com/jplu/twittertext/extract"
)

// ModifierKind identifies the variant held by a Modifier.
type ModifierKind int

const (
	// ModifierNone leaves links unchanged.
	ModifierNone ModifierKind = iota
	// ModifierAddAttribute appends one attribute to links of some entity types.
	ModifierAddAttribute
	// ModifierReplaceClass overrides the class attribute of every link.
	ModifierReplaceClass
	// ModifierTextTransform rewrites the text of every link.
	ModifierTextTransform
)

// TextFunc returns the replacement text of the link for ent. text is the
// plain text the link would display. The result is HTML-escaped before use.
type TextFunc func(ent extract.Entity, text string) string

// Modifier customizes the links produced by an Autolinker. The zero value is
// NoModifier.
type Modifier struct {
	kind      ModifierKind
	types     []extract.Type
	key       string
	value     string
	transform TextFunc
}

// NoModifier returns the modifier that leaves links unchanged.
func NoModifier() Modifier {
	return Modifier{}
}

// AddAttribute returns a modifier appending key="value" to the links of the
// given entity types.
func AddAttribute(types []extract.Type, key, value string) Modifier {
	return Modifier{kind: ModifierAddAttribute, types: slices.Clone(types), key: key, value: value}
}

// ReplaceClass returns a modifier setting the class attribute of every link
// that has one to class.
func ReplaceClass(class string) Modifier {
	return Modifier{kind: ModifierReplaceClass, value: class}
}

// TextTransform returns a modifier rewriting the text of every link with fn.
// A nil fn is NoModifier.
func TextTransform(fn TextFunc) Modifier {
	if fn == nil {
		return NoModifier()
	}
	return Modifier{kind: ModifierTextTransform, transform: fn}
}

// Kind returns the variant of the modifier.
func (m Modifier) Kind() ModifierKind {
	return m.kind
}

type attribute struct {
	key   string
	value string
}

func (m Modifier) attributes(ent extract.Entity, attrs []attribute) []attribute {
	switch m.kind {
	case ModifierAddAttribute:
		if slices.Contains(m.types, ent.Type) {
			attrs = append(attrs, attribute{m.key, m.value})
		}
	case ModifierReplaceClass:
		for i := range attrs {
			if attrs[i].key == "class" {
				attrs[i].value = m.value
			}
		}
	}
	return attrs
}

// text reports the transformed text, escaped, and whether the modifier
// rewrote it.
func (m Modifier) text(ent extract.Entity, plain string) (string, bool) {
	if m.kind != ModifierTextTransform {
		return "", false
	}
	return EscapeHTML(m.transform(ent, plain)), true
}
