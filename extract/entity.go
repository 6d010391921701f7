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

import "fmt"

// Type identifies the kind of an Entity.
type Type int

const (
	// URL is a link, with or without protocol.
	URL Type = iota
	// Hashtag is a #tag.
	Hashtag
	// Mention is an @username, or an @username/list reference when ListSlug is set.
	Mention
	// Cashtag is a $SYMBOL.
	Cashtag
	// FederatedMention is an @user@domain reference.
	FederatedMention
)

var typeNames = [...]string{
	URL:              "url",
	Hashtag:          "hashtag",
	Mention:          "mention",
	Cashtag:          "cashtag",
	FederatedMention: "federated_mention",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// MarshalText encodes the type by name.
func (t Type) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(typeNames) {
		return nil, fmt.Errorf("unknown entity type %d", int(t))
	}
	return []byte(typeNames[t]), nil
}

// UnmarshalText decodes a type name produced by MarshalText.
func (t *Type) UnmarshalText(text []byte) error {
	for i, name := range typeNames {
		if name == string(text) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unknown entity type %q", text)
}

// Entity is a span of text recognized by the grammar. Start and End are
// half-open codepoint offsets unless the entity went through ToUnitIndices.
type Entity struct {
	Type  Type   `json:"type"            yaml:"type"`
	Start int    `json:"start"           yaml:"start"`
	End   int    `json:"end"             yaml:"end"`
	Value string `json:"value"           yaml:"value"`
	// ListSlug holds "/slug" for list references.
	ListSlug string `json:"listSlug,omitempty"    yaml:"listSlug,omitempty"`
	// DisplayURL and ExpandedURL are not produced by extraction. Callers set
	// them on URL entities that stand for a shortened link.
	DisplayURL  string `json:"displayUrl,omitempty"  yaml:"displayUrl,omitempty"`
	ExpandedURL string `json:"expandedUrl,omitempty" yaml:"expandedUrl,omitempty"`
}

// Len returns the length of the entity range.
func (e Entity) Len() int {
	return e.End - e.Start
}

func (e Entity) String() string {
	return fmt.Sprintf("%s[%d,%d)%q", e.Type, e.Start, e.End, e.Value)
}
