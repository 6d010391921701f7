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

// resolve collects the entities of tokens accepted by keep. Scan already
// settles precedence at each offset (a federated mention over a mention, a
// list over a username, a URL over the hashtags and mentions inside it), so
// the result is ordered and non-overlapping.
func resolve(tokens []Token, keep func(Token) bool) []Entity {
	entities := make([]Entity, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == EntityToken && keep(t) {
			entities = append(entities, t.Entity)
		}
	}
	return entities
}

func isType(types ...Type) func(Token) bool {
	return func(t Token) bool {
		for _, typ := range types {
			if t.Entity.Type == typ {
				return true
			}
		}
		return false
	}
}

func isUsername(t Token) bool {
	return t.Entity.Type == Mention && t.Entity.ListSlug == ""
}

func values(entities []Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.Value
	}
	return out
}
