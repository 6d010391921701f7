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

import "strings"

var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"'", "&#39;",
		`"`, "&quot;",
	)
	bracketEscaper = strings.NewReplacer(
		"<", "&lt;",
		">", "&gt;",
	)
)

// EscapeHTML escapes the five characters that are special in HTML text and
// attribute values. Single quotes become "&#39;".
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeBrackets escapes "<" and ">" only, leaving existing entities intact.
func EscapeBrackets(s string) string {
	return bracketEscaper.Replace(s)
}
