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

package autolink_test

import (
	"testing"

	"github.com/jplu/twittertext/autolink"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	t.Parallel()
	const s = `foo <bar> baz & 'hmm' or "hmm"`
	require.Equal(t, "foo &lt;bar&gt; baz &amp; &#39;hmm&#39; or &quot;hmm&quot;", autolink.EscapeHTML(s))
	require.Equal(t, `foo &lt;bar&gt; baz & 'hmm' or "hmm"`, autolink.EscapeBrackets(s))

	once := autolink.EscapeBrackets(s)
	require.Equal(t, once, autolink.EscapeBrackets(once))
	require.Empty(t, autolink.EscapeHTML(""))
}
