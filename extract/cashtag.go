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

const (
	maxCashtagLength = 6
	maxCashtagSuffix = 2
)

// matchCashtag matches "$" followed by one to six ASCII letters and an
// optional "." or "_" share class suffix of one or two letters. It returns
// the end offset or -1.
func matchCashtag(in *input, i int) int {
	j := lettersUpTo(in, i+1, maxCashtagLength)
	if j == i+1 {
		return -1
	}
	if r := in.at(j); (r == '.' || r == '_') && isASCIILetter(in.at(j+1)) {
		j = lettersUpTo(in, j+1, maxCashtagSuffix)
	}
	if isASCIIAlnum(in.at(j)) {
		return -1
	}
	return j
}

func lettersUpTo(in *input, i, n int) int {
	j := i
	for j < i+n && isASCIILetter(in.at(j)) {
		j++
	}
	return j
}
