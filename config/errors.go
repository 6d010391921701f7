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

package config

import (
	"errors"
	"fmt"
)

var (
	// errNonPositiveScale is returned when a description sets a scale of zero
	// or less. Every weight is divided by the scale, so it must be positive.
	errNonPositiveScale = &kindError{message: "Scale must be positive"}
	// errNonPositiveMaxLength is returned when the maximum weighted length is
	// zero or less, which would make the permillage undefined.
	errNonPositiveMaxLength = &kindError{message: "Maximum weighted tweet length must be positive"}
	// errNegativeWeight is returned for a negative default or range weight.
	errNegativeWeight = &kindError{message: "Weights must not be negative"}
	// errNegativeURLLength is returned for a negative transformed URL length.
	errNegativeURLLength = &kindError{message: "Transformed URL length must not be negative"}
	// errInvertedRange is returned for a weighted range whose start is after its end.
	errInvertedRange = &kindError{message: "Weighted range start is after its end"}
	// errUnorderedRanges is returned when ranges overlap or are not ascending.
	// The weight lookup is a binary search and relies on this ordering.
	errUnorderedRanges = &kindError{message: "Weighted ranges must be ascending and disjoint"}
)

// ErrEmptyDescription is returned by Parse and ParseYAML when the input holds
// no bytes at all.
var ErrEmptyDescription = errors.New("empty configuration description")

// ParseError is the error type returned when a configuration description
// cannot be turned into a Configuration.
type ParseError struct {
	Message string
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("configuration parse error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError wraps err in a ParseError. It returns nil if err is nil.
func newParseError(err error) *ParseError {
	if err == nil {
		return nil
	}
	return &ParseError{Message: err.Error(), Err: err}
}

// kindError carries the detail of a rejected description field.
type kindError struct {
	message string
	details string
}

func (e *kindError) Error() string {
	if e.details != "" {
		return fmt.Sprintf("%s '%s'", e.message, e.details)
	}
	return e.message
}

// withDetails returns a copy of e annotated with details.
func (e *kindError) withDetails(format string, args ...any) *kindError {
	return &kindError{message: e.message, details: fmt.Sprintf(format, args...)}
}

// Is lets errors.Is match a detailed copy against its sentinel.
func (e *kindError) Is(target error) bool {
	t, ok := target.(*kindError)
	return ok && t.message == e.message
}
