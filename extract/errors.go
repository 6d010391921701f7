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

import (
	"errors"
	"fmt"
)

var (
	// errEmptyRange is reported for an entity whose start is not before its end.
	errEmptyRange = &kindError{message: "Entity range is empty or inverted"}
	// errNegativeOffset is reported for an entity starting before the text.
	errNegativeOffset = &kindError{message: "Entity range starts at a negative offset"}
	// errOverlap is reported when an entity starts before the previous one ends.
	errOverlap = &kindError{message: "Entity overlaps the previous entity"}
)

// SequenceError reports a resolved entity sequence that breaks the ordering
// contract: every entity has start < end and starts at or after the end of
// the entity before it.
type SequenceError struct {
	// Index is the position of the offending entity in the sequence.
	Index int
	// Message is a human-readable description of the violation.
	Message string
	// Err is the underlying sentinel, usable with errors.Is.
	Err error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("invalid entity sequence at index %d: %s", e.Index, e.Message)
}

func (e *SequenceError) Unwrap() error {
	return e.Err
}

func newSequenceError(index int, err error) *SequenceError {
	if err == nil {
		return nil
	}
	return &SequenceError{Index: index, Message: err.Error(), Err: err}
}

// kindError carries the kind of violation and the offending entity.
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

func (e *kindError) withEntity(ent Entity) *kindError {
	return &kindError{message: e.message, details: fmt.Sprintf("%s [%d,%d)", ent.Type, ent.Start, ent.End)}
}

// Is lets errors.Is match a detailed copy against its sentinel.
func (e *kindError) Is(target error) bool {
	var k *kindError
	if !errors.As(target, &k) {
		return false
	}
	return k.message == e.message
}

// CheckSequence verifies that entities are strictly ordered by start offset,
// that no two of them overlap and that each has a non-empty, non-negative
// range. It returns a *SequenceError describing the first violation.
func CheckSequence(entities []Entity) error {
	prevEnd := 0
	for i, ent := range entities {
		switch {
		case ent.Start < 0:
			return newSequenceError(i, errNegativeOffset.withEntity(ent))
		case ent.Start >= ent.End:
			return newSequenceError(i, errEmptyRange.withEntity(ent))
		case ent.Start < prevEnd:
			return newSequenceError(i, errOverlap.withEntity(ent))
		}
		prevEnd = ent.End
	}
	return nil
}
