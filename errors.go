/*
 * HList - A statically-typed heterogeneous list
 *
 * Copyright Sgeo
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package hlist

import (
	"fmt"
	"reflect"

	"golang.org/x/xerrors"
)

// UnresolvableAccessError is an error resolving a requested element type
// against a list at run time, returned by Find.
//
// The static access path has no equivalent error: an Index for an
// unresolvable combination cannot be constructed in the first place.
type UnresolvableAccessError interface {
	error
	IsUnresolvableAccessError()
}

// MissingElementError

// MissingElementError is returned by Find when no slot of the list holds
// an element of the target type.
type MissingElementError struct {
	Target reflect.Type
}

var _ UnresolvableAccessError = MissingElementError{}

func NewMissingElementError(target reflect.Type) MissingElementError {
	return MissingElementError{
		Target: target,
	}
}

func (e MissingElementError) Error() string {
	return fmt.Sprintf("no element of type %s in list", e.Target)
}

func (MissingElementError) IsUnresolvableAccessError() {}

// AmbiguousElementError

// AmbiguousElementError is returned by Find when more than one slot of
// the list holds an element of the target type. A type-only request
// cannot tell the occurrences apart; the caller must use an explicit
// Index instead.
type AmbiguousElementError struct {
	Target reflect.Type
	Count  int
}

var _ UnresolvableAccessError = AmbiguousElementError{}

func NewAmbiguousElementError(target reflect.Type, count int) AmbiguousElementError {
	return AmbiguousElementError{
		Target: target,
		Count:  count,
	}
}

func (e AmbiguousElementError) Error() string {
	return fmt.Sprintf(
		"%d elements of type %s in list, explicit index required",
		e.Count,
		e.Target,
	)
}

func (AmbiguousElementError) IsUnresolvableAccessError() {}

// MalformedListError

// MalformedListError is returned by Find when the walk reaches a node
// that is neither Nil nor a Cons. That requires subverting the List
// marker, e.g. by embedding Nil in a foreign struct.
type MalformedListError struct {
	Type reflect.Type
}

var _ UnresolvableAccessError = MalformedListError{}

func NewMalformedListError(typ reflect.Type) MalformedListError {
	return MalformedListError{
		Type: typ,
	}
}

func (e MalformedListError) Error() string {
	return fmt.Sprintf("unexpected node of type %s in list", e.Type)
}

func (MalformedListError) IsUnresolvableAccessError() {}

// InvalidIndexError

// InvalidIndexError is the panic value for use of a zero-value Index.
// Indexes must be built with Here and There.
type InvalidIndexError struct{}

func NewInvalidIndexError() InvalidIndexError {
	return InvalidIndexError{}
}

func (InvalidIndexError) Error() string {
	return "use of zero-value index: indexes must be built with Here and There"
}

// IsUnresolvableAccessError checks whether a given error was caused by an
// UnresolvableAccessError. An error is an unresolvable-access error if it
// has at least one UnresolvableAccessError in the error chain.
func IsUnresolvableAccessError(err error) bool {
	switch err := err.(type) {
	case UnresolvableAccessError:
		return true
	case xerrors.Wrapper:
		return IsUnresolvableAccessError(err.Unwrap())
	default:
		return false
	}
}
