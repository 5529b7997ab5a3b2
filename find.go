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
	"reflect"
	"strings"
)

var nilType = reflect.TypeOf(Nil{})

// Find returns a pointer to the element of type T in list,
// provided exactly one slot of the list holds a T.
//
// Find stands in for the position inference the type system cannot do:
// the target type alone does not determine an Index, so Find performs the
// positional walk at first use instead, over the list value. The result
// is accordingly weaker than Get's: if no slot holds a T, Find returns
// MissingElementError, and if several do, AmbiguousElementError, since a
// type-only request cannot tell the occurrences apart. Duplicates are
// accessed with an explicit Index instead.
//
// Matching is exact: a slot matches only if its declared type is T,
// not merely assignable or convertible to it.
func Find[T any, L List](list *L) (*T, error) {
	target := reflect.TypeOf((*T)(nil)).Elem()

	var found *T
	matches := 0

	node := reflect.ValueOf(list).Elem()
	for {
		typ := node.Type()
		if typ == nilType {
			break
		}
		if !isCons(typ) {
			return nil, NewMalformedListError(typ)
		}

		head := node.Field(0)
		if head.Type() == target {
			if matches == 0 {
				found = head.Addr().Interface().(*T)
			}
			matches++
		}

		node = node.Field(1)
	}

	switch matches {
	case 0:
		return nil, NewMissingElementError(target)
	case 1:
		return found, nil
	default:
		return nil, NewAmbiguousElementError(target, matches)
	}
}

// isCons reports whether typ is an instantiation of Cons.
// The List constraint makes other node types impossible to construct
// directly, but embedding Nil or a Cons smuggles the marker method
// onto a foreign struct, so the walk still checks.
func isCons(typ reflect.Type) bool {
	return typ.Kind() == reflect.Struct &&
		typ.PkgPath() == nilType.PkgPath() &&
		strings.HasPrefix(typ.Name(), "Cons[")
}
