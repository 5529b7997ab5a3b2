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

// Index is a resolved position within a list of type L,
// witnessing that the slot it addresses holds an element of type T.
//
// An Index is built with Here and There, and only for combinations of
// list type, position, and element type that actually exist: requesting
// a position past the end of the list, or an element type other than the
// one the slot holds, fails to type-check at the construction site.
// No run-time check remains once an Index exists.
//
// An Index carries no element data. The zero Index is invalid;
// passing it to Get, Ref, or Set panics with InvalidIndexError.
type Index[L List, T any] struct {
	ref func(*L) *T
}

func (i Index[L, T]) deref(list *L) *T {
	if i.ref == nil {
		panic(NewInvalidIndexError())
	}
	return i.ref(list)
}

// Here returns the Index of the head of a list: position zero,
// the most recently pushed element.
//
// Both type parameters must be given explicitly,
// as neither appears in an argument:
//
//	hlist.Here[int64, hlist.Cons[int32, hlist.Nil]]()
func Here[H any, Tail List]() Index[Cons[H, Tail], H] {
	return Index[Cons[H, Tail], H]{
		ref: func(list *Cons[H, Tail]) *H {
			return &list.Head
		},
	}
}

// There returns the Index one step further into the list than at:
// it skips the head of type H and resolves at within the tail.
//
// H must be given explicitly; T and Tail are inferred from the argument:
//
//	hlist.There[int64](hlist.Here[int32, hlist.Nil]())
func There[H any, T any, Tail List](at Index[Tail, T]) Index[Cons[H, Tail], T] {
	return Index[Cons[H, Tail], T]{
		ref: func(list *Cons[H, Tail]) *T {
			return at.deref(&list.Tail)
		},
	}
}

// Get returns the element of list at position at.
func Get[L List, T any](list *L, at Index[L, T]) T {
	return *at.deref(list)
}

// Ref returns a pointer to the element of list at position at.
//
// The element is mutated by writing through the pointer. While the pointer
// is in use for writing, no other access to any part of the list may
// happen concurrently.
func Ref[L List, T any](list *L, at Index[L, T]) *T {
	return at.deref(list)
}

// Set replaces the element of list at position at with value.
func Set[L List, T any](list *L, at Index[L, T], value T) {
	*at.deref(list) = value
}
