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

// List is a marker interface satisfied exactly by Nil and Cons.
//
// It constrains the tail of every Cons, so a list is a proper chain of
// Cons nodes ending in Nil by construction.
type List interface {
	isList()
}

// Nil is the empty list.
type Nil struct{}

var _ List = Nil{}

func (Nil) isList() {}

// Cons is a list with Head at position 0, and Tail as the rest of the list.
type Cons[H any, T List] struct {
	Head H
	Tail T
}

var _ List = Cons[struct{}, Nil]{}

func (Cons[H, T]) isList() {}

// Push returns a new list with item at the beginning, and list as the rest.
//
// The argument is consumed: Push copies it into the tail of the result,
// and the result is the sole handle to the extended list. Callers must not
// keep using the old value.
func Push[N any, L List](list L, item N) Cons[N, L] {
	return Cons[N, L]{
		Head: item,
		Tail: list,
	}
}
