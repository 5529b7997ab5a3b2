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

// Package hlist provides the types Nil and Cons, which together allow for
// building lists consisting of multiple element types. The element types
// are part of the type of the list itself, so that
// Cons[int32, Cons[int64, Nil]] contains an int32 and an int64.
//
// A list is built by starting from Nil and repeatedly applying Push:
//
//	list := hlist.Push(hlist.Push(hlist.Nil{}, int32(0)), int64(1))
//
// Elements are accessed through an Index, a position within the list that
// is resolved entirely at compile time: an Index for a position that does
// not exist, or whose slot holds a different type, cannot be constructed.
// See Here, There, Get, Ref, and Set.
//
// If a type occurs exactly once in a list, Find locates its element
// without an explicit Index, at the cost of a run-time walk and an error
// result. See Find for the weaker contract.
package hlist
