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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {

	t.Parallel()

	list := Push(Push(Nil{}, int32(0)), int64(1))

	newest := Here[int64, Cons[int32, Nil]]()
	older := There[int64](Here[int32, Nil]())

	assert.Equal(t, int64(1), Get(&list, newest))
	assert.Equal(t, int32(0), Get(&list, older))
}

func TestGetRoundTrip(t *testing.T) {

	t.Parallel()

	list := Push(Push(Push(Nil{}, int32(1)), "two"), int64(3))

	first := Here[int64, Cons[string, Cons[int32, Nil]]]()
	second := There[int64](Here[string, Cons[int32, Nil]]())
	third := There[int64](There[string](Here[int32, Nil]()))

	assert.Equal(t, int64(3), Get(&list, first))
	assert.Equal(t, "two", Get(&list, second))
	assert.Equal(t, int32(1), Get(&list, third))
}

func TestSet(t *testing.T) {

	t.Parallel()

	list := Push(Push(Nil{}, int32(5)), "Foo")

	text := Here[string, Cons[int32, Nil]]()
	number := There[string](Here[int32, Nil]())

	Set(&list, number, int32(6))
	Set(&list, text, "Bar")

	assert.Equal(t, int32(6), Get(&list, number))
	assert.Equal(t, "Bar", Get(&list, text))
}

func TestRef(t *testing.T) {

	t.Parallel()

	list := Push(Push(Nil{}, int32(5)), "Foo")

	number := There[string](Here[int32, Nil]())

	*Ref(&list, number) = 6

	assert.Equal(t, int32(6), Get(&list, number))

	// the other slot is unaffected
	assert.Equal(t, "Foo", Get(&list, Here[string, Cons[int32, Nil]]()))
}

func TestDuplicateElementTypes(t *testing.T) {

	t.Parallel()

	list := Push(Push(Nil{}, "a"), "b")

	newest := Here[string, Cons[string, Nil]]()
	older := There[string](Here[string, Nil]())

	assert.Equal(t, "b", Get(&list, newest))
	assert.Equal(t, "a", Get(&list, older))

	Set(&list, older, "c")

	assert.Equal(t, "b", Get(&list, newest))
	assert.Equal(t, "c", Get(&list, older))
}

// getInt32 looks up an int32 in any list,
// given an index supplied by the call site
func getInt32[L List](list *L, at Index[L, int32]) int32 {
	return Get(list, at)
}

func TestIndexAsParameter(t *testing.T) {

	t.Parallel()

	list := Push(Push(Push(Nil{}, "foo"), int32(5)), "bar")

	at := There[string](Here[int32, Cons[string, Nil]]())

	require.Equal(t, int32(5), getInt32(&list, at))
}

func TestZeroIndex(t *testing.T) {

	t.Parallel()

	list := Push(Nil{}, 1)

	assert.PanicsWithValue(t,
		NewInvalidIndexError(),
		func() {
			Get(&list, Index[Cons[int, Nil], int]{})
		},
	)
}
