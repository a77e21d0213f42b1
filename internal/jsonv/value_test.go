package jsonv

import (
	stdjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleTree() Value {
	inner := NewMap(2)
	inner.Set("b", IntValue(2))
	inner.Set("a", StringValue("x\"y"))

	root := NewMap(4)
	root.Set("z", BoolValue(true))
	root.Set("nested", ObjectValue(inner))
	root.Set("list", ArrayValue(IntValue(1), NullValue()))
	root.Set("n", NullValue())
	return ObjectValue(root)
}

func TestAppendJSON_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	got := sampleTree().String()
	require.Equal(t, `{"z":true,"nested":{"b":2,"a":"x\"y"},"list":[1,null],"n":null}`, got)
	require.True(t, stdjson.Valid([]byte(got)))
}

func TestMap_SetReplacesInPlace(t *testing.T) {
	t.Parallel()

	m := NewMap(3)
	m.Set("a", IntValue(1))
	m.Set("b", IntValue(2))
	m.Set("a", StringValue("one"))

	require.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	s, ok := v.AsString()
	require.True(t, ok)
	require.Equal(t, "one", s)
}

func TestMap_Delete(t *testing.T) {
	t.Parallel()

	m := NewMap(3)
	m.Set("a", IntValue(1))
	m.Set("b", IntValue(2))
	m.Set("c", IntValue(3))

	require.True(t, m.Delete("b"))
	require.False(t, m.Delete("b"))
	require.Equal(t, []string{"a", "c"}, m.Keys())
	require.False(t, m.Has("b"))
	require.Equal(t, 2, m.Len())
}

func TestWalkObjects_VisitsParentsFirst(t *testing.T) {
	t.Parallel()

	var visited [][]string
	WalkObjects(sampleTree(), func(m *Map) {
		visited = append(visited, m.Keys())
	})

	require.Equal(t, [][]string{
		{"z", "nested", "list", "n"},
		{"b", "a"},
	}, visited)
}

func TestWalkObjects_FollowsReorderedMembers(t *testing.T) {
	t.Parallel()

	first := NewMap(1)
	first.Set("first", NullValue())
	second := NewMap(1)
	second.Set("second", NullValue())
	root := NewMap(2)
	root.Set("one", ObjectValue(first))
	root.Set("two", ObjectValue(second))

	var order []string
	WalkObjects(ObjectValue(root), func(m *Map) {
		if m == root {
			m.Swap(0, 1)
			return
		}
		order = append(order, m.Keys()[0])
	})

	require.Equal(t, []string{"second", "first"}, order)
}

func TestWalkObjects_IgnoresScalarsAndArrays(t *testing.T) {
	t.Parallel()

	calls := 0
	count := func(*Map) { calls++ }
	WalkObjects(IntValue(3), count)
	WalkObjects(ArrayValue(ObjectValue(NewMap(0))), count)
	require.Zero(t, calls)
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	require.Equal(t, Null, Value{}.Kind())
	n, ok := IntValue(42).AsInt()
	require.True(t, ok)
	require.Equal(t, int64(42), n)
	_, ok = StringValue("42").AsInt()
	require.False(t, ok)
	m, ok := ObjectValue(nil).AsObject()
	require.True(t, ok)
	require.Zero(t, m.Len())
	require.Equal(t, "object", Object.String())
}
