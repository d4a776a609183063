package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashindex/robinidx/container"
)

func TestSetAddHasRemove(t *testing.T) {
	s := container.NewSet[string]()

	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("b"))
	assert.Equal(t, 1, s.Size())

	require.True(t, s.Remove("a"))
	assert.False(t, s.Has("a"))
	assert.True(t, s.Empty())
	assert.False(t, s.Remove("a"))
}

func TestSetEachVisitsEveryMember(t *testing.T) {
	s := container.NewSet[int]()
	for i := 0; i < 100; i++ {
		s.Add(i)
	}

	seen := make(map[int]bool)
	s.Each(func(key int) bool {
		seen[key] = true
		return false
	})

	assert.Len(t, seen, 100)
	for i := 0; i < 100; i++ {
		assert.True(t, seen[i], "missing member %d", i)
	}
}

func TestSetUnion(t *testing.T) {
	a := container.NewSet[int]()
	b := container.NewSet[int]()
	for i := 0; i < 10; i++ {
		a.Add(i)
	}
	for i := 5; i < 15; i++ {
		b.Add(i)
	}

	u := a.Union(b)
	assert.Equal(t, 15, u.Size())
	for i := 0; i < 15; i++ {
		assert.True(t, u.Has(i), "union missing %d", i)
	}

	// Union must not mutate either operand.
	assert.Equal(t, 10, a.Size())
	assert.Equal(t, 10, b.Size())
}

func TestSetIntersect(t *testing.T) {
	a := container.NewSet[int]()
	b := container.NewSet[int]()
	for i := 0; i < 10; i++ {
		a.Add(i)
	}
	for i := 5; i < 15; i++ {
		b.Add(i)
	}

	x := a.Intersect(b)
	assert.Equal(t, 5, x.Size())
	for i := 5; i < 10; i++ {
		assert.True(t, x.Has(i), "intersection missing %d", i)
	}
	for _, i := range []int{0, 1, 2, 3, 4, 10, 11, 12, 13, 14} {
		assert.False(t, x.Has(i), "intersection should not contain %d", i)
	}
}

func TestSetCopyIsIndependent(t *testing.T) {
	a := container.NewSet[int]()
	a.Add(1)
	a.Add(2)

	b := a.Copy()
	b.Add(3)

	assert.False(t, a.Has(3))
	assert.True(t, b.Has(3))
}

func TestSetClearAndReset(t *testing.T) {
	s := container.NewSet[int]()
	s.Reserve(64)
	for i := 0; i < 20; i++ {
		s.Add(i)
	}

	s.Clear()
	assert.Equal(t, 0, s.Size())
	assert.True(t, s.Add(0))

	s.Reset()
	assert.Equal(t, 0, s.Size())
	assert.True(t, s.Add(0))
}
