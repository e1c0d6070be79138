package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySide(t *testing.T) {
	tests := []struct {
		name     string
		actor    AABB
		collider AABB
		want     Side
	}{
		{
			// actor spans y [4,6], collider y [2,4]: edges meet at y=4
			name:     "edge contact below collider",
			actor:    box(5, 5, 1, 1),
			collider: box(5, 3, 5, 1),
			want:     SideBottom,
		},
		{
			name:     "approach from the left with centre on the boundary",
			actor:    box(2, 5, 1, 1),
			collider: box(5, 5, 3, 1),
			want:     SideLeft,
		},
		{
			name:     "landing on top",
			actor:    box(5, 1.5, 1, 1),
			collider: box(5, 3, 5, 1),
			want:     SideTop,
		},
		{
			name:     "approach from the right",
			actor:    box(8.5, 5, 1, 1),
			collider: box(5, 5, 3, 1),
			want:     SideRight,
		},
		{
			name:     "corner tie goes vertical",
			actor:    box(11, 5, 1, 1),
			collider: box(5, 3, 5, 1),
			want:     SideBottom,
		},
		{
			name:     "centre inside, shallow vertical overlap",
			actor:    box(5, 2.5, 1, 1),
			collider: box(5, 3, 5, 1),
			want:     SideTop,
		},
		{
			name:     "centre inside, shallow horizontal overlap",
			actor:    box(9.5, 3, 1, 3),
			collider: box(5, 3, 5, 1),
			want:     SideRight,
		},
		{
			name:     "coincident boxes fall to vertical",
			actor:    box(0, 0, 1, 1),
			collider: box(0, 0, 1, 1),
			want:     SideBottom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.actor.Intersects(tt.collider), "fixture must overlap")
			assert.Equal(t, tt.want, ClassifySide(tt.actor, tt.collider))
		})
	}
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "Left", SideLeft.String())
	assert.Equal(t, "Right", SideRight.String())
	assert.Equal(t, "Top", SideTop.String())
	assert.Equal(t, "Bottom", SideBottom.String())
	assert.Equal(t, "Side(?)", Side(42).String())
}

func TestDetectNoContact(t *testing.T) {
	_, ok := Detect(box(5, 5, 1, 1), nil)
	assert.False(t, ok)

	_, ok = Detect(box(5, 5, 1, 1), []AABB{box(50, 50, 1, 1), box(-50, 5, 1, 1)})
	assert.False(t, ok)
}

func TestDetectIsIdempotent(t *testing.T) {
	actor := box(5, 5, 1, 1)
	colliders := []AABB{box(50, 50, 1, 1), box(5, 3, 5, 1)}

	first, ok1 := Detect(actor, colliders)
	second, ok2 := Detect(actor, colliders)

	assert.True(t, ok1)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, SideBottom, first.Side)
}

func TestDetectPrefersDeepestPenetration(t *testing.T) {
	actor := box(5, 5, 1, 1)
	colliders := []AABB{
		box(5, 3, 5, 1), // touching, depth 0
		box(5, 6, 5, 1), // overlaps by 1 on y
	}

	contact, ok := Detect(actor, colliders)
	require.True(t, ok)
	assert.Equal(t, 1, contact.Index)
	assert.Equal(t, 1.0, contact.Depth)
	assert.Equal(t, SideTop, contact.Side)
}

func TestDetectEqualDepthKeepsEarliest(t *testing.T) {
	actor := box(5, 5, 1, 1)
	colliders := []AABB{
		box(5, 3, 5, 1),
		box(5, 3, 5, 1),
	}

	contact, ok := Detect(actor, colliders)
	require.True(t, ok)
	assert.Equal(t, 0, contact.Index)
}
