package pickup_test

import (
	"testing"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/pickup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Navigation(t *testing.T) {
	p1 := entities.PickupOption{ID: "P1"}
	p2 := entities.PickupOption{ID: "P2"}
	p3 := entities.PickupOption{ID: "P3"}
	idx := pickup.NewIndex([]entities.PickupOption{p1, p2, p3})

	assert.Equal(t, 1, idx.IndexOf(&p2))
	assert.False(t, idx.IsFirst(&p2))
	assert.False(t, idx.IsLast(&p2))

	next := idx.Next(&p2)
	require.NotNil(t, next)
	assert.Equal(t, "P3", next.ID)

	prev := idx.Previous(&p2)
	require.NotNil(t, prev)
	assert.Equal(t, "P1", prev.ID)

	assert.Nil(t, idx.Next(&p3), "next from last is a no-op")
	assert.Nil(t, idx.Previous(&p1), "previous from first is a no-op")
	assert.True(t, idx.IsFirst(&p1))
	assert.True(t, idx.IsLast(&p3))
}

func TestIndex_IndexOf(t *testing.T) {
	candidates := []entities.PickupOption{
		{ID: "sla-1", PickupPointID: "P1"},
		{PickupPointID: "P2"},
		{ID: "sla-3", PickupPointID: "P3"},
	}

	testCases := []struct {
		name     string
		selected *entities.PickupOption
		want     int
	}{
		{name: "by id", selected: &entities.PickupOption{ID: "sla-3"}, want: 2},
		{name: "id takes precedence over pickup point id", selected: &entities.PickupOption{ID: "sla-1", PickupPointID: "P3"}, want: 0},
		{name: "fallback to pickup point id", selected: &entities.PickupOption{PickupPointID: "P2"}, want: 1},
		{name: "unmatched", selected: &entities.PickupOption{ID: "nope", PickupPointID: "nope"}, want: -1},
		{name: "nil selection", selected: nil, want: -1},
		{name: "empty selection", selected: &entities.PickupOption{}, want: -1},
	}

	idx := pickup.NewIndex(candidates)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, idx.IndexOf(tc.selected))
		})
	}
}

func TestIndex_Degrades(t *testing.T) {
	unmatched := &entities.PickupOption{ID: "ghost"}

	for _, idx := range []*pickup.Index{pickup.NewIndex(nil), pickup.NewIndex([]entities.PickupOption{{ID: "P1"}, {ID: "P2"}})} {
		assert.Equal(t, -1, idx.IndexOf(unmatched))
		assert.Nil(t, idx.Next(unmatched))
		assert.Nil(t, idx.Previous(unmatched))
		assert.False(t, idx.IsFirst(unmatched))
		assert.False(t, idx.IsLast(unmatched))
		assert.Nil(t, idx.Next(nil))
		assert.Nil(t, idx.Previous(nil))
	}
}

func TestIndex_FirstAndLast(t *testing.T) {
	single := entities.PickupOption{ID: "P1"}
	idx := pickup.NewIndex([]entities.PickupOption{single})

	assert.True(t, idx.IsFirst(&single))
	assert.True(t, idx.IsLast(&single))

	many := pickup.NewIndex([]entities.PickupOption{{ID: "P1"}, {ID: "P2"}, {ID: "P3"}, {ID: "P4"}})
	for _, id := range []string{"P1", "P2", "P3", "P4"} {
		sel := &entities.PickupOption{ID: id}
		assert.False(t, many.IsFirst(sel) && many.IsLast(sel), id)
	}

	pos := many.Position(&entities.PickupOption{ID: "P4"})
	assert.Equal(t, pickup.Position{Index: 3, Total: 4, IsFirst: false, IsLast: true}, pos)
}

func TestIndex_Lookup(t *testing.T) {
	idx := pickup.NewIndex([]entities.PickupOption{
		{ID: "sla-1", PickupPointID: "P1"},
		{ID: "P1", PickupPointID: "P9"},
	})

	got := idx.Lookup("P1")
	require.NotNil(t, got)
	assert.Equal(t, "P9", got.PickupPointID, "option id wins over pickup point id")

	got = idx.Lookup("sla-1")
	require.NotNil(t, got)
	assert.Equal(t, "P1", got.PickupPointID)

	got = idx.Lookup("P9")
	require.NotNil(t, got)
	assert.Equal(t, "P1", got.ID)

	assert.Nil(t, idx.Lookup("missing"))
	assert.Nil(t, idx.Lookup(""))
}

func TestFindPoint(t *testing.T) {
	points := testCart().PickupPoints

	got := pickup.FindPoint(points, "P2")
	require.NotNil(t, got)
	assert.Equal(t, "Store P2", got.Name)

	assert.Nil(t, pickup.FindPoint(points, "P3"))
	assert.Nil(t, pickup.FindPoint(points, ""))
	assert.Nil(t, pickup.FindPoint(nil, "P1"))
}
