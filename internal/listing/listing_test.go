package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []Item {
	return []Item{
		{ID: 1, Name: "Villa Paraíso", Description: "Frente al mar", Active: true, Priority: PriorityHigh, Category: "villa", Price: 350, Capacity: 8, CreatedAt: "2025-01-10"},
		{ID: 2, Name: "Apto Moderno", Description: "Centro de Medellín", Active: true, Priority: PriorityMedium, Category: "apartment", Price: 95, Capacity: 3, CreatedAt: "2025-02-01"},
		{ID: 3, Name: "Cabaña del Bosque", Description: "Rodeada de pinos", Active: false, Priority: PriorityLow, Category: "cabin", Price: 60, Capacity: 5, CreatedAt: "2025-02-15"},
	}
}

func TestNewItem_Defaults(t *testing.T) {
	item := NewItem(Draft{Name: "Casa Nueva"})

	assert.NotZero(t, item.ID)
	assert.True(t, item.Active)
	assert.Equal(t, PriorityMedium, item.Priority)
	assert.Equal(t, "apartment", item.Category)
	assert.Equal(t, 1, item.Capacity)
	assert.Equal(t, 0.0, item.Price)
	assert.NotEmpty(t, item.CreatedAt)
	assert.Empty(t, item.UpdatedAt)

	neg := NewItem(Draft{Name: "Rara", Price: -20, Capacity: -1})
	assert.Equal(t, 0.0, neg.Price)
	assert.Equal(t, 1, neg.Capacity)
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	items := sampleItems()
	out := Add(items, NewItem(Draft{Name: "Casa Nueva"}))

	assert.Len(t, out, 4)
	assert.Len(t, items, 3)
}

func TestUpdate(t *testing.T) {
	items := sampleItems()
	price := 120.0
	out := Update(items, 2, Changes{Price: &price})

	updated, ok := Find(out, 2)
	require.True(t, ok)
	assert.Equal(t, 120.0, updated.Price)
	assert.NotEmpty(t, updated.UpdatedAt)

	// Original slice keeps the old value.
	orig, _ := Find(items, 2)
	assert.Equal(t, 95.0, orig.Price)
	assert.Empty(t, orig.UpdatedAt)

	// Unknown id changes nothing.
	same := Update(items, 999, Changes{Price: &price})
	assert.Equal(t, items, same)
}

func TestDeleteAndToggle(t *testing.T) {
	items := sampleItems()

	out := Delete(items, 1)
	assert.Len(t, out, 2)
	_, ok := Find(out, 1)
	assert.False(t, ok)

	toggled := Toggle(items, 3)
	got, _ := Find(toggled, 3)
	assert.True(t, got.Active)
	before, _ := Find(items, 3)
	assert.False(t, before.Active)
}

func TestClearInactive(t *testing.T) {
	out := ClearInactive(sampleItems())
	assert.Len(t, out, 2)
	for _, item := range out {
		assert.True(t, item.Active)
	}
}

func TestApply_FilterComposition(t *testing.T) {
	items := sampleItems()

	// All passthroughs return the full input in the same order.
	all := Apply(items, Filters{Status: "all", Category: "all", Priority: "all", Search: ""})
	assert.Equal(t, items, all)

	// Zero-value filters normalize to the passthroughs.
	assert.Equal(t, items, Apply(items, Filters{}))

	got := Apply(items, Filters{Status: "active", Category: "villa"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	assert.Empty(t, Apply(items, Filters{Status: "inactive", Category: "villa"}))

	byTier := Apply(items, Filters{Priority: "low"})
	require.Len(t, byTier, 1)
	assert.Equal(t, "cabin", byTier[0].Category)

	bySearch := Apply(items, Filters{Search: "  "})
	assert.Equal(t, items, bySearch)

	found := Apply(items, Filters{Search: "MEDELLÍN"})
	require.Len(t, found, 1)
	assert.Equal(t, int64(2), found[0].ID)
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(sampleItems())

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, stats.Total, stats.Active+stats.Inactive)
	assert.Equal(t, 16, stats.TotalCapacity)
	assert.Equal(t, 1, stats.ByCategory["villa"])
	assert.Equal(t, 1, stats.ByPriority[PriorityHigh])

	sum := 0
	for _, n := range stats.ByCategory {
		sum += n
	}
	assert.Equal(t, stats.Total, sum)

	assert.Equal(t, 168, stats.AvgPrice()) // round(505/3)
	assert.Equal(t, 0, ComputeStats(nil).AvgPrice())
}

func TestReduce(t *testing.T) {
	s := NewState(sampleItems())

	s2 := Reduce(s, ItemToggled{ID: 3})
	got, _ := Find(s2.Items, 3)
	assert.True(t, got.Active)
	prev, _ := Find(s.Items, 3)
	assert.False(t, prev.Active)

	s3 := Reduce(s2, ItemDeleted{ID: 1})
	assert.Len(t, s3.Items, 2)
	assert.Len(t, s2.Items, 3)

	s4 := Reduce(s3, FiltersChanged{Filters: Filters{Status: "active"}})
	assert.Equal(t, "active", s4.Filters.Status)
	assert.Equal(t, "all", s4.Filters.Category)
	assert.Len(t, s4.Visible(), 2)

	s5 := Reduce(s4, InactiveCleared{})
	assert.Len(t, s5.Items, 2)
}
