package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/criscode097/vacarent/internal/domain"
)

func newVilla(t *testing.T, name string, price float64, active bool) *domain.Property {
	t.Helper()
	p, err := domain.NewVilla(name, "Cartagena", price, 8, true, 300)
	require.NoError(t, err)
	if !active {
		p.Deactivate()
	}
	return p
}

func newGuest(t *testing.T, name, email string) *domain.Person {
	t.Helper()
	g, err := domain.NewGuest(name, email, "Colombia")
	require.NoError(t, err)
	return g
}

func TestRegistry_AddAndRemoveProperty(t *testing.T) {
	r := New()
	p := newVilla(t, "Villa Paraíso", 350, true)

	res := r.AddProperty(p)
	assert.True(t, res.Success)
	assert.Len(t, r.ListProperties(), 1)
	assert.Same(t, p, r.FindProperty(p.ID()))

	res = r.RemoveProperty(p.ID())
	assert.True(t, res.Success)
	assert.Empty(t, r.ListProperties())

	res = r.RemoveProperty(p.ID())
	assert.False(t, res.Success)
	assert.Equal(t, "property not found", res.Message)
}

func TestRegistry_CapacityLimit(t *testing.T) {
	r := New()
	for i := 0; i < MaxProperties; i++ {
		p := newVilla(t, fmt.Sprintf("Villa %d", i), 100, true)
		require.True(t, r.AddProperty(p).Success)
	}

	overflow := newVilla(t, "One Too Many", 100, true)
	res := r.AddProperty(overflow)
	assert.False(t, res.Success)
	assert.Len(t, r.ListProperties(), MaxProperties)
}

func TestRegistry_DuplicateEmailIsExactMatch(t *testing.T) {
	r := New()
	require.True(t, r.AddUser(newGuest(t, "Ana", "ana@ejemplo.com")).Success)

	res := r.AddUser(newGuest(t, "Ana Bis", "ana@ejemplo.com"))
	assert.False(t, res.Success)

	// Different casing is a different address here.
	res = r.AddUser(newGuest(t, "Ana Mayús", "Ana@ejemplo.com"))
	assert.True(t, res.Success)
	assert.Len(t, r.ListUsers(), 2)
}

func TestRegistry_FindUserByEmail(t *testing.T) {
	r := New()
	g := newGuest(t, "Ana", "ana@ejemplo.com")
	require.True(t, r.AddUser(g).Success)

	assert.Same(t, g, r.FindUserByEmail("ana@ejemplo.com"))
	assert.Nil(t, r.FindUserByEmail("Ana@ejemplo.com"))
	assert.Nil(t, r.FindUserByEmail("nadie@ejemplo.com"))
}

func TestRegistry_ListReturnsACopy(t *testing.T) {
	r := New()
	r.AddProperty(newVilla(t, "Villa A", 100, true))
	r.AddProperty(newVilla(t, "Villa B", 200, true))

	list := r.ListProperties()
	list[0] = nil
	list = list[:1]

	fresh := r.ListProperties()
	require.Len(t, fresh, 2)
	assert.NotNil(t, fresh[0])
}

func TestRegistry_ToggleProperty(t *testing.T) {
	r := New()
	p := newVilla(t, "Villa Paraíso", 350, true)
	r.AddProperty(p)

	res := r.ToggleProperty(p.ID())
	assert.True(t, res.Success)
	assert.False(t, p.IsActive())

	res = r.ToggleProperty(p.ID())
	assert.True(t, res.Success)
	assert.True(t, p.IsActive())

	assert.False(t, r.ToggleProperty("missing").Success)
}

func TestRegistry_Filters(t *testing.T) {
	r := New()
	villa := newVilla(t, "Villa del Mar", 350, true)
	r.AddProperty(villa)

	apt, err := domain.NewApartment("Apto Centro", "Medellín", 95, 3, 7, true)
	require.NoError(t, err)
	r.AddProperty(apt)

	closed := newVilla(t, "Villa Cerrada", 200, false)
	r.AddProperty(closed)

	assert.Len(t, r.FilterByType(domain.TypeVilla), 2)
	assert.Len(t, r.FilterByType(domain.TypeApartment), 1)
	assert.Len(t, r.FilterByStatus(true), 2)
	assert.Len(t, r.FilterByStatus(false), 1)

	byName := r.Search("  VILLA ")
	assert.Len(t, byName, 2)
	assert.Len(t, r.Search("medellín"), 1) // location matches too
	assert.Len(t, r.Search(""), 3)
	assert.Empty(t, r.Search("hostal"))
}

func TestFiltersCompose(t *testing.T) {
	r := New()
	open := newVilla(t, "Villa del Mar", 350, true)
	r.AddProperty(open)
	r.AddProperty(newVilla(t, "Villa Cerrada", 200, false))

	apt, err := domain.NewApartment("Apto Villa Nueva", "Medellín", 95, 3, 7, true)
	require.NoError(t, err)
	r.AddProperty(apt)

	// Status, then type, then search over one listed slice.
	props := r.ListProperties()
	props = ByStatus(props, true)
	require.Len(t, props, 2)
	props = ByType(props, domain.TypeVilla)
	require.Len(t, props, 1)
	props = BySearch(props, "mar")
	require.Len(t, props, 1)
	assert.Same(t, open, props[0])

	assert.Empty(t, BySearch(ByType(r.ListProperties(), domain.TypeVilla), "nueva"))
}

func TestRegistry_Snapshot(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Snapshot().AveragePrice)

	r.AddProperty(newVilla(t, "Villa A", 100, true))
	r.AddProperty(newVilla(t, "Villa B", 201, false))
	apt, err := domain.NewApartment("Apto", "Medellín", 100, 3, 7, true)
	require.NoError(t, err)
	r.AddProperty(apt)
	r.AddUser(newGuest(t, "Ana", "ana@ejemplo.com"))

	stats := r.Snapshot()
	assert.Equal(t, 3, stats.TotalProperties)
	assert.Equal(t, stats.TotalProperties, stats.Active+stats.Inactive)
	assert.Equal(t, 2, stats.ByType[domain.TypeVilla])
	assert.Equal(t, 1, stats.ByType[domain.TypeApartment])

	sum := 0
	for _, n := range stats.ByType {
		sum += n
	}
	assert.Equal(t, stats.TotalProperties, sum)

	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 134, stats.AveragePrice) // round(401/3)
}
