package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVilla_TrimsAndDefaults(t *testing.T) {
	p, err := NewVilla("  Villa Paraíso  ", "  Cartagena, Colombia ", 350, 8, true, 450)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID())
	assert.Equal(t, TypeVilla, p.Type())
	assert.Equal(t, "Villa Paraíso", p.Name())
	assert.Equal(t, "Cartagena, Colombia", p.Location())
	assert.Equal(t, 350.0, p.PricePerNight())
	assert.Equal(t, 8, p.Capacity())
	assert.True(t, p.IsActive())
	assert.True(t, p.HasPool())
	assert.Equal(t, 450.0, p.SquareMeters())
	assert.NotEmpty(t, p.DateCreated())
}

func TestNewProperty_EmptyRequiredFields(t *testing.T) {
	var verr *ValidationError

	_, err := NewApartment("", "Medellín", 95, 3, 7, true)
	require.Error(t, err)
	assert.ErrorAs(t, err, &verr)

	_, err = NewApartment("   ", "Medellín", 95, 3, 7, true)
	assert.Error(t, err)

	_, err = NewApartment("Apto Moderno", "   ", 95, 3, 7, true)
	assert.Error(t, err)
}

func TestNewProperty_LenientNumericDefaults(t *testing.T) {
	p, err := NewApartment("Apto", "Medellín", -50, 0, 0, false)
	require.NoError(t, err)

	// Invalid numbers fall back instead of failing construction.
	assert.Equal(t, 0.0, p.PricePerNight())
	assert.Equal(t, 1, p.Capacity())
	assert.Equal(t, 1, p.Floor())

	h, err := NewHouse("Casa Colonial", "Barichara", 130, 6, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Bedrooms())

	v, err := NewVilla("Villa", "Cartagena", 350, 8, false, -10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v.SquareMeters())
}

func TestProperty_Setters(t *testing.T) {
	p, err := NewCabin("Cabaña del Bosque", "Santa Fe de Antioquia", 60, 5, true, true)
	require.NoError(t, err)

	require.NoError(t, p.SetLocation("  Guatapé "))
	assert.Equal(t, "Guatapé", p.Location())
	assert.Error(t, p.SetLocation("   "))
	assert.Equal(t, "Guatapé", p.Location())

	require.NoError(t, p.SetPricePerNight(75))
	assert.Equal(t, 75.0, p.PricePerNight())
	assert.Error(t, p.SetPricePerNight(-1))
	assert.Equal(t, 75.0, p.PricePerNight())
}

func TestProperty_ToggleIsIdempotent(t *testing.T) {
	p, err := NewHouse("Casa Colonial", "Barichara", 130, 6, 4, true)
	require.NoError(t, err)

	first := p.Deactivate()
	assert.True(t, first.Success)
	assert.False(t, p.IsActive())

	second := p.Deactivate()
	assert.False(t, second.Success)
	assert.False(t, p.IsActive())

	assert.True(t, p.Activate().Success)
	assert.False(t, p.Activate().Success)
	assert.True(t, p.IsActive())
}

func TestProperty_InfoCarriesOnlyOwnVariantFields(t *testing.T) {
	c, err := NewCabin("Cabaña", "Salento", 60, 5, true, false)
	require.NoError(t, err)

	info := c.Info()
	assert.Equal(t, TypeCabin, info.Type)
	require.NotNil(t, info.HasFireplace)
	assert.True(t, *info.HasFireplace)
	require.NotNil(t, info.PetFriendly)
	assert.False(t, *info.PetFriendly)
	assert.Nil(t, info.Floor)
	assert.Nil(t, info.Bedrooms)
	assert.Nil(t, info.HasPool)
}

func TestParsePropertyType(t *testing.T) {
	pt, err := ParsePropertyType(" Villa ")
	require.NoError(t, err)
	assert.Equal(t, TypeVilla, pt)

	_, err = ParsePropertyType("castle")
	assert.Error(t, err)
}
