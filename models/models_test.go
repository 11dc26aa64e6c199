package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPropertyKind(t *testing.T) {
	k, err := NewPropertyKind(CategoryResidential, SubVilla)
	require.NoError(t, err)
	assert.Equal(t, CategoryResidential, k.Category())
	assert.Equal(t, SubVilla, k.Subcategory())

	_, err = NewPropertyKind(CategoryResidential, SubWarehouse)
	assert.Error(t, err)

	_, err = NewPropertyKind(CategoryCommercial, SubPenthouse)
	assert.Error(t, err)

	_, err = NewPropertyKind("Industrial", SubOffice)
	assert.Error(t, err)
}

func TestSubcategoriesAreDisjoint(t *testing.T) {
	for _, s := range CategoryResidential.Subcategories() {
		assert.False(t, CategoryCommercial.Allows(s), "%s should not be commercial", s)
	}
}

func TestPropertyNormalize(t *testing.T) {
	p := Property{Price: 4500000}
	p.Normalize()
	assert.Equal(t, StatusAvailable, p.Status)
	assert.Equal(t, "sqft", p.Features.AreaUnit)
	assert.Equal(t, "$4,500,000.00", p.FormattedPrice)
	assert.NotNil(t, p.Images)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$200.00/hour", FormatPrice(200, PricingHourly))
	assert.Equal(t, "Free", FormatPrice(0, PricingFree))
	assert.Equal(t, "Free", FormatPrice(999, PricingFree))
	assert.Equal(t, "6%", FormatPrice(6, PricingPercentage))
	assert.Equal(t, "2.5%", FormatPrice(2.5, PricingPercentage))
	assert.Equal(t, "Contact for pricing", FormatPrice(500, PricingConsultation))
	assert.Equal(t, "Contact for pricing", FormatPrice(0, PricingFixed))
	assert.Equal(t, "Contact for pricing", FormatPrice(0, PricingHourly))
	assert.Equal(t, "$1,500.00", FormatPrice(1500, PricingFixed))
}

func TestServiceNormalizeRecomputes(t *testing.T) {
	s := Service{Pricing: Pricing{Type: PricingHourly, Amount: 200}}
	s.Normalize()
	assert.Equal(t, "$200.00/hour", s.FormattedPrice)

	s.Pricing = Pricing{Type: PricingPercentage, Amount: 6}
	s.Normalize()
	assert.Equal(t, "6%", s.FormattedPrice)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, StatusOffMarket.Valid())
	assert.False(t, PropertyStatus("Gone").Valid())
	assert.True(t, TypeLeaseOut.Valid())
	assert.False(t, TransactionType("Rent").Valid())
	assert.True(t, PriorityUrgent.Valid())
	assert.True(t, ContactSpam.Valid())
	assert.True(t, RoleAgent.Valid())
	assert.False(t, Role("root").Valid())
	assert.True(t, ServiceConsulting.Valid())
	assert.True(t, PricingPercentage.Valid())
}
