package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestAddress_Label(t *testing.T) {
	testCases := []struct {
		name    string
		address entities.Address
		want    string
	}{
		{
			name:    "street wins",
			address: entities.Address{Street: "Praia de Botafogo", City: "Rio de Janeiro", Neighborhood: "Botafogo", PostalCode: "22250-040"},
			want:    "Praia de Botafogo",
		},
		{
			name:    "city and neighborhood",
			address: entities.Address{City: "Rio de Janeiro", Neighborhood: "Botafogo"},
			want:    "Rio de Janeiro > Botafogo",
		},
		{
			name:    "city only",
			address: entities.Address{City: "Rio de Janeiro", PostalCode: "22250-040"},
			want:    "Rio de Janeiro",
		},
		{
			name:    "postal code",
			address: entities.Address{PostalCode: "22250-040"},
			want:    "22250-040",
		},
		{
			name: "empty",
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.address.Label())
		})
	}
}

func TestPickupOption_Key(t *testing.T) {
	byID := entities.PickupOption{ID: "Retirada (P1)", PickupPointID: "P1"}
	assert.Equal(t, entities.LookupKey{Kind: entities.KeyByID, Value: "Retirada (P1)"}, byID.Key())

	byPoint := entities.PickupOption{PickupPointID: "P1"}
	assert.Equal(t, entities.LookupKey{Kind: entities.KeyByPickupPointID, Value: "P1"}, byPoint.Key())

	assert.False(t, entities.PickupOption{}.Key().Matches(entities.PickupOption{}.Key()))
}

func TestSameSelection(t *testing.T) {
	a := &entities.PickupOption{ID: "Retirada (P1)", PickupPointID: "P1"}
	b := &entities.PickupOption{ID: "Retirada (P1)", PickupPointID: "P1", Name: "renamed"}
	c := &entities.PickupOption{ID: "Retirada (P2)", PickupPointID: "P2"}

	assert.True(t, entities.SameSelection(nil, nil))
	assert.True(t, entities.SameSelection(a, b))
	assert.False(t, entities.SameSelection(a, c))
	assert.False(t, entities.SameSelection(a, nil))
	assert.False(t, entities.SameSelection(nil, c))

	partial := &entities.PickupOption{ID: "Retirada (P1)"}
	assert.False(t, entities.SameSelection(partial, a), "filled pickup point id is a new selection")
}

func TestPickupOption_Confirmable(t *testing.T) {
	var none *entities.PickupOption
	assert.False(t, none.Confirmable())
	assert.False(t, (&entities.PickupOption{ID: "P3"}).Confirmable())
	assert.True(t, (&entities.PickupOption{ID: "P1", StoreInfo: &entities.StoreInfo{}}).Confirmable())
}

func TestSidebarState_IsError(t *testing.T) {
	assert.True(t, entities.SidebarErrorNotFound.IsError())
	assert.True(t, entities.SidebarErrorCouldNotGetLocation.IsError())
	assert.False(t, entities.SidebarList.IsError())
	assert.False(t, entities.SidebarDetails.IsError())
}
