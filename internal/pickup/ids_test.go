package pickup_test

import (
	"testing"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/pickup"
	"github.com/stretchr/testify/assert"
)

func TestCleanID(t *testing.T) {
	testCases := []struct {
		id   string
		want string
	}{
		{id: "Retirada (P1)", want: "Retirada-P1"},
		{id: "1_loja-centro", want: "1_lojacentro"},
		{id: "Loja Centro #2", want: "Loja-Centro-2"},
		{id: "plain", want: "plain"},
		{id: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			assert.Equal(t, tc.want, pickup.CleanID(tc.id))
		})
	}
}

func TestConfirmButtonID(t *testing.T) {
	assert.Equal(t, "confirm-pickup-Retirada-na-loja-1_1", pickup.ConfirmButtonID(&entities.PickupOption{ID: "Retirada na loja (1_1)"}))
	assert.Empty(t, pickup.ConfirmButtonID(nil))
}
