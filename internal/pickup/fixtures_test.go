package pickup_test

import (
	"time"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/pickup"
)

func ptr[T any](v T) *T {
	return &v
}

func pickupSla(id, pointID, sellerID string) entities.Sla {
	return entities.Sla{
		ID:              id,
		DeliveryChannel: entities.DeliveryChannelPickup,
		PickupPointID:   pointID,
		SellerID:        sellerID,
	}
}

func deliverySla(id string) entities.Sla {
	return entities.Sla{ID: id, DeliveryChannel: entities.DeliveryChannelDelivery}
}

func option(id, pointID string, withStore bool) entities.PickupOption {
	o := entities.PickupOption{ID: id, PickupPointID: pointID, Name: "Store " + pointID}
	if withStore {
		o.StoreInfo = &entities.StoreInfo{IsPickupStore: true, AdditionalInfo: "ring the bell"}
	}
	return o
}

// testCart: A забирается в P1, B в P2, C без самовывоза.
func testCart() entities.Cart {
	return entities.Cart{
		Items: []entities.Item{
			{ID: "A", SellerID: "1", Quantity: 1, LogisticsIndex: 0},
			{ID: "B", SellerID: "1", Quantity: 2, LogisticsIndex: 1},
			{ID: "C", SellerID: "1", Quantity: 1, LogisticsIndex: 2},
		},
		LogisticsInfo: []entities.LogisticsInfo{
			{ItemIndex: 0, ItemID: "A", SelectedSla: "Retirada (P1)", ShipsTo: []string{"BRA"}, Slas: []entities.Sla{pickupSla("Retirada (P1)", "P1", "1"), deliverySla("Normal")}},
			{ItemIndex: 1, ItemID: "B", ShipsTo: []string{"BRA", "ARG"}, Slas: []entities.Sla{pickupSla("Retirada (P2)", "P2", "1")}},
			{ItemIndex: 2, ItemID: "C", ShipsTo: []string{"ARG"}, Slas: []entities.Sla{deliverySla("Normal")}},
		},
		PickupPoints: []entities.PickupPoint{
			{
				ID:   "P1",
				Name: "Store P1",
				BusinessHours: []entities.BusinessHour{
					{DayOfWeek: time.Monday, OpeningTime: "09:00", ClosingTime: "18:00"},
				},
			},
			{ID: "P2", Name: "Store P2"},
		},
		BestPickupOptions: []entities.PickupOption{
			option("Retirada (P1)", "P1", true),
			option("Retirada (P2)", "P2", true),
			option("Retirada (P3)", "P3", false),
		},
		ResidentialAddress: entities.Address{PostalCode: "22250-040", City: "Rio de Janeiro", Street: "Praia de Botafogo"},
		SearchAddress:      entities.Address{City: "Rio de Janeiro", Neighborhood: "Botafogo"},
		ShouldUseMaps:      true,
	}
}

func itemIDs(items []entities.Item) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

type manualTimer struct {
	fn      func()
	delay   time.Duration
	stopped bool
}

func (t *manualTimer) Stop() bool {
	active := !t.stopped
	t.stopped = true
	return active
}

func (t *manualTimer) Fire() {
	if !t.stopped {
		t.stopped = true
		t.fn()
	}
}

type manualScheduler struct {
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) pickup.Timer {
	t := &manualTimer{fn: f, delay: d}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) last() *manualTimer {
	if len(s.timers) == 0 {
		return nil
	}
	return s.timers[len(s.timers)-1]
}
