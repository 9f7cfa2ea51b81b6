package service_test

import (
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/pickup"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCart() entities.Cart {
	return entities.Cart{
		Items: []entities.Item{
			{ID: "A", SellerID: "1", Quantity: 1, LogisticsIndex: 0},
			{ID: "B", SellerID: "1", Quantity: 1, LogisticsIndex: 1},
		},
		LogisticsInfo: []entities.LogisticsInfo{
			{ItemIndex: 0, ItemID: "A", SelectedSla: "Normal", Slas: []entities.Sla{
				{ID: "Retirada (P1)", DeliveryChannel: entities.DeliveryChannelPickup, PickupPointID: "P1", SellerID: "1"},
				{ID: "Normal", DeliveryChannel: entities.DeliveryChannelDelivery},
			}},
			{ItemIndex: 1, ItemID: "B", Slas: []entities.Sla{
				{ID: "Retirada (P2)", DeliveryChannel: entities.DeliveryChannelPickup, PickupPointID: "P2", SellerID: "1"},
			}},
		},
		PickupPoints: []entities.PickupPoint{
			{ID: "P1", Name: "Store P1", BusinessHours: []entities.BusinessHour{
				{DayOfWeek: time.Tuesday, OpeningTime: "10:00", ClosingTime: "19:00"},
			}},
			{ID: "P2", Name: "Store P2"},
		},
		BestPickupOptions: []entities.PickupOption{
			{ID: "Retirada (P1)", PickupPointID: "P1", Name: "Store P1", StoreInfo: &entities.StoreInfo{IsPickupStore: true}},
			{ID: "Retirada (P2)", PickupPointID: "P2", Name: "Store P2", StoreInfo: &entities.StoreInfo{IsPickupStore: true}},
		},
		ResidentialAddress: entities.Address{PostalCode: "01310-100", City: "São Paulo"},
		ShouldUseMaps:      true,
	}
}

func testPoints() []entities.PickupPoint {
	return []entities.PickupPoint{
		{
			ID:       "P9",
			Name:     "Store P9",
			Address:  entities.Address{PostalCode: "01310-100", City: "São Paulo", Street: "Av. Paulista"},
			Location: entities.GeoCoordinates{Latitude: -23.56, Longitude: -46.65},
			BusinessHours: []entities.BusinessHour{
				{DayOfWeek: time.Monday, OpeningTime: "08:00", ClosingTime: "20:00"},
			},
			StoreInfo: &entities.StoreInfo{IsPickupStore: true, FriendlyName: "Paulista"},
		},
	}
}

type manualTimer struct {
	fn      func()
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

func (s *manualScheduler) AfterFunc(_ time.Duration, f func()) pickup.Timer {
	t := &manualTimer{fn: f}
	s.timers = append(s.timers, t)
	return t
}
