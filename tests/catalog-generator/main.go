package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type GeoCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Address struct {
	PostalCode   string          `json:"postal_code"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	Country      string          `json:"country"`
	Street       string          `json:"street"`
	Number       string          `json:"number"`
	Neighborhood string          `json:"neighborhood"`
	Geo          *GeoCoordinates `json:"geo,omitempty"`
}

type BusinessHour struct {
	DayOfWeek   int    `json:"day_of_week"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

type StoreInfo struct {
	IsPickupStore  bool   `json:"is_pickup_store"`
	FriendlyName   string `json:"friendly_name"`
	AdditionalInfo string `json:"additional_info"`
}

type PickupPoint struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Address       Address        `json:"address"`
	Location      GeoCoordinates `json:"location"`
	BusinessHours []BusinessHour `json:"business_hours"`
	StoreInfo     *StoreInfo     `json:"store_info,omitempty"`
}

var cities = []string{"Rio de Janeiro", "Sao Paulo", "Belo Horizonte", "Curitiba"}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	s := make([]rune, n)
	for i := range s {
		s[i] = letters[rand.Intn(len(letters))]
	}
	return string(s)
}

func generateRandomPickupPoint() PickupPoint {
	loc := GeoCoordinates{
		Latitude:  -22.9 + rand.Float64()*0.2,
		Longitude: -43.2 + rand.Float64()*0.2,
	}

	hours := make([]BusinessHour, 0, 7)
	for day := 1; day <= 5+rand.Intn(2); day++ {
		hours = append(hours, BusinessHour{
			DayOfWeek:   day,
			OpeningTime: fmt.Sprintf("%02d:00", 8+rand.Intn(3)),
			ClosingTime: fmt.Sprintf("%02d:00", 17+rand.Intn(5)),
		})
	}

	point := PickupPoint{
		ID:   "Retirada (" + randomString(6) + ")",
		Name: "Store " + randomString(4),
		Address: Address{
			PostalCode:   fmt.Sprintf("%05d-%03d", rand.Intn(99999), rand.Intn(999)),
			City:         cities[rand.Intn(len(cities))],
			State:        "RJ",
			Country:      "BRA",
			Street:       fmt.Sprintf("Rua %s", randomString(6)),
			Number:       fmt.Sprintf("%d", rand.Intn(500)+1),
			Neighborhood: "Bairro " + randomString(4),
			Geo:          &loc,
		},
		Location:      loc,
		BusinessHours: hours,
	}
	if rand.Intn(2) == 0 {
		point.StoreInfo = &StoreInfo{
			IsPickupStore:  true,
			FriendlyName:   point.Name,
			AdditionalInfo: "Retire no balcao " + randomString(3),
		}
	}
	return point
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "pickup-points",
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			point := generateRandomPickupPoint()
			data, _ := json.Marshal(point)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(point.ID), Value: data}); err != nil {
				log.Println("failed to write pickup point:", err)
				continue
			}
			log.Println("pickup point generated", point.ID)
		case <-ctx.Done():
			return
		}
	}
}
