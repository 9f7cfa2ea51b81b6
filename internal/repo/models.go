package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
)

type PickupPoint struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	AddressType    sql.NullString `db:"address_type"`
	ReceiverName   sql.NullString `db:"receiver_name"`
	PostalCode     sql.NullString `db:"postal_code"`
	City           sql.NullString `db:"city"`
	State          sql.NullString `db:"state"`
	Country        sql.NullString `db:"country"`
	Street         sql.NullString `db:"street"`
	Number         sql.NullString `db:"number"`
	Neighborhood   sql.NullString `db:"neighborhood"`
	Complement     sql.NullString `db:"complement"`
	Reference      sql.NullString `db:"reference"`
	Latitude       float64        `db:"latitude"`
	Longitude      float64        `db:"longitude"`
	IsPickupStore  bool           `db:"is_pickup_store"`
	FriendlyName   sql.NullString `db:"friendly_name"`
	AdditionalInfo sql.NullString `db:"additional_info"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type BusinessHour struct {
	PickupPointID string `db:"pickup_point_id"`
	DayOfWeek     int    `db:"day_of_week"`
	OpeningTime   string `db:"opening_time"`
	ClosingTime   string `db:"closing_time"`
}

type ShippingSelection struct {
	ID                 int64     `db:"id"`
	PickupOptionID     string    `db:"pickup_option_id"`
	PickupPointID      string    `db:"pickup_point_id"`
	ResidentialAddress []byte    `db:"residential_address"`
	LogisticsInfo      []byte    `db:"logistics_info"`
	CreatedAt          time.Time `db:"created_at"`
}

func BusinessHourToEntity(h BusinessHour) entities.BusinessHour {
	return entities.BusinessHour{
		DayOfWeek:   time.Weekday(h.DayOfWeek),
		OpeningTime: h.OpeningTime,
		ClosingTime: h.ClosingTime,
	}
}

func PickupPointToEntity(p PickupPoint, hours []BusinessHour) entities.PickupPoint {
	point := entities.PickupPoint{
		ID:   p.ID,
		Name: p.Name,
		Address: entities.Address{
			AddressType:  nullStringToString(p.AddressType),
			ReceiverName: nullStringToString(p.ReceiverName),
			PostalCode:   nullStringToString(p.PostalCode),
			City:         nullStringToString(p.City),
			State:        nullStringToString(p.State),
			Country:      nullStringToString(p.Country),
			Street:       nullStringToString(p.Street),
			Number:       nullStringToString(p.Number),
			Neighborhood: nullStringToString(p.Neighborhood),
			Complement:   nullStringToString(p.Complement),
			Reference:    nullStringToString(p.Reference),
			Geo:          &entities.GeoCoordinates{Latitude: p.Latitude, Longitude: p.Longitude},
		},
		Location: entities.GeoCoordinates{Latitude: p.Latitude, Longitude: p.Longitude},
	}

	if p.IsPickupStore || p.FriendlyName.Valid || p.AdditionalInfo.Valid {
		point.StoreInfo = &entities.StoreInfo{
			IsPickupStore:  p.IsPickupStore,
			FriendlyName:   nullStringToString(p.FriendlyName),
			AdditionalInfo: nullStringToString(p.AdditionalInfo),
		}
	}

	if len(hours) > 0 {
		point.BusinessHours = make([]entities.BusinessHour, 0, len(hours))
		for _, h := range hours {
			point.BusinessHours = append(point.BusinessHours, BusinessHourToEntity(h))
		}
	}

	return point
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
