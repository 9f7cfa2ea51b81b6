package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

// SearchQuery запрос поиска пунктов по адресу или по геолокации покупателя
type SearchQuery struct {
	PostalCode  string
	City        string
	Street      string
	Geolocation bool
	Location    *GeoCoordinates
	Limit       int
}

// SearchResult результат поиска, хранится в кэше в gob
type SearchResult struct {
	Points []PickupPoint
}

func (r *SearchResult) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *SearchResult) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(r)
}

// ShippingSelection подтвержденный выбор пункта самовывоза
type ShippingSelection struct {
	ID                 int64
	PickupOptionID     string
	PickupPointID      string
	ResidentialAddress Address
	LogisticsInfo      []LogisticsInfo
	CreatedAt          time.Time
}

func init() {
	gob.Register(SearchResult{})
	gob.Register(PickupPoint{})
}
