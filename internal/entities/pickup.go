package entities

import "time"

type Address struct {
	AddressType  string
	ReceiverName string
	PostalCode   string
	City         string
	State        string
	Country      string
	Street       string
	Number       string
	Neighborhood string
	Complement   string
	Reference    string
	Geo          *GeoCoordinates
}

// Label строка для отображения адреса поиска: улица, затем "город > район", затем город, затем индекс.
func (a Address) Label() string {
	switch {
	case a.Street != "":
		return a.Street
	case a.City != "" && a.Neighborhood != "":
		return a.City + " > " + a.Neighborhood
	case a.City != "":
		return a.City
	default:
		return a.PostalCode
	}
}

type GeoCoordinates struct {
	Latitude  float64
	Longitude float64
}

type BusinessHour struct {
	DayOfWeek   time.Weekday
	OpeningTime string
	ClosingTime string
}

type StoreInfo struct {
	IsPickupStore  bool
	FriendlyName   string
	AdditionalInfo string
}

// PickupPoint пункт самовывоза из каталога
type PickupPoint struct {
	ID       string
	Name     string
	Address  Address
	Location GeoCoordinates

	// пустой список означает, что часы работы неизвестны
	BusinessHours []BusinessHour
	StoreInfo     *StoreInfo
}

// Option кандидат для навигации, построенный из записи каталога.
func (p PickupPoint) Option() PickupOption {
	return PickupOption{
		ID:            p.ID,
		PickupPointID: p.ID,
		Name:          p.Name,
		Address:       p.Address,
		StoreInfo:     p.StoreInfo,
	}
}

// PickupOption вариант самовывоза, который видит покупатель: кандидат в списке или текущий выбор.
type PickupOption struct {
	ID            string
	PickupPointID string
	Name          string
	Address       Address
	Distance      float64
	StoreInfo     *StoreInfo
}

// Confirmable только пункты с информацией магазина можно подтвердить.
func (o *PickupOption) Confirmable() bool {
	return o != nil && o.StoreInfo != nil
}

type KeyKind int

const (
	KeyByID KeyKind = iota
	KeyByPickupPointID
)

// LookupKey ключ поиска варианта: у выбора может быть заполнен ID или только PickupPointID.
type LookupKey struct {
	Kind  KeyKind
	Value string
}

func (o PickupOption) Key() LookupKey {
	if o.ID != "" {
		return LookupKey{Kind: KeyByID, Value: o.ID}
	}
	return LookupKey{Kind: KeyByPickupPointID, Value: o.PickupPointID}
}

func (k LookupKey) Matches(other LookupKey) bool {
	return k.Value != "" && k.Value == other.Value
}

// SameSelection сравнивает два выбора по ключу и PickupPointID; два пустых выбора равны.
func SameSelection(a, b *PickupOption) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key() && a.PickupPointID == b.PickupPointID
}
