package entities

type DeliveryChannel string

const (
	DeliveryChannelPickup   DeliveryChannel = "pickup-in-point"
	DeliveryChannelDelivery DeliveryChannel = "delivery"
)

// Item строка корзины
type Item struct {
	ID       string
	SellerID string
	Quantity int
	Name     string
	ImageURL string

	// ссылка на LogisticsInfo.ItemIndex
	LogisticsIndex int
}

// Sla вариант доставки для позиции корзины
type Sla struct {
	ID               string
	Name             string
	DeliveryChannel  DeliveryChannel
	PickupPointID    string
	SellerID         string
	Price            int
	ShippingEstimate string
}

func (s Sla) IsPickup() bool {
	return s.DeliveryChannel == DeliveryChannelPickup
}

type LogisticsInfo struct {
	ItemIndex   int
	ItemID      string
	SelectedSla string
	ShipsTo     []string
	Slas        []Sla
}

type StorePreferences struct {
	CountryCode    string
	CurrencyCode   string
	CurrencySymbol string
	TimeZone       string
}

// Cart снимок данных корзины, с которым работает модалка выбора пункта самовывоза.
// Ядро его не изменяет, а только пересчитывает производные данные.
type Cart struct {
	Items              []Item
	LogisticsInfo      []LogisticsInfo
	PickupPoints       []PickupPoint
	BestPickupOptions  []PickupOption
	SellerID           *string
	ResidentialAddress Address
	SearchAddress      Address
	StorePreferences   StorePreferences
	ShouldUseMaps      bool
}
