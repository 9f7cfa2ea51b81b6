package handler

import (
	"time"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/service"
)

// Address адрес покупателя или пункта
type Address struct {
	AddressType  string          `json:"address_type,omitempty"`
	ReceiverName string          `json:"receiver_name,omitempty"`
	PostalCode   string          `json:"postal_code,omitempty"`
	City         string          `json:"city,omitempty"`
	State        string          `json:"state,omitempty"`
	Country      string          `json:"country,omitempty" validate:"omitempty,len=3"`
	Street       string          `json:"street,omitempty"`
	Number       string          `json:"number,omitempty"`
	Neighborhood string          `json:"neighborhood,omitempty"`
	Complement   string          `json:"complement,omitempty"`
	Reference    string          `json:"reference,omitempty"`
	Geo          *GeoCoordinates `json:"geo,omitempty"`
}

type GeoCoordinates struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// BusinessHour часы работы пункта, day_of_week 0 воскресенье
type BusinessHour struct {
	DayOfWeek   int    `json:"day_of_week" validate:"gte=0,lte=6"`
	OpeningTime string `json:"opening_time" validate:"required,datetime=15:04"`
	ClosingTime string `json:"closing_time" validate:"required,datetime=15:04"`
}

type StoreInfo struct {
	IsPickupStore  bool   `json:"is_pickup_store"`
	FriendlyName   string `json:"friendly_name,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
}

// PickupPoint пункт самовывоза из каталога
type PickupPoint struct {
	ID            string         `json:"id" validate:"required"`
	Name          string         `json:"name" validate:"required"`
	Address       Address        `json:"address"`
	Location      GeoCoordinates `json:"location"`
	BusinessHours []BusinessHour `json:"business_hours,omitempty" validate:"dive"`
	StoreInfo     *StoreInfo     `json:"store_info,omitempty"`
}

// PickupOption вариант самовывоза
type PickupOption struct {
	ID            string     `json:"id" validate:"required_without=PickupPointID"`
	PickupPointID string     `json:"pickup_point_id,omitempty"`
	Name          string     `json:"name,omitempty"`
	Address       Address    `json:"address"`
	Distance      float64    `json:"distance,omitempty" validate:"gte=0"`
	StoreInfo     *StoreInfo `json:"store_info,omitempty"`
}

type Item struct {
	ID             string `json:"id" validate:"required"`
	SellerID       string `json:"seller_id,omitempty"`
	Quantity       int    `json:"quantity" validate:"gte=0"`
	Name           string `json:"name,omitempty"`
	ImageURL       string `json:"image_url,omitempty" validate:"omitempty,url"`
	LogisticsIndex int    `json:"logistics_index" validate:"gte=0"`
}

type Sla struct {
	ID               string `json:"id" validate:"required"`
	Name             string `json:"name,omitempty"`
	DeliveryChannel  string `json:"delivery_channel" validate:"required,oneof=pickup-in-point delivery"`
	PickupPointID    string `json:"pickup_point_id,omitempty"`
	SellerID         string `json:"seller_id,omitempty"`
	Price            int    `json:"price"`
	ShippingEstimate string `json:"shipping_estimate,omitempty"`
}

type LogisticsInfo struct {
	ItemIndex   int      `json:"item_index" validate:"gte=0"`
	ItemID      string   `json:"item_id,omitempty"`
	SelectedSla string   `json:"selected_sla,omitempty"`
	ShipsTo     []string `json:"ships_to,omitempty"`
	Slas        []Sla    `json:"slas" validate:"dive"`
}

type StorePreferences struct {
	CountryCode    string `json:"country_code,omitempty"`
	CurrencyCode   string `json:"currency_code,omitempty"`
	CurrencySymbol string `json:"currency_symbol,omitempty"`
	TimeZone       string `json:"time_zone,omitempty"`
}

// Cart снимок корзины, с которым открывается модалка
type Cart struct {
	Items              []Item           `json:"items" validate:"dive"`
	LogisticsInfo      []LogisticsInfo  `json:"logistics_info" validate:"dive"`
	PickupPoints       []PickupPoint    `json:"pickup_points" validate:"dive"`
	BestPickupOptions  []PickupOption   `json:"best_pickup_options" validate:"dive"`
	SellerID           *string          `json:"seller_id,omitempty"`
	ResidentialAddress Address          `json:"residential_address"`
	SearchAddress      Address          `json:"search_address"`
	StorePreferences   StorePreferences `json:"store_preferences"`
	ShouldUseMaps      bool             `json:"should_use_maps"`
}

type OpenSessionRequest struct {
	Cart     Cart          `json:"cart"`
	Selected *PickupOption `json:"selected,omitempty"`
	State    string        `json:"state,omitempty" validate:"omitempty,oneof=INITIAL LIST SEARCHING DETAILS ERROR_NOT_FOUND ERROR_COULD_NOT_GET_LOCATION"`
}

type SearchRequest struct {
	PostalCode  string          `json:"postal_code,omitempty"`
	City        string          `json:"city,omitempty"`
	Street      string          `json:"street,omitempty"`
	Geolocation bool            `json:"geolocation"`
	Location    *GeoCoordinates `json:"location,omitempty"`
	Limit       int             `json:"limit,omitempty" validate:"gte=0,lte=100"`
}

type SelectRequest struct {
	OptionID string `json:"option_id" validate:"required"`
}

type KeyRequest struct {
	Code string `json:"code" validate:"required"`
}

type MapStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=SHOW_MAP HIDE_MAP"`
}

type UpdateCartRequest struct {
	Cart Cart `json:"cart"`
}

type Position struct {
	Index   int  `json:"index"`
	Total   int  `json:"total"`
	IsFirst bool `json:"is_first"`
	IsLast  bool `json:"is_last"`
}

type Layout struct {
	DetailsActive  bool     `json:"details_active"`
	ShowSearchForm bool     `json:"show_search_form"`
	ShowTabs       bool     `json:"show_tabs"`
	SearchLabel    string   `json:"search_label,omitempty"`
	ShipsTo        []string `json:"ships_to"`
}

// Session состояние модалки выбора пункта
type Session struct {
	ID               string         `json:"id"`
	State            string         `json:"state"`
	MapStatus        string         `json:"map_status"`
	Closed           bool           `json:"closed"`
	Selected         *PickupOption  `json:"selected,omitempty"`
	PickupPoint      *PickupPoint   `json:"pickup_point,omitempty"`
	Candidates       []PickupOption `json:"candidates"`
	Position         Position       `json:"position"`
	AvailableItems   []Item         `json:"available_items"`
	UnavailableItems []Item         `json:"unavailable_items"`
	BusinessHours    []BusinessHour `json:"business_hours,omitempty"`
	AdditionalInfo   string         `json:"additional_info,omitempty"`
	Confirmable      bool           `json:"confirmable"`
	ConfirmButtonID  string         `json:"confirm_button_id,omitempty"`
	IsSelectedSla    bool           `json:"is_selected_sla"`
	ScrollTarget     string         `json:"scroll_target,omitempty"`
	Layout           Layout         `json:"layout"`
}

func AddressJSONToEntity(a Address) entities.Address {
	addr := entities.Address{
		AddressType:  a.AddressType,
		ReceiverName: a.ReceiverName,
		PostalCode:   a.PostalCode,
		City:         a.City,
		State:        a.State,
		Country:      a.Country,
		Street:       a.Street,
		Number:       a.Number,
		Neighborhood: a.Neighborhood,
		Complement:   a.Complement,
		Reference:    a.Reference,
	}
	if a.Geo != nil {
		addr.Geo = &entities.GeoCoordinates{Latitude: a.Geo.Latitude, Longitude: a.Geo.Longitude}
	}
	return addr
}

func AddressEntityToJSON(a entities.Address) Address {
	addr := Address{
		AddressType:  a.AddressType,
		ReceiverName: a.ReceiverName,
		PostalCode:   a.PostalCode,
		City:         a.City,
		State:        a.State,
		Country:      a.Country,
		Street:       a.Street,
		Number:       a.Number,
		Neighborhood: a.Neighborhood,
		Complement:   a.Complement,
		Reference:    a.Reference,
	}
	if a.Geo != nil {
		addr.Geo = &GeoCoordinates{Latitude: a.Geo.Latitude, Longitude: a.Geo.Longitude}
	}
	return addr
}

func BusinessHoursJSONToEntity(hours []BusinessHour) []entities.BusinessHour {
	if len(hours) == 0 {
		return nil
	}
	res := make([]entities.BusinessHour, 0, len(hours))
	for _, h := range hours {
		res = append(res, entities.BusinessHour{
			DayOfWeek:   time.Weekday(h.DayOfWeek),
			OpeningTime: h.OpeningTime,
			ClosingTime: h.ClosingTime,
		})
	}
	return res
}

func BusinessHoursEntityToJSON(hours []entities.BusinessHour) []BusinessHour {
	if len(hours) == 0 {
		return nil
	}
	res := make([]BusinessHour, 0, len(hours))
	for _, h := range hours {
		res = append(res, BusinessHour{
			DayOfWeek:   int(h.DayOfWeek),
			OpeningTime: h.OpeningTime,
			ClosingTime: h.ClosingTime,
		})
	}
	return res
}

func storeInfoJSONToEntity(s *StoreInfo) *entities.StoreInfo {
	if s == nil {
		return nil
	}
	return &entities.StoreInfo{
		IsPickupStore:  s.IsPickupStore,
		FriendlyName:   s.FriendlyName,
		AdditionalInfo: s.AdditionalInfo,
	}
}

func storeInfoEntityToJSON(s *entities.StoreInfo) *StoreInfo {
	if s == nil {
		return nil
	}
	return &StoreInfo{
		IsPickupStore:  s.IsPickupStore,
		FriendlyName:   s.FriendlyName,
		AdditionalInfo: s.AdditionalInfo,
	}
}

func PickupPointJSONToEntity(p PickupPoint) entities.PickupPoint {
	return entities.PickupPoint{
		ID:            p.ID,
		Name:          p.Name,
		Address:       AddressJSONToEntity(p.Address),
		Location:      entities.GeoCoordinates{Latitude: p.Location.Latitude, Longitude: p.Location.Longitude},
		BusinessHours: BusinessHoursJSONToEntity(p.BusinessHours),
		StoreInfo:     storeInfoJSONToEntity(p.StoreInfo),
	}
}

func PickupPointEntityToJSON(p entities.PickupPoint) PickupPoint {
	return PickupPoint{
		ID:            p.ID,
		Name:          p.Name,
		Address:       AddressEntityToJSON(p.Address),
		Location:      GeoCoordinates{Latitude: p.Location.Latitude, Longitude: p.Location.Longitude},
		BusinessHours: BusinessHoursEntityToJSON(p.BusinessHours),
		StoreInfo:     storeInfoEntityToJSON(p.StoreInfo),
	}
}

func PickupOptionJSONToEntity(o PickupOption) entities.PickupOption {
	return entities.PickupOption{
		ID:            o.ID,
		PickupPointID: o.PickupPointID,
		Name:          o.Name,
		Address:       AddressJSONToEntity(o.Address),
		Distance:      o.Distance,
		StoreInfo:     storeInfoJSONToEntity(o.StoreInfo),
	}
}

func PickupOptionEntityToJSON(o entities.PickupOption) PickupOption {
	return PickupOption{
		ID:            o.ID,
		PickupPointID: o.PickupPointID,
		Name:          o.Name,
		Address:       AddressEntityToJSON(o.Address),
		Distance:      o.Distance,
		StoreInfo:     storeInfoEntityToJSON(o.StoreInfo),
	}
}

func ItemsEntityToJSON(items []entities.Item) []Item {
	res := make([]Item, 0, len(items))
	for _, it := range items {
		res = append(res, Item{
			ID:             it.ID,
			SellerID:       it.SellerID,
			Quantity:       it.Quantity,
			Name:           it.Name,
			ImageURL:       it.ImageURL,
			LogisticsIndex: it.LogisticsIndex,
		})
	}
	return res
}

func CartJSONToEntity(c Cart) entities.Cart {
	cart := entities.Cart{
		SellerID:           c.SellerID,
		ResidentialAddress: AddressJSONToEntity(c.ResidentialAddress),
		SearchAddress:      AddressJSONToEntity(c.SearchAddress),
		StorePreferences: entities.StorePreferences{
			CountryCode:    c.StorePreferences.CountryCode,
			CurrencyCode:   c.StorePreferences.CurrencyCode,
			CurrencySymbol: c.StorePreferences.CurrencySymbol,
			TimeZone:       c.StorePreferences.TimeZone,
		},
		ShouldUseMaps: c.ShouldUseMaps,
	}

	cart.Items = make([]entities.Item, 0, len(c.Items))
	for _, it := range c.Items {
		cart.Items = append(cart.Items, entities.Item{
			ID:             it.ID,
			SellerID:       it.SellerID,
			Quantity:       it.Quantity,
			Name:           it.Name,
			ImageURL:       it.ImageURL,
			LogisticsIndex: it.LogisticsIndex,
		})
	}

	cart.LogisticsInfo = make([]entities.LogisticsInfo, 0, len(c.LogisticsInfo))
	for _, li := range c.LogisticsInfo {
		info := entities.LogisticsInfo{
			ItemIndex:   li.ItemIndex,
			ItemID:      li.ItemID,
			SelectedSla: li.SelectedSla,
			ShipsTo:     li.ShipsTo,
			Slas:        make([]entities.Sla, 0, len(li.Slas)),
		}
		for _, sla := range li.Slas {
			info.Slas = append(info.Slas, entities.Sla{
				ID:               sla.ID,
				Name:             sla.Name,
				DeliveryChannel:  entities.DeliveryChannel(sla.DeliveryChannel),
				PickupPointID:    sla.PickupPointID,
				SellerID:         sla.SellerID,
				Price:            sla.Price,
				ShippingEstimate: sla.ShippingEstimate,
			})
		}
		cart.LogisticsInfo = append(cart.LogisticsInfo, info)
	}

	cart.PickupPoints = make([]entities.PickupPoint, 0, len(c.PickupPoints))
	for _, p := range c.PickupPoints {
		cart.PickupPoints = append(cart.PickupPoints, PickupPointJSONToEntity(p))
	}

	cart.BestPickupOptions = make([]entities.PickupOption, 0, len(c.BestPickupOptions))
	for _, o := range c.BestPickupOptions {
		cart.BestPickupOptions = append(cart.BestPickupOptions, PickupOptionJSONToEntity(o))
	}

	return cart
}

func SearchJSONToEntity(r SearchRequest) entities.SearchQuery {
	q := entities.SearchQuery{
		PostalCode:  r.PostalCode,
		City:        r.City,
		Street:      r.Street,
		Geolocation: r.Geolocation,
		Limit:       r.Limit,
	}
	if r.Location != nil {
		q.Location = &entities.GeoCoordinates{Latitude: r.Location.Latitude, Longitude: r.Location.Longitude}
	}
	return q
}

func SessionViewToJSON(v service.SessionView) Session {
	s := Session{
		ID:        v.ID,
		State:     v.State.String(),
		MapStatus: string(v.MapStatus),
		Closed:    v.Closed,
		Position: Position{
			Index:   v.Position.Index,
			Total:   v.Position.Total,
			IsFirst: v.Position.IsFirst,
			IsLast:  v.Position.IsLast,
		},
		AvailableItems:   ItemsEntityToJSON(v.Available),
		UnavailableItems: ItemsEntityToJSON(v.Unavailable),
		BusinessHours:    BusinessHoursEntityToJSON(v.BusinessHours),
		AdditionalInfo:   v.AdditionalInfo,
		Confirmable:      v.Confirmable,
		ConfirmButtonID:  v.ConfirmButtonID,
		IsSelectedSla:    v.IsSelectedSla,
		ScrollTarget:     v.ScrollTarget,
		Layout: Layout{
			DetailsActive:  v.Layout.DetailsActive,
			ShowSearchForm: v.Layout.ShowSearchForm,
			ShowTabs:       v.Layout.ShowTabs,
			SearchLabel:    v.Layout.SearchLabel,
			ShipsTo:        v.Layout.ShipsTo,
		},
	}

	if v.Selected != nil {
		selected := PickupOptionEntityToJSON(*v.Selected)
		s.Selected = &selected
	}
	if v.PickupPoint != nil {
		point := PickupPointEntityToJSON(*v.PickupPoint)
		s.PickupPoint = &point
	}

	s.Candidates = make([]PickupOption, 0, len(v.Candidates))
	for _, c := range v.Candidates {
		s.Candidates = append(s.Candidates, PickupOptionEntityToJSON(c))
	}
	if s.Layout.ShipsTo == nil {
		s.Layout.ShipsTo = []string{}
	}

	return s
}
