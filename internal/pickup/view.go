package pickup

import "github.com/SergeyBogomolovv/pickup-point-service/internal/entities"

// View данные для слоя отображения модалки
type View struct {
	State     entities.SidebarState
	MapStatus entities.MapStatus
	Closed    bool

	Selected    *entities.PickupOption
	PickupPoint *entities.PickupPoint
	Candidates  []entities.PickupOption
	Position    Position

	Available   []entities.Item
	Unavailable []entities.Item

	BusinessHours   []entities.BusinessHour
	AdditionalInfo  string
	Confirmable     bool
	ConfirmButtonID string
	IsSelectedSla   bool

	Layout Layout
}

type Layout struct {
	DetailsActive  bool
	ShowSearchForm bool
	ShowTabs       bool
	SearchLabel    string
	ShipsTo        []string
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.sidebar.State()
	details := state == entities.SidebarDetails
	hasPickups := c.index.Len() > 0

	v := View{
		State:           state,
		MapStatus:       c.sidebar.MapStatus(),
		Closed:          c.sidebar.Closed(),
		Selected:        c.selected,
		PickupPoint:     c.info,
		Candidates:      c.index.Candidates(),
		Position:        c.index.Position(c.selected),
		Available:       c.partition.Available,
		Unavailable:     c.partition.Unavailable,
		BusinessHours:   businessHours(c.info),
		Confirmable:     c.selected.Confirmable(),
		ConfirmButtonID: ConfirmButtonID(c.selected),
		IsSelectedSla:   IsSelectedSla(c.cart.LogisticsInfo, c.selected),
		Layout: Layout{
			DetailsActive:  details,
			ShowSearchForm: !details && c.cart.ShouldUseMaps,
			ShowTabs:       !details && hasPickups && c.cart.ShouldUseMaps,
			SearchLabel:    c.cart.SearchAddress.Label(),
			ShipsTo:        ShipsTo(c.cart.LogisticsInfo),
		},
	}
	if c.selected != nil && c.selected.StoreInfo != nil {
		v.AdditionalInfo = c.selected.StoreInfo.AdditionalInfo
	}
	return v
}

// businessHours nil, если запись пункта неизвестна или часы не опубликованы.
func businessHours(info *entities.PickupPoint) []entities.BusinessHour {
	if info == nil || len(info.BusinessHours) == 0 {
		return nil
	}
	return info.BusinessHours
}
