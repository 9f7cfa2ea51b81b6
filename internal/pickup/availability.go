package pickup

import "github.com/SergeyBogomolovv/pickup-point-service/internal/entities"

// Partition позиции корзины, разделенные по доступности в выбранном пункте
type Partition struct {
	Available   []entities.Item
	Unavailable []entities.Item
}

// PartitionItems делит позиции на доступные и недоступные в выбранном пункте самовывоза.
// Порядок позиций сохраняется. Без выбора (или без PickupPointID) все позиции недоступны.
// sellerID == nil означает, что продавец не учитывается.
func PartitionItems(items []entities.Item, logistics []entities.LogisticsInfo, selected *entities.PickupOption, sellerID *string) Partition {
	res := Partition{
		Available:   make([]entities.Item, 0, len(items)),
		Unavailable: make([]entities.Item, 0),
	}

	byIndex := make(map[int]entities.LogisticsInfo, len(logistics))
	for _, li := range logistics {
		byIndex[li.ItemIndex] = li
	}

	for _, item := range items {
		li, ok := byIndex[item.LogisticsIndex]
		if ok && availableAt(li, selected, sellerID) {
			res.Available = append(res.Available, item)
		} else {
			res.Unavailable = append(res.Unavailable, item)
		}
	}

	return res
}

func availableAt(li entities.LogisticsInfo, selected *entities.PickupOption, sellerID *string) bool {
	if selected == nil || selected.PickupPointID == "" {
		return false
	}
	for _, sla := range li.Slas {
		if !sla.IsPickup() || sla.PickupPointID != selected.PickupPointID {
			continue
		}
		if sellerID == nil || sla.SellerID == *sellerID {
			return true
		}
	}
	return false
}

// IsSelectedSla проверяет, выбран ли вариант уже в logistics info корзины.
func IsSelectedSla(logistics []entities.LogisticsInfo, selected *entities.PickupOption) bool {
	if selected == nil || selected.ID == "" {
		return false
	}
	for _, li := range logistics {
		if li.SelectedSla == selected.ID {
			return true
		}
	}
	return false
}

// ShipsTo список стран доставки без повторов, в порядке появления.
func ShipsTo(logistics []entities.LogisticsInfo) []string {
	seen := make(map[string]struct{})
	countries := make([]string, 0)
	for _, li := range logistics {
		for _, c := range li.ShipsTo {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			countries = append(countries, c)
		}
	}
	return countries
}
