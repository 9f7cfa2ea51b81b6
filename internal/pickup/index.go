package pickup

import "github.com/SergeyBogomolovv/pickup-point-service/internal/entities"

// Index упорядоченный список кандидатов для навигации (bestPickupOptions).
// Все операции безопасны для пустого списка и для выбора, которого нет в списке.
type Index struct {
	candidates []entities.PickupOption
}

func NewIndex(candidates []entities.PickupOption) *Index {
	return &Index{candidates: candidates}
}

func (x *Index) Len() int {
	return len(x.candidates)
}

func (x *Index) Candidates() []entities.PickupOption {
	return x.candidates
}

// IndexOf позиция выбора в списке или -1.
func (x *Index) IndexOf(selected *entities.PickupOption) int {
	if selected == nil {
		return -1
	}
	key := selected.Key()
	for i, c := range x.candidates {
		if c.Key().Matches(key) {
			return i
		}
	}
	return -1
}

func (x *Index) IsFirst(selected *entities.PickupOption) bool {
	return x.IndexOf(selected) == 0
}

// IsLast ложно для выбора вне списка, в том числе при пустом списке.
func (x *Index) IsLast(selected *entities.PickupOption) bool {
	i := x.IndexOf(selected)
	return i >= 0 && i == len(x.candidates)-1
}

func (x *Index) Next(selected *entities.PickupOption) *entities.PickupOption {
	i := x.IndexOf(selected)
	if i < 0 || i+1 >= len(x.candidates) {
		return nil
	}
	next := x.candidates[i+1]
	return &next
}

func (x *Index) Previous(selected *entities.PickupOption) *entities.PickupOption {
	i := x.IndexOf(selected)
	if i <= 0 {
		return nil
	}
	prev := x.candidates[i-1]
	return &prev
}

// Lookup ищет кандидата сначала по id варианта, затем по id пункта.
func (x *Index) Lookup(id string) *entities.PickupOption {
	if id == "" {
		return nil
	}
	for _, c := range x.candidates {
		if c.ID == id {
			found := c
			return &found
		}
	}
	for _, c := range x.candidates {
		if c.PickupPointID == id {
			found := c
			return &found
		}
	}
	return nil
}

type Position struct {
	Index   int
	Total   int
	IsFirst bool
	IsLast  bool
}

func (x *Index) Position(selected *entities.PickupOption) Position {
	i := x.IndexOf(selected)
	return Position{
		Index:   i,
		Total:   len(x.candidates),
		IsFirst: i == 0,
		IsLast:  i >= 0 && i == len(x.candidates)-1,
	}
}

// FindPoint ищет запись каталога по id пункта. nil означает, что детали пока неизвестны.
func FindPoint(points []entities.PickupPoint, pickupPointID string) *entities.PickupPoint {
	if pickupPointID == "" {
		return nil
	}
	for i := range points {
		if points[i].ID == pickupPointID {
			p := points[i]
			return &p
		}
	}
	return nil
}
