package pickup

import (
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
)

// Ticket эпоха поиска. Результат поиска применяется, только если его эпоха еще актуальна.
type Ticket uint64

// Sidebar конечный автомат панели модалки. Сам по себе не потокобезопасен,
// события сериализует Controller.
type Sidebar struct {
	state     entities.SidebarState
	mapStatus entities.MapStatus
	epoch     Ticket
	closed    bool

	// confirming выставляется на время сохранения выбора, остальные события отклоняются
	confirming bool
}

func NewSidebar(initial entities.SidebarState) *Sidebar {
	if initial == "" {
		initial = entities.SidebarInitial
	}
	return &Sidebar{
		state:     initial,
		mapStatus: entities.HideMap,
	}
}

func (s *Sidebar) State() entities.SidebarState {
	return s.state
}

func (s *Sidebar) MapStatus() entities.MapStatus {
	return s.mapStatus
}

func (s *Sidebar) Closed() bool {
	return s.closed
}

func (s *Sidebar) Confirming() bool {
	return s.confirming
}

// Mount без выбранного пункта всегда переводит панель в LIST.
func (s *Sidebar) Mount(hasSelection bool) {
	if s.closed {
		return
	}
	if !hasSelection {
		s.state = entities.SidebarList
	}
}

// SubmitSearch начинает новый поиск. Предыдущий незавершенный поиск становится устаревшим.
func (s *Sidebar) SubmitSearch() (Ticket, error) {
	if s.closed || s.confirming {
		return 0, s.invalid("search")
	}
	switch s.state {
	case entities.SidebarInitial, entities.SidebarList, entities.SidebarSearching,
		entities.SidebarErrorNotFound, entities.SidebarErrorCouldNotGetLocation:
	default:
		return 0, s.invalid("search")
	}
	s.epoch++
	s.state = entities.SidebarSearching
	return s.epoch, nil
}

// ResolveSearch применяет результат поиска. Возвращает false, если результат устарел
// или автомат уже закрыт.
func (s *Sidebar) ResolveSearch(t Ticket, found int, err error) bool {
	if s.closed || t != s.epoch || s.state != entities.SidebarSearching {
		return false
	}
	switch {
	case err == nil && found > 0:
		s.state = entities.SidebarList
	case err == nil, errors.Is(err, entities.ErrAddressNotFound):
		s.state = entities.SidebarErrorNotFound
	default:
		s.state = entities.SidebarErrorCouldNotGetLocation
	}
	return true
}

func (s *Sidebar) Select() error {
	if s.closed || s.confirming {
		return s.invalid("select")
	}
	switch s.state {
	case entities.SidebarInitial, entities.SidebarList, entities.SidebarDetails,
		entities.SidebarErrorNotFound, entities.SidebarErrorCouldNotGetLocation:
		s.state = entities.SidebarDetails
		return nil
	default:
		return s.invalid("select")
	}
}

func (s *Sidebar) Back() error {
	if s.closed || s.confirming || s.state != entities.SidebarDetails {
		return s.invalid("back")
	}
	s.state = entities.SidebarList
	return nil
}

// Navigate проверяет, что по кандидатам можно листать: только в DETAILS и не во время подтверждения.
func (s *Sidebar) Navigate() error {
	if s.closed || s.confirming || s.state != entities.SidebarDetails {
		return s.invalid("navigate")
	}
	return nil
}

// BeginConfirm блокирует автомат до Close или AbortConfirm. Подтверждать можно только из DETAILS.
func (s *Sidebar) BeginConfirm() error {
	if s.closed || s.confirming || s.state != entities.SidebarDetails {
		return s.invalid("confirm")
	}
	s.confirming = true
	return nil
}

// AbortConfirm снимает блокировку после неудачного сохранения, панель остается в DETAILS.
func (s *Sidebar) AbortConfirm() {
	s.confirming = false
}

func (s *Sidebar) SetMapStatus(status entities.MapStatus) {
	if s.closed {
		return
	}
	s.mapStatus = status
}

// Close разбирает автомат: все последующие события и результаты игнорируются.
func (s *Sidebar) Close() {
	s.closed = true
	s.confirming = false
	s.epoch++
}

func (s *Sidebar) invalid(trigger string) error {
	if s.closed {
		return fmt.Errorf("%w: %s after close", entities.ErrInvalidTransition, trigger)
	}
	if s.confirming {
		return fmt.Errorf("%w: %s during confirm", entities.ErrInvalidTransition, trigger)
	}
	return fmt.Errorf("%w: %s from %s", entities.ErrInvalidTransition, trigger, s.state)
}
