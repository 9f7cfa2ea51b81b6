package pickup

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
)

const DefaultScrollDelay = 100 * time.Millisecond

// Host модалка, в которой живет контроллер. Контроллер только сообщает ей об изменениях.
type Host interface {
	SetActiveSidebarState(state entities.SidebarState)
	SetSelectedPickupPoint(option *entities.PickupOption)
	CloseModal()
}

type Submitter interface {
	UpdateShippingData(ctx context.Context, address entities.Address, logistics []entities.LogisticsInfo, selection entities.PickupOption) error
}

type Analytics interface {
	EmitConfirmationEvent(ctx context.Context, selection entities.PickupOption)
}

type AddressResolver interface {
	ResolveAddress(ctx context.Context, query entities.SearchQuery) ([]entities.PickupPoint, error)
}

type Scroller interface {
	// ScrollIntoView возвращает false, если элемента нет.
	ScrollIntoView(elementID string) bool
}

type Timer interface {
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type Options struct {
	Logger    *slog.Logger
	Host      Host
	Submitter Submitter
	Analytics Analytics
	Scroller  Scroller
	Scheduler Scheduler
	Keyboard  *Keyboard

	ScrollDelay time.Duration
}

// Controller связывает автомат панели, индекс кандидатов и расчет доступности.
// Все события обрабатываются по одному под mu; вызовы внешних сервисов идут без блокировки.
type Controller struct {
	mu sync.Mutex

	logger      *slog.Logger
	host        Host
	submitter   Submitter
	analytics   Analytics
	scroller    Scroller
	scheduler   Scheduler
	keyboard    *Keyboard
	scrollDelay time.Duration

	cart     entities.Cart
	index    *Index
	sidebar  *Sidebar
	selected *entities.PickupOption

	partition  Partition
	info       *entities.PickupPoint
	recomputes int

	release     func()
	scrollTimer Timer
}

func NewController(opts Options, cart entities.Cart, selected *entities.PickupOption, initial entities.SidebarState) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = timeScheduler{}
	}
	keyboard := opts.Keyboard
	if keyboard == nil {
		keyboard = NewKeyboard()
	}
	delay := opts.ScrollDelay
	if delay <= 0 {
		delay = DefaultScrollDelay
	}

	c := &Controller{
		logger:      logger.With(slog.String("component", "pickup_controller")),
		host:        opts.Host,
		submitter:   opts.Submitter,
		analytics:   opts.Analytics,
		scroller:    opts.Scroller,
		scheduler:   scheduler,
		keyboard:    keyboard,
		scrollDelay: delay,
		cart:        cart,
		index:       NewIndex(cart.BestPickupOptions),
		sidebar:     NewSidebar(initial),
		selected:    selected,
	}
	c.recompute()
	return c
}

// Mount подключает клавиатуру и, если ничего не выбрано, переводит панель в LIST.
// Повторный Mount заменяет слушателя, а не добавляет второго.
func (c *Controller) Mount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sidebar.Closed() {
		return
	}

	c.sidebar.Mount(c.selected != nil)
	if c.selected == nil {
		c.host.SetActiveSidebarState(c.sidebar.State())
	}

	if c.release != nil {
		c.release()
	}
	c.release = c.keyboard.Attach(c.HandleKey)

	c.recompute()
}

// HandleKey листает кандидатов стрелками. Остальные клавиши игнорируются.
func (c *Controller) HandleKey(code string) error {
	switch code {
	case KeyArrowLeft:
		_, err := c.Previous()
		return err
	case KeyArrowRight:
		_, err := c.Next()
		return err
	}
	return nil
}

// Next выбирает следующего кандидата. false, если двигаться некуда.
func (c *Controller) Next() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.navigateLocked(c.index.Next)
}

func (c *Controller) Previous() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.navigateLocked(c.index.Previous)
}

func (c *Controller) navigateLocked(step func(*entities.PickupOption) *entities.PickupOption) (bool, error) {
	if err := c.sidebar.Navigate(); err != nil {
		return false, err
	}
	target := step(c.selected)
	if target == nil {
		return false, nil
	}
	c.changeSelection(target)
	return true, nil
}

func (c *Controller) Select(option entities.PickupOption) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.selectLocked(option)
}

func (c *Controller) SelectByID(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	option := c.index.Lookup(id)
	if option == nil {
		return fmt.Errorf("%w: %s", entities.ErrPickupOptionNotFound, id)
	}
	return c.selectLocked(*option)
}

func (c *Controller) selectLocked(option entities.PickupOption) error {
	if err := c.sidebar.Select(); err != nil {
		return err
	}
	c.host.SetActiveSidebarState(c.sidebar.State())
	c.changeSelection(&option)
	return nil
}

// Back возвращает к списку, сбрасывает выбор и после задержки прокручивает список
// к строке ранее выбранного пункта.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.sidebar.Back(); err != nil {
		return err
	}
	c.host.SetActiveSidebarState(c.sidebar.State())

	prev := c.selected
	c.changeSelection(nil)

	if prev != nil {
		c.scheduleScroll(CleanID(prev.ID))
	}
	return nil
}

// Confirm сохраняет выбор через Submitter. Пока идет сохранение, остальные события
// отклоняются с ErrInvalidTransition. Ошибка Submitter возвращается как есть,
// а панель остается в DETAILS, чтобы покупатель мог повторить.
func (c *Controller) Confirm(ctx context.Context) error {
	c.mu.Lock()
	if c.sidebar.Closed() {
		c.mu.Unlock()
		return fmt.Errorf("%w: confirm after close", entities.ErrInvalidTransition)
	}
	if c.sidebar.Confirming() {
		c.mu.Unlock()
		return fmt.Errorf("%w: confirm already in progress", entities.ErrInvalidTransition)
	}
	if !c.selected.Confirmable() {
		c.mu.Unlock()
		return entities.ErrNotConfirmable
	}
	if err := c.sidebar.BeginConfirm(); err != nil {
		c.mu.Unlock()
		return err
	}
	selection := *c.selected
	address := c.cart.ResidentialAddress
	logistics := c.cart.LogisticsInfo
	c.mu.Unlock()

	if err := c.submitter.UpdateShippingData(ctx, address, logistics, selection); err != nil {
		c.mu.Lock()
		c.sidebar.AbortConfirm()
		c.mu.Unlock()
		return err
	}

	if c.analytics != nil {
		c.analytics.EmitConfirmationEvent(ctx, selection)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sidebar.Closed() {
		return nil
	}
	c.host.CloseModal()
	c.teardownLocked()
	return nil
}

// Search переводит панель в SEARCHING, ищет пункты без блокировки и применяет результат.
// Возвращает false, если результат устарел или модалку закрыли во время поиска.
func (c *Controller) Search(ctx context.Context, resolver AddressResolver, query entities.SearchQuery) (bool, error) {
	ticket, err := c.BeginSearch()
	if err != nil {
		return false, err
	}
	points, err := resolver.ResolveAddress(ctx, query)
	return c.CompleteSearch(ticket, points, err), nil
}

func (c *Controller) BeginSearch() (Ticket, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ticket, err := c.sidebar.SubmitSearch()
	if err != nil {
		return 0, err
	}
	c.host.SetActiveSidebarState(c.sidebar.State())
	return ticket, nil
}

func (c *Controller) CompleteSearch(ticket Ticket, points []entities.PickupPoint, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.sidebar.ResolveSearch(ticket, len(points), err) {
		c.logger.Debug("stale search result dropped", slog.Uint64("ticket", uint64(ticket)))
		return false
	}
	c.host.SetActiveSidebarState(c.sidebar.State())

	if c.sidebar.State() == entities.SidebarList {
		c.cart = withSearchResults(c.cart, points)
		c.index = NewIndex(c.cart.BestPickupOptions)
		c.recompute()
	}
	return true
}

// UpdateCart заменяет снимок корзины. Производные данные пересчитываются всегда,
// даже если выбранный пункт не изменился.
func (c *Controller) UpdateCart(cart entities.Cart) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sidebar.Closed() {
		return
	}
	c.cart = cart
	c.index = NewIndex(cart.BestPickupOptions)
	c.recompute()
}

func (c *Controller) SetMapStatus(status entities.MapStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sidebar.SetMapStatus(status)
}

// Teardown отключает клавиатуру, отменяет отложенную прокрутку и закрывает автомат.
// Повторный вызов ничего не делает.
func (c *Controller) Teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.teardownLocked()
}

func (c *Controller) teardownLocked() {
	if c.sidebar.Closed() {
		return
	}
	c.sidebar.Close()
	if c.release != nil {
		c.release()
		c.release = nil
	}
	if c.scrollTimer != nil {
		c.scrollTimer.Stop()
		c.scrollTimer = nil
	}
}

func (c *Controller) changeSelection(next *entities.PickupOption) {
	prev := c.selected
	c.selected = next
	c.host.SetSelectedPickupPoint(next)
	c.onSelectionChange(prev, next)
}

func (c *Controller) onSelectionChange(prev, next *entities.PickupOption) {
	if entities.SameSelection(prev, next) {
		return
	}
	c.recompute()
}

func (c *Controller) recompute() {
	c.partition = PartitionItems(c.cart.Items, c.cart.LogisticsInfo, c.selected, c.cart.SellerID)
	c.info = nil
	if c.selected != nil {
		c.info = FindPoint(c.cart.PickupPoints, c.selected.PickupPointID)
	}
	c.recomputes++
}

func (c *Controller) scheduleScroll(elementID string) {
	if c.scrollTimer != nil {
		c.scrollTimer.Stop()
	}
	c.scrollTimer = c.scheduler.AfterFunc(c.scrollDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.sidebar.Closed() || c.scroller == nil {
			return
		}
		if !c.scroller.ScrollIntoView(elementID) {
			c.logger.Debug("scroll target not found", slog.String("element_id", elementID))
		}
	})
}

// withSearchResults возвращает копию корзины, где кандидаты заменены найденными пунктами,
// а каталог дополнен ими.
func withSearchResults(cart entities.Cart, points []entities.PickupPoint) entities.Cart {
	catalog := make([]entities.PickupPoint, 0, len(cart.PickupPoints)+len(points))
	found := make(map[string]entities.PickupPoint, len(points))
	for _, p := range points {
		found[p.ID] = p
	}
	for _, p := range cart.PickupPoints {
		if fresh, ok := found[p.ID]; ok {
			catalog = append(catalog, fresh)
			delete(found, p.ID)
			continue
		}
		catalog = append(catalog, p)
	}

	options := make([]entities.PickupOption, 0, len(points))
	for _, p := range points {
		if _, ok := found[p.ID]; ok {
			catalog = append(catalog, p)
			delete(found, p.ID)
		}
		options = append(options, p.Option())
	}

	cart.PickupPoints = catalog
	cart.BestPickupOptions = options
	return cart
}
