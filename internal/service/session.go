package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/config"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/pickup"
	"github.com/SergeyBogomolovv/pickup-point-service/pkg/cache"

	"github.com/google/uuid"
)

// SessionView состояние открытой модалки для клиента
type SessionView struct {
	ID string
	pickup.View

	// ScrollTarget строка списка, к которой была последняя прокрутка
	ScrollTarget string
}

type sessionService struct {
	logger    *slog.Logger
	resolver  pickup.AddressResolver
	submitter pickup.Submitter
	analytics pickup.Analytics
	sessions  *cache.LRUCache[*session]
	conf      config.Session
	scheduler pickup.Scheduler
}

func NewSessionService(
	logger *slog.Logger,
	conf config.Session,
	resolver pickup.AddressResolver,
	submitter pickup.Submitter,
	analytics pickup.Analytics,
) *sessionService {
	s := &sessionService{
		logger:    logger.With(slog.String("service", "session")),
		resolver:  resolver,
		submitter: submitter,
		analytics: analytics,
		conf:      conf,
	}
	s.sessions = cache.NewLRUCache[*session](conf.Capacity, conf.TTL).
		OnEvict(func(id string, sess *session) {
			s.logger.Debug("session evicted", slog.String("session_id", id))
			sess.controller.Teardown()
			sessionsOpen.Dec()
		})
	return s
}

// Start запускает очистку просроченных сессий.
func (s *sessionService) Start(ctx context.Context) error {
	return s.sessions.Start(ctx)
}

func (s *sessionService) Open(ctx context.Context, cart entities.Cart, selected *entities.PickupOption, state entities.SidebarState) (SessionView, error) {
	sess := &session{
		id:       uuid.NewString(),
		svc:      s,
		keyboard: pickup.NewKeyboard(),
		rows:     make(map[string]struct{}),
	}
	sess.logger = s.logger.With(slog.String("session_id", sess.id))

	sess.controller = pickup.NewController(pickup.Options{
		Logger:      sess.logger,
		Host:        sess,
		Submitter:   s.submitter,
		Analytics:   s.analytics,
		Scroller:    sess,
		Scheduler:   s.scheduler,
		Keyboard:    sess.keyboard,
		ScrollDelay: s.conf.ScrollDelay,
	}, cart, selected, state)

	sess.controller.Mount()
	s.sessions.Set(sess.id, sess)
	sessionsOpen.Inc()

	s.logger.DebugContext(ctx, "session opened",
		slog.String("session_id", sess.id),
		slog.Int("candidates", len(cart.BestPickupOptions)),
	)
	return sess.view(), nil
}

func (s *sessionService) View(id string) (SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	return sess.view(), nil
}

func (s *sessionService) Search(ctx context.Context, id string, query entities.SearchQuery) (SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}

	if query.Limit <= 0 {
		query.Limit = s.conf.SearchLimit
	}

	applied, err := sess.controller.Search(ctx, s.resolver, query)
	if err != nil {
		return SessionView{}, err
	}

	view := sess.view()
	if applied {
		searchesTotal.WithLabelValues(view.State.String()).Inc()
	} else {
		searchesTotal.WithLabelValues("stale").Inc()
	}
	return view, nil
}

func (s *sessionService) Select(id string, optionID string) (SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	if err := sess.controller.SelectByID(optionID); err != nil {
		return SessionView{}, err
	}
	return sess.view(), nil
}

func (s *sessionService) Next(id string) (SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	moved, err := sess.controller.Next()
	if err != nil {
		return SessionView{}, err
	}
	if !moved {
		sess.logger.Debug("already at last candidate")
	}
	return sess.view(), nil
}

func (s *sessionService) Previous(id string) (SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	moved, err := sess.controller.Previous()
	if err != nil {
		return SessionView{}, err
	}
	if !moved {
		sess.logger.Debug("already at first candidate")
	}
	return sess.view(), nil
}

// PressKey передает клавишу слушателю модалки, как это делает браузер.
func (s *sessionService) PressKey(id string, code string) (SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	handled, err := sess.keyboard.Dispatch(code)
	if err != nil {
		return SessionView{}, err
	}
	if !handled {
		return SessionView{}, fmt.Errorf("%w: keyboard is detached", entities.ErrInvalidTransition)
	}
	return sess.view(), nil
}

func (s *sessionService) Back(id string) (SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	if err := sess.controller.Back(); err != nil {
		return SessionView{}, err
	}
	return sess.view(), nil
}

// Confirm сохраняет выбор. При успехе модалка закрывается и сессия удаляется.
func (s *sessionService) Confirm(ctx context.Context, id string) (SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}

	if err := sess.controller.Confirm(ctx); err != nil {
		confirmationsTotal.WithLabelValues("failed").Inc()
		return SessionView{}, err
	}

	confirmationsTotal.WithLabelValues("confirmed").Inc()
	s.logger.InfoContext(ctx, "pickup point confirmed", slog.String("session_id", id))
	return sess.view(), nil
}

func (s *sessionService) SetMapStatus(id string, status entities.MapStatus) (SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	sess.controller.SetMapStatus(status)
	return sess.view(), nil
}

func (s *sessionService) UpdateCart(id string, cart entities.Cart) (SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	sess.controller.UpdateCart(cart)
	return sess.view(), nil
}

func (s *sessionService) Close(id string) error {
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	if s.sessions.Delete(id) {
		sessionsOpen.Dec()
	}
	sess.controller.Teardown()
	return nil
}

func (s *sessionService) get(id string) (*session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrSessionNotFound, id)
	}
	s.sessions.Touch(id)
	return sess, nil
}

// session модалка выбора пункта. Методы Host и Scroller вызываются контроллером
// под его блокировкой, поэтому обратно в контроллер они не обращаются.
type session struct {
	id         string
	svc        *sessionService
	logger     *slog.Logger
	controller *pickup.Controller
	keyboard   *pickup.Keyboard

	mu           sync.Mutex
	state        entities.SidebarState
	rows         map[string]struct{}
	scrollTarget string
}

func (s *session) SetActiveSidebarState(state entities.SidebarState) {
	s.mu.Lock()
	prev := s.state
	s.state = state
	s.mu.Unlock()

	if prev != state {
		sidebarTransitions.WithLabelValues(state.String()).Inc()
	}
}

func (s *session) SetSelectedPickupPoint(option *entities.PickupOption) {
	if option == nil {
		s.logger.Debug("selection cleared")
		return
	}
	s.logger.Debug("pickup point selected", slog.String("option_id", option.ID))
}

func (s *session) CloseModal() {
	if s.svc.sessions.Delete(s.id) {
		sessionsOpen.Dec()
	}
	s.logger.Debug("modal closed")
}

func (s *session) ScrollIntoView(elementID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[elementID]; !ok {
		return false
	}
	s.scrollTarget = elementID
	return true
}

// view снимает состояние контроллера и обновляет набор строк списка для прокрутки.
func (s *session) view() SessionView {
	v := s.controller.View()

	rows := make(map[string]struct{}, len(v.Candidates))
	for _, c := range v.Candidates {
		rows[pickup.CleanID(c.ID)] = struct{}{}
	}

	s.mu.Lock()
	s.rows = rows
	target := s.scrollTarget
	s.mu.Unlock()

	return SessionView{ID: s.id, View: v, ScrollTarget: target}
}
