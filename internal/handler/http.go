package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/service"
	"github.com/SergeyBogomolovv/pickup-point-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type SessionManager interface {
	Open(ctx context.Context, cart entities.Cart, selected *entities.PickupOption, state entities.SidebarState) (service.SessionView, error)
	View(id string) (service.SessionView, error)
	Search(ctx context.Context, id string, query entities.SearchQuery) (service.SessionView, error)
	Select(id string, optionID string) (service.SessionView, error)
	Next(id string) (service.SessionView, error)
	Previous(id string) (service.SessionView, error)
	PressKey(id string, code string) (service.SessionView, error)
	Back(id string) (service.SessionView, error)
	Confirm(ctx context.Context, id string) (service.SessionView, error)
	SetMapStatus(id string, status entities.MapStatus) (service.SessionView, error)
	UpdateCart(id string, cart entities.Cart) (service.SessionView, error)
	Close(id string) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      SessionManager
}

func NewHTTPHandler(logger *slog.Logger, svc SessionManager) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.OpenSession)
		r.Route("/{session_id}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.CloseSession)
			r.Post("/search", h.Search)
			r.Post("/select", h.Select)
			r.Post("/next", h.Next)
			r.Post("/previous", h.Previous)
			r.Post("/keys", h.PressKey)
			r.Post("/back", h.Back)
			r.Post("/confirm", h.Confirm)
			r.Put("/map", h.SetMapStatus)
			r.Put("/cart", h.UpdateCart)
		})
	})
}

// OpenSession открывает модалку выбора пункта самовывоза.
// @Summary      Открыть модалку
// @Description  Создает сессию выбора пункта самовывоза для снимка корзины
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request  body      OpenSessionRequest  true  "Корзина и текущий выбор"
// @Success      201  {object}  Session
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /sessions [post]
func (h *HTTPHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	var req OpenSessionRequest
	if err := utils.DecodeAndValidate(r, h.validate, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var selected *entities.PickupOption
	if req.Selected != nil {
		option := PickupOptionJSONToEntity(*req.Selected)
		selected = &option
	}

	h.respond(w, r, "open", http.StatusCreated, func() (service.SessionView, error) {
		return h.svc.Open(r.Context(), CartJSONToEntity(req.Cart), selected, entities.SidebarState(req.State))
	})
}

// GetSession возвращает состояние модалки.
// @Summary      Состояние модалки
// @Tags         sessions
// @Produce      json
// @Param        session_id  path      string  true  "Идентификатор сессии"
// @Success      200  {object}  Session
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Router       /sessions/{session_id} [get]
func (h *HTTPHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")
	h.respond(w, r, "view", http.StatusOK, func() (service.SessionView, error) {
		return h.svc.View(id)
	})
}

// Search ищет пункты самовывоза по адресу или геолокации.
// @Summary      Поиск пунктов
// @Description  Ошибки поиска отражаются в состоянии панели: ERROR_NOT_FOUND или ERROR_COULD_NOT_GET_LOCATION
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path      string         true  "Идентификатор сессии"
// @Param        request     body      SearchRequest  true  "Адрес или координаты"
// @Success      200  {object}  Session
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /sessions/{session_id}/search [post]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")

	var req SearchRequest
	if err := utils.DecodeAndValidate(r, h.validate, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	h.respond(w, r, "search", http.StatusOK, func() (service.SessionView, error) {
		return h.svc.Search(r.Context(), id, SearchJSONToEntity(req))
	})
}

// Select открывает детали пункта.
// @Summary      Выбрать пункт
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path      string         true  "Идентификатор сессии"
// @Param        request     body      SelectRequest  true  "id или pickup_point_id варианта"
// @Success      200  {object}  Session
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Сессия или вариант не найдены"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /sessions/{session_id}/select [post]
func (h *HTTPHandler) Select(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")

	var req SelectRequest
	if err := utils.DecodeAndValidate(r, h.validate, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	h.respond(w, r, "select", http.StatusOK, func() (service.SessionView, error) {
		return h.svc.Select(id, req.OptionID)
	})
}

// Next переходит к следующему кандидату.
// @Summary      Следующий пункт
// @Tags         sessions
// @Produce      json
// @Param        session_id  path      string  true  "Идентификатор сессии"
// @Success      200  {object}  Session
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Листать можно только в DETAILS"
// @Router       /sessions/{session_id}/next [post]
func (h *HTTPHandler) Next(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")
	h.respond(w, r, "next", http.StatusOK, func() (service.SessionView, error) {
		return h.svc.Next(id)
	})
}

// Previous переходит к предыдущему кандидату.
// @Summary      Предыдущий пункт
// @Tags         sessions
// @Produce      json
// @Param        session_id  path      string  true  "Идентификатор сессии"
// @Success      200  {object}  Session
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Листать можно только в DETAILS"
// @Router       /sessions/{session_id}/previous [post]
func (h *HTTPHandler) Previous(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")
	h.respond(w, r, "previous", http.StatusOK, func() (service.SessionView, error) {
		return h.svc.Previous(id)
	})
}

// PressKey передает нажатие клавиши модалке.
// @Summary      Нажатие клавиши
// @Description  ArrowLeft и ArrowRight листают кандидатов, остальные коды игнорируются
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path      string      true  "Идентификатор сессии"
// @Param        request     body      KeyRequest  true  "Код клавиши"
// @Success      200  {object}  Session
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Клавиатура отключена или листать нельзя"
// @Router       /sessions/{session_id}/keys [post]
func (h *HTTPHandler) PressKey(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")

	var req KeyRequest
	if err := utils.DecodeAndValidate(r, h.validate, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	h.respond(w, r, "key", http.StatusOK, func() (service.SessionView, error) {
		return h.svc.PressKey(id, req.Code)
	})
}

// Back возвращает к списку.
// @Summary      Назад к списку
// @Tags         sessions
// @Produce      json
// @Param        session_id  path      string  true  "Идентификатор сессии"
// @Success      200  {object}  Session
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /sessions/{session_id}/back [post]
func (h *HTTPHandler) Back(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")
	h.respond(w, r, "back", http.StatusOK, func() (service.SessionView, error) {
		return h.svc.Back(id)
	})
}

// Confirm подтверждает выбранный пункт и закрывает модалку.
// @Summary      Подтвердить пункт
// @Tags         sessions
// @Produce      json
// @Param        session_id  path      string  true  "Идентификатор сессии"
// @Success      200  {object}  Session
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Пункт нельзя подтвердить или подтверждение уже идет"
// @Failure      502  {object}  utils.ErrorResponse "Не удалось сохранить выбор"
// @Router       /sessions/{session_id}/confirm [post]
func (h *HTTPHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")
	h.respond(w, r, "confirm", http.StatusOK, func() (service.SessionView, error) {
		view, err := h.svc.Confirm(r.Context(), id)
		if err != nil && !isSessionError(err) {
			return view, submitError{err}
		}
		return view, err
	})
}

// SetMapStatus переключает вкладку карты.
// @Summary      Карта или список
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path      string            true  "Идентификатор сессии"
// @Param        request     body      MapStatusRequest  true  "SHOW_MAP или HIDE_MAP"
// @Success      200  {object}  Session
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Router       /sessions/{session_id}/map [put]
func (h *HTTPHandler) SetMapStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")

	var req MapStatusRequest
	if err := utils.DecodeAndValidate(r, h.validate, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	h.respond(w, r, "map", http.StatusOK, func() (service.SessionView, error) {
		return h.svc.SetMapStatus(id, entities.MapStatus(req.Status))
	})
}

// UpdateCart заменяет снимок корзины открытой модалки.
// @Summary      Обновить корзину
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path      string             true  "Идентификатор сессии"
// @Param        request     body      UpdateCartRequest  true  "Новый снимок корзины"
// @Success      200  {object}  Session
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Router       /sessions/{session_id}/cart [put]
func (h *HTTPHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")

	var req UpdateCartRequest
	if err := utils.DecodeAndValidate(r, h.validate, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	h.respond(w, r, "cart", http.StatusOK, func() (service.SessionView, error) {
		return h.svc.UpdateCart(id, CartJSONToEntity(req.Cart))
	})
}

// CloseSession закрывает модалку без подтверждения.
// @Summary      Закрыть модалку
// @Tags         sessions
// @Param        session_id  path  string  true  "Идентификатор сессии"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Router       /sessions/{session_id} [delete]
func (h *HTTPHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")

	start := time.Now()
	sessionRequestsInProgress.Inc()
	defer sessionRequestsInProgress.Dec()

	err := h.svc.Close(id)
	status := statusFor(err)
	observeSessionRequest("close", status, start)

	if err != nil {
		h.writeError(w, r, "close", err, status)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) respond(w http.ResponseWriter, r *http.Request, op string, okStatus int, fn func() (service.SessionView, error)) {
	start := time.Now()
	sessionRequestsInProgress.Inc()
	defer sessionRequestsInProgress.Dec()

	view, err := fn()
	status := okStatus
	if err != nil {
		status = statusFor(err)
	}
	observeSessionRequest(op, status, start)

	if err != nil {
		h.writeError(w, r, op, err, status)
		return
	}
	utils.WriteJSON(w, SessionViewToJSON(view), status)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, op string, err error, status int) {
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "session operation failed",
			slog.String("op", op),
			slog.String("session_id", chi.URLParam(r, "session_id")),
			slog.Any("error", err),
		)
	}

	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		message = "internal server error"
	case http.StatusBadGateway:
		message = "failed to update shipping data"
	}
	utils.WriteError(w, message, status)
}

// submitError ошибка сохранения выбора во внешнем сервисе
type submitError struct {
	err error
}

func (e submitError) Error() string { return e.err.Error() }
func (e submitError) Unwrap() error { return e.err }

func isSessionError(err error) bool {
	return errors.Is(err, entities.ErrSessionNotFound) ||
		errors.Is(err, entities.ErrInvalidTransition) ||
		errors.Is(err, entities.ErrNotConfirmable)
}

func statusFor(err error) int {
	var se submitError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, entities.ErrSessionNotFound), errors.Is(err, entities.ErrPickupOptionNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrInvalidTransition), errors.Is(err, entities.ErrNotConfirmable):
		return http.StatusConflict
	case errors.As(err, &se):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
