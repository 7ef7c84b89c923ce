package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/velesmarket/payment-service/internal/entities"
	"github.com/velesmarket/payment-service/pkg/httpx"
)

type OrderService interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	TransitionStatus(ctx context.Context, orderID string, next entities.OrderStatus, description string) (entities.Order, error)
}

type NotificationService interface {
	NotificationsByUser(ctx context.Context, userID string, limit int) ([]entities.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}

const defaultNotificationsLimit = 50

type HTTPHandler struct {
	logger        *slog.Logger
	validate      *validator.Validate
	orders        OrderService
	notifications NotificationService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, notifications NotificationService) *HTTPHandler {
	return &HTTPHandler{
		logger:        logger.With(slog.String("handler", "http")),
		validate:      validator.New(),
		orders:        orders,
		notifications: notifications,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
	r.Get("/orders/{order_id}", h.GetOrderByID)
	r.Patch("/orders/{order_id}/status", h.UpdateOrderStatus)
	r.Get("/users/{user_id}/notifications", h.GetNotifications)
	r.Post("/notifications/{notification_id}/read", h.MarkNotificationRead)
}

// CreateOrder создаёт заказ в статусе pending.
// @Summary      Создать заказ
// @Description  Принимает заказ из чекаута; суммы пересчитываются на сервере
// @Tags         orders
// @Accept       json
// @Param        order  body  Order  true  "Заказ"
// @Success      201  {object}  Order
// @Failure      400  {object}  httpx.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  httpx.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req Order
	if err := httpx.DecodeBody(r, &req); err != nil {
		httpx.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.CreateOrder(ctx, OrderJSONToEntity(req))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		httpx.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	httpx.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Возвращает заказ по его идентификатору, включая историю статусов
// @Tags         orders
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  httpx.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  httpx.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  httpx.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrderByID(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		httpx.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		httpx.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	httpx.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateOrderStatus переводит заказ в следующий статус жизненного цикла.
// @Summary      Обновить статус заказа
// @Description  Применяет один переход статуса с записью в историю
// @Tags         orders
// @Accept       json
// @Param        order_id  path  string               true  "Идентификатор заказа"
// @Param        body      body  UpdateStatusRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  httpx.ErrorResponse "Недопустимый переход статуса"
// @Failure      404  {object}  httpx.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  httpx.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/status [patch]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req UpdateStatusRequest
	if err := httpx.DecodeBody(r, &req); err != nil {
		httpx.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.TransitionStatus(ctx, orderID, entities.OrderStatus(req.Status), req.Description)

	if errors.Is(err, entities.ErrOrderNotFound) {
		httpx.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, entities.ErrInvalidTransition) {
		httpx.WriteError(w, "invalid status transition", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update order status",
			slog.Any("error", err),
			slog.String("order_id", orderID),
			slog.String("status", req.Status),
		)
		httpx.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	httpx.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetNotifications возвращает уведомления пользователя.
// @Summary      Уведомления пользователя
// @Description  Возвращает последние уведомления пользователя, новые первыми
// @Tags         notifications
// @Param        user_id  path   string  true   "Идентификатор пользователя"
// @Param        limit    query  int     false  "Максимум записей (по умолчанию 50)"
// @Success      200  {array}   Notification
// @Failure      400  {object}  httpx.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  httpx.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/notifications [get]
func (h *HTTPHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")

	if err := h.validate.Var(userID, "required"); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	limit := defaultNotificationsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			httpx.WriteError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	notifications, err := h.notifications.NotificationsByUser(ctx, userID, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get notifications", slog.Any("error", err), slog.String("user_id", userID))
		httpx.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]Notification, 0, len(notifications))
	for _, n := range notifications {
		res = append(res, NotificationEntityToJSON(n))
	}
	httpx.WriteJSON(w, res, http.StatusOK)
}

// MarkNotificationRead помечает уведомление прочитанным.
// @Summary      Прочитать уведомление
// @Tags         notifications
// @Param        notification_id  path  string  true  "Идентификатор уведомления"
// @Success      204  "Нет содержимого"
// @Failure      404  {object}  httpx.ErrorResponse "Уведомление не найдено"
// @Failure      500  {object}  httpx.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /notifications/{notification_id}/read [post]
func (h *HTTPHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	notificationID := chi.URLParam(r, "notification_id")

	err := h.notifications.MarkRead(ctx, notificationID)

	if errors.Is(err, entities.ErrNotificationNotFound) {
		httpx.WriteError(w, "notification not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to mark notification read", slog.Any("error", err), slog.String("notification_id", notificationID))
		httpx.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
