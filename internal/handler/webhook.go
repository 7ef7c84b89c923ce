package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/velesmarket/payment-service/internal/entities"
	"github.com/velesmarket/payment-service/pkg/httpx"
)

const signatureHeader = "X-Gateway-Signature"

type PaymentEventHandler interface {
	HandlePaymentSucceeded(ctx context.Context, ev entities.PaymentEvent) error
	HandlePaymentFailed(ctx context.Context, ev entities.PaymentEvent) error
	HandlePaymentCanceled(ctx context.Context, ev entities.PaymentEvent) error
	HandleChargeSucceeded(ctx context.Context, ev entities.PaymentEvent) error
	HandleChargeFailed(ctx context.Context, ev entities.PaymentEvent) error
	HandleChargeRefunded(ctx context.Context, ev entities.PaymentEvent) error
}

// WebhookHandler принимает события платёжного шлюза. Подпись проверяется по
// сырому телу запроса до какой-либо обработки; после успешной диспетчеризации
// шлюз всегда получает 200, чтобы не провоцировать лишние ретраи.
type WebhookHandler struct {
	logger     *slog.Logger
	secret     []byte
	reconciler PaymentEventHandler
}

func NewWebhookHandler(logger *slog.Logger, secret string, reconciler PaymentEventHandler) *WebhookHandler {
	return &WebhookHandler{
		logger:     logger.With(slog.String("handler", "webhook")),
		secret:     []byte(secret),
		reconciler: reconciler,
	}
}

func (h *WebhookHandler) Init(r chi.Router) {
	r.Post("/webhooks/gateway", h.HandleWebhook)
}

// HandleWebhook обрабатывает событие платёжного шлюза.
// @Summary      Вебхук платёжного шлюза
// @Description  Проверяет HMAC-подпись сырого тела и диспетчеризует событие по типу
// @Tags         webhooks
// @Accept       json
// @Param        X-Gateway-Signature  header  string  true  "HMAC-SHA256 подпись тела (hex)"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  httpx.ErrorResponse "Неверная подпись или тело"
// @Failure      500  {object}  httpx.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /webhooks/gateway [post]
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read webhook body", slog.Any("error", err))
		httpx.WriteError(w, "failed to read body", http.StatusInternalServerError)
		return
	}

	if !h.verifySignature(body, r.Header.Get(signatureHeader)) {
		signatureFailures.Inc()
		h.logger.WarnContext(ctx, "webhook signature verification failed")
		httpx.WriteError(w, "invalid signature", http.StatusBadRequest)
		return
	}

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.logger.ErrorContext(ctx, "failed to unmarshal webhook event", slog.Any("error", err))
		httpx.WriteError(w, "invalid payload", http.StatusBadRequest)
		return
	}

	h.dispatch(ctx, event)
	webhookEvents.WithLabelValues(event.Type).Inc()

	httpx.WriteJSON(w, map[string]bool{"received": true}, http.StatusOK)
}

// dispatch направляет событие обработчику по типу. Ошибки обработки логируются
// и не влияют на ответ шлюзу.
func (h *WebhookHandler) dispatch(ctx context.Context, event WebhookEvent) {
	ev := PaymentEventFromWebhook(event.Data.Object)

	var err error
	switch event.Type {
	case "payment_intent.succeeded":
		err = h.reconciler.HandlePaymentSucceeded(ctx, ev)
	case "payment_intent.payment_failed":
		err = h.reconciler.HandlePaymentFailed(ctx, ev)
	case "payment_intent.canceled":
		err = h.reconciler.HandlePaymentCanceled(ctx, ev)
	case "charge.succeeded":
		err = h.reconciler.HandleChargeSucceeded(ctx, ev)
	case "charge.failed":
		err = h.reconciler.HandleChargeFailed(ctx, ev)
	case "charge.refunded":
		err = h.reconciler.HandleChargeRefunded(ctx, ev)
	case "payment_method.attached", "customer.created":
		h.logger.InfoContext(ctx, "gateway lifecycle event acknowledged",
			slog.String("type", event.Type),
			slog.String("event_id", event.ID),
		)
	default:
		h.logger.InfoContext(ctx, "unhandled webhook event type",
			slog.String("type", event.Type),
			slog.String("event_id", event.ID),
		)
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to process webhook event",
			slog.String("type", event.Type),
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}
}

func (h *WebhookHandler) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
