package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/velesmarket/payment-service/internal/entities"
	"github.com/velesmarket/payment-service/internal/handler"
	mocks "github.com/velesmarket/payment-service/internal/handler/mocks"
)

func newRouter(t *testing.T, orders *mocks.MockOrderService, notifications *mocks.MockNotificationService) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, orders, notifications)
	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{ID: "123", Number: "ORD-20250831-AAAAAA", Status: entities.StatusProcessing}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_number":"ORD-20250831-AAAAAA"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			r := newRouter(t, svc, mocks.NewMockNotificationService(t))

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				err := json.Unmarshal(body, &resp)
				require.NoError(t, err)
				assert.Equal(t, "123", resp["id"])
			}
		})
	}
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	validBody := `{
		"customer_id": "buyer-1",
		"shipping_fee": 500,
		"taxes": 250,
		"items": [{"product_id": "p1", "seller_id": "seller-1", "price": 2000, "quantity": 2}]
	}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.CustomerID == "buyer-1" && len(o.Items) == 1 && o.Items[0].Quantity == 2
					})).
					Return(entities.Order{ID: "new-id", Number: "ORD-20250831-ZZZZZZ", Status: entities.StatusPending}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_number":"ORD-20250831-ZZZZZZ"`,
		},
		{
			name:         "missing items",
			body:         `{"customer_id": "buyer-1", "items": []}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "zero quantity item",
			body:         `{"customer_id": "buyer-1", "items": [{"product_id": "p1", "seller_id": "s1", "price": 100, "quantity": 0}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "malformed body",
			body:         `{`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			r := newRouter(t, svc, mocks.NewMockNotificationService(t))

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_UpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"status": "in_transit", "description": "package handed to carrier"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					TransitionStatus(mock.Anything, "123", entities.StatusInTransit, "package handed to carrier").
					Return(entities.Order{ID: "123", Status: entities.StatusInTransit}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"in_transit"`,
		},
		{
			name: "invalid transition",
			body: `{"status": "processing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					TransitionStatus(mock.Anything, "123", entities.StatusProcessing, "").
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid status transition"`,
		},
		{
			name:         "unknown status value",
			body:         `{"status": "teleported"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name: "order not found",
			body: `{"status": "cancelled"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					TransitionStatus(mock.Anything, "123", entities.StatusCancelled, "").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			r := newRouter(t, svc, mocks.NewMockNotificationService(t))

			req := httptest.NewRequest(http.MethodPatch, "/orders/123/status", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetNotifications(t *testing.T) {
	notifications := []entities.Notification{
		{ID: "n1", UserID: "buyer-1", Type: entities.NotificationOrderConfirmed, Title: "Order confirmed"},
		{ID: "n2", UserID: "buyer-1", Type: entities.NotificationPaymentFailed, Title: "Payment failed"},
	}

	testCases := []struct {
		name         string
		url          string
		mockBehavior func(svc *mocks.MockNotificationService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "default limit",
			url:  "/users/buyer-1/notifications",
			mockBehavior: func(svc *mocks.MockNotificationService) {
				svc.EXPECT().
					NotificationsByUser(mock.Anything, "buyer-1", 50).
					Return(notifications, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"n1"`,
		},
		{
			name: "explicit limit",
			url:  "/users/buyer-1/notifications?limit=10",
			mockBehavior: func(svc *mocks.MockNotificationService) {
				svc.EXPECT().
					NotificationsByUser(mock.Anything, "buyer-1", 10).
					Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:         "negative limit",
			url:          "/users/buyer-1/notifications?limit=-1",
			mockBehavior: func(svc *mocks.MockNotificationService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"limit must be a positive integer"`,
		},
		{
			name: "internal error",
			url:  "/users/buyer-1/notifications",
			mockBehavior: func(svc *mocks.MockNotificationService) {
				svc.EXPECT().
					NotificationsByUser(mock.Anything, "buyer-1", 50).
					Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockNotificationService(t)
			tc.mockBehavior(svc)
			r := newRouter(t, mocks.NewMockOrderService(t), svc)

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_MarkNotificationRead(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockNotificationService)
		wantStatus   int
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockNotificationService) {
				svc.EXPECT().MarkRead(mock.Anything, "n1").Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "not found",
			mockBehavior: func(svc *mocks.MockNotificationService) {
				svc.EXPECT().MarkRead(mock.Anything, "n1").Return(entities.ErrNotificationNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockNotificationService(t)
			tc.mockBehavior(svc)
			r := newRouter(t, mocks.NewMockOrderService(t), svc)

			req := httptest.NewRequest(http.MethodPost, "/notifications/n1/read", nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Result().StatusCode)
		})
	}
}
