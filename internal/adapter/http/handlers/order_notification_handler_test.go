package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"su_herramienta/internal/adapter/http/handlers/mocks"
	"su_herramienta/internal/domain/entities"
	"su_herramienta/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderNotificationRouter(t *testing.T) (*gin.Engine, *mocks.MockINotificationUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	notify := mocks.NewMockINotificationUseCase(ctrl)
	h := NewOrderNotificationHandler(notify)

	r := gin.New()
	r.POST("/v1/orders/:orderId/notify-parts", h.NotifyParts)
	r.POST("/v1/orders/:orderId/notify-ready", h.NotifyReady)
	r.POST("/v1/orders/:orderId/notify-delivered", h.NotifyDelivered)
	r.GET("/v1/orders/:orderId/notice", h.PreviewNotice)
	return r, notify
}

func TestOrderNotificationHandler_NotifyParts(t *testing.T) {
	t.Run("parts number missing", func(t *testing.T) {
		r, notify := newOrderNotificationRouter(t)
		notify.EXPECT().NotifyParts(gomock.Any(), "ord-1").Return(0, usecase.ErrPartsNumberNotConfigured)

		w := serve(r, http.MethodPost, "/v1/orders/ord-1/notify-parts", nil, "")

		if w.Code != http.StatusBadRequest || errorCode(t, w) != "PARTS_NUMBER_NOT_CONFIGURED" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("nothing authorized", func(t *testing.T) {
		r, notify := newOrderNotificationRouter(t)
		notify.EXPECT().NotifyParts(gomock.Any(), "ord-1").Return(0, usecase.ErrNoEquipmentForNotice)

		w := serve(r, http.MethodPost, "/v1/orders/ord-1/notify-parts", nil, "")

		if w.Code != http.StatusBadRequest || errorCode(t, w) != "NO_EQUIPMENT_FOR_NOTICE" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, notify := newOrderNotificationRouter(t)
		notify.EXPECT().NotifyParts(gomock.Any(), "ord-1").Return(2, nil)

		w := serve(r, http.MethodPost, "/v1/orders/ord-1/notify-parts", nil, "")

		if w.Code != http.StatusOK || w.Body.String() != `{"success":true,"equipment":2,"destinations":1}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestOrderNotificationHandler_NotifyClient(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		r, notify := newOrderNotificationRouter(t)
		notify.EXPECT().NotifyReady(gomock.Any(), "ord-1").Return(usecase.NoticeResult{Equipment: 1, Destinations: 2}, nil)

		w := serve(r, http.MethodPost, "/v1/orders/ord-1/notify-ready", nil, "")

		if w.Code != http.StatusOK || w.Body.String() != `{"success":true,"equipment":1,"destinations":2}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("delivered without phone", func(t *testing.T) {
		r, notify := newOrderNotificationRouter(t)
		notify.EXPECT().NotifyDelivered(gomock.Any(), "ord-1").Return(usecase.NoticeResult{}, usecase.ErrNoValidDestination)

		w := serve(r, http.MethodPost, "/v1/orders/ord-1/notify-delivered", nil, "")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		r, notify := newOrderNotificationRouter(t)
		notify.EXPECT().NotifyReady(gomock.Any(), "ord-9").Return(usecase.NoticeResult{}, usecase.ErrOrderNotFound)

		w := serve(r, http.MethodPost, "/v1/orders/ord-9/notify-ready", nil, "")

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderNotificationHandler_PreviewNotice(t *testing.T) {
	t.Run("defaults to authorized", func(t *testing.T) {
		r, notify := newOrderNotificationRouter(t)
		notify.EXPECT().ComposeEquipmentNotice(gomock.Any(), "ord-1", entities.EquipmentStatusAuthorized).Return("REPUESTOS AUTORIZADOS", 1, nil)

		w := serve(r, http.MethodGet, "/v1/orders/ord-1/notice", nil, "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatal(err)
		}
		if got["status"] != "autorizada" || got["message"] != "REPUESTOS AUTORIZADOS" {
			t.Fatalf("unexpected body %v", got)
		}
	})

	t.Run("accepts english alias", func(t *testing.T) {
		r, notify := newOrderNotificationRouter(t)
		notify.EXPECT().ComposeEquipmentNotice(gomock.Any(), "ord-1", entities.EquipmentStatusRepaired).Return("x", 1, nil)

		w := serve(r, http.MethodGet, "/v1/orders/ord-1/notice?status=repaired", nil, "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		r, _ := newOrderNotificationRouter(t)
		w := serve(r, http.MethodGet, "/v1/orders/ord-1/notice?status=lista", nil, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
