package handlers

import (
	"context"
	"log"
	"net/http"
	request "su_herramienta/internal/adapter/http/dto/request"
	response "su_herramienta/internal/adapter/http/dto/response"
	"su_herramienta/internal/domain/entities"
	"su_herramienta/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderNotificationHandler sends the equipment notices of an order.
type OrderNotificationHandler struct {
	notify usecase.INotificationUseCase
}

func NewOrderNotificationHandler(uc usecase.INotificationUseCase) *OrderNotificationHandler {
	return &OrderNotificationHandler{notify: uc}
}

// NotifyParts godoc
// @Summary      Send the authorized parts list of an order to the parts department
// @Tags         orders
// @Produce      json
// @Param        orderId  path  string  true  "Order id"
// @Success      200  {object}  response.NoticeResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders/{orderId}/notify-parts [post]
func (h *OrderNotificationHandler) NotifyParts(c *gin.Context) {
	orderID := c.Param("orderId")
	n, err := h.notify.NotifyParts(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[notify][handler] parts notice failed order_id=%s err=%v", orderID, err)
		appErr := mapMessagingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NoticeResponse{Success: true, Equipment: n, Destinations: 1})
}

func (h *OrderNotificationHandler) NotifyReady(c *gin.Context) {
	h.notifyClient(c, "ready", h.notify.NotifyReady)
}

func (h *OrderNotificationHandler) NotifyDelivered(c *gin.Context) {
	h.notifyClient(c, "delivered", h.notify.NotifyDelivered)
}

func (h *OrderNotificationHandler) notifyClient(
	c *gin.Context,
	kind string,
	send func(ctx context.Context, orderID string) (usecase.NoticeResult, error),
) {
	orderID := c.Param("orderId")
	res, err := send(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[notify][handler] %s notice failed order_id=%s err=%v", kind, orderID, err)
		appErr := mapMessagingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NoticeResponse{Success: true, Equipment: res.Equipment, Destinations: res.Destinations})
}

// PreviewNotice renders the parts notice for ?status= (default autorizada) without sending it.
func (h *OrderNotificationHandler) PreviewNotice(c *gin.Context) {
	status := entities.EquipmentStatusAuthorized
	if raw := c.Query("status"); raw != "" {
		s, err := request.ParseEquipmentStatus(raw)
		if err != nil {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
		status = s
	}

	text, n, err := h.notify.ComposeEquipmentNotice(c.Request.Context(), c.Param("orderId"), status)
	if err != nil {
		appErr := mapMessagingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NoticePreviewResponse{Status: string(status), Equipment: n, Message: text})
}
