package routes

import (
	"su_herramienta/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders         = "/orders"
	PathEquipmentOrder = "/equipment-order"
)

func addOrderRoutes(rg *gin.RouterGroup, notice *handlers.OrderNotificationHandler, equipment *handlers.EquipmentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("/:orderId/notify-parts", notice.NotifyParts)
		orders.POST("/:orderId/notify-ready", notice.NotifyReady)
		orders.POST("/:orderId/notify-delivered", notice.NotifyDelivered)
		orders.GET("/:orderId/notice", notice.PreviewNotice)
	}

	eq := rg.Group(PathEquipmentOrder)
	{
		eq.PATCH("/:equipmentOrderId/status", equipment.UpdateStatus)
		eq.GET("/:equipmentOrderId/history", equipment.ListHistory)
	}
}
