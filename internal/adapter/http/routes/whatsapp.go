package routes

import (
	"su_herramienta/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathWhatsApp = "/whatsapp"
)

func addWhatsAppRoutes(rg *gin.RouterGroup, h *handlers.WhatsAppHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/order/:orderId/send-whatsapp", h.SendQuote)
	}

	wa := rg.Group(PathWhatsApp)
	{
		wa.GET("/status", h.Status)
		wa.POST("/send", h.SendMessage)
		wa.POST("/send-document", h.SendDocument)
		wa.GET("/pending/:phone", h.GetPending)
		wa.GET("/conversations/:phone", h.ListConversation)
	}
}
