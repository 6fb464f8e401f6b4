package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	request "su_herramienta/internal/adapter/http/dto/request"
	response "su_herramienta/internal/adapter/http/dto/response"
	"su_herramienta/internal/domain/entities"
	"su_herramienta/internal/usecase"
	"su_herramienta/pkg"

	"github.com/gin-gonic/gin"
)

// MaxDocumentBytes is the largest upload accepted for WhatsApp documents.
const MaxDocumentBytes = 16 << 20

var (
	errInvalidRequest  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidDocument = pkg.NewDomainErrorSimple("INVALID_DOCUMENT", "A non-empty file up to 16MB is required", http.StatusBadRequest)
)

// WhatsAppHandler exposes quote sending, free-form messages and the state of
// the authorization conversations.
type WhatsAppHandler struct {
	auth   usecase.IAuthorizationUseCase
	notify usecase.INotificationUseCase
}

func NewWhatsAppHandler(auth usecase.IAuthorizationUseCase, notify usecase.INotificationUseCase) *WhatsAppHandler {
	return &WhatsAppHandler{auth: auth, notify: notify}
}

// SendQuote godoc
// @Summary      Send the quote of an order and wait for the client's choice
// @Tags         whatsapp
// @Produce      json
// @Param        orderId  path  string  true  "Order id or display number"
// @Success      200  {object}  response.SendResultResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /quotes/order/{orderId}/send-whatsapp [post]
func (h *WhatsAppHandler) SendQuote(c *gin.Context) {
	orderID := c.Param("orderId")
	log.Printf("[wa][handler] send quote start order_id=%s", orderID)

	sent, err := h.auth.RequestAuthorization(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[wa][handler] send quote failed order_id=%s err=%v", orderID, err)
		appErr := mapMessagingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SendResultResponse{Success: true, Sent: sent})
}

// SendMessage godoc
// @Summary      Send a free text message to every phone of the order's client
// @Tags         whatsapp
// @Accept       json
// @Produce      json
// @Param        body  body  request.SendMessageRequest  true  "Message"
// @Success      200  {object}  response.SendResultResponse
// @Router       /whatsapp/send [post]
func (h *WhatsAppHandler) SendMessage(c *gin.Context) {
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	orderID, message, err := payload.Validate()
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	sent, err := h.notify.SendToClient(c.Request.Context(), orderID, message)
	if err != nil {
		log.Printf("[wa][handler] send message failed order_id=%s err=%v", orderID, err)
		appErr := mapMessagingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SendResultResponse{Success: true, Sent: sent})
}

// SendDocument godoc
// @Summary      Send a document (multipart file) to the order's client
// @Tags         whatsapp
// @Accept       multipart/form-data
// @Produce      json
// @Param        order_id  formData  string  true   "Order id"
// @Param        caption   formData  string  false  "Caption"
// @Param        file      formData  file    true   "Document"
// @Success      200  {object}  response.SendResultResponse
// @Router       /whatsapp/send-document [post]
func (h *WhatsAppHandler) SendDocument(c *gin.Context) {
	orderID := strings.TrimSpace(c.PostForm("order_id"))
	if orderID == "" {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	fh, err := c.FormFile("file")
	if err != nil || fh.Size <= 0 || fh.Size > MaxDocumentBytes {
		c.JSON(errInvalidDocument.HTTPStatus, errInvalidDocument.ToHTTPError())
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(errInvalidDocument.HTTPStatus, errInvalidDocument.ToHTTPError())
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, MaxDocumentBytes))
	if err != nil {
		c.JSON(errInvalidDocument.HTTPStatus, errInvalidDocument.ToHTTPError())
		return
	}

	doc := entities.Document{
		FileName: fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Caption:  strings.TrimSpace(c.PostForm("caption")),
		Data:     data,
	}
	sent, err := h.notify.SendDocumentToClient(c.Request.Context(), orderID, doc)
	if err != nil {
		log.Printf("[wa][handler] send document failed order_id=%s file=%s err=%v", orderID, fh.Filename, err)
		appErr := mapMessagingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SendResultResponse{Success: true, Sent: sent})
}

// Status reports whether the WhatsApp session can send.
func (h *WhatsAppHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, response.TransportStatusResponse{Ready: h.notify.IsTransportReady()})
}

func (h *WhatsAppHandler) GetPending(c *gin.Context) {
	p, err := h.auth.GetPending(c.Request.Context(), c.Param("phone"))
	if err != nil {
		appErr := mapMessagingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendingAuthorization(p))
}

// ListConversation returns the latest audit entries of a phone (?limit=, default 50).
func (h *WhatsAppHandler) ListConversation(c *gin.Context) {
	var limit int32
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n <= 0 {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
		limit = int32(n)
	}

	rawPhone := c.Param("phone")
	msgs, err := h.auth.ListConversation(c.Request.Context(), rawPhone, limit)
	if err != nil {
		appErr := mapMessagingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromConversation(rawPhone, msgs))
}

func mapMessagingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrEmptyMessage), errors.Is(err, usecase.ErrInvalidPhone):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidDocument):
		return errInvalidDocument
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteMessageMissing):
		return pkg.NewDomainErrorSimple("QUOTE_MESSAGE_MISSING", "The quote has no generated message", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoValidDestination):
		return pkg.NewDomainErrorSimple("NO_VALID_PHONE", "The client has no valid mobile number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoEquipmentForNotice):
		return pkg.NewDomainErrorSimple("NO_EQUIPMENT_FOR_NOTICE", "No equipment in the requested status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPartsNumberNotConfigured):
		return pkg.NewDomainErrorSimple("PARTS_NUMBER_NOT_CONFIGURED", "Parts WhatsApp number is not configured", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPendingAuthorizationNotFound):
		return pkg.NewDomainErrorSimple("PENDING_AUTHORIZATION_NOT_FOUND", "No pending authorization for this phone", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMessageLogDisabled):
		return pkg.NewDomainErrorSimple("MESSAGE_LOG_DISABLED", "Conversation log is not enabled", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransportNotReady):
		return pkg.NewDomainErrorSimple("WHATSAPP_NOT_READY", "WhatsApp is not connected", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
