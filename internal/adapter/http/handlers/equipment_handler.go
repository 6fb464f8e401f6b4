package handlers

import (
	"errors"
	"log"
	"net/http"
	request "su_herramienta/internal/adapter/http/dto/request"
	response "su_herramienta/internal/adapter/http/dto/response"
	"su_herramienta/internal/usecase"
	"su_herramienta/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid equipment status", http.StatusBadRequest)

type EquipmentHandler struct {
	usecase usecase.IEquipmentUseCase
}

func NewEquipmentHandler(uc usecase.IEquipmentUseCase) *EquipmentHandler {
	return &EquipmentHandler{usecase: uc}
}

// UpdateStatus godoc
// @Summary      Change the status of an equipment entry and append its history
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        equipmentOrderId  path  string  true  "Equipment entry id"
// @Param        body  body  request.UpdateEquipmentStatusRequest  true  "New status"
// @Success      200  {object}  response.StatusHistoryResponse
// @Router       /equipment-order/{equipmentOrderId}/status [patch]
func (h *EquipmentHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateEquipmentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	id := c.Param("equipmentOrderId")
	entry, err := h.usecase.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		log.Printf("[equipment][handler] status update failed id=%s status=%s err=%v", id, status, err)
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStatusHistoryEntry(entry))
}

func (h *EquipmentHandler) ListHistory(c *gin.Context) {
	history, err := h.usecase.ListHistory(c.Request.Context(), c.Param("equipmentOrderId"))
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStatusHistory(history))
}

func mapEquipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEquipmentID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidStatus):
		return errInvalidStatusPayload
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment entry not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
