package handler

import (
	"errors"
	"net/http"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/apierror"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/dto"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// Adjust godoc
// @Summary Apply a signed stock adjustment
// @Tags inventory
// @Accept json
// @Produce json
// @Param body body dto.AdjustInventoryRequest true "Adjustment"
// @Success 200 {object} dto.AdjustInventoryResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req dto.AdjustInventoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Adjust(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("product not found"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) History(c *gin.Context) {
	var filter dto.HistoryFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.History(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Alerts(c *gin.Context) {
	alerts, err := h.svc.Alerts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not compute stock alerts"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": alerts, "total": len(alerts)})
}
