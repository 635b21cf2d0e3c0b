package handler

import (
	"errors"
	"net/http"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/apierror"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/dto"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductsHandler struct {
	svc   service.ProductService
	order service.RowOrderService
}

func NewProductsHandler(svc service.ProductService, order service.RowOrderService) *ProductsHandler {
	return &ProductsHandler{svc: svc, order: order}
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param body body dto.CreateProductRequest true "Product"
// @Success 201 {object} dto.ProductResponse
// @Failure 422 {object} apierror.APIError
// @Router /api/products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not list products"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("product not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
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

func (h *ProductsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("product not found"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Row order ────────────────────────────────────────────────────────────────

func (h *ProductsHandler) GetOrder(c *gin.Context) {
	order, err := h.order.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not load row order"))
		return
	}
	c.JSON(http.StatusOK, orderResponse(order))
}

func (h *ProductsHandler) MoveOrder(c *gin.Context) {
	var req dto.MoveProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid product id"))
		return
	}
	order, err := h.order.Move(c.Request.Context(), id, req.Position)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPositionOutOfRange):
			c.JSON(http.StatusBadRequest, apierror.New("position out of range"))
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, apierror.New("product not found"))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("could not move product"))
		}
		return
	}
	c.JSON(http.StatusOK, orderResponse(order))
}

func orderResponse(order []uuid.UUID) dto.RowOrderResponse {
	ids := make([]string, len(order))
	for i, id := range order {
		ids[i] = id.String()
	}
	return dto.RowOrderResponse{Order: ids}
}
