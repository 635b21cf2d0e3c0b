package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/apierror"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/dto"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/model"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationsHandler manages the named field locations products are tagged
// with. Products reference locations by name, so deletion is refused while
// any product still points at the name.
type LocationsHandler struct {
	locations repository.FieldLocationRepository
	products  repository.ProductRepository
}

func NewLocationsHandler(locations repository.FieldLocationRepository, products repository.ProductRepository) *LocationsHandler {
	return &LocationsHandler{locations: locations, products: products}
}

func (h *LocationsHandler) List(c *gin.Context) {
	locations, err := h.locations.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not list field locations"))
		return
	}
	out := make([]dto.FieldLocationResponse, len(locations))
	for i, l := range locations {
		out[i] = dto.FieldLocationResponse{ID: l.ID.String(), Name: l.Name}
	}
	c.JSON(http.StatusOK, gin.H{"data": out, "total": len(out)})
}

func (h *LocationsHandler) Create(c *gin.Context) {
	var req dto.CreateFieldLocationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	loc := &model.FieldLocation{Name: req.Name}
	if err := h.locations.Create(c.Request.Context(), loc); err != nil {
		// unique index on name
		c.JSON(http.StatusConflict, apierror.New("field location already exists"))
		return
	}
	c.JSON(http.StatusCreated, dto.FieldLocationResponse{ID: loc.ID.String(), Name: loc.Name})
}

func (h *LocationsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}

	loc, err := h.locations.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("field location not found"))
		return
	}

	inUse, err := h.products.CountByLocation(c.Request.Context(), loc.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not check location usage"))
		return
	}
	if inUse > 0 {
		c.JSON(http.StatusBadRequest, apierror.New(fmt.Sprintf("%d products still use this location", inUse)))
		return
	}

	if err := h.locations.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("field location not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("could not delete field location"))
		return
	}
	c.Status(http.StatusNoContent)
}
