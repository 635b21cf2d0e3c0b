package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/apierror"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SettingsHandler exposes the generic key/value settings store. Values are
// opaque JSON documents; the row-order setting rides through here too when
// the client wants to read it raw.
type SettingsHandler struct{ settings repository.SettingRepository }

func NewSettingsHandler(settings repository.SettingRepository) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	key := c.Param("key")
	setting, err := h.settings.Get(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("setting not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("could not read setting"))
		return
	}
	c.Data(http.StatusOK, "application/json", setting.Value)
}

func (h *SettingsHandler) Put(c *gin.Context) {
	key := c.Param("key")
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("could not read body"))
		return
	}
	if !json.Valid(body) {
		c.JSON(http.StatusBadRequest, apierror.New("value must be valid JSON"))
		return
	}
	if err := h.settings.Upsert(c.Request.Context(), key, datatypes.JSON(body)); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not store setting"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key})
}
