package handlers

import (
	"errors"
	"net/http"

	"github.com/beyazservis/servis-go/dto"
	"github.com/beyazservis/servis-go/response"
	"github.com/beyazservis/servis-go/services"
	"github.com/gin-gonic/gin"
)

type YaziciHandler struct {
	services *services.Services
}

func NewYaziciHandler(s *services.Services) *YaziciHandler {
	return &YaziciHandler{services: s}
}

// Get returns data: null with 200 when no layout is saved; the client falls
// back to its hardcoded default layout.
func (h *YaziciHandler) Get(c *gin.Context) {
	marka := c.Param("marka")

	ayar, err := h.services.Yazici.Get(marka)
	if err != nil {
		if errors.Is(err, services.ErrYaziciAyarYok) {
			c.JSON(http.StatusOK, response.SuccessResponse{Data: nil})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: ayar})
}

func (h *YaziciHandler) Save(c *gin.Context) {
	marka := c.Param("marka")

	var input dto.SaveYaziciAyarDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	ayar, err := h.services.Yazici.Save(marka, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: ayar})
}

func (h *YaziciHandler) Delete(c *gin.Context) {
	marka := c.Param("marka")

	if err := h.services.Yazici.Delete(marka); err != nil {
		if errors.Is(err, services.ErrYaziciAyarYok) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "yazici ayari silindi"})
}
