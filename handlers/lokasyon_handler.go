package handlers

import (
	"net/http"

	"github.com/beyazservis/servis-go/response"
	"github.com/beyazservis/servis-go/services"
	"github.com/beyazservis/servis-go/utils"
	"github.com/gin-gonic/gin"
)

type LokasyonHandler struct {
	services *services.Services
}

func NewLokasyonHandler(s *services.Services) *LokasyonHandler {
	return &LokasyonHandler{services: s}
}

func (h *LokasyonHandler) ListIlceler(c *gin.Context) {
	ilceler, err := h.services.Lokasyon.ListIlceler()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: ilceler})
}

func (h *LokasyonHandler) ListMahalleler(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	mahalleler, err := h.services.Lokasyon.ListMahalleler(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: mahalleler})
}
