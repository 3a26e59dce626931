package handlers

import (
	"errors"
	"net/http"

	"github.com/beyazservis/servis-go/dto"
	"github.com/beyazservis/servis-go/models"
	"github.com/beyazservis/servis-go/response"
	"github.com/beyazservis/servis-go/services"
	"github.com/beyazservis/servis-go/utils"
	"github.com/gin-gonic/gin"
)

type AtolyeHandler struct {
	services *services.Services
}

func NewAtolyeHandler(s *services.Services) *AtolyeHandler {
	return &AtolyeHandler{services: s}
}

func atolyeErrStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrAtolyeNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrGecersizTeslimDurum),
		errors.Is(err, services.ErrBayiVeyaMusteri),
		errors.Is(err, services.ErrGecersizTarih),
		errors.Is(err, utils.ErrInvalidPhone):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// List narrows to the caller's own dealer when the token carries the bayi
// role; staff and admin tokens see everything.
func (h *AtolyeHandler) List(c *gin.Context) {
	var filter dto.AtolyeFilterDTO
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	bayiScope := ""
	if claims, err := utils.GetClaimsFromContext(c); err == nil && claims.Rol == models.UserRoleBayi {
		bayiScope = claims.BayiAdi
	}

	atolyeler, err := h.services.Atolye.List(filter, bayiScope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: atolyeler})
}

func (h *AtolyeHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	atolye, err := h.services.Atolye.GetByID(id)
	if err != nil {
		c.JSON(atolyeErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: atolye})
}

func (h *AtolyeHandler) Create(c *gin.Context) {
	var input dto.CreateAtolyeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	createdBy := ""
	if claims, err := utils.GetClaimsFromContext(c); err == nil {
		createdBy = claims.Username
	}

	atolye, err := h.services.Atolye.CreateAtolye(input, createdBy)
	if err != nil {
		c.JSON(atolyeErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: atolye})
}

func (h *AtolyeHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input dto.UpdateAtolyeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	atolye, err := h.services.Atolye.UpdateAtolye(id, input)
	if err != nil {
		c.JSON(atolyeErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: atolye})
}

func (h *AtolyeHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.services.Atolye.DeleteAtolye(id); err != nil {
		c.JSON(atolyeErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "atolye kaydi silindi"})
}
