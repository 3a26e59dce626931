package handlers

import (
	"errors"
	"net/http"

	"github.com/beyazservis/servis-go/dto"
	"github.com/beyazservis/servis-go/response"
	"github.com/beyazservis/servis-go/services"
	"github.com/beyazservis/servis-go/utils"
	"github.com/gin-gonic/gin"
)

type IslemHandler struct {
	services *services.Services
}

func NewIslemHandler(s *services.Services) *IslemHandler {
	return &IslemHandler{services: s}
}

func islemErrStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrIslemNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrGecersizDurum), errors.Is(err, utils.ErrInvalidPhone):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *IslemHandler) List(c *gin.Context) {
	var filter dto.IslemFilterDTO
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	islemler, err := h.services.Islem.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: islemler})
}

func (h *IslemHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	islem, err := h.services.Islem.GetByID(id)
	if err != nil {
		c.JSON(islemErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: islem})
}

func (h *IslemHandler) Create(c *gin.Context) {
	var input dto.CreateIslemDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	createdBy := ""
	if claims, err := utils.GetClaimsFromContext(c); err == nil {
		createdBy = claims.Username
	}

	islem, err := h.services.Islem.CreateIslem(input, createdBy)
	if err != nil {
		c.JSON(islemErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: islem})
}

func (h *IslemHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input dto.UpdateIslemDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	islem, err := h.services.Islem.UpdateIslem(id, input)
	if err != nil {
		c.JSON(islemErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: islem})
}

func (h *IslemHandler) UpdateDurum(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input dto.UpdateIslemDurumDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	islem, err := h.services.Islem.UpdateDurum(id, input.IsDurumu)
	if err != nil {
		c.JSON(islemErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: islem})
}

func (h *IslemHandler) UpdateYazdirildi(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input dto.UpdateYazdirildiDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	islem, err := h.services.Islem.UpdateYazdirildi(id, input.Yazdirildi)
	if err != nil {
		c.JSON(islemErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: islem})
}

func (h *IslemHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.services.Islem.DeleteIslem(id); err != nil {
		c.JSON(islemErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "islem silindi"})
}
