package handlers

import (
	"errors"
	"net/http"

	"github.com/beyazservis/servis-go/response"
	"github.com/beyazservis/servis-go/services"
	"github.com/beyazservis/servis-go/utils"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	services *services.Services
}

func NewAdminHandler(s *services.Services) *AdminHandler {
	return &AdminHandler{services: s}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.services.Admin.ListUsersWithCounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: users})
}

func (h *AdminHandler) ToggleActive(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	active, err := h.services.Admin.ToggleActive(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_active": active})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.services.Admin.DeleteUser(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "kullanici silindi"})
}

func (h *AdminHandler) UserKayitlar(c *gin.Context) {
	username := c.Param("username")

	islemler, atolyeler, err := h.services.Admin.UserKayitlar(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.KayitDumpResponse{
		Islemler:  islemler,
		Atolyeler: atolyeler,
	})
}
