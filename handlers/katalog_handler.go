package handlers

import (
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/beyazservis/servis-go/dto"
	"github.com/beyazservis/servis-go/response"
	"github.com/beyazservis/servis-go/services"
	"github.com/beyazservis/servis-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type KatalogHandler struct {
	services *services.Services
}

func NewKatalogHandler(s *services.Services) *KatalogHandler {
	return &KatalogHandler{services: s}
}

// List serves one name-only collection. cached collections get a 5-minute
// Cache-Control plus an ETag over the payload and honor If-None-Match.
func (h *KatalogHandler) List(table string, cached bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.services.Katalog.List(table)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
			return
		}

		body := response.SuccessResponse{Data: items}
		if cached {
			raw, err := json.Marshal(body)
			if err != nil {
				c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
				return
			}
			etag := fmt.Sprintf(`"%x"`, md5.Sum(raw))
			c.Header("Cache-Control", "max-age=300")
			c.Header("ETag", etag)
			if c.GetHeader("If-None-Match") == etag {
				c.Status(http.StatusNotModified)
				return
			}
			c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
			return
		}

		c.JSON(http.StatusOK, body)
	}
}

func (h *KatalogHandler) Create(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input dto.CreateKatalogDTO
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}

		item, err := h.services.Katalog.Create(table, input.Ad)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, response.ErrorResponse{Error: "bu isim zaten kayitli"})
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusCreated, response.SuccessResponse{Data: item})
	}
}

func (h *KatalogHandler) Delete(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}

		if err := h.services.Katalog.Delete(table, id); err != nil {
			if errors.Is(err, services.ErrKatalogNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, response.MessageResponse{Message: "kayit silindi"})
	}
}

// Bayi carries login credentials on top of the shared shape, so it has its
// own endpoints.

func (h *KatalogHandler) ListBayiler(c *gin.Context) {
	bayiler, err := h.services.Bayi.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: bayiler})
}

func (h *KatalogHandler) CreateBayi(c *gin.Context) {
	var input dto.CreateBayiDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	bayi, err := h.services.Bayi.CreateBayi(input)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: "bu bayi adi veya kullanici adi zaten kayitli"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: bayi})
}

func (h *KatalogHandler) DeleteBayi(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.services.Bayi.DeleteBayi(id); err != nil {
		if errors.Is(err, services.ErrBayiNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "bayi silindi"})
}
