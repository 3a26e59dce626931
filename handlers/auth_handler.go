package handlers

import (
	"errors"
	"net/http"

	"github.com/beyazservis/servis-go/dto"
	"github.com/beyazservis/servis-go/response"
	"github.com/beyazservis/servis-go/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	services *services.Services
}

func NewAuthHandler(s *services.Services) *AuthHandler {
	return &AuthHandler{services: s}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.services.User.Register(input)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "kayit basarisiz"})
		return
	}

	resp := response.RegisterResponse{Message: "kayit basarili"}
	resp.User.ID = user.ID
	resp.User.Username = user.Username
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.services.User.Login(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Message:  "giris basarili",
		Token:    token,
		ID:       user.ID,
		Username: user.Username,
		Rol:      user.Rol,
	})
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var input dto.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.services.User.AdminLogin(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Message:  "giris basarili",
		Token:    token,
		ID:       user.ID,
		Username: user.Username,
		Rol:      user.Rol,
	})
}

func (h *AuthHandler) BayiLogin(c *gin.Context) {
	var input dto.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	bayi, token, err := h.services.Bayi.Login(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Message:  "giris basarili",
		Token:    token,
		ID:       bayi.ID,
		Username: bayi.Username,
		Rol:      "bayi",
		BayiAdi:  bayi.Ad,
	})
}
