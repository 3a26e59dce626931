package types

import (
	"github.com/beyazservis/servis-go/models"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID   uint            `json:"user_id"`
	Username string          `json:"username"`
	Rol      models.UserRole `json:"rol"`
	BayiAdi  string          `json:"bayi_adi,omitempty"`
	jwt.RegisteredClaims
}
