package response

import "github.com/beyazservis/servis-go/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Data any `json:"data"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	User    struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
}

type TokenResponse struct {
	Message  string          `json:"message"`
	Token    string          `json:"token"`
	ID       uint            `json:"id"`
	Username string          `json:"username"`
	Rol      models.UserRole `json:"rol"`
	BayiAdi  string          `json:"bayi_adi,omitempty"`
}

// KayitDumpResponse carries the admin drill-down for one user.
type KayitDumpResponse struct {
	Islemler  []models.Islem  `json:"islemler"`
	Atolyeler []models.Atolye `json:"atolyeler"`
}
