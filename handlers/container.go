package handlers

import "github.com/beyazservis/servis-go/services"

type Handlers struct {
	Auth     *AuthHandler
	Islem    *IslemHandler
	Atolye   *AtolyeHandler
	Katalog  *KatalogHandler
	Yazici   *YaziciHandler
	Admin    *AdminHandler
	Lokasyon *LokasyonHandler
}

func New(s *services.Services) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(s),
		Islem:    NewIslemHandler(s),
		Atolye:   NewAtolyeHandler(s),
		Katalog:  NewKatalogHandler(s),
		Yazici:   NewYaziciHandler(s),
		Admin:    NewAdminHandler(s),
		Lokasyon: NewLokasyonHandler(s),
	}
}
