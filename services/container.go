package services

import (
	"github.com/beyazservis/servis-go/repositories"
)

// Publisher is what mutation services need from the realtime hub.
type Publisher interface {
	Publish(event string, payload any)
}

type Services struct {
	User     *UserService
	Bayi     *BayiService
	Islem    *IslemService
	Atolye   *AtolyeService
	Katalog  *KatalogService
	Yazici   *YaziciService
	Admin    *AdminService
	Lokasyon *LokasyonService
}

func New(repos *repositories.Repos, hub Publisher) *Services {
	return &Services{
		User:     NewUserService(repos),
		Bayi:     NewBayiService(repos),
		Islem:    NewIslemService(repos, hub),
		Atolye:   NewAtolyeService(repos, hub),
		Katalog:  NewKatalogService(repos),
		Yazici:   NewYaziciService(repos),
		Admin:    NewAdminService(repos),
		Lokasyon: NewLokasyonService(repos),
	}
}
