package repositories

type Repos struct {
	User     UserRepo
	Islem    IslemRepo
	Atolye   AtolyeRepo
	Katalog  KatalogRepo
	Bayi     BayiRepo
	Yazici   YaziciRepo
	Lokasyon LokasyonRepo
}

func New() *Repos {
	return &Repos{
		User:     &DBUserRepo{},
		Islem:    &DBIslemRepo{},
		Atolye:   &DBAtolyeRepo{},
		Katalog:  &DBKatalogRepo{},
		Bayi:     &DBBayiRepo{},
		Yazici:   &DBYaziciRepo{},
		Lokasyon: &DBLokasyonRepo{},
	}
}
