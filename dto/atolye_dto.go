package dto

type CreateAtolyeDTO struct {
	BayiAdi        *string `json:"bayi_adi"`
	MusteriAdSoyad *string `json:"musteri_ad_soyad"`
	Telefon        string  `json:"telefon"`
	Marka          string  `json:"marka" binding:"required"`
	Model          string  `json:"model"`
	SeriNo         string  `json:"seri_no"`
	Sikayet        string  `json:"sikayet" binding:"required"`
	OzelNot        string  `json:"ozel_not"`
}

// UpdateAtolyeDTO is a sparse patch; nil leaves the column untouched.
// BayiAdi/MusteriAdSoyad distinguish "absent" (nil) from "clear" (empty
// string) so the one-of invariant can be checked against the merged row.
type UpdateAtolyeDTO struct {
	BayiAdi        *string `json:"bayi_adi"`
	MusteriAdSoyad *string `json:"musteri_ad_soyad"`
	Telefon        *string `json:"telefon"`
	Marka          *string `json:"marka"`
	Model          *string `json:"model"`
	SeriNo         *string `json:"seri_no"`
	Sikayet        *string `json:"sikayet"`
	OzelNot        *string `json:"ozel_not"`
	YapilanIslem   *string `json:"yapilan_islem"`
	Ucret          *string `json:"ucret"`
	TeslimDurumu   *string `json:"teslim_durumu"`
	TeslimTarihi   *string `json:"teslim_tarihi"`
}

type AtolyeFilterDTO struct {
	BayiAdi        string `form:"bayi_adi"`
	MusteriAdSoyad string `form:"musteri_ad_soyad"`
	Marka          string `form:"marka"`
	Model          string `form:"model"`
	SeriNo         string `form:"seri_no"`
	TeslimDurumu   string `form:"teslim_durumu"`
}
