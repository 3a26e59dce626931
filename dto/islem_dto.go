package dto

type CreateIslemDTO struct {
	AdSoyad      string `json:"ad_soyad" binding:"required"`
	Ilce         string `json:"ilce" binding:"required"`
	Mahalle      string `json:"mahalle" binding:"required"`
	Sokak        string `json:"sokak" binding:"required"`
	BinaNo       string `json:"bina_no" binding:"required"`
	EvTel        string `json:"ev_tel"`
	CepTel       string `json:"cep_tel" binding:"required"`
	Urun         string `json:"urun" binding:"required"`
	Marka        string `json:"marka" binding:"required"`
	Sikayet      string `json:"sikayet" binding:"required"`
	Teknisyen    string `json:"teknisyen"`
	YapilanIslem string `json:"yapilan_islem"`
	Ucret        string `json:"ucret"`
}

// UpdateIslemDTO is a sparse patch: nil means "leave unchanged".
type UpdateIslemDTO struct {
	AdSoyad      *string `json:"ad_soyad"`
	Ilce         *string `json:"ilce"`
	Mahalle      *string `json:"mahalle"`
	Sokak        *string `json:"sokak"`
	BinaNo       *string `json:"bina_no"`
	EvTel        *string `json:"ev_tel"`
	CepTel       *string `json:"cep_tel"`
	Urun         *string `json:"urun"`
	Marka        *string `json:"marka"`
	Sikayet      *string `json:"sikayet"`
	Teknisyen    *string `json:"teknisyen"`
	YapilanIslem *string `json:"yapilan_islem"`
	Ucret        *string `json:"ucret"`
	IsDurumu     *string `json:"is_durumu"`
}

type UpdateIslemDurumDTO struct {
	IsDurumu string `json:"is_durumu" binding:"required"`
}

type UpdateYazdirildiDTO struct {
	Yazdirildi bool `json:"yazdirildi"`
}

// IslemFilterDTO maps the query string; every text field becomes an
// AND-combined ILIKE, IsDurumu matches exactly.
type IslemFilterDTO struct {
	AdSoyad   string `form:"ad_soyad"`
	Ilce      string `form:"ilce"`
	Mahalle   string `form:"mahalle"`
	CepTel    string `form:"cep_tel"`
	Urun      string `form:"urun"`
	Marka     string `form:"marka"`
	Teknisyen string `form:"teknisyen"`
	IsDurumu  string `form:"is_durumu"`
}
