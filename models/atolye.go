package models

import "time"

type TeslimDurumu string

const (
	TeslimDurumuBekliyor      TeslimDurumu = "bekliyor"
	TeslimDurumuSiparisEdildi TeslimDurumu = "siparis_edildi"
	TeslimDurumuTamamlandi    TeslimDurumu = "tamamlandi"
	TeslimDurumuFabrikada     TeslimDurumu = "fabrikada"
	TeslimDurumuOdemeBekliyor TeslimDurumu = "odeme_bekliyor"
	TeslimDurumuTeslimEdildi  TeslimDurumu = "teslim_edildi"
)

func (d TeslimDurumu) Valid() bool {
	switch d {
	case TeslimDurumuBekliyor, TeslimDurumuSiparisEdildi, TeslimDurumuTamamlandi,
		TeslimDurumuFabrikada, TeslimDurumuOdemeBekliyor, TeslimDurumuTeslimEdildi:
		return true
	}
	return false
}

// Atolye is a workshop-routed device repair. BayiAdi and MusteriAdSoyad are
// both nullable in the schema; the service layer requires at least one of
// them to be set.
type Atolye struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	BayiAdi        *string      `gorm:"column:bayi_adi;size:100" json:"bayi_adi"`
	MusteriAdSoyad *string      `gorm:"size:100" json:"musteri_ad_soyad"`
	Telefon        string       `gorm:"size:20" json:"telefon"`
	Marka          string       `gorm:"size:100" json:"marka"`
	Model          string       `gorm:"size:100" json:"model"`
	SeriNo         string       `gorm:"size:100" json:"seri_no"`
	Sikayet        string       `gorm:"type:text" json:"sikayet"`
	OzelNot        string       `gorm:"type:text" json:"ozel_not"`
	YapilanIslem   string       `gorm:"type:text" json:"yapilan_islem"`
	Ucret          string       `gorm:"size:50" json:"ucret"`
	TeslimDurumu   TeslimDurumu `gorm:"type:teslim_durumu;default:'bekliyor';not null" json:"teslim_durumu"`
	TeslimTarihi   *time.Time   `json:"teslim_tarihi"`
	CreatedBy      *string      `gorm:"size:50" json:"created_by"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Atolye) TableName() string {
	return "atolyeler"
}
