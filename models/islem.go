package models

import "time"

type IslemDurumu string

const (
	IslemDurumuAcik          IslemDurumu = "acik"
	IslemDurumuParcaBekliyor IslemDurumu = "parca_bekliyor"
	IslemDurumuTamamlandi    IslemDurumu = "tamamlandi"
	IslemDurumuIptal         IslemDurumu = "iptal"
)

func (d IslemDurumu) Valid() bool {
	switch d {
	case IslemDurumuAcik, IslemDurumuParcaBekliyor, IslemDurumuTamamlandi, IslemDurumuIptal:
		return true
	}
	return false
}

// Islem is a field-service repair ticket. FullTarih is the creation time and
// never changes after insert; status transitions are unrestricted.
type Islem struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	FullTarih    time.Time   `gorm:"column:full_tarih;autoCreateTime" json:"full_tarih"`
	AdSoyad      string      `gorm:"size:100;not null" json:"ad_soyad"`
	Ilce         string      `gorm:"size:50" json:"ilce"`
	Mahalle      string      `gorm:"size:100" json:"mahalle"`
	Sokak        string      `gorm:"size:150" json:"sokak"`
	BinaNo       string      `gorm:"size:30" json:"bina_no"`
	EvTel        string      `gorm:"size:20" json:"ev_tel"`
	CepTel       string      `gorm:"size:20" json:"cep_tel"`
	Urun         string      `gorm:"size:100" json:"urun"`
	Marka        string      `gorm:"size:100" json:"marka"`
	Sikayet      string      `gorm:"type:text" json:"sikayet"`
	Teknisyen    string      `gorm:"size:100" json:"teknisyen"`
	YapilanIslem string      `gorm:"type:text" json:"yapilan_islem"`
	Ucret        string      `gorm:"size:50" json:"ucret"`
	IsDurumu     IslemDurumu `gorm:"column:is_durumu;type:islem_durumu;default:'acik';not null" json:"is_durumu"`
	Yazdirildi   bool        `gorm:"default:false" json:"yazdirildi"`
	CreatedBy    *string     `gorm:"size:50" json:"created_by"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Islem) TableName() string {
	return "islemler"
}
