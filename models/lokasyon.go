package models

type Ilce struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ExternalID int    `gorm:"not null;unique" json:"external_id"`
	Ad         string `gorm:"size:100;not null" json:"ad"`
}

func (Ilce) TableName() string { return "ilceler" }

type Mahalle struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ExternalID int    `gorm:"not null;unique" json:"external_id"`
	IlceID     uint   `gorm:"not null;index" json:"ilce_id"`
	Ad         string `gorm:"size:150;not null" json:"ad"`
	Ilce       Ilce   `gorm:"foreignKey:IlceID" json:"-"`
}

func (Mahalle) TableName() string { return "mahalleler" }
