package models

import (
	"time"

	"gorm.io/datatypes"
)

// YaziciAyar stores the per-master-brand print layout. Alanlar is the
// ordered field list ({fieldId,label,position{x,y},isStatic}) kept as JSON;
// the server never interprets individual entries.
type YaziciAyar struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	AnaMarka  string         `gorm:"column:ana_marka;size:100;not null;unique" json:"ana_marka"`
	Alanlar   datatypes.JSON `gorm:"type:jsonb;not null" json:"alanlar"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (YaziciAyar) TableName() string {
	return "yazici_ayarlari"
}
