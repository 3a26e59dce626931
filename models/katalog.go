package models

import "time"

// Name-only reference collections share one shape; each keeps its own table
// so list endpoints stay single-table queries.

type Teknisyen struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Ad        string    `gorm:"size:100;not null;unique" json:"ad"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Teknisyen) TableName() string { return "teknisyenler" }

type Marka struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Ad        string    `gorm:"size:100;not null;unique" json:"ad"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Marka) TableName() string { return "markalar" }

type Urun struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Ad        string    `gorm:"size:100;not null;unique" json:"ad"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Urun) TableName() string { return "urunler" }

type Montaj struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Ad        string    `gorm:"size:100;not null;unique" json:"ad"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Montaj) TableName() string { return "montajlar" }

type Aksesuar struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Ad        string    `gorm:"size:100;not null;unique" json:"ad"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Aksesuar) TableName() string { return "aksesuarlar" }

// Bayi is both a reference entity and a login principal. Passwords are
// bcrypt-hashed like user passwords.
type Bayi struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Ad        string    `gorm:"size:100;not null;unique" json:"ad"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Bayi) TableName() string { return "bayiler" }
