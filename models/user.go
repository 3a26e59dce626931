package models

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
	UserRoleBayi  UserRole = "bayi"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Rol       UserRole  `gorm:"type:user_rol;default:'user';not null" json:"rol"`
	IsActive  bool      `gorm:"default:true;not null" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// UserWithIslemCount backs the admin user listing; IslemSayisi comes from a
// LEFT JOIN on islemler.created_by.
type UserWithIslemCount struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Rol         UserRole  `json:"rol"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	IslemSayisi int64     `json:"islem_sayisi"`
}
