package repositories

import (
	"github.com/beyazservis/servis-go/db"
	"github.com/beyazservis/servis-go/models"
)

type UserRepo interface {
	GetUserByUsername(username string) (models.User, error)
	GetUserByID(id uint) (models.User, error)
	CreateUser(user *models.User) error
	SaveUser(user *models.User) error
	DeleteUser(id uint) (int64, error)
	ListUsersWithIslemCount() ([]models.UserWithIslemCount, error)
}

type DBUserRepo struct{}

func NewUserRepo() UserRepo {
	return &DBUserRepo{}
}

func (r *DBUserRepo) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	return user, err
}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) CreateUser(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) SaveUser(user *models.User) error {
	return db.DB.Save(user).Error
}

func (r *DBUserRepo) DeleteUser(id uint) (int64, error) {
	res := db.DB.Delete(&models.User{}, id)
	return res.RowsAffected, res.Error
}

func (r *DBUserRepo) ListUsersWithIslemCount() ([]models.UserWithIslemCount, error) {
	var results []models.UserWithIslemCount
	err := db.DB.Table("users u").
		Select("u.id, u.username, u.rol, u.is_active, u.created_at, COUNT(i.id) AS islem_sayisi").
		Joins("LEFT JOIN islemler i ON i.created_by = u.username").
		Group("u.id, u.username, u.rol, u.is_active, u.created_at").
		Order("u.id").
		Scan(&results).Error
	return results, err
}
