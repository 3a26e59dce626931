package repositories

import (
	"github.com/beyazservis/servis-go/db"
	"github.com/beyazservis/servis-go/models"
)

type LokasyonRepo interface {
	CountIlceler() (int64, error)
	ListIlceler() ([]models.Ilce, error)
	ListMahallelerByIlce(ilceID uint) ([]models.Mahalle, error)
	CreateIlce(ilce *models.Ilce) error
	CreateMahalleler(mahalleler []models.Mahalle) error
}

type DBLokasyonRepo struct{}

func NewLokasyonRepo() LokasyonRepo {
	return &DBLokasyonRepo{}
}

func (r *DBLokasyonRepo) CountIlceler() (int64, error) {
	var count int64
	err := db.DB.Model(&models.Ilce{}).Count(&count).Error
	return count, err
}

func (r *DBLokasyonRepo) ListIlceler() ([]models.Ilce, error) {
	var ilceler []models.Ilce
	err := db.DB.Order("ad ASC").Find(&ilceler).Error
	return ilceler, err
}

func (r *DBLokasyonRepo) ListMahallelerByIlce(ilceID uint) ([]models.Mahalle, error) {
	var mahalleler []models.Mahalle
	err := db.DB.Where("ilce_id = ?", ilceID).Order("ad ASC").Find(&mahalleler).Error
	return mahalleler, err
}

func (r *DBLokasyonRepo) CreateIlce(ilce *models.Ilce) error {
	return db.DB.Create(ilce).Error
}

func (r *DBLokasyonRepo) CreateMahalleler(mahalleler []models.Mahalle) error {
	if len(mahalleler) == 0 {
		return nil
	}
	return db.DB.Create(&mahalleler).Error
}
