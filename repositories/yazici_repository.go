package repositories

import (
	"github.com/beyazservis/servis-go/db"
	"github.com/beyazservis/servis-go/models"
	"gorm.io/gorm/clause"
)

type YaziciRepo interface {
	GetByAnaMarka(anaMarka string) (models.YaziciAyar, error)
	Upsert(ayar *models.YaziciAyar) error
	DeleteByAnaMarka(anaMarka string) (int64, error)
}

type DBYaziciRepo struct{}

func NewYaziciRepo() YaziciRepo {
	return &DBYaziciRepo{}
}

func (r *DBYaziciRepo) GetByAnaMarka(anaMarka string) (models.YaziciAyar, error) {
	var ayar models.YaziciAyar
	err := db.DB.Where("ana_marka = ?", anaMarka).First(&ayar).Error
	return ayar, err
}

func (r *DBYaziciRepo) Upsert(ayar *models.YaziciAyar) error {
	return db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ana_marka"}},
		DoUpdates: clause.AssignmentColumns([]string{"alanlar", "updated_at"}),
	}).Create(ayar).Error
}

func (r *DBYaziciRepo) DeleteByAnaMarka(anaMarka string) (int64, error) {
	res := db.DB.Where("ana_marka = ?", anaMarka).Delete(&models.YaziciAyar{})
	return res.RowsAffected, res.Error
}
