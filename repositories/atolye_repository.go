package repositories

import (
	"github.com/beyazservis/servis-go/db"
	"github.com/beyazservis/servis-go/dto"
	"github.com/beyazservis/servis-go/models"
)

type AtolyeRepo interface {
	List(filter dto.AtolyeFilterDTO, bayiAdi string) ([]models.Atolye, error)
	FindByID(id uint) (models.Atolye, error)
	FindByCreatedBy(username string) ([]models.Atolye, error)
	Create(atolye *models.Atolye) error
	UpdateFields(id uint, fields map[string]any) error
	Delete(id uint) (int64, error)
}

type DBAtolyeRepo struct{}

func NewAtolyeRepo() AtolyeRepo {
	return &DBAtolyeRepo{}
}

// List applies ILIKE text filters AND-combined; bayiAdi, when non-empty,
// scopes the result to one dealer (dealer tokens).
func (r *DBAtolyeRepo) List(filter dto.AtolyeFilterDTO, bayiAdi string) ([]models.Atolye, error) {
	q := db.DB.Model(&models.Atolye{})

	like := func(column, value string) {
		if value != "" {
			q = q.Where(column+" ILIKE ?", "%"+value+"%")
		}
	}
	like("bayi_adi", filter.BayiAdi)
	like("musteri_ad_soyad", filter.MusteriAdSoyad)
	like("marka", filter.Marka)
	like("model", filter.Model)
	like("seri_no", filter.SeriNo)
	if filter.TeslimDurumu != "" {
		q = q.Where("teslim_durumu = ?", filter.TeslimDurumu)
	}
	if bayiAdi != "" {
		q = q.Where("bayi_adi = ?", bayiAdi)
	}

	var atolyeler []models.Atolye
	err := q.Order("created_at DESC").Find(&atolyeler).Error
	return atolyeler, err
}

func (r *DBAtolyeRepo) FindByID(id uint) (models.Atolye, error) {
	var atolye models.Atolye
	err := db.DB.First(&atolye, id).Error
	return atolye, err
}

func (r *DBAtolyeRepo) FindByCreatedBy(username string) ([]models.Atolye, error) {
	var atolyeler []models.Atolye
	err := db.DB.Where("created_by = ?", username).Order("created_at DESC").Find(&atolyeler).Error
	return atolyeler, err
}

func (r *DBAtolyeRepo) Create(atolye *models.Atolye) error {
	return db.DB.Create(atolye).Error
}

func (r *DBAtolyeRepo) UpdateFields(id uint, fields map[string]any) error {
	return db.DB.Model(&models.Atolye{}).Where("id = ?", id).Updates(fields).Error
}

func (r *DBAtolyeRepo) Delete(id uint) (int64, error) {
	res := db.DB.Delete(&models.Atolye{}, id)
	return res.RowsAffected, res.Error
}
