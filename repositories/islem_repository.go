package repositories

import (
	"github.com/beyazservis/servis-go/db"
	"github.com/beyazservis/servis-go/dto"
	"github.com/beyazservis/servis-go/models"
)

type IslemRepo interface {
	List(filter dto.IslemFilterDTO) ([]models.Islem, error)
	FindByID(id uint) (models.Islem, error)
	FindByCreatedBy(username string) ([]models.Islem, error)
	Create(islem *models.Islem) error
	UpdateFields(id uint, fields map[string]any) error
	Delete(id uint) (int64, error)
}

type DBIslemRepo struct{}

func NewIslemRepo() IslemRepo {
	return &DBIslemRepo{}
}

func (r *DBIslemRepo) List(filter dto.IslemFilterDTO) ([]models.Islem, error) {
	q := db.DB.Model(&models.Islem{})

	like := func(column, value string) {
		if value != "" {
			q = q.Where(column+" ILIKE ?", "%"+value+"%")
		}
	}
	like("ad_soyad", filter.AdSoyad)
	like("ilce", filter.Ilce)
	like("mahalle", filter.Mahalle)
	like("cep_tel", filter.CepTel)
	like("urun", filter.Urun)
	like("marka", filter.Marka)
	like("teknisyen", filter.Teknisyen)
	if filter.IsDurumu != "" {
		q = q.Where("is_durumu = ?", filter.IsDurumu)
	}

	var islemler []models.Islem
	err := q.Order("full_tarih DESC").Find(&islemler).Error
	return islemler, err
}

func (r *DBIslemRepo) FindByID(id uint) (models.Islem, error) {
	var islem models.Islem
	err := db.DB.First(&islem, id).Error
	return islem, err
}

func (r *DBIslemRepo) FindByCreatedBy(username string) ([]models.Islem, error) {
	var islemler []models.Islem
	err := db.DB.Where("created_by = ?", username).Order("full_tarih DESC").Find(&islemler).Error
	return islemler, err
}

func (r *DBIslemRepo) Create(islem *models.Islem) error {
	return db.DB.Create(islem).Error
}

// UpdateFields writes only the given columns; gorm stamps updated_at through
// the model hook on Updates.
func (r *DBIslemRepo) UpdateFields(id uint, fields map[string]any) error {
	return db.DB.Model(&models.Islem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *DBIslemRepo) Delete(id uint) (int64, error) {
	res := db.DB.Delete(&models.Islem{}, id)
	return res.RowsAffected, res.Error
}
