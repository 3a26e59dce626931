package repositories

import (
	"time"

	"github.com/beyazservis/servis-go/db"
	"github.com/beyazservis/servis-go/models"
)

// KatalogItem is the shared row shape of the name-only collections
// (teknisyenler, markalar, urunler, montajlar, aksesuarlar). The table is
// picked per request so five identical CRUDs stay one implementation.
type KatalogItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Ad        string    `gorm:"size:100;not null;unique" json:"ad"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type KatalogRepo interface {
	List(table string) ([]KatalogItem, error)
	Create(table string, item *KatalogItem) error
	Delete(table string, id uint) (int64, error)
}

type DBKatalogRepo struct{}

func NewKatalogRepo() KatalogRepo {
	return &DBKatalogRepo{}
}

func (r *DBKatalogRepo) List(table string) ([]KatalogItem, error) {
	var items []KatalogItem
	err := db.DB.Table(table).Order("ad ASC").Find(&items).Error
	return items, err
}

func (r *DBKatalogRepo) Create(table string, item *KatalogItem) error {
	return db.DB.Table(table).Create(item).Error
}

func (r *DBKatalogRepo) Delete(table string, id uint) (int64, error) {
	res := db.DB.Table(table).Where("id = ?", id).Delete(&KatalogItem{})
	return res.RowsAffected, res.Error
}

type BayiRepo interface {
	ListBayiler() ([]models.Bayi, error)
	GetBayiByUsername(username string) (models.Bayi, error)
	CreateBayi(bayi *models.Bayi) error
	DeleteBayi(id uint) (int64, error)
}

type DBBayiRepo struct{}

func NewBayiRepo() BayiRepo {
	return &DBBayiRepo{}
}

func (r *DBBayiRepo) ListBayiler() ([]models.Bayi, error) {
	var bayiler []models.Bayi
	err := db.DB.Order("ad ASC").Find(&bayiler).Error
	return bayiler, err
}

func (r *DBBayiRepo) GetBayiByUsername(username string) (models.Bayi, error) {
	var bayi models.Bayi
	err := db.DB.Where("username = ?", username).First(&bayi).Error
	return bayi, err
}

func (r *DBBayiRepo) CreateBayi(bayi *models.Bayi) error {
	return db.DB.Create(bayi).Error
}

func (r *DBBayiRepo) DeleteBayi(id uint) (int64, error) {
	res := db.DB.Delete(&models.Bayi{}, id)
	return res.RowsAffected, res.Error
}
