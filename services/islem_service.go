package services

import (
	"errors"

	"github.com/beyazservis/servis-go/dto"
	"github.com/beyazservis/servis-go/models"
	"github.com/beyazservis/servis-go/realtime"
	"github.com/beyazservis/servis-go/repositories"
	"github.com/beyazservis/servis-go/utils"
	"gorm.io/gorm"
)

var (
	ErrIslemNotFound = errors.New("islem not found")
	ErrGecersizDurum = errors.New("gecersiz is durumu")
)

type IslemService struct {
	repos *repositories.Repos
	hub   Publisher
}

func NewIslemService(repos *repositories.Repos, hub Publisher) *IslemService {
	return &IslemService{repos: repos, hub: hub}
}

func (s *IslemService) List(filter dto.IslemFilterDTO) ([]models.Islem, error) {
	return s.repos.Islem.List(filter)
}

func (s *IslemService) GetByID(id uint) (models.Islem, error) {
	islem, err := s.repos.Islem.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Islem{}, ErrIslemNotFound
	}
	return islem, err
}

// CreateIslem always opens the ticket with status "acik"; any status in the
// request body is ignored.
func (s *IslemService) CreateIslem(input dto.CreateIslemDTO, createdBy string) (models.Islem, error) {
	cepTel, err := utils.NormalizePhone(input.CepTel)
	if err != nil {
		return models.Islem{}, err
	}

	islem := models.Islem{
		AdSoyad:      input.AdSoyad,
		Ilce:         input.Ilce,
		Mahalle:      input.Mahalle,
		Sokak:        input.Sokak,
		BinaNo:       input.BinaNo,
		EvTel:        input.EvTel,
		CepTel:       cepTel,
		Urun:         input.Urun,
		Marka:        input.Marka,
		Sikayet:      input.Sikayet,
		Teknisyen:    input.Teknisyen,
		YapilanIslem: input.YapilanIslem,
		Ucret:        input.Ucret,
		IsDurumu:     models.IslemDurumuAcik,
	}
	if createdBy != "" {
		islem.CreatedBy = &createdBy
	}

	if err := s.repos.Islem.Create(&islem); err != nil {
		return models.Islem{}, err
	}

	s.hub.Publish(realtime.EventYeniIslem, islem)
	return islem, nil
}

// UpdateIslem writes only the fields present in the patch; everything else
// keeps its stored value. updated_at is stamped by the store.
func (s *IslemService) UpdateIslem(id uint, input dto.UpdateIslemDTO) (models.Islem, error) {
	if _, err := s.GetByID(id); err != nil {
		return models.Islem{}, err
	}

	fields := map[string]any{}
	set := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	set("ad_soyad", input.AdSoyad)
	set("ilce", input.Ilce)
	set("mahalle", input.Mahalle)
	set("sokak", input.Sokak)
	set("bina_no", input.BinaNo)
	set("ev_tel", input.EvTel)
	set("urun", input.Urun)
	set("marka", input.Marka)
	set("sikayet", input.Sikayet)
	set("teknisyen", input.Teknisyen)
	set("yapilan_islem", input.YapilanIslem)
	set("ucret", input.Ucret)

	if input.CepTel != nil {
		cepTel, err := utils.NormalizePhone(*input.CepTel)
		if err != nil {
			return models.Islem{}, err
		}
		fields["cep_tel"] = cepTel
	}
	if input.IsDurumu != nil {
		durum := models.IslemDurumu(*input.IsDurumu)
		if !durum.Valid() {
			return models.Islem{}, ErrGecersizDurum
		}
		fields["is_durumu"] = durum
	}

	if err := s.repos.Islem.UpdateFields(id, fields); err != nil {
		return models.Islem{}, err
	}

	islem, err := s.repos.Islem.FindByID(id)
	if err != nil {
		return models.Islem{}, err
	}

	s.hub.Publish(realtime.EventIslemGuncellendi, islem)
	return islem, nil
}

// UpdateDurum touches is_durumu and updated_at only.
func (s *IslemService) UpdateDurum(id uint, durum string) (models.Islem, error) {
	d := models.IslemDurumu(durum)
	if !d.Valid() {
		return models.Islem{}, ErrGecersizDurum
	}

	if _, err := s.GetByID(id); err != nil {
		return models.Islem{}, err
	}

	if err := s.repos.Islem.UpdateFields(id, map[string]any{"is_durumu": d}); err != nil {
		return models.Islem{}, err
	}

	islem, err := s.repos.Islem.FindByID(id)
	if err != nil {
		return models.Islem{}, err
	}

	s.hub.Publish(realtime.EventIslemDurumDegisti, islem)
	return islem, nil
}

// UpdateYazdirildi flips the print-tracking flag, independent of status.
func (s *IslemService) UpdateYazdirildi(id uint, yazdirildi bool) (models.Islem, error) {
	if _, err := s.GetByID(id); err != nil {
		return models.Islem{}, err
	}

	if err := s.repos.Islem.UpdateFields(id, map[string]any{"yazdirildi": yazdirildi}); err != nil {
		return models.Islem{}, err
	}

	islem, err := s.repos.Islem.FindByID(id)
	if err != nil {
		return models.Islem{}, err
	}

	s.hub.Publish(realtime.EventIslemGuncellendi, islem)
	return islem, nil
}

func (s *IslemService) DeleteIslem(id uint) error {
	rows, err := s.repos.Islem.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrIslemNotFound
	}

	s.hub.Publish(realtime.EventIslemSilindi, map[string]uint{"id": id})
	return nil
}
