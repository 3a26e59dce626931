package services

import (
	"errors"
	"time"

	"github.com/beyazservis/servis-go/dto"
	"github.com/beyazservis/servis-go/models"
	"github.com/beyazservis/servis-go/realtime"
	"github.com/beyazservis/servis-go/repositories"
	"github.com/beyazservis/servis-go/utils"
	"gorm.io/gorm"
)

var (
	ErrAtolyeNotFound      = errors.New("atolye kaydi not found")
	ErrGecersizTeslimDurum = errors.New("gecersiz teslim durumu")
	ErrBayiVeyaMusteri     = errors.New("bayi adi veya musteri adi zorunlu")
	ErrGecersizTarih       = errors.New("gecersiz teslim tarihi")
)

type AtolyeService struct {
	repos *repositories.Repos
	hub   Publisher
}

func NewAtolyeService(repos *repositories.Repos, hub Publisher) *AtolyeService {
	return &AtolyeService{repos: repos, hub: hub}
}

func (s *AtolyeService) List(filter dto.AtolyeFilterDTO, bayiAdi string) ([]models.Atolye, error) {
	return s.repos.Atolye.List(filter, bayiAdi)
}

func (s *AtolyeService) GetByID(id uint) (models.Atolye, error) {
	atolye, err := s.repos.Atolye.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Atolye{}, ErrAtolyeNotFound
	}
	return atolye, err
}

func blank(v *string) bool {
	return v == nil || *v == ""
}

// CreateAtolye requires at least one of bayi_adi / musteri_ad_soyad; the
// schema keeps both nullable, so this is the only place the invariant lives.
func (s *AtolyeService) CreateAtolye(input dto.CreateAtolyeDTO, createdBy string) (models.Atolye, error) {
	if blank(input.BayiAdi) && blank(input.MusteriAdSoyad) {
		return models.Atolye{}, ErrBayiVeyaMusteri
	}

	telefon := input.Telefon
	if telefon != "" {
		normalized, err := utils.NormalizePhone(telefon)
		if err != nil {
			return models.Atolye{}, err
		}
		telefon = normalized
	}

	atolye := models.Atolye{
		BayiAdi:        input.BayiAdi,
		MusteriAdSoyad: input.MusteriAdSoyad,
		Telefon:        telefon,
		Marka:          input.Marka,
		Model:          input.Model,
		SeriNo:         input.SeriNo,
		Sikayet:        input.Sikayet,
		OzelNot:        input.OzelNot,
		TeslimDurumu:   models.TeslimDurumuBekliyor,
	}
	if createdBy != "" {
		atolye.CreatedBy = &createdBy
	}

	if err := s.repos.Atolye.Create(&atolye); err != nil {
		return models.Atolye{}, err
	}

	s.hub.Publish(realtime.EventYeniAtolye, atolye)
	return atolye, nil
}

// UpdateAtolye is a sparse patch. The one-of invariant is checked against
// the merged row so a patch cannot blank both bayi_adi and musteri_ad_soyad.
func (s *AtolyeService) UpdateAtolye(id uint, input dto.UpdateAtolyeDTO) (models.Atolye, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return models.Atolye{}, err
	}

	mergedBayi := existing.BayiAdi
	if input.BayiAdi != nil {
		mergedBayi = input.BayiAdi
	}
	mergedMusteri := existing.MusteriAdSoyad
	if input.MusteriAdSoyad != nil {
		mergedMusteri = input.MusteriAdSoyad
	}
	if blank(mergedBayi) && blank(mergedMusteri) {
		return models.Atolye{}, ErrBayiVeyaMusteri
	}

	fields := map[string]any{}
	set := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	set("bayi_adi", input.BayiAdi)
	set("musteri_ad_soyad", input.MusteriAdSoyad)
	set("marka", input.Marka)
	set("model", input.Model)
	set("seri_no", input.SeriNo)
	set("sikayet", input.Sikayet)
	set("ozel_not", input.OzelNot)
	set("yapilan_islem", input.YapilanIslem)
	set("ucret", input.Ucret)

	if input.Telefon != nil {
		telefon := *input.Telefon
		if telefon != "" {
			normalized, err := utils.NormalizePhone(telefon)
			if err != nil {
				return models.Atolye{}, err
			}
			telefon = normalized
		}
		fields["telefon"] = telefon
	}
	if input.TeslimDurumu != nil {
		durum := models.TeslimDurumu(*input.TeslimDurumu)
		if !durum.Valid() {
			return models.Atolye{}, ErrGecersizTeslimDurum
		}
		fields["teslim_durumu"] = durum
	}
	if input.TeslimTarihi != nil {
		if *input.TeslimTarihi == "" {
			fields["teslim_tarihi"] = nil
		} else {
			t, err := time.Parse("2006-01-02", *input.TeslimTarihi)
			if err != nil {
				return models.Atolye{}, ErrGecersizTarih
			}
			fields["teslim_tarihi"] = t
		}
	}

	if err := s.repos.Atolye.UpdateFields(id, fields); err != nil {
		return models.Atolye{}, err
	}

	atolye, err := s.repos.Atolye.FindByID(id)
	if err != nil {
		return models.Atolye{}, err
	}

	s.hub.Publish(realtime.EventAtolyeGuncellendi, atolye)
	return atolye, nil
}

func (s *AtolyeService) DeleteAtolye(id uint) error {
	rows, err := s.repos.Atolye.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAtolyeNotFound
	}

	s.hub.Publish(realtime.EventAtolyeSilindi, map[string]uint{"id": id})
	return nil
}
