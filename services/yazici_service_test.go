package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/beyazservis/servis-go/dto"
	"github.com/beyazservis/servis-go/models"
	"github.com/beyazservis/servis-go/repositories"
	"github.com/beyazservis/servis-go/repositories/mock_repositories"
)

func setupYaziciServiceMocks(t *testing.T) (*YaziciService, *mock_repositories.MockYaziciRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockYazici := mock_repositories.NewMockYaziciRepo(ctrl)
	repos := &repositories.Repos{Yazici: mockYazici}
	return NewYaziciService(repos), mockYazici
}

func TestResolveAnaMarka(t *testing.T) {
	cases := map[string]string{
		"Beko":         "Arcelik",
		"beko":         "Arcelik",
		" BLOMBERG ":   "Arcelik",
		"Siemens":      "Bosch",
		"Arcelik":      "Arcelik",
		"Samsung":      "Samsung",
		"Bilinmeyen":   "Bilinmeyen",
	}
	for marka, ana := range cases {
		assert.Equal(t, ana, ResolveAnaMarka(marka), "marka %q", marka)
	}
}

func TestYaziciGet_ResolvesSynonymBeforeLookup(t *testing.T) {
	svc, mockYazici := setupYaziciServiceMocks(t)

	mockYazici.EXPECT().GetByAnaMarka("Arcelik").Return(models.YaziciAyar{ID: 1, AnaMarka: "Arcelik"}, nil)

	ayar, err := svc.Get("beko")
	assert.NoError(t, err)
	assert.Equal(t, "Arcelik", ayar.AnaMarka)
}

func TestYaziciGet_MissingLayout(t *testing.T) {
	svc, mockYazici := setupYaziciServiceMocks(t)

	mockYazici.EXPECT().GetByAnaMarka("Vestel").Return(models.YaziciAyar{}, gorm.ErrRecordNotFound)

	_, err := svc.Get("Vestel")
	assert.ErrorIs(t, err, ErrYaziciAyarYok)
}

func TestYaziciSave_StoresUnderMasterBrand(t *testing.T) {
	svc, mockYazici := setupYaziciServiceMocks(t)

	mockYazici.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(a *models.YaziciAyar) error {
		assert.Equal(t, "Bosch", a.AnaMarka)
		assert.JSONEq(t, `[{"fieldId":"ad_soyad","label":"Ad Soyad","position":{"x":10,"y":20},"isStatic":false}]`, string(a.Alanlar))
		a.ID = 4
		return nil
	})
	mockYazici.EXPECT().GetByAnaMarka("Bosch").Return(models.YaziciAyar{ID: 4, AnaMarka: "Bosch"}, nil)

	input := dto.SaveYaziciAyarDTO{Alanlar: []dto.YaziciAlanDTO{
		{FieldID: "ad_soyad", Label: "Ad Soyad", Position: dto.YaziciPozisyonDTO{X: 10, Y: 20}},
	}}
	ayar, err := svc.Save("Profilo", input)
	assert.NoError(t, err)
	assert.Equal(t, uint(4), ayar.ID)
}

func TestYaziciDelete_NotFound(t *testing.T) {
	svc, mockYazici := setupYaziciServiceMocks(t)

	mockYazici.EXPECT().DeleteByAnaMarka("LG").Return(int64(0), nil)

	assert.ErrorIs(t, svc.Delete("LG"), ErrYaziciAyarYok)
}
