package services

import (
	_ "embed"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/beyazservis/servis-go/dto"
	"github.com/beyazservis/servis-go/models"
	"github.com/beyazservis/servis-go/repositories"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

var ErrYaziciAyarYok = errors.New("yazici ayari not found")

//go:embed marka_gruplari.yaml
var markaGruplariYAML []byte

type markaGruplari struct {
	Gruplar []struct {
		Ana      string   `yaml:"ana"`
		Markalar []string `yaml:"markalar"`
	} `yaml:"gruplar"`
}

// markaToAna maps every known brand (lowercased) to its master brand.
// Printers are tied to brand-family form templates, so a family shares
// one layout.
var markaToAna = func() map[string]string {
	var parsed markaGruplari
	if err := yaml.Unmarshal(markaGruplariYAML, &parsed); err != nil {
		log.Fatal("Failed to parse marka_gruplari.yaml:", err)
	}
	m := make(map[string]string)
	for _, grup := range parsed.Gruplar {
		for _, marka := range grup.Markalar {
			m[strings.ToLower(marka)] = grup.Ana
		}
	}
	return m
}()

// ResolveAnaMarka maps a brand to its synonym-group master; a brand outside
// every group is its own master.
func ResolveAnaMarka(marka string) string {
	if ana, ok := markaToAna[strings.ToLower(strings.TrimSpace(marka))]; ok {
		return ana
	}
	return strings.TrimSpace(marka)
}

type YaziciService struct {
	repos *repositories.Repos
}

func NewYaziciService(repos *repositories.Repos) *YaziciService {
	return &YaziciService{repos: repos}
}

func (s *YaziciService) Get(marka string) (models.YaziciAyar, error) {
	ayar, err := s.repos.Yazici.GetByAnaMarka(ResolveAnaMarka(marka))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.YaziciAyar{}, ErrYaziciAyarYok
	}
	return ayar, err
}

func (s *YaziciService) Save(marka string, input dto.SaveYaziciAyarDTO) (models.YaziciAyar, error) {
	raw, err := json.Marshal(input.Alanlar)
	if err != nil {
		return models.YaziciAyar{}, err
	}

	ayar := models.YaziciAyar{
		AnaMarka: ResolveAnaMarka(marka),
		Alanlar:  raw,
	}
	if err := s.repos.Yazici.Upsert(&ayar); err != nil {
		return models.YaziciAyar{}, err
	}
	return s.Get(marka)
}

// Delete reverts the whole brand family to the client-side default layout.
func (s *YaziciService) Delete(marka string) error {
	rows, err := s.repos.Yazici.DeleteByAnaMarka(ResolveAnaMarka(marka))
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrYaziciAyarYok
	}
	return nil
}
