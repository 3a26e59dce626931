package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/beyazservis/servis-go/models"
	"github.com/beyazservis/servis-go/repositories"
)

type LokasyonService struct {
	repos  *repositories.Repos
	client *http.Client
}

func NewLokasyonService(repos *repositories.Repos) *LokasyonService {
	return &LokasyonService{
		repos:  repos,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *LokasyonService) ListIlceler() ([]models.Ilce, error) {
	return s.repos.Lokasyon.ListIlceler()
}

func (s *LokasyonService) ListMahalleler(ilceID uint) ([]models.Mahalle, error) {
	return s.repos.Lokasyon.ListMahallelerByIlce(ilceID)
}

type externalIlce struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type externalMahalle struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (s *LokasyonService) fetch(url string, out any) error {
	resp, err := s.client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	return json.Unmarshal(envelope.Data, out)
}

// SeedIfEmpty loads the administrative-division lookup once. Failures on a
// single district are logged and skipped; the dataset is a convenience, not
// a startup requirement. The 100ms sleep is a courtesy to the external API.
func (s *LokasyonService) SeedIfEmpty(baseURL string) error {
	count, err := s.repos.Lokasyon.CountIlceler()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var ilceler []externalIlce
	if err := s.fetch(baseURL+"/districts", &ilceler); err != nil {
		return fmt.Errorf("fetch districts: %w", err)
	}

	log.Printf("Seeding %d districts", len(ilceler))
	for _, ext := range ilceler {
		ilce := models.Ilce{ExternalID: ext.ID, Ad: ext.Name}
		if err := s.repos.Lokasyon.CreateIlce(&ilce); err != nil {
			log.Printf("skip district %q: %v", ext.Name, err)
			continue
		}

		var extMahalleler []externalMahalle
		url := fmt.Sprintf("%s/districts/%d/neighborhoods", baseURL, ext.ID)
		if err := s.fetch(url, &extMahalleler); err != nil {
			log.Printf("skip neighborhoods of %q: %v", ext.Name, err)
			time.Sleep(100 * time.Millisecond)
			continue
		}

		mahalleler := make([]models.Mahalle, 0, len(extMahalleler))
		for _, m := range extMahalleler {
			mahalleler = append(mahalleler, models.Mahalle{
				ExternalID: m.ID,
				IlceID:     ilce.ID,
				Ad:         m.Name,
			})
		}
		if err := s.repos.Lokasyon.CreateMahalleler(mahalleler); err != nil {
			log.Printf("skip neighborhoods of %q: %v", ext.Name, err)
		}

		time.Sleep(100 * time.Millisecond)
	}

	log.Println("Location reference data seeded")
	return nil
}
