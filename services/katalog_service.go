package services

import (
	"errors"

	"github.com/beyazservis/servis-go/repositories"
)

var ErrKatalogNotFound = errors.New("kayit not found")

type KatalogService struct {
	repos *repositories.Repos
}

func NewKatalogService(repos *repositories.Repos) *KatalogService {
	return &KatalogService{repos: repos}
}

func (s *KatalogService) List(table string) ([]repositories.KatalogItem, error) {
	return s.repos.Katalog.List(table)
}

func (s *KatalogService) Create(table, ad string) (repositories.KatalogItem, error) {
	item := repositories.KatalogItem{Ad: ad}
	if err := s.repos.Katalog.Create(table, &item); err != nil {
		return repositories.KatalogItem{}, err
	}
	return item, nil
}

func (s *KatalogService) Delete(table string, id uint) error {
	rows, err := s.repos.Katalog.Delete(table, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrKatalogNotFound
	}
	return nil
}
