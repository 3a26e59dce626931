package services

import (
	"errors"

	"github.com/beyazservis/servis-go/models"
	"github.com/beyazservis/servis-go/repositories"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type AdminService struct {
	repos *repositories.Repos
}

func NewAdminService(repos *repositories.Repos) *AdminService {
	return &AdminService{repos: repos}
}

func (s *AdminService) ListUsersWithCounts() ([]models.UserWithIslemCount, error) {
	return s.repos.User.ListUsersWithIslemCount()
}

// ToggleActive flips is_active and returns the new state.
func (s *AdminService) ToggleActive(id uint) (bool, error) {
	user, err := s.repos.User.GetUserByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrUserNotFound
	}
	if err != nil {
		return false, err
	}

	user.IsActive = !user.IsActive
	if err := s.repos.User.SaveUser(&user); err != nil {
		return false, err
	}
	return user.IsActive, nil
}

// DeleteUser is a hard delete; created_by references on islemler/atolyeler
// are soft and left dangling.
func (s *AdminService) DeleteUser(id uint) error {
	rows, err := s.repos.User.DeleteUser(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UserKayitlar is the drill-down: everything one user created, across both
// stores.
func (s *AdminService) UserKayitlar(username string) ([]models.Islem, []models.Atolye, error) {
	islemler, err := s.repos.Islem.FindByCreatedBy(username)
	if err != nil {
		return nil, nil, err
	}
	atolyeler, err := s.repos.Atolye.FindByCreatedBy(username)
	if err != nil {
		return nil, nil, err
	}
	return islemler, atolyeler, nil
}
