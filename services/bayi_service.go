package services

import (
	"errors"

	"github.com/beyazservis/servis-go/dto"
	"github.com/beyazservis/servis-go/middleware"
	"github.com/beyazservis/servis-go/models"
	"github.com/beyazservis/servis-go/repositories"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBayiNotFound = errors.New("bayi not found")
	ErrBayiAdiTaken = errors.New("bu bayi adi veya kullanici adi zaten kayitli")
	ErrBayiBadLogin = errors.New("kullanici adi veya sifre hatali")
)

type BayiService struct {
	repos *repositories.Repos
}

func NewBayiService(repos *repositories.Repos) *BayiService {
	return &BayiService{repos: repos}
}

func (s *BayiService) List() ([]models.Bayi, error) {
	return s.repos.Bayi.ListBayiler()
}

func (s *BayiService) CreateBayi(input dto.CreateBayiDTO) (models.Bayi, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Bayi{}, ErrPasswordHashFailure
	}

	bayi := models.Bayi{
		Ad:       input.Ad,
		Username: input.Username,
		Password: string(hashed),
	}
	if err := s.repos.Bayi.CreateBayi(&bayi); err != nil {
		return models.Bayi{}, err
	}
	return bayi, nil
}

func (s *BayiService) DeleteBayi(id uint) error {
	rows, err := s.repos.Bayi.DeleteBayi(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBayiNotFound
	}
	return nil
}

// Login issues a dealer token carrying the dealer name used for record
// scoping. Unknown username and wrong password return the same error.
func (s *BayiService) Login(username, password string) (models.Bayi, string, error) {
	bayi, err := s.repos.Bayi.GetBayiByUsername(username)
	if err != nil {
		return models.Bayi{}, "", ErrBayiBadLogin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(bayi.Password), []byte(password)); err != nil {
		return models.Bayi{}, "", ErrBayiBadLogin
	}

	token, err := middleware.GenerateToken(bayi.ID, bayi.Username, models.UserRoleBayi, bayi.Ad)
	if err != nil {
		return models.Bayi{}, "", err
	}
	return bayi, token, nil
}
