package services

import (
	"errors"

	"github.com/beyazservis/servis-go/dto"
	"github.com/beyazservis/servis-go/middleware"
	"github.com/beyazservis/servis-go/models"
	"github.com/beyazservis/servis-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken       = errors.New("bu kullanici adi zaten alinmis")
	ErrInvalidCredentials  = errors.New("kullanici adi veya sifre hatali")
	ErrUserInactive        = errors.New("hesap pasif durumda")
	ErrNotAdmin            = errors.New("kullanici adi veya sifre hatali")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{repos: repos}
}

func (s *UserService) Register(input dto.RegisterDTO) (models.User, error) {
	_, err := s.repos.User.GetUserByUsername(input.Username)
	if err == nil {
		return models.User{}, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrPasswordHashFailure
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashed),
		Rol:      models.UserRoleUser,
		IsActive: true,
	}
	if err := s.repos.User.CreateUser(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login returns the same error for unknown username and wrong password.
func (s *UserService) Login(username, password string) (models.User, string, error) {
	user, err := s.repos.User.GetUserByUsername(username)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, "", ErrUserInactive
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, user.Rol, "")
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// AdminLogin is the same credential flow plus a role check; the rejection
// message matches bad credentials so admin accounts are not enumerable.
func (s *UserService) AdminLogin(username, password string) (models.User, string, error) {
	user, token, err := s.Login(username, password)
	if err != nil {
		return models.User{}, "", err
	}
	if user.Rol != models.UserRoleAdmin {
		return models.User{}, "", ErrNotAdmin
	}
	return user, token, nil
}
